// Package utd970 models the simplified user-contract schema of the universal
// transfer document (UTD) in the order No. 970 format, version
// utd970_05_03_01.
//
// Documents are plain values assembled with [Builder] and serialized with
// [Serialize]. The Diadoc service turns the serialized user contract into a
// real title through GenerateTitleXml.
//
// The power-of-attorney mode is a closed set of variants implementing
// [PowerOfAttorneyMode]; the mapping functions in power_of_attorney.go cover
// every variant and treat anything else as "no power of attorney".
package utd970

const (
	// TypeNamedId is the Diadoc document type of a UTD.
	TypeNamedId = "UniversalTransferDocument"
	// Version selects the order No. 970 format.
	Version = "utd970_05_03_01"
)
