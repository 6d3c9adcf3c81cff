package utd970

import (
	"fmt"
	"regexp"
	"strconv"
)

// Decimal is an exact decimal amount in its XML lexical form ("10", "110.50").
// The zero value means the amount is not specified.
type Decimal string

var decimalPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// NewDecimal validates s and returns it as a Decimal.
func NewDecimal(s string) (Decimal, error) {
	if !decimalPattern.MatchString(s) {
		return "", fmt.Errorf("invalid decimal %q", s)
	}
	return Decimal(s), nil
}

// DecimalFromInt returns the decimal form of an integer amount.
func DecimalFromInt(v int64) Decimal {
	return Decimal(strconv.FormatInt(v, 10))
}

// Specified reports whether the amount is set.
func (d Decimal) Specified() bool {
	return d != ""
}

func (d Decimal) valid() bool {
	return d == "" || decimalPattern.MatchString(string(d))
}
