package models

// RussianAddress is a structured Russian postal address.
type RussianAddress struct {
	ZipCode   string `json:"ZipCode,omitempty"`
	Region    string `json:"Region"`
	Territory string `json:"Territory,omitempty"`
	City      string `json:"City,omitempty"`
	Locality  string `json:"Locality,omitempty"`
	Street    string `json:"Street,omitempty"`
	Building  string `json:"Building,omitempty"`
	Block     string `json:"Block,omitempty"`
	Apartment string `json:"Apartment,omitempty"`
}
