package sandbox

import (
	"strings"

	"github.com/MKhiriev/go-diadoc/models"
)

// regionCodes maps region and federal city names to their two-digit codes.
// Only the regions the samples meet are listed.
var regionCodes = map[string]string{
	"москва":          "77",
	"московская":      "50",
	"санкт-петербург": "78",
	"ленинградская":   "47",
	"свердловская":    "66",
	"екатеринбург":    "66",
	"новосибирская":   "54",
	"новосибирск":     "54",
	"татарстан":       "16",
	"казань":          "16",
	"краснодарский":   "23",
	"краснодар":       "23",
	"севастополь":     "92",
}

type addressPart int

const (
	partUnknown addressPart = iota
	partRegion
	partTerritory
	partCity
	partLocality
	partStreet
	partBuilding
	partBlock
	partApartment
)

// markers are matched against the lower-cased first word of a component.
// Abbreviations are listed with and without the trailing dot.
var markers = map[string]addressPart{
	"обл.": partRegion, "обл": partRegion, "область": partRegion, "край": partRegion,
	"респ.": partRegion, "респ": partRegion, "республика": partRegion,
	"р-н": partTerritory, "район": partTerritory,
	"г.": partCity, "г": partCity, "город": partCity,
	"пос.": partLocality, "пос": partLocality, "п.": partLocality, "п": partLocality,
	"с.": partLocality, "с": partLocality, "село": partLocality,
	"дер.": partLocality, "дер": partLocality, "деревня": partLocality,
	"пгт.": partLocality, "пгт": partLocality,
	"ул.": partStreet, "ул": partStreet, "улица": partStreet, "пр-т": partStreet,
	"проспект": partStreet, "пер.": partStreet, "пер": partStreet, "переулок": partStreet,
	"наб.": partStreet, "наб": partStreet, "ш.": partStreet, "шоссе": partStreet, "б-р": partStreet,
	"д.": partBuilding, "д": partBuilding, "дом": partBuilding, "зд.": partBuilding, "зд": partBuilding,
	"корп.": partBlock, "корп": partBlock, "к.": partBlock, "к": partBlock,
	"стр.": partBlock, "стр": partBlock, "корпус": partBlock,
	"кв.": partApartment, "кв": partApartment, "оф.": partApartment, "оф": partApartment,
	"квартира": partApartment, "офис": partApartment,
}

// ParseAddress splits a comma-separated Russian address into its parts. It
// understands the common abbreviations ("г.", "ул.", "д.", "кв." and so on)
// and a six-digit postal code; anything it cannot place becomes the city, or
// the locality once the city is known.
func ParseAddress(address string) (models.RussianAddress, error) {
	if strings.TrimSpace(address) == "" {
		return models.RussianAddress{}, ErrEmptyAddress
	}

	var parsed models.RussianAddress
	var regionName string

	for _, raw := range strings.Split(address, ",") {
		component := strings.TrimSpace(raw)
		if component == "" {
			continue
		}
		if isZipCode(component) {
			parsed.ZipCode = component
			continue
		}

		part, value := classify(component)
		switch part {
		case partRegion:
			regionName = value
		case partTerritory:
			parsed.Territory = value
		case partCity:
			parsed.City = value
		case partLocality:
			parsed.Locality = value
		case partStreet:
			parsed.Street = value
		case partBuilding:
			parsed.Building = value
		case partBlock:
			parsed.Block = value
		case partApartment:
			parsed.Apartment = value
		default:
			if parsed.City == "" {
				parsed.City = value
			} else {
				parsed.Locality = value
			}
		}
	}

	parsed.Region = regionCode(regionName, parsed.City)
	return parsed, nil
}

// classify looks for a marker at the start or the end of the component, as in
// "ул. Ленина" or "Свердловская обл.", and returns the component without it.
func classify(component string) (addressPart, string) {
	fields := strings.Fields(component)
	if len(fields) < 2 {
		if part, value, ok := splitGluedMarker(component); ok {
			return part, value
		}
		return partUnknown, component
	}

	if part, ok := markers[strings.ToLower(fields[0])]; ok {
		return part, strings.Join(fields[1:], " ")
	}
	if part, ok := markers[strings.ToLower(fields[len(fields)-1])]; ok {
		return part, strings.Join(fields[:len(fields)-1], " ")
	}
	return partUnknown, component
}

// splitGluedMarker handles components written without a space, like "д.5"
// or "пгт.Лесной". The marker is looked up with its dot, then without.
func splitGluedMarker(component string) (addressPart, string, bool) {
	dot := strings.Index(component, ".")
	if dot <= 0 || dot == len(component)-1 {
		return partUnknown, "", false
	}
	prefix := strings.ToLower(component[:dot])
	part, ok := markers[prefix+"."]
	if !ok {
		part, ok = markers[prefix]
	}
	if !ok {
		return partUnknown, "", false
	}
	return part, component[dot+1:], true
}

func regionCode(regionName, city string) string {
	for _, name := range []string{regionName, city} {
		for _, word := range strings.Fields(strings.ToLower(name)) {
			if code, ok := regionCodes[word]; ok {
				return code
			}
		}
	}
	return ""
}

func isZipCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
