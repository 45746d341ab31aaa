package wgapi

import (
	"fmt"
	"strings"
)

// Region identifies a World of Tanks API deployment.
type Region string

// Supported regions.
const (
	RegionNA   Region = "na"
	RegionRU   Region = "ru"
	RegionEU   Region = "eu"
	RegionAsia Region = "asia"
)

// regionCodes maps the accepted, lowercased region codes to a Region.
// "sea" is the historical name of the Asia cluster and is kept as an alias.
var regionCodes = map[string]Region{
	"na":   RegionNA,
	"ru":   RegionRU,
	"eu":   RegionEU,
	"sea":  RegionAsia,
	"asia": RegionAsia,
}

// domains maps each Region to the top-level domain of its API host.
var domains = map[Region]string{
	RegionNA:   "com",
	RegionRU:   "ru",
	RegionEU:   "eu",
	RegionAsia: "sea",
}

// ParseRegion resolves a region code case-insensitively.
// It returns ErrInvalidConfiguration for an empty or unknown code.
func ParseRegion(code string) (Region, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		return "", fmt.Errorf("%w: region is required", ErrInvalidConfiguration)
	}
	r, ok := regionCodes[c]
	if !ok {
		return "", fmt.Errorf("%w: unknown region %q; must be one of: %s",
			ErrInvalidConfiguration, code, strings.Join(RegionCodes(), ", "))
	}
	return r, nil
}

// ValidRegion reports whether code is an accepted region code.
func ValidRegion(code string) bool {
	_, err := ParseRegion(code)
	return err == nil
}

// Domain returns the top-level domain used for requests to r.
func (r Region) Domain() string {
	return domains[r]
}

// Valid reports whether r is one of the supported regions.
func (r Region) Valid() bool {
	_, ok := domains[r]
	return ok
}

func (r Region) String() string {
	return string(r)
}

// Regions returns the supported regions in a stable order.
func Regions() []Region {
	return []Region{RegionNA, RegionRU, RegionEU, RegionAsia}
}

// RegionCodes returns every accepted region code, aliases included.
func RegionCodes() []string {
	return []string{"na", "ru", "eu", "sea", "asia"}
}
