package domain

import "go.trai.ch/zerr"

// MissingStreetsPolicy controls which artifact kinds apply to a relation.
type MissingStreetsPolicy string

const (
	// MissingStreetsYes checks both streets and house numbers.
	MissingStreetsYes MissingStreetsPolicy = "yes"
	// MissingStreetsNo checks house numbers only.
	MissingStreetsNo MissingStreetsPolicy = "no"
	// MissingStreetsOnly checks streets only.
	MissingStreetsOnly MissingStreetsPolicy = "only"
)

// ParseMissingStreetsPolicy converts a config value into a policy.
// An empty value defaults to MissingStreetsYes.
func ParseMissingStreetsPolicy(value string) (MissingStreetsPolicy, error) {
	switch MissingStreetsPolicy(value) {
	case "", MissingStreetsYes:
		return MissingStreetsYes, nil
	case MissingStreetsNo:
		return MissingStreetsNo, nil
	case MissingStreetsOnly:
		return MissingStreetsOnly, nil
	default:
		return "", zerr.With(ErrInvalidMissingStreetsPolicy, "value", value)
	}
}

// ChecksStreets reports whether street-derived artifacts apply.
func (p MissingStreetsPolicy) ChecksStreets() bool {
	return p != MissingStreetsNo
}

// ChecksHousenumbers reports whether house-number-derived artifacts apply.
func (p MissingStreetsPolicy) ChecksHousenumbers() bool {
	return p != MissingStreetsOnly
}

// RelationFiles holds the paths a relation reads from and writes to.
type RelationFiles struct {
	// Config is the relation's source configuration file.
	Config string
	// OSMStreets is the street list fetched from Overpass.
	OSMStreets string
	// OSMHousenumbers is the house number list fetched from Overpass.
	OSMHousenumbers string
	// RefStreets is the street list filtered from the reference.
	RefStreets string
	// RefHousenumbers is the house number list filtered from the references.
	RefHousenumbers string
	// StreetsCoverage is the street coverage percentage.
	StreetsCoverage string
	// HousenumbersCoverage is the house number coverage percentage.
	HousenumbersCoverage string
	// AdditionalStreetsCount is the number of streets present only in OSM.
	AdditionalStreetsCount string
	// Lints lists reference house numbers that look invalid.
	Lints string
}

// Relation is an immutable descriptor of one geographic work item.
type Relation struct {
	Name           string
	OSMRelation    int64
	RefCounty      string
	RefSettlement  string
	MissingStreets MissingStreetsPolicy
	Inactive       bool
	Files          RelationFiles
}

// RelationFilter selects the active relations for a run.
type RelationFilter struct {
	// ActivateAll treats inactive relations as active.
	ActivateAll bool
	// ActivateNew treats relations that were never fetched as active.
	ActivateNew bool
	// RefCounty limits the relations to a reference county, if set.
	RefCounty string
	// RefSettlement limits the relations to a reference settlement, if set.
	RefSettlement string
}
