package domain

// ArtifactKind identifies one refreshable output of a relation.
type ArtifactKind string

const (
	// ArtifactOSMStreets is the street list fetched from Overpass.
	ArtifactOSMStreets ArtifactKind = "osm-streets"
	// ArtifactOSMHousenumbers is the house number list fetched from Overpass.
	ArtifactOSMHousenumbers ArtifactKind = "osm-housenumbers"
	// ArtifactRefStreets is the reference street list.
	ArtifactRefStreets ArtifactKind = "ref-streets"
	// ArtifactRefHousenumbers is the reference house number list.
	ArtifactRefHousenumbers ArtifactKind = "ref-housenumbers"
	// ArtifactMissingStreets is the street coverage.
	ArtifactMissingStreets ArtifactKind = "missing-streets"
	// ArtifactMissingHousenumbers is the house number coverage.
	ArtifactMissingHousenumbers ArtifactKind = "missing-housenumbers"
	// ArtifactAdditionalStreets is the count of streets missing from the reference.
	ArtifactAdditionalStreets ArtifactKind = "additional-streets"
	// ArtifactStatsExtract is the country-wide raw extract.
	ArtifactStatsExtract ArtifactKind = "stats-extract"
)

// RelationArtifacts lists the per-relation kinds in refresh order.
var RelationArtifacts = []ArtifactKind{
	ArtifactOSMStreets,
	ArtifactOSMHousenumbers,
	ArtifactRefStreets,
	ArtifactRefHousenumbers,
	ArtifactMissingStreets,
	ArtifactMissingHousenumbers,
	ArtifactAdditionalStreets,
}

// OutputPath returns the file whose existence marks the artifact as present.
func (k ArtifactKind) OutputPath(files RelationFiles) string {
	switch k {
	case ArtifactOSMStreets:
		return files.OSMStreets
	case ArtifactOSMHousenumbers:
		return files.OSMHousenumbers
	case ArtifactRefStreets:
		return files.RefStreets
	case ArtifactRefHousenumbers:
		return files.RefHousenumbers
	case ArtifactMissingStreets:
		return files.StreetsCoverage
	case ArtifactMissingHousenumbers:
		return files.HousenumbersCoverage
	case ArtifactAdditionalStreets:
		return files.AdditionalStreetsCount
	default:
		return ""
	}
}

// AppliesTo reports whether the kind is enabled by a relation's policy.
// The two OSM kinds always apply.
func (k ArtifactKind) AppliesTo(policy MissingStreetsPolicy) bool {
	switch k {
	case ArtifactRefStreets, ArtifactMissingStreets, ArtifactAdditionalStreets:
		return policy.ChecksStreets()
	case ArtifactRefHousenumbers, ArtifactMissingHousenumbers:
		return policy.ChecksHousenumbers()
	default:
		return true
	}
}

// Mode selects which parts of the nightly run are performed.
type Mode string

const (
	// ModeAll runs the statistics update, then the relation refresh.
	ModeAll Mode = "all"
	// ModeStats runs only the statistics update.
	ModeStats Mode = "stats"
	// ModeRelations runs only the relation refresh.
	ModeRelations Mode = "relations"
)

// ParseMode validates a mode string.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeAll, ModeStats, ModeRelations:
		return Mode(value), nil
	default:
		return "", ErrInvalidMode
	}
}

// IncludesStats reports whether the mode runs the statistics update.
func (m Mode) IncludesStats() bool {
	return m == ModeAll || m == ModeStats
}

// IncludesRelations reports whether the mode runs the relation refresh.
func (m Mode) IncludesRelations() bool {
	return m == ModeAll || m == ModeRelations
}
