package ports

import (
	"context"

	"go.trai.ch/gimmisn/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=relations.go -destination=mocks/mock_relations.go -package=mocks

// RelationProvider enumerates the relations known to the system.
type RelationProvider interface {
	// ActiveNames returns the names of the relations selected by filter, in order.
	ActiveNames(ctx context.Context, filter domain.RelationFilter) ([]string, error)

	// Get returns the descriptor of a relation.
	Get(ctx context.Context, name string) (*domain.Relation, error)
}

// Areas performs the domain computations on a relation: building queries,
// writing fetched and reference data, and comparing them.
type Areas interface {
	// OSMStreetsQuery builds the query fetching the streets of a relation.
	OSMStreetsQuery(rel *domain.Relation) (string, error)

	// OSMHousenumbersQuery builds the query fetching the house numbers of a relation.
	OSMHousenumbersQuery(rel *domain.Relation) (string, error)

	// WriteOSMStreets persists fetched streets and returns the number of bytes written.
	WriteOSMStreets(rel *domain.Relation, data []byte) (int, error)

	// WriteOSMHousenumbers persists fetched house numbers and returns the number of bytes written.
	WriteOSMHousenumbers(rel *domain.Relation, data []byte) (int, error)

	// WriteRefStreets filters the reference street list for a relation.
	WriteRefStreets(rel *domain.Relation) error

	// WriteRefHousenumbers filters the reference house number lists for a relation.
	WriteRefHousenumbers(rel *domain.Relation) error

	// WriteMissingStreets writes the street coverage of a relation.
	WriteMissingStreets(rel *domain.Relation) error

	// WriteMissingHousenumbers writes the house number coverage from a computed result.
	WriteMissingHousenumbers(rel *domain.Relation, missing *domain.MissingHousenumbers) error

	// WriteAdditionalStreets writes the number of streets missing from the reference.
	WriteAdditionalStreets(rel *domain.Relation) error

	// MissingHousenumbers compares reference and OSM house numbers.
	MissingHousenumbers(rel *domain.Relation) (*domain.MissingHousenumbers, error)

	// AdditionalHousenumbers lists OSM house numbers missing from the reference.
	AdditionalHousenumbers(rel *domain.Relation) (*domain.AdditionalHousenumbers, error)

	// WriteLints records suspicious reference data of a relation.
	WriteLints(rel *domain.Relation) error
}
