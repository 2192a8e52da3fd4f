// Package areas owns the relation definitions and the per-relation files
// derived from OSM and the reference data.
package areas

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/spf13/afero"
	"go.trai.ch/gimmisn/internal/adapters/fs"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// RelationsFile lists all relations under the datadir.
const RelationsFile = "relations.yaml"

type relationDef struct {
	OSMRelation    int64  `yaml:"osmrelation"`
	RefCounty      string `yaml:"refcounty"`
	RefSettlement  string `yaml:"refsettlement"`
	MissingStreets string `yaml:"missing-streets"`
	Inactive       bool   `yaml:"inactive"`
}

// relationOverride is the optional relation-<name>.yaml.
type relationOverride struct {
	MissingStreets string `yaml:"missing-streets"`
	Inactive       *bool  `yaml:"inactive"`
}

// Relations is a ports.RelationProvider backed by YAML files.
type Relations struct {
	fs      afero.Fs
	datadir string
	workdir string

	defs      map[string]relationDef
	relations map[string]*domain.Relation
}

var _ ports.RelationProvider = (*Relations)(nil)

// NewRelations creates a provider reading definitions from datadir and
// placing outputs under workdir.
func NewRelations(fsys afero.Fs, datadir, workdir string) *Relations {
	return &Relations{
		fs:        fsys,
		datadir:   datadir,
		workdir:   workdir,
		relations: make(map[string]*domain.Relation),
	}
}

func (r *Relations) load() error {
	if r.defs != nil {
		return nil
	}

	path := filepath.Join(r.datadir, RelationsFile)
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRelationsReadFailed.Error())
	}

	defs := make(map[string]relationDef)
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRelationsReadFailed.Error()), "path", path)
	}
	r.defs = defs
	return nil
}

// Names returns every defined relation, sorted.
func (r *Relations) Names(_ context.Context) ([]string, error) {
	if err := r.load(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// ActiveNames returns the sorted relations selected by filter.
func (r *Relations) ActiveNames(ctx context.Context, filter domain.RelationFilter) ([]string, error) {
	names, err := r.Names(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]string, 0, len(names))
	for _, name := range names {
		rel, err := r.Get(ctx, name)
		if err != nil {
			return nil, err
		}
		if filter.RefCounty != "" && rel.RefCounty != filter.RefCounty {
			continue
		}
		if filter.RefSettlement != "" && rel.RefSettlement != filter.RefSettlement {
			continue
		}
		if rel.Inactive && !filter.ActivateAll {
			if !filter.ActivateNew {
				continue
			}
			fetched, err := fs.Exists(r.fs, rel.Files.OSMStreets)
			if err != nil {
				return nil, err
			}
			if fetched {
				continue
			}
		}
		active = append(active, name)
	}
	return active, nil
}

// Get returns the descriptor of a relation.
func (r *Relations) Get(_ context.Context, name string) (*domain.Relation, error) {
	if rel, ok := r.relations[name]; ok {
		return rel, nil
	}
	if err := r.load(); err != nil {
		return nil, err
	}

	def, ok := r.defs[name]
	if !ok {
		return nil, zerr.With(domain.ErrRelationNotFound, "relation", name)
	}

	files := r.files(name)
	override, err := r.readOverride(files.Config)
	if err != nil {
		return nil, err
	}
	if override.MissingStreets != "" {
		def.MissingStreets = override.MissingStreets
	}
	if override.Inactive != nil {
		def.Inactive = *override.Inactive
	}

	policy, err := domain.ParseMissingStreetsPolicy(def.MissingStreets)
	if err != nil {
		return nil, zerr.With(err, "relation", name)
	}

	rel := &domain.Relation{
		Name:           name,
		OSMRelation:    def.OSMRelation,
		RefCounty:      def.RefCounty,
		RefSettlement:  def.RefSettlement,
		MissingStreets: policy,
		Inactive:       def.Inactive,
		Files:          files,
	}
	r.relations[name] = rel
	return rel, nil
}

func (r *Relations) readOverride(path string) (relationOverride, error) {
	var override relationOverride
	ok, err := fs.Exists(r.fs, path)
	if err != nil || !ok {
		return override, err
	}

	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return override, zerr.Wrap(err, domain.ErrRelationsReadFailed.Error())
	}
	if err := yaml.Unmarshal(data, &override); err != nil {
		return override, zerr.With(zerr.Wrap(err, domain.ErrRelationsReadFailed.Error()), "path", path)
	}
	return override, nil
}

func (r *Relations) files(name string) domain.RelationFiles {
	return domain.RelationFiles{
		Config:                 filepath.Join(r.datadir, "relation-"+name+".yaml"),
		OSMStreets:             filepath.Join(r.workdir, "streets-"+name+".csv"),
		OSMHousenumbers:        filepath.Join(r.workdir, "street-housenumbers-"+name+".csv"),
		RefStreets:             filepath.Join(r.workdir, "streets-reference-"+name+".lst"),
		RefHousenumbers:        filepath.Join(r.workdir, "street-housenumbers-reference-"+name+".lst"),
		StreetsCoverage:        filepath.Join(r.workdir, name+"-streets.percent"),
		HousenumbersCoverage:   filepath.Join(r.workdir, name+".percent"),
		AdditionalStreetsCount: filepath.Join(r.workdir, name+"-additional-streets.count"),
		Lints:                  filepath.Join(r.workdir, name+".lints"),
	}
}

// areaID is the Overpass area id of a relation.
func areaID(osmRelation int64) string {
	return strconv.FormatInt(3600000000+osmRelation, 10)
}
