// Package store implements ports.Store on SQLite.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
create table if not exists mtimes (
	page text primary key not null,
	last_modified integer not null
);
create table if not exists missing_housenumbers_cache (
	relation text primary key not null,
	json text not null
);
create table if not exists additional_housenumbers_cache (
	relation text primary key not null,
	json text not null
);
create table if not exists stats_counts (
	date text primary key not null,
	count integer not null
);
create table if not exists stats_usercounts (
	date text primary key not null,
	count integer not null
);
create table if not exists stats_invalid_addr_cities (
	postcode text not null,
	city text not null,
	street text not null,
	housenumber text not null,
	user text not null
);
`

// Table names are interpolated into SQL, so only these are accepted.
var (
	namespaces = map[domain.CacheNamespace]bool{
		domain.NamespaceMissingHousenumbers:    true,
		domain.NamespaceAdditionalHousenumbers: true,
	}
	series = map[domain.CountSeries]bool{
		domain.SeriesHousenumbers: true,
		domain.SeriesUsers:        true,
	}
)

// Store is a SQLite-backed ports.Store.
type Store struct {
	db *sql.DB
}

var _ ports.Store = (*Store)(nil)

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetMtime returns the recorded mtime of key.
func (s *Store) GetMtime(ctx context.Context, key string) (time.Time, bool, error) {
	var nanos int64
	err := s.db.QueryRowContext(ctx, "select last_modified from mtimes where page = ?", key).Scan(&nanos)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return time.Unix(0, nanos), true, nil
}

// SetMtime records the mtime of key.
func (s *Store) SetMtime(ctx context.Context, key string, mtime time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`insert into mtimes (page, last_modified) values (?, ?)
		on conflict(page) do update set last_modified = excluded.last_modified`,
		key, mtime.UnixNano())
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// GetJSON returns the payload stored for key in namespace.
func (s *Store) GetJSON(ctx context.Context, namespace domain.CacheNamespace, key string) (string, bool, error) {
	if !namespaces[namespace] {
		return "", false, zerr.With(domain.ErrInvalidCacheNamespace, "namespace", string(namespace))
	}

	var value string
	//nolint:gosec // namespace is validated against a fixed set
	err := s.db.QueryRowContext(ctx, "select json from "+string(namespace)+" where relation = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key)
	}
	return value, true, nil
}

// SetJSON stores the payload for key in namespace.
func (s *Store) SetJSON(ctx context.Context, namespace domain.CacheNamespace, key, value string) error {
	if !namespaces[namespace] {
		return zerr.With(domain.ErrInvalidCacheNamespace, "namespace", string(namespace))
	}

	//nolint:gosec // namespace is validated against a fixed set
	_, err := s.db.ExecContext(ctx,
		"insert into "+string(namespace)+` (relation, json) values (?, ?)
		on conflict(relation) do update set json = excluded.json`,
		key, value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key)
	}
	return nil
}

// UpsertCount stores the value of a series for a date, replacing any previous value.
func (s *Store) UpsertCount(ctx context.Context, name domain.CountSeries, date string, value int) error {
	if !series[name] {
		return zerr.With(domain.ErrInvalidCountSeries, "series", string(name))
	}

	//nolint:gosec // series is validated against a fixed set
	_, err := s.db.ExecContext(ctx,
		"insert into "+string(name)+` (date, count) values (?, ?)
		on conflict(date) do update set count = excluded.count`,
		date, value)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "date", date)
	}
	return nil
}

// ReplaceInvalidAddrCities swaps the stored invalid-city addresses for rows in
// one transaction.
func (s *Store) ReplaceInvalidAddrCities(ctx context.Context, rows []domain.HouseNumberRow) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "delete from stats_invalid_addr_cities"); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	for _, row := range rows {
		_, err := tx.ExecContext(ctx,
			`insert into stats_invalid_addr_cities (postcode, city, street, housenumber, user)
			values (?, ?, ?, ?, ?)`,
			row.Postcode, row.City, row.Street, row.Housenumber, row.User)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "city", row.City)
		}
	}

	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

// Counts returns all rows of a series ordered by date.
func (s *Store) Counts(ctx context.Context, name domain.CountSeries) ([]domain.DatedCount, error) {
	if !series[name] {
		return nil, zerr.With(domain.ErrInvalidCountSeries, "series", string(name))
	}

	//nolint:gosec // series is validated against a fixed set
	rows, err := s.db.QueryContext(ctx, "select date, count from "+string(name)+" order by date")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "series", string(name))
	}
	defer func() { _ = rows.Close() }()

	var counts []domain.DatedCount
	for rows.Next() {
		var c domain.DatedCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return counts, nil
}
