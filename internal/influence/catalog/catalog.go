// Package catalog persists influence sources in sqlite.
//
// The catalog is the Source Catalog collaborator of the influence
// pipeline: placement tools write sources here, and every recompute reads
// the current set fresh. Only sources and faction colour overrides are
// stored; field, contour and shape data are never persisted.
package catalog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/wardmap-data/influence.map/internal/influence"
)

// StoredSource is one influence source row. MapID partitions sources per
// map document so several maps can share a catalog file.
type StoredSource struct {
	SourceID    string  `json:"source_id"`
	MapID       string  `json:"map_id"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Radius      float64 `json:"radius"`
	Power       float64 `json:"power"`
	FactionID   string  `json:"faction_id"`
	CreatedAtNs int64   `json:"created_at_ns"`
	UpdatedAtNs *int64  `json:"updated_at_ns,omitempty"`
}

// Source converts the row to its compute-pipeline form.
func (s StoredSource) Source() influence.Source {
	return influence.Source{
		X:         s.X,
		Y:         s.Y,
		Radius:    s.Radius,
		Power:     s.Power,
		FactionID: s.FactionID,
	}
}

// Store provides persistence for influence sources.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a catalog database at path and runs
// any pending schema migrations. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertSource creates a new source row. If src.SourceID is empty, a new
// UUID is generated. The generated id and creation timestamp are written
// back into src.
func (s *Store) InsertSource(src *StoredSource) error {
	if src.SourceID == "" {
		src.SourceID = uuid.New().String()
	}
	if src.CreatedAtNs == 0 {
		src.CreatedAtNs = time.Now().UnixNano()
	}

	query := `
		INSERT INTO influence_sources (
			source_id, map_id, x, y, radius, power, faction_id,
			created_at_ns, updated_at_ns
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		src.SourceID, src.MapID, src.X, src.Y, src.Radius, src.Power,
		src.FactionID, src.CreatedAtNs, src.UpdatedAtNs,
	)
	if err != nil {
		return fmt.Errorf("failed to insert source: %w", err)
	}
	return nil
}

// UpdateSource rewrites the mutable fields of an existing source row.
func (s *Store) UpdateSource(src *StoredSource) error {
	now := time.Now().UnixNano()
	src.UpdatedAtNs = &now

	query := `
		UPDATE influence_sources
		SET x = ?, y = ?, radius = ?, power = ?, faction_id = ?, updated_at_ns = ?
		WHERE source_id = ?
	`
	result, err := s.db.Exec(query,
		src.X, src.Y, src.Radius, src.Power, src.FactionID, now, src.SourceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update source: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("source not found: %s", src.SourceID)
	}
	return nil
}

// DeleteSource removes a source row by id.
func (s *Store) DeleteSource(sourceID string) error {
	result, err := s.db.Exec(`DELETE FROM influence_sources WHERE source_id = ?`, sourceID)
	if err != nil {
		return fmt.Errorf("failed to delete source: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("source not found: %s", sourceID)
	}
	return nil
}

// GetSource fetches one source row by id.
func (s *Store) GetSource(sourceID string) (*StoredSource, error) {
	query := `
		SELECT source_id, map_id, x, y, radius, power, faction_id,
		       created_at_ns, updated_at_ns
		FROM influence_sources WHERE source_id = ?
	`
	var src StoredSource
	err := s.db.QueryRow(query, sourceID).Scan(
		&src.SourceID, &src.MapID, &src.X, &src.Y, &src.Radius, &src.Power,
		&src.FactionID, &src.CreatedAtNs, &src.UpdatedAtNs,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("source not found: %s", sourceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get source: %w", err)
	}
	return &src, nil
}

// ListSources returns every source row for a map, ordered by creation time
// so repeated reads produce stable input for the compute pipeline.
func (s *Store) ListSources(mapID string) ([]StoredSource, error) {
	query := `
		SELECT source_id, map_id, x, y, radius, power, faction_id,
		       created_at_ns, updated_at_ns
		FROM influence_sources WHERE map_id = ?
		ORDER BY created_at_ns, source_id
	`
	rows, err := s.db.Query(query, mapID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}
	defer rows.Close()

	var sources []StoredSource
	for rows.Next() {
		var src StoredSource
		if err := rows.Scan(
			&src.SourceID, &src.MapID, &src.X, &src.Y, &src.Radius, &src.Power,
			&src.FactionID, &src.CreatedAtNs, &src.UpdatedAtNs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan source row: %w", err)
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate source rows: %w", err)
	}
	return sources, nil
}

// MapSources returns a map's sources in compute-pipeline form.
func (s *Store) MapSources(mapID string) ([]influence.Source, error) {
	stored, err := s.ListSources(mapID)
	if err != nil {
		return nil, err
	}
	sources := make([]influence.Source, len(stored))
	for i, row := range stored {
		sources[i] = row.Source()
	}
	return sources, nil
}

// SetFactionColor records an explicit "#rrggbb" display colour override
// for a faction on one map, replacing any previous override.
func (s *Store) SetFactionColor(mapID, factionID, hexColor string) error {
	query := `
		INSERT INTO faction_colors (map_id, faction_id, color)
		VALUES (?, ?, ?)
		ON CONFLICT (map_id, faction_id) DO UPDATE SET color = excluded.color
	`
	if _, err := s.db.Exec(query, mapID, factionID, hexColor); err != nil {
		return fmt.Errorf("failed to set faction colour: %w", err)
	}
	return nil
}

// FactionColors returns every explicit colour override for a map, keyed by
// faction id.
func (s *Store) FactionColors(mapID string) (map[string]string, error) {
	rows, err := s.db.Query(`SELECT faction_id, color FROM faction_colors WHERE map_id = ?`, mapID)
	if err != nil {
		return nil, fmt.Errorf("failed to list faction colours: %w", err)
	}
	defer rows.Close()

	colors := make(map[string]string)
	for rows.Next() {
		var faction, hex string
		if err := rows.Scan(&faction, &hex); err != nil {
			return nil, fmt.Errorf("failed to scan faction colour row: %w", err)
		}
		colors[faction] = hex
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate faction colour rows: %w", err)
	}
	return colors, nil
}
