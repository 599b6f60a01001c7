// internal/sqlitesink/sink.go

// Package sqlitesink records reported operons into a SQLite database,
// one run row plus one operon row per report. The text/JSON stream is
// unaffected; the database is an additional sink.
package sqlitesink

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"opfind/internal/report"
)

const schema = `
CREATE TABLE IF NOT EXISTS opfind_runs (
	run_id              TEXT PRIMARY KEY,
	started_at          TEXT NOT NULL,
	max_gap             INTEGER NOT NULL,
	require_same_strand INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS operons (
	run_id              TEXT NOT NULL REFERENCES opfind_runs(run_id),
	query_full          TEXT NOT NULL,
	query_id            TEXT NOT NULL,
	query_species       TEXT NOT NULL,
	assembly            TEXT NOT NULL,
	contig              TEXT NOT NULL,
	operon_start        INTEGER NOT NULL,
	operon_end          INTEGER NOT NULL,
	operon_size         INTEGER NOT NULL,
	members_protein_ids TEXT NOT NULL,
	members_coords      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS operons_query_idx ON operons(run_id, query_id);
`

// Sink is an open database with one active run.
type Sink struct {
	db    *sql.DB
	runID string
}

// Open opens (creating if needed) the database at path, ensures the
// schema, and registers a new run tagged with a fresh UUID.
func Open(ctx context.Context, path string, maxGap int, requireSameStrand bool) (*Sink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &Sink{db: db, runID: uuid.NewString()}
	_, err = db.ExecContext(ctx,
		`INSERT INTO opfind_runs (run_id, started_at, max_gap, require_same_strand) VALUES (?, ?, ?, ?)`,
		s.runID, time.Now().UTC().Format(time.RFC3339), maxGap, boolInt(requireSameStrand))
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Sink) RunID() string { return s.runID }

// Write inserts one reported operon under the current run.
func (s *Sink) Write(ctx context.Context, r report.Report) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO operons (run_id, query_full, query_id, query_species, assembly, contig,
			operon_start, operon_end, operon_size, members_protein_ids, members_coords)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.runID, r.QueryFull, r.QueryID, r.QuerySpecies, r.Assembly, r.Contig,
		r.Start, r.End, r.Size(), r.MemberIDs(), r.MemberCoords())
	return err
}

func (s *Sink) Close() error { return s.db.Close() }

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
