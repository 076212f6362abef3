// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes a ProcessedData aggregate to downstream formats:
// a SQLite database for querying, CSV for spreadsheets, and YAML for
// reports. Exports are output artifacts; the pipeline itself keeps no
// state between runs.
package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/litscope/pkg/types"
)

// Store manages one SQLite export database.
type Store struct {
	db *sql.DB
}

// NewStore creates (or overwrites the tables of) the export database at
// path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening export database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			key TEXT PRIMARY KEY,
			item_type TEXT,
			title TEXT NOT NULL,
			authors TEXT,
			year INTEGER,
			abstract TEXT,
			venue TEXT,
			doi TEXT,
			url TEXT,
			tags TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS authors (
			clean_name TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			paper_count INTEGER,
			first_year INTEGER,
			last_year INTEGER,
			influence REAL,
			primary_topics TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS collaborations (
			author_a TEXT NOT NULL,
			author_b TEXT NOT NULL,
			weight INTEGER NOT NULL,
			PRIMARY KEY (author_a, author_b)
		)`,
		`CREATE TABLE IF NOT EXISTS topics (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			coverage REAL,
			paper_count INTEGER,
			connections TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS gaps (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL,
			title TEXT NOT NULL,
			severity TEXT,
			gap_size REAL,
			opportunity_score REAL,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_gaps_type ON gaps(type)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Write replaces the database contents with the aggregate, inside one
// transaction.
func (s *Store) Write(ctx context.Context, data *types.ProcessedData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"papers", "authors", "collaborations", "topics", "gaps"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := s.writePapers(ctx, tx, data.Papers); err != nil {
		return err
	}
	if err := s.writeNetwork(ctx, tx, data.Network); err != nil {
		return err
	}
	if err := s.writeTopics(ctx, tx, data.Topics); err != nil {
		return err
	}
	if err := s.writeGaps(ctx, tx, data.Gaps); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) writePapers(ctx context.Context, tx *sql.Tx, papers []types.PaperRecord) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (key, item_type, title, authors, year, abstract, venue, doi, url, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing paper insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range papers {
		authorsJSON, _ := json.Marshal(p.Authors)
		tagsJSON, _ := json.Marshal(p.Tags)
		venue := p.Venue
		if venue == "" {
			venue = p.PublicationTitle
		}
		if _, err := stmt.ExecContext(ctx, p.Key, p.ItemType, p.Title, string(authorsJSON),
			nullableYear(p.PublicationYear), p.Abstract, venue, p.DOI, p.URL, string(tagsJSON)); err != nil {
			return fmt.Errorf("inserting paper %s: %w", p.Key, err)
		}
	}
	return nil
}

func (s *Store) writeNetwork(ctx context.Context, tx *sql.Tx, net types.AuthorNetwork) error {
	authorStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO authors (clean_name, name, paper_count, first_year, last_year, influence, primary_topics)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing author insert: %w", err)
	}
	defer authorStmt.Close()

	for _, a := range net.Authors {
		topicsJSON, _ := json.Marshal(a.PrimaryTopics)
		if _, err := authorStmt.ExecContext(ctx, a.CleanName, a.Name, a.PaperCount,
			nullableYear(a.FirstYear), nullableYear(a.LastYear), a.Influence, string(topicsJSON)); err != nil {
			return fmt.Errorf("inserting author %s: %w", a.CleanName, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO collaborations (author_a, author_b, weight) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing collaboration insert: %w", err)
	}
	defer edgeStmt.Close()

	for _, e := range net.Collaborations {
		if _, err := edgeStmt.ExecContext(ctx, e.AuthorA, e.AuthorB, e.Weight); err != nil {
			return fmt.Errorf("inserting collaboration %s/%s: %w", e.AuthorA, e.AuthorB, err)
		}
	}
	return nil
}

func (s *Store) writeTopics(ctx context.Context, tx *sql.Tx, clusters []types.TopicCluster) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO topics (id, label, coverage, paper_count, connections) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing topic insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range clusters {
		connJSON, _ := json.Marshal(c.Connections)
		if _, err := stmt.ExecContext(ctx, c.ID, c.Label, c.Coverage, len(c.Papers), string(connJSON)); err != nil {
			return fmt.Errorf("inserting topic %s: %w", c.ID, err)
		}
	}
	return nil
}

func (s *Store) writeGaps(ctx context.Context, tx *sql.Tx, gaps []types.ResearchGap) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO gaps (type, title, severity, gap_size, opportunity_score, description)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing gap insert: %w", err)
	}
	defer stmt.Close()

	for _, g := range gaps {
		if _, err := stmt.ExecContext(ctx, string(g.Type), g.Title, string(g.Severity),
			g.GapSize, g.OpportunityScore, g.Description); err != nil {
			return fmt.Errorf("inserting gap %q: %w", g.Title, err)
		}
	}
	return nil
}

// nullableYear maps the zero "no year" sentinel to SQL NULL.
func nullableYear(y int) any {
	if y == 0 {
		return nil
	}
	return y
}
