// Package archive stores exported quiz responses grouped by the file they
// came from. No learner identity is kept.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/woophysics/lessons/internal/formative"
)

var ErrSourceNotFound = errors.New("archive: source not found")

// Source is one ingested export file.
type Source struct {
	ID          string
	Name        string
	RecordCount int
	IngestedAt  time.Time
}

type Archive struct {
	db     *sql.DB
	events *EventLog
}

func New(db *sql.DB) *Archive {
	return &Archive{db: db, events: NewEventLog(db)}
}

func (a *Archive) Events() *EventLog { return a.events }

type ingestedData struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

// Ingest stores records under a fresh source id in one transaction and
// appends a ResponsesIngested event.
func (a *Archive) Ingest(ctx context.Context, name string, records []formative.Record) (Source, error) {
	src := Source{
		ID:          uuid.NewString(),
		Name:        name,
		RecordCount: len(records),
		IngestedAt:  a.events.now().UTC().Truncate(time.Second),
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return Source{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sources (id, name, record_count, ingested_at) VALUES ($1,$2,$3,$4)`,
		src.ID, src.Name, src.RecordCount, src.IngestedAt.Unix()); err != nil {
		return Source{}, fmt.Errorf("archive: insert source: %w", err)
	}
	for i, r := range records {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO responses (source_id, position, item_id, round, correct, value, misconception)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			src.ID, i, r.ItemID, int(r.Round), r.Correct, r.Value, r.Misconception); err != nil {
			return Source{}, fmt.Errorf("archive: insert response %d: %w", i, err)
		}
	}

	data, err := json.Marshal(ingestedData{Name: name, Records: len(records)})
	if err != nil {
		return Source{}, err
	}
	if err := a.events.append(ctx, tx, Event{Type: EventResponsesIngested, Key: src.ID, DataJSON: string(data)}); err != nil {
		return Source{}, fmt.Errorf("archive: append event: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return Source{}, err
	}
	return src, nil
}

// Sources lists ingested files, oldest first.
func (a *Archive) Sources(ctx context.Context) ([]Source, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, name, record_count, ingested_at FROM sources ORDER BY ingested_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Source
	for rows.Next() {
		var (
			s  Source
			at int64
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.RecordCount, &at); err != nil {
			return nil, err
		}
		s.IngestedAt = time.Unix(at, 0).UTC()
		out = append(out, s)
	}
	return out, rows.Err()
}

// Records returns the records of one source in file order.
func (a *Archive) Records(ctx context.Context, sourceID string) ([]formative.Record, error) {
	var exists int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sources WHERE id = $1`, sourceID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourceID)
	}

	rows, err := a.db.QueryContext(ctx,
		`SELECT item_id, round, correct, value, misconception
		 FROM responses WHERE source_id = $1 ORDER BY position`, sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []formative.Record{}
	for rows.Next() {
		var (
			r     formative.Record
			round int
		)
		if err := rows.Scan(&r.ItemID, &round, &r.Correct, &r.Value, &r.Misconception); err != nil {
			return nil, err
		}
		r.Round = formative.Round(round)
		out = append(out, r)
	}
	return out, rows.Err()
}
