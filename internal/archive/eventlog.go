package archive

import (
	"context"
	"database/sql"
	"time"
)

const EventResponsesIngested = "ResponsesIngested"

type Event struct {
	Seq       int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// EventLog is the append-only history of archive changes.
type EventLog struct {
	db  *sql.DB
	now func() time.Time
}

func NewEventLog(db *sql.DB) *EventLog { return &EventLog{db: db, now: time.Now} }

func (l *EventLog) Append(ctx context.Context, e Event) error {
	return l.append(ctx, l.db, e)
}

func (l *EventLog) append(ctx context.Context, x execer, e Event) error {
	if e.SiteID == "" {
		e.SiteID = "local"
	}
	_, err := x.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		e.SiteID, e.Type, e.Key, e.DataJSON, l.now().Unix())
	return err
}

// Since returns events with Seq greater than after, oldest first.
func (l *EventLog) Since(ctx context.Context, after int64) ([]Event, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT seq, site_id, typ, key, data, created_at
		 FROM event_log WHERE seq > $1 ORDER BY seq`, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.SiteID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
