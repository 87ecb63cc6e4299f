package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jwulff/callboard/internal/api"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// LiveCallsLimit caps the live-calls view.
const LiveCallsLimit = 50

// VolumeDays is the length of the call-volume series.
const VolumeDays = 7

// sqlTimeLayout is how timestamps are bound into range queries. Both the
// SQLite text encoding and MySQL DATETIME compare correctly against it.
const sqlTimeLayout = "2006-01-02 15:04:05"

// Store provides read-only access to the assistant database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens a database with the given driver ("sqlite" or "mysql").
func Open(driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// OpenSQLite opens the SQLite file at path in read-only mode with WAL.
func OpenSQLite(path string) (*Store, error) {
	return Open("sqlite", fmt.Sprintf("file:%s?mode=ro&_journal_mode=WAL", path))
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// LiveCalls returns the most recent calls, newest first. Each call is
// classified by its caller's latest ticket, when there is one.
func (s *Store) LiveCalls(ctx context.Context) ([]api.Call, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.id, c.caller_id, c.transcript, c.sentiment, c.summary, c.timestamp,
			(SELECT t.issue_type FROM tickets t WHERE t.caller_id = c.caller_id
				ORDER BY t.created_at DESC LIMIT 1),
			(SELECT t.urgency FROM tickets t WHERE t.caller_id = c.caller_id
				ORDER BY t.created_at DESC LIMIT 1)
		FROM call_logs c
		ORDER BY c.timestamp DESC
		LIMIT ?
	`, LiveCallsLimit)
	if err != nil {
		return nil, fmt.Errorf("query call logs: %w", err)
	}
	defer rows.Close()

	calls := []api.Call{}
	for rows.Next() {
		var (
			id                                           int64
			callerID, transcript, sentiment, summary, ts sql.NullString
			issueType, urgency                           sql.NullString
		)
		if err := rows.Scan(&id, &callerID, &transcript, &sentiment, &summary, &ts,
			&issueType, &urgency); err != nil {
			return nil, fmt.Errorf("scan call log: %w", err)
		}

		row := CallLog{
			ID:         id,
			CallerID:   callerID.String,
			Transcript: transcript.String,
			Sentiment:  sentiment.String,
			Summary:    summary.String,
			Timestamp:  ts.String,
		}
		var ticket *Ticket
		if urgency.Valid {
			ticket = &Ticket{IssueType: issueType.String, Urgency: urgency.String}
		}
		calls = append(calls, row.Call(ticket))
	}
	return calls, rows.Err()
}

// Stats returns sentiment counts over all calls. SLA and latency are not
// recorded in the database and are left absent.
func (s *Store) Stats(ctx context.Context) (api.DashboardStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sentiment, COUNT(*)
		FROM call_logs
		WHERE sentiment IS NOT NULL
		GROUP BY sentiment
		ORDER BY sentiment
	`)
	if err != nil {
		return api.DashboardStats{}, fmt.Errorf("query sentiment: %w", err)
	}
	defer rows.Close()

	breakdown := api.NewSentimentBreakdown()
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return api.DashboardStats{}, fmt.Errorf("scan sentiment: %w", err)
		}
		breakdown.Set(label, count)
	}
	if err := rows.Err(); err != nil {
		return api.DashboardStats{}, err
	}

	if breakdown.Len() == 0 {
		breakdown.Set("Positive", 0)
		breakdown.Set("Neutral", 0)
		breakdown.Set("Negative", 0)
	}
	return api.DashboardStats{SentimentBreakdown: breakdown}, nil
}

// CallVolume returns per-day call counts for the last VolumeDays days,
// oldest first, ending today.
func (s *Store) CallVolume(ctx context.Context) ([]api.CallVolumePoint, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	points := make([]api.CallVolumePoint, 0, VolumeDays)
	for i := VolumeDays - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)

		var count int
		err := s.db.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM call_logs
			WHERE timestamp >= ? AND timestamp < ?
		`, start.Format(sqlTimeLayout), end.Format(sqlTimeLayout)).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("count calls for %s: %w", start.Format("2006-01-02"), err)
		}
		points = append(points, api.CallVolumePoint{Date: start.Format("2006-01-02"), Count: count})
	}
	return points, nil
}

var storedTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
}

// normalizeTimestamp rewrites a stored timestamp as a zone-less ISO-8601
// wall-clock value, the form the HTTP API serves.
func normalizeTimestamp(s string) string {
	for _, layout := range storedTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04:05")
		}
	}
	return s
}
