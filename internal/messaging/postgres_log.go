package messaging

import (
	"database/sql"
	"fmt"
)

// PostgresLog persists the session message log to an append-only table.
// Durable storage of the log is an extension over the in-memory default;
// the customer dataset itself is never persisted.
type PostgresLog struct {
	db        *sql.DB
	sessionID string
}

// NewPostgresLog creates a log writing into the message_log table under the
// given session id.
func NewPostgresLog(db *sql.DB, sessionID string) *PostgresLog {
	return &PostgresLog{db: db, sessionID: sessionID}
}

// EnsureSchema creates the message_log table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS message_log (
			seq          BIGSERIAL PRIMARY KEY,
			session_id   TEXT NOT NULL,
			id           TEXT NOT NULL,
			customer_id  INTEGER NOT NULL,
			customer_name TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			message_type TEXT NOT NULL,
			content      TEXT NOT NULL,
			sent_at      TIMESTAMPTZ NOT NULL,
			status       TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create message_log table: %w", err)
	}
	return nil
}

// Append inserts one record.
func (l *PostgresLog) Append(rec Record) error {
	_, err := l.db.Exec(`
		INSERT INTO message_log
			(session_id, id, customer_id, customer_name, phone_number, message_type, content, sent_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		l.sessionID, rec.ID, rec.CustomerID, rec.Name, rec.PhoneNumber,
		rec.MessageType, rec.Content, rec.SentAt, string(rec.Status))
	if err != nil {
		return fmt.Errorf("insert message record: %w", err)
	}
	return nil
}

// Records returns the session's records in insertion order.
func (l *PostgresLog) Records() ([]Record, error) {
	rows, err := l.db.Query(`
		SELECT id, customer_id, customer_name, phone_number, message_type, content, sent_at, status
		FROM message_log
		WHERE session_id = $1
		ORDER BY seq`, l.sessionID)
	if err != nil {
		return nil, fmt.Errorf("query message records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var status string
		if err := rows.Scan(&rec.ID, &rec.CustomerID, &rec.Name, &rec.PhoneNumber,
			&rec.MessageType, &rec.Content, &rec.SentAt, &status); err != nil {
			return nil, fmt.Errorf("scan message record: %w", err)
		}
		rec.Status = Status(status)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of records in the session.
func (l *PostgresLog) Count() (int, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM message_log WHERE session_id = $1`, l.sessionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count message records: %w", err)
	}
	return n, nil
}
