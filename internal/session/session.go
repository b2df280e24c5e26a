package session

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Session represents one workout recorded in the database.
type Session struct {
	ID        string     `json:"id"`
	Exercise  string     `json:"exercise"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Reps      int        `json:"reps"`
}

// Rep represents one completed repetition within a session.
type Rep struct {
	SessionID   string    `json:"session_id"`
	RepNumber   int       `json:"rep_number"`
	Side        string    `json:"side"`
	CompletedAt time.Time `json:"completed_at"`
}

// Repository provides CRUD operations for workout sessions.
type Repository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *Repository {
	return &Repository{db: s.db}
}

// Start inserts a new open session for the given exercise and returns it.
func (r *Repository) Start(exercise string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		Exercise:  exercise,
		StartedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, exercise, started_at, reps) VALUES (?, ?, ?, 0)`,
		sess.ID, sess.Exercise, sess.StartedAt,
	)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// RecordRep appends one completed repetition to a session and bumps the
// session's rep count.
func (r *Repository) RecordRep(sessionID string, repNumber int, side string, completedAt time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO session_reps (session_id, rep_number, side, completed_at) VALUES (?, ?, ?, ?)`,
		sessionID, repNumber, side, completedAt,
	); err != nil {
		return err
	}

	if _, err := tx.Exec(
		`UPDATE sessions SET reps = ? WHERE id = ?`,
		repNumber, sessionID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// Finish closes a session, recording its end time and final rep count.
func (r *Repository) Finish(sessionID string, reps int) error {
	res, err := r.db.Exec(
		`UPDATE sessions SET ended_at = ?, reps = ? WHERE id = ?`,
		time.Now(), reps, sessionID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID retrieves a session by its ID.
func (r *Repository) GetByID(id string) (*Session, error) {
	sess := &Session{}
	var endedAt sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, exercise, started_at, ended_at, reps FROM sessions WHERE id = ?`,
		id,
	).Scan(&sess.ID, &sess.Exercise, &sess.StartedAt, &endedAt, &sess.Reps)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if endedAt.Valid {
		sess.EndedAt = &endedAt.Time
	}
	return sess, nil
}

// List retrieves sessions ordered most recent first. A non-positive limit
// returns all sessions.
func (r *Repository) List(limit int) ([]Session, error) {
	query := `SELECT id, exercise, started_at, ended_at, reps FROM sessions ORDER BY started_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var endedAt sql.NullTime
		if err := rows.Scan(&sess.ID, &sess.Exercise, &sess.StartedAt, &endedAt, &sess.Reps); err != nil {
			return nil, err
		}
		if endedAt.Valid {
			sess.EndedAt = &endedAt.Time
		}
		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

// Reps retrieves the repetitions recorded for a session in completion order.
func (r *Repository) Reps(sessionID string) ([]Rep, error) {
	rows, err := r.db.Query(
		`SELECT session_id, rep_number, side, completed_at
		 FROM session_reps WHERE session_id = ? ORDER BY rep_number`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reps []Rep
	for rows.Next() {
		var rep Rep
		if err := rows.Scan(&rep.SessionID, &rep.RepNumber, &rep.Side, &rep.CompletedAt); err != nil {
			return nil, err
		}
		reps = append(reps, rep)
	}

	return reps, rows.Err()
}
