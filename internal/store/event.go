package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Event represents one confirmed gesture transition in the event log.
// DX and DY are set only for orbit events.
type Event struct {
	ID         string
	Gesture    string
	DX         *float64
	DY         *float64
	RecordedAt time.Time
}

// EventRepository provides access to the gesture event log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert appends an event to the log.
func (r *EventRepository) Insert(e *Event) error {
	e.RecordedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO gesture_events (id, gesture, dx, dy, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID, e.Gesture, e.DX, e.DY, e.RecordedAt,
	)
	return err
}

// GetByID retrieves an event by its ID.
func (r *EventRepository) GetByID(id string) (*Event, error) {
	e := &Event{}

	err := r.db.QueryRow(
		`SELECT id, gesture, dx, dy, recorded_at
		 FROM gesture_events WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Gesture, &e.DX, &e.DY, &e.RecordedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

// Recent retrieves the most recent events, newest first.
func (r *EventRepository) Recent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, gesture, dx, dy, recorded_at
		 FROM gesture_events ORDER BY recorded_at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Gesture, &e.DX, &e.DY, &e.RecordedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// DeleteBefore removes events recorded before the cutoff and returns
// how many were deleted. Used to keep the log bounded.
func (r *EventRepository) DeleteBefore(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec(
		`DELETE FROM gesture_events WHERE recorded_at < ?`,
		cutoff,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
