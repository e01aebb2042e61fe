package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Gesture events table - one row per confirmed gesture transition
		`CREATE TABLE IF NOT EXISTS gesture_events (
			id TEXT PRIMARY KEY,
			gesture TEXT NOT NULL CHECK(gesture IN ('idle', 'orbit', 'zoom_in', 'zoom_out')),
			dx REAL,
			dy REAL,
			recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Index for recency queries over the event log
		`CREATE INDEX IF NOT EXISTS idx_gesture_events_recorded_at ON gesture_events(recorded_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
