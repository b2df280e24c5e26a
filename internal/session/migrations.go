package session

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one row per workout
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			exercise TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			reps INTEGER NOT NULL DEFAULT 0
		)`,

		// Session reps table - one row per completed repetition
		`CREATE TABLE IF NOT EXISTS session_reps (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			rep_number INTEGER NOT NULL,
			side TEXT NOT NULL DEFAULT 'both',
			completed_at DATETIME NOT NULL
		)`,

		// Indexes for history queries
		`CREATE INDEX IF NOT EXISTS idx_session_reps_session_id ON session_reps(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
