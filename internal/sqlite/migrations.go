package sqlite

func (s Storage) RunMigrations() error {
	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date VARCHAR NOT NULL,
		text TEXT NOT NULL,
		created_at VARCHAR NOT NULL,
		google_id VARCHAR NULL DEFAULT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS events_date ON events (date)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS events_google_id ON events (google_id)`,
}
