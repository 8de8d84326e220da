package db

// Config describes the embedded SQLite database.
type Config struct {
	// Path is the database file location. A special value such as
	// "file::memory:?cache=shared" keeps the store in memory.
	Path string
}
