package cmd

// Config holds the process configuration read from the environment.
// An empty DBHost selects the in-memory repositories; a set DBHost selects
// the Postgres-backed ones.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}
