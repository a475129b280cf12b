package config

import "os"

// Config is built once in main and handed to the components that need it.
// The defaults are only usable against a local development database; in
// particular the default DB password is a known placeholder and must be
// overridden outside of local use.
type Config struct {
	HTTPAddr    string
	FrontendDir string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

func Load() Config {
	return Config{
		HTTPAddr:    getenv("HTTP_ADDR", "localhost:8000"),
		FrontendDir: getenv("FRONTEND_DIR", "frontend"),
		DBHost:      getenv("DB_HOST", "127.0.0.1"),
		DBPort:      getenv("DB_PORT", "5432"),
		DBUser:      getenv("DB_USER", "postgres"),
		DBPassword:  getenv("DB_PASSWORD", "axcelcuno"),
		DBName:      getenv("DB_NAME", "tienda"),
		DBSSLMode:   getenv("DB_SSLMODE", "disable"),
	}
}

// DSN renders the gorm/pgx connection string.
func (c Config) DSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
