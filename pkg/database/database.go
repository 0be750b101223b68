package database

import (
	"database/sql"
	"embed"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// DriverName is the sqlite driver variant every connection uses. It adds
// ulower(), a Unicode-aware lowercase function, because sqlite's built-in
// lower() and LIKE only fold ASCII and the names here carry accents.
const DriverName = "sqlite3_ulower"

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("ulower", strings.ToLower, true)
		},
	})
}

var DB *sql.DB

// Init opens the SQLite database at the given path, applies the
// performance pragmas and runs the schema migrations.
func Init(path string) error {
	var err error

	DB, err = Open(path)
	if err != nil {
		return err
	}

	// Configure connection pool
	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(10)
	DB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err = DB.Ping(); err != nil {
		return err
	}

	log.Println("Database connected successfully with WAL mode")

	// Run SQL scripts
	if err = Migrate(DB); err != nil {
		return err
	}

	return nil
}

// Open opens a SQLite database without touching the package-level handle.
// Used by tests that want an isolated in-memory database.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_cache_size=10000&_temp_store=MEMORY&_foreign_keys=ON&_busy_timeout=30000", path)
	return sql.Open(DriverName, dsn)
}

// Migrate executes the embedded SQL scripts in file name order.
func Migrate(db *sql.DB) error {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		return err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		sqlContent, err := migrationFiles.ReadFile("migrations/" + name)
		if err != nil {
			return err
		}

		// Execute the SQL script
		if _, err = db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}

		log.Printf("Executed SQL script: %s", name)
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
