// Package testutil provides shared helpers for the Postgres integration tests
// of the checklist store. Helpers skip the calling test when TEST_DATABASE_URL
// is not set, so the generator and handler suites run without a database.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql

	"github.com/pkordes/packlist/backend/migrations"
)

// DSNEnv names the variable holding the integration database URL.
const DSNEnv = "TEST_DATABASE_URL"

// RunMigrated is the body of a package's TestMain: it brings the test
// database to the latest schema once, then runs the tests. Without a
// database configured it just runs them and every DB test skips itself.
//
//	func TestMain(m *testing.M) { os.Exit(testutil.RunMigrated(m)) }
func RunMigrated(m *testing.M) int {
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		return m.Run()
	}
	if err := migrate(context.Background(), dsn); err != nil {
		fmt.Fprintf(os.Stderr, "testutil.RunMigrated: %v\n", err)
		return 1
	}
	return m.Run()
}

func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer db.Close()

	if _, err := migrations.Up(ctx, db); err != nil {
		return err
	}
	return nil
}

// NewPool returns a pool connected to the test database, closed when the test
// finishes. Use it directly only for tests that must commit, such as checking
// that a failed write left nothing behind; everything else wants NewTx.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	pool, err := pgxpool.New(context.Background(), requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPool: ping: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

// NewTx begins a transaction that is rolled back when the test finishes,
// giving each test an isolated view of the database.
func NewTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewTx: begin: %v", err)
	}

	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewSQLDB returns a database/sql handle on the pgx driver for goose,
// closed when the test finishes.
func NewSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", requireDSN(t))
	if err != nil {
		t.Fatalf("testutil.NewSQLDB: open: %v", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		t.Fatalf("testutil.NewSQLDB: ping: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func requireDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skip(DSNEnv + " not set; skipping integration test")
	}
	return dsn
}
