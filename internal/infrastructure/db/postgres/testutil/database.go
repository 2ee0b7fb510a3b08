// Package testutil starts throwaway PostgreSQL instances for repository tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/spinhouse/roulette-backend/internal/infrastructure/db/postgres"
)

// TestDatabase is a migrated PostgreSQL container plus an open pool.
type TestDatabase struct {
	Container *tcpostgres.PostgresContainer
	DB        *postgres.DB
	URL       string
}

// SetupTestDatabase starts a container, applies the migrations and connects.
// The container is terminated when the test finishes. Skipped with -short.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in -short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("roulette_test"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		tcpostgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "roulette-repository",
			"test-name": t.Name(),
		}),
	)
	require.NoError(t, err)

	td := &TestDatabase{Container: container}
	t.Cleanup(func() { td.cleanup(t) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, postgres.RunMigrations(connStr, zerolog.Nop()))

	db, err := postgres.Connect(ctx, postgres.Config{URL: connStr})
	require.NoError(t, err)

	td.DB = db
	td.URL = connStr
	return td
}

func (td *TestDatabase) cleanup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.DB != nil {
		td.DB.Close()
	}
	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("warning: failed to terminate test container: %v", err)
		}
	}
}
