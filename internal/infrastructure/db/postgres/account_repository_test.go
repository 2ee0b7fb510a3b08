package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinhouse/roulette-backend/internal/core/domain"
	"github.com/spinhouse/roulette-backend/internal/infrastructure/db/postgres"
	"github.com/spinhouse/roulette-backend/internal/infrastructure/db/postgres/testutil"
)

func newUser(username string) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		Username:     username,
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplaceho",
		Balance:      domain.StartingBalance,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func countUsers(t *testing.T, db *postgres.DB, username string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), `SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	t.Run("user not found", func(t *testing.T) {
		user, err := repo.FindByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("created user is readable", func(t *testing.T) {
		created, err := repo.Create(ctx, newUser("alice"))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		found, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, int64(1000), found.Balance)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := repo.Create(ctx, newUser("bob"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, newUser("bob"))
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.Equal(t, 1, countUsers(t, testDB.DB, "bob"))
	})
}

func TestAccountRepository_ConcurrentSignupsKeepOneRow(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, newUser("racer"))
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				successes++
			case domain.ErrUserExists:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, countUsers(t, testDB.DB, "racer"))
}

func TestAccountRepository_AdjustBalance(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)
	repo := postgres.NewAccountRepository(testDB.DB)
	ctx := context.Background()

	_, err := repo.Create(ctx, newUser("carol"))
	require.NoError(t, err)

	t.Run("credit and debit", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, "carol", 50, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1050), balance)

		balance, err = repo.AdjustBalance(ctx, "carol", -50, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), balance)

		stored, err := repo.Balance(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), stored)
	})

	t.Run("negative balance allowed", func(t *testing.T) {
		balance, err := repo.AdjustBalance(ctx, "carol", -1200, true)
		require.NoError(t, err)
		assert.Equal(t, int64(-200), balance)

		balance, err = repo.AdjustBalance(ctx, "carol", 200, true)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("floor enforced", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, "carol", -1, false)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		stored, err := repo.Balance(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, int64(0), stored)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.AdjustBalance(ctx, "nobody", 50, true)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)

		_, err = repo.AdjustBalance(ctx, "nobody", -50, false)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		assert.Equal(t, 0, countUsers(t, testDB.DB, "nobody"))
	})

	t.Run("concurrent credits are not lost", func(t *testing.T) {
		_, err := repo.Create(ctx, newUser("dave"))
		require.NoError(t, err)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.AdjustBalance(ctx, "dave", 10, true)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		stored, err := repo.Balance(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, int64(1200), stored)
	})
}
