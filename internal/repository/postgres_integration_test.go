//go:build integration

package repository

import (
	"context"
	"testing"

	"geopindrop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections"),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := pgxpool.New(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(pool.Close)

	return pool
}

func TestRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	pool := setupTestDatabase(t)
	repo := NewRepository(pool)

	require.NoError(t, repo.EnsureSchema(ctx))

	t.Run("insert then list returns the pin exactly once", func(t *testing.T) {
		id, err := repo.Insert(ctx, models.Pin{
			Name:      "Ada",
			Surname:   "Lovelace",
			Address:   "10 Downing St",
			City:      "London",
			Latitude:  "51.5034",
			Longitude: "-0.1276",
		})
		require.NoError(t, err)
		require.Positive(t, id)

		pins, err := repo.List(ctx)
		require.NoError(t, err)

		var matches int
		for _, pin := range pins {
			if pin.ID == id {
				matches++
				assert.Equal(t, "51.5034", pin.Latitude)
				assert.Equal(t, "-0.1276", pin.Longitude)
				assert.False(t, pin.CreatedAt.IsZero())
			}
		}
		assert.Equal(t, 1, matches)
	})

	t.Run("list is ordered newest first", func(t *testing.T) {
		first, err := repo.Insert(ctx, models.Pin{
			Name: "Alan", Surname: "Turing",
			Address: "Bletchley Park", City: "Milton Keynes",
			Latitude: "51.9977", Longitude: "-0.7407",
		})
		require.NoError(t, err)

		second, err := repo.Insert(ctx, models.Pin{
			Name: "Grace", Surname: "Hopper",
			Address: "Arlington", City: "Virginia",
			Latitude: "38.8783", Longitude: "-77.0687",
		})
		require.NoError(t, err)

		pins, err := repo.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(pins), 2)

		var firstIdx, secondIdx int
		for i, pin := range pins {
			switch pin.ID {
			case first:
				firstIdx = i
			case second:
				secondIdx = i
			}
		}
		assert.Less(t, secondIdx, firstIdx, "the later insert must come first")
	})

	t.Run("delete removes exactly the matching row", func(t *testing.T) {
		id, err := repo.Insert(ctx, models.Pin{
			Name: "Tim", Surname: "Berners-Lee",
			Address: "CERN", City: "Geneva",
			Latitude: "46.2330", Longitude: "6.0557",
		})
		require.NoError(t, err)

		removed, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), removed)

		pins, err := repo.List(ctx)
		require.NoError(t, err)
		for _, pin := range pins {
			assert.NotEqual(t, id, pin.ID)
		}
	})

	t.Run("deleting an unknown id removes nothing and leaves the rest", func(t *testing.T) {
		before, err := repo.List(ctx)
		require.NoError(t, err)

		removed, err := repo.Delete(ctx, 123456)
		require.NoError(t, err)
		assert.Zero(t, removed)

		after, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}
