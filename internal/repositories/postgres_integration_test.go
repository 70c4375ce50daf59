//go:build integration

package repositories_test

import (
	"context"
	"testing"
	"time"

	"catalog/internal/config"
	"catalog/internal/database"
	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestProductRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("catalog"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(config.DatabaseConfig{Driver: "postgres", DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := repositories.NewGORMProductRepository(db)

	product := newProduct("Cyber Hoodie", "a.jpg", "b.jpg")
	product.Tags = models.StringList{"hoodie", "winter"}
	require.NoError(t, repo.Create(ctx, product))

	found, err := repo.FindByTitleOrSlug(ctx, "CYBER hoodie")
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"hoodie", "winter"}, found.Tags)

	err = repo.Create(ctx, newProduct("Cyber Hoodie"))
	var dup *repositories.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Contains(t, dup.Detail, "Cyber Hoodie")

	product.Images = []models.ProductImage{{URL: "c.jpg"}}
	require.NoError(t, repo.Update(ctx, product, true))
	found, err = repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"c.jpg"}, found.ImageURLs())

	require.NoError(t, repo.DeleteAll(ctx))
}
