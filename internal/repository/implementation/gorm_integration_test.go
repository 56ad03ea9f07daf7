package implementation

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"storefront-be/internal/entity"
	"storefront-be/internal/model"
	"storefront-be/internal/repository/specification"
	"storefront-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestProductRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewProductRepository(db)
	category := "it-" + uuid.NewString()[:8]

	t.Cleanup(func() {
		db.Unscoped().Where("category = ?", category).Delete(&model.Product{})
	})

	for _, name := range []string{"First", "Second"} {
		require.NoError(t, repo.Create(ctx, &entity.Product{
			Id:       uuid.New(),
			Name:     name,
			Category: category,
			Purity:   99.1,
			Price:    10,
		}))
		time.Sleep(5 * time.Millisecond)
	}

	products, err := repo.FindAll(ctx, specification.ByCategory{Category: category}, specification.CatalogOrder{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "First", products[0].Name)
	assert.Equal(t, "Second", products[1].Name)

	count, err := repo.Count(ctx, specification.ByCategory{Category: category})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	missing, err := repo.FindOne(ctx, specification.ByID{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContactMessageRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewContactMessageRepository(db)
	id := uuid.New()

	t.Cleanup(func() {
		db.Where("id = ?", id).Delete(&model.ContactMessage{})
	})

	require.NoError(t, repo.Create(ctx, &entity.ContactMessage{
		Id:       id,
		Name:     "Ada",
		Email:    "ada@example.com",
		Message:  "Hello",
		Metadata: map[string]interface{}{"ip": "127.0.0.1"},
	}))

	pending, err := repo.FindOne(ctx, specification.ByID{ID: id}, specification.NotForwarded{})
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "127.0.0.1", pending.Metadata["ip"])

	require.NoError(t, repo.MarkForwarded(ctx, id, time.Now()))

	pending, err = repo.FindOne(ctx, specification.ByID{ID: id}, specification.NotForwarded{})
	require.NoError(t, err)
	assert.Nil(t, pending)
}
