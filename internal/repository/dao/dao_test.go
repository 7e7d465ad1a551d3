package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB starts a throwaway Postgres container and migrates the tables.
// Tests are skipped when no Docker daemon is reachable.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("skipping, could not construct docker pool: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("skipping, could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=syncbazar_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf("host=localhost port=%v user=postgres password=secret dbname=syncbazar_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

func strPtr(s string) *string {
	return &s
}

func TestItemDAO(t *testing.T) {
	db := setupTestDB(t)
	d := NewItemDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Item{
		Name:         "Laptop",
		Category:     "Electronics",
		SKU:          strPtr("EL-100"),
		Quantity:     50,
		ReorderLevel: 10,
		UnitPrice:    decimal.RequireFromString("1200.00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("duplicate sku is rejected", func(t *testing.T) {
		_, err := d.Insert(ctx, Item{
			Name:      "Another Laptop",
			SKU:       strPtr("EL-100"),
			UnitPrice: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, ErrItemSKUExists)
	})

	t.Run("blank sku does not collide", func(t *testing.T) {
		_, err := d.Insert(ctx, Item{Name: "Unlabeled A", UnitPrice: decimal.NewFromInt(1)})
		require.NoError(t, err)
		_, err = d.Insert(ctx, Item{Name: "Unlabeled B", UnitPrice: decimal.NewFromInt(1)})
		require.NoError(t, err)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := d.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", found.Name)
		assert.True(t, decimal.RequireFromString("1200.00").Equal(found.UnitPrice))
	})

	t.Run("find by unknown id", func(t *testing.T) {
		_, err := d.FindByID(ctx, 9999)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("find all is name ascending", func(t *testing.T) {
		all, err := d.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "Laptop", all[0].Name)
		assert.Equal(t, "Unlabeled A", all[1].Name)
		assert.Equal(t, "Unlabeled B", all[2].Name)
	})

	t.Run("update", func(t *testing.T) {
		created.Quantity = 30
		updated, err := d.Update(ctx, created)
		require.NoError(t, err)
		assert.Equal(t, 30, updated.Quantity)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, d.Delete(ctx, created.ID))
		_, err := d.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestShopDAO(t *testing.T) {
	db := setupTestDB(t)
	d := NewShopDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Shop{
		Name:        "City Mart",
		Location:    "Downtown",
		ManagerName: "Ali Raza",
		Status:      "Active",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	count, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	created.Status = "Inactive"
	updated, err := d.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Inactive", updated.Status)

	_, err = d.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, ErrShopNotFound)

	require.NoError(t, d.Delete(ctx, created.ID))
	count, err = d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestUserDAO(t *testing.T) {
	db := setupTestDB(t)
	d := NewUserDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, User{
		Username: "alice",
		Password: "hashed",
		Role:     "staff",
		IsActive: true,
	})
	require.NoError(t, err)

	_, err = d.Insert(ctx, User{Username: "alice", Password: "hashed"})
	assert.ErrorIs(t, err, ErrUsernameExists)

	found, err := d.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = d.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)

	count, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestActivityDAO(t *testing.T) {
	db := setupTestDB(t)
	d := NewActivityDAO(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := d.Insert(ctx, Activity{
			ActivityType: "ITEM_ADDED",
			Description:  fmt.Sprintf("Added item #%d", i),
		})
		require.NoError(t, err)
	}

	recent, err := d.FindRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	// Newest first.
	assert.Equal(t, "Added item #4", recent[0].Description)
}
