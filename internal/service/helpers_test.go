package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vegichef/backend/config"
	"github.com/vegichef/backend/internal/database"
	"github.com/vegichef/backend/internal/types"
)

func testContext() context.Context {
	return context.Background()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(testContext(), db, ""))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func sampleCatalog() []types.CatalogEntry {
	return []types.CatalogEntry{
		{
			Name:        "Jeera Rice",
			Time:        "20 mins",
			Type:        "Lunch",
			Ingredients: []string{"Rice", "Jeera", "Ghee"},
			Steps:       []string{"Wash rice", "Temper jeera in ghee", "Cook rice"},
			Tags:        []string{"quick", "jain"},
		},
		{
			Name:        "Poha",
			Time:        "15 mins",
			Type:        "Breakfast",
			Ingredients: []string{"Poha", " rice ", "Peanuts", "Curry Leaves", "peanuts"},
			Steps:       []string{"Rinse poha", "Cook"},
			Tags:        []string{"quick", "Healthy"},
		},
		{
			Name:        "Aloo Gobi",
			Time:        "35 mins",
			Type:        "Dinner",
			Ingredients: []string{"Potato", "Cauliflower", "Onion", "Turmeric"},
			Steps:       []string{"Chop", "Fry", "Simmer"},
			Tags:        []string{"healthy"},
		},
	}
}

func seedCatalog(t *testing.T, db *gorm.DB) *CatalogService {
	t.Helper()
	svc := NewCatalogService(db)
	_, err := svc.Import(testContext(), sampleCatalog())
	require.NoError(t, err)
	return svc
}
