package persistence

import (
	"context"
	"testing"

	"github.com/campaign/backend/internal/domain/campaign"
	"github.com/campaign/backend/internal/domain/catalog"
	"github.com/campaign/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestDatabase opens a migrated in-memory sqlite database
func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestProduct(t *testing.T, barcode, name string, value int64, unit catalog.WeightUnit) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(barcode, name, decimal.NewFromInt(value), unit)
	require.NoError(t, err)
	return p
}

func newTestCampaign(t *testing.T, name string) *campaign.Campaign {
	t.Helper()
	c, err := campaign.NewCampaign(name, "")
	require.NoError(t, err)
	return c
}
