package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/domain"
	"warehouse/internal/repos"
	"warehouse/internal/services"
)

func newServices(t *testing.T, scanLimit int) (*services.InventoryService, *services.AnalyticsService) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sup := repos.NewSupplierRepo(db)
	items := repos.NewItemRepo(db)
	ships := repos.NewShipmentRepo(db)
	return services.NewInventoryService(sup, items, ships),
		services.NewAnalyticsService(items, ships, repos.NewSnapshotRepo(db), scanLimit, 10)
}

func intp(v int) *int { return &v }

func TestInventoryService_NotFound(t *testing.T) {
	inv, _ := newServices(t, 0)
	ctx := context.Background()

	_, err := inv.GetSupplier(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = inv.UpdateItem(ctx, 1, domain.ItemInput{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = inv.DeleteShipment(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// validation errors pass through untouched
	_, err = inv.UpdateItem(ctx, 1, domain.ItemInput{})
	assert.ErrorIs(t, err, domain.ErrDuplicateOrInvalid)
}

func TestAnalytics_LowStockScenario(t *testing.T) {
	inv, an := newServices(t, 0)
	ctx := context.Background()

	s, err := inv.CreateSupplier(ctx, domain.SupplierInput{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	require.Equal(t, int64(1), s.ID)

	it, err := inv.CreateItem(ctx, domain.ItemInput{
		Name: "Widget", Quantity: 5, Category: "Hardware",
		Price: decimal.RequireFromString("9.99"), SupplierID: &s.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), it.ID)
	require.Equal(t, "Acme", it.Supplier.Name)

	low, err := an.LowStock(ctx, intp(10))
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "Widget", low[0].Name)
	assert.Equal(t, "Acme", low[0].Supplier.Name)

	low, err = an.LowStock(ctx, intp(5))
	require.NoError(t, err)
	assert.Empty(t, low)

	low, err = an.LowStock(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, low, 1, "default threshold is 10")
}

func TestAnalytics_StockByCategoryScenario(t *testing.T) {
	inv, an := newServices(t, 0)
	ctx := context.Background()
	for _, q := range []int{5, 7} {
		_, err := inv.CreateItem(ctx, domain.ItemInput{Name: "Widget", Quantity: q, Category: "Hardware"})
		require.NoError(t, err)
	}
	got, err := an.StockByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Hardware": 12}, got)
}

func TestAnalytics_DailyShipmentsScenario(t *testing.T) {
	inv, an := newServices(t, 0)
	ctx := context.Background()
	it, err := inv.CreateItem(ctx, domain.ItemInput{Name: "Widget", Quantity: 5, Category: "Hardware"})
	require.NoError(t, err)

	day := domain.NewDate(2025, time.January, 10)
	_, err = inv.CreateShipment(ctx, domain.ShipmentInput{ItemID: it.ID, Quantity: 3, EstimatedDeliveryDate: day})
	require.NoError(t, err)

	got, err := an.DailyShipments(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got["2025-01-10"], 3)

	_, err = inv.CreateShipment(ctx, domain.ShipmentInput{ItemID: it.ID, Quantity: 2, EstimatedDeliveryDate: day})
	require.NoError(t, err)

	got, err = an.DailyShipments(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got["2025-01-10"], 5)
}

func TestAnalytics_ScanLimitBoundsRead(t *testing.T) {
	inv, an := newServices(t, 2)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := inv.CreateItem(ctx, domain.ItemInput{Name: "Widget", Quantity: 1, Category: "Hardware"})
		require.NoError(t, err)
	}
	got, err := an.StockByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got["Hardware"])
}

func TestAnalytics_Summary(t *testing.T) {
	inv, an := newServices(t, 0)
	ctx := context.Background()
	s, err := inv.CreateSupplier(ctx, domain.SupplierInput{Name: "Acme", Email: "a@acme.com"})
	require.NoError(t, err)
	it, err := inv.CreateItem(ctx, domain.ItemInput{Name: "Widget", Quantity: 4, Category: "Hardware", SupplierID: &s.ID})
	require.NoError(t, err)
	_, err = inv.CreateShipment(ctx, domain.ShipmentInput{ItemID: it.ID, Quantity: 6, EstimatedDeliveryDate: domain.NewDate(2025, time.June, 2)})
	require.NoError(t, err)

	sum, err := an.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, sum.Threshold)
	assert.Equal(t, 1, sum.SupplierCount)
	assert.Equal(t, 1, sum.ItemCount)
	assert.Equal(t, 1, sum.ShipmentCount)
	assert.Len(t, sum.LowStock, 1)
	assert.Equal(t, map[string]int{"Hardware": 4}, sum.StockByCategory)
	assert.Equal(t, map[string]int{"2025-06-02": 6}, sum.DailyShipments)
}

func TestAnalytics_SummaryCountsExceedScan(t *testing.T) {
	inv, an := newServices(t, 2)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := inv.CreateItem(ctx, domain.ItemInput{Name: "Widget", Quantity: 1, Category: "Hardware"})
		require.NoError(t, err)
	}

	sum, err := an.Summary(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.ItemCount, "counts cover the whole table")
	assert.Len(t, sum.LowStock, 2, "lists stay within the scan limit")
	assert.Equal(t, map[string]int{"Hardware": 2}, sum.StockByCategory)
}
