package services

import (
	"context"

	"warehouse/internal/analytics"
	"warehouse/internal/domain"
	"warehouse/internal/repos"
)

// AnalyticsService reads bounded snapshots from the repositories and hands
// them to the pure aggregates in package analytics.
type AnalyticsService struct {
	Items     *repos.ItemRepo
	Shipments *repos.ShipmentRepo
	Snapshots *repos.SnapshotRepo

	ScanLimit        int // rows read per entity
	DefaultThreshold int
}

func NewAnalyticsService(items *repos.ItemRepo, ships *repos.ShipmentRepo, snaps *repos.SnapshotRepo, scanLimit, threshold int) *AnalyticsService {
	if scanLimit <= 0 {
		scanLimit = 1000
	}
	if threshold <= 0 {
		threshold = analytics.DefaultThreshold
	}
	return &AnalyticsService{Items: items, Shipments: ships, Snapshots: snaps, ScanLimit: scanLimit, DefaultThreshold: threshold}
}

// LowStock lists items below threshold; nil uses the configured default.
func (s *AnalyticsService) LowStock(ctx context.Context, threshold *int) ([]domain.InventoryItem, error) {
	items, err := s.Items.List(ctx, 0, s.ScanLimit)
	if err != nil {
		return nil, err
	}
	return analytics.LowStock(items, s.threshold(threshold)), nil
}

func (s *AnalyticsService) StockByCategory(ctx context.Context) (map[string]int, error) {
	items, err := s.Items.List(ctx, 0, s.ScanLimit)
	if err != nil {
		return nil, err
	}
	return analytics.StockByCategory(items), nil
}

func (s *AnalyticsService) DailyShipments(ctx context.Context) (map[string]int, error) {
	ships, err := s.Shipments.List(ctx, 0, s.ScanLimit)
	if err != nil {
		return nil, err
	}
	return analytics.DailyShipments(ships), nil
}

// Summary is everything the dashboard page shows.
type Summary struct {
	Threshold       int
	SupplierCount   int
	ItemCount       int
	ShipmentCount   int
	LowStock        []domain.InventoryItem
	StockByCategory map[string]int
	DailyShipments  map[string]int
}

// Summary builds the dashboard from a single store snapshot, so the counts
// and the aggregates never disagree.
func (s *AnalyticsService) Summary(ctx context.Context, threshold *int) (Summary, error) {
	snap, err := s.Snapshots.Load(ctx, s.ScanLimit)
	if err != nil {
		return Summary{}, err
	}
	t := s.threshold(threshold)
	return Summary{
		Threshold:       t,
		SupplierCount:   snap.SupplierCount,
		ItemCount:       snap.ItemCount,
		ShipmentCount:   snap.ShipmentCount,
		LowStock:        analytics.LowStock(snap.Items, t),
		StockByCategory: analytics.StockByCategory(snap.Items),
		DailyShipments:  analytics.DailyShipments(snap.Shipments),
	}, nil
}

func (s *AnalyticsService) threshold(t *int) int {
	if t == nil {
		return s.DefaultThreshold
	}
	return *t
}
