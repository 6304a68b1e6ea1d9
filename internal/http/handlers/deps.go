package handlers

import (
	"warehouse/internal/config"
	"warehouse/internal/repos"
	"warehouse/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	DashboardHandler *DashboardHandler
	SupplierHandler  *SupplierHandler
	ItemHandler      *ItemHandler
	ShipmentHandler  *ShipmentHandler
	AnalyticsHandler *AnalyticsHandler
	PredictHandler   *PredictHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	supRepo := repos.NewSupplierRepo(db)
	itemRepo := repos.NewItemRepo(db)
	shipRepo := repos.NewShipmentRepo(db)

	invSvc := services.NewInventoryService(supRepo, itemRepo, shipRepo)
	anaSvc := services.NewAnalyticsService(itemRepo, shipRepo, repos.NewSnapshotRepo(db), cfg.ScanLimit, cfg.LowStockThreshold)
	predSvc := services.NewPredictionService(services.NewRandomClassifier())

	return &Deps{
		DashboardHandler: &DashboardHandler{Analytics: anaSvc},
		SupplierHandler:  &SupplierHandler{Inv: invSvc},
		ItemHandler:      &ItemHandler{Inv: invSvc},
		ShipmentHandler:  &ShipmentHandler{Inv: invSvc},
		AnalyticsHandler: &AnalyticsHandler{Analytics: anaSvc},
		PredictHandler:   &PredictHandler{Predict: predSvc},
	}
}
