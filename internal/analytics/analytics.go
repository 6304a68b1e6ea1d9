// Package analytics computes the dashboard aggregates from entity snapshots.
// Every function is pure: the same multiset of rows gives the same result
// regardless of row order.
package analytics

import "warehouse/internal/domain"

// DefaultThreshold is the low-stock cutoff used when the caller gives none.
const DefaultThreshold = 10

// LowStock returns the items whose quantity is strictly below threshold, in input order.
func LowStock(items []domain.InventoryItem, threshold int) []domain.InventoryItem {
	out := []domain.InventoryItem{}
	for _, it := range items {
		if it.Quantity < threshold {
			out = append(out, it)
		}
	}
	return out
}

// StockByCategory sums quantity per category. The empty category is its own group.
func StockByCategory(items []domain.InventoryItem) map[string]int {
	out := make(map[string]int)
	for _, it := range items {
		out[it.Category] += it.Quantity
	}
	return out
}

// DailyShipments sums shipment quantity per ISO delivery date. Shipments
// without a delivery date are skipped.
func DailyShipments(shipments []domain.Shipment) map[string]int {
	out := make(map[string]int)
	for _, s := range shipments {
		if s.EstimatedDeliveryDate.IsZero() {
			continue
		}
		out[s.EstimatedDeliveryDate.String()] += s.Quantity
	}
	return out
}
