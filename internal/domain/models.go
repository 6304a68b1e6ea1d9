package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, matching the dashboard client.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultShipmentStatus applies when a shipment is written without a status.
const DefaultShipmentStatus = "Pending"

type Supplier struct {
	ID            int64   `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	ContactPerson *string `db:"contact_person" json:"contact_person"`
	Email         string  `db:"email" json:"email"`
	Phone         *string `db:"phone" json:"phone"`
}

// InventoryItem carries its Supplier when one is referenced.
type InventoryItem struct {
	ID         int64           `db:"id" json:"id"`
	Name       string          `db:"name" json:"name"`
	Quantity   int             `db:"quantity" json:"quantity"`
	Category   string          `db:"category" json:"category"`
	Price      decimal.Decimal `db:"price" json:"price"`
	SupplierID *int64          `db:"supplier_id" json:"supplier_id"`

	Supplier *Supplier `db:"-" json:"supplier"`
}

// Shipment carries its Item, which in turn carries the Item's Supplier.
type Shipment struct {
	ID                    int64  `db:"id" json:"id"`
	ItemID                int64  `db:"item_id" json:"item_id"`
	Quantity              int    `db:"quantity" json:"quantity"`
	Origin                string `db:"origin" json:"origin"`
	Destination           string `db:"destination" json:"destination"`
	Status                string `db:"status" json:"status"`
	EstimatedDeliveryDate Date   `db:"estimated_delivery_date" json:"estimated_delivery_date"`

	Item *InventoryItem `db:"-" json:"item"`
}

// Write inputs. Updates replace every column with these values.

type SupplierInput struct {
	Name          string  `json:"name"`
	ContactPerson *string `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         *string `json:"phone"`
}

type ItemInput struct {
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Category   string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	SupplierID *int64          `json:"supplier_id"`
}

type ShipmentInput struct {
	ItemID                int64  `json:"item_id"`
	Quantity              int    `json:"quantity"`
	Origin                string `json:"origin"`
	Destination           string `json:"destination"`
	Status                string `json:"status"`
	EstimatedDeliveryDate Date   `json:"estimated_delivery_date"`
}

// Prediction is the image classifier's guess for an uploaded product photo.
type Prediction struct {
	ProductName       string `json:"product_name"`
	EstimatedQuantity int    `json:"estimated_quantity"`
}
