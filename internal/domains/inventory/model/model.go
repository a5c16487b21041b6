package model

import (
	"estetica/shared/model"
)

const (
	ProductTableName  = "products"
	ProductEntityName = "product"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldUnit         = "unit"
	FieldCostPrice    = "cost_price"
	FieldCurrentStock = "current_stock"
	FieldMinStock     = "min_stock"
	FieldActive       = "active"
)

const (
	MovementTableName  = "stock_movements"
	MovementEntityName = "stock_movement"

	MovementFieldID             = "id"
	MovementFieldProductID      = "product_id"
	MovementFieldType           = "movement_type"
	MovementFieldQuantity       = "quantity"
	MovementFieldQuantityBefore = "quantity_before"
	MovementFieldQuantityAfter  = "quantity_after"
	MovementFieldReason         = "reason"
	MovementFieldAppointmentID  = "appointment_id"
)

type MovementType string

const (
	MovementEntry      MovementType = "ENTRY"
	MovementExit       MovementType = "EXIT"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

type Product struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Description  string  `db:"description"`
	Unit         string  `db:"unit"`
	CostPrice    float64 `db:"cost_price"`
	CurrentStock float64 `db:"current_stock"`
	MinStock     float64 `db:"min_stock"`
	Active       bool    `db:"active"`
	model.Metadata
}

// StockMovement is an immutable ledger entry. CurrentStock on the product is
// the running balance; quantity_before and quantity_after pin each movement to
// the balance it observed.
type StockMovement struct {
	ID             string       `db:"id"`
	ProductID      string       `db:"product_id"`
	Type           MovementType `db:"movement_type"`
	Quantity       float64      `db:"quantity"`
	QuantityBefore float64      `db:"quantity_before"`
	QuantityAfter  float64      `db:"quantity_after"`
	Reason         string       `db:"reason"`
	AppointmentID  *string      `db:"appointment_id"`
	model.Metadata
}
