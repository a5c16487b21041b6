package model

import (
	"estetica/shared/model"
)

const (
	TableName  = "procedures"
	EntityName = "procedure"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldPrice           = "price"
	FieldDurationMinutes = "duration_minutes"
	FieldActive          = "active"
)

const (
	BOMTableName  = "procedure_products"
	BOMEntityName = "procedure_product"

	BOMFieldID          = "id"
	BOMFieldProcedureID = "procedure_id"
	BOMFieldProductID   = "product_id"
	BOMFieldQuantity    = "quantity"
)

type Procedure struct {
	ID              string  `db:"id"`
	Name            string  `db:"name"`
	Description     string  `db:"description"`
	Price           float64 `db:"price"`
	DurationMinutes int     `db:"duration_minutes"`
	Active          bool    `db:"active"`
	model.Metadata
}

// ProcedureProduct is one line of a procedure's bill of materials: the amount
// of a product consumed every time the procedure is performed.
type ProcedureProduct struct {
	ID          string  `db:"id"`
	ProcedureID string  `db:"procedure_id"`
	ProductID   string  `db:"product_id"`
	Quantity    float64 `db:"quantity"`
	model.Metadata
}
