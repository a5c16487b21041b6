package dto

import (
	"estetica/internal/domains/inventory/model"
	"estetica/shared"
	gDto "estetica/shared/dto"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name        string  `json:"name"        validate:"required,max=150"`
	Description string  `json:"description" validate:"omitempty"`
	Unit        string  `json:"unit"        validate:"required,max=20"`
	CostPrice   float64 `json:"cost_price"  validate:"omitempty,gte=0"`
	MinStock    float64 `json:"min_stock"   validate:"omitempty,gte=0"`
}

func (c *CreateProductRequest) ToModel(user string) model.Product {
	return model.Product{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Unit:        c.Unit,
		CostPrice:   c.CostPrice,
		MinStock:    c.MinStock,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateProductRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=150"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Unit        string   `db:"unit"        json:"unit"        validate:"omitempty,max=20"`
	CostPrice   *float64 `db:"cost_price"  json:"cost_price"  validate:"omitempty,gte=0"`
	MinStock    *float64 `db:"min_stock"   json:"min_stock"   validate:"omitempty,gte=0"`
	Active      *bool    `db:"active"      json:"active"      validate:"omitempty"`
}

type RegisterEntryRequest struct {
	Quantity float64 `json:"quantity"  validate:"required,gt=0"`
	UnitCost float64 `json:"unit_cost" validate:"omitempty,gte=0"`
	Reason   string  `json:"reason"    validate:"omitempty,max=255"`
}

type RegisterExitRequest struct {
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Reason   string  `json:"reason"   validate:"omitempty,max=255"`
}

type RegisterAdjustmentRequest struct {
	NewQuantity float64 `json:"new_quantity" validate:"gte=0"`
	Reason      string  `json:"reason"       validate:"required,max=255"`
}

type ProductResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	CostPrice    float64 `json:"cost_price"`
	CurrentStock float64 `json:"current_stock"`
	MinStock     float64 `json:"min_stock"`
	Active       bool    `json:"active"`
	LowStock     bool    `json:"low_stock"`
	gDto.Metadata
}

func (r *ProductResponse) FromModel(model model.Product) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Unit = model.Unit
	r.CostPrice = model.CostPrice
	r.CurrentStock = model.CurrentStock
	r.MinStock = model.MinStock
	r.Active = model.Active
	r.LowStock = model.CurrentStock <= model.MinStock
	r.Metadata.FromModel(model.Metadata)
}

type GetProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProductsResponse) FromModels(models []model.Product, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Products = make([]ProductResponse, len(models))
	for i, mod := range models {
		r.Products[i].FromModel(mod)
	}
}

type MovementResponse struct {
	ID             string  `json:"id"`
	ProductID      string  `json:"product_id"`
	Type           string  `json:"movement_type"`
	Quantity       float64 `json:"quantity"`
	QuantityBefore float64 `json:"quantity_before"`
	QuantityAfter  float64 `json:"quantity_after"`
	Reason         string  `json:"reason"`
	AppointmentID  string  `json:"appointment_id,omitempty"`
	gDto.Metadata
}

func (r *MovementResponse) FromModel(model model.StockMovement) {
	r.ID = model.ID
	r.ProductID = model.ProductID
	r.Type = string(model.Type)
	r.Quantity = model.Quantity
	r.QuantityBefore = model.QuantityBefore
	r.QuantityAfter = model.QuantityAfter
	r.Reason = model.Reason

	if model.AppointmentID != nil {
		r.AppointmentID = *model.AppointmentID
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetMovementsResponse) FromModels(models []model.StockMovement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Movements = make([]MovementResponse, len(models))
	for i, mod := range models {
		r.Movements[i].FromModel(mod)
	}
}
