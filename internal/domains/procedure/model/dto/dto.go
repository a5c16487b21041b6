package dto

import (
	"estetica/internal/domains/procedure/model"
	"estetica/shared"
	gDto "estetica/shared/dto"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/google/uuid"
)

type BOMItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  float64 `json:"quantity"   validate:"required,gt=0"`
}

type CreateProcedureRequest struct {
	Name            string           `json:"name"             validate:"required,max=150"`
	Description     string           `json:"description"      validate:"omitempty"`
	Price           float64          `json:"price"            validate:"required,gte=0"`
	DurationMinutes int              `json:"duration_minutes" validate:"required,gt=0"`
	Products        []BOMItemRequest `json:"products"         validate:"omitempty,dive"`
}

func (c *CreateProcedureRequest) ToModel(user string) model.Procedure {
	return model.Procedure{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Price:           c.Price,
		DurationMinutes: c.DurationMinutes,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (c *CreateProcedureRequest) ToBOMModels(procedureID, user string) []model.ProcedureProduct {
	items := make([]model.ProcedureProduct, len(c.Products))
	for i, product := range c.Products {
		items[i] = model.ProcedureProduct{
			ID:          uuid.NewString(),
			ProcedureID: procedureID,
			ProductID:   product.ProductID,
			Quantity:    product.Quantity,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return items
}

type UpdateProcedureRequest struct {
	Name            string   `db:"name"             json:"name"             validate:"omitempty,max=150"`
	Description     string   `db:"description"      json:"description"      validate:"omitempty"`
	Price           *float64 `db:"price"            json:"price"            validate:"omitempty,gte=0"`
	DurationMinutes *int     `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,gt=0"`
	Active          *bool    `db:"active"           json:"active"           validate:"omitempty"`
}

type SetProductsRequest struct {
	Products []BOMItemRequest `json:"products" validate:"required,dive"`
}

type BOMItemResponse struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
}

type ProcedureResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           float64           `json:"price"`
	DurationMinutes int               `json:"duration_minutes"`
	Active          bool              `json:"active"`
	Products        []BOMItemResponse `json:"products,omitempty"`
	gDto.Metadata
}

func (r *ProcedureResponse) FromModel(model model.Procedure) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Price = model.Price
	r.DurationMinutes = model.DurationMinutes
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

func (r *ProcedureResponse) WithProducts(items []model.ProcedureProduct) {
	r.Products = make([]BOMItemResponse, len(items))
	for i, item := range items {
		r.Products[i] = BOMItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
}

type GetProceduresResponse struct {
	Procedures []ProcedureResponse `json:"procedures"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetProceduresResponse) FromModels(models []model.Procedure, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Procedures = make([]ProcedureResponse, len(models))
	for i, mod := range models {
		r.Procedures[i].FromModel(mod)
	}
}
