package dto

import (
	"estetica/internal/domains/receivable/model"
	"estetica/shared"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
)

type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
}

type ReceivableResponse struct {
	ID            string  `json:"id"`
	AppointmentID string  `json:"appointment_id"`
	ClientID      string  `json:"client_id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"due_date"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *ReceivableResponse) FromModel(model model.Receivable) {
	r.ID = model.ID
	r.AppointmentID = model.AppointmentID
	r.ClientID = model.ClientID
	r.Description = model.Description
	r.Amount = model.Amount
	r.DueDate = model.DueDate.Format(constant.DateOnlyFormat)
	r.PaymentMethod = model.PaymentMethod
	r.Status = string(model.Status)

	if model.PaymentDate != nil {
		r.PaymentDate = model.PaymentDate.Format(constant.DateOnlyFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}

type MarkOverdueResponse struct {
	Updated int `json:"updated"`
}

type GetReceivablesResponse struct {
	Receivables []ReceivableResponse `json:"receivables"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetReceivablesResponse) FromModels(models []model.Receivable, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Receivables = make([]ReceivableResponse, len(models))
	for i, mod := range models {
		r.Receivables[i].FromModel(mod)
	}
}
