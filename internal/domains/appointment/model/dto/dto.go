package dto

import (
	"time"

	"estetica/internal/domains/appointment/model"
	"estetica/shared"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ClientID        string  `json:"client_id"        validate:"required"`
	ProcedureID     string  `json:"procedure_id"     validate:"required"`
	Esteticista     string  `json:"esteticista"      validate:"required,max=100"`
	StartTime       string  `json:"start_time"       validate:"required"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Discount        float64 `json:"discount"         validate:"omitempty,gte=0"`
	Notes           string  `json:"notes"            validate:"omitempty"`
}

// ToModel builds the appointment from the request plus the procedure's price
// and default duration. End time is always derived, never supplied.
func (c *CreateAppointmentRequest) ToModel(user string, price float64, procedureDuration int, status model.Status) (model.Appointment, error) {
	startTime, err := timezone.Parse(constant.DateFormat, c.StartTime)
	if err != nil {
		return model.Appointment{}, err
	}

	duration := c.DurationMinutes
	if duration == 0 {
		duration = procedureDuration
	}

	return model.Appointment{
		ID:              uuid.NewString(),
		ClientID:        c.ClientID,
		ProcedureID:     c.ProcedureID,
		Esteticista:     c.Esteticista,
		StartTime:       startTime,
		EndTime:         startTime.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		Status:          status,
		Price:           price,
		Discount:        c.Discount,
		Total:           price - c.Discount,
		Notes:           c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateAppointmentRequest struct {
	Esteticista string   `json:"esteticista" validate:"omitempty,max=100"`
	StartTime   string   `json:"start_time"  validate:"omitempty"`
	Discount    *float64 `json:"discount"    validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes"       validate:"omitempty"`
}

type CounterProposalRequest struct {
	StartTime string `json:"start_time" validate:"required"`
	Reason    string `json:"reason"     validate:"required,max=255"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"required,max=255"`
}

type RescheduleAppointmentRequest struct {
	StartTime string `json:"start_time" validate:"required"`
}

type PayAppointmentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,max=50"`
}

type CheckAvailabilityRequest struct {
	Esteticista string `json:"esteticista" validate:"required,max=100"`
	StartTime   string `json:"start_time"  validate:"required"`
	EndTime     string `json:"end_time"    validate:"required"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type AppointmentResponse struct {
	ID                 string  `json:"id"`
	ClientID           string  `json:"client_id"`
	ProcedureID        string  `json:"procedure_id"`
	Esteticista        string  `json:"esteticista"`
	StartTime          string  `json:"start_time"`
	EndTime            string  `json:"end_time"`
	DurationMinutes    int     `json:"duration_minutes"`
	Status             string  `json:"status"`
	Price              float64 `json:"price"`
	Discount           float64 `json:"discount"`
	Total              float64 `json:"total"`
	Paid               bool    `json:"paid"`
	Confirmed          bool    `json:"confirmed"`
	ReminderSent       bool    `json:"reminder_sent"`
	Notes              string  `json:"notes"`
	CancellationReason string  `json:"cancellation_reason,omitempty"`
	gDto.Metadata
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.ClientID = model.ClientID
	r.ProcedureID = model.ProcedureID
	r.Esteticista = model.Esteticista
	r.StartTime = model.StartTime.Format(constant.DateFormat)
	r.EndTime = model.EndTime.Format(constant.DateFormat)
	r.DurationMinutes = model.DurationMinutes
	r.Status = string(model.Status)
	r.Price = model.Price
	r.Discount = model.Discount
	r.Total = model.Total
	r.Paid = model.Paid
	r.Confirmed = model.Confirmed
	r.ReminderSent = model.ReminderSent
	r.Notes = model.Notes
	r.CancellationReason = model.CancellationReason
	r.Metadata.FromModel(model.Metadata)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
