package model

import (
	"estetica/shared/model"
	"time"
)

const (
	TableName  = "receivables"
	EntityName = "receivable"

	FieldID            = "id"
	FieldAppointmentID = "appointment_id"
	FieldClientID      = "client_id"
	FieldDescription   = "description"
	FieldAmount        = "amount"
	FieldDueDate       = "due_date"
	FieldPaymentDate   = "payment_date"
	FieldPaymentMethod = "payment_method"
	FieldStatus        = "status"
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusOverdue Status = "OVERDUE"
)

type Receivable struct {
	ID            string     `db:"id"`
	AppointmentID string     `db:"appointment_id"`
	ClientID      string     `db:"client_id"`
	Description   string     `db:"description"`
	Amount        float64    `db:"amount"`
	DueDate       time.Time  `db:"due_date"`
	PaymentDate   *time.Time `db:"payment_date"`
	PaymentMethod string     `db:"payment_method"`
	Status        Status     `db:"status"`
	model.Metadata
}
