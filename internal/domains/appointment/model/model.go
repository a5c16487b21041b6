package model

import (
	"time"

	"estetica/shared/model"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID                 = "id"
	FieldClientID           = "client_id"
	FieldProcedureID        = "procedure_id"
	FieldEsteticista        = "esteticista"
	FieldStartTime          = "start_time"
	FieldEndTime            = "end_time"
	FieldDurationMinutes    = "duration_minutes"
	FieldStatus             = "status"
	FieldPrice              = "price"
	FieldDiscount           = "discount"
	FieldTotal              = "total"
	FieldPaid               = "paid"
	FieldConfirmed          = "confirmed"
	FieldReminderSent       = "reminder_sent"
	FieldNotes              = "notes"
	FieldCancellationReason = "cancellation_reason"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusScheduled Status = "SCHEDULED"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

type Operation string

const (
	OperationApprove    Operation = "approve"
	OperationCounter    Operation = "counter"
	OperationEdit       Operation = "edit"
	OperationConfirm    Operation = "confirm"
	OperationReschedule Operation = "reschedule"
	OperationComplete   Operation = "complete"
	OperationCancel     Operation = "cancel"
	OperationPay        Operation = "pay"
	OperationDelete     Operation = "delete"
)

// allowedOps is the single source of truth for which lifecycle operations each
// status admits. Terminal statuses (COMPLETED, CANCELLED) admit almost nothing.
var allowedOps = map[Status]map[Operation]bool{
	StatusPending: {
		OperationApprove:    true,
		OperationCounter:    true,
		OperationEdit:       true,
		OperationReschedule: true,
		OperationCancel:     true,
		OperationDelete:     true,
	},
	StatusScheduled: {
		OperationEdit:       true,
		OperationConfirm:    true,
		OperationReschedule: true,
		OperationComplete:   true,
		OperationCancel:     true,
		OperationPay:        true,
		OperationDelete:     true,
	},
	StatusConfirmed: {
		OperationComplete: true,
		OperationCancel:   true,
		OperationPay:      true,
		OperationDelete:   true,
	},
	StatusCompleted: {
		OperationPay: true,
	},
	StatusCancelled: {
		OperationDelete: true,
	},
}

// Allowed reports whether the operation is legal for an appointment in the
// given status.
func Allowed(status Status, op Operation) bool {
	return allowedOps[status][op]
}

type Appointment struct {
	ID                 string    `db:"id"`
	ClientID           string    `db:"client_id"`
	ProcedureID        string    `db:"procedure_id"`
	Esteticista        string    `db:"esteticista"`
	StartTime          time.Time `db:"start_time"`
	EndTime            time.Time `db:"end_time"`
	DurationMinutes    int       `db:"duration_minutes"`
	Status             Status    `db:"status"`
	Price              float64   `db:"price"`
	Discount           float64   `db:"discount"`
	Total              float64   `db:"total"`
	Paid               bool      `db:"paid"`
	Confirmed          bool      `db:"confirmed"`
	ReminderSent       bool      `db:"reminder_sent"`
	Notes              string    `db:"notes"`
	CancellationReason string    `db:"cancellation_reason"`
	model.Metadata
}
