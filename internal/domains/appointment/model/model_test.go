package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estetica/internal/domains/appointment/model"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name   string
		status model.Status
		op     model.Operation
		want   bool
	}{
		{"pending can be approved", model.StatusPending, model.OperationApprove, true},
		{"pending can receive a counter", model.StatusPending, model.OperationCounter, true},
		{"pending can be cancelled", model.StatusPending, model.OperationCancel, true},
		{"pending cannot be confirmed", model.StatusPending, model.OperationConfirm, false},
		{"pending cannot be completed", model.StatusPending, model.OperationComplete, false},
		{"pending cannot be paid", model.StatusPending, model.OperationPay, false},

		{"scheduled can be confirmed", model.StatusScheduled, model.OperationConfirm, true},
		{"scheduled can be completed", model.StatusScheduled, model.OperationComplete, true},
		{"scheduled can be paid", model.StatusScheduled, model.OperationPay, true},
		{"scheduled cannot be approved", model.StatusScheduled, model.OperationApprove, false},
		{"scheduled cannot receive a counter", model.StatusScheduled, model.OperationCounter, false},

		{"confirmed can be completed", model.StatusConfirmed, model.OperationComplete, true},
		{"confirmed cannot be rescheduled", model.StatusConfirmed, model.OperationReschedule, false},
		{"confirmed cannot be edited", model.StatusConfirmed, model.OperationEdit, false},
		{"confirmed cannot be confirmed again", model.StatusConfirmed, model.OperationConfirm, false},

		{"completed can only be paid", model.StatusCompleted, model.OperationPay, true},
		{"completed cannot be cancelled", model.StatusCompleted, model.OperationCancel, false},
		{"completed cannot be deleted", model.StatusCompleted, model.OperationDelete, false},
		{"completed cannot be rescheduled", model.StatusCompleted, model.OperationReschedule, false},

		{"cancelled can only be deleted", model.StatusCancelled, model.OperationDelete, true},
		{"cancelled cannot be cancelled again", model.StatusCancelled, model.OperationCancel, false},
		{"cancelled cannot be approved", model.StatusCancelled, model.OperationApprove, false},
		{"cancelled cannot be paid", model.StatusCancelled, model.OperationPay, false},

		{"unknown status admits nothing", model.Status("UNKNOWN"), model.OperationApprove, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Allowed(tt.status, tt.op))
		})
	}
}
