package dto_test

import (
	"testing"
	"time"

	"estetica/internal/domains/appointment/model"
	"estetica/internal/domains/appointment/model/dto"
	"estetica/shared/constant"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateAppointmentRequest_ToModel(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		ClientID:    "client-1",
		ProcedureID: "proc-1",
		Esteticista: "Ana",
		StartTime:   "2026-03-10T14:00:00Z",
		Discount:    20,
	}

	userID := "test-user-id"
	appointment, err := req.ToModel(userID, 180, 60, model.StatusScheduled)
	assert.NoError(t, err)

	assert.NotEmpty(t, appointment.ID, "expected ID to be generated")
	assert.Equal(t, req.ClientID, appointment.ClientID)
	assert.Equal(t, req.ProcedureID, appointment.ProcedureID)
	assert.Equal(t, req.Esteticista, appointment.Esteticista)
	assert.Equal(t, model.StatusScheduled, appointment.Status)
	assert.Equal(t, 180.0, appointment.Price)
	assert.Equal(t, 160.0, appointment.Total)
	assert.Equal(t, 60, appointment.DurationMinutes, "expected procedure default duration")
	assert.Equal(t, appointment.StartTime.Add(time.Hour), appointment.EndTime)
	assert.Equal(t, userID, appointment.CreatedBy)
	assert.Equal(t, userID, appointment.ModifiedBy)
	assert.False(t, appointment.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateAppointmentRequest_ToModel_ExplicitDuration(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		ClientID:        "client-1",
		ProcedureID:     "proc-1",
		Esteticista:     "Ana",
		StartTime:       "2026-03-10T14:00:00Z",
		DurationMinutes: 90,
	}

	appointment, err := req.ToModel("test-user-id", 180, 60, model.StatusPending)
	assert.NoError(t, err)

	assert.Equal(t, 90, appointment.DurationMinutes, "expected request duration to win")
	assert.Equal(t, appointment.StartTime.Add(90*time.Minute), appointment.EndTime)
}

func TestCreateAppointmentRequest_ToModel_InvalidStartTime(t *testing.T) {
	req := dto.CreateAppointmentRequest{
		ClientID:    "client-1",
		ProcedureID: "proc-1",
		Esteticista: "Ana",
		StartTime:   "tomorrow at noon",
	}

	_, err := req.ToModel("test-user-id", 180, 60, model.StatusPending)
	assert.Error(t, err)
}

func TestAppointmentResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	appointment := model.Appointment{
		ID:              "appt-1",
		ClientID:        "client-1",
		ProcedureID:     "proc-1",
		Esteticista:     "Ana",
		StartTime:       now,
		EndTime:         now.Add(time.Hour),
		DurationMinutes: 60,
		Status:          model.StatusConfirmed,
		Price:           180,
		Discount:        20,
		Total:           160,
		Confirmed:       true,
		Notes:           "first visit",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.AppointmentResponse
	response.FromModel(appointment)

	assert.Equal(t, appointment.ID, response.ID)
	assert.Equal(t, appointment.ClientID, response.ClientID)
	assert.Equal(t, string(model.StatusConfirmed), response.Status)
	assert.Equal(t, now.Format(constant.DateFormat), response.StartTime)
	assert.Equal(t, appointment.Total, response.Total)
	assert.True(t, response.Confirmed)
	assert.Equal(t, appointment.Notes, response.Notes)
	assert.Empty(t, response.CancellationReason)
	assert.Equal(t, appointment.CreatedBy, response.CreatedBy)
}

func TestGetAppointmentsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	appointments := []model.Appointment{
		{
			ID:          "appt-1",
			ClientID:    "client-1",
			ProcedureID: "proc-1",
			Esteticista: "Ana",
			StartTime:   now,
			EndTime:     now.Add(time.Hour),
			Status:      model.StatusScheduled,
			Metadata:    gModel.Metadata{CreatedAt: now, ModifiedAt: now},
		},
		{
			ID:          "appt-2",
			ClientID:    "client-2",
			ProcedureID: "proc-1",
			Esteticista: "Ana",
			StartTime:   now,
			EndTime:     now.Add(time.Hour),
			Status:      model.StatusCompleted,
			Metadata:    gModel.Metadata{CreatedAt: now, ModifiedAt: now},
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetAppointmentsResponse
	response.FromModels(appointments, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Appointments, len(appointments))

	for i, appt := range response.Appointments {
		assert.Equal(t, appointments[i].ID, appt.ID)
		assert.Equal(t, string(appointments[i].Status), appt.Status)
	}
}

func TestGetAppointmentsResponse_FromModels_EmptyList(t *testing.T) {
	var appointments []model.Appointment

	var response dto.GetAppointmentsResponse
	response.FromModels(appointments, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.Appointments, 0)
}
