package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"estetica/config"
	"estetica/infras/otel/mocks"
	receivableMocks "estetica/internal/domains/receivable/mocks"
	"estetica/internal/domains/receivable/model"
	"estetica/internal/domains/receivable/model/dto"
	"estetica/internal/domains/receivable/service"
	"estetica/shared/constant"
	"estetica/shared/failure"
	"estetica/shared/timezone"
)

func setupService(t *testing.T) (service.Receivable, *receivableMocks.MockReceivable) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := receivableMocks.NewMockReceivable(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func storedReceivable(id string, status model.Status) model.Receivable {
	return model.Receivable{
		ID:            id,
		AppointmentID: "appt-1",
		ClientID:      "client-1",
		Description:   "appointment appt-1 on 2026-09-10",
		Amount:        200,
		DueDate:       timezone.Now().Add(24 * time.Hour),
		Status:        status,
	}
}

func TestReceivableService_CreateFromAppointmentTx(t *testing.T) {
	dueDate := timezone.Now().Add(24 * time.Hour)

	t.Run("first call inserts a pending receivable", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, receivable model.Receivable) error {
				assert.Equal(t, model.StatusPending, receivable.Status)
				assert.Equal(t, "appt-1", receivable.AppointmentID)
				assert.Equal(t, 200.0, receivable.Amount)

				return nil
			})

		err := svc.CreateFromAppointmentTx(testContext(), nil, "appt-1", "client-1", "appointment appt-1", 200, dueDate)

		assert.NoError(t, err)
	})

	t.Run("second call for the same appointment is a no-op", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.CreateFromAppointmentTx(testContext(), nil, "appt-1", "client-1", "appointment appt-1", 200, dueDate)

		assert.NoError(t, err)
	})

	t.Run("insert failure propagates", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))

		err := svc.CreateFromAppointmentTx(testContext(), nil, "appt-1", "client-1", "appointment appt-1", 200, dueDate)

		assert.Error(t, err)
	})
}

func TestReceivableService_MarkPaid(t *testing.T) {
	req := dto.MarkPaidRequest{PaymentMethod: "pix"}

	t.Run("pending receivable is paid", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReceivable("rec-1", model.StatusPending), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusPaid), fields[model.FieldStatus])
				assert.Equal(t, "pix", fields[model.FieldPaymentMethod])
				assert.NotNil(t, fields[model.FieldPaymentDate])

				return nil
			})

		assert.NoError(t, svc.MarkPaid(testContext(), "rec-1", req))
	})

	t.Run("overdue receivable can still be paid", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReceivable("rec-1", model.StatusOverdue), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.MarkPaid(testContext(), "rec-1", req))
	})

	t.Run("paying twice is an illegal state", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReceivable("rec-1", model.StatusPaid), nil)

		err := svc.MarkPaid(testContext(), "rec-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})

	t.Run("missing receivable", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Receivable{}, nil)

		err := svc.MarkPaid(testContext(), "rec-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}

func TestReceivableService_MarkOverdue(t *testing.T) {
	t.Run("past-due pending receivables are flipped", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusOverdue), fields[model.FieldStatus])

				return nil
			})

		count, err := svc.MarkOverdue(testContext())

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("nothing due skips the update", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		count, err := svc.MarkOverdue(testContext())

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestReceivableService_DeletePendingForAppointment(t *testing.T) {
	t.Run("pending receivable is dropped", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.DeletePendingForAppointment(testContext(), "appt-1"))
	})

	t.Run("no unpaid receivable is a no-op", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		assert.NoError(t, svc.DeletePendingForAppointment(testContext(), "appt-1"))
	})
}

func TestReceivableService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReceivable("rec-1", model.StatusPending), nil)

		res, err := svc.Get(testContext(), "rec-1")

		assert.NoError(t, err)
		assert.Equal(t, "rec-1", res.ID)
		assert.Equal(t, string(model.StatusPending), res.Status)
	})

	t.Run("missing", func(t *testing.T) {
		svc, mockRepo := setupService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Receivable{}, nil)

		_, err := svc.Get(testContext(), "rec-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}
