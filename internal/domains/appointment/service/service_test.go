package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"estetica/config"
	"estetica/infras/otel/mocks"
	apptMocks "estetica/internal/domains/appointment/mocks"
	"estetica/internal/domains/appointment/model"
	"estetica/internal/domains/appointment/model/dto"
	"estetica/internal/domains/appointment/service"
	clientMocks "estetica/internal/domains/client/mocks"
	clientModel "estetica/internal/domains/client/model"
	inventoryMocks "estetica/internal/domains/inventory/service/mocks"
	procMocks "estetica/internal/domains/procedure/mocks"
	procedureModel "estetica/internal/domains/procedure/model"
	receivableMocks "estetica/internal/domains/receivable/service/mocks"
	notificationMocks "estetica/internal/notification/mocks"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	"estetica/shared/lockmap"
	"estetica/shared/timezone"
)

type appointmentMocks struct {
	repo       *apptMocks.MockAppointment
	clientRepo *clientMocks.MockClient
	procRepo   *procMocks.MockProcedure
	bomRepo    *procMocks.MockProcedureProduct
	inventory  *inventoryMocks.MockInventory
	receivable *receivableMocks.MockReceivable
	dispatcher *notificationMocks.MockDispatcher
}

func setupService(t *testing.T) (service.Appointment, appointmentMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := appointmentMocks{
		repo:       apptMocks.NewMockAppointment(ctrl),
		clientRepo: clientMocks.NewMockClient(ctrl),
		procRepo:   procMocks.NewMockProcedure(ctrl),
		bomRepo:    procMocks.NewMockProcedureProduct(ctrl),
		inventory:  inventoryMocks.NewMockInventory(ctrl),
		receivable: receivableMocks.NewMockReceivable(ctrl),
		dispatcher: notificationMocks.NewMockDispatcher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Scheduling.MinDurationMinutes = 15

	svc := service.New(m.repo, m.clientRepo, m.procRepo, m.bomRepo, m.inventory, m.receivable, m.dispatcher, lockmap.New(), cfg, mocks.NewOtel())

	return svc, m
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func futureStart() time.Time {
	return timezone.Now().Add(48 * time.Hour).Truncate(time.Second)
}

func activeClient(id string) clientModel.Client {
	return clientModel.Client{
		ID:     id,
		Name:   "Maria Souza",
		Status: clientModel.StatusActive,
	}
}

func activeProcedure(id string) procedureModel.Procedure {
	return procedureModel.Procedure{
		ID:              id,
		Name:            "Limpeza de Pele",
		Price:           200,
		DurationMinutes: 60,
		Active:          true,
	}
}

func storedAppointment(id string, status model.Status, start time.Time) model.Appointment {
	return model.Appointment{
		ID:              id,
		ClientID:        "client-1",
		ProcedureID:     "procedure-1",
		Esteticista:     "Ana",
		StartTime:       start,
		EndTime:         start.Add(60 * time.Minute),
		DurationMinutes: 60,
		Status:          status,
		Price:           200,
		Total:           200,
	}
}

// runTx makes InTransaction execute its body against a nil tx, the same way
// the real implementation runs it against a live one.
func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestAppointmentService_CreateDirect(t *testing.T) {
	start := futureStart()

	req := dto.CreateAppointmentRequest{
		ClientID:    "client-1",
		ProcedureID: "procedure-1",
		Esteticista: "Ana",
		StartTime:   start.Format(constant.DateFormat),
	}

	tests := []struct {
		name      string
		req       dto.CreateAppointmentRequest
		setupMock func(m appointmentMocks)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful direct booking",
			req:  req,
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "").Return(false, nil)
				m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]procedureModel.ProcedureProduct{{ProcedureID: "procedure-1", ProductID: "product-1", Quantity: 2}}, nil)
				m.inventory.EXPECT().ValidateAvailable(gomock.Any(), "product-1", 2.0).Return(nil)
				m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.receivable.EXPECT().
					CreateFromAppointmentTx(gomock.Any(), gomock.Any(), gomock.Any(), "client-1", gomock.Any(), 200.0, start).
					Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any())
			},
		},
		{
			name: "slot already taken",
			req:  req,
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "").Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "insufficient stock rejects booking",
			req:  req,
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "").Return(false, nil)
				m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]procedureModel.ProcedureProduct{{ProcedureID: "procedure-1", ProductID: "product-1", Quantity: 2}}, nil)
				m.inventory.EXPECT().ValidateAvailable(gomock.Any(), "product-1", 2.0).
					Return(failure.Conflict("insufficient stock for product product-1: have 1.00, need 2.00"))
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "inactive client",
			req:  req,
			setupMock: func(m appointmentMocks) {
				inactive := activeClient("client-1")
				inactive.Status = clientModel.StatusInactive
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "client not found",
			req:  req,
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(clientModel.Client{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "discount above procedure price",
			req: dto.CreateAppointmentRequest{
				ClientID:    "client-1",
				ProcedureID: "procedure-1",
				Esteticista: "Ana",
				StartTime:   start.Format(constant.DateFormat),
				Discount:    250,
			},
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
		{
			name: "start time in the past",
			req: dto.CreateAppointmentRequest{
				ClientID:    "client-1",
				ProcedureID: "procedure-1",
				Esteticista: "Ana",
				StartTime:   timezone.Now().Add(-time.Hour).Format(constant.DateFormat),
			},
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			res, err := svc.CreateDirect(testContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, string(model.StatusScheduled), res.Status)
			assert.Equal(t, start.Add(60*time.Minute).Format(constant.DateFormat), res.EndTime)
			assert.Equal(t, 200.0, res.Total)
		})
	}
}

func TestAppointmentService_CreateDirect_ExplicitDuration(t *testing.T) {
	svc, m := setupService(t)

	start := futureStart()

	m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
	m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
	m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(90*time.Minute), "").Return(false, nil)
	m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	m.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.receivable.EXPECT().CreateFromAppointmentTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any())

	res, err := svc.CreateDirect(testContext(), dto.CreateAppointmentRequest{
		ClientID:        "client-1",
		ProcedureID:     "procedure-1",
		Esteticista:     "Ana",
		StartTime:       start.Format(constant.DateFormat),
		DurationMinutes: 90,
	})

	assert.NoError(t, err)
	assert.Equal(t, 90, res.DurationMinutes)
	assert.Equal(t, start.Add(90*time.Minute).Format(constant.DateFormat), res.EndTime)
}

func TestAppointmentService_Request(t *testing.T) {
	start := futureStart()

	req := dto.CreateAppointmentRequest{
		ClientID:    "client-1",
		ProcedureID: "procedure-1",
		Esteticista: "Ana",
		StartTime:   start.Format(constant.DateFormat),
	}

	tests := []struct {
		name      string
		setupMock func(m appointmentMocks)
		wantErr   bool
	}{
		{
			name: "request on a free slot",
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "").Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(2)
			},
		},
		{
			name: "conflicting request is still recorded",
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "").Return(true, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any()).Times(2)
			},
		},
		{
			name: "repository error",
			setupMock: func(m appointmentMocks) {
				m.clientRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeClient("client-1"), nil)
				m.procRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeProcedure("procedure-1"), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "").Return(false, nil)
				m.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			res, err := svc.Request(testContext(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, string(model.StatusPending), res.Status)
		})
	}
}

func TestAppointmentService_Approve(t *testing.T) {
	start := futureStart()

	tests := []struct {
		name      string
		setupMock func(m appointmentMocks)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name: "successful approval creates the receivable in the same transaction",
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "appt-1").Return(false, nil)
				m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, string(model.StatusScheduled), fields[model.FieldStatus])

						return nil
					})
				m.receivable.EXPECT().
					CreateFromAppointmentTx(gomock.Any(), gomock.Any(), "appt-1", "client-1", gomock.Any(), 200.0, start).
					Return(nil)
				m.dispatcher.EXPECT().Dispatch(gomock.Any())
			},
		},
		{
			name: "slot taken since the request was made",
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "appt-1").Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "already scheduled",
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
			},
			wantErr:  true,
			wantKind: failure.KindIllegalState,
		},
		{
			name: "appointment not found",
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "receivable failure rolls back the approval",
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "appt-1").Return(false, nil)
				m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.receivable.EXPECT().
					CreateFromAppointmentTx(gomock.Any(), gomock.Any(), "appt-1", "client-1", gomock.Any(), 200.0, start).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			res, err := svc.Approve(testContext(), "appt-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != "" {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, string(model.StatusScheduled), res.Status)
		})
	}
}

func TestAppointmentService_RejectWithCounter(t *testing.T) {
	start := futureStart()
	counterStart := start.Add(3 * time.Hour)

	req := dto.CounterProposalRequest{
		StartTime: counterStart.Format(constant.DateFormat),
		Reason:    "fully booked in the morning",
	}

	t.Run("counter keeps the request pending under the new slot", func(t *testing.T) {
		svc, m := setupService(t)

		appointment := storedAppointment("appt-1", model.StatusPending, start)
		appointment.Notes = "prefer mornings"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
		m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", counterStart, counterStart.Add(60*time.Minute), "appt-1").Return(false, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, counterStart, fields[model.FieldStartTime])
				assert.Equal(t, counterStart.Add(60*time.Minute), fields[model.FieldEndTime])
				assert.Equal(t, "prefer mornings\n[ESTETICISTA] fully booked in the morning", fields[model.FieldNotes])

				return nil
			})
		m.dispatcher.EXPECT().Dispatch(gomock.Any())

		res, err := svc.RejectWithCounter(testContext(), "appt-1", req)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusPending), res.Status)
		assert.Equal(t, counterStart.Format(constant.DateFormat), res.StartTime)
	})

	t.Run("counter-proposed slot is itself taken", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)
		m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", counterStart, counterStart.Add(60*time.Minute), "appt-1").Return(true, nil)

		_, err := svc.RejectWithCounter(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})

	t.Run("only pending requests can be countered", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusConfirmed, start), nil)

		_, err := svc.RejectWithCounter(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_AcceptCounter(t *testing.T) {
	start := futureStart()

	t.Run("accepting the counter approves the request as it stands", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)
		m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), "appt-1").Return(false, nil)
		m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.receivable.EXPECT().CreateFromAppointmentTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any())

		res, err := svc.AcceptCounter(testContext(), "appt-1")

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusScheduled), res.Status)
	})

	t.Run("cancelled request cannot accept a counter", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCancelled, start), nil)

		_, err := svc.AcceptCounter(testContext(), "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	start := futureStart()

	req := dto.CancelAppointmentRequest{Reason: "client asked to cancel"}

	t.Run("cancel drops the pending receivable", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusCancelled), fields[model.FieldStatus])
				assert.Equal(t, "client asked to cancel", fields[model.FieldCancellationReason])

				return nil
			})
		m.receivable.EXPECT().DeletePendingForAppointment(gomock.Any(), "appt-1").Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any())

		assert.NoError(t, svc.Cancel(testContext(), "appt-1", req))
	})

	t.Run("cancelling twice is an illegal state", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCancelled, start), nil)

		err := svc.Cancel(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})

	t.Run("receivable cleanup failure does not undo the cancellation", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusConfirmed, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.receivable.EXPECT().DeletePendingForAppointment(gomock.Any(), "appt-1").Return(errors.New("database error"))
		m.dispatcher.EXPECT().Dispatch(gomock.Any())

		assert.NoError(t, svc.Cancel(testContext(), "appt-1", req))
	})

	t.Run("completed appointment cannot be cancelled", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCompleted, start), nil)

		err := svc.Cancel(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_Complete(t *testing.T) {
	start := futureStart()

	bom := []procedureModel.ProcedureProduct{
		{ProcedureID: "procedure-1", ProductID: "product-b", Quantity: 1},
		{ProcedureID: "procedure-1", ProductID: "product-a", Quantity: 3},
	}

	t.Run("completion deducts stock, stamps the visit and flips the status atomically", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusConfirmed, start), nil)
		m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bom, nil)
		m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)

		// Deductions happen in product id order regardless of BOM order.
		gomock.InOrder(
			m.inventory.EXPECT().RegisterExitTx(gomock.Any(), gomock.Any(), "product-a", 3.0, "appointment appt-1", "appt-1").Return(nil),
			m.inventory.EXPECT().RegisterExitTx(gomock.Any(), gomock.Any(), "product-b", 1.0, "appointment appt-1", "appt-1").Return(nil),
		)

		m.clientRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, start, fields[clientModel.FieldLastVisit])

				return nil
			})
		m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusCompleted), fields[model.FieldStatus])

				return nil
			})
		m.inventory.EXPECT().InvalidateProductCache(gomock.Any(), "product-a")
		m.inventory.EXPECT().InvalidateProductCache(gomock.Any(), "product-b")

		assert.NoError(t, svc.Complete(testContext(), "appt-1"))
	})

	t.Run("a single stock failure aborts the whole completion", func(t *testing.T) {
		svc, m := setupService(t)

		// An aborted transaction must not touch the product cache either.
		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(bom, nil)
		m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.inventory.EXPECT().RegisterExitTx(gomock.Any(), gomock.Any(), "product-a", 3.0, "appointment appt-1", "appt-1").
			Return(failure.Conflict("insufficient stock for product product-a: have 1.00, need 3.00"))

		err := svc.Complete(testContext(), "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})

	t.Run("pending request cannot be completed", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)

		err := svc.Complete(testContext(), "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_Pay(t *testing.T) {
	start := futureStart()

	req := dto.PayAppointmentRequest{PaymentMethod: "pix"}

	t.Run("completed appointment is paid once", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCompleted, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldPaid])

				return nil
			})

		assert.NoError(t, svc.Pay(testContext(), "appt-1", req))
	})

	t.Run("double payment is rejected", func(t *testing.T) {
		svc, m := setupService(t)

		appointment := storedAppointment("appt-1", model.StatusCompleted, start)
		appointment.Paid = true

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)

		err := svc.Pay(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})

	t.Run("pending request cannot be paid", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)

		err := svc.Pay(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_Delete(t *testing.T) {
	start := futureStart()

	t.Run("cancelled appointment can be erased", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCancelled, start), nil)
		m.receivable.EXPECT().DeletePendingForAppointment(gomock.Any(), "appt-1").Return(nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(testContext(), "appt-1"))
	})

	t.Run("completed appointment can never be deleted", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCompleted, start), nil)

		err := svc.Delete(testContext(), "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_Reschedule(t *testing.T) {
	start := futureStart()
	newStart := start.Add(24 * time.Hour)

	req := dto.RescheduleAppointmentRequest{StartTime: newStart.Format(constant.DateFormat)}

	t.Run("rescheduling moves the slot and resets the reminder", func(t *testing.T) {
		svc, m := setupService(t)

		appointment := storedAppointment("appt-1", model.StatusScheduled, start)
		appointment.ReminderSent = true

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)
		m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", newStart, newStart.Add(60*time.Minute), "appt-1").Return(false, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, newStart, fields[model.FieldStartTime])
				assert.Equal(t, newStart.Add(60*time.Minute), fields[model.FieldEndTime])
				assert.Equal(t, false, fields[model.FieldReminderSent])
				assert.NotContains(t, fields, model.FieldStatus)

				return nil
			})
		m.dispatcher.EXPECT().Dispatch(gomock.Any())

		assert.NoError(t, svc.Reschedule(testContext(), "appt-1", req))
	})

	t.Run("confirmed appointment cannot be rescheduled", func(t *testing.T) {
		svc, m := setupService(t)

		appointment := storedAppointment("appt-1", model.StatusConfirmed, start)
		appointment.Confirmed = true

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)

		err := svc.Reschedule(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})

	t.Run("new slot is taken", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", newStart, newStart.Add(60*time.Minute), "appt-1").Return(true, nil)

		err := svc.Reschedule(testContext(), "appt-1", req)

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})
}

func TestAppointmentService_Update(t *testing.T) {
	start := futureStart()

	t.Run("notes-only update skips the conflict check", func(t *testing.T) {
		svc, m := setupService(t)

		notes := "bring the allergy record"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, notes, fields[model.FieldNotes])

				return nil
			})

		assert.NoError(t, svc.Update(testContext(), dto.UpdateAppointmentRequest{Notes: &notes}, "appt-1"))
	})

	t.Run("discount change recomputes the total", func(t *testing.T) {
		svc, m := setupService(t)

		discount := 50.0

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 50.0, fields[model.FieldDiscount])
				assert.Equal(t, 150.0, fields[model.FieldTotal])

				return nil
			})

		assert.NoError(t, svc.Update(testContext(), dto.UpdateAppointmentRequest{Discount: &discount}, "appt-1"))
	})

	t.Run("discount above the price is rejected", func(t *testing.T) {
		svc, m := setupService(t)

		discount := 250.0

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)

		err := svc.Update(testContext(), dto.UpdateAppointmentRequest{Discount: &discount}, "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})

	t.Run("moving the slot to a taken one fails", func(t *testing.T) {
		svc, m := setupService(t)

		newStart := start.Add(2 * time.Hour)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", newStart, newStart.Add(60*time.Minute), "appt-1").Return(true, nil)

		err := svc.Update(testContext(), dto.UpdateAppointmentRequest{StartTime: newStart.Format(constant.DateFormat)}, "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})

	t.Run("completed appointment cannot be edited", func(t *testing.T) {
		svc, m := setupService(t)

		notes := "late note"

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusCompleted, start), nil)

		err := svc.Update(testContext(), dto.UpdateAppointmentRequest{Notes: &notes}, "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_Confirm(t *testing.T) {
	start := futureStart()

	t.Run("scheduled appointment is confirmed", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, string(model.StatusConfirmed), fields[model.FieldStatus])
				assert.Equal(t, true, fields[model.FieldConfirmed])

				return nil
			})

		assert.NoError(t, svc.Confirm(testContext(), "appt-1"))
	})

	t.Run("pending request cannot be confirmed", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusPending, start), nil)

		err := svc.Confirm(testContext(), "appt-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindIllegalState, failure.GetKind(err))
	})
}

func TestAppointmentService_CheckAvailability(t *testing.T) {
	start := futureStart()
	end := start.Add(time.Hour)

	tests := []struct {
		name          string
		req           dto.CheckAvailabilityRequest
		setupMock     func(m appointmentMocks)
		wantErr       bool
		wantAvailable bool
	}{
		{
			name: "free slot",
			req: dto.CheckAvailabilityRequest{
				Esteticista: "Ana",
				StartTime:   start.Format(constant.DateFormat),
				EndTime:     end.Format(constant.DateFormat),
			},
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, end, "").Return(false, nil)
			},
			wantAvailable: true,
		},
		{
			name: "taken slot",
			req: dto.CheckAvailabilityRequest{
				Esteticista: "Ana",
				StartTime:   start.Format(constant.DateFormat),
				EndTime:     end.Format(constant.DateFormat),
			},
			setupMock: func(m appointmentMocks) {
				m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, end, "").Return(true, nil)
			},
			wantAvailable: false,
		},
		{
			name: "end before start",
			req: dto.CheckAvailabilityRequest{
				Esteticista: "Ana",
				StartTime:   end.Format(constant.DateFormat),
				EndTime:     start.Format(constant.DateFormat),
			},
			setupMock: func(m appointmentMocks) {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			res, err := svc.CheckAvailability(testContext(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, res.Available)
		})
	}
}

func TestAppointmentService_MarkReminderSent(t *testing.T) {
	start := futureStart()

	t.Run("first call updates the flag and publishes the reminder", func(t *testing.T) {
		svc, m := setupService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedAppointment("appt-1", model.StatusScheduled, start), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any())

		assert.NoError(t, svc.MarkReminderSent(testContext(), "appt-1"))
	})

	t.Run("second call is a no-op and publishes nothing", func(t *testing.T) {
		svc, m := setupService(t)

		appointment := storedAppointment("appt-1", model.StatusScheduled, start)
		appointment.ReminderSent = true

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(appointment, nil)

		assert.NoError(t, svc.MarkReminderSent(testContext(), "appt-1"))
	})
}

func TestAppointmentService_ListNeedingReminder(t *testing.T) {
	svc, m := setupService(t)

	start := futureStart()

	// No dispatcher expectation: listing is a pure query and publishes
	// nothing, however often it runs.
	m.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Appointment{
			storedAppointment("appt-1", model.StatusScheduled, start),
			storedAppointment("appt-2", model.StatusConfirmed, start.Add(time.Hour)),
		}, nil)

	res, err := svc.ListNeedingReminder(testContext())

	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

// Two approvals race for the same esteticista and slot. The per-esteticista
// lock serializes the conflict-check-then-write sequence, so exactly one wins.
func TestAppointmentService_Approve_Race(t *testing.T) {
	svc, m := setupService(t)

	start := futureStart()

	booked := false

	appointments := map[string]model.Appointment{
		"appt-1": storedAppointment("appt-1", model.StatusPending, start),
		"appt-2": storedAppointment("appt-2", model.StatusPending, start),
	}

	m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Appointment, error) {
			id, _ := filter.Filters[0].(gDto.Filter).Value.(string)

			return appointments[id], nil
		}).
		AnyTimes()

	m.repo.EXPECT().ExistsConflict(gomock.Any(), "Ana", start, start.Add(60*time.Minute), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _, _ time.Time, _ string) (bool, error) {
			return booked, nil
		}).
		AnyTimes()
	m.bomRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.repo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx).AnyTimes()
	m.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ map[string]any, _ any) error {
			booked = true

			return nil
		}).
		AnyTimes()
	m.receivable.EXPECT().CreateFromAppointmentTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.dispatcher.EXPECT().Dispatch(gomock.Any()).AnyTimes()

	var wg sync.WaitGroup

	results := make([]error, 2)

	ids := []string{"appt-1", "appt-2"}
	for i := range ids {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, results[i] = svc.Approve(testContext(), ids[i])
		}(i)
	}

	wg.Wait()

	var conflicts, successes int

	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case failure.IsKind(err, failure.KindConflict):
			conflicts++
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, conflicts)
}
