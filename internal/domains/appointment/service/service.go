package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"estetica/config"
	"estetica/infras/otel"
	"estetica/internal/domains/appointment/model"
	"estetica/internal/domains/appointment/model/dto"
	"estetica/internal/domains/appointment/repository"
	clientModel "estetica/internal/domains/client/model"
	clientRepository "estetica/internal/domains/client/repository"
	inventoryService "estetica/internal/domains/inventory/service"
	procedureModel "estetica/internal/domains/procedure/model"
	procedureRepository "estetica/internal/domains/procedure/repository"
	receivableService "estetica/internal/domains/receivable/service"
	"estetica/internal/notification"
	"estetica/shared"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	"estetica/shared/lockmap"
	"estetica/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Appointment interface {
	CreateDirect(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	Request(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	Approve(ctx context.Context, id string) (dto.AppointmentResponse, error)
	RejectWithCounter(ctx context.Context, id string, req dto.CounterProposalRequest) (dto.AppointmentResponse, error)
	AcceptCounter(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, req dto.CancelAppointmentRequest) error
	Reschedule(ctx context.Context, id string, req dto.RescheduleAppointmentRequest) error
	Complete(ctx context.Context, id string) error
	Pay(ctx context.Context, id string, req dto.PayAppointmentRequest) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.AvailabilityResponse, error)
	MarkReminderSent(ctx context.Context, id string) error
	ListNeedingReminder(ctx context.Context) ([]dto.AppointmentResponse, error)
}

type serviceImpl struct {
	repo       repository.Appointment
	clientRepo clientRepository.Client
	procRepo   procedureRepository.Procedure
	bomRepo    procedureRepository.ProcedureProduct
	inventory  inventoryService.Inventory
	receivable receivableService.Receivable
	dispatcher notification.Dispatcher
	locks      *lockmap.LockMap
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Appointment,
	clientRepo clientRepository.Client,
	procRepo procedureRepository.Procedure,
	bomRepo procedureRepository.ProcedureProduct,
	inventory inventoryService.Inventory,
	receivable receivableService.Receivable,
	dispatcher notification.Dispatcher,
	locks *lockmap.LockMap,
	cfg *config.Config,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:       repo,
		clientRepo: clientRepo,
		procRepo:   procRepo,
		bomRepo:    bomRepo,
		inventory:  inventory,
		receivable: receivable,
		dispatcher: dispatcher,
		locks:      locks,
		cfg:        cfg,
		otel:       otel,
	}
}

// CreateDirect books a confirmed slot in one step, as done over the counter or
// by phone. The slot must be free and the procedure's products in stock; the
// appointment and its receivable are written in one transaction.
func (s *serviceImpl) CreateDirect(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.CreateDirect")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.buildAppointment(ctx, req, model.StatusScheduled)
	if err != nil {
		return res, err
	}

	s.locks.Lock(appointment.Esteticista)
	defer s.locks.Unlock(appointment.Esteticista)

	conflict, err := s.repo.ExistsConflict(ctx, appointment.Esteticista, appointment.StartTime, appointment.EndTime, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot conflict")

		return res, fmt.Errorf("failed to check slot conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict("the requested slot is already taken for this esteticista") // nolint:wrapcheck
	}

	if err = s.validateStock(ctx, appointment.ProcedureID); err != nil {
		return res, err
	}

	err = s.repo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, appointment); err != nil {
			return fmt.Errorf("failed to create appointment: %w", err)
		}

		return s.createReceivableTx(ctx, tx, appointment)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return res, err
	}

	s.notify(notification.KindBookingConfirmed, appointment, "")
	res.FromModel(appointment)

	return res, nil
}

// Request records a client-initiated booking request as PENDING. A slot
// conflict does not reject the request; the esteticista resolves it during
// approval, possibly with a counter-proposal.
func (s *serviceImpl) Request(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Request")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.buildAppointment(ctx, req, model.StatusPending)
	if err != nil {
		return res, err
	}

	conflict, err := s.repo.ExistsConflict(ctx, appointment.Esteticista, appointment.StartTime, appointment.EndTime, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot conflict")

		return res, fmt.Errorf("failed to check slot conflict: %w", err)
	}

	if conflict {
		log.Warn().
			Str("esteticista", appointment.Esteticista).
			Time("startTime", appointment.StartTime).
			Msg("booking request overlaps an existing appointment")
	}

	if err = s.repo.Insert(ctx, appointment); err != nil {
		log.Error().Err(err).Msg("failed to create appointment request")

		return res, fmt.Errorf("failed to create appointment request: %w", err)
	}

	s.notify(notification.KindRequestReceived, appointment, "")
	s.notify(notification.KindRequestPending, appointment, "")

	res.FromModel(appointment)

	return res, nil
}

// Approve turns a PENDING request into a SCHEDULED appointment. The slot is
// re-checked under the esteticista lock, stock is validated, and the
// receivable is created in the same transaction as the status change.
func (s *serviceImpl) Approve(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Approve")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.Allowed(appointment.Status, model.OperationApprove) {
		return res, failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be approved", appointment.Status)) // nolint:wrapcheck
	}

	s.locks.Lock(appointment.Esteticista)
	defer s.locks.Unlock(appointment.Esteticista)

	conflict, err := s.repo.ExistsConflict(ctx, appointment.Esteticista, appointment.StartTime, appointment.EndTime, appointment.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot conflict")

		return res, fmt.Errorf("failed to check slot conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict("the requested slot is no longer available; counter-propose a new time") // nolint:wrapcheck
	}

	if err = s.validateStock(ctx, appointment.ProcedureID); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.repo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        string(model.StatusScheduled),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, filter)
		if err != nil {
			return fmt.Errorf("failed to approve appointment: %w", err)
		}

		return s.createReceivableTx(ctx, tx, appointment)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to approve appointment")

		return res, err
	}

	appointment.Status = model.StatusScheduled
	s.notify(notification.KindRequestApproved, appointment, "")

	res.FromModel(appointment)

	return res, nil
}

// RejectWithCounter answers a PENDING request with a new time. The request
// stays PENDING under the proposed slot; the esteticista's reason is appended
// to the notes so the negotiation history survives.
func (s *serviceImpl) RejectWithCounter(ctx context.Context, id string, req dto.CounterProposalRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.RejectWithCounter")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return res, err
	}

	if !model.Allowed(appointment.Status, model.OperationCounter) {
		return res, failure.IllegalState(fmt.Sprintf("appointment in status %s cannot receive a counter-proposal", appointment.Status)) // nolint:wrapcheck
	}

	newStart, err := timezone.Parse(constant.DateFormat, req.StartTime)
	if err != nil {
		return res, failure.Validation("start_time must use format " + constant.DateFormat) // nolint:wrapcheck
	}

	if err = s.validateWindow(newStart, appointment.DurationMinutes); err != nil {
		return res, err
	}

	newEnd := newStart.Add(time.Duration(appointment.DurationMinutes) * time.Minute)

	s.locks.Lock(appointment.Esteticista)
	defer s.locks.Unlock(appointment.Esteticista)

	conflict, err := s.repo.ExistsConflict(ctx, appointment.Esteticista, newStart, newEnd, appointment.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot conflict")

		return res, fmt.Errorf("failed to check slot conflict: %w", err)
	}

	if conflict {
		return res, failure.Conflict("the counter-proposed slot is already taken") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	notes := appointment.Notes
	if notes != "" {
		notes += "\n"
	}
	notes += "[ESTETICISTA] " + req.Reason

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStartTime:     newStart,
		model.FieldEndTime:       newEnd,
		model.FieldNotes:         notes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to counter-propose appointment")

		return res, fmt.Errorf("failed to counter-propose appointment: %w", err)
	}

	appointment.StartTime = newStart
	appointment.EndTime = newEnd
	appointment.Notes = notes

	s.notify(notification.KindCounterProposal, appointment, req.Reason)
	res.FromModel(appointment)

	return res, nil
}

// AcceptCounter is the client accepting the esteticista's proposed time. It is
// an approval of the request as it now stands; Approve guards the status.
func (s *serviceImpl) AcceptCounter(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.AcceptCounter")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.Approve(ctx, id)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationEdit) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be edited", appointment.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	esteticista := appointment.Esteticista
	if req.Esteticista != "" {
		esteticista = req.Esteticista
		fields[model.FieldEsteticista] = esteticista
	}

	startTime := appointment.StartTime
	if req.StartTime != "" {
		startTime, err = timezone.Parse(constant.DateFormat, req.StartTime)
		if err != nil {
			return failure.Validation("start_time must use format " + constant.DateFormat) // nolint:wrapcheck
		}

		if err = s.validateWindow(startTime, appointment.DurationMinutes); err != nil {
			return err
		}

		fields[model.FieldStartTime] = startTime
		fields[model.FieldEndTime] = startTime.Add(time.Duration(appointment.DurationMinutes) * time.Minute)
	}

	if req.Discount != nil {
		if *req.Discount > appointment.Price {
			return failure.Validation("discount cannot exceed the procedure price") // nolint:wrapcheck
		}

		fields[model.FieldDiscount] = *req.Discount
		fields[model.FieldTotal] = appointment.Price - *req.Discount
	}

	if req.Notes != nil {
		fields[model.FieldNotes] = *req.Notes
	}

	slotChanged := req.Esteticista != "" || req.StartTime != ""
	if slotChanged {
		s.locks.Lock(esteticista)
		defer s.locks.Unlock(esteticista)

		endTime := startTime.Add(time.Duration(appointment.DurationMinutes) * time.Minute)

		conflict, err := s.repo.ExistsConflict(ctx, esteticista, startTime, endTime, appointment.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check slot conflict")

			return fmt.Errorf("failed to check slot conflict: %w", err)
		}

		if conflict {
			return failure.Conflict("the requested slot is already taken for this esteticista") // nolint:wrapcheck
		}
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	return nil
}

// Confirm marks a SCHEDULED appointment as confirmed by the client.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationConfirm) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be confirmed", appointment.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusConfirmed),
		model.FieldConfirmed:     true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to confirm appointment")

		return fmt.Errorf("failed to confirm appointment: %w", err)
	}

	return nil
}

// Cancel moves the appointment to CANCELLED and drops its unpaid receivable.
// Cancelling an already cancelled appointment is an illegal state.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationCancel) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be cancelled", appointment.Status)) // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:             string(model.StatusCancelled),
		model.FieldCancellationReason: req.Reason,
		constant.FieldModifiedAt:      timezone.Now(),
		constant.FieldModifiedBy:      user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel appointment")

		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	if err = s.receivable.DeletePendingForAppointment(ctx, id); err != nil {
		log.Error().Err(err).Str("appointmentID", id).Msg("failed to drop pending receivable for cancelled appointment")
	}

	appointment.Status = model.StatusCancelled
	s.notify(notification.KindCancelled, appointment, req.Reason)

	return nil
}

// Reschedule moves a PENDING or SCHEDULED appointment to a new slot. A
// reminder already sent covers the old slot, so the flag resets. Confirmed
// appointments cannot move; they must be cancelled and rebooked.
func (s *serviceImpl) Reschedule(ctx context.Context, id string, req dto.RescheduleAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationReschedule) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be rescheduled", appointment.Status)) // nolint:wrapcheck
	}

	newStart, err := timezone.Parse(constant.DateFormat, req.StartTime)
	if err != nil {
		return failure.Validation("start_time must use format " + constant.DateFormat) // nolint:wrapcheck
	}

	if err = s.validateWindow(newStart, appointment.DurationMinutes); err != nil {
		return err
	}

	newEnd := newStart.Add(time.Duration(appointment.DurationMinutes) * time.Minute)

	s.locks.Lock(appointment.Esteticista)
	defer s.locks.Unlock(appointment.Esteticista)

	conflict, err := s.repo.ExistsConflict(ctx, appointment.Esteticista, newStart, newEnd, appointment.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot conflict")

		return fmt.Errorf("failed to check slot conflict: %w", err)
	}

	if conflict {
		return failure.Conflict("the requested slot is already taken for this esteticista") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStartTime:     newStart,
		model.FieldEndTime:       newEnd,
		model.FieldReminderSent:  false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reschedule appointment")

		return fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	appointment.StartTime = newStart
	appointment.EndTime = newEnd
	s.notify(notification.KindRescheduled, appointment, "")

	return nil
}

// Complete performs the appointment's side effects as one transaction: every
// product on the procedure's bill of materials is deducted (all or nothing),
// the client's last visit is stamped, and the status moves to COMPLETED.
func (s *serviceImpl) Complete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationComplete) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be completed", appointment.Status)) // nolint:wrapcheck
	}

	items, err := s.bomItems(ctx, appointment.ProcedureID)
	if err != nil {
		return err
	}

	// Each exit locks its product row FOR UPDATE; deducting in product id
	// order keeps two concurrent completions from deadlocking on each
	// other's rows.
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	reason := "appointment " + appointment.ID

	err = s.repo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, item := range items {
			if err := s.inventory.RegisterExitTx(ctx, tx, item.ProductID, item.Quantity, reason, appointment.ID); err != nil {
				return err
			}
		}

		err := s.clientRepo.UpdateTx(ctx, tx, map[string]any{
			clientModel.FieldLastVisit: appointment.StartTime,
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   user,
		}, shared.FilterByID(appointment.ClientID, clientModel.FieldID, clientModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to record client visit: %w", err)
		}

		err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatus:        string(model.StatusCompleted),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to complete appointment: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to complete appointment")

		return err
	}

	// Only now is the deducted stock visible to other transactions.
	for _, item := range items {
		s.inventory.InvalidateProductCache(ctx, item.ProductID)
	}

	return nil
}

func (s *serviceImpl) Pay(ctx context.Context, id string, req dto.PayAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Pay")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationPay) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be paid", appointment.Status)) // nolint:wrapcheck
	}

	if appointment.Paid {
		return failure.IllegalState("appointment is already paid") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldPaid:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to mark appointment as paid")

		return fmt.Errorf("failed to mark appointment as paid: %w", err)
	}

	return nil
}

// Delete erases a booking mistake. Completed appointments have consumed stock
// and produced billing, so they can only be cancelled out, never deleted.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if !model.Allowed(appointment.Status, model.OperationDelete) {
		return failure.IllegalState(fmt.Sprintf("appointment in status %s cannot be deleted", appointment.Status)) // nolint:wrapcheck
	}

	if err = s.receivable.DeletePendingForAppointment(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete appointment")

		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	appointments, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(appointments, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, err := timezone.Parse(constant.DateFormat, req.StartTime)
	if err != nil {
		return res, failure.Validation("start_time must use format " + constant.DateFormat) // nolint:wrapcheck
	}

	end, err := timezone.Parse(constant.DateFormat, req.EndTime)
	if err != nil {
		return res, failure.Validation("end_time must use format " + constant.DateFormat) // nolint:wrapcheck
	}

	if !end.After(start) {
		return res, failure.Validation("end_time must be after start_time") // nolint:wrapcheck
	}

	conflict, err := s.repo.ExistsConflict(ctx, req.Esteticista, start, end, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to check slot conflict")

		return res, fmt.Errorf("failed to check slot conflict: %w", err)
	}

	res.Available = !conflict

	return res, nil
}

// MarkReminderSent flips the reminder flag and publishes the REMINDER event.
// Calling it again is a no-op, so the event goes out at most once per slot.
func (s *serviceImpl) MarkReminderSent(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.MarkReminderSent")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getAppointment(ctx, id)
	if err != nil {
		return err
	}

	if appointment.ReminderSent {
		return nil
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldReminderSent:  true,
		constant.FieldModifiedAt: timezone.Now(),
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to mark reminder as sent")

		return fmt.Errorf("failed to mark reminder as sent: %w", err)
	}

	s.notify(notification.KindReminder, appointment, "")

	return nil
}

// ListNeedingReminder returns active appointments starting within the next 24
// hours whose reminder was not yet sent. It is a pure query; whoever delivers
// the reminders calls MarkReminderSent afterwards.
func (s *serviceImpl) ListNeedingReminder(ctx context.Context) (res []dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.ListNeedingReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: []string{string(model.StatusScheduled), string(model.StatusConfirmed)}, Table: model.TableName},
			gDto.Filter{Field: model.FieldReminderSent, Operator: gDto.FilterOperatorEq, Value: false, Table: model.TableName},
			gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorGreaterEq, Value: now, ArgName: "window_start", Table: model.TableName},
			gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorLess, Value: now.Add(24 * time.Hour), ArgName: "window_end", Table: model.TableName},
		},
	}

	appointments, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: "ASC"}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list appointments needing reminder")

		return nil, fmt.Errorf("failed to list appointments needing reminder: %w", err)
	}

	res = make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		res[i].FromModel(appointment)
	}

	return res, nil
}

// buildAppointment validates the request against the client, the procedure and
// the scheduling window, then produces the model ready for insertion.
func (s *serviceImpl) buildAppointment(ctx context.Context, req dto.CreateAppointmentRequest, status model.Status) (model.Appointment, error) {
	client, err := s.clientRepo.Get(ctx, shared.FilterByID(req.ClientID, clientModel.FieldID, clientModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return model.Appointment{}, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == "" {
		return model.Appointment{}, failure.NotFound("client not found") // nolint:wrapcheck
	}

	if client.Status != clientModel.StatusActive {
		return model.Appointment{}, failure.Conflict("client is inactive") // nolint:wrapcheck
	}

	procedure, err := s.procRepo.Get(ctx, shared.FilterByID(req.ProcedureID, procedureModel.FieldID, procedureModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get procedure")

		return model.Appointment{}, fmt.Errorf("failed to get procedure: %w", err)
	}

	if procedure.ID == "" {
		return model.Appointment{}, failure.NotFound("procedure not found") // nolint:wrapcheck
	}

	if !procedure.Active {
		return model.Appointment{}, failure.Conflict("procedure is inactive") // nolint:wrapcheck
	}

	if req.Discount > procedure.Price {
		return model.Appointment{}, failure.Validation("discount cannot exceed the procedure price") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appointment, err := req.ToModel(user, procedure.Price, procedure.DurationMinutes, status)
	if err != nil {
		return model.Appointment{}, failure.Validation("start_time must use format " + constant.DateFormat) // nolint:wrapcheck
	}

	if err = s.validateWindow(appointment.StartTime, appointment.DurationMinutes); err != nil {
		return model.Appointment{}, err
	}

	return appointment, nil
}

func (s *serviceImpl) getAppointment(ctx context.Context, id string) (model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return model.Appointment{}, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == "" {
		return model.Appointment{}, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) validateWindow(start time.Time, durationMinutes int) error {
	if !start.After(timezone.Now()) {
		return failure.Validation("start_time must be in the future") // nolint:wrapcheck
	}

	if durationMinutes < s.cfg.Scheduling.MinDurationMinutes {
		return failure.Validation(fmt.Sprintf("duration must be at least %d minutes", s.cfg.Scheduling.MinDurationMinutes)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) bomItems(ctx context.Context, procedureID string) ([]procedureModel.ProcedureProduct, error) {
	items, err := s.bomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: procedureModel.BOMFieldProcedureID, Operator: gDto.FilterOperatorEq, Value: procedureID, Table: procedureModel.BOMTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get procedure products")

		return nil, fmt.Errorf("failed to get procedure products: %w", err)
	}

	return items, nil
}

func (s *serviceImpl) validateStock(ctx context.Context, procedureID string) error {
	items, err := s.bomItems(ctx, procedureID)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := s.inventory.ValidateAvailable(ctx, item.ProductID, item.Quantity); err != nil {
			return err
		}
	}

	return nil
}

// createReceivableTx records the charge for the appointment in the caller's
// transaction. Description carries the procedure reference; the due date is
// the day of the appointment.
func (s *serviceImpl) createReceivableTx(ctx context.Context, tx *sqlx.Tx, appointment model.Appointment) error {
	description := fmt.Sprintf("appointment %s on %s", appointment.ID, appointment.StartTime.Format(constant.DateOnlyFormat))

	err := s.receivable.CreateFromAppointmentTx(ctx, tx, appointment.ID, appointment.ClientID, description, appointment.Total, appointment.StartTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to create receivable for appointment")

		return fmt.Errorf("failed to create receivable for appointment: %w", err)
	}

	return nil
}

func (s *serviceImpl) notify(kind notification.Kind, appointment model.Appointment, message string) {
	s.dispatcher.Dispatch(notification.Event{
		Kind:          kind,
		AppointmentID: appointment.ID,
		ClientID:      appointment.ClientID,
		Esteticista:   appointment.Esteticista,
		StartTime:     appointment.StartTime,
		Message:       message,
	})
}
