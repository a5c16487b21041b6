package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"estetica/config"
	"estetica/infras/otel"
	"estetica/internal/domains/receivable/model"
	"estetica/internal/domains/receivable/model/dto"
	"estetica/internal/domains/receivable/repository"
	"estetica/shared"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Receivable interface {
	CreateFromAppointmentTx(ctx context.Context, sqltx *sqlx.Tx, appointmentID, clientID, description string, amount float64, dueDate time.Time) error
	Get(ctx context.Context, id string) (dto.ReceivableResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReceivablesResponse, error)
	MarkPaid(ctx context.Context, id string, req dto.MarkPaidRequest) error
	MarkOverdue(ctx context.Context) (int, error)
	DeletePendingForAppointment(ctx context.Context, appointmentID string) error
}

type serviceImpl struct {
	repo repository.Receivable
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Receivable, cfg *config.Config, otel otel.Otel) Receivable {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// CreateFromAppointmentTx records the charge for an appointment inside the
// caller's transaction. At most one receivable exists per appointment; a
// second call for the same appointment is a no-op.
func (s *serviceImpl) CreateFromAppointmentTx(ctx context.Context, sqltx *sqlx.Tx, appointmentID, clientID, description string, amount float64, dueDate time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receivable.CreateFromAppointmentTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.ExistTx(ctx, sqltx, s.appointmentFilter(appointmentID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing receivable")

		return fmt.Errorf("failed to check existing receivable: %w", err)
	}

	if exist {
		log.Warn().Str("appointmentID", appointmentID).Msg("receivable already exists for appointment")

		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	receivable := model.Receivable{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		ClientID:      clientID,
		Description:   description,
		Amount:        amount,
		DueDate:       dueDate,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.InsertTx(ctx, sqltx, receivable); err != nil {
		log.Error().Err(err).Msg("failed to create receivable")

		return fmt.Errorf("failed to create receivable: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReceivableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receivable.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	receivable, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get receivable")

		return res, fmt.Errorf("failed to get receivable: %w", err)
	}

	if receivable.ID == "" {
		return res, failure.NotFound("receivable not found") // nolint:wrapcheck
	}

	res.FromModel(receivable)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReceivablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receivable.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count receivables")

		return res, fmt.Errorf("failed to count receivables: %w", err)
	}

	receivables, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get receivables")

		return res, fmt.Errorf("failed to get receivables: %w", err)
	}

	res.FromModels(receivables, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) MarkPaid(ctx context.Context, id string, req dto.MarkPaidRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receivable.MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(err)

	receivable, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get receivable")

		return fmt.Errorf("failed to get receivable: %w", err)
	}

	if receivable.ID == "" {
		return failure.NotFound("receivable not found") // nolint:wrapcheck
	}

	if receivable.Status == model.StatusPaid {
		return failure.IllegalState("receivable is already paid") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusPaid),
		model.FieldPaymentDate:   timezone.Now(),
		model.FieldPaymentMethod: req.PaymentMethod,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to mark receivable as paid")

		return fmt.Errorf("failed to mark receivable as paid: %w", err)
	}

	return nil
}

// MarkOverdue flips every pending receivable whose due date has passed to
// OVERDUE and returns how many rows changed. Meant to run from a daily job.
func (s *serviceImpl) MarkOverdue(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receivable.MarkOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: string(model.StatusPending), Table: model.TableName},
			gDto.Filter{Field: model.FieldDueDate, Operator: gDto.FilterOperatorLess, Value: timezone.Now(), Table: model.TableName},
		},
	}

	count, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overdue receivables")

		return 0, fmt.Errorf("failed to count overdue receivables: %w", err)
	}

	if count == 0 {
		return 0, nil
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        string(model.StatusOverdue),
		constant.FieldModifiedAt: timezone.Now(),
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark receivables as overdue")

		return 0, fmt.Errorf("failed to mark receivables as overdue: %w", err)
	}

	return count, nil
}

// DeletePendingForAppointment drops the unpaid charge of a cancelled
// appointment. Paid receivables are kept for bookkeeping.
func (s *serviceImpl) DeletePendingForAppointment(ctx context.Context, appointmentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".receivable.DeletePendingForAppointment")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAppointmentID, Operator: gDto.FilterOperatorEq, Value: appointmentID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: string(model.StatusPaid), ArgName: "status_paid", Table: model.TableName},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check receivable for appointment")

		return fmt.Errorf("failed to check receivable for appointment: %w", err)
	}

	if !exist {
		return nil
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete receivable for appointment")

		return fmt.Errorf("failed to delete receivable for appointment: %w", err)
	}

	return nil
}

func (s *serviceImpl) appointmentFilter(appointmentID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAppointmentID, Operator: gDto.FilterOperatorEq, Value: appointmentID, Table: model.TableName},
		},
	}
}
