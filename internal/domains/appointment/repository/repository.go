package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"estetica/infras/otel"
	"estetica/infras/postgres"
	"estetica/internal/domains/appointment/model"
	gDto "estetica/shared/dto"
	gRepo "estetica/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Appointment interface {
	InTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, model model.Appointment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Appointment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Appointment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Appointment, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	ExistsConflict(ctx context.Context, esteticista string, start, end time.Time, excludeID string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Appointment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ConflictFilter matches the esteticista's non-cancelled appointments that
// overlap [start, end). Intervals are half-open, so an appointment ending
// exactly when another starts does not conflict; both interval comparisons
// are strict.
func ConflictFilter(esteticista string, start, end time.Time, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldEsteticista, Operator: gDto.FilterOperatorEq, Value: esteticista, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: string(model.StatusCancelled), Table: model.TableName},
		gDto.Filter{Field: model.FieldStartTime, Operator: gDto.FilterOperatorLess, Value: end, ArgName: "conflict_end", Table: model.TableName},
		gDto.Filter{Field: model.FieldEndTime, Operator: gDto.FilterOperatorGreater, Value: start, ArgName: "conflict_start", Table: model.TableName},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorNotEq, Value: excludeID, ArgName: "exclude_id", Table: model.TableName})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

// ExistsConflict reports whether the esteticista already has a non-cancelled
// appointment overlapping [start, end).
func (repo *repositoryImpl) ExistsConflict(ctx context.Context, esteticista string, start, end time.Time, excludeID string) (bool, error) {
	return repo.Exist(ctx, ConflictFilter(esteticista, start, end, excludeID)) // nolint:wrapcheck
}
