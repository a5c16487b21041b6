package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estetica/infras/otel"
	"estetica/infras/postgres"
	"estetica/internal/domains/procedure/model"
	gDto "estetica/shared/dto"
	gRepo "estetica/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Procedure interface {
	InTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, model model.Procedure) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Procedure) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Procedure, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Procedure, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type ProcedureProduct interface {
	InsertBulk(ctx context.Context, models []model.ProcedureProduct) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.ProcedureProduct) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ProcedureProduct, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Procedure]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Procedure {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Procedure](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type bomRepositoryImpl struct {
	gRepo.Repository[model.ProcedureProduct]
	db   *postgres.Connection
	otel otel.Otel
}

func NewProcedureProduct(db *postgres.Connection, otel otel.Otel) ProcedureProduct {
	return &bomRepositoryImpl{
		Repository: gRepo.NewRepository[model.ProcedureProduct](model.BOMEntityName, model.BOMTableName, model.BOMFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
