package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estetica/infras/otel"
	"estetica/infras/postgres"
	"estetica/internal/domains/receivable/model"
	gDto "estetica/shared/dto"
	gRepo "estetica/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Receivable interface {
	Insert(ctx context.Context, model model.Receivable) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Receivable) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Receivable, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Receivable, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Receivable]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Receivable {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Receivable](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
