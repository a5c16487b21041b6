package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"estetica/infras/otel"
	"estetica/infras/postgres"
	"estetica/internal/domains/inventory/model"
	gDto "estetica/shared/dto"
	gRepo "estetica/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Product interface {
	InTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
	Insert(ctx context.Context, model model.Product) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Product, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Product, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type StockMovement interface {
	Insert(ctx context.Context, model model.StockMovement) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.StockMovement) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StockMovement, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type productRepositoryImpl struct {
	gRepo.Repository[model.Product]
	db   *postgres.Connection
	otel otel.Otel
}

func NewProduct(db *postgres.Connection, otel otel.Otel) Product {
	return &productRepositoryImpl{
		Repository: gRepo.NewRepository[model.Product](model.ProductEntityName, model.ProductTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type movementRepositoryImpl struct {
	gRepo.Repository[model.StockMovement]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStockMovement(db *postgres.Connection, otel otel.Otel) StockMovement {
	return &movementRepositoryImpl{
		Repository: gRepo.NewRepository[model.StockMovement](model.MovementEntityName, model.MovementTableName, model.MovementFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
