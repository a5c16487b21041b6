package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"estetica/config"
	"estetica/infras/otel/mocks"
	inventoryMocks "estetica/internal/domains/inventory/mocks"
	"estetica/internal/domains/inventory/model"
	"estetica/internal/domains/inventory/model/dto"
	"estetica/internal/domains/inventory/service"
	cacheMocks "estetica/shared/cache/mocks"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	"estetica/shared/lockmap"
)

type inventoryTestMocks struct {
	productRepo  *inventoryMocks.MockProduct
	movementRepo *inventoryMocks.MockStockMovement
	cache        *cacheMocks.MockRedisCache
}

func setupService(t *testing.T) (service.Inventory, inventoryTestMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := inventoryTestMocks{
		productRepo:  inventoryMocks.NewMockProduct(ctrl),
		movementRepo: inventoryMocks.NewMockStockMovement(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation is asynchronous and best-effort.
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.productRepo, m.movementRepo, lockmap.New(), cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func storedProduct(id string, stock float64) model.Product {
	return model.Product{
		ID:           id,
		Name:         "Serum Vitamina C",
		Unit:         "ml",
		CostPrice:    10,
		CurrentStock: stock,
		MinStock:     5,
		Active:       true,
	}
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestInventoryService_ValidateAvailable(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		setupMock func(m inventoryTestMocks)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name:     "enough stock",
			quantity: 3,
			setupMock: func(m inventoryTestMocks) {
				m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
			},
		},
		{
			name:     "insufficient stock",
			quantity: 20,
			setupMock: func(m inventoryTestMocks) {
				m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name:     "inactive product",
			quantity: 1,
			setupMock: func(m inventoryTestMocks) {
				product := storedProduct("product-1", 10)
				product.Active = false
				m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(product, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name:     "product not found",
			quantity: 1,
			setupMock: func(m inventoryTestMocks) {
				m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Product{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			err := svc.ValidateAvailable(testContext(), "product-1", tt.quantity)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestInventoryService_RegisterEntry(t *testing.T) {
	t.Run("entry raises the balance and records the ledger line", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
		m.productRepo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.productRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				assert.Equal(t, 15.0, fields[model.FieldCurrentStock])
				assert.Equal(t, 12.0, fields[model.FieldCostPrice])

				return nil
			})
		m.movementRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, movement model.StockMovement) error {
				assert.Equal(t, model.MovementEntry, movement.Type)
				assert.Equal(t, 10.0, movement.QuantityBefore)
				assert.Equal(t, 15.0, movement.QuantityAfter)

				return nil
			})

		res, err := svc.RegisterEntry(testContext(), "product-1", dto.RegisterEntryRequest{Quantity: 5, UnitCost: 12, Reason: "purchase"})

		assert.NoError(t, err)
		assert.Equal(t, 15.0, res.QuantityAfter)
	})

	t.Run("zero unit cost keeps the current cost price", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
		m.productRepo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.productRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
				_, hasCost := fields[model.FieldCostPrice]
				assert.False(t, hasCost)

				return nil
			})
		m.movementRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.RegisterEntry(testContext(), "product-1", dto.RegisterEntryRequest{Quantity: 5, Reason: "purchase"})

		assert.NoError(t, err)
	})
}

func TestInventoryService_RegisterExit(t *testing.T) {
	t.Run("exit deducts the balance", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
		m.productRepo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		m.productRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.movementRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, movement model.StockMovement) error {
				assert.Equal(t, model.MovementExit, movement.Type)
				assert.Equal(t, 7.0, movement.QuantityAfter)

				return nil
			})

		res, err := svc.RegisterExit(testContext(), "product-1", dto.RegisterExitRequest{Quantity: 3, Reason: "breakage"})

		assert.NoError(t, err)
		assert.Equal(t, 7.0, res.QuantityAfter)
	})

	t.Run("exit larger than the balance is rejected", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 2), nil)

		_, err := svc.RegisterExit(testContext(), "product-1", dto.RegisterExitRequest{Quantity: 3, Reason: "breakage"})

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})
}

func TestInventoryService_RegisterAdjustment(t *testing.T) {
	svc, m := setupService(t)

	m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
	m.productRepo.EXPECT().InTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	m.productRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.movementRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, movement model.StockMovement) error {
			assert.Equal(t, model.MovementAdjustment, movement.Type)
			assert.Equal(t, -4.0, movement.Quantity)
			assert.Equal(t, 6.0, movement.QuantityAfter)

			return nil
		})

	res, err := svc.RegisterAdjustment(testContext(), "product-1", dto.RegisterAdjustmentRequest{NewQuantity: 6, Reason: "physical count"})

	assert.NoError(t, err)
	assert.Equal(t, 6.0, res.QuantityAfter)
}

func TestInventoryService_RegisterExitTx(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		setupMock func(m inventoryTestMocks)
		wantErr   bool
		wantKind  failure.Kind
	}{
		{
			name:     "deduction under row lock",
			quantity: 2,
			setupMock: func(m inventoryTestMocks) {
				m.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
				m.productRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
						assert.Equal(t, 8.0, fields[model.FieldCurrentStock])

						return nil
					})
				m.movementRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, movement model.StockMovement) error {
						assert.NotNil(t, movement.AppointmentID)
						assert.Equal(t, "appt-1", *movement.AppointmentID)

						return nil
					})
			},
		},
		{
			name:     "insufficient stock under row lock",
			quantity: 20,
			setupMock: func(m inventoryTestMocks) {
				m.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name:     "product not found",
			quantity: 1,
			setupMock: func(m inventoryTestMocks) {
				m.productRepo.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Product{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := setupService(t)
			tt.setupMock(m)

			err := svc.RegisterExitTx(testContext(), nil, "product-1", tt.quantity, "appointment appt-1", "appt-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestInventoryService_DeleteProduct(t *testing.T) {
	t.Run("product with movements cannot be deleted", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.movementRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.DeleteProduct(testContext(), "product-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.GetKind(err))
	})

	t.Run("unused product is deleted", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.movementRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		m.productRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.DeleteProduct(testContext(), "product-1"))
	})

	t.Run("missing product", func(t *testing.T) {
		svc, m := setupService(t)

		m.productRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.DeleteProduct(testContext(), "product-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}

func TestInventoryService_ListLowStock(t *testing.T) {
	svc, m := setupService(t)

	low := storedProduct("product-1", 2)

	m.productRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	m.productRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Product, error) {
			assert.Len(t, filter.Filters, 2)

			return []model.Product{low}, nil
		})

	res, err := svc.ListLowStock(testContext())

	assert.NoError(t, err)
	assert.Len(t, res.Products, 1)
	assert.True(t, res.Products[0].LowStock)
}

func TestInventoryService_GetProduct(t *testing.T) {
	t.Run("cache miss falls back to the repository", func(t *testing.T) {
		svc, m := setupService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedProduct("product-1", 10), nil)

		res, err := svc.GetProduct(testContext(), "product-1")

		assert.NoError(t, err)
		assert.Equal(t, "product-1", res.ID)
	})

	t.Run("missing product", func(t *testing.T) {
		svc, m := setupService(t)

		m.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		m.productRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Product{}, nil)

		_, err := svc.GetProduct(testContext(), "product-1")

		assert.Error(t, err)
		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}
