package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"estetica/config"
	"estetica/infras/otel"
	"estetica/internal/domains/inventory/model"
	"estetica/internal/domains/inventory/model/dto"
	"estetica/internal/domains/inventory/repository"
	"estetica/shared"
	"estetica/shared/cache"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	"estetica/shared/lockmap"
	gModel "estetica/shared/model"
	"estetica/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProduct    = "product:get"
	cacheGetAllProduct = "product:get_all"
	cacheCountProduct  = "product:count"
)

type Inventory interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (dto.ProductResponse, error)
	GetAllProducts(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProductsResponse, error)
	UpdateProduct(ctx context.Context, req dto.UpdateProductRequest, id string) error
	DeleteProduct(ctx context.Context, id string) error
	ListLowStock(ctx context.Context) (dto.GetProductsResponse, error)

	ValidateAvailable(ctx context.Context, productID string, quantity float64) error
	RegisterEntry(ctx context.Context, productID string, req dto.RegisterEntryRequest) (dto.MovementResponse, error)
	RegisterExit(ctx context.Context, productID string, req dto.RegisterExitRequest) (dto.MovementResponse, error)
	RegisterExitTx(ctx context.Context, sqltx *sqlx.Tx, productID string, quantity float64, reason, appointmentID string) error
	InvalidateProductCache(ctx context.Context, productID string)
	RegisterAdjustment(ctx context.Context, productID string, req dto.RegisterAdjustmentRequest) (dto.MovementResponse, error)
	GetMovements(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMovementsResponse, error)
}

type serviceImpl struct {
	productRepo  repository.Product
	movementRepo repository.StockMovement
	locks        *lockmap.LockMap
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(productRepo repository.Product, movementRepo repository.StockMovement, locks *lockmap.LockMap, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		locks:        locks,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.CreateProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	product := req.ToModel(user)

	if err = s.productRepo.Insert(ctx, product); err != nil {
		log.Error().Err(err).Msg("failed to create product")

		return res, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidate(ctx, product.ID)
	res.FromModel(product)

	return res, nil
}

func (s *serviceImpl) GetProduct(ctx context.Context, id string) (res dto.ProductResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProduct, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for product")

		return res, nil
	}

	product, err := s.getProduct(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(product)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save product to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAllProducts(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetAllProducts")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProduct, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for products")

		return res, nil
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count products")

		return res, fmt.Errorf("failed to count products: %w", err)
	}

	products, err := s.productRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get products")

		return res, fmt.Errorf("failed to get products: %w", err)
	}

	res.FromModels(products, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save products to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateProduct(ctx context.Context, req dto.UpdateProductRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.UpdateProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateProductRequest{}) {
		return failure.Validation("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.ProductTableName)

	exist, err := s.productRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if product exists")

		return fmt.Errorf("failed to check if product exists: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.productRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update product")

		return fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// DeleteProduct removes a product with no movement history. Products that have
// moved should be deactivated instead so the ledger keeps its references.
func (s *serviceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.DeleteProduct")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.ProductTableName)

	exist, err := s.productRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if product exists")

		return fmt.Errorf("failed to check if product exists: %w", err)
	}

	if !exist {
		return failure.NotFound("product not found") // nolint:wrapcheck
	}

	hasMovements, err := s.movementRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.MovementFieldProductID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.MovementTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check product movements")

		return fmt.Errorf("failed to check product movements: %w", err)
	}

	if hasMovements {
		return failure.Conflict("product has stock movements and cannot be deleted") // nolint:wrapcheck
	}

	if err = s.productRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete product")

		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ListLowStock(ctx context.Context) (res dto.GetProductsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ListLowStock")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Operator: gDto.FilterPlainQuery, Value: "products.current_stock <= products.min_stock"},
			gDto.Filter{Field: model.FieldActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.ProductTableName},
		},
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count low stock products")

		return res, fmt.Errorf("failed to count low stock products: %w", err)
	}

	products, err := s.productRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get low stock products")

		return res, fmt.Errorf("failed to get low stock products: %w", err)
	}

	res.FromModels(products, total, 0)

	return res, nil
}

// ValidateAvailable reports whether the product is active and has at least the
// requested quantity on hand. It is advisory; the transactional exit re-checks
// under a row lock before deducting.
func (s *serviceImpl) ValidateAvailable(ctx context.Context, productID string, quantity float64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.ValidateAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return err
	}

	if !product.Active {
		return failure.Conflict(fmt.Sprintf("product %s is inactive", product.Name)) // nolint:wrapcheck
	}

	if product.CurrentStock < quantity {
		return failure.Conflict(fmt.Sprintf("insufficient stock for product %s: have %.2f, need %.2f", product.Name, product.CurrentStock, quantity)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) RegisterEntry(ctx context.Context, productID string, req dto.RegisterEntryRequest) (res dto.MovementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.RegisterEntry")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return res, err
	}

	movement := s.buildMovement(ctx, product, model.MovementEntry, req.Quantity, product.CurrentStock+req.Quantity, req.Reason, "")

	var extraFields map[string]any
	if req.UnitCost > 0 {
		extraFields = map[string]any{model.FieldCostPrice: req.UnitCost}
	}

	if err = s.applyMovement(ctx, product, movement, extraFields); err != nil {
		return res, err
	}

	res.FromModel(movement)

	return res, nil
}

func (s *serviceImpl) RegisterExit(ctx context.Context, productID string, req dto.RegisterExitRequest) (res dto.MovementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.RegisterExit")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return res, err
	}

	if product.CurrentStock < req.Quantity {
		return res, failure.Conflict(fmt.Sprintf("insufficient stock for product %s: have %.2f, need %.2f", product.Name, product.CurrentStock, req.Quantity)) // nolint:wrapcheck
	}

	movement := s.buildMovement(ctx, product, model.MovementExit, req.Quantity, product.CurrentStock-req.Quantity, req.Reason, "")

	if err = s.applyMovement(ctx, product, movement, nil); err != nil {
		return res, err
	}

	res.FromModel(movement)

	return res, nil
}

// RegisterExitTx deducts stock inside a caller-owned transaction. The product
// row is locked FOR UPDATE so the balance check and the write are one step;
// a rollback by the caller undoes the deduction and the ledger entry together.
// The caller invalidates the product cache once its transaction commits,
// otherwise a concurrent read could re-cache the pre-commit balance.
func (s *serviceImpl) RegisterExitTx(ctx context.Context, sqltx *sqlx.Tx, productID string, quantity float64, reason, appointmentID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.RegisterExitTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(productID, model.FieldID, model.ProductTableName)

	product, err := s.productRepo.GetTx(ctx, sqltx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to lock product")

		return fmt.Errorf("failed to lock product: %w", err)
	}

	if product.ID == "" {
		return failure.NotFound("product not found") // nolint:wrapcheck
	}

	if product.CurrentStock < quantity {
		return failure.Conflict(fmt.Sprintf("insufficient stock for product %s: have %.2f, need %.2f", product.Name, product.CurrentStock, quantity)) // nolint:wrapcheck
	}

	movement := s.buildMovement(ctx, product, model.MovementExit, quantity, product.CurrentStock-quantity, reason, appointmentID)

	err = s.productRepo.UpdateTx(ctx, sqltx, map[string]any{
		model.FieldCurrentStock:  movement.QuantityAfter,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: movement.ModifiedBy,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to deduct product stock")

		return fmt.Errorf("failed to deduct product stock: %w", err)
	}

	if err = s.movementRepo.InsertTx(ctx, sqltx, movement); err != nil {
		log.Error().Err(err).Msg("failed to record stock movement")

		return fmt.Errorf("failed to record stock movement: %w", err)
	}

	return nil
}

// InvalidateProductCache drops the cached product and listings. Callers of
// RegisterExitTx use it after their transaction commits.
func (s *serviceImpl) InvalidateProductCache(ctx context.Context, productID string) {
	s.invalidate(ctx, productID)
}

func (s *serviceImpl) RegisterAdjustment(ctx context.Context, productID string, req dto.RegisterAdjustmentRequest) (res dto.MovementResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.RegisterAdjustment")
	defer scope.End()
	defer scope.TraceIfError(err)

	s.locks.Lock(productID)
	defer s.locks.Unlock(productID)

	product, err := s.getProduct(ctx, productID)
	if err != nil {
		return res, err
	}

	movement := s.buildMovement(ctx, product, model.MovementAdjustment, req.NewQuantity-product.CurrentStock, req.NewQuantity, req.Reason, "")

	if err = s.applyMovement(ctx, product, movement, nil); err != nil {
		return res, err
	}

	res.FromModel(movement)

	return res, nil
}

func (s *serviceImpl) GetMovements(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMovementsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inventory.GetMovements")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.movementRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stock movements")

		return res, fmt.Errorf("failed to count stock movements: %w", err)
	}

	movements, err := s.movementRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock movements")

		return res, fmt.Errorf("failed to get stock movements: %w", err)
	}

	res.FromModels(movements, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) getProduct(ctx context.Context, id string) (model.Product, error) {
	product, err := s.productRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.ProductTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get product")

		return product, fmt.Errorf("failed to get product: %w", err)
	}

	if product.ID == "" {
		return product, failure.NotFound("product not found") // nolint:wrapcheck
	}

	return product, nil
}

func (s *serviceImpl) buildMovement(ctx context.Context, product model.Product, movementType model.MovementType, quantity, quantityAfter float64, reason, appointmentID string) model.StockMovement {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	movement := model.StockMovement{
		ID:             uuid.NewString(),
		ProductID:      product.ID,
		Type:           movementType,
		Quantity:       quantity,
		QuantityBefore: product.CurrentStock,
		QuantityAfter:  quantityAfter,
		Reason:         reason,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if appointmentID != "" {
		movement.AppointmentID = &appointmentID
	}

	return movement
}

// applyMovement writes the new balance and the ledger entry in one transaction.
func (s *serviceImpl) applyMovement(ctx context.Context, product model.Product, movement model.StockMovement, extraFields map[string]any) error {
	fields := map[string]any{
		model.FieldCurrentStock:  movement.QuantityAfter,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: movement.ModifiedBy,
	}
	for key, value := range extraFields {
		fields[key] = value
	}

	filter := shared.FilterByID(product.ID, model.FieldID, model.ProductTableName)

	err := s.productRepo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.productRepo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update product stock: %w", err)
		}

		if err := s.movementRepo.InsertTx(ctx, tx, movement); err != nil {
			return fmt.Errorf("failed to record stock movement: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to apply stock movement")

		return err
	}

	s.invalidate(ctx, product.ID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProduct, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete product cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProduct)
		shared.InvalidateCaches(c, s.cache, cacheCountProduct)
	}()
}
