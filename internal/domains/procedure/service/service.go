package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"estetica/config"
	"estetica/infras/otel"
	apptModel "estetica/internal/domains/appointment/model"
	apptRepository "estetica/internal/domains/appointment/repository"
	"estetica/internal/domains/procedure/model"
	"estetica/internal/domains/procedure/model/dto"
	"estetica/internal/domains/procedure/repository"
	"estetica/shared"
	"estetica/shared/cache"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProcedure    = "procedure:get"
	cacheGetAllProcedure = "procedure:get_all"
	cacheCountProcedure  = "procedure:count"
)

type Procedure interface {
	Create(ctx context.Context, req dto.CreateProcedureRequest) (dto.ProcedureResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProceduresResponse, error)
	Get(ctx context.Context, id string) (dto.ProcedureResponse, error)
	Update(ctx context.Context, req dto.UpdateProcedureRequest, id string) error
	SetProducts(ctx context.Context, req dto.SetProductsRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Procedure
	bomRepo  repository.ProcedureProduct
	apptRepo apptRepository.Appointment
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Procedure, bomRepo repository.ProcedureProduct, apptRepo apptRepository.Appointment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Procedure {
	return &serviceImpl{
		repo:     repo,
		bomRepo:  bomRepo,
		apptRepo: apptRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateProcedureRequest) (res dto.ProcedureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".procedure.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	procedure := req.ToModel(user)
	items := req.ToBOMModels(procedure.ID, user)

	err = s.repo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, procedure); err != nil {
			return fmt.Errorf("failed to create procedure: %w", err)
		}

		if len(items) > 0 {
			if err := s.bomRepo.InsertBulkTx(ctx, tx, items); err != nil {
				return fmt.Errorf("failed to create procedure products: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create procedure")

		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProcedure)
		shared.InvalidateCaches(c, s.cache, cacheCountProcedure)
	}()

	res.FromModel(procedure)
	res.WithProducts(items)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProceduresResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".procedure.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProcedure, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for procedures")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count procedures")

		return res, fmt.Errorf("failed to count procedures: %w", err)
	}

	procedures, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get procedures")

		return res, fmt.Errorf("failed to get procedures: %w", err)
	}

	res.FromModels(procedures, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save procedures to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProcedureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".procedure.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProcedure, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for procedure")

		return res, nil
	}

	procedure, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get procedure")

		return res, fmt.Errorf("failed to get procedure: %w", err)
	}

	if procedure.ID == "" {
		return res, failure.NotFound("procedure not found") // nolint:wrapcheck
	}

	items, err := s.bomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.BOMFieldProcedureID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.BOMTableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get procedure products")

		return res, fmt.Errorf("failed to get procedure products: %w", err)
	}

	res.FromModel(procedure)
	res.WithProducts(items)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save procedure to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProcedureRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".procedure.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateProcedureRequest{}) {
		return failure.Validation("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if procedure exists")

		return fmt.Errorf("failed to check if procedure exists: %w", err)
	}

	if !exist {
		return failure.NotFound("procedure not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update procedure")

		return fmt.Errorf("failed to update procedure: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// SetProducts replaces the procedure's bill of materials atomically.
func (s *serviceImpl) SetProducts(ctx context.Context, req dto.SetProductsRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".procedure.SetProducts")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if procedure exists")

		return fmt.Errorf("failed to check if procedure exists: %w", err)
	}

	if !exist {
		return failure.NotFound("procedure not found") // nolint:wrapcheck
	}

	createReq := dto.CreateProcedureRequest{Products: req.Products}
	items := createReq.ToBOMModels(id, user)

	bomFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.BOMFieldProcedureID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.BOMTableName},
		},
	}

	err = s.repo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.bomRepo.DeleteTx(ctx, tx, bomFilter); err != nil {
			return fmt.Errorf("failed to clear procedure products: %w", err)
		}

		if len(items) > 0 {
			if err := s.bomRepo.InsertBulkTx(ctx, tx, items); err != nil {
				return fmt.Errorf("failed to set procedure products: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to set procedure products")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a procedure that no appointment references. Procedures with
// history should be deactivated through Update instead.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".procedure.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if procedure exists")

		return fmt.Errorf("failed to check if procedure exists: %w", err)
	}

	if !exist {
		return failure.NotFound("procedure not found") // nolint:wrapcheck
	}

	referenced, err := s.apptRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: apptModel.FieldProcedureID, Operator: gDto.FilterOperatorEq, Value: id, Table: apptModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check procedure appointments")

		return fmt.Errorf("failed to check procedure appointments: %w", err)
	}

	if referenced {
		return failure.Conflict("procedure is referenced by appointments and cannot be deleted") // nolint:wrapcheck
	}

	bomFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.BOMFieldProcedureID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.BOMTableName},
		},
	}

	err = s.repo.InTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.bomRepo.DeleteTx(ctx, tx, bomFilter); err != nil {
			return fmt.Errorf("failed to delete procedure products: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete procedure: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete procedure")

		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProcedure, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete procedure cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProcedure)
		shared.InvalidateCaches(c, s.cache, cacheCountProcedure)
	}()
}
