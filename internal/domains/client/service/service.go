package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"estetica/config"
	"estetica/infras/otel"
	apptModel "estetica/internal/domains/appointment/model"
	apptRepository "estetica/internal/domains/appointment/repository"
	"estetica/internal/domains/client/model"
	"estetica/internal/domains/client/model/dto"
	"estetica/internal/domains/client/repository"
	"estetica/shared"
	"estetica/shared/cache"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	"estetica/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetClient    = "client:get"
	cacheGetAllClient = "client:get_all"
	cacheCountClient  = "client:count"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (dto.ClientResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClientsResponse, error)
	Get(ctx context.Context, id string) (dto.ClientResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id string) error
	Delete(ctx context.Context, id string) error
	RecordVisit(ctx context.Context, id string, visitedAt time.Time) error
}

type serviceImpl struct {
	repo     repository.Client
	apptRepo apptRepository.Appointment
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Client, apptRepo apptRepository.Appointment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Client {
	return &serviceImpl{
		repo:     repo,
		apptRepo: apptRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	client, err := req.ToModel(user)
	if err != nil {
		return res, failure.Validation("birth_date must use format " + constant.DateOnlyFormat) // nolint:wrapcheck
	}

	if client.CPF != "" {
		exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldCPF, Operator: gDto.FilterOperatorEq, Value: client.CPF, Table: model.TableName},
			},
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to check client cpf")

			return res, fmt.Errorf("failed to check client cpf: %w", err)
		}

		if exist {
			return res, failure.Conflict("a client with this cpf already exists") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, client); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		return res, fmt.Errorf("failed to create client: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()

	res.FromModel(client)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClient, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for clients")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	clients, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.FromModels(clients, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save clients to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetClient, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for client")

		return res, nil
	}

	client, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == "" {
		return res, failure.NotFound("client not found") // nolint:wrapcheck
	}

	res.FromModel(client)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateClientRequest{}) {
		return failure.Validation("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update client")

		return fmt.Errorf("failed to update client: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a client. It is rejected while the client still owns
// appointments that are not cancelled, so history stays consistent.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	hasAppointments, err := s.apptRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: apptModel.FieldClientID, Operator: gDto.FilterOperatorEq, Value: id, Table: apptModel.TableName},
			gDto.Filter{Field: apptModel.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: string(apptModel.StatusCancelled), Table: apptModel.TableName},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check client appointments")

		return fmt.Errorf("failed to check client appointments: %w", err)
	}

	if hasAppointments {
		return failure.Conflict("client still has appointments and cannot be deleted") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete client")

		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// RecordVisit stamps the client's last visit date. Appointment completion does
// this inside its own transaction; this path covers manual corrections.
func (s *serviceImpl) RecordVisit(ctx context.Context, id string, visitedAt time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".client.RecordVisit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldLastVisit:     visitedAt,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to record client visit")

		return fmt.Errorf("failed to record client visit: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetClient, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete client cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()
}
