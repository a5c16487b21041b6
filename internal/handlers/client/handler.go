package client

import (
	"net/http"

	"estetica/infras/otel"
	"estetica/internal/domains/client/model"
	"estetica/internal/domains/client/model/dto"
	"estetica/internal/domains/client/service"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/validator"
	"estetica/transport/http/middleware"
	"estetica/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Client
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Client, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clients", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Post("/", handler.CreateClient)
		routerGroup.Get("/", handler.GetClients)
		routerGroup.Get("/{id}", handler.GetClientByID)
		routerGroup.Patch("/{id}", handler.UpdateClient)

		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin, constant.RoleReceptionist)).
			Delete("/{id}", handler.DeleteClient)
	})
}

// CreateClient registers a new client.
// @Summary Create a new client
// @Description Register a new client; CPF must be unique when provided.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateClientRequest true "Create Client Request"
// @Success 201 {object} dto.ClientResponse "Client created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [post]
// @Security BearerAuth
func (handler *Handler) CreateClient(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateClient")
	defer scope.End()

	req := dto.CreateClientRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create client")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetClients retrieves clients with optional filters.
// @Summary Get all clients
// @Description Retrieve clients with optional filtering and pagination.
// @Tags Client
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param cpf query string false "Filter by CPF"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetClientsResponse "List of clients"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients [get]
// @Security BearerAuth
func (handler *Handler) GetClients(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClients")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if cpf := r.URL.Query().Get(model.FieldCPF); cpf != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCPF,
			Operator: gDto.FilterOperatorEq,
			Value:    cpf,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	clients, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get clients")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Clients retrieved successfully")

	response.WithJSON(w, http.StatusOK, clients)
}

// GetClientByID retrieves a client by its ID.
// @Summary Get a client by ID
// @Description Retrieve a client by its unique identifier.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} dto.ClientResponse "Client details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetClientByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	client, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, client)
}

// UpdateClient updates an existing client.
// @Summary Update a client by ID
// @Description Update the details of an existing client.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body dto.UpdateClientRequest true "Update Client Request"
// @Success 200 {object} response.Message "Client updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateClientRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client updated successfully")
}

// DeleteClient deletes a client without live appointments.
// @Summary Delete a client by ID
// @Description Delete a client; rejected while non-cancelled appointments exist.
// @Tags Client
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.Message "Client deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteClient")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete client")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Client deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Client deleted successfully")
}
