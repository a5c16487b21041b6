package procedure

import (
	"net/http"

	"estetica/infras/otel"
	"estetica/internal/domains/procedure/model"
	"estetica/internal/domains/procedure/model/dto"
	"estetica/internal/domains/procedure/service"
	"estetica/shared"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/validator"
	"estetica/transport/http/middleware"
	"estetica/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Procedure
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Procedure, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/procedures", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Post("/", handler.CreateProcedure)
		routerGroup.Get("/", handler.GetProcedures)
		routerGroup.Get("/{id}", handler.GetProcedureByID)
		routerGroup.Patch("/{id}", handler.UpdateProcedure)
		routerGroup.Put("/{id}/products", handler.SetProcedureProducts)

		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin)).
			Delete("/{id}", handler.DeleteProcedure)
	})
}

// CreateProcedure registers a procedure with its product usage.
// @Summary Create a new procedure
// @Description Create a procedure together with its per-use product quantities.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param request body dto.CreateProcedureRequest true "Create Procedure Request"
// @Success 201 {object} dto.ProcedureResponse "Procedure created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procedures [post]
// @Security BearerAuth
func (handler *Handler) CreateProcedure(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProcedure")
	defer scope.End()

	req := dto.CreateProcedureRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create procedure")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Procedure created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetProcedures retrieves procedures with optional filters.
// @Summary Get all procedures
// @Description Retrieve procedures with optional filtering and pagination.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetProceduresResponse "List of procedures"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procedures [get]
// @Security BearerAuth
func (handler *Handler) GetProcedures(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProcedures")
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

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	procedures, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get procedures")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Procedures retrieved successfully")

	response.WithJSON(w, http.StatusOK, procedures)
}

// GetProcedureByID retrieves a procedure by its ID.
// @Summary Get a procedure by ID
// @Description Retrieve a procedure with its product usage list.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param id path string true "Procedure ID"
// @Success 200 {object} dto.ProcedureResponse "Procedure details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procedures/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProcedureByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProcedureByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	procedure, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get procedure by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, procedure)
}

// UpdateProcedure updates an existing procedure.
// @Summary Update a procedure by ID
// @Description Update the details of an existing procedure, including deactivation.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param id path string true "Procedure ID"
// @Param request body dto.UpdateProcedureRequest true "Update Procedure Request"
// @Success 200 {object} response.Message "Procedure updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procedures/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProcedure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProcedure")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProcedureRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update procedure")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Procedure updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Procedure updated successfully")
}

// SetProcedureProducts replaces the procedure's product usage list.
// @Summary Replace the procedure's product usage
// @Description Atomically replace the per-use product quantities of the procedure.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param id path string true "Procedure ID"
// @Param request body dto.SetProductsRequest true "Set Products Request"
// @Success 200 {object} response.Message "Product usage replaced"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procedures/{id}/products [put]
// @Security BearerAuth
func (handler *Handler) SetProcedureProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetProcedureProducts")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetProductsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetProducts(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set procedure products")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Procedure products updated successfully")
}

// DeleteProcedure deletes an unreferenced procedure.
// @Summary Delete a procedure by ID
// @Description Delete a procedure; rejected while appointments reference it.
// @Tags Procedure
// @Accept json
// @Produce json
// @Param id path string true "Procedure ID"
// @Success 200 {object} response.Message "Procedure deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/procedures/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProcedure(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProcedure")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete procedure")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Procedure deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Procedure deleted successfully")
}
