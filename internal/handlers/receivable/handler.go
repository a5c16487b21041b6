package receivable

import (
	"net/http"

	"estetica/infras/otel"
	"estetica/internal/domains/receivable/model"
	"estetica/internal/domains/receivable/model/dto"
	"estetica/internal/domains/receivable/service"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/validator"
	"estetica/transport/http/middleware"
	"estetica/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Receivable
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Receivable, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/receivables", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Get("/", handler.GetReceivables)
		routerGroup.Get("/{id}", handler.GetReceivableByID)
		routerGroup.Post("/{id}/pay", handler.PayReceivable)

		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin, constant.RoleReceptionist)).
			Post("/overdue", handler.MarkOverdue)
	})
}

// GetReceivables retrieves receivables with optional filters.
// @Summary Get all receivables
// @Description Retrieve receivables with optional filtering and pagination.
// @Tags Receivable
// @Accept json
// @Produce json
// @Param client_id query string false "Filter by client"
// @Param appointment_id query string false "Filter by appointment"
// @Param status query string false "Filter by status"
// @Success 200 {object} dto.GetReceivablesResponse "List of receivables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receivables [get]
// @Security BearerAuth
func (handler *Handler) GetReceivables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceivables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if clientID := r.URL.Query().Get(model.FieldClientID); clientID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClientID,
			Operator: gDto.FilterOperatorEq,
			Value:    clientID,
			Table:    model.TableName,
		})
	}

	if appointmentID := r.URL.Query().Get(model.FieldAppointmentID); appointmentID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAppointmentID,
			Operator: gDto.FilterOperatorEq,
			Value:    appointmentID,
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

	receivables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get receivables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Receivables retrieved successfully")

	response.WithJSON(w, http.StatusOK, receivables)
}

// GetReceivableByID retrieves a receivable by its ID.
// @Summary Get a receivable by ID
// @Description Retrieve a receivable by its unique identifier.
// @Tags Receivable
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} dto.ReceivableResponse "Receivable details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receivables/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReceivableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReceivableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	receivable, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get receivable by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, receivable)
}

// PayReceivable settles a pending or overdue receivable.
// @Summary Pay a receivable
// @Description Mark the receivable as paid with the given payment method.
// @Tags Receivable
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param request body dto.MarkPaidRequest true "Mark Paid Request"
// @Success 200 {object} response.Message "Receivable paid"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/receivables/{id}/pay [post]
// @Security BearerAuth
func (handler *Handler) PayReceivable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayReceivable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MarkPaidRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkPaid(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to pay receivable")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Receivable paid by user " + user)

	response.WithMessage(w, http.StatusOK, "Receivable paid successfully")
}

// MarkOverdue flips past-due pending receivables to overdue.
// @Summary Mark overdue receivables
// @Description Flip all past-due pending receivables to overdue and report how many changed.
// @Tags Receivable
// @Accept json
// @Produce json
// @Success 200 {object} dto.MarkOverdueResponse "Number of receivables flipped"
// @Failure 500 {object} response.Error
// @Router /v1/receivables/overdue [post]
// @Security BearerAuth
func (handler *Handler) MarkOverdue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkOverdue")
	defer scope.End()

	count, err := handler.service.MarkOverdue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark overdue receivables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.MarkOverdueResponse{Updated: count})
}
