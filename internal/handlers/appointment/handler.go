package appointment

import (
	"net/http"

	"estetica/infras/otel"
	"estetica/internal/domains/appointment/model"
	"estetica/internal/domains/appointment/model/dto"
	"estetica/internal/domains/appointment/service"
	"estetica/shared/constant"
	gDto "estetica/shared/dto"
	"estetica/shared/failure"
	"estetica/shared/timezone"
	"estetica/shared/validator"
	"estetica/transport/http/middleware"
	"estetica/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Appointment
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Appointment, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Post("/requests", handler.RequestAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/availability", handler.CheckAvailability)
		routerGroup.Get("/reminders", handler.GetAppointmentsNeedingReminder)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}", handler.UpdateAppointment)
		routerGroup.Post("/{id}/approve", handler.ApproveAppointment)
		routerGroup.Post("/{id}/reject-with-counter", handler.RejectWithCounter)
		routerGroup.Post("/{id}/accept-counter", handler.AcceptCounter)
		routerGroup.Post("/{id}/confirm", handler.ConfirmAppointment)
		routerGroup.Post("/{id}/cancel", handler.CancelAppointment)
		routerGroup.Post("/{id}/reschedule", handler.RescheduleAppointment)
		routerGroup.Post("/{id}/complete", handler.CompleteAppointment)
		routerGroup.Post("/{id}/reminder-sent", handler.MarkReminderSent)
		routerGroup.Post("/{id}/pay", handler.PayAppointment)

		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin, constant.RoleReceptionist)).
			Delete("/{id}", handler.DeleteAppointment)
	})
}

// CreateAppointment books a slot directly in SCHEDULED state.
// @Summary Create an appointment
// @Description Book an appointment directly; the slot must be free.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} dto.AppointmentResponse "Appointment created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) CreateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateDirect(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// RequestAppointment registers a client request in PENDING state.
// @Summary Request an appointment
// @Description Register a client appointment request pending staff approval. Slot conflicts do not block the request.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Request Appointment Request"
// @Success 201 {object} dto.AppointmentResponse "Appointment request registered"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/requests [post]
// @Security BearerAuth
func (handler *Handler) RequestAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Request(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register appointment request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetAppointments retrieves appointments with optional filters.
// @Summary Get all appointments
// @Description Retrieve appointments with optional filtering and pagination.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param esteticista query string false "Filter by esteticista"
// @Param status query string false "Filter by status"
// @Param client_id query string false "Filter by client"
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {object} dto.GetAppointmentsResponse "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if esteticista := r.URL.Query().Get(model.FieldEsteticista); esteticista != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEsteticista,
			Operator: gDto.FilterOperatorLike,
			Value:    esteticista,
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

	if clientID := r.URL.Query().Get(model.FieldClientID); clientID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldClientID,
			Operator: gDto.FilterOperatorEq,
			Value:    clientID,
			Table:    model.TableName,
		})
	}

	if date := r.URL.Query().Get("date"); date != "" {
		dayStart, err := timezone.Parse(constant.DateOnlyFormat, date)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse date filter")

			response.WithError(w, failure.Validation("Invalid date filter, expected YYYY-MM-DD"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "day_start",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    dayStart,
			Table:    model.TableName,
		}, gDto.Filter{
			ArgName:  "day_end",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorLess,
			Value:    dayStart.AddDate(0, 0, 1),
			Table:    model.TableName,
		})
	}

	if from := r.URL.Query().Get("from"); from != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "window_from",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    from,
			Table:    model.TableName,
		})
	}

	if to := r.URL.Query().Get("to"); to != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  "window_to",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorLessEq,
			Value:    to,
			Table:    model.TableName,
		})
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointments)
}

// CheckAvailability reports whether a slot is free for an esteticista.
// @Summary Check slot availability
// @Description Check whether the given window is free for the esteticista.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param esteticista query string true "Esteticista name"
// @Param start_time query string true "Window start (RFC3339)"
// @Param end_time query string true "Window end (RFC3339)"
// @Success 200 {object} dto.AvailabilityResponse "Availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{
		Esteticista: r.URL.Query().Get(model.FieldEsteticista),
		StartTime:   r.URL.Query().Get(model.FieldStartTime),
		EndTime:     r.URL.Query().Get(model.FieldEndTime),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAppointmentsNeedingReminder lists scheduled appointments still missing a reminder.
// @Summary Get appointments needing a reminder
// @Description List confirmed or scheduled appointments within the reminder window whose reminder was not sent yet.
// @Tags Appointment
// @Accept json
// @Produce json
// @Success 200 {array} dto.AppointmentResponse "Appointments needing a reminder"
// @Failure 500 {object} response.Error
// @Router /v1/appointments/reminders [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentsNeedingReminder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentsNeedingReminder")
	defer scope.End()

	appointments, err := handler.service.ListNeedingReminder(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list appointments needing reminder")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Description Retrieve an appointment by its unique identifier.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse "Appointment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, appointment)
}

// UpdateAppointment edits a pending or scheduled appointment.
// @Summary Update an appointment
// @Description Update esteticista, start time, discount or notes. Slot moves are re-checked for conflicts.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Message "Appointment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAppointmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment updated successfully")
}

// ApproveAppointment approves a pending request.
// @Summary Approve an appointment request
// @Description Approve a pending request; the slot is re-checked and a receivable is created atomically.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse "Appointment approved"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Approve(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment approved by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// RejectWithCounter rejects a pending request and proposes another slot.
// @Summary Reject a request with a counter-proposal
// @Description Rewrite the pending request to the counter-proposed slot; the appointment stays pending.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CounterProposalRequest true "Counter Proposal Request"
// @Success 200 {object} dto.AppointmentResponse "Counter-proposal registered"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/reject-with-counter [post]
// @Security BearerAuth
func (handler *Handler) RejectWithCounter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectWithCounter")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CounterProposalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RejectWithCounter(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register counter-proposal")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AcceptCounter accepts a counter-proposal, scheduling the appointment.
// @Summary Accept a counter-proposal
// @Description Accept the counter-proposed slot; behaves like an approval of the rewritten request.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse "Appointment scheduled"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/accept-counter [post]
// @Security BearerAuth
func (handler *Handler) AcceptCounter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptCounter")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.AcceptCounter(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept counter-proposal")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmAppointment marks a scheduled appointment as confirmed by the client.
// @Summary Confirm an appointment
// @Description Mark a scheduled appointment as confirmed.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment confirmed"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Confirm(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to confirm appointment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Appointment confirmed successfully")
}

// CancelAppointment cancels an appointment with a reason.
// @Summary Cancel an appointment
// @Description Cancel the appointment; pending receivables are dropped.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CancelAppointmentRequest true "Cancel Appointment Request"
// @Success 200 {object} response.Message "Appointment cancelled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelAppointmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment cancelled by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

// RescheduleAppointment moves an appointment to a new slot.
// @Summary Reschedule an appointment
// @Description Move the appointment to a new start time; confirmation and reminder flags are reset.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.RescheduleAppointmentRequest true "Reschedule Appointment Request"
// @Success 200 {object} response.Message "Appointment rescheduled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) RescheduleAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RescheduleAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RescheduleAppointmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Reschedule(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule appointment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Appointment rescheduled successfully")
}

// CompleteAppointment completes an appointment with its side effects.
// @Summary Complete an appointment
// @Description Complete the appointment: deduct the procedure's product usage from stock, create the receivable and record the client visit, all atomically.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment completed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment completed by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment completed successfully")
}

// MarkReminderSent flags the appointment reminder as sent.
// @Summary Mark the appointment reminder as sent
// @Description Record that the reminder for this appointment was dispatched.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Reminder flagged"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/reminder-sent [post]
// @Security BearerAuth
func (handler *Handler) MarkReminderSent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkReminderSent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.MarkReminderSent(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark reminder as sent")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reminder marked as sent")
}

// PayAppointment records the appointment payment.
// @Summary Pay an appointment
// @Description Record payment for the appointment and settle its receivable.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.PayAppointmentRequest true "Pay Appointment Request"
// @Success 200 {object} response.Message "Appointment paid"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/pay [post]
// @Security BearerAuth
func (handler *Handler) PayAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PayAppointmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Pay(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to pay appointment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Appointment paid successfully")
}

// DeleteAppointment removes an appointment record.
// @Summary Delete an appointment
// @Description Delete an appointment record. Completed appointments cannot be deleted.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment deleted"
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete appointment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Appointment deleted successfully")
}
