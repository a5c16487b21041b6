package inventory

import (
	"net/http"

	"estetica/infras/otel"
	"estetica/internal/domains/inventory/model"
	"estetica/internal/domains/inventory/model/dto"
	"estetica/internal/domains/inventory/service"
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
	service    service.Inventory
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Inventory, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/products", func(routerGroup chi.Router) {
		routerGroup.Use(handler.middleware.Auth)

		routerGroup.Post("/", handler.CreateProduct)
		routerGroup.Get("/", handler.GetProducts)
		routerGroup.Get("/low-stock", handler.GetLowStockProducts)
		routerGroup.Get("/movements", handler.GetMovements)
		routerGroup.Get("/{id}", handler.GetProductByID)
		routerGroup.Patch("/{id}", handler.UpdateProduct)
		routerGroup.Post("/{id}/entries", handler.RegisterEntry)
		routerGroup.Post("/{id}/exits", handler.RegisterExit)
		routerGroup.Post("/{id}/adjustments", handler.RegisterAdjustment)

		routerGroup.With(handler.middleware.RequireRole(constant.RoleAdmin)).
			Delete("/{id}", handler.DeleteProduct)
	})
}

// CreateProduct registers a new product.
// @Summary Create a new product
// @Description Register a product in the inventory catalog.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} dto.ProductResponse "Product created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products [post]
// @Security BearerAuth
func (handler *Handler) CreateProduct(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProduct")
	defer scope.End()

	req := dto.CreateProductRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateProduct(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create product")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetProducts retrieves products with optional filters.
// @Summary Get all products
// @Description Retrieve products with optional filtering and pagination.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetProductsResponse "List of products"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products [get]
// @Security BearerAuth
func (handler *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
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
			Table:    model.ProductTableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.ProductTableName,
		})
	}

	products, err := handler.service.GetAllProducts(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get products")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Products retrieved successfully")

	response.WithJSON(w, http.StatusOK, products)
}

// GetLowStockProducts lists active products at or below their minimum stock.
// @Summary Get low-stock products
// @Description List active products whose current stock is at or below the configured minimum.
// @Tags Inventory
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetProductsResponse "Low-stock products"
// @Failure 500 {object} response.Error
// @Router /v1/products/low-stock [get]
// @Security BearerAuth
func (handler *Handler) GetLowStockProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLowStockProducts")
	defer scope.End()

	products, err := handler.service.ListLowStock(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list low-stock products")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, products)
}

// GetMovements retrieves stock movements with optional filters.
// @Summary Get stock movements
// @Description Retrieve the stock movement ledger with optional filtering and pagination.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param product_id query string false "Filter by product"
// @Param movement_type query string false "Filter by movement type"
// @Success 200 {object} dto.GetMovementsResponse "List of movements"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/movements [get]
// @Security BearerAuth
func (handler *Handler) GetMovements(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMovements")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if productID := r.URL.Query().Get(model.MovementFieldProductID); productID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.MovementFieldProductID,
			Operator: gDto.FilterOperatorEq,
			Value:    productID,
			Table:    model.MovementTableName,
		})
	}

	if movementType := r.URL.Query().Get(model.MovementFieldType); movementType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.MovementFieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    movementType,
			Table:    model.MovementTableName,
		})
	}

	movements, err := handler.service.GetMovements(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock movements")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, movements)
}

// GetProductByID retrieves a product by its ID.
// @Summary Get a product by ID
// @Description Retrieve a product by its unique identifier.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse "Product details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProductByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	product, err := handler.service.GetProduct(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get product by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, product)
}

// UpdateProduct updates an existing product.
// @Summary Update a product by ID
// @Description Update the details of an existing product. Stock is changed through movements only.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} response.Message "Product updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProduct")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateProductRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateProduct(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update product")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Product updated successfully")
}

// RegisterEntry records a stock entry for a product.
// @Summary Register a stock entry
// @Description Add stock to a product and append an entry movement to the ledger.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.RegisterEntryRequest true "Register Entry Request"
// @Success 201 {object} dto.MovementResponse "Entry registered"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id}/entries [post]
// @Security BearerAuth
func (handler *Handler) RegisterEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterEntry")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RegisterEntryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RegisterEntry(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register stock entry")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// RegisterExit records a stock exit for a product.
// @Summary Register a stock exit
// @Description Deduct stock from a product; rejected when stock is insufficient.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.RegisterExitRequest true "Register Exit Request"
// @Success 201 {object} dto.MovementResponse "Exit registered"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id}/exits [post]
// @Security BearerAuth
func (handler *Handler) RegisterExit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterExit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RegisterExitRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RegisterExit(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register stock exit")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// RegisterAdjustment corrects a product's stock to a counted value.
// @Summary Register a stock adjustment
// @Description Set the product stock to the counted quantity and record the delta in the ledger.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.RegisterAdjustmentRequest true "Register Adjustment Request"
// @Success 201 {object} dto.MovementResponse "Adjustment registered"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id}/adjustments [post]
// @Security BearerAuth
func (handler *Handler) RegisterAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterAdjustment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RegisterAdjustmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RegisterAdjustment(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register stock adjustment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// DeleteProduct deletes a product with no movement history.
// @Summary Delete a product by ID
// @Description Delete a product; rejected once movements reference it.
// @Tags Inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Message "Product deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/products/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProduct")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteProduct(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete product")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Product deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Product deleted successfully")
}
