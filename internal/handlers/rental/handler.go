package rental

import (
	"net/http"

	"holdhive/infras/otel"
	"holdhive/internal/domains/rental/model"
	"holdhive/internal/domains/rental/model/dto"
	"holdhive/internal/domains/rental/service"
	storageModel "holdhive/internal/domains/storage/model"
	"holdhive/shared"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/validator"
	"holdhive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRental)
		routerGroup.Get("/", handler.GetRentals)
		routerGroup.Get("/available", handler.GetAvailableStorages)
		routerGroup.Get("/check", handler.CheckAvailability)
		routerGroup.Get("/quote", handler.GetQuote)
		routerGroup.Get("/{id}", handler.GetRentalByID)
		routerGroup.Get("/storage/{id}", handler.GetRentalsByStorage)
		routerGroup.Get("/renter/{id}", handler.GetRentalsByRenter)
		routerGroup.Get("/owner/{id}", handler.GetRentalsByOwner)
		routerGroup.Delete("/{id}", handler.DeleteRental)
	})
}

// CreateRental books a storage for a date range.
// @Summary Book a storage
// @Description Book a storage space for the given date range. Fails when any existing rental touches the requested timeline.
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequest true "Create Rental Request"
// @Success 201 {object} dto.RentalResponse "Rental booked successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [post]
// @Security BearerAuth
func (handler *Handler) CreateRental(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRental")
	defer scope.End()

	req := dto.CreateRentalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book rental")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental booked successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRentals retrieves all rentals based on query parameters.
// @Summary Get all rentals
// @Description Retrieve all rentals with optional filtering and pagination.
// @Tags Rental
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param storage_id query string false "Filter by storage ID"
// @Success 200 {object} dto.GetRentalsResponse "List of rentals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [get]
func (handler *Handler) GetRentals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	storageID := r.URL.Query().Get(model.FieldStorageID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if storageID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStorageID,
			Operator: gDto.FilterOperatorEq,
			Value:    storageID,
			Table:    model.TableName,
		})
	}

	rentals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rentals retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetAvailableStorages lists storages open for the given date range.
// @Summary Get available storages
// @Description List storages flagged available with no rental touching the given date range.
// @Tags Rental
// @Accept json
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} storageDto.GetStoragesResponse "List of available storages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/available [get]
func (handler *Handler) GetAvailableStorages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableStorages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	storages, err := handler.service.ListAvailable(ctx, queryParams, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available storages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available storages retrieved successfully")

	response.WithJSON(w, http.StatusOK, storages)
}

// CheckAvailability reports whether a storage is open for a date range.
// @Summary Check storage availability
// @Description Report whether the storage can be booked for the given date range.
// @Tags Rental
// @Accept json
// @Produce json
// @Param storage_id query string true "Storage ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse "Availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/check [get]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	storageID := r.URL.Query().Get(constant.RequestParamStorageID)
	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	res, err := handler.service.CheckAvailability(ctx, storageID, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetQuote prices a prospective rental without booking it.
// @Summary Quote a rental
// @Description Price a prospective rental for the given date range. Rentals shorter than thirty days are charged as a full month.
// @Tags Rental
// @Accept json
// @Produce json
// @Param storage_id query string true "Storage ID"
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.QuoteResponse "Quote"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	storageID := r.URL.Query().Get(constant.RequestParamStorageID)
	startDate := r.URL.Query().Get(constant.RequestParamStartDate)
	endDate := r.URL.Query().Get(constant.RequestParamEndDate)

	res, err := handler.service.Quote(ctx, storageID, startDate, endDate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote rental")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rental quoted successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRentalByID retrieves a rental by its ID.
// @Summary Get a rental by ID
// @Description Retrieve a rental and its storage and renter details by its unique identifier.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} dto.RentalDetailResponse "Rental details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [get]
func (handler *Handler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rental, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rental retrieved successfully")

	response.WithJSON(w, http.StatusOK, rental)
}

// GetRentalsByStorage retrieves the rental history of a storage.
// @Summary Get rentals by storage
// @Description Retrieve all rentals booked against the given storage.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Storage ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetRentalsResponse "List of rentals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/storage/{id} [get]
func (handler *Handler) GetRentalsByStorage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalsByStorage")
	defer scope.End()

	storageID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rentals, err := handler.service.GetAll(ctx, queryParams, shared.FilterByField(storageID, model.FieldStorageID, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals by storage")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Storage rentals retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetRentalsByRenter retrieves the rentals a user has booked.
// @Summary Get rentals by renter
// @Description Retrieve all rentals booked by the given user.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Renter ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetRentalsResponse "List of rentals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/renter/{id} [get]
func (handler *Handler) GetRentalsByRenter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalsByRenter")
	defer scope.End()

	renterID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rentals, err := handler.service.GetAll(ctx, queryParams, shared.FilterByField(renterID, model.FieldUserID, model.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals by renter")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Renter rentals retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetRentalsByOwner retrieves the rentals booked against an owner's storages.
// @Summary Get rentals by owner
// @Description Retrieve all rentals booked against storages owned by the given user.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetRentalsResponse "List of rentals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/owner/{id} [get]
func (handler *Handler) GetRentalsByOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalsByOwner")
	defer scope.End()

	ownerID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rentals, err := handler.service.GetAll(ctx, queryParams, shared.FilterByField(ownerID, storageModel.FieldOwnerID, storageModel.TableName))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals by owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner rentals retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentals)
}

// DeleteRental cancels a rental by its ID.
// @Summary Delete a rental by ID
// @Description Cancel a rental and its payment records, freeing the timeline for other renters.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Message "Rental deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRental(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRental")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rental")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rental deleted successfully")
}
