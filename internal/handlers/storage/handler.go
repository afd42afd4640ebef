package storage

import (
	"net/http"

	"holdhive/infras/otel"
	"holdhive/internal/domains/storage/model"
	"holdhive/internal/domains/storage/model/dto"
	"holdhive/internal/domains/storage/service"
	"holdhive/shared/constant"
	gDto "holdhive/shared/dto"
	"holdhive/shared/validator"
	"holdhive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Storage
	otel    otel.Otel
}

func New(service service.Storage, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/storages", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateStorage)
		routerGroup.Get("/", handler.GetStorages)
		routerGroup.Get("/{id}", handler.GetStorageByID)
		routerGroup.Get("/owner/{id}", handler.GetStoragesByOwner)
		routerGroup.Patch("/{id}", handler.UpdateStorage)
		routerGroup.Post("/{id}/images", handler.UploadImage)
		routerGroup.Delete("/{id}", handler.DeleteStorage)
	})
}

// CreateStorage handles the creation of a new storage listing.
// @Summary Create a new storage listing
// @Description Create a new storage space listing with the provided details.
// @Tags Storage
// @Accept json
// @Produce json
// @Param request body dto.CreateStorageRequest true "Create Storage Request"
// @Success 201 {object} dto.StorageResponse "Storage created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages [post]
// @Security BearerAuth
func (handler *Handler) CreateStorage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStorage")
	defer scope.End()

	req := dto.CreateStorageRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create storage")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Storage created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetStorages retrieves all storage listings based on query parameters.
// @Summary Get all storage listings
// @Description Retrieve all storage listings with optional filtering and pagination.
// @Tags Storage
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param location query string false "Filter by location"
// @Param availability query string false "Filter by availability (available, unavailable)"
// @Success 200 {object} dto.GetStoragesResponse "List of storages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages [get]
func (handler *Handler) GetStorages(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStorages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	location := r.URL.Query().Get(model.FieldLocation)
	availability := r.URL.Query().Get(model.FieldAvailability)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	if availability != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAvailability,
			Operator: gDto.FilterOperatorEq,
			Value:    availability,
			Table:    model.TableName,
		})
	}

	storages, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get storages")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Storages retrieved successfully")

	response.WithJSON(w, http.StatusOK, storages)
}

// GetStorageByID retrieves a storage listing by its ID.
// @Summary Get a storage listing by ID
// @Description Retrieve a storage listing and its owner details by its unique identifier.
// @Tags Storage
// @Accept json
// @Produce json
// @Param id path string true "Storage ID"
// @Success 200 {object} dto.StorageDetailResponse "Storage details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages/{id} [get]
func (handler *Handler) GetStorageByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStorageByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	storage, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get storage by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Storage retrieved successfully")

	response.WithJSON(w, http.StatusOK, storage)
}

// GetStoragesByOwner retrieves all storage listings that belong to an owner.
// @Summary Get storage listings by owner
// @Description Retrieve all storage listings owned by the given user.
// @Tags Storage
// @Accept json
// @Produce json
// @Param id path string true "Owner ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetStorageDetailsResponse "List of owner's storages"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages/owner/{id} [get]
func (handler *Handler) GetStoragesByOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStoragesByOwner")
	defer scope.End()

	ownerID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	storages, err := handler.service.GetByOwner(ctx, queryParams, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get storages by owner")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Owner storages retrieved successfully")

	response.WithJSON(w, http.StatusOK, storages)
}

// UpdateStorage updates an existing storage listing by its ID.
// @Summary Update a storage listing by ID
// @Description Update the details of an existing storage listing.
// @Tags Storage
// @Accept json
// @Produce json
// @Param id path string true "Storage ID"
// @Param request body dto.UpdateStorageRequest true "Update Storage Request"
// @Success 200 {object} response.Message "Storage updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStorage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStorage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStorageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update storage")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Storage updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Storage updated successfully")
}

// UploadImage uploads a listing image to S3 and records its URL.
// @Summary Upload a storage listing image
// @Description Upload an image file for the storage listing and return the URL.
// @Tags Storage
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Storage ID"
// @Param file formData file true "Image file to upload"
// @Success 200 {object} dto.UploadImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages/{id}/images [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadImage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	url, err := handler.service.UploadImage(ctx, id, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload storage image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Storage image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, dto.UploadImageResponse{ImageURL: url})
}

// DeleteStorage deletes a storage listing by its ID.
// @Summary Delete a storage listing by ID
// @Description Delete a storage listing along with its historical rentals, payments, and reviews. Fails while the storage still has active or future rentals.
// @Tags Storage
// @Accept json
// @Produce json
// @Param id path string true "Storage ID"
// @Success 200 {object} response.Message "Storage deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/storages/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStorage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStorage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete storage")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Storage deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Storage deleted successfully")
}
