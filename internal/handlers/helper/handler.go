package helper

import (
	"net/http"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/helper/model"
	"plotdesk/internal/domains/helper/model/dto"
	"plotdesk/internal/domains/helper/service"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/validator"
	"plotdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Helper
	otel    otel.Otel
}

func New(service service.Helper, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/helpers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHelper)
		routerGroup.Get("/", handler.GetHelpers)
		routerGroup.Get("/{id}", handler.GetHelperByID)
		routerGroup.Patch("/{id}", handler.UpdateHelper)
		routerGroup.Delete("/{id}", handler.DeleteHelper)
	})
}

// CreateHelper handles the creation of a new helper.
// @Summary Create a new helper
// @Description Create a new caterer or decorator with the provided details.
// @Tags Helper
// @Accept json
// @Produce json
// @Param request body dto.CreateHelperRequest true "Create Helper Request"
// @Success 201 {object} response.Message "Helper created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/helpers [post]
func (handler *Handler) CreateHelper(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHelper")
	defer scope.End()

	req := dto.CreateHelperRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create helper")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Helper created successfully")

	response.WithMessage(writer, http.StatusCreated, "Helper created successfully")
}

// GetHelpers retrieves helpers with filtering and pagination.
// @Summary Get all helpers
// @Description Retrieve helpers with free-text search, type filter and pagination.
// @Tags Helper
// @Accept json
// @Produce json
// @Param search query string false "Search by name, whatsapp number, second number, email or address"
// @Param type query int false "Filter by helper type" Enums(1, 2)
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetHelpersResponse "List of helpers"
// @Failure 502 {object} response.Error
// @Router /v1/helpers [get]
func (handler *Handler) GetHelpers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHelpers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria := service.BuildCriteria(queryParams.Search, r.URL.Query().Get(model.FieldType))

	helpers, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get helpers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Helpers retrieved successfully")

	response.WithJSON(w, http.StatusOK, helpers)
}

// GetHelperByID retrieves a helper by its ID.
// @Summary Get a helper by ID
// @Description Retrieve a helper by its unique identifier.
// @Tags Helper
// @Accept json
// @Produce json
// @Param id path string true "Helper ID"
// @Success 200 {object} dto.HelperResponse "Helper details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/helpers/{id} [get]
func (handler *Handler) GetHelperByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHelperByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	helper, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get helper by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Helper retrieved successfully")

	response.WithJSON(w, http.StatusOK, helper)
}

// UpdateHelper updates an existing helper by its ID.
// @Summary Update a helper by ID
// @Description Update the details of an existing helper.
// @Tags Helper
// @Accept json
// @Produce json
// @Param id path string true "Helper ID"
// @Param request body dto.UpdateHelperRequest true "Update Helper Request"
// @Success 200 {object} response.Message "Helper updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/helpers/{id} [patch]
func (handler *Handler) UpdateHelper(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHelper")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHelperRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update helper")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Helper updated successfully")

	response.WithMessage(w, http.StatusOK, "Helper updated successfully")
}

// DeleteHelper deletes a helper by its ID.
// @Summary Delete a helper by ID
// @Description Delete a helper using its unique identifier.
// @Tags Helper
// @Accept json
// @Produce json
// @Param id path string true "Helper ID"
// @Success 200 {object} response.Message "Helper deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/helpers/{id} [delete]
func (handler *Handler) DeleteHelper(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHelper")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete helper")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Helper deleted successfully")

	response.WithMessage(w, http.StatusOK, "Helper deleted successfully")
}
