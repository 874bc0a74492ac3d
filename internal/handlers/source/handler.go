package source

import (
	"net/http"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/source/model/dto"
	"plotdesk/internal/domains/source/service"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/validator"
	"plotdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Source
	otel    otel.Otel
}

func New(service service.Source, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sources", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSource)
		routerGroup.Get("/", handler.GetSources)
		routerGroup.Get("/{id}", handler.GetSourceByID)
		routerGroup.Patch("/{id}", handler.UpdateSource)
		routerGroup.Delete("/{id}", handler.DeleteSource)
	})
}

// CreateSource handles the creation of a new lead source.
// @Summary Create a new lead source
// @Description Create a new lead source with the provided name.
// @Tags Source
// @Accept json
// @Produce json
// @Param request body dto.CreateSourceRequest true "Create Source Request"
// @Success 201 {object} response.Message "Source created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sources [post]
func (handler *Handler) CreateSource(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSource")
	defer scope.End()

	req := dto.CreateSourceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create source")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Source created successfully")

	response.WithMessage(writer, http.StatusCreated, "Source created successfully")
}

// GetSources retrieves lead sources with search and pagination.
// @Summary Get all lead sources
// @Description Retrieve lead sources with name search and pagination.
// @Tags Source
// @Accept json
// @Produce json
// @Param search query string false "Search by source name"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetSourcesResponse "List of sources"
// @Failure 502 {object} response.Error
// @Router /v1/sources [get]
func (handler *Handler) GetSources(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSources")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria := service.BuildCriteria(queryParams.Search)

	sources, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sources")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sources retrieved successfully")

	response.WithJSON(w, http.StatusOK, sources)
}

// GetSourceByID retrieves a lead source by its ID.
// @Summary Get a lead source by ID
// @Description Retrieve a lead source by its unique identifier.
// @Tags Source
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} dto.SourceResponse "Source details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sources/{id} [get]
func (handler *Handler) GetSourceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSourceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	source, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get source by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Source retrieved successfully")

	response.WithJSON(w, http.StatusOK, source)
}

// UpdateSource updates an existing lead source by its ID.
// @Summary Update a lead source by ID
// @Description Update the name of an existing lead source.
// @Tags Source
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Param request body dto.UpdateSourceRequest true "Update Source Request"
// @Success 200 {object} response.Message "Source updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sources/{id} [patch]
func (handler *Handler) UpdateSource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSource")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSourceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update source")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Source updated successfully")

	response.WithMessage(w, http.StatusOK, "Source updated successfully")
}

// DeleteSource deletes a lead source by its ID.
// @Summary Delete a lead source by ID
// @Description Delete a lead source using its unique identifier.
// @Tags Source
// @Accept json
// @Produce json
// @Param id path string true "Source ID"
// @Success 200 {object} response.Message "Source deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/sources/{id} [delete]
func (handler *Handler) DeleteSource(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSource")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete source")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Source deleted successfully")

	response.WithMessage(w, http.StatusOK, "Source deleted successfully")
}
