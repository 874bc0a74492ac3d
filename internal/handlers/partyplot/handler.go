package partyplot

import (
	"errors"
	"mime/multipart"
	"net/http"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/partyplot/model"
	"plotdesk/internal/domains/partyplot/model/dto"
	"plotdesk/internal/domains/partyplot/service"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/failure"
	"plotdesk/shared/validator"
	"plotdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PartyPlot
	otel    otel.Otel
}

func New(service service.PartyPlot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/party-plots", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePartyPlot)
		routerGroup.Get("/", handler.GetPartyPlots)
		routerGroup.Get("/{id}", handler.GetPartyPlotByID)
		routerGroup.Patch("/{id}", handler.UpdatePartyPlot)
		routerGroup.Delete("/{id}", handler.DeletePartyPlot)
	})
}

// CreatePartyPlot handles the creation of a new party plot.
// @Summary Create a new party plot
// @Description Create a new party plot. The venue image is required and travels as a multipart file.
// @Tags PartyPlot
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Party plot name"
// @Param address formData string true "Address"
// @Param rent formData string true "Rent amount"
// @Param plote_size formData string false "Plot size"
// @Param plote_peropel_size formData string false "Capacity"
// @Param long_description formData string false "Description"
// @Param images formData file true "Venue image (JPG, PNG, GIF, WEBP; max 5MB)"
// @Success 201 {object} response.Message "Party plot created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/party-plots [post]
func (handler *Handler) CreatePartyPlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePartyPlot")
	defer scope.End()

	req, err := decodeCreateForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate party plot form")

		response.WithError(w, err)

		return
	}

	if req.ImagesFile != nil {
		defer req.ImagesFile.Close()
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create party plot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party plot created successfully")

	response.WithMessage(w, http.StatusCreated, "Party plot created successfully")
}

// GetPartyPlots retrieves party plots with search and pagination.
// @Summary Get all party plots
// @Description Retrieve party plots with free-text search and pagination.
// @Tags PartyPlot
// @Accept json
// @Produce json
// @Param search query string false "Search by name, address, plot size or rent"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetPartyPlotsResponse "List of party plots"
// @Failure 502 {object} response.Error
// @Router /v1/party-plots [get]
func (handler *Handler) GetPartyPlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartyPlots")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria := service.BuildCriteria(queryParams.Search)

	plots, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get party plots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party plots retrieved successfully")

	response.WithJSON(w, http.StatusOK, plots)
}

// GetPartyPlotByID retrieves a party plot by its ID.
// @Summary Get a party plot by ID
// @Description Retrieve a party plot by its unique identifier.
// @Tags PartyPlot
// @Accept json
// @Produce json
// @Param id path string true "Party Plot ID"
// @Success 200 {object} dto.PartyPlotResponse "Party plot details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/party-plots/{id} [get]
func (handler *Handler) GetPartyPlotByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPartyPlotByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	plot, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get party plot by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party plot retrieved successfully")

	response.WithJSON(w, http.StatusOK, plot)
}

// UpdatePartyPlot updates an existing party plot by its ID.
// @Summary Update a party plot by ID
// @Description Update a party plot. Omitting the image keeps the stored one.
// @Tags PartyPlot
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Party Plot ID"
// @Param name formData string true "Party plot name"
// @Param address formData string true "Address"
// @Param rent formData string true "Rent amount"
// @Param plote_size formData string false "Plot size"
// @Param plote_peropel_size formData string false "Capacity"
// @Param long_description formData string false "Description"
// @Param images formData file false "Venue image (JPG, PNG, GIF, WEBP; max 5MB)"
// @Success 200 {object} response.Message "Party plot updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/party-plots/{id} [patch]
func (handler *Handler) UpdatePartyPlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePartyPlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req, err := decodeUpdateForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate party plot form")

		response.WithError(w, err)

		return
	}

	if req.ImagesFile != nil {
		defer req.ImagesFile.Close()
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update party plot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party plot updated successfully")

	response.WithMessage(w, http.StatusOK, "Party plot updated successfully")
}

// DeletePartyPlot deletes a party plot by its ID.
// @Summary Delete a party plot by ID
// @Description Delete a party plot using its unique identifier.
// @Tags PartyPlot
// @Accept json
// @Produce json
// @Param id path string true "Party Plot ID"
// @Success 200 {object} response.Message "Party plot deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/party-plots/{id} [delete]
func (handler *Handler) DeletePartyPlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePartyPlot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete party plot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Party plot deleted successfully")

	response.WithMessage(w, http.StatusOK, "Party plot deleted successfully")
}

func decodeCreateForm(r *http.Request) (req dto.CreatePartyPlotRequest, err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(err) // nolint:wrapcheck
	}

	req = dto.CreatePartyPlotRequest{
		Name:             r.FormValue(model.FieldName),
		Address:          r.FormValue(model.FieldAddress),
		Rent:             r.FormValue(model.FieldRent),
		PloteSize:        r.FormValue(model.FieldPloteSize),
		PlotePeropelSize: r.FormValue(model.FieldPlotePeropelSize),
		LongDescription:  r.FormValue(model.FieldLongDescription),
	}

	req.ImagesFile, req.Images, err = formImage(r)
	if err != nil {
		return req, err
	}

	return req, validator.ValidateStruct(&req) // nolint:wrapcheck
}

func decodeUpdateForm(r *http.Request) (req dto.UpdatePartyPlotRequest, err error) {
	if err = r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, failure.BadRequest(err) // nolint:wrapcheck
	}

	req = dto.UpdatePartyPlotRequest{
		Name:             r.FormValue(model.FieldName),
		Address:          r.FormValue(model.FieldAddress),
		Rent:             r.FormValue(model.FieldRent),
		PloteSize:        r.FormValue(model.FieldPloteSize),
		PlotePeropelSize: r.FormValue(model.FieldPlotePeropelSize),
		LongDescription:  r.FormValue(model.FieldLongDescription),
	}

	req.ImagesFile, req.Images, err = formImage(r)
	if err != nil {
		return req, err
	}

	return req, validator.ValidateStruct(&req) // nolint:wrapcheck
}

// formImage pulls the optional image out of the multipart form. A missing
// file is not an error here; the rule tables decide whether it is required.
func formImage(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	file, header, err := r.FormFile(model.FieldImages)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil, nil
		}

		return nil, nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	return file, header, nil
}
