package service

import (
	"context"
	"fmt"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/partyplot/model"
	"plotdesk/internal/domains/partyplot/model/dto"
	"plotdesk/internal/domains/partyplot/repository"
	"plotdesk/shared"
	"plotdesk/shared/cache"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/failure"
	"plotdesk/shared/listview"

	"github.com/rs/zerolog/log"
)

const (
	cacheListPartyPlot = "partyplot:list"
)

type PartyPlot interface {
	Create(ctx context.Context, req dto.CreatePartyPlotRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.PartyPlot]) (dto.GetPartyPlotsResponse, error)
	Get(ctx context.Context, id string) (dto.PartyPlotResponse, error)
	Update(ctx context.Context, req dto.UpdatePartyPlotRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.PartyPlot
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.PartyPlot, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) PartyPlot {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// BuildCriteria assembles the party plot list filter: one free-text search
// across name, address, plot size and rent.
func BuildCriteria(search string) listview.Criteria[model.PartyPlot] {
	criteria := listview.Criteria[model.PartyPlot]{}

	if search != "" {
		criteria.Add(func(p model.PartyPlot) bool {
			return listview.TextMatch(search, p.Name, p.Address, p.PloteSize, p.Rent.String())
		})
	}

	return criteria
}

func (s *serviceImpl) loadAll(ctx context.Context) (res []model.PartyPlot, err error) {
	err = s.cache.Get(ctx, cacheListPartyPlot, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get party plots")

		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListPartyPlot, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save party plots cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePartyPlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	image, ok, err := req.ImageFile()
	if err != nil {
		log.Error().Err(err).Msg("failed to read party plot image")

		return failure.BadRequestFromString("Please upload a valid image file (JPG, PNG, GIF, WEBP)") // nolint:wrapcheck
	}

	if !ok {
		return failure.BadRequestFromString("Please upload at least one image") // nolint:wrapcheck
	}

	if err = s.repo.Create(ctx, req.FormFields(), image); err != nil {
		log.Error().Err(err).Msg("failed to create party plot")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.PartyPlot]) (res dto.GetPartyPlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	plots, err := s.loadAll(ctx)
	if err != nil {
		res.FromModels([]model.PartyPlot{}, 0, req.Limit)

		return res, err // nolint:wrapcheck
	}

	filtered := listview.Apply(plots, criteria)
	page := listview.Paginate(filtered, req.Page, req.Limit)

	res.FromModels(page, len(filtered), req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PartyPlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	plots, err := s.loadAll(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	for _, plot := range plots {
		if plot.ID.String() == id {
			res.FromModel(plot)

			return res, nil
		}
	}

	return res, failure.NotFound("party plot not found") // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePartyPlotRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to check if party plot exists: %w", err)
	}

	image, ok, err := req.ImageFile()
	if err != nil {
		log.Error().Err(err).Msg("failed to read party plot image")

		return failure.BadRequestFromString("Please upload a valid image file (JPG, PNG, GIF, WEBP)") // nolint:wrapcheck
	}

	if ok {
		err = s.repo.Update(ctx, id, req.FormFields(), image)
	} else {
		err = s.repo.Update(ctx, id, req.FormFields())
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update party plot")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to check if party plot exists: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete party plot")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}
