package service

import (
	"context"
	"fmt"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/source/model"
	"plotdesk/internal/domains/source/model/dto"
	"plotdesk/internal/domains/source/repository"
	"plotdesk/shared"
	"plotdesk/shared/cache"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/failure"
	"plotdesk/shared/listview"

	"github.com/rs/zerolog/log"
)

const (
	cacheListSource = "source:list"
)

type Source interface {
	Create(ctx context.Context, req dto.CreateSourceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Source]) (dto.GetSourcesResponse, error)
	Get(ctx context.Context, id string) (dto.SourceResponse, error)
	Update(ctx context.Context, req dto.UpdateSourceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Source
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Source, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Source {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// BuildCriteria assembles the lead source list filter: name search only.
func BuildCriteria(search string) listview.Criteria[model.Source] {
	criteria := listview.Criteria[model.Source]{}

	if search != "" {
		criteria.Add(func(s model.Source) bool {
			return listview.TextMatch(search, s.Name)
		})
	}

	return criteria
}

func (s *serviceImpl) loadAll(ctx context.Context) (res []model.Source, err error) {
	err = s.cache.Get(ctx, cacheListSource, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sources")

		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListSource, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sources cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSourceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Create(ctx, req.FormFields()); err != nil {
		log.Error().Err(err).Msg("failed to create source")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Source]) (res dto.GetSourcesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	sources, err := s.loadAll(ctx)
	if err != nil {
		res.FromModels([]model.Source{}, 0, req.Limit)

		return res, err // nolint:wrapcheck
	}

	filtered := listview.Apply(sources, criteria)
	page := listview.Paginate(filtered, req.Page, req.Limit)

	res.FromModels(page, len(filtered), req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	sources, err := s.loadAll(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	for _, source := range sources {
		if source.ID.String() == id {
			res.FromModel(source)

			return res, nil
		}
	}

	return res, failure.NotFound("source not found") // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSourceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to check if source exists: %w", err)
	}

	if err = s.repo.Update(ctx, id, req.FormFields()); err != nil {
		log.Error().Err(err).Msg("failed to update source")

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
		return fmt.Errorf("failed to check if source exists: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete source")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}
