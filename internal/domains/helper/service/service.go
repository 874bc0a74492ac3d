package service

import (
	"context"
	"fmt"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/helper/model"
	"plotdesk/internal/domains/helper/model/dto"
	"plotdesk/internal/domains/helper/repository"
	"plotdesk/shared"
	"plotdesk/shared/cache"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/failure"
	"plotdesk/shared/listview"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheListHelper = "helper:list"
)

type Helper interface {
	Create(ctx context.Context, req dto.CreateHelperRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Helper]) (dto.GetHelpersResponse, error)
	Get(ctx context.Context, id string) (dto.HelperResponse, error)
	Update(ctx context.Context, req dto.UpdateHelperRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Helper
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Helper, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Helper {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// BuildCriteria assembles the helper list filters. The helperType parameter
// accepts a numeric type; anything non-numeric contributes no criterion.
func BuildCriteria(search, helperType string) listview.Criteria[model.Helper] {
	criteria := listview.Criteria[model.Helper]{}

	if search != "" {
		criteria.Add(func(h model.Helper) bool {
			return listview.TextMatch(search, h.Name, h.WhatsappNumber, h.Number2, h.Email, h.Address)
		})
	}

	if want, err := strconv.Atoi(helperType); err == nil {
		criteria.Add(func(h model.Helper) bool {
			return h.Type.Int() == want
		})
	}

	return criteria
}

func (s *serviceImpl) loadAll(ctx context.Context) (res []model.Helper, err error) {
	err = s.cache.Get(ctx, cacheListHelper, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get helpers")

		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListHelper, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save helpers cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHelperRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Create(ctx, req.FormFields()); err != nil {
		log.Error().Err(err).Msg("failed to create helper")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Helper]) (res dto.GetHelpersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	helpers, err := s.loadAll(ctx)
	if err != nil {
		res.FromModels([]model.Helper{}, 0, req.Limit)

		return res, err // nolint:wrapcheck
	}

	filtered := listview.Apply(helpers, criteria)
	page := listview.Paginate(filtered, req.Page, req.Limit)

	res.FromModels(page, len(filtered), req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HelperResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	helpers, err := s.loadAll(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	for _, helper := range helpers {
		if helper.ID.String() == id {
			res.FromModel(helper)

			return res, nil
		}
	}

	return res, failure.NotFound("helper not found") // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHelperRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to check if helper exists: %w", err)
	}

	if err = s.repo.Update(ctx, id, req.FormFields()); err != nil {
		log.Error().Err(err).Msg("failed to update helper")

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
		return fmt.Errorf("failed to check if helper exists: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete helper")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}
