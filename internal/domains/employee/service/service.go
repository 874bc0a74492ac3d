package service

import (
	"context"
	"fmt"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/employee/model"
	"plotdesk/internal/domains/employee/model/dto"
	"plotdesk/internal/domains/employee/repository"
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
	cacheListEmployee = "employee:list"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Employee]) (dto.GetEmployeesResponse, error)
	GetActive(ctx context.Context) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Employee
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Employee, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// BuildCriteria assembles the employee list filters. The status parameter
// accepts "0" or "1"; anything else contributes no criterion.
func BuildCriteria(search, status string) listview.Criteria[model.Employee] {
	criteria := listview.Criteria[model.Employee]{}

	if search != "" {
		criteria.Add(func(e model.Employee) bool {
			return listview.TextMatch(search, e.Name, e.Code, e.Mobile, e.Email)
		})
	}

	if want, err := strconv.Atoi(status); err == nil {
		criteria.Add(func(e model.Employee) bool {
			return e.Status.Int() == want
		})
	}

	return criteria
}

func (s *serviceImpl) loadAll(ctx context.Context) (res []model.Employee, err error) {
	err = s.cache.Get(ctx, cacheListEmployee, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListEmployee, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Create(ctx, req.FormFields(s.cfg.Upstream.CompanyID)); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Employee]) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	employees, err := s.loadAll(ctx)
	if err != nil {
		res.FromModels([]model.Employee{}, 0, req.Limit)

		return res, err // nolint:wrapcheck
	}

	filtered := listview.Apply(employees, criteria)
	page := listview.Paginate(filtered, req.Page, req.Limit)

	res.FromModels(page, len(filtered), req.Limit)

	return res, nil
}

// GetActive returns every active employee unpaginated. The booking form
// uses it to populate its booked-by dropdown.
func (s *serviceImpl) GetActive(ctx context.Context) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	employees, err := s.loadAll(ctx)
	if err != nil {
		res.FromModels([]model.Employee{}, 0, 0)

		return res, err // nolint:wrapcheck
	}

	criteria := listview.Criteria[model.Employee]{}
	criteria.Add(func(e model.Employee) bool {
		return e.Status.Int() == model.StatusActive
	})

	active := listview.Apply(employees, criteria)

	res.FromModels(active, len(active), len(active))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	employees, err := s.loadAll(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	for _, employee := range employees {
		if employee.ID.String() == id {
			res.FromModel(employee)

			return res, nil
		}
	}

	return res, failure.NotFound("employee not found") // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEmployeeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if err = s.repo.Update(ctx, id, req.FormFields(s.cfg.Upstream.CompanyID)); err != nil {
		log.Error().Err(err).Msg("failed to update employee")

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
		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete employee")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}
