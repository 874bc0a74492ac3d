package service

import (
	"context"
	"fmt"
	"plotdesk/config"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/booking/model"
	"plotdesk/internal/domains/booking/model/dto"
	"plotdesk/internal/domains/booking/repository"
	"plotdesk/shared"
	"plotdesk/shared/cache"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/failure"
	"plotdesk/shared/listview"
	"plotdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheListBooking = "booking:list"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Booking]) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Booking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// BuildCriteria assembles the booking list filters. Empty parameters
// contribute no criterion, so the zero call matches the whole collection.
func BuildCriteria(search, bookingStatus, paymentStatus, eventDate string) listview.Criteria[model.Booking] {
	criteria := listview.Criteria[model.Booking]{}

	if search != "" {
		criteria.Add(func(b model.Booking) bool {
			return listview.TextMatch(search, b.CustomerName, b.Number, b.FunctionName, b.PartyPlotName)
		})
	}

	if bookingStatus != "" {
		criteria.Add(func(b model.Booking) bool {
			return b.BookingStatus == bookingStatus
		})
	}

	if paymentStatus != "" {
		criteria.Add(func(b model.Booking) bool {
			return b.PaymentStatus == paymentStatus
		})
	}

	if eventDate != "" {
		// Date equality on the calendar day, whatever timestamp noise the
		// upstream stored alongside it.
		want := timezone.DateOnly(eventDate)
		criteria.Add(func(b model.Booking) bool {
			return timezone.DateOnly(b.EventDate) == want
		})
	}

	return criteria
}

// loadAll is the single read path for the booking collection: cache-aside
// over the full upstream list. Every mutation invalidates, so a successful
// mutation is always followed by a genuine refetch.
func (s *serviceImpl) loadAll(ctx context.Context) (res []model.Booking, err error) {
	err = s.cache.Get(ctx, cacheListBooking, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListBooking, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Create(ctx, req.FormFields(s.cfg.Upstream.EmployeeID)); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, criteria listview.Criteria[model.Booking]) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.loadAll(ctx)
	if err != nil {
		res.FromModels([]model.Booking{}, 0, req.Limit)

		return res, err // nolint:wrapcheck
	}

	filtered := listview.Apply(bookings, criteria)
	page := listview.Paginate(filtered, req.Page, req.Limit)

	res.FromModels(page, len(filtered), req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.loadAll(ctx)
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	for _, booking := range bookings {
		if booking.ID.String() == id {
			res.FromModel(booking)

			return res, nil
		}
	}

	return res, failure.NotFound("booking not found") // nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.Get(ctx, id); err != nil {
		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if err = s.repo.Update(ctx, id, req.FormFields(s.cfg.Upstream.EmployeeID)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

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
		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return err // nolint:wrapcheck
	}

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.EntityName)

	return nil
}
