package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plotdesk/config"
	"plotdesk/infras/otel/mocks"
	bookingMocks "plotdesk/internal/domains/booking/mocks"
	"plotdesk/internal/domains/booking/model"
	"plotdesk/internal/domains/booking/model/dto"
	"plotdesk/internal/domains/booking/service"
	cacheMocks "plotdesk/shared/cache/mocks"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/failure"
	"plotdesk/shared/listview"
)

const cacheKey = "booking:list"

func sampleBookings() []model.Booking {
	return []model.Booking{
		{
			ID:            "1",
			CustomerName:  "Ramesh Patel",
			Number:        "9876543210",
			PartyPlotName: "Sunrise Lawn",
			EventDate:     "2026-09-15",
			BookingStatus: model.BookingStatusConfirmed,
			PaymentStatus: model.PaymentStatusPartial,
			Price:         "50000",
		},
		{
			ID:            "2",
			CustomerName:  "Suresh Shah",
			Number:        "9123456780",
			PartyPlotName: "Garden View",
			EventDate:     "2026-09-15 00:00:00",
			BookingStatus: model.BookingStatusPending,
			PaymentStatus: model.PaymentStatusPending,
			Price:         "30000",
		},
		{
			ID:            "3",
			CustomerName:  "Mahesh Joshi",
			Number:        "9988776655",
			PartyPlotName: "Sunrise Lawn",
			EventDate:     "2026-10-02",
			BookingStatus: model.BookingStatusCancelled,
			PaymentStatus: model.PaymentStatusPending,
			Price:         "25000",
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Upstream.EmployeeID = "7"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	// invalidation runs on a background goroutine
	mockCache.EXPECT().Clear(gomock.Any(), "booking*").Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation fills form defaults",
			req: dto.CreateBookingRequest{
				PartyPlotID:  "3",
				EventDate:    "2026-09-15",
				CustomerName: "Ramesh Patel",
				Number:       "9876543210",
				Price:        50000,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]string) error {
						assert.Equal(t, "3", fields[model.FieldPartyPlotID])
						assert.Equal(t, "50000", fields[model.FieldPrice])
						assert.Equal(t, "7", fields[model.FieldBookedByUserID])
						assert.Equal(t, model.BookingStatusPending, fields[model.FieldBookingStatus])
						assert.Equal(t, model.PaymentStatusPending, fields[model.FieldPaymentStatus])
						assert.NotEmpty(t, fields[model.FieldBookingDate])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "explicit operator is kept",
			req: dto.CreateBookingRequest{
				PartyPlotID:    "3",
				EventDate:      "2026-09-15",
				CustomerName:   "Ramesh Patel",
				Number:         "9876543210",
				Price:          50000,
				BookedByUserID: "12",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]string) error {
						assert.Equal(t, "12", fields[model.FieldBookedByUserID])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateBookingRequest{
				PartyPlotID:  "3",
				EventDate:    "2026-09-15",
				CustomerName: "Ramesh Patel",
				Number:       "9876543210",
				Price:        50000,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(failure.Upstream("failed to add booking"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	// the cache write after a miss happens on a background goroutine
	mockCache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil).AnyTimes()

	t.Run("cache miss fetches from the repository", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, listview.Criteria[model.Booking]{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 3)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 1, res.TotalPage)
		assert.Equal(t, "Ramesh Patel", res.Bookings[0].CustomerName)
		assert.InDelta(t, 50000, res.Bookings[0].Price, 0.0001)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), cacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]model.Booking)) = sampleBookings()

				return nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, listview.Criteria[model.Booking]{})

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 3)
	})

	t.Run("criteria filter before pagination", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)

		criteria := service.BuildCriteria("", "", model.PaymentStatusPending, "")

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 1}, criteria)

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
		assert.Equal(t, 2, res.TotalData)
		assert.Equal(t, 2, res.TotalPage)
		assert.Equal(t, "Suresh Shah", res.Bookings[0].CustomerName)
	})

	t.Run("repository error yields empty response", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, failure.Upstream("failed to fetch bookings"))

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, listview.Criteria[model.Booking]{})

		assert.Error(t, err)
		assert.Empty(t, res.Bookings)
		assert.Equal(t, 0, res.TotalData)
	})
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil).AnyTimes()

	t.Run("found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)

		res, err := svc.Get(context.Background(), "2")

		assert.NoError(t, err)
		assert.Equal(t, "Suresh Shah", res.CustomerName)
		assert.Equal(t, model.BookingStatusPending, res.BookingStatus)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)

		_, err := svc.Get(context.Background(), "99")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Upstream.EmployeeID = "7"

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), "booking*").Return(nil).AnyTimes()

	req := dto.UpdateBookingRequest{
		PartyPlotID:  "3",
		EventDate:    "2026-09-20",
		CustomerName: "Ramesh Patel",
		Number:       "9876543210",
		Price:        55000,
	}

	t.Run("successful update", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), "1", gomock.Any()).Return(nil)

		assert.NoError(t, svc.Update(context.Background(), req, "1"))
	})

	t.Run("unknown id never reaches the repository", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)

		err := svc.Update(context.Background(), req, "99")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), "booking*").Return(nil).AnyTimes()

	t.Run("successful delete", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "3").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "3"))
	})

	t.Run("upstream rejection propagates", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(sampleBookings(), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), "3").Return(failure.Upstream("failed to delete booking"))

		err := svc.Delete(context.Background(), "3")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
	})
}

func TestBuildCriteria(t *testing.T) {
	bookings := sampleBookings()

	tests := []struct {
		name          string
		search        string
		bookingStatus string
		paymentStatus string
		eventDate     string
		wantIDs       []string
	}{
		{"no filters", "", "", "", "", []string{"1", "2", "3"}},
		{"search by customer", "suresh", "", "", "", []string{"2"}},
		{"search by plot name", "sunrise", "", "", "", []string{"1", "3"}},
		{"search by number", "99887", "", "", "", []string{"3"}},
		{"booking status", "", model.BookingStatusConfirmed, "", "", []string{"1"}},
		{"payment status", "", "", model.PaymentStatusPending, "", []string{"2", "3"}},
		{"event date ignores timestamp noise", "", "", "", "2026-09-15", []string{"1", "2"}},
		{"filters combine", "sunrise", "", model.PaymentStatusPending, "", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := service.BuildCriteria(tt.search, tt.bookingStatus, tt.paymentStatus, tt.eventDate)
			filtered := listview.Apply(bookings, criteria)

			ids := make([]string, len(filtered))
			for i, b := range filtered {
				ids[i] = b.ID.String()
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
