package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"plotdesk/config"
	"plotdesk/infras/otel/mocks"
	"plotdesk/infras/upstream"
	partyplotMocks "plotdesk/internal/domains/partyplot/mocks"
	"plotdesk/internal/domains/partyplot/model"
	"plotdesk/internal/domains/partyplot/model/dto"
	"plotdesk/internal/domains/partyplot/service"
	cacheMocks "plotdesk/shared/cache/mocks"
	"plotdesk/shared/failure"
	"plotdesk/shared/listview"
)

const cacheKey = "partyplot:list"

type fakeFile struct {
	*bytes.Reader
}

func (fakeFile) Close() error { return nil }

func uploadedImage(content []byte) (*multipart.FileHeader, multipart.File) {
	header := &multipart.FileHeader{
		Filename: "plot.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/jpeg"}},
		Size:     int64(len(content)),
	}

	return header, fakeFile{bytes.NewReader(content)}
}

func samplePlots() []model.PartyPlot {
	return []model.PartyPlot{
		{ID: "1", Name: "Sunrise Lawn", Address: "Ring Road, Rajkot", Rent: "45000", PloteSize: "5000 sqft"},
		{ID: "2", Name: "Garden View", Address: "University Road", Rent: "30000", PloteSize: "3000 sqft"},
	}
}

func TestPartyPlotService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := partyplotMocks.NewMockPartyPlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), "partyplot*").Return(nil).AnyTimes()

	t.Run("successful creation uploads the image", func(t *testing.T) {
		header, file := uploadedImage([]byte("fake image bytes"))

		mockRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]string, files ...upstream.File) error {
				assert.Equal(t, "Sunrise Lawn", fields[model.FieldName])
				assert.Len(t, files, 1)
				assert.Equal(t, model.FieldImages, files[0].Field)
				assert.Equal(t, "plot.jpg", files[0].Filename)
				assert.Equal(t, "image/jpeg", files[0].ContentType)
				assert.Equal(t, []byte("fake image bytes"), files[0].Content)

				return nil
			})

		req := dto.CreatePartyPlotRequest{
			Name:       "Sunrise Lawn",
			Address:    "Ring Road, Rajkot",
			Rent:       "45000",
			Images:     header,
			ImagesFile: file,
		}

		assert.NoError(t, svc.Create(context.Background(), req))
	})

	t.Run("missing image never reaches the repository", func(t *testing.T) {
		req := dto.CreatePartyPlotRequest{
			Name:    "Sunrise Lawn",
			Address: "Ring Road, Rajkot",
			Rent:    "45000",
		}

		err := svc.Create(context.Background(), req)

		assert.EqualError(t, err, "Please upload at least one image")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestPartyPlotService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := partyplotMocks.NewMockPartyPlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), "partyplot*").Return(nil).AnyTimes()

	req := dto.UpdatePartyPlotRequest{
		Name:    "Sunrise Lawn",
		Address: "Ring Road, Rajkot",
		Rent:    "50000",
	}

	t.Run("update without an image keeps the stored one", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(samplePlots(), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), "1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ map[string]string, files ...upstream.File) error {
				assert.Empty(t, files)

				return nil
			})

		assert.NoError(t, svc.Update(context.Background(), req, "1"))
	})

	t.Run("update with a new image uploads it", func(t *testing.T) {
		header, file := uploadedImage([]byte("new image"))

		withImage := req
		withImage.Images = header
		withImage.ImagesFile = file

		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(samplePlots(), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), "1", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ map[string]string, files ...upstream.File) error {
				assert.Len(t, files, 1)
				assert.Equal(t, []byte("new image"), files[0].Content)

				return nil
			})

		assert.NoError(t, svc.Update(context.Background(), withImage, "1"))
	})

	t.Run("unknown id never reaches the repository", func(t *testing.T) {
		mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(samplePlots(), nil)

		err := svc.Update(context.Background(), req, "99")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestPartyPlotService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := partyplotMocks.NewMockPartyPlot(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Save(gomock.Any(), cacheKey, gomock.Any(), 3600).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), "partyplot*").Return(nil).AnyTimes()

	mockCache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().GetAll(gomock.Any()).Return(samplePlots(), nil)
	mockRepo.EXPECT().Delete(gomock.Any(), "2").Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), "2"))
}

func TestPartyPlotBuildCriteria(t *testing.T) {
	plots := samplePlots()

	tests := []struct {
		name    string
		search  string
		wantIDs []string
	}{
		{"empty search matches all", "", []string{"1", "2"}},
		{"search by name", "sunrise", []string{"1"}},
		{"search by address", "university", []string{"2"}},
		{"search by rent", "45000", []string{"1"}},
		{"search by plot size", "3000 sq", []string{"2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := listview.Apply(plots, service.BuildCriteria(tt.search))

			ids := make([]string, len(filtered))
			for i, p := range filtered {
				ids[i] = p.ID.String()
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
