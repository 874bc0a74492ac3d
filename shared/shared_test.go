package shared_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"plotdesk/shared"
	cacheMocks "plotdesk/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, shared.CalculateTotalPage(0, 10))
	assert.Equal(t, 1, shared.CalculateTotalPage(5, 0))
	assert.Equal(t, 2, shared.CalculateTotalPage(20, 10))
	assert.Equal(t, 3, shared.CalculateTotalPage(21, 10))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:list", shared.BuildCacheKey("booking", "list"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "booking*").Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "booking")
}

func TestInvalidateCachesLogsClearFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), "booking*").Return(errors.New("redis down"))

	// must not panic; the failure is only logged
	shared.InvalidateCaches(context.Background(), mockCache, "booking")
}
