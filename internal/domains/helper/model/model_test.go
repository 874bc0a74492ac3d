package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plotdesk/internal/domains/helper/model"
)

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "decoration", model.TypeLabel(model.TypeDecoration))
	assert.Equal(t, "catering", model.TypeLabel(model.TypeCatering))
	assert.Equal(t, "unknown", model.TypeLabel(0))
	assert.Equal(t, "unknown", model.TypeLabel(7))
}
