package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plotdesk/internal/domains/helper/model"
	"plotdesk/internal/domains/helper/model/dto"
)

func TestCreateHelperRequestFormFields(t *testing.T) {
	req := dto.CreateHelperRequest{
		Name:           "Shree Caterers",
		Type:           model.TypeCatering,
		WhatsappNumber: "9876543210",
	}

	fields := req.FormFields()

	// the type submits as helper_type even though records read back as type
	assert.Equal(t, "2", fields[model.FieldHelperType])
	assert.NotContains(t, fields, model.FieldType)
	assert.Equal(t, "Shree Caterers", fields[model.FieldName])
	assert.Equal(t, "9876543210", fields[model.FieldWhatsappNumber])
}

func TestHelperResponseFromModel(t *testing.T) {
	t.Run("known type", func(t *testing.T) {
		var res dto.HelperResponse
		res.FromModel(model.Helper{ID: "5", Name: "Shree Caterers", Type: "2"})

		assert.Equal(t, model.TypeCatering, res.Type)
		assert.Equal(t, "catering", res.TypeLabel)
	})

	t.Run("stray type surfaces as unknown", func(t *testing.T) {
		var res dto.HelperResponse
		res.FromModel(model.Helper{ID: "6", Name: "Old Row", Type: "9"})

		assert.Equal(t, 9, res.Type)
		assert.Equal(t, "unknown", res.TypeLabel)
	})

	t.Run("bare numeric type decodes", func(t *testing.T) {
		var res dto.HelperResponse
		res.FromModel(model.Helper{ID: "7", Type: "1"})

		assert.Equal(t, "decoration", res.TypeLabel)
	})
}
