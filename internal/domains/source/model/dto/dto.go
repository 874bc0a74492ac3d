package dto

import (
	"plotdesk/internal/domains/source/model"
	"plotdesk/shared"
)

type CreateSourceRequest struct {
	Name string `json:"source_name" validate:"required,max=255"`
}

func (c *CreateSourceRequest) FormFields() map[string]string {
	return map[string]string{
		model.FieldName: c.Name,
	}
}

// UpdateSourceRequest shares the create rule table.
type UpdateSourceRequest = CreateSourceRequest

type SourceResponse struct {
	ID    string `json:"source_id"`
	Name  string `json:"source_name"`
	CDate string `json:"c_date"`
}

func (r *SourceResponse) FromModel(mod model.Source) {
	r.ID = mod.ID.String()
	r.Name = mod.Name
	r.CDate = mod.CDate
}

type GetSourcesResponse struct {
	Sources   []SourceResponse `json:"sources"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetSourcesResponse) FromModels(models []model.Source, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sources = make([]SourceResponse, len(models))
	for i, mod := range models {
		r.Sources[i].FromModel(mod)
	}
}
