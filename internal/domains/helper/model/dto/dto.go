package dto

import (
	"plotdesk/internal/domains/helper/model"
	"plotdesk/shared"
	"strconv"

	"github.com/rs/zerolog/log"
)

type CreateHelperRequest struct {
	Name           string `json:"name" validate:"required,max=255"`
	Type           int    `json:"type" validate:"required,oneof=1 2"`
	WhatsappNumber string `json:"whatsapp_number" validate:"required,tendigit"`
	Number2        string `json:"number_2" validate:"omitempty,tendigit"`
	Email          string `json:"email" validate:"omitempty,email"`
	Address        string `json:"address" validate:"omitempty"`
	Remark         string `json:"remark" validate:"omitempty"`
}

func (c *CreateHelperRequest) FormFields() map[string]string {
	return map[string]string{
		model.FieldName:           c.Name,
		model.FieldHelperType:     strconv.Itoa(c.Type),
		model.FieldWhatsappNumber: c.WhatsappNumber,
		model.FieldNumber2:        c.Number2,
		model.FieldEmail:          c.Email,
		model.FieldAddress:        c.Address,
		model.FieldRemark:         c.Remark,
	}
}

// UpdateHelperRequest shares the create rule table.
type UpdateHelperRequest = CreateHelperRequest

type HelperResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Type           int    `json:"type"`
	TypeLabel      string `json:"type_label"`
	WhatsappNumber string `json:"whatsapp_number"`
	Number2        string `json:"number_2"`
	Email          string `json:"email"`
	Address        string `json:"address"`
	Remark         string `json:"remark"`
	CDate          string `json:"c_date"`
}

func (r *HelperResponse) FromModel(mod model.Helper) {
	r.ID = mod.ID.String()
	r.Name = mod.Name
	r.Type = mod.Type.Int()
	r.TypeLabel = model.TypeLabel(r.Type)
	r.WhatsappNumber = mod.WhatsappNumber
	r.Number2 = mod.Number2
	r.Email = mod.Email
	r.Address = mod.Address
	r.Remark = mod.Remark
	r.CDate = mod.CDate

	if r.TypeLabel == "unknown" {
		log.Warn().Str("id", r.ID).Int("type", r.Type).Msg("helper record carries unknown type")
	}
}

type GetHelpersResponse struct {
	Helpers   []HelperResponse `json:"helpers"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetHelpersResponse) FromModels(models []model.Helper, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Helpers = make([]HelperResponse, len(models))
	for i, mod := range models {
		r.Helpers[i].FromModel(mod)
	}
}
