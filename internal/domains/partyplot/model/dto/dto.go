package dto

import (
	"fmt"
	"io"
	"mime/multipart"
	"plotdesk/infras/upstream"
	"plotdesk/internal/domains/partyplot/model"
	"plotdesk/shared"
	"plotdesk/shared/constant"
)

type CreatePartyPlotRequest struct {
	Name             string                `json:"name" validate:"required,max=255"`
	Address          string                `json:"address" validate:"required"`
	Rent             string                `json:"rent" validate:"required,numeric"`
	PloteSize        string                `json:"plote_size" validate:"omitempty"`
	PlotePeropelSize string                `json:"plote_peropel_size" validate:"omitempty"`
	LongDescription  string                `json:"long_description" validate:"omitempty"`
	Images           *multipart.FileHeader `json:"images" swaggerignore:"true" validate:"required,maxfilesize=5,mimetypes=image/jpeg image/jpg image/png image/gif image/webp"`
	ImagesFile       multipart.File        `json:"-"`
}

func (c *CreatePartyPlotRequest) FormFields() map[string]string {
	return map[string]string{
		model.FieldName:             c.Name,
		model.FieldAddress:          c.Address,
		model.FieldRent:             c.Rent,
		model.FieldPloteSize:        c.PloteSize,
		model.FieldPlotePeropelSize: c.PlotePeropelSize,
		model.FieldLongDescription:  c.LongDescription,
	}
}

// ImageFile packages the uploaded image for the wire post. The boolean is
// false when no file was attached, which is only legal on update.
func (c *CreatePartyPlotRequest) ImageFile() (upstream.File, bool, error) {
	if c.Images == nil || c.ImagesFile == nil {
		return upstream.File{}, false, nil
	}

	content, err := io.ReadAll(c.ImagesFile)
	if err != nil {
		return upstream.File{}, false, fmt.Errorf("failed to read uploaded image: %w", err)
	}

	return upstream.File{
		Field:       model.FieldImages,
		Filename:    c.Images.Filename,
		ContentType: c.Images.Header.Get(constant.RequestHeaderContentType),
		Content:     content,
	}, true, nil
}

// UpdatePartyPlotRequest mirrors create except the image is optional: when
// absent the upstream keeps the stored one.
type UpdatePartyPlotRequest struct {
	Name             string                `json:"name" validate:"required,max=255"`
	Address          string                `json:"address" validate:"required"`
	Rent             string                `json:"rent" validate:"required,numeric"`
	PloteSize        string                `json:"plote_size" validate:"omitempty"`
	PlotePeropelSize string                `json:"plote_peropel_size" validate:"omitempty"`
	LongDescription  string                `json:"long_description" validate:"omitempty"`
	Images           *multipart.FileHeader `json:"images" swaggerignore:"true" validate:"omitempty,maxfilesize=5,mimetypes=image/jpeg image/jpg image/png image/gif image/webp"`
	ImagesFile       multipart.File        `json:"-"`
}

func (u *UpdatePartyPlotRequest) FormFields() map[string]string {
	return (&CreatePartyPlotRequest{
		Name:             u.Name,
		Address:          u.Address,
		Rent:             u.Rent,
		PloteSize:        u.PloteSize,
		PlotePeropelSize: u.PlotePeropelSize,
		LongDescription:  u.LongDescription,
	}).FormFields()
}

func (u *UpdatePartyPlotRequest) ImageFile() (upstream.File, bool, error) {
	return (&CreatePartyPlotRequest{Images: u.Images, ImagesFile: u.ImagesFile}).ImageFile()
}

type PartyPlotResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Rent             float64 `json:"rent"`
	PloteSize        string  `json:"plote_size"`
	PlotePeropelSize string  `json:"plote_peropel_size"`
	LongDescription  string  `json:"long_description"`
	Images           string  `json:"images"`
}

func (r *PartyPlotResponse) FromModel(mod model.PartyPlot) {
	r.ID = mod.ID.String()
	r.Name = mod.Name
	r.Address = mod.Address
	r.Rent = mod.Rent.Float()
	r.PloteSize = mod.PloteSize
	r.PlotePeropelSize = mod.PlotePeropelSize.String()
	r.LongDescription = mod.LongDescription
	r.Images = mod.Images
}

type GetPartyPlotsResponse struct {
	PartyPlots []PartyPlotResponse `json:"party_plots"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetPartyPlotsResponse) FromModels(models []model.PartyPlot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PartyPlots = make([]PartyPlotResponse, len(models))
	for i, mod := range models {
		r.PartyPlots[i].FromModel(mod)
	}
}
