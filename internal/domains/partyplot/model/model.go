package model

import gModel "plotdesk/shared/model"

const (
	EntityName = "partyplot"
	Endpoint   = "party_plot.php"

	FieldID               = "id"
	FieldName             = "name"
	FieldAddress          = "address"
	FieldRent             = "rent"
	FieldPloteSize        = "plote_size"
	FieldPlotePeropelSize = "plote_peropel_size"
	FieldLongDescription  = "long_description"

	// FieldImages carries a single file on submit and a URL string on read.
	// The misspelled size fields are the upstream's column names.
	FieldImages = "images"
)

// PartyPlot mirrors one record of the legacy party plot list payload.
type PartyPlot struct {
	ID               gModel.FlexString `json:"id"`
	Name             string            `json:"name"`
	Address          string            `json:"address"`
	Rent             gModel.FlexString `json:"rent"`
	PloteSize        string            `json:"plote_size"`
	PlotePeropelSize gModel.FlexString `json:"plote_peropel_size"`
	LongDescription  string            `json:"long_description"`
	Images           string            `json:"images"`
}
