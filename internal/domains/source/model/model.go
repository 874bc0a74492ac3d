package model

import gModel "plotdesk/shared/model"

const (
	EntityName = "source"
	Endpoint   = "source.php"

	// Source rows are keyed by source_id, not id.
	FieldID   = "source_id"
	FieldName = "source_name"
)

// Source mirrors one record of the legacy lead source payload. c_date is
// assigned by the upstream on create.
type Source struct {
	ID    gModel.FlexString `json:"source_id"`
	Name  string            `json:"source_name"`
	CDate string            `json:"c_date"`
}
