package model

import gModel "plotdesk/shared/model"

const (
	EntityName = "helper"
	Endpoint   = "helper.php"

	FieldID             = "id"
	FieldName           = "name"
	FieldWhatsappNumber = "whatsapp_number"
	FieldNumber2        = "number_2"
	FieldEmail          = "email"
	FieldAddress        = "address"
	FieldRemark         = "remark"

	// FieldHelperType is the submit-side field name. The record reads back
	// as FieldType; the asymmetry is the upstream's, kept at the boundary.
	FieldHelperType = "helper_type"
	FieldType       = "type"
)

const (
	TypeDecoration = 1
	TypeCatering   = 2
)

// TypeLabel names a helper type for display. Legacy rows occasionally carry
// stray type values; those surface as "unknown" rather than being remapped.
func TypeLabel(helperType int) string {
	switch helperType {
	case TypeDecoration:
		return "decoration"
	case TypeCatering:
		return "catering"
	default:
		return "unknown"
	}
}

// Helper mirrors one record of the legacy helper list payload. Helpers are
// the caterers and decorators attached to bookings.
type Helper struct {
	ID             gModel.FlexString `json:"id"`
	Name           string            `json:"name"`
	Type           gModel.FlexString `json:"type"`
	WhatsappNumber string            `json:"whatsapp_number"`
	Number2        string            `json:"number_2"`
	Email          string            `json:"email"`
	Address        string            `json:"address"`
	Remark         string            `json:"remark"`
	CDate          string            `json:"c_date"`
}
