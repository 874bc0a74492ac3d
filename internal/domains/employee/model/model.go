package model

import gModel "plotdesk/shared/model"

const (
	EntityName = "employee"
	Endpoint   = "employee.php"

	FieldID       = "id"
	FieldName     = "employee_name"
	FieldCode     = "employee_code"
	FieldMobile   = "employee_mobile"
	FieldEmail    = "employee_email"
	FieldPassword = "employee_password"
	FieldStatus   = "employee_status"
)

const (
	StatusInactive = 0
	StatusActive   = 1
)

// Employee mirrors one record of the legacy employee list payload.
type Employee struct {
	ID        gModel.FlexString `json:"id"`
	Name      string            `json:"employee_name"`
	Code      string            `json:"employee_code"`
	Mobile    string            `json:"employee_mobile"`
	Email     string            `json:"employee_email"`
	CompanyID gModel.FlexString `json:"company_id"`
	Status    gModel.FlexString `json:"employee_status"`
}
