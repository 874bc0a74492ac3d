package dto

import (
	"plotdesk/internal/domains/employee/model"
	"plotdesk/shared"
	"plotdesk/shared/constant"
	"strconv"
)

type CreateEmployeeRequest struct {
	Name     string `json:"employee_name" validate:"required,max=255"`
	Code     string `json:"employee_code" validate:"required,max=255"`
	Mobile   string `json:"employee_mobile" validate:"required,tendigit"`
	Email    string `json:"employee_email" validate:"omitempty,email"`
	Password string `json:"employee_password" validate:"required"`
	Status   *int   `json:"employee_status" validate:"omitempty,oneof=0 1"`
}

func (c *CreateEmployeeRequest) FormFields(companyID string) map[string]string {
	fields := map[string]string{
		model.FieldName:     c.Name,
		model.FieldCode:     c.Code,
		model.FieldMobile:   c.Mobile,
		model.FieldEmail:    c.Email,
		model.FieldPassword: c.Password,
		model.FieldStatus:   strconv.Itoa(statusOrActive(c.Status)),
	}
	fields[constant.UpstreamFieldCompanyID] = companyID

	return fields
}

// UpdateEmployeeRequest differs from create in one rule: the password is
// optional, and when blank it is left out of the form post entirely so the
// upstream keeps the current one.
type UpdateEmployeeRequest struct {
	Name     string `json:"employee_name" validate:"required,max=255"`
	Code     string `json:"employee_code" validate:"required,max=255"`
	Mobile   string `json:"employee_mobile" validate:"required,tendigit"`
	Email    string `json:"employee_email" validate:"omitempty,email"`
	Password string `json:"employee_password" validate:"omitempty"`
	Status   *int   `json:"employee_status" validate:"omitempty,oneof=0 1"`
}

func (u *UpdateEmployeeRequest) FormFields(companyID string) map[string]string {
	fields := map[string]string{
		model.FieldName:   u.Name,
		model.FieldCode:   u.Code,
		model.FieldMobile: u.Mobile,
		model.FieldEmail:  u.Email,
		model.FieldStatus: strconv.Itoa(statusOrActive(u.Status)),
	}
	fields[constant.UpstreamFieldCompanyID] = companyID

	if u.Password != "" {
		fields[model.FieldPassword] = u.Password
	}

	return fields
}

func statusOrActive(status *int) int {
	if status == nil {
		return model.StatusActive
	}

	return *status
}

type EmployeeResponse struct {
	ID     string `json:"id"`
	Name   string `json:"employee_name"`
	Code   string `json:"employee_code"`
	Mobile string `json:"employee_mobile"`
	Email  string `json:"employee_email"`
	Status int    `json:"employee_status"`
	// Password is always empty: the upstream never returns one and the
	// edit form starts blank.
	Password string `json:"employee_password"`
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID.String()
	r.Name = model.Name
	r.Code = model.Code
	r.Mobile = model.Mobile
	r.Email = model.Email
	r.Status = model.Status.Int()
	r.Password = ""
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
