package employee

import (
	"net/http"
	"plotdesk/infras/otel"
	"plotdesk/internal/domains/employee/model"
	"plotdesk/internal/domains/employee/model/dto"
	"plotdesk/internal/domains/employee/service"
	"plotdesk/shared/constant"
	gDto "plotdesk/shared/dto"
	"plotdesk/shared/validator"
	"plotdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/active", handler.GetActiveEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

// CreateEmployee handles the creation of a new employee.
// @Summary Create a new employee
// @Description Create a new employee with the provided details. Password is required on create.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateEmployeeRequest true "Create Employee Request"
// @Success 201 {object} response.Message "Employee created successfully"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/employees [post]
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithMessage(writer, http.StatusCreated, "Employee created successfully")
}

// GetEmployees retrieves employees with filtering and pagination.
// @Summary Get all employees
// @Description Retrieve employees with free-text search, status filter and pagination.
// @Tags Employee
// @Accept json
// @Produce json
// @Param search query string false "Search by name, code, mobile or email"
// @Param employee_status query int false "Filter by status" Enums(0, 1)
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.GetEmployeesResponse "List of employees"
// @Failure 502 {object} response.Error
// @Router /v1/employees [get]
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	criteria := service.BuildCriteria(queryParams.Search, r.URL.Query().Get(model.FieldStatus))

	employees, err := handler.service.GetAll(ctx, queryParams, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employees retrieved successfully")

	response.WithJSON(w, http.StatusOK, employees)
}

// GetActiveEmployees retrieves active employees for dropdowns.
// @Summary Get active employees
// @Description Retrieve every active employee, unpaginated. Used by the booking form's booked-by dropdown.
// @Tags Employee
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetEmployeesResponse "List of active employees"
// @Failure 502 {object} response.Error
// @Router /v1/employees/active [get]
func (handler *Handler) GetActiveEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveEmployees")
	defer scope.End()

	employees, err := handler.service.GetActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active employees")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Active employees retrieved successfully")

	response.WithJSON(w, http.StatusOK, employees)
}

// GetEmployeeByID retrieves an employee by its ID.
// @Summary Get an employee by ID
// @Description Retrieve an employee by its unique identifier. The password field is always empty.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse "Employee details"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/employees/{id} [get]
func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee retrieved successfully")

	response.WithJSON(w, http.StatusOK, employee)
}

// UpdateEmployee updates an existing employee by its ID.
// @Summary Update an employee by ID
// @Description Update an employee. A blank password keeps the current one.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateEmployeeRequest true "Update Employee Request"
// @Success 200 {object} response.Message "Employee updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/employees/{id} [patch]
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated successfully")

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee deletes an employee by its ID.
// @Summary Delete an employee by ID
// @Description Delete an employee using its unique identifier.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/employees/{id} [delete]
func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deleted successfully")

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
