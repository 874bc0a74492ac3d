package dto

import (
	"plotdesk/internal/domains/booking/model"
	"plotdesk/shared"
	"plotdesk/shared/constant"
	"plotdesk/shared/timezone"
	"strconv"
)

type CreateBookingRequest struct {
	PartyPlotID         string  `json:"party_plot_id" validate:"required"`
	CateringID          string  `json:"catering_id" validate:"omitempty"`
	DecoratorsID        string  `json:"decorators_id" validate:"omitempty"`
	BookingDate         string  `json:"booking_date" validate:"omitempty"`
	EventDate           string  `json:"event_date" validate:"required"`
	CustomerName        string  `json:"customer_name" validate:"required,max=255"`
	Number              string  `json:"number" validate:"required,tendigit"`
	FunctionName        string  `json:"function_name" validate:"omitempty,max=255"`
	Price               float64 `json:"price" validate:"required,gt=0"`
	BookedByUserID      string  `json:"booked_by_user_id" validate:"omitempty"`
	BookingStatus       string  `json:"booking_status" validate:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus       string  `json:"payment_status" validate:"omitempty,oneof=pending partial paid"`
	AdvanceAmount       float64 `json:"advance_amount" validate:"omitempty,gte=0,ltefield=Price"`
	TotalGuests         int     `json:"total_guests" validate:"omitempty,gte=0"`
	SpecialRequirements string  `json:"special_requirements" validate:"omitempty"`
	PaymentMethod       string  `json:"payment_method" validate:"omitempty"`
	TransactionMode     string  `json:"transaction_mode" validate:"omitempty"`
	TransactionRemark   string  `json:"transaction_remark" validate:"omitempty"`
}

// FormFields builds the wire form for a create or update post. The form
// always carries every column: the legacy endpoint overwrites the full row.
// Blank statuses fall back to the form defaults the original console
// submitted, and booked_by_user_id falls back to the configured operator.
func (c *CreateBookingRequest) FormFields(defaultUser string) map[string]string {
	bookingDate := c.BookingDate
	if bookingDate == "" {
		bookingDate = timezone.Format(timezone.Now(), constant.DateOnlyFormat)
	}

	bookedBy := c.BookedByUserID
	if bookedBy == "" {
		bookedBy = defaultUser
	}

	bookingStatus := c.BookingStatus
	if bookingStatus == "" {
		bookingStatus = model.BookingStatusPending
	}

	paymentStatus := c.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.PaymentStatusPending
	}

	return map[string]string{
		model.FieldPartyPlotID:     c.PartyPlotID,
		model.FieldCateringID:      c.CateringID,
		model.FieldDecoratorsID:    c.DecoratorsID,
		model.FieldBookingDate:     bookingDate,
		model.FieldEventDate:       c.EventDate,
		model.FieldCustomerName:    c.CustomerName,
		model.FieldNumber:          c.Number,
		model.FieldFunctionName:    c.FunctionName,
		model.FieldPrice:           strconv.FormatFloat(c.Price, 'f', -1, 64),
		model.FieldBookedByUserID:  bookedBy,
		model.FieldBookingStatus:   bookingStatus,
		model.FieldPaymentStatus:   paymentStatus,
		model.FieldAdvanceAmount:   strconv.FormatFloat(c.AdvanceAmount, 'f', -1, 64),
		model.FieldTotalGuests:     strconv.Itoa(c.TotalGuests),
		model.FieldSpecialRequests: c.SpecialRequirements,
		model.FieldPaymentMethod:   c.PaymentMethod,
		model.FieldTransactionMode: c.TransactionMode,
		model.FieldTransactionNote: c.TransactionRemark,
	}
}

// UpdateBookingRequest shares the create rule table: the legacy console ran
// the same validation for add and edit.
type UpdateBookingRequest = CreateBookingRequest

type BookingResponse struct {
	ID                  string  `json:"id"`
	PartyPlotID         string  `json:"party_plot_id"`
	PartyPlotName       string  `json:"party_plot_name"`
	CateringID          string  `json:"catering_id"`
	DecoratorsID        string  `json:"decorators_id"`
	BookingDate         string  `json:"booking_date"`
	EventDate           string  `json:"event_date"`
	CustomerName        string  `json:"customer_name"`
	Number              string  `json:"number"`
	FunctionName        string  `json:"function_name"`
	Price               float64 `json:"price"`
	BookedByUserID      string  `json:"booked_by_user_id"`
	BookingStatus       string  `json:"booking_status"`
	PaymentStatus       string  `json:"payment_status"`
	AdvanceAmount       float64 `json:"advance_amount"`
	TotalGuests         int     `json:"total_guests"`
	SpecialRequirements string  `json:"special_requirements"`
	PaymentMethod       string  `json:"payment_method"`
	TransactionMode     string  `json:"transaction_mode"`
	TransactionRemark   string  `json:"transaction_remark"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID.String()
	r.PartyPlotID = model.PartyPlotID.String()
	r.PartyPlotName = model.PartyPlotName
	r.CateringID = model.CateringID.String()
	r.DecoratorsID = model.DecoratorsID.String()
	r.BookingDate = model.BookingDate
	r.EventDate = model.EventDate
	r.CustomerName = model.CustomerName
	r.Number = model.Number
	r.FunctionName = model.FunctionName
	r.Price = model.Price.Float()
	r.BookedByUserID = model.BookedByUserID.String()
	r.BookingStatus = model.BookingStatus
	r.PaymentStatus = model.PaymentStatus
	r.AdvanceAmount = model.AdvanceAmount.Float()
	r.TotalGuests = model.TotalGuests.Int()
	r.SpecialRequirements = model.SpecialRequirements
	r.PaymentMethod = model.PaymentMethod
	r.TransactionMode = model.TransactionMode
	r.TransactionRemark = model.TransactionRemark
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
