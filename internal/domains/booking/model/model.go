package model

import gModel "plotdesk/shared/model"

const (
	EntityName = "booking"
	Endpoint   = "booking.php"

	FieldID              = "id"
	FieldPartyPlotID     = "party_plot_id"
	FieldCateringID      = "catering_id"
	FieldDecoratorsID    = "decorators_id"
	FieldBookingDate     = "booking_date"
	FieldEventDate       = "event_date"
	FieldCustomerName    = "customer_name"
	FieldNumber          = "number"
	FieldFunctionName    = "function_name"
	FieldPrice           = "price"
	FieldBookedByUserID  = "booked_by_user_id"
	FieldBookingStatus   = "booking_status"
	FieldPaymentStatus   = "payment_status"
	FieldAdvanceAmount   = "advance_amount"
	FieldTotalGuests     = "total_guests"
	FieldSpecialRequests = "special_requirements"
	FieldPaymentMethod   = "payment_method"
	FieldTransactionMode = "transaction_mode"
	FieldTransactionNote = "transaction_remark"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPending = "pending"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Booking mirrors one record of the legacy booking list payload. Numeric
// columns arrive as strings or bare numbers depending on the endpoint's
// mood, hence FlexString.
type Booking struct {
	ID                  gModel.FlexString `json:"id"`
	PartyPlotID         gModel.FlexString `json:"party_plot_id"`
	PartyPlotName       string            `json:"party_plot_name"`
	CateringID          gModel.FlexString `json:"catering_id"`
	DecoratorsID        gModel.FlexString `json:"decorators_id"`
	BookingDate         string            `json:"booking_date"`
	EventDate           string            `json:"event_date"`
	CustomerName        string            `json:"customer_name"`
	Number              string            `json:"number"`
	FunctionName        string            `json:"function_name"`
	Price               gModel.FlexString `json:"price"`
	BookedByUserID      gModel.FlexString `json:"booked_by_user_id"`
	BookingStatus       string            `json:"booking_status"`
	PaymentStatus       string            `json:"payment_status"`
	AdvanceAmount       gModel.FlexString `json:"advance_amount"`
	TotalGuests         gModel.FlexString `json:"total_guests"`
	SpecialRequirements string            `json:"special_requirements"`
	PaymentMethod       string            `json:"payment_method"`
	TransactionMode     string            `json:"transaction_mode"`
	TransactionRemark   string            `json:"transaction_remark"`
}
