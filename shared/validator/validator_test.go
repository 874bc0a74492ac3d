package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	bookingDto "plotdesk/internal/domains/booking/model/dto"
	helperDto "plotdesk/internal/domains/helper/model/dto"
	partyplotDto "plotdesk/internal/domains/partyplot/model/dto"
	sourceDto "plotdesk/internal/domains/source/model/dto"
	"plotdesk/shared/validator"
)

func validBooking() bookingDto.CreateBookingRequest {
	return bookingDto.CreateBookingRequest{
		PartyPlotID:  "3",
		EventDate:    "2026-09-15",
		CustomerName: "Ramesh Patel",
		Number:       "9876543210",
		Price:        50000,
	}
}

func imageHeader(contentType string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "plot.jpg",
		Header:   textproto.MIMEHeader{"Content-Type": []string{contentType}},
		Size:     size,
	}
}

func validPartyPlot() partyplotDto.CreatePartyPlotRequest {
	return partyplotDto.CreatePartyPlotRequest{
		Name:    "Sunrise Lawn",
		Address: "Ring Road, Rajkot",
		Rent:    "45000",
		Images:  imageHeader("image/jpeg", 1024),
	}
}

func TestValidateBookingRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*bookingDto.CreateBookingRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(*bookingDto.CreateBookingRequest) {},
		},
		{
			name:    "missing party plot",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.PartyPlotID = "" },
			wantErr: "Party plot is required",
		},
		{
			name:    "missing event date",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.EventDate = "" },
			wantErr: "Event date is required",
		},
		{
			name:    "missing customer name",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.CustomerName = "" },
			wantErr: "Customer name is required",
		},
		{
			name:    "missing number",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.Number = "" },
			wantErr: "Contact number is required",
		},
		{
			name:    "number too short",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.Number = "987654321" },
			wantErr: "Please enter a valid 10-digit mobile number",
		},
		{
			name:    "number too long",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.Number = "98765432109" },
			wantErr: "Please enter a valid 10-digit mobile number",
		},
		{
			// only whitespace is stripped before the digit check
			name:   "number with spaces",
			mutate: func(r *bookingDto.CreateBookingRequest) { r.Number = "98765 43210" },
		},
		{
			name:    "number with hyphens",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.Number = "987-654-3210" },
			wantErr: "Please enter a valid 10-digit mobile number",
		},
		{
			name:    "negative price",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.Price = -1 },
			wantErr: "Price must be greater than 0",
		},
		{
			name: "advance above price",
			mutate: func(r *bookingDto.CreateBookingRequest) {
				r.Price = 50000
				r.AdvanceAmount = 60000
			},
			wantErr: "Advance cannot exceed total price",
		},
		{
			name: "advance equal to price",
			mutate: func(r *bookingDto.CreateBookingRequest) {
				r.Price = 50000
				r.AdvanceAmount = 50000
			},
		},
		{
			name:    "unknown booking status",
			mutate:  func(r *bookingDto.CreateBookingRequest) { r.BookingStatus = "done" },
			wantErr: "booking_status must be one of pending confirmed cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHelperRequest(t *testing.T) {
	valid := func() helperDto.CreateHelperRequest {
		return helperDto.CreateHelperRequest{
			Name:           "Shree Caterers",
			Type:           2,
			WhatsappNumber: "9876543210",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*helperDto.CreateHelperRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(*helperDto.CreateHelperRequest) {},
		},
		{
			// helper name and party plot name share the wire field but not
			// the message
			name:    "missing name",
			mutate:  func(r *helperDto.CreateHelperRequest) { r.Name = "" },
			wantErr: "Name is required",
		},
		{
			name:    "type outside the enum",
			mutate:  func(r *helperDto.CreateHelperRequest) { r.Type = 3 },
			wantErr: "type must be one of 1 2",
		},
		{
			name:    "missing whatsapp number",
			mutate:  func(r *helperDto.CreateHelperRequest) { r.WhatsappNumber = "" },
			wantErr: "WhatsApp number is required",
		},
		{
			name:    "secondary number malformed",
			mutate:  func(r *helperDto.CreateHelperRequest) { r.Number2 = "12345" },
			wantErr: "Please enter a valid 10-digit mobile number",
		},
		{
			name:   "secondary number omitted",
			mutate: func(r *helperDto.CreateHelperRequest) { r.Number2 = "" },
		},
		{
			name:    "bad email",
			mutate:  func(r *helperDto.CreateHelperRequest) { r.Email = "not-an-email" },
			wantErr: "Please enter a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePartyPlotRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*partyplotDto.CreatePartyPlotRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(*partyplotDto.CreatePartyPlotRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *partyplotDto.CreatePartyPlotRequest) { r.Name = "" },
			wantErr: "Party plot name is required",
		},
		{
			name:    "missing address",
			mutate:  func(r *partyplotDto.CreatePartyPlotRequest) { r.Address = "" },
			wantErr: "Address is required",
		},
		{
			name:    "missing rent",
			mutate:  func(r *partyplotDto.CreatePartyPlotRequest) { r.Rent = "" },
			wantErr: "Rent amount is required",
		},
		{
			name:    "non-numeric rent",
			mutate:  func(r *partyplotDto.CreatePartyPlotRequest) { r.Rent = "forty five" },
			wantErr: "Please enter a valid rent amount",
		},
		{
			name:    "missing image",
			mutate:  func(r *partyplotDto.CreatePartyPlotRequest) { r.Images = nil },
			wantErr: "Please upload at least one image",
		},
		{
			name: "non-image upload",
			mutate: func(r *partyplotDto.CreatePartyPlotRequest) {
				r.Images = imageHeader("application/pdf", 1024)
			},
			wantErr: "Please upload a valid image file (JPG, PNG, GIF, WEBP)",
		},
		{
			name: "oversized image",
			mutate: func(r *partyplotDto.CreatePartyPlotRequest) {
				r.Images = imageHeader("image/png", 6<<20)
			},
			wantErr: "Image size should be less than 5MB",
		},
		{
			name: "webp accepted",
			mutate: func(r *partyplotDto.CreatePartyPlotRequest) {
				r.Images = imageHeader("image/webp", 1024)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPartyPlot()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePartyPlotUpdateSkipsImage(t *testing.T) {
	req := partyplotDto.UpdatePartyPlotRequest{
		Name:    "Sunrise Lawn",
		Address: "Ring Road, Rajkot",
		Rent:    "45000",
	}

	assert.NoError(t, validator.ValidateStruct(&req), "update without a new image keeps the stored one")
}

func TestValidateReader(t *testing.T) {
	t.Run("decodes and validates", func(t *testing.T) {
		body := `{"source_name":"Instagram"}`

		var req sourceDto.CreateSourceRequest
		err := validator.Validate(strings.NewReader(body), &req)

		assert.NoError(t, err)
		assert.Equal(t, "Instagram", req.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		var req sourceDto.CreateSourceRequest
		err := validator.Validate(strings.NewReader(`{"source_name":`), &req)

		assert.Error(t, err)
	})

	t.Run("missing source name", func(t *testing.T) {
		var req sourceDto.CreateSourceRequest
		err := validator.Validate(strings.NewReader(`{}`), &req)

		assert.EqualError(t, err, "Source name is required")
	})
}
