package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gt":       "{field} must be greater than {param}",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "Please enter a valid email address",
		"tendigit": "Please enter a valid 10-digit mobile number",
	}

	// fieldMessages override the generic tag message for fields whose exact
	// wording the admin clients display verbatim. Keyed by "<field>.<tag>".
	fieldMessages = map[string]string{
		"party_plot_id.required":     "Party plot is required",
		"event_date.required":        "Event date is required",
		"customer_name.required":     "Customer name is required",
		"number.required":            "Contact number is required",
		"price.gt":                   "Price must be greater than 0",
		"advance_amount.ltefield":    "Advance cannot exceed total price",
		"employee_name.required":     "Employee name is required",
		"employee_mobile.required":   "Mobile number is required",
		"employee_code.required":     "Employee code is required",
		"employee_password.required": "Password is required",
		"whatsapp_number.required":   "WhatsApp number is required",
		"address.required":           "Address is required",
		"rent.required":              "Rent amount is required",
		"rent.numeric":               "Please enter a valid rent amount",
		"rent.gt":                    "Please enter a valid rent amount",
		"images.required":            "Please upload at least one image",
		"images.mimetypes":           "Please upload a valid image file (JPG, PNG, GIF, WEBP)",
		"images.maxfilesize":         "Image size should be less than 5MB",
		"source_name.required":       "Source name is required",
	}

	// structMessages disambiguate fields that share a wire name across
	// entities. Keyed by "<struct>.<field>.<tag>".
	structMessages = map[string]string{
		"CreatePartyPlotRequest.name.required": "Party plot name is required",
		"UpdatePartyPlotRequest.name.required": "Party plot name is required",
		"CreateHelperRequest.name.required":    "Name is required",
		"UpdateHelperRequest.name.required":    "Name is required",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()
			tag := valErr.Tag()

			if msg, ok := structMessages[valErr.Namespace()+"."+tag]; ok {
				return msg
			}

			if msg, ok := fieldMessages[field+"."+tag]; ok {
				return msg
			}

			errStr := messages[tag]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
