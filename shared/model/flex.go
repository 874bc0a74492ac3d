package model

import (
	"encoding/json"
	"strconv"
)

// FlexString decodes a JSON scalar that the legacy API emits sometimes as a
// string and sometimes as a bare number ("1" vs 1). It always marshals back
// as a string, which is what the admin clients expect.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""

		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*f = FlexString(s)

		return nil
	}

	*f = FlexString(data)

	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexString) String() string {
	return string(f)
}

// Int returns the numeric value, or 0 when the field is empty or junk.
func (f FlexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}

	return n
}

// Float returns the numeric value, or 0 when the field is empty or junk.
func (f FlexString) Float() float64 {
	n, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0
	}

	return n
}
