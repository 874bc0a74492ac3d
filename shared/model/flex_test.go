package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"plotdesk/shared/model"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want model.FlexString
	}{
		{"quoted string", `"42"`, "42"},
		{"bare number", `42`, "42"},
		{"bare float", `42.5`, "42.5"},
		{"null", `null`, ""},
		{"empty string", `""`, ""},
		{"text", `"pending"`, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f model.FlexString
			err := json.Unmarshal([]byte(tt.json), &f)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestFlexStringMarshal(t *testing.T) {
	record := struct {
		ID model.FlexString `json:"id"`
	}{ID: "7"}

	data, err := json.Marshal(record)

	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":"7"}`, string(data))
}

func TestFlexStringConversions(t *testing.T) {
	assert.Equal(t, 42, model.FlexString("42").Int())
	assert.Equal(t, 0, model.FlexString("").Int())
	assert.Equal(t, 0, model.FlexString("abc").Int())

	assert.InDelta(t, 42.5, model.FlexString("42.5").Float(), 0.0001)
	assert.Zero(t, model.FlexString("").Float())
	assert.Zero(t, model.FlexString("abc").Float())
}
