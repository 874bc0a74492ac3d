package timezone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"plotdesk/shared/timezone"
)

func TestDateOnly(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"already date only", "2026-09-15", "2026-09-15"},
		{"date with time", "2026-09-15 14:30:00", "2026-09-15"},
		{"rfc3339", "2026-09-15T14:30:00Z", "2026-09-15"},
		{"empty", "", ""},
		{"unparseable passes through", "15/09/2026", "15/09/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, timezone.DateOnly(tt.value))
		})
	}
}
