package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	v := NewValidator()

	full := map[string]interface{}{
		"id": "1", "datetime": "", "sender": "", "subject": "", "attachment": "", "text": "",
	}
	withExtra := map[string]interface{}{
		"id": nil, "datetime": nil, "sender": nil, "subject": nil, "attachment": nil, "text": nil, "label": "spam",
	}
	missingText := map[string]interface{}{
		"id": "1", "datetime": "", "sender": "", "subject": "", "attachment": "",
	}

	tests := []struct {
		name    string
		value   interface{}
		valid   bool
		message string
	}{
		{"all fields", full, true, ""},
		{"null values and extra keys", withExtra, true, ""},
		{"missing key", missingText, false, "missing fields text"},
		{"empty object", map[string]interface{}{}, false, "missing fields id, datetime, sender, subject, attachment, text"},
		{"null", nil, false, "got null"},
		{"array", []interface{}{full}, false, "got array"},
		{"string", "hello", false, "got string"},
		{"typed nil map", map[string]interface{}(nil), false, "got null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := v.Validate(tt.value)
			if tt.valid {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if record == nil {
					t.Fatal("expected record")
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("error %v does not wrap ErrInvalidRecord", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
			if v.IsValid(tt.value) {
				t.Error("IsValid disagrees with Validate")
			}
		})
	}
}
