package core

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks that a decoded value is a usable email record
type Validator struct {
	required []string
}

// NewValidator creates a validator for RequiredFields
func NewValidator() *Validator {
	return &Validator{required: RequiredFields}
}

// Validate returns the record if value is a JSON object carrying every
// required key. Only presence is checked, not type or content.
func (v *Validator) Validate(value interface{}) (EmailRecord, error) {
	var record EmailRecord
	switch m := value.(type) {
	case map[string]interface{}:
		record = m
	case EmailRecord:
		record = m
	default:
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrInvalidRecord, describe(value))
	}
	if record == nil {
		return nil, fmt.Errorf("%w: expected a JSON object, got null", ErrInvalidRecord)
	}

	var missing []string
	for _, field := range v.required {
		if _, ok := record[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields %s", ErrInvalidRecord, strings.Join(missing, ", "))
	}

	return record, nil
}

// IsValid reports whether Validate would accept value
func (v *Validator) IsValid(value interface{}) bool {
	_, err := v.Validate(value)
	return err == nil
}

func describe(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", value)
	}
}
