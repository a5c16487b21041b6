package shared_test

import (
	"estetica/shared"
	"estetica/shared/constant"
	"estetica/shared/dto"
	"testing"
	"time"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "remainder rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "total smaller than limit",
			total:    3,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	filterGroup := shared.FilterByID("appt-1", "id", "appointments")

	if len(filterGroup.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(filterGroup.Filters))
	}

	filter, ok := filterGroup.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", filterGroup.Filters[0])
	}

	if filter.Field != "id" || filter.Value != "appt-1" || filter.Table != "appointments" {
		t.Errorf("unexpected filter contents: %+v", filter)
	}
	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected eq operator, got %s", filter.Operator)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "appointments",
			parts:    nil,
			expected: "appointments",
		},
		{
			name:     "prefix with parts",
			prefix:   "appointments",
			parts:    []string{"appt-1", "detail"},
			expected: "appointments:appt-1:detail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name  string  `db:"name"`
		Notes string  `db:"notes"`
		Price float64 `db:"price"`
	}

	fields := shared.TransformFields(updateRequest{Name: "Limpeza de Pele", Price: 180}, "user-1")

	if fields["name"] != "Limpeza de Pele" {
		t.Errorf("expected name to be set, got %v", fields["name"])
	}
	if fields["price"] != 180.0 {
		t.Errorf("expected price to be set, got %v", fields["price"])
	}
	if _, ok := fields["notes"]; ok {
		t.Error("expected zero-valued notes to be skipped")
	}
	if fields[constant.FieldModifiedBy] != "user-1" {
		t.Errorf("expected modified_by to be user-1, got %v", fields[constant.FieldModifiedBy])
	}
	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}
