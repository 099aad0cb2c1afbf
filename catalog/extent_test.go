package catalog

import (
	"strings"
	"testing"
)

func TestParseExtent(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorMsg    string
		want        BoundingBox
	}{
		{
			name:  "valid extent",
			input: "-105.1,39.9,-104.9,40.1",
			want:  BoundingBox{XMin: -105.1, YMin: 39.9, XMax: -104.9, YMax: 40.1},
		},
		{
			name:  "valid extent with spaces",
			input: " -105.1, 39.9, -104.9, 40.1 ",
			want:  BoundingBox{XMin: -105.1, YMin: 39.9, XMax: -104.9, YMax: 40.1},
		},
		{
			name:        "wrong number of values",
			input:       "-105.1,39.9,-104.9",
			expectError: true,
			errorMsg:    "not in expected format",
		},
		{
			name:        "non-numeric value",
			input:       "-105.1,north,-104.9,40.1",
			expectError: true,
			errorMsg:    "non-numeric value",
		},
		{
			name:        "xmin out of range",
			input:       "-200,39.9,-104.9,40.1",
			expectError: true,
			errorMsg:    "xmin -200 must be between -180 and 180",
		},
		{
			name:        "xmax out of range",
			input:       "-105.1,39.9,181,40.1",
			expectError: true,
			errorMsg:    "xmax 181 must be between -180 and 180",
		},
		{
			name:        "ymin out of range",
			input:       "-105.1,-91,-104.9,40.1",
			expectError: true,
			errorMsg:    "ymin -91 must be between -90 and 90",
		},
		{
			name:        "ymax out of range",
			input:       "-105.1,39.9,-104.9,90.5",
			expectError: true,
			errorMsg:    "ymax 90.5 must be between -90 and 90",
		},
		{
			name:        "xmin greater than xmax",
			input:       "-104.9,39.9,-105.1,40.1",
			expectError: true,
			errorMsg:    "can't be greater than xmax",
		},
		{
			name:        "ymin greater than ymax",
			input:       "-105.1,40.1,-104.9,39.9",
			expectError: true,
			errorMsg:    "can't be greater than ymax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bbox, err := ParseExtent(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("expected error but got none")
					return
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}

			if err != nil {
				t.Errorf("expected no error but got: %v", err)
				return
			}
			if bbox != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, bbox)
			}
		})
	}
}

func TestBoundingBox_String(t *testing.T) {
	bbox := BoundingBox{XMin: -105.1, YMin: 39.9, XMax: -104.9, YMax: 40.1}
	want := "-105.1,39.9,-104.9,40.1"
	if got := bbox.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
