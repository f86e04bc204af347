package meta

import (
	"math"
	"testing"
)

func TestConvertDMSToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		degrees  float64
		minutes  float64
		seconds  float64
		ref      string
		expected float64
	}{
		{
			name:     "Northern latitude",
			degrees:  60, minutes: 10, seconds: 30,
			ref:      "N",
			expected: 60.175,
		},
		{
			name:     "Southern latitude is negative",
			degrees:  33, minutes: 52, seconds: 0,
			ref:      "S",
			expected: -33.866667,
		},
		{
			name:     "Western longitude is negative",
			degrees:  122, minutes: 25, seconds: 9,
			ref:      "W",
			expected: -122.419167,
		},
		{
			name:     "Eastern longitude",
			degrees:  24, minutes: 56, seconds: 15,
			ref:      "E",
			expected: 24.9375,
		},
		{
			name:     "Lowercase ref",
			degrees:  10, minutes: 0, seconds: 0,
			ref:      "s",
			expected: -10,
		},
		{
			name:     "Empty ref keeps sign",
			degrees:  45, minutes: 30, seconds: 0,
			ref:      "",
			expected: 45.5,
		},
		{
			name:     "Zero coordinates",
			degrees:  0, minutes: 0, seconds: 0,
			ref:      "N",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertDMSToDecimal(tt.degrees, tt.minutes, tt.seconds, tt.ref)
			if math.Abs(got-tt.expected) > 0.0001 {
				t.Errorf("ConvertDMSToDecimal() = %f, expected %f", got, tt.expected)
			}
		})
	}
}

func TestNewGPSPosition(t *testing.T) {
	pos, err := NewGPSPosition(60.17, 24.94)
	if err != nil {
		t.Fatalf("NewGPSPosition() error = %v", err)
	}
	if pos.Latitude != 60.17 || pos.Longitude != 24.94 {
		t.Errorf("NewGPSPosition() = %+v, expected 60.17, 24.94", pos)
	}
	if pos.HasAltitude {
		t.Error("Expected no altitude by default")
	}
}

func TestNewGPSPosition_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
	}{
		{"Latitude too high", 90.1, 0},
		{"Latitude too low", -91, 0},
		{"Longitude too high", 0, 180.5},
		{"Longitude too low", 0, -181},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGPSPosition(tt.lat, tt.lon); err == nil {
				t.Errorf("NewGPSPosition(%f, %f) expected error, got nil", tt.lat, tt.lon)
			}
		})
	}
}

func TestFilterGeotagged(t *testing.T) {
	withGPS := NewRecord("a.jpg", KindImage)
	withGPS.GPS = &GPSPosition{Latitude: 1, Longitude: 2}

	withoutGPS := NewRecord("b.jpg", KindImage)

	failed := NewRecord("c.jpg", KindImage)
	failed.Error = "cannot decode image: oops"

	result := FilterGeotagged([]*Record{withGPS, withoutGPS, failed})

	if len(result) != 1 {
		t.Fatalf("Expected 1 geotagged record, got %d", len(result))
	}
	if result[0].Path != "a.jpg" {
		t.Errorf("Expected a.jpg, got %s", result[0].Path)
	}
}

func TestFilterGeotagged_Empty(t *testing.T) {
	if result := FilterGeotagged(nil); len(result) != 0 {
		t.Errorf("Expected empty result for nil input, got %d records", len(result))
	}
}
