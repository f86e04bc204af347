package utils

import "testing"

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{"Zero bytes", 0, "0 B"},
		{"Small file", 512, "512 B"},
		{"Just under one KB", 1023, "1023 B"},
		{"Exactly one KB", 1024, "1.0 KB"},
		{"Kilobytes", 153600, "150.0 KB"},
		{"Megabytes", 5 * 1024 * 1024, "5.0 MB"},
		{"Fractional megabytes", 1572864, "1.5 MB"},
		{"Gigabytes", 2 * 1024 * 1024 * 1024, "2.0 GB"},
		{"Terabytes", 3 * 1024 * 1024 * 1024 * 1024, "3.0 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatFileSize(tt.size)
			if result != tt.expected {
				t.Errorf("FormatFileSize(%d) = %q, expected %q", tt.size, result, tt.expected)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Clean filename", "photo.jpg", "photo.jpg"},
		{"Path separators", "dir/photo.jpg", "dir_photo.jpg"},
		{"Windows separators", `dir\photo.jpg`, "dir_photo.jpg"},
		{"Invalid characters", `re<po>rt:"x"?.txt`, "re_po_rt__x__.txt"},
		{"Trailing dots and spaces", "report. ", "report"},
		{"Empty after trimming", " . ", "unnamed_file"},
		{"Empty input", "", "unnamed_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		expected bool
	}{
		{"Helsinki", 60.169857, 24.938379, true},
		{"Null island", 0, 0, true},
		{"North pole", 90, 0, true},
		{"Date line", 0, -180, true},
		{"Latitude too high", 90.5, 0, false},
		{"Latitude too low", -91, 0, false},
		{"Longitude too high", 0, 181, false},
		{"Longitude too low", 0, -180.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCoordinates(tt.lat, tt.lon)
			if result != tt.expected {
				t.Errorf("ValidateCoordinates(%v, %v) = %v, expected %v", tt.lat, tt.lon, result, tt.expected)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{"Short text untouched", "hello", 10, "hello"},
		{"Exact length untouched", "hello", 5, "hello"},
		{"Truncated with ellipsis", "hello world", 8, "hello..."},
		{"Unicode safe", "ääkköset ovat hauskoja", 11, "ääkköset..."},
		{"Tiny max clamps", "hello", 2, "h..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateText(tt.input, tt.maxLength)
			if result != tt.expected {
				t.Errorf("TruncateText(%q, %d) = %q, expected %q", tt.input, tt.maxLength, result, tt.expected)
			}
		})
	}
}
