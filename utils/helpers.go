package utils

import (
	"fmt"
	"strings"
)

// FormatFileSize formats a byte count in human readable form
func FormatFileSize(size int64) string {
	if size == 0 {
		return "0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	value := float64(size)
	unit := 0

	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d B", size)
	}
	return fmt.Sprintf("%.1f %s", value, units[unit])
}

// SanitizeFilename replaces characters that are invalid in filenames
func SanitizeFilename(filename string) string {
	invalid := `<>:"/\|?*`
	for _, c := range invalid {
		filename = strings.ReplaceAll(filename, string(c), "_")
	}

	filename = strings.Trim(filename, " .")
	if filename == "" {
		return "unnamed_file"
	}
	return filename
}

// ValidateCoordinates checks GPS coordinates against the valid ranges
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// TruncateText shortens text to maxLength runes with an ellipsis
func TruncateText(text string, maxLength int) string {
	if maxLength <= 3 {
		maxLength = 4
	}
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-3]) + "..."
}
