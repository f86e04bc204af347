package meta

import (
	"fmt"
	"strings"

	"github.com/mkarhu/metaprobe/utils"
)

// NewGPSPosition validates and wraps decimal coordinates
func NewGPSPosition(lat, long float64) (*GPSPosition, error) {
	if !utils.ValidateCoordinates(lat, long) {
		return nil, fmt.Errorf("coordinates out of range: %f, %f", lat, long)
	}
	return &GPSPosition{Latitude: lat, Longitude: long}, nil
}

// ConvertDMSToDecimal converts a degrees/minutes/seconds triplet to
// decimal degrees. The ref is the EXIF hemisphere reference: "S" and "W"
// produce negative values, anything else keeps the positive sign.
func ConvertDMSToDecimal(degrees, minutes, seconds float64, ref string) float64 {
	decimal := degrees + minutes/60.0 + seconds/3600.0

	switch strings.ToUpper(strings.TrimSpace(ref)) {
	case "S", "W":
		return -decimal
	}
	return decimal
}

// FilterGeotagged keeps only records with valid decoded coordinates
func FilterGeotagged(records []*Record) []*Record {
	var geotagged []*Record
	for _, rec := range records {
		if rec.HasGPS() {
			geotagged = append(geotagged, rec)
		}
	}
	return geotagged
}
