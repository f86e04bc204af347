package meta

import (
	"fmt"
	"image"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

func init() {
	// Enables decoding of vendor-specific MakerNote tags
	exif.RegisterParsers(mknote.All...)
}

// cameraFields are EXIF tags shown under Camera Info
var cameraFields = map[string]bool{
	"Make":      true,
	"Model":     true,
	"LensMake":  true,
	"LensModel": true,
}

// imageFields are EXIF tags shown under Image Properties
var imageFields = map[string]bool{
	"ImageWidth":      true,
	"ImageLength":     true,
	"PixelXDimension": true,
	"PixelYDimension": true,
	"Orientation":     true,
	"ColorSpace":      true,
}

// extractImage reads the image header and EXIF payload of rec.Path and
// fills in the Camera Info, Image Properties, GPS Data and Technical EXIF
// categories. A file without an EXIF payload is not an error; the record
// simply keeps its EXIF categories empty.
func extractImage(rec *Record) {
	if err := addImageProperties(rec); err != nil {
		rec.Error = fmt.Sprintf("cannot decode image: %v", err)
		return
	}

	f, err := os.Open(rec.Path)
	if err != nil {
		rec.Error = fmt.Sprintf("cannot open file: %v", err)
		return
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		// No EXIF segment at all (PNG, BMP, stripped JPEG...)
		return
	}

	c := &exifCategorizer{rec: rec}
	_ = x.Walk(c)

	addGPSPosition(rec, x)
}

// addImageProperties decodes the image header for pixel dimensions and format
func addImageProperties(rec *Record) error {
	f, err := os.Open(rec.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return err
	}

	rec.Set(CategoryImage, "Size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))
	rec.Set(CategoryImage, "Format", strings.ToUpper(format))
	return nil
}

// exifCategorizer routes walked EXIF tags into the record's categories
type exifCategorizer struct {
	rec *Record
}

func (c *exifCategorizer) Walk(name exif.FieldName, tag *tiff.Tag) error {
	field := string(name)
	value := strings.Trim(tag.String(), `"`)
	if value == "" {
		return nil
	}

	switch {
	case cameraFields[field]:
		c.rec.Set(CategoryCamera, field, value)
	case imageFields[field]:
		c.rec.Set(CategoryImage, field, value)
	case strings.HasPrefix(field, "GPS"):
		c.rec.Set(CategoryGPS, field, value)
	default:
		c.rec.Set(CategoryEXIF, field, value)
	}

	return nil
}

// addGPSPosition decodes decimal coordinates from the EXIF GPS IFD.
// Coordinates outside the valid latitude/longitude ranges are dropped.
func addGPSPosition(rec *Record, x *exif.Exif) {
	lat, long, err := x.LatLong()
	if err != nil {
		lat, long, err = dmsLatLong(x)
		if err != nil {
			return
		}
	}

	pos, err := NewGPSPosition(lat, long)
	if err != nil {
		return
	}

	if altTag, err := x.Get(exif.GPSAltitude); err == nil {
		if num, den, err := altTag.Rat2(0); err == nil && den != 0 {
			pos.Altitude = float64(num) / float64(den)
			pos.HasAltitude = true
		}
	}

	rec.GPS = pos
	rec.Set(CategoryGPS, "DecimalLatitude", fmt.Sprintf("%.6f", pos.Latitude))
	rec.Set(CategoryGPS, "DecimalLongitude", fmt.Sprintf("%.6f", pos.Longitude))
}

// dmsLatLong decodes the raw degree/minute/second rationals directly,
// covering GPS IFDs the library cannot interpret as a whole
func dmsLatLong(x *exif.Exif) (float64, float64, error) {
	lat, err := dmsCoordinate(x, exif.GPSLatitude, exif.GPSLatitudeRef)
	if err != nil {
		return 0, 0, err
	}
	long, err := dmsCoordinate(x, exif.GPSLongitude, exif.GPSLongitudeRef)
	if err != nil {
		return 0, 0, err
	}
	return lat, long, nil
}

func dmsCoordinate(x *exif.Exif, field, refField exif.FieldName) (float64, error) {
	tag, err := x.Get(field)
	if err != nil {
		return 0, err
	}
	refTag, err := x.Get(refField)
	if err != nil {
		return 0, err
	}
	ref, err := refTag.StringVal()
	if err != nil {
		return 0, err
	}

	var dms [3]float64
	for i := range dms {
		num, den, err := tag.Rat2(i)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, fmt.Errorf("zero denominator in GPS rational")
		}
		dms[i] = float64(num) / float64(den)
	}

	return ConvertDMSToDecimal(dms[0], dms[1], dms[2], ref), nil
}
