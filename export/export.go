// Package export writes extraction results to JSON, CSV and TXT files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/utils"
)

// Formats lists the supported export format names
var Formats = []string{"json", "csv", "txt"}

// columnPrefixes map category names to CSV column prefixes
var columnPrefixes = map[string]string{
	meta.CategoryFileInfo: "File",
	meta.CategoryCamera:   "Camera",
	meta.CategoryImage:    "Image",
	meta.CategoryGPS:      "GPS",
	meta.CategoryEXIF:     "EXIF",
	meta.CategoryVideo:    "Video",
	meta.CategoryStreams:  "Stream",
	meta.CategoryAudio:    "Audio",
	meta.CategoryTags:     "Tag",
}

// WriteFile exports records to path in the named format
func WriteFile(records []*meta.Record, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(format) {
	case "json":
		err = WriteJSON(records, f)
	case "csv":
		err = WriteCSV(records, f)
	case "txt":
		err = WriteTXT(records, f)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("failed to write %s export: %w", format, err)
	}
	return nil
}

// WriteJSON writes records as indented JSON
func WriteJSON(records []*meta.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// WriteCSV flattens records into one row per file. Column names carry
// the category prefix (File_, Camera_, GPS_, ...), the header is the
// sorted union of all columns, and records with an extraction error are
// skipped since they have nothing meaningful to contribute to a table.
func WriteCSV(records []*meta.Record, w io.Writer) error {
	rows := make([]map[string]string, 0, len(records))
	columns := make(map[string]bool)

	for _, rec := range records {
		if rec.Error != "" {
			continue
		}

		row := map[string]string{"File Path": rec.Path}
		for category, fields := range rec.Categories {
			prefix, ok := columnPrefixes[category]
			if !ok {
				prefix = strings.ReplaceAll(category, " ", "")
			}
			for field, value := range fields {
				col := prefix + "_" + strings.ReplaceAll(field, " ", "")
				row[col] = value
			}
		}
		if rec.GPS != nil {
			row["GPS_DecimalLatitude"] = fmt.Sprintf("%.6f", rec.GPS.Latitude)
			row["GPS_DecimalLongitude"] = fmt.Sprintf("%.6f", rec.GPS.Longitude)
		}

		for col := range row {
			columns[col] = true
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return fmt.Errorf("no exportable records")
	}

	header := make([]string, 0, len(columns))
	for col := range columns {
		header = append(header, col)
	}
	sort.Strings(header)

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		line := make([]string, len(header))
		for i, col := range header {
			line[i] = row[col]
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTXT writes a human-readable report with one block per file
func WriteTXT(records []*meta.Record, w io.Writer) error {
	divider := strings.Repeat("=", 50)

	fmt.Fprintln(w, "metaprobe export report")
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Total Files: %d\n\n", len(records))

	for _, rec := range records {
		fmt.Fprintf(w, "File: %s\n", rec.Path)
		fmt.Fprintln(w, strings.Repeat("-", 50))

		if rec.Error != "" {
			fmt.Fprintf(w, "Error: %s\n\n", rec.Error)
			fmt.Fprintf(w, "\n%s\n\n", divider)
			continue
		}

		for _, category := range meta.CategoryOrder {
			fields := rec.Category(category)
			if len(fields) == 0 {
				continue
			}

			fmt.Fprintf(w, "%s:\n", category)
			names := make([]string, 0, len(fields))
			for name := range fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "  %s: %s\n", name, fields[name])
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "\n%s\n\n", divider)
	}

	return nil
}

// SuggestedFilename returns a timestamped default export filename. The
// label, typically the name of the scanned file or directory, is
// sanitized before it goes into the filename.
func SuggestedFilename(label, format string) string {
	timestamp := time.Now().Format("20060102_150405")
	if label == "" {
		return fmt.Sprintf("metaprobe_export_%s.%s", timestamp, strings.ToLower(format))
	}
	return fmt.Sprintf("metaprobe_%s_%s.%s", utils.SanitizeFilename(label), timestamp, strings.ToLower(format))
}
