package cmd

import (
	"context"
	"fmt"

	"github.com/mkarhu/metaprobe/export"
	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/ui"
)

// GpsCmd lists geotagged media files with their decoded decimal
// coordinates, in a form usable by map tooling.
type GpsCmd struct {
	Paths   []string `arg:"" name:"paths" help:"Media files or directories to check" type:"path"`
	Workers int      `help:"Number of parallel workers" default:"0"`
	Output  string   `help:"Write geotagged records to a JSON file" type:"path"`
}

// Run scans the inputs and reports every file carrying GPS coordinates
func (cmd *GpsCmd) Run() error {
	files, err := meta.ExpandPaths(cmd.Paths, true)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(ui.InfoStyle.Render("No supported media files found."))
		return nil
	}

	workers := workerCount(cmd.Workers, files)

	fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Checking %d files for GPS data...", len(files))))

	records := meta.ProcessFiles(context.Background(), files, workers, nil)
	geotagged := meta.FilterGeotagged(records)

	if len(geotagged) == 0 {
		fmt.Printf("%s\n", ui.InfoStyle.Render("No geotagged files found."))
		return nil
	}

	fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("📍 Found %d geotagged file(s):", len(geotagged))))
	for _, rec := range geotagged {
		fmt.Printf("  %s  %.6f, %.6f", rec.Path, rec.GPS.Latitude, rec.GPS.Longitude)
		if rec.GPS.HasAltitude {
			fmt.Printf("  (%.1f m)", rec.GPS.Altitude)
		}
		fmt.Println()
	}

	if cmd.Output != "" {
		if err := export.WriteFile(geotagged, cmd.Output, "json"); err != nil {
			return err
		}
		fmt.Printf("\n%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Wrote %d records to %s", len(geotagged), cmd.Output)))
	}

	return nil
}
