package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schollz/progressbar/v3"

	"github.com/mkarhu/metaprobe/export"
	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/types"
	"github.com/mkarhu/metaprobe/ui"
)

// ScanCmd bulk-extracts metadata from media files and directories
type ScanCmd struct {
	Paths     []string `arg:"" name:"paths" help:"Media files or directories to scan" type:"path"`
	Workers   int      `help:"Number of parallel workers" default:"0"`
	Recursive bool     `help:"Recurse into subdirectories" default:"true" negatable:""`
	GPSOnly   bool     `name:"gps-only" help:"Keep only geotagged files in the results"`
	Output    string   `help:"Write results to a file" type:"path"`
	Format    string   `help:"Export format; without --output the file gets a timestamped default name" enum:",json,csv,txt" default:""`
	NoTUI     bool     `name:"no-tui" help:"Disable the interactive progress view"`
}

// Run executes a bulk scan over all resolved files
func (cmd *ScanCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	files, err := meta.ExpandPaths(cmd.Paths, cmd.Recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(ui.InfoStyle.Render("No supported media files found."))
		return nil
	}

	workers := workerCount(cmd.Workers, files)

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("metaprobe %s", version)))
	fmt.Println(ui.ProcessingStyle.Render(fmt.Sprintf("Scanning %d files with %d workers:", len(files), workers)))

	var records []*meta.Record
	if cmd.NoTUI || len(files) == 1 {
		records = cmd.runPlain(files, workers)
	} else {
		records, err = cmd.runWithTUI(files, workers)
		if err != nil {
			return err
		}
	}

	if cmd.GPSOnly {
		records = meta.FilterGeotagged(records)
	}

	cmd.printSummary(records)

	if output, format, ok := cmd.exportTarget(); ok {
		if err := export.WriteFile(records, output, format); err != nil {
			return err
		}
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ Exported %d records to %s", len(records), output)))
	}

	return nil
}

// exportTarget resolves the output path and format. Either flag alone is
// enough: a bare --format falls back to a timestamped filename named
// after the first scanned path, a bare --output exports as JSON.
func (cmd *ScanCmd) exportTarget() (string, string, bool) {
	if cmd.Output == "" && cmd.Format == "" {
		return "", "", false
	}

	format := cmd.Format
	if format == "" {
		format = "json"
	}

	output := cmd.Output
	if output == "" {
		output = export.SuggestedFilename(cmd.exportLabel(), format)
	}

	return output, format, true
}

// exportLabel derives a filename label from the first scanned path
func (cmd *ScanCmd) exportLabel() string {
	if len(cmd.Paths) == 0 {
		return ""
	}
	base := filepath.Base(cmd.Paths[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// runPlain processes the batch with a plain progress bar
func (cmd *ScanCmd) runPlain(files []string, workers int) []*meta.Record {
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Extracting metadata"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	records := meta.ProcessFiles(context.Background(), files, workers, func(completed, total int, rec *meta.Record) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	return records
}

// runWithTUI processes the batch behind the interactive progress view
func (cmd *ScanCmd) runWithTUI(files []string, workers int) ([]*meta.Record, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(ui.NewScanModel(len(files)))

	var records []*meta.Record
	go func() {
		records = meta.ProcessFiles(ctx, files, workers, func(completed, total int, rec *meta.Record) {
			p.Send(ui.FileProcessedMsg{
				Path:       rec.Path,
				FieldCount: rec.FieldCount(),
				HasGPS:     rec.HasGPS(),
				Error:      rec.Error,
				Completed:  completed,
				Total:      total,
			})
		})
		p.Send(ui.ScanFinishedMsg{})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("progress view failed: %w", err)
	}

	if model, ok := final.(ui.ScanModel); ok && model.Aborted() {
		cancel()
		return nil, fmt.Errorf("scan aborted")
	}

	return records, nil
}

// printSummary lists each record with its field count and flags
func (cmd *ScanCmd) printSummary(records []*meta.Record) {
	var failed, geotagged int

	for _, rec := range records {
		name := filepath.Base(rec.Path)
		if rec.Error != "" {
			failed++
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %s", name, rec.Error)))
			continue
		}

		line := fmt.Sprintf("✅ %s: %d fields (%s)", name, rec.FieldCount(), rec.Kind)
		if rec.HasGPS() {
			geotagged++
			line += " 📍"
		}
		fmt.Printf("%s\n", ui.SuccessStyle.Render(line))
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf(
		"Processed: %d, Geotagged: %d, Failed: %d", len(records), geotagged, failed)))
}
