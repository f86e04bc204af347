package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/types"
	"github.com/mkarhu/metaprobe/ui"
)

// InspectCmd shows the full categorized metadata of a single file,
// cross-checking the file's magic number against its extension.
type InspectCmd struct {
	File string `arg:"" name:"file" help:"Media file to inspect" type:"existingfile"`
}

// Run extracts and prints every metadata category of the file
func (cmd *InspectCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("metaprobe %s", version)))

	if warning := cmd.sniffMismatch(); warning != "" {
		fmt.Printf("%s\n\n", ui.ErrorStyle.Render(warning))
	}

	rec := meta.ExtractFile(cmd.File)
	if rec.Error != "" && rec.FieldCount() == 0 {
		return fmt.Errorf("%s: %s", cmd.File, rec.Error)
	}

	for _, category := range meta.CategoryOrder {
		fields := rec.Category(category)
		if len(fields) == 0 {
			continue
		}

		fmt.Println(ui.CategoryStyle.Render(category))

		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("  %s: %s\n", ui.FieldStyle.Render(name), fields[name])
		}
		fmt.Println()
	}

	if rec.Error != "" {
		fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("⚠️  %s", rec.Error)))
	} else if rec.FieldCount() == len(rec.Category(meta.CategoryFileInfo)) {
		fmt.Printf("%s\n", ui.InfoStyle.Render("No embedded metadata found in this file."))
	}

	return nil
}

// sniffMismatch compares the sniffed container format with the extension
func (cmd *InspectCmd) sniffMismatch() string {
	f, err := os.Open(cmd.File)
	if err != nil {
		return ""
	}
	defer f.Close()

	format, err := meta.SniffFormat(f)
	if err != nil || format == "" {
		return ""
	}

	if !meta.FormatMatchesExtension(format, cmd.File) {
		return fmt.Sprintf("⚠️  Content looks like %s but the extension says otherwise", format)
	}
	return ""
}
