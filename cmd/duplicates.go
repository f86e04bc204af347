package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/types"
	"github.com/mkarhu/metaprobe/ui"
)

// DuplicatesCmd finds media files with identical content under a
// directory and optionally opens an interactive view for deleting the
// redundant copies.
type DuplicatesCmd struct {
	Directory string `arg:"" name:"directory" help:"Directory to scan for duplicates" type:"existingdir" default:"."`
	NoTUI     bool   `name:"no-tui" help:"Disable interactive TUI and just list duplicates"`
}

// Run scans for content duplicates and reports or manages them
func (cmd *DuplicatesCmd) Run(appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}
	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("metaprobe %s", version)))
	fmt.Printf("Scanning %s for duplicate media...\n", cmd.Directory)

	duplicates, err := meta.FindDuplicateMedia(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to find duplicates: %w", err)
	}

	if len(duplicates) == 0 {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No duplicates found"))
		return nil
	}

	if cmd.NoTUI {
		fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Found %d group(s) of duplicates:", len(duplicates))))
		for hash, files := range duplicates {
			fmt.Printf("\n🔸 Hash %s (%d files):\n", hash, len(files))
			for _, file := range files {
				fmt.Printf("  %s\n", file)
			}
		}
		return nil
	}

	model := ui.NewDuplicatesModel(duplicates)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
