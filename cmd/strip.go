package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/ui"
)

// StripCmd removes embedded metadata from image files. By default the
// cleaned copy is written next to the original with a _clean suffix;
// --in-place overwrites the original after confirmation.
type StripCmd struct {
	Files   []string `arg:"" name:"files" help:"Image files to strip" type:"existingfile"`
	InPlace bool     `name:"in-place" help:"Overwrite the original files"`
	Yes     bool     `help:"Skip the confirmation prompt"`
}

// Run strips metadata from each file, asking for confirmation first
func (cmd *StripCmd) Run() error {
	if cmd.InPlace && !cmd.Yes {
		if !cmd.confirm() {
			fmt.Println(ui.InfoStyle.Render("Aborted, no files were modified."))
			return nil
		}
	}

	var stripped, failed int
	for _, file := range cmd.Files {
		outPath, err := meta.StripMetadata(file, meta.StripOptions{InPlace: cmd.InPlace})
		if err != nil {
			failed++
			fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", filepath.Base(file), err)))
			continue
		}

		stripped++
		fmt.Printf("%s\n", ui.SuccessStyle.Render(fmt.Sprintf("✅ %s → %s", filepath.Base(file), filepath.Base(outPath))))
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Stripped: %d, ❌ Failed: %d", stripped, failed)))
	return nil
}

// confirm asks before destructive in-place metadata removal
func (cmd *StripCmd) confirm() bool {
	fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf(
		"⚠️  Metadata will be permanently removed from %d file(s). This cannot be undone.", len(cmd.Files))))
	fmt.Print("Continue? [y/N] ")

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
