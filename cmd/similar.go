package cmd

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/corona10/goimagehash"
	"golang.org/x/sync/errgroup"

	"github.com/mkarhu/metaprobe/meta"
	"github.com/mkarhu/metaprobe/ui"
)

// SimilarCmd finds visually similar images using perceptual hashing.
// Images that differ in resolution or re-compression still match as
// long as their content looks alike.
type SimilarCmd struct {
	Files     []string `arg:"" name:"files" help:"Image files to compare" type:"existingfile"`
	Threshold int      `help:"Hamming distance threshold for similarity (0-64)" default:"10"`
}

// Run hashes all images in parallel and compares every pair
func (cmd *SimilarCmd) Run() error {
	if len(cmd.Files) < 2 {
		fmt.Printf("%s\n", ui.ErrorStyle.Render("❌ Need at least 2 files to compare"))
		return nil
	}

	fmt.Printf("%s\n", ui.InfoStyle.Render(fmt.Sprintf("Calculating perceptual hashes for %d files...", len(cmd.Files))))

	type fileHash struct {
		File string
		Hash *goimagehash.ImageHash
	}

	var mu sync.Mutex
	var hashes []fileHash

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for _, file := range cmd.Files {
		imageFile := file
		if meta.KindForPath(imageFile) != meta.KindImage {
			fmt.Printf("⚠️  %s is not an image file, skipping\n", imageFile)
			continue
		}

		g.Go(func() error {
			hash, err := meta.ImagePerceptualHash(imageFile)
			if err != nil {
				fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error hashing %s: %v", imageFile, err)))
				return nil // keep going, one bad file should not stop the batch
			}

			mu.Lock()
			hashes = append(hashes, fileHash{File: imageFile, Hash: hash})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("Comparing %d files for similarity (threshold: %d):", len(hashes), cmd.Threshold)))

	found := false
	for i := 0; i < len(hashes); i++ {
		for j := i + 1; j < len(hashes); j++ {
			distance, err := hashes[i].Hash.Distance(hashes[j].Hash)
			if err != nil {
				fmt.Printf("%s\n", ui.ErrorStyle.Render(fmt.Sprintf("❌ Error comparing %s and %s: %v", hashes[i].File, hashes[j].File, err)))
				continue
			}

			if distance <= cmd.Threshold {
				fmt.Printf("🎯 Similar (distance %d): %s ↔ %s\n", distance, hashes[i].File, hashes[j].File)
				found = true
			}
		}
	}

	if !found {
		fmt.Printf("%s\n", ui.SuccessStyle.Render("✅ No similar files found within threshold"))
	}

	return nil
}
