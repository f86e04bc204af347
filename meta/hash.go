package meta

import (
	"fmt"
	"hash/crc32"
	"image"
	"io"
	"os"

	"github.com/corona10/goimagehash"
	"github.com/nfnt/resize"
)

// CalculateCRC32 calculates the CRC32 checksum of a file
func CalculateCRC32(filename string) (uint32, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	h := crc32.NewIEEE()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum32(), nil
}

// FindDuplicateMedia scans a directory tree for media files with
// identical content and groups them by checksum. Files are bucketed by
// size first so only candidates with a size twin get hashed. Only
// groups with more than one file are returned, keyed by the hex CRC32.
func FindDuplicateMedia(directory string) (map[string][]string, error) {
	files, err := FindMediaFiles(directory, true)
	if err != nil {
		return nil, err
	}

	bySize := make(map[int64][]string)
	for _, path := range files {
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		bySize[fi.Size()] = append(bySize[fi.Size()], path)
	}

	byHash := make(map[string][]string)
	for _, candidates := range bySize {
		if len(candidates) < 2 {
			continue
		}
		for _, path := range candidates {
			crc, err := CalculateCRC32(path)
			if err != nil {
				continue
			}
			key := fmt.Sprintf("%08X", crc)
			byHash[key] = append(byHash[key], path)
		}
	}

	duplicates := make(map[string][]string)
	for hash, paths := range byHash {
		if len(paths) > 1 {
			duplicates[hash] = paths
		}
	}

	return duplicates, nil
}

// ImagePerceptualHash calculates a perceptual hash for an image file.
// The image is normalized to a fixed size first so that files differing
// only in resolution still compare as similar.
func ImagePerceptualHash(path string) (*goimagehash.ImageHash, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	normalized := resize.Resize(256, 256, img, resize.Bilinear)

	hash, err := goimagehash.PerceptionHash(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate perceptual hash: %w", err)
	}

	return hash, nil
}
