package meta

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FindMediaFiles scans a directory for supported media files.
// With recursive set, the whole tree below the directory is walked;
// otherwise only the first level is read. Results are sorted.
func FindMediaFiles(directory string, recursive bool) ([]string, error) {
	var files []string

	if recursive {
		err := filepath.WalkDir(directory, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if IsSupportedFile(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(directory)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(directory, entry.Name())
			if IsSupportedFile(path) {
				files = append(files, path)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPaths resolves a mixed list of files and directories into a flat
// list of supported media files. Directories are scanned, files are kept
// as given even when their extension is unknown so that extraction can
// report the unsupported format per file.
func ExpandPaths(paths []string, recursive bool) ([]string, error) {
	var expanded []string

	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", path, err)
		}

		if fi.IsDir() {
			mediaFiles, err := FindMediaFiles(path, recursive)
			if err != nil {
				return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
			}
			expanded = append(expanded, mediaFiles...)
		} else {
			expanded = append(expanded, path)
		}
	}

	return expanded, nil
}
