package meta

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mkarhu/metaprobe/utils"
)

// ErrNoMetadata is the record error reported when a file carries no
// extractable metadata at all.
const ErrNoMetadata = "no metadata found"

// ExtractFile extracts all available metadata from a single file.
// The returned record is always non-nil; failures are reported through
// the record's Error field so bulk runs can aggregate them.
func ExtractFile(path string) *Record {
	kind := KindForPath(path)
	rec := NewRecord(path, kind)

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			rec.Error = "file not found"
		} else {
			rec.Error = fmt.Sprintf("cannot access file: %v", err)
		}
		return rec
	}

	if fi.IsDir() {
		rec.Error = "path is a directory"
		return rec
	}

	addFileInfo(rec, fi)

	switch kind {
	case KindImage:
		extractImage(rec)
	case KindVideo:
		extractVideo(rec)
	case KindAudio:
		extractAudio(rec)
	default:
		rec.Error = "unsupported file format"
	}

	return rec
}

// addFileInfo populates the File Info category from stat results
func addFileInfo(rec *Record, fi os.FileInfo) {
	rec.Set(CategoryFileInfo, "File Name", filepath.Base(rec.Path))
	rec.Set(CategoryFileInfo, "File Path", rec.Path)
	rec.Set(CategoryFileInfo, "File Size", utils.FormatFileSize(fi.Size()))
	rec.Set(CategoryFileInfo, "Modified", fi.ModTime().Format(time.RFC3339))
	rec.Set(CategoryFileInfo, "Extension", strings.ToLower(filepath.Ext(rec.Path)))
}
