package meta

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dhowden/tag"

	"github.com/mkarhu/metaprobe/utils"
)

// extractAudio reads audio tags with dhowden/tag and falls back to
// ffprobe for formats it cannot parse (WAV in particular). Duration and
// bit rate always come from ffprobe since the tag library does not
// expose them.
func extractAudio(rec *Record) {
	tagged := addAudioTags(rec)

	// Container-level details when ffprobe is around
	if utils.CheckFFprobe() == nil {
		if result, err := runFFprobe(rec.Path); err == nil {
			addFormatInfo(rec, CategoryAudio, &result.Format)
			return
		}
	}

	// Keep a more specific error (unreadable file) over the generic one
	if !tagged && rec.Error == "" {
		rec.Error = ErrNoMetadata
	}
}

// addAudioTags extracts embedded tags and reports whether any were found
func addAudioTags(rec *Record) bool {
	f, err := os.Open(rec.Path)
	if err != nil {
		rec.Error = fmt.Sprintf("cannot open file: %v", err)
		return false
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return false
	}

	rec.Set(CategoryAudio, "Format", string(m.Format()))
	rec.Set(CategoryAudio, "File Type", string(m.FileType()))

	setIfNotEmpty := func(field, value string) {
		if value != "" {
			rec.Set(CategoryTags, field, value)
		}
	}

	setIfNotEmpty("Title", m.Title())
	setIfNotEmpty("Artist", m.Artist())
	setIfNotEmpty("Album", m.Album())
	setIfNotEmpty("Album Artist", m.AlbumArtist())
	setIfNotEmpty("Composer", m.Composer())
	setIfNotEmpty("Genre", m.Genre())

	if year := m.Year(); year != 0 {
		rec.Set(CategoryTags, "Year", strconv.Itoa(year))
	}
	if track, total := m.Track(); track != 0 {
		value := strconv.Itoa(track)
		if total != 0 {
			value = fmt.Sprintf("%d/%d", track, total)
		}
		rec.Set(CategoryTags, "Track", value)
	}

	return true
}
