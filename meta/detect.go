package meta

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif"}
var videoExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".wmv", ".flv", ".webm"}
var audioExtensions = []string{".mp3", ".wav", ".flac", ".m4a", ".aac", ".ogg"}

// KindForPath classifies a file by its extension
func KindForPath(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))

	for _, v := range imageExtensions {
		if v == ext {
			return KindImage
		}
	}
	for _, v := range videoExtensions {
		if v == ext {
			return KindVideo
		}
	}
	for _, v := range audioExtensions {
		if v == ext {
			return KindAudio
		}
	}
	return KindUnknown
}

// IsSupportedFile checks if the given file extension is one of the known media extensions
func IsSupportedFile(path string) bool {
	return KindForPath(path) != KindUnknown
}

// SupportedExtensions returns all media extensions metaprobe can process
func SupportedExtensions() []string {
	exts := make([]string, 0, len(imageExtensions)+len(videoExtensions)+len(audioExtensions))
	exts = append(exts, imageExtensions...)
	exts = append(exts, videoExtensions...)
	exts = append(exts, audioExtensions...)
	return exts
}

// SniffFormat identifies the container format from the leading bytes of a
// file. Used by inspect to cross-check the extension against the actual
// content; an empty string means the magic number was not recognized.
func SniffFormat(r io.Reader) (string, error) {
	header := make([]byte, 16)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	header = header[:n]

	switch {
	case len(header) >= 3 && header[0] == 0xFF && header[1] == 0xD8 && header[2] == 0xFF:
		return "JPEG", nil
	case len(header) >= 8 && bytes.Equal(header[:8], []byte("\x89PNG\r\n\x1a\n")):
		return "PNG", nil
	case len(header) >= 6 && (bytes.Equal(header[:6], []byte("GIF87a")) || bytes.Equal(header[:6], []byte("GIF89a"))):
		return "GIF", nil
	case len(header) >= 2 && header[0] == 'B' && header[1] == 'M':
		return "BMP", nil
	case len(header) >= 4 && (bytes.Equal(header[:4], []byte("II*\x00")) || bytes.Equal(header[:4], []byte("MM\x00*"))):
		return "TIFF", nil
	case len(header) >= 3 && bytes.Equal(header[:3], []byte("ID3")):
		return "MP3", nil
	case len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0:
		return "MP3", nil
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("WAVE")):
		return "WAV", nil
	case len(header) >= 12 && bytes.Equal(header[:4], []byte("RIFF")) && bytes.Equal(header[8:12], []byte("AVI ")):
		return "AVI", nil
	case len(header) >= 4 && bytes.Equal(header[:4], []byte("fLaC")):
		return "FLAC", nil
	case len(header) >= 4 && bytes.Equal(header[:4], []byte("OggS")):
		return "OGG", nil
	case len(header) >= 12 && (bytes.Equal(header[4:8], []byte("ftyp")) || bytes.Equal(header[4:8], []byte("moov"))):
		return "MP4", nil
	case len(header) >= 4 && bytes.Equal(header[:4], []byte{0x1A, 0x45, 0xDF, 0xA3}):
		return "MKV", nil
	default:
		return "", nil
	}
}

// FormatMatchesExtension reports whether a sniffed format is plausible for
// the file's extension. MP4 containers cover several extensions, so the
// check is by format family rather than exact extension.
func FormatMatchesExtension(format, path string) bool {
	if format == "" {
		return true // nothing sniffed, nothing to contradict
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch format {
	case "JPEG":
		return ext == ".jpg" || ext == ".jpeg"
	case "PNG":
		return ext == ".png"
	case "GIF":
		return ext == ".gif"
	case "BMP":
		return ext == ".bmp"
	case "TIFF":
		return ext == ".tiff" || ext == ".tif"
	case "MP3":
		return ext == ".mp3"
	case "WAV":
		return ext == ".wav"
	case "AVI":
		return ext == ".avi"
	case "FLAC":
		return ext == ".flac"
	case "OGG":
		return ext == ".ogg"
	case "MP4":
		return ext == ".mp4" || ext == ".m4a" || ext == ".mov" || ext == ".aac"
	case "MKV":
		return ext == ".mkv" || ext == ".webm"
	default:
		return true
	}
}
