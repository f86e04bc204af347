package meta

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// StripOptions controls how metadata removal writes its output
type StripOptions struct {
	// InPlace overwrites the original file instead of writing a copy
	InPlace bool
}

// StripMetadata removes embedded metadata from an image file and returns
// the path the cleaned file was written to. JPEG files keep their
// compressed image data byte-for-byte and only lose the metadata
// segments; PNG, GIF and BMP files are re-encoded from pixels, which
// discards ancillary chunks. Video and audio files are rejected.
func StripMetadata(path string, opts StripOptions) (string, error) {
	kind := KindForPath(path)
	if kind != KindImage {
		return "", fmt.Errorf("metadata removal is only supported for images, %s is %s", filepath.Base(path), kind)
	}

	outPath := cleanedPath(path)
	if opts.InPlace {
		outPath = path
	}

	ext := strings.ToLower(filepath.Ext(path))

	var buf bytes.Buffer
	var err error
	switch ext {
	case ".jpg", ".jpeg":
		err = stripJPEGFile(path, &buf)
	case ".png", ".gif", ".bmp":
		err = reencodeImageFile(path, ext, &buf)
	default:
		return "", fmt.Errorf("metadata removal not supported for %s files", ext)
	}
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write cleaned file: %w", err)
	}

	return outPath, nil
}

// cleanedPath derives the default output path for a stripped file
func cleanedPath(path string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + "_clean" + ext
}

func stripJPEGFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	return stripJPEG(bufio.NewReader(f), w)
}

// stripJPEG copies a JPEG stream, dropping the APP1 (EXIF/XMP) and
// APP13 (IPTC) segments. Everything from the SOS marker onward is
// copied verbatim, so the compressed image data is untouched.
func stripJPEG(r io.Reader, w io.Writer) error {
	var soi [2]byte
	if _, err := io.ReadFull(r, soi[:]); err != nil {
		return fmt.Errorf("failed to read JPEG header: %w", err)
	}
	if soi[0] != 0xFF || soi[1] != 0xD8 {
		return fmt.Errorf("not a JPEG file")
	}
	if _, err := w.Write(soi[:]); err != nil {
		return err
	}

	for {
		var b [1]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return fmt.Errorf("failed to read segment marker: %w", err)
		}
		if b[0] != 0xFF {
			return fmt.Errorf("invalid JPEG marker byte 0x%02X", b[0])
		}

		// Markers may be preceded by any number of 0xFF fill bytes
		code := byte(0xFF)
		for code == 0xFF {
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return fmt.Errorf("failed to read segment marker: %w", err)
			}
			code = b[0]
		}
		marker := [2]byte{0xFF, code}

		// SOS: image data follows, copy the rest through unchanged
		if code == 0xDA {
			if _, err := w.Write(marker[:]); err != nil {
				return err
			}
			_, err := io.Copy(w, r)
			return err
		}

		var length uint16
		if err := binary.Read(r, binary.BigEndian, &length); err != nil {
			return fmt.Errorf("failed to read segment length: %w", err)
		}
		if length < 2 {
			return fmt.Errorf("invalid segment length %d", length)
		}

		payload := make([]byte, length-2)
		if _, err := io.ReadFull(r, payload); err != nil {
			return fmt.Errorf("failed to read segment payload: %w", err)
		}

		if isMetadataSegment(marker[1], payload) {
			continue
		}

		if _, err := w.Write(marker[:]); err != nil {
			return err
		}
		if err := binary.Write(w, binary.BigEndian, length); err != nil {
			return err
		}
		if _, err := w.Write(payload); err != nil {
			return err
		}
	}
}

// isMetadataSegment identifies segments that carry metadata rather than
// image structure. APP1 holds EXIF and XMP, APP13 holds Photoshop/IPTC.
func isMetadataSegment(marker byte, payload []byte) bool {
	switch marker {
	case 0xE1:
		return bytes.HasPrefix(payload, []byte("Exif\x00\x00")) ||
			bytes.HasPrefix(payload, []byte("http://ns.adobe.com/"))
	case 0xED:
		return bytes.HasPrefix(payload, []byte("Photoshop 3.0"))
	}
	return false
}

// reencodeImageFile decodes the pixels and writes a fresh encoding,
// which drops any text chunks or embedded profiles along the way
func reencodeImageFile(path, ext string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("cannot decode image: %w", err)
	}

	switch ext {
	case ".png":
		return png.Encode(w, img)
	case ".gif":
		return gif.Encode(w, img, &gif.Options{NumColors: 256})
	case ".bmp":
		return bmp.Encode(w, img)
	}
	return fmt.Errorf("unsupported re-encode format %s", ext)
}
