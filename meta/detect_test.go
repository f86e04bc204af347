package meta

import (
	"bytes"
	"testing"
)

func TestKindForPath(t *testing.T) {
	tests := []struct {
		path     string
		expected Kind
	}{
		{"photo.jpg", KindImage},
		{"photo.JPEG", KindImage},
		{"scan.tiff", KindImage},
		{"icon.png", KindImage},
		{"anim.gif", KindImage},
		{"pic.bmp", KindImage},
		{"clip.mp4", KindVideo},
		{"clip.MOV", KindVideo},
		{"old.avi", KindVideo},
		{"rip.mkv", KindVideo},
		{"cam.wmv", KindVideo},
		{"song.mp3", KindAudio},
		{"raw.wav", KindAudio},
		{"rip.flac", KindAudio},
		{"track.m4a", KindAudio},
		{"notes.txt", KindUnknown},
		{"archive.zip", KindUnknown},
		{"noextension", KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if kind := KindForPath(tt.path); kind != tt.expected {
				t.Errorf("KindForPath(%q) = %v, expected %v", tt.path, kind, tt.expected)
			}
		})
	}
}

func TestIsSupportedFile(t *testing.T) {
	if !IsSupportedFile("a.jpg") {
		t.Error("Expected .jpg to be supported")
	}
	if !IsSupportedFile("/some/dir/b.FLAC") {
		t.Error("Expected .FLAC to be supported regardless of case")
	}
	if IsSupportedFile("c.doc") {
		t.Error("Expected .doc to be unsupported")
	}
}

func TestSniffFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected string
	}{
		{
			name:     "JPEG magic",
			data:     []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0, 0, 0, 0, 0, 0},
			expected: "JPEG",
		},
		{
			name:     "PNG signature",
			data:     append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 8)...),
			expected: "PNG",
		},
		{
			name:     "GIF89a",
			data:     append([]byte("GIF89a"), make([]byte, 10)...),
			expected: "GIF",
		},
		{
			name:     "BMP",
			data:     append([]byte("BM"), make([]byte, 14)...),
			expected: "BMP",
		},
		{
			name:     "TIFF little endian",
			data:     append([]byte("II*\x00"), make([]byte, 12)...),
			expected: "TIFF",
		},
		{
			name:     "TIFF big endian",
			data:     append([]byte("MM\x00*"), make([]byte, 12)...),
			expected: "TIFF",
		},
		{
			name:     "MP3 with ID3 tag",
			data:     append([]byte("ID3"), make([]byte, 13)...),
			expected: "MP3",
		},
		{
			name:     "WAV",
			data:     []byte("RIFF\x24\x08\x00\x00WAVEfmt "),
			expected: "WAV",
		},
		{
			name:     "AVI",
			data:     []byte("RIFF\x24\x08\x00\x00AVI LIST"),
			expected: "AVI",
		},
		{
			name:     "FLAC",
			data:     append([]byte("fLaC"), make([]byte, 12)...),
			expected: "FLAC",
		},
		{
			name:     "OGG",
			data:     append([]byte("OggS"), make([]byte, 12)...),
			expected: "OGG",
		},
		{
			name:     "MP4 ftyp box",
			data:     []byte("\x00\x00\x00\x20ftypisom\x00\x00\x02\x00"),
			expected: "MP4",
		},
		{
			name:     "Matroska EBML",
			data:     append([]byte{0x1A, 0x45, 0xDF, 0xA3}, make([]byte, 12)...),
			expected: "MKV",
		},
		{
			name:     "Unknown content",
			data:     []byte("just some plain text"),
			expected: "",
		},
		{
			name:     "Empty input",
			data:     []byte{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := SniffFormat(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("SniffFormat() error = %v", err)
			}
			if format != tt.expected {
				t.Errorf("SniffFormat() = %q, expected %q", format, tt.expected)
			}
		})
	}
}

func TestFormatMatchesExtension(t *testing.T) {
	tests := []struct {
		format   string
		path     string
		expected bool
	}{
		{"JPEG", "photo.jpg", true},
		{"JPEG", "photo.jpeg", true},
		{"JPEG", "photo.png", false},
		{"PNG", "icon.png", true},
		{"PNG", "icon.jpg", false},
		{"MP4", "clip.mp4", true},
		{"MP4", "clip.mov", true},
		{"MP4", "song.m4a", true},
		{"MP4", "clip.avi", false},
		{"MKV", "rip.webm", true},
		{"", "anything.xyz", true},
		{"SOMETHING_NEW", "file.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.format+"_"+tt.path, func(t *testing.T) {
			if got := FormatMatchesExtension(tt.format, tt.path); got != tt.expected {
				t.Errorf("FormatMatchesExtension(%q, %q) = %v, expected %v", tt.format, tt.path, got, tt.expected)
			}
		})
	}
}
