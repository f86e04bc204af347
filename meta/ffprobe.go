package meta

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/mkarhu/metaprobe/utils"
)

// probeResult mirrors the JSON emitted by `ffprobe -print_format json`
type probeResult struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

type probeFormat struct {
	FormatName     string            `json:"format_name"`
	FormatLongName string            `json:"format_long_name"`
	Duration       string            `json:"duration"`
	BitRate        string            `json:"bit_rate"`
	Tags           map[string]string `json:"tags"`
}

type probeStream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
	BitRate    string `json:"bit_rate"`
}

// runFFprobe probes a media file and decodes the JSON output
func runFFprobe(path string) (*probeResult, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json",
		"-show_format", "-show_streams", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseProbeOutput(output)
}

// parseProbeOutput decodes raw ffprobe JSON
func parseProbeOutput(data []byte) (*probeResult, error) {
	var result probeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}
	return &result, nil
}

// extractVideo extracts container metadata and stream details via ffprobe.
// When ffprobe is unavailable or the file is unreadable the record keeps
// its File Info and reports the problem in Error.
func extractVideo(rec *Record) {
	if err := utils.CheckFFprobe(); err != nil {
		rec.Error = err.Error()
		return
	}

	result, err := runFFprobe(rec.Path)
	if err != nil {
		rec.Error = fmt.Sprintf("cannot probe video: %v", err)
		return
	}

	addFormatInfo(rec, CategoryVideo, &result.Format)
	addStreamInfo(rec, result.Streams)
}

// addFormatInfo fills a category from the probe's container-level data
func addFormatInfo(rec *Record, category string, format *probeFormat) {
	if format.FormatLongName != "" {
		rec.Set(category, "Container", format.FormatLongName)
	} else if format.FormatName != "" {
		rec.Set(category, "Container", format.FormatName)
	}

	if secs, err := strconv.ParseFloat(format.Duration, 64); err == nil {
		rec.Set(category, "Duration", formatDuration(secs))
	}

	if rate, err := strconv.Atoi(format.BitRate); err == nil && rate > 0 {
		rec.Set(category, "Bit Rate", fmt.Sprintf("%d kb/s", rate/1000))
	}

	for key, value := range format.Tags {
		rec.Set(CategoryTags, key, value)
	}
}

// addStreamInfo summarizes each stream into the Streams category
func addStreamInfo(rec *Record, streams []probeStream) {
	for _, s := range streams {
		name := fmt.Sprintf("Stream %d", s.Index)

		switch s.CodecType {
		case "video":
			rec.Set(CategoryStreams, name, fmt.Sprintf("video %s %dx%d", s.CodecName, s.Width, s.Height))
		case "audio":
			desc := fmt.Sprintf("audio %s", s.CodecName)
			if s.SampleRate != "" {
				desc += fmt.Sprintf(" %s Hz", s.SampleRate)
			}
			if s.Channels > 0 {
				desc += fmt.Sprintf(" %dch", s.Channels)
			}
			rec.Set(CategoryStreams, name, desc)
		default:
			rec.Set(CategoryStreams, name, fmt.Sprintf("%s %s", s.CodecType, s.CodecName))
		}
	}
}

// formatDuration renders seconds as H:MM:SS
func formatDuration(secs float64) string {
	total := int(secs)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}
