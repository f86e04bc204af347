package meta

// Kind classifies a media file by its broad type
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindAudio   Kind = "audio"
	KindUnknown Kind = "unknown"
)

// Category names used to group extracted metadata fields
const (
	CategoryFileInfo = "File Info"
	CategoryCamera   = "Camera Info"
	CategoryImage    = "Image Properties"
	CategoryGPS      = "GPS Data"
	CategoryEXIF     = "Technical EXIF"
	CategoryVideo    = "Video Info"
	CategoryStreams  = "Streams"
	CategoryAudio    = "Audio Info"
	CategoryTags     = "Tags"
)

// CategoryOrder defines the display and export ordering of categories
var CategoryOrder = []string{
	CategoryFileInfo,
	CategoryCamera,
	CategoryImage,
	CategoryGPS,
	CategoryEXIF,
	CategoryVideo,
	CategoryStreams,
	CategoryAudio,
	CategoryTags,
}

// GPSPosition holds decoded decimal GPS coordinates
type GPSPosition struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Altitude    float64 `json:"altitude,omitempty"`
	HasAltitude bool    `json:"-"`
}

// Record holds all metadata extracted from a single file.
// Records are created by the extraction pipeline and consumed by the
// display and export code; extraction failures are captured in Error
// instead of aborting a batch.
type Record struct {
	Path       string                       `json:"path"`
	Kind       Kind                         `json:"kind"`
	Categories map[string]map[string]string `json:"categories"`
	GPS        *GPSPosition                 `json:"gps,omitempty"`
	Error      string                       `json:"error,omitempty"`
}

// NewRecord creates an empty record for the given path
func NewRecord(path string, kind Kind) *Record {
	return &Record{
		Path:       path,
		Kind:       kind,
		Categories: make(map[string]map[string]string),
	}
}

// Set stores a field value under the named category
func (r *Record) Set(category, field, value string) {
	if r.Categories[category] == nil {
		r.Categories[category] = make(map[string]string)
	}
	r.Categories[category][field] = value
}

// Category returns the field map for a category, which may be nil
func (r *Record) Category(name string) map[string]string {
	return r.Categories[name]
}

// FieldCount returns the total number of extracted fields across all categories
func (r *Record) FieldCount() int {
	count := 0
	for _, fields := range r.Categories {
		count += len(fields)
	}
	return count
}

// HasGPS reports whether the record carries decoded decimal coordinates
func (r *Record) HasGPS() bool {
	return r.GPS != nil
}
