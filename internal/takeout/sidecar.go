// Package takeout models the JSON sidecar documents the photo exporter
// writes alongside media files.
package takeout

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Timestamp is the exporter's epoch-seconds representation of an instant.
// The numeric value is serialized as a decimal string.
type Timestamp struct {
	Timestamp string `json:"timestamp"`
	Formatted string `json:"formatted"`
}

// Time converts the epoch-seconds string to a UTC instant. It reports false
// for absent, zero, or unparseable values.
func (t Timestamp) Time() (time.Time, bool) {
	if t.Timestamp == "" {
		return time.Time{}, false
	}
	seconds, err := strconv.ParseInt(t.Timestamp, 10, 64)
	if err != nil || seconds <= 0 {
		return time.Time{}, false
	}
	return time.Unix(seconds, 0).UTC(), true
}

// Sidecar holds the provenance metadata fields this system consumes from a
// companion document. Unknown fields are ignored.
type Sidecar struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageViews     string    `json:"imageViews"`
	CreationTime   Timestamp `json:"creationTime"`
	PhotoTakenTime Timestamp `json:"photoTakenTime"`
	GeoData        GeoData   `json:"geoData"`
	GeoDataExif    GeoData   `json:"geoDataExif"`
	People         []Person  `json:"people"`
	URL            string    `json:"url"`
}

// GeoData carries the exporter's location block.
type GeoData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// Person names an individual tagged in the media.
type Person struct {
	Name string `json:"name"`
}

// Parse decodes a sidecar document.
func Parse(data []byte) (*Sidecar, error) {
	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse sidecar: %w", err)
	}
	return &sc, nil
}

// Load reads and decodes the sidecar at path.
func Load(path string) (*Sidecar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sidecar: %w", err)
	}
	return Parse(data)
}

// TakenTime returns the capture instant recorded in the sidecar. The
// photo-taken time is authoritative; the upload creation time serves as a
// fallback when the exporter omitted it.
func (s *Sidecar) TakenTime() (time.Time, bool) {
	if ts, ok := s.PhotoTakenTime.Time(); ok {
		return ts, true
	}
	return s.CreationTime.Time()
}
