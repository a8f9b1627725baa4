package metadata

import (
	"time"

	"snapmend/internal/mediatype"
)

// writeLayout renders a UTC instant in exiftool's value syntax. The offset is
// always +00:00 because every source timestamp is normalized to UTC first.
const writeLayout = "2006:01:02 15:04:05-07:00"

// parseLayouts are tried in order when normalizing a read-back tag value.
// Values without an offset are interpreted as UTC.
var parseLayouts = []string{
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006:01:02 15:04:05-07:00",
	"2006:01:02 15:04:05",
}

var imageWriteTags = []string{"DateTimeOriginal", "CreateDate", "ModifyDate"}

var videoWriteTags = []string{
	"CreateDate",
	"ModifyDate",
	"TrackCreateDate",
	"TrackModifyDate",
	"MediaCreateDate",
	"MediaModifyDate",
}

var imageReadTags = []string{"DateTimeOriginal", "CreateDate"}

var videoReadTags = []string{"CreateDate", "MediaCreateDate", "TrackCreateDate"}

// WriteTags returns the capture-time tags rewritten for the given category.
func WriteTags(cat mediatype.Category) []string {
	switch cat {
	case mediatype.Image:
		return imageWriteTags
	case mediatype.Video:
		return videoWriteTags
	default:
		return nil
	}
}

// ReadTags returns the tags consulted for the embedded capture time, in
// preference order.
func ReadTags(cat mediatype.Category) []string {
	switch cat {
	case mediatype.Image:
		return imageReadTags
	case mediatype.Video:
		return videoReadTags
	default:
		return nil
	}
}

// FormatTimestamp renders ts for an exiftool tag assignment, normalized to
// UTC with an explicit +00:00 offset.
func FormatTimestamp(ts time.Time) string {
	return ts.UTC().Format(writeLayout)
}

// ParseTimestamp normalizes a read-back tag value to a UTC instant. It
// reports false for values no known layout accepts.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range parseLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
