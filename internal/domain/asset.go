package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// Asset represents a media item supplied by the asset catalog. Assets are
// immutable inputs to the assembly engine; the engine never writes back to
// the catalog.
type Asset struct {
	ID       string   `json:"id"`
	Metadata Metadata `json:"metadata"`
}

// Metadata is the dynamic key/value description of an asset. Well-known keys
// are "duration" (seconds), "timestamp" (capture time), "uploadTime" (catalog
// ingestion time) and the nested "analysis" object populated by the
// content-analysis service.
type Metadata map[string]any

// Duration returns the declared duration of the asset in seconds.
func (m Metadata) Duration() (float64, bool) {
	return m.Float("duration")
}

// Timestamp returns the capture time of the asset.
func (m Metadata) Timestamp() (time.Time, bool) {
	return m.Time("timestamp")
}

// UploadTime returns the catalog ingestion time, used as the chronological
// fallback for assets that carry no timestamp.
func (m Metadata) UploadTime() (time.Time, bool) {
	return m.Time("uploadTime")
}

// Analysis returns the nested analysis object, or nil if the asset has not
// been analyzed.
func (m Metadata) Analysis() Metadata {
	switch v := m["analysis"].(type) {
	case Metadata:
		return v
	case map[string]any:
		return Metadata(v)
	}
	return nil
}

// Float returns the value under key as a float64. JSON decoding yields
// float64 for numbers, but values set in code may be ints or json.Number.
func (m Metadata) Float(key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

// Time returns the value under key as a point in time. String values are
// expected in RFC 3339.
func (m Metadata) Time(key string) (time.Time, bool) {
	switch v := m[key].(type) {
	case time.Time:
		return v, true
	case string:
		t, err := time.Parse(time.RFC3339, v)
		return t, err == nil
	}
	return time.Time{}, false
}

// StringValue returns the value under key rendered as a string. Only scalar
// values are rendered; nested objects report false.
func (m Metadata) StringValue(key string) (string, bool) {
	switch v := m[key].(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}
