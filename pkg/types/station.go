// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the you-radio converter:
// the station directory documents read from json/stations, the per-file
// conversion results, and the converter configuration.
package types

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Category groups stations inside one station directory document.
// Only the stations field is read; other category fields are ignored.
type Category struct {
	// Stations lists the category's stations in document order. Elements
	// that are not JSON objects are dropped while decoding.
	Stations []Station `json:"stations" yaml:"stations"`
}

// UnmarshalJSON decodes a category leniently. A category that is not an
// object, or whose stations value is missing or not an array, decodes to a
// Category with no stations and no error.
func (c *Category) UnmarshalJSON(data []byte) error {
	c.Stations = nil

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(fields["stations"], &elems); err != nil {
		return nil
	}

	for _, elem := range elems {
		var s Station
		if !s.decode(elem) {
			continue
		}
		c.Stations = append(c.Stations, s)
	}
	return nil
}

// Station is a single streamable radio source.
type Station struct {
	// Name is the display name, emitted verbatim into the playlist.
	Name string `json:"name" yaml:"name"`

	// StreamURL is the playable URL (stream_url_app). Empty means the
	// station has no usable stream and is left out of playlists.
	StreamURL string `json:"stream_url_app" yaml:"stream_url_app"`

	// Logo is an optional image path relative to the logo host.
	Logo string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// HasStream reports whether the station carries a usable stream URL.
func (s Station) HasStream() bool {
	return s.StreamURL != ""
}

// UnmarshalJSON decodes a station object. Scalar field values are taken
// as text; false, null and zero stream_url_app or logo values count as
// absent.
func (s *Station) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	s.fromFields(fields)
	return nil
}

func (s *Station) decode(data []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return false
	}
	s.fromFields(fields)
	return true
}

func (s *Station) fromFields(fields map[string]json.RawMessage) {
	s.Name, _ = scalarText(fields["name"])
	if v, ok := scalarText(fields["stream_url_app"]); ok {
		s.StreamURL = v
	}
	if v, ok := scalarText(fields["logo"]); ok {
		s.Logo = v
	}
}

// scalarText returns the text of a JSON string, number or boolean and
// whether the value is truthy. Null, objects and arrays yield no text.
func scalarText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}

	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil || f == 0 {
			return t.String(), false
		}
		return t.String(), true
	case bool:
		if !t {
			return "false", false
		}
		return "true", true
	default:
		return "", false
	}
}
