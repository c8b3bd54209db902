// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package playlist turns station directory documents into extended M3U
// playlists. It decodes a document into categories, builds one entry per
// station with a stream URL, and renders the playlist text.
package playlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/you-radio/pkg/types"
)

const (
	header = "#EXTM3U"

	// Fixed attribute values written on every entry.
	country    = "World"
	popularity = "1"
)

// ErrNotArray is returned by Decode for well-formed JSON whose top-level
// value is not an array.
var ErrNotArray = errors.New("station document is not a JSON array")

// Entry is one playlist item: the #EXTINF metadata line and its stream URL.
type Entry struct {
	Name    string
	URL     string
	LogoURL string
	Group   string
}

// Playlist is the derived playlist for one station directory document.
type Playlist struct {
	// Label is used as both group-title and feed-title.
	Label   string
	Entries []Entry
}

// Decode parses a station directory document. The document must be a JSON
// array of categories; categories and stations of the wrong shape are
// dropped without error.
func Decode(data []byte) ([]types.Category, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '[' && json.Valid(trimmed) {
		return nil, ErrNotArray
	}

	var categories []types.Category
	if err := json.Unmarshal(trimmed, &categories); err != nil {
		return nil, fmt.Errorf("parsing station document: %w", err)
	}
	return categories, nil
}

// Build collects one entry per station with a stream URL, in category and
// station order. Logo paths are joined to logoBaseURL by plain concatenation.
func Build(categories []types.Category, label, logoBaseURL string) Playlist {
	p := Playlist{Label: label}
	for _, c := range categories {
		for _, s := range c.Stations {
			if !s.HasStream() {
				continue
			}
			e := Entry{Name: s.Name, URL: s.StreamURL, Group: label}
			if s.Logo != "" {
				e.LogoURL = logoBaseURL + s.Logo
			}
			p.Entries = append(p.Entries, e)
		}
	}
	return p
}

// String renders the playlist as M3U text. Values are written verbatim.
func (p Playlist) String() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, e := range p.Entries {
		b.WriteString(e.extinf(p.Label))
		b.WriteByte('\n')
		b.WriteString(e.URL)
		b.WriteByte('\n')
	}
	return b.String()
}

func (e Entry) extinf(feed string) string {
	var b strings.Builder
	b.WriteString("#EXTINF:-1")
	fmt.Fprintf(&b, ` tvg-country="%s"`, country)
	fmt.Fprintf(&b, ` tvg-popularity="%s"`, popularity)
	if e.LogoURL != "" {
		fmt.Fprintf(&b, ` tvg-logo="%s"`, e.LogoURL)
	}
	fmt.Fprintf(&b, ` group-title="%s"`, e.Group)
	fmt.Fprintf(&b, ` feed-title="%s"`, feed)
	b.WriteByte(',')
	b.WriteString(e.Name)
	return b.String()
}

// FormatName turns a file name stem into a label: underscores become
// spaces and the first letter of every whitespace-separated word is upper
// cased. The rest of each word is left as is.
func FormatName(stem string) string {
	s := strings.ReplaceAll(stem, "_", " ")

	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[0])
			s = s[1:]
			wordStart = false
			continue
		}
		s = s[size:]
		switch {
		case unicode.IsSpace(r):
			wordStart = true
		case wordStart:
			r = unicode.ToUpper(r)
			wordStart = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
