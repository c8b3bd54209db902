// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FileStatus is the outcome of converting one station directory document.
type FileStatus string

const (
	FileConverted FileStatus = "converted"
	FileFailed    FileStatus = "failed"
)

// FileResult records the conversion of a single input file.
type FileResult struct {
	// Source is the input file name (e.g. "jazz_classics.json").
	Source string `json:"source" yaml:"source"`

	// Output is the playlist file name (e.g. "jazz_classics.m3u").
	Output string `json:"output" yaml:"output"`

	// Label is the group/feed title derived from the file name.
	Label string `json:"label" yaml:"label"`

	// Entries is the number of playlist entries written. Zero on failure.
	Entries int `json:"entries" yaml:"entries"`

	Status FileStatus `json:"status" yaml:"status"`

	// Error records the failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the file failed conversion.
func (r FileResult) Failed() bool {
	return r.Status == FileFailed
}
