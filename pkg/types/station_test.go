// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []Station
	}{
		{
			name: "stations in order",
			doc: `{"name":"Jazz","stations":[
				{"name":"Jazz FM","stream_url_app":"http://example/jazz","logo":"jazz.png"},
				{"name":"Smooth","stream_url_app":"http://example/smooth"}
			]}`,
			want: []Station{
				{Name: "Jazz FM", StreamURL: "http://example/jazz", Logo: "jazz.png"},
				{Name: "Smooth", StreamURL: "http://example/smooth"},
			},
		},
		{
			name: "missing stations",
			doc:  `{"name":"Empty"}`,
		},
		{
			name: "stations is an object",
			doc:  `{"stations":{"name":"x","stream_url_app":"http://x"}}`,
		},
		{
			name: "stations is a string",
			doc:  `{"stations":"none"}`,
		},
		{
			name: "stations is null",
			doc:  `{"stations":null}`,
		},
		{
			name: "category is not an object",
			doc:  `42`,
		},
		{
			name: "category is null",
			doc:  `null`,
		},
		{
			name: "non-object station elements are dropped",
			doc:  `{"stations":[null, 7, "x", {"name":"Kept","stream_url_app":"http://kept"}]}`,
			want: []Station{{Name: "Kept", StreamURL: "http://kept"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Category
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &c))
			assert.Equal(t, tt.want, c.Stations)
		})
	}
}

func TestStationUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		want       Station
		wantStream bool
	}{
		{
			name:       "string fields",
			doc:        `{"name":"Rock FM","stream_url_app":"http://rock","logo":"r.png"}`,
			want:       Station{Name: "Rock FM", StreamURL: "http://rock", Logo: "r.png"},
			wantStream: true,
		},
		{
			name: "missing stream url",
			doc:  `{"name":"Silent"}`,
			want: Station{Name: "Silent"},
		},
		{
			name: "empty stream url",
			doc:  `{"name":"Silent","stream_url_app":""}`,
			want: Station{Name: "Silent"},
		},
		{
			name: "null and false stream url",
			doc:  `{"name":"Silent","stream_url_app":null,"logo":false}`,
			want: Station{Name: "Silent"},
		},
		{
			name: "zero stream url",
			doc:  `{"name":"Silent","stream_url_app":0}`,
			want: Station{Name: "Silent"},
		},
		{
			name:       "numeric name kept verbatim",
			doc:        `{"name":101.5,"stream_url_app":"http://fm"}`,
			want:       Station{Name: "101.5", StreamURL: "http://fm"},
			wantStream: true,
		},
		{
			name: "object stream url is ignored",
			doc:  `{"name":"Odd","stream_url_app":{"url":"http://x"}}`,
			want: Station{Name: "Odd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Station
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &s))
			assert.Equal(t, tt.want, s)
			assert.Equal(t, tt.wantStream, s.HasStream())
		})
	}
}

func TestStationUnmarshalJSON_NotObject(t *testing.T) {
	var s Station
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &s))
}
