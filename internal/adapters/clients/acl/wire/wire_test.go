package wire

import (
	"encoding/json"
	"testing"
	"time"
)

func TestID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ID
		wantErr bool
	}{
		{name: "string", input: `"doc-7"`, want: "doc-7"},
		{name: "integer", input: `42`, want: "42"},
		{name: "null", input: `null`, want: ""},
		{name: "float", input: `4.5`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got ID
			err := json.Unmarshal([]byte(tt.input), &got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)
	if got := ParseTime("2026-05-04T09:30:00Z"); !got.Equal(want) {
		t.Errorf("ParseTime = %v, want %v", got, want)
	}
	if got := ParseTime("yesterday"); !got.IsZero() {
		t.Errorf("ParseTime(malformed) = %v, want zero", got)
	}

	empty := ""
	if got := ParseTimePtr(&empty); got != nil {
		t.Errorf("ParseTimePtr(empty) = %v, want nil", got)
	}
	if got := ParseTimePtr(nil); got != nil {
		t.Errorf("ParseTimePtr(nil) = %v, want nil", got)
	}
}
