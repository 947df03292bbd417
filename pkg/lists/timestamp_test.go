package lists

import (
	"encoding/json"
	"testing"
	"time"

	"go.yaml.in/yaml/v3"
)

func TestParseTime(t *testing.T) {
	want := time.Date(2024, time.May, 4, 12, 30, 0, 0, time.UTC)
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "", want: time.Time{}},
		{in: "1714825800000", want: want},
		{in: "2024-05-04T12:30:00Z", want: want},
		{in: "2024-05-04T14:30:00+02:00", want: want},
		{in: "yesterday", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseTime(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%q: expected an error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("%q: got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRecordDecoding(t *testing.T) {
	const doc = `{"id":"1","name":"groceries","size":3,"timestamp":1714825800000,"tags":["home"]}`
	var rec Record
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Timestamp.UnixMilli() != 1714825800000 || rec.Name != "groceries" || len(rec.Tags) != 1 {
		t.Fatalf("unexpected record %+v", rec)
	}
	out, err := json.Marshal(rec.Timestamp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-05-04T12:30:00Z"` {
		t.Fatalf("unexpected timestamp JSON %s", out)
	}

	var fromYAML Record
	if err := yaml.Unmarshal([]byte("name: chores\ntimestamp: 2024-05-04T12:30:00Z\n"), &fromYAML); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !fromYAML.Timestamp.Equal(rec.Timestamp.Time) {
		t.Fatalf("yaml timestamp %s, want %s", fromYAML.Timestamp, rec.Timestamp)
	}
	if fromYAML.Key() != "chores" {
		t.Fatalf("expected name fallback key, got %q", fromYAML.Key())
	}
}
