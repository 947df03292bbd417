package options

import (
	"testing"

	"tableflip.dev/picklist/pkg/sorted"
)

func TestSortFlag(t *testing.T) {
	var f SortFlag
	if f.String() != "" {
		t.Fatalf("unset flag should render empty, got %q", f.String())
	}
	if err := f.Set("size:desc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !f.IsSet || f.Order != (sorted.SortOrder{Key: "size", Direction: sorted.Descending}) {
		t.Fatalf("unexpected flag %+v", f)
	}
	if f.String() != "size:desc" {
		t.Fatalf("got %q", f.String())
	}
	if err := f.Set("size:sideways"); err == nil {
		t.Fatalf("expected an invalid order to be rejected")
	}
}
