package colorhash

import "testing"

func TestColorizeGolden(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{in: "Gene", want: RGB{98, 36, 74}},
		{in: "", want: RGB{212, 65, 29}},
	}
	for _, tt := range tests {
		got := Colorize(tt.in)
		if got != tt.want {
			t.Fatalf("Colorize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorizeStable(t *testing.T) {
	first := Colorize("Gene")
	for i := 0; i < 10; i++ {
		if got := Colorize("Gene"); got != first {
			t.Fatalf("call %d: got %v, want %v", i, got, first)
		}
	}
	if Colorize("Gene") == Colorize("gene") {
		t.Fatalf("expected case to influence the color")
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{98, 36, 74}).Hex(); got != "#62244a" {
		t.Fatalf("unexpected hex %q", got)
	}
	if got := (RGB{98, 36, 74}).Color().Hex(); got != "#62244a" {
		t.Fatalf("colorful hex mismatch: %q", got)
	}
}

func TestForeground(t *testing.T) {
	if got := (RGB{250, 250, 250}).Foreground(); got != (RGB{0, 0, 0}) {
		t.Fatalf("expected dark text on light swatch, got %v", got)
	}
	if got := (RGB{10, 10, 10}).Foreground(); got != (RGB{255, 255, 255}) {
		t.Fatalf("expected light text on dark swatch, got %v", got)
	}
}
