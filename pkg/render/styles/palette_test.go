package styles

import (
	"regexp"
	"testing"
)

var rgbRe = regexp.MustCompile(`^rgb\(\d{1,3},\d{1,3},\d{1,3}\)$`)

func TestPalettesDeterministic(t *testing.T) {
	palettes := []Palette{Hot{}, Cool{}, Gray{}}
	names := []string{"main", "foo", "runtime.mallocgc", ""}

	for _, p := range palettes {
		for _, name := range names {
			first := p.Color(name)
			if !rgbRe.MatchString(first) {
				t.Errorf("%s palette: %q is not an rgb() color", p.Name(), first)
			}
			if again := p.Color(name); again != first {
				t.Errorf("%s palette not deterministic for %q: %s vs %s", p.Name(), name, first, again)
			}
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{PaletteHot, PaletteHot},
		{PaletteCool, PaletteCool},
		{PaletteGray, PaletteGray},
		{"bogus", PaletteHot}, // fallback
		{"", PaletteHot},
	}
	for _, tt := range tests {
		if got := ByName(tt.in).Name(); got != tt.want {
			t.Errorf("ByName(%q).Name() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid(PaletteHot) || !Valid(PaletteCool) || !Valid(PaletteGray) {
		t.Error("known palettes should be valid")
	}
	if Valid("bogus") {
		t.Error("bogus palette should not be valid")
	}
}
