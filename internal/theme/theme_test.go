package theme

import "testing"

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want Mode
		err  bool
	}{
		{"auto", ModeAuto, false},
		{"", ModeAuto, false},
		{"light", ModeLight, false},
		{"Dark", ModeDark, false},
		{"  LIGHT ", ModeLight, false},
		{"solarized", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.in)
		if tc.err != (err != nil) {
			t.Fatalf("ParseMode(%q) err = %v", tc.in, err)
		}
		if !tc.err && got != tc.want {
			t.Fatalf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPalettesAreCompleteAndDistinct(t *testing.T) {
	for name, p := range map[string]Palette{"dark": Dark, "light": Light} {
		for field, c := range p.colors() {
			if c == "" {
				t.Fatalf("%s palette: %s is empty", name, field)
			}
		}
	}
	if Dark.Base == Light.Base || Dark.Accent == Light.Accent {
		t.Fatalf("light and dark variants must differ")
	}
}

func TestActiveExplicitModes(t *testing.T) {
	if Active(ModeDark) != Dark {
		t.Fatalf("ModeDark should select the dark palette")
	}
	if Active(ModeLight) != Light {
		t.Fatalf("ModeLight should select the light palette")
	}
}

func (p Palette) colors() map[string]string {
	return map[string]string{
		"base":       string(p.Base),
		"surface":    string(p.Surface),
		"border":     string(p.Border),
		"text":       string(p.Text),
		"muted":      string(p.Muted),
		"accent":     string(p.Accent),
		"accentText": string(p.AccentText),
		"success":    string(p.Success),
		"error":      string(p.Error),
	}
}
