package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Showroom", "Asphalt", "Racing Green"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
	names[0] = "mutated"
	if ThemeNames()[0] != "Showroom" {
		t.Fatalf("ThemeNames() exposed internal slice")
	}
}

func TestNextTheme(t *testing.T) {
	tests := map[string]string{
		"Showroom":     "Asphalt",
		"Asphalt":      "Racing Green",
		"Racing Green": "Showroom",
		"Unknown":      "Showroom",
	}
	for in, want := range tests {
		if got := NextTheme(in); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}
	if got := GetTheme(" Asphalt "); got.Name != "Asphalt" {
		t.Fatalf("GetTheme with spaces = %q, want Asphalt", got.Name)
	}
	if got := GetTheme("Dracula"); got.Name != "Showroom" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Showroom fallback", got.Name)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := []string{
			th.Background, th.Surface, th.SurfaceAlt, th.FocusBg,
			th.SelectionBg, th.SelectionText, th.Border, th.BorderFocus,
			th.Text, th.Muted, th.Faint, th.Accent,
			th.Success, th.Warning, th.Danger, th.Info,
		}
		for i, c := range colors {
			if c == "" {
				t.Fatalf("theme %q color %d is empty", name, i)
			}
		}
	}
}
