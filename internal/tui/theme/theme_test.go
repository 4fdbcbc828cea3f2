package theme

import "testing"

func TestByNameFallsBackToDefault(t *testing.T) {
	if got := ByName("lantern"); got.Name != "lantern" {
		t.Errorf("ByName(lantern) = %q", got.Name)
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %q, want %q", got.Name, FlexokiDark.Name)
	}
}

func TestEveryThemeSetsEveryRole(t *testing.T) {
	for _, th := range All {
		roles := map[string]string{
			"Background":   string(th.Background),
			"Surface":      string(th.Surface),
			"SurfaceHover": string(th.SurfaceHover),
			"Border":       string(th.Border),
			"TextDim":      string(th.TextDim),
			"TextMuted":    string(th.TextMuted),
			"TextPrimary":  string(th.TextPrimary),
			"Accent":       string(th.Accent),
			"AccentBright": string(th.AccentBright),
			"Done":         string(th.Done),
			"Exempt":       string(th.Exempt),
			"Warning":      string(th.Warning),
			"Error":        string(th.Error),
		}
		for role, c := range roles {
			if c == "" {
				t.Errorf("%s: %s is empty", th.Name, role)
			}
		}
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)
	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q, want terminal", Active.Name)
	}
	if len(Names()) != len(All) {
		t.Errorf("Names() has %d entries, want %d", len(Names()), len(All))
	}
}
