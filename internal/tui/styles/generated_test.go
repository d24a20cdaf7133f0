package styles

import "testing"

func TestPaletteFromGenerated(t *testing.T) {
	t.Run("overrides slots in order", func(t *testing.T) {
		p := PaletteFromGenerated("midnight", []string{"#FF00FF", "#00FF00", "#00FFFF"})

		if string(p.Primary) != "#FF00FF" {
			t.Errorf("Primary = %q, want #FF00FF", p.Primary)
		}
		if string(p.Secondary) != "#00FF00" {
			t.Errorf("Secondary = %q, want #00FF00", p.Secondary)
		}
		if string(p.Blue) != "#00FFFF" {
			t.Errorf("Blue = %q, want #00FFFF", p.Blue)
		}
		// Unfilled slots keep the base palette values.
		base := DefaultPalette()
		if p.Surface != base.Surface || p.Text != base.Text {
			t.Error("unfilled slots should keep base palette values")
		}
	})

	t.Run("invalid hex values are skipped", func(t *testing.T) {
		p := PaletteFromGenerated("midnight", []string{"not-a-color", "#00FF00"})

		base := DefaultPalette()
		if p.Primary != base.Primary {
			t.Errorf("Primary = %q, want base value kept for invalid hex", p.Primary)
		}
		if string(p.Secondary) != "#00FF00" {
			t.Errorf("Secondary = %q, want #00FF00", p.Secondary)
		}
	})

	t.Run("builtin name seeds the base palette", func(t *testing.T) {
		p := PaletteFromGenerated("nord", nil)
		want := NordPalette()
		if p.Primary != want.Primary {
			t.Errorf("Primary = %q, want Nord base %q", p.Primary, want.Primary)
		}
	})

	t.Run("extra colors beyond the slots are ignored", func(t *testing.T) {
		colors := []string{"#111111", "#222222", "#333333", "#1A1B26", "#C0CAF5", "#666666", "#777777"}
		p := PaletteFromGenerated("level", colors)
		if string(p.Text) != "#C0CAF5" {
			t.Errorf("Text = %q, want #C0CAF5", p.Text)
		}
	})

	t.Run("low contrast text reverts text and surface", func(t *testing.T) {
		// Dark gray text on a dark surface fails AA contrast.
		p := PaletteFromGenerated("murky", []string{"#FF00FF", "#00FF00", "#00FFFF", "#1F2937", "#222222"})

		base := DefaultPalette()
		if p.Text != base.Text || p.Surface != base.Surface {
			t.Errorf("Text/Surface = %q/%q, want reverted to defaults", p.Text, p.Surface)
		}
	})

	t.Run("status complete follows secondary", func(t *testing.T) {
		p := PaletteFromGenerated("midnight", []string{"#FF00FF", "#00FF00"})
		if p.StatusComplete != p.Secondary {
			t.Errorf("StatusComplete = %q, want %q", p.StatusComplete, p.Secondary)
		}
	})
}

func TestContrastRatio(t *testing.T) {
	// Black on white is the maximum ratio, 21:1.
	ratio := contrastRatio("#FFFFFF", "#000000")
	if ratio < 20.9 || ratio > 21.1 {
		t.Errorf("contrastRatio(white, black) = %v, want ~21", ratio)
	}

	// Order must not matter.
	if contrastRatio("#000000", "#FFFFFF") != ratio {
		t.Error("contrastRatio is not symmetric")
	}

	if contrastRatio("nope", "#FFFFFF") != 0 {
		t.Error("contrastRatio with invalid color should be 0")
	}
}
