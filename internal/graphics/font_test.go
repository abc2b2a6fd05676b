package graphics

import "testing"

func testFontRenderer() *FontRenderer {
	return &FontRenderer{
		atlas: &FontAtlas{
			AtlasW: 512,
			AtlasH: 512,
			Glyphs: map[rune]Glyph{
				' ': {Advance: 5},
				'a': {Width: 8, Height: 8, Advance: 10},
				'b': {Width: 6, Height: 12, Advance: 7},
			},
		},
	}
}

func TestMeasureSumsAdvances(t *testing.T) {
	fr := testFontRenderer()

	w, h := fr.Measure("ab", 1.0)
	if w != 17 {
		t.Errorf("Expected width 17, got %v", w)
	}
	if h != 12 {
		t.Errorf("Expected height 12 from the tallest glyph, got %v", h)
	}
}

func TestMeasureScales(t *testing.T) {
	fr := testFontRenderer()

	w, h := fr.Measure("ab", 2.0)
	if w != 34 || h != 24 {
		t.Errorf("Expected (34, 24) at scale 2, got (%v, %v)", w, h)
	}
}

func TestMeasureFallsBackToSpaceForUnknownRunes(t *testing.T) {
	fr := testFontRenderer()

	w, _ := fr.Measure("aé", 1.0)
	if w != 15 {
		t.Errorf("Expected unknown rune to advance like a space, got width %v", w)
	}
}
