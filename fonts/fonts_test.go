package fonts

import "testing"

func TestFaceCachedPerSize(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	a := Regular.Face(14)
	if a != Regular.Face(14) {
		t.Error("same size returned a different face")
	}
	if a == Regular.Face(28) {
		t.Error("different sizes share a face")
	}
	if Bold.Face(14) == a {
		t.Error("bold and regular share a face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("garbage accepted as a font")
	}
}
