package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(16); err != nil {
		t.Fatalf("LoadDefaults() = %v", err)
	}
	for _, name := range []FontName{Regular, Title, Small} {
		if name.Get() == nil {
			t.Errorf("%s face is nil", name)
		}
	}
	if Title.Get().Metrics().Height <= Regular.Get().Metrics().Height {
		t.Error("title face is not larger than the regular face")
	}
}

func TestLoadFont_RejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("LoadFont accepted invalid data")
	}
	if err := LoadFont("ok", goregular.TTF); err != nil {
		t.Errorf("LoadFont(goregular) = %v", err)
	}
}

func TestGet_PanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get did not panic for an unloaded font")
		}
	}()
	FontName("missing").Get()
}
