package engine

import (
	"testing"

	"github.com/pixenlabs/pixen/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Images:    config.ImageBanks{Count: 2, Width: 8, Height: 8},
		Tilemaps:  config.TilemapBanks{Count: 1, Width: 4, Height: 4},
		Channels:  2,
		Sounds:    3,
		Musics:    1,
		Waveforms: 2,
		Palette:   []string{"000000", "FFFFFF"},
	}
}

func TestNewBuildsConfiguredBanks(t *testing.T) {
	eng, err := New(testConfig())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if eng.Colors.Len() != 2 {
		t.Errorf("Colors.Len() = %d, expected 2", eng.Colors.Len())
	}
	if eng.Images.Len() != 2 {
		t.Errorf("Images.Len() = %d, expected 2", eng.Images.Len())
	}
	if eng.Tilemaps.Len() != 1 {
		t.Errorf("Tilemaps.Len() = %d, expected 1", eng.Tilemaps.Len())
	}
	if eng.Channels.Len() != 2 {
		t.Errorf("Channels.Len() = %d, expected 2", eng.Channels.Len())
	}
	if eng.Sounds.Len() != 3 {
		t.Errorf("Sounds.Len() = %d, expected 3", eng.Sounds.Len())
	}
	if eng.Musics.Len() != 1 {
		t.Errorf("Musics.Len() = %d, expected 1", eng.Musics.Len())
	}
	if eng.Waveforms.Len() != 2 {
		t.Errorf("Waveforms.Len() = %d, expected 2", eng.Waveforms.Len())
	}

	img, _ := eng.Images.Get(0)
	if w, h := img.Size(); w != 8 || h != 8 {
		t.Errorf("image size = %dx%d, expected 8x8", w, h)
	}
	if c, _ := eng.Colors.Get(1); c != 0xFFFFFF {
		t.Errorf("color 1 = %06X, expected FFFFFF", uint32(c))
	}
}

func TestNewRejectsMalformedPalette(t *testing.T) {
	cfg := testConfig()
	cfg.Palette = []string{"000000", "not-a-color"}

	if _, err := New(cfg); err == nil {
		t.Error("New() should fail on a malformed palette entry")
	}
}

func TestRgb24RoundTrip(t *testing.T) {
	s := FormatRgb24(0x1A2B3C)
	if s != "1A2B3C" {
		t.Errorf("FormatRgb24(0x1A2B3C) = %q, expected \"1A2B3C\"", s)
	}

	c, err := ParseRgb24(s)
	if err != nil {
		t.Fatalf("ParseRgb24(%q) failed: %v", s, err)
	}
	if c != 0x1A2B3C {
		t.Errorf("ParseRgb24(%q) = %06X, expected 1A2B3C", s, uint32(c))
	}
}

func TestParseRgb24Malformed(t *testing.T) {
	for _, s := range []string{"ZZZZZZ", "", "12G45Q"} {
		if _, err := ParseRgb24(s); err == nil {
			t.Errorf("ParseRgb24(%q) should fail", s)
		}
	}
}

func TestFormatRgb24PadsShortValues(t *testing.T) {
	if s := FormatRgb24(0xFF); s != "0000FF" {
		t.Errorf("FormatRgb24(0xFF) = %q, expected \"0000FF\"", s)
	}
}

func TestNoiseIndexRoundTrip(t *testing.T) {
	for _, n := range []Noise{NoiseOff, NoiseShortPeriod, NoiseLongPeriod} {
		got, err := NoiseFromIndex(n.Index())
		if err != nil {
			t.Fatalf("NoiseFromIndex(%d) failed: %v", n.Index(), err)
		}
		if got != n {
			t.Errorf("NoiseFromIndex(%d) = %v, expected %v", n.Index(), got, n)
		}
	}
}

func TestNoiseIndexOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 3, 100} {
		if _, err := NoiseFromIndex(i); err == nil {
			t.Errorf("NoiseFromIndex(%d) should fail", i)
		}
	}
}

func TestImagePixelAccess(t *testing.T) {
	img := NewImage(4, 3)

	img.SetPixel(2, 1, 7)
	if got := img.Pixel(2, 1); got != 7 {
		t.Errorf("Pixel(2, 1) = %d, expected 7", got)
	}

	// Out of bounds should be silent
	img.SetPixel(-1, 0, 5)
	img.SetPixel(4, 0, 5)
	if got := img.Pixel(99, 99); got != 0 {
		t.Errorf("out-of-bounds Pixel() = %d, expected 0", got)
	}
}

func TestSequenceOwnsItsItems(t *testing.T) {
	items := []int{1, 2, 3}
	seq := NewSequence(items)

	items[0] = 99
	if got := seq.Items(); got[0] != 1 {
		t.Errorf("sequence shares storage with constructor argument: %v", got)
	}

	got := seq.Items()
	got[1] = 99
	if again := seq.Items(); again[1] != 2 {
		t.Errorf("Items() copy mutated the sequence: %v", again)
	}
}
