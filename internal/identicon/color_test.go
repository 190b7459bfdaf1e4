package identicon

import "testing"

func TestPickColor(t *testing.T) {
	c, err := PickColor([]byte{43, 48, 197, 6, 1, 8})
	if err != nil {
		t.Fatalf("PickColor: %v", err)
	}
	if c.R != 43 || c.G != 48 || c.B != 197 {
		t.Errorf("got (%d,%d,%d), want (43,48,197)", c.R, c.G, c.B)
	}
	if c.String() != "#2b30c5" {
		t.Errorf("String() = %q, want %q", c.String(), "#2b30c5")
	}
}

func TestPickColorShortDigest(t *testing.T) {
	for _, digest := range [][]byte{nil, {}, {1}, {1, 2}} {
		if _, err := PickColor(digest); err == nil {
			t.Errorf("PickColor(%v): expected error, got nil", digest)
		}
	}
}

func TestColorNRGBAIsOpaque(t *testing.T) {
	c := Color{R: 10, G: 20, B: 30}
	n := c.NRGBA()
	if n.R != 10 || n.G != 20 || n.B != 30 || n.A != 255 {
		t.Errorf("NRGBA() = %+v, want opaque (10,20,30)", n)
	}
}
