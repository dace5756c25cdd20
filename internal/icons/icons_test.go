package icons

import "testing"

func TestEverySetCoversEveryID(t *testing.T) {
	ids := []ID{House, People, PaperPlane, Arrows, Pin, Wallet, Clock, Shield, Globe, Phone, Bolt}
	for name, set := range map[string]Set{"nerdfont": NerdFont(), "plain": Plain()} {
		for _, id := range ids {
			if set.Glyph(id) == set.fallback {
				t.Fatalf("%s: %q resolves to the fallback glyph", name, id)
			}
		}
	}
}

func TestUnknownIDFallsBack(t *testing.T) {
	for name, set := range map[string]Set{"nerdfont": NerdFont(), "plain": Plain()} {
		if got := set.Glyph(ID("no-such-icon")); got != set.fallback {
			t.Fatalf("%s: unknown id resolved to %q", name, got)
		}
		if set.Glyph(ID("no-such-icon")) == "" {
			t.Fatalf("%s: fallback glyph must not be empty", name)
		}
	}
}
