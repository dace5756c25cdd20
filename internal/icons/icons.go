// Package icons maps abstract icon identifiers to renderable glyphs.
package icons

// ID names an icon independent of how a terminal draws it.
type ID string

const (
	House      ID = "house"
	People     ID = "people"
	PaperPlane ID = "paperplane"
	Arrows     ID = "arrows"
	Pin        ID = "pin"

	Wallet ID = "wallet"
	Clock  ID = "clock"
	Shield ID = "shield"
	Globe  ID = "globe"
	Phone  ID = "phone"
	Bolt   ID = "bolt"
)

// Set resolves icon identifiers to concrete glyphs. Unknown identifiers
// resolve to the set's fallback glyph; resolution never fails.
type Set struct {
	glyphs   map[ID]string
	fallback string
}

// NerdFont returns the default glyph set (requires a Nerd Font).
func NerdFont() Set {
	return Set{
		glyphs: map[ID]string{
			House:      "", //  house
			People:     "", //  group
			PaperPlane: "", //  paper plane
			Arrows:     "", //  left-right exchange
			Pin:        "", //  map pin
			Wallet:     "", //  wallet
			Clock:      "", //  clock
			Shield:     "", //  shield
			Globe:      "", //  globe
			Phone:      "", //  phone
			Bolt:       "", //  bolt
		},
		fallback: "", //  filled circle
	}
}

// Plain returns a glyph set for terminals without patched fonts.
func Plain() Set {
	return Set{
		glyphs: map[ID]string{
			House:      "⌂",
			People:     "☍",
			PaperPlane: "➤",
			Arrows:     "⇄",
			Pin:        "⚑",
			Wallet:     "▣",
			Clock:      "◷",
			Shield:     "◈",
			Globe:      "◍",
			Phone:      "✆",
			Bolt:       "↯",
		},
		fallback: "•",
	}
}

func (s Set) Glyph(id ID) string {
	if g, ok := s.glyphs[id]; ok {
		return g
	}
	return s.fallback
}
