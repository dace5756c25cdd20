// Package routes holds the fixed descriptor table for the tab set.
package routes

import "github.com/nyaga/pesa/internal/icons"

// Route keys double as the screen registration path segments.
const (
	KeyHome       = "index"
	KeyRecipients = "recipients"
	KeySendMoney  = "send-money"
	KeyTrack      = "track"
	KeyLocations  = "locations"
)

// Descriptor is the display label and icon for one route key.
type Descriptor struct {
	Label string
	Icon  icons.ID
}

var table = map[string]Descriptor{
	KeyHome:       {Label: "Home", Icon: icons.House},
	KeyRecipients: {Label: "Recipients", Icon: icons.People},
	KeySendMoney:  {Label: "Send Money", Icon: icons.PaperPlane},
	KeyTrack:      {Label: "Track", Icon: icons.Arrows},
	KeyLocations:  {Label: "Locations", Icon: icons.Pin},
}

// Keys returns the route keys in tab order.
func Keys() []string {
	return []string{KeyHome, KeyRecipients, KeySendMoney, KeyTrack, KeyLocations}
}

// Lookup is total: unknown keys degrade to the Home descriptor rather
// than failing.
func Lookup(key string) Descriptor {
	if d, ok := table[key]; ok {
		return d
	}
	return table[KeyHome]
}
