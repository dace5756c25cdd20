package screens

import (
	"github.com/nyaga/pesa/internal/icons"
	"github.com/nyaga/pesa/internal/routes"
	"github.com/nyaga/pesa/internal/theme"
	"github.com/nyaga/pesa/internal/widgets"
)

func Home(pal theme.Palette, ic icons.Set) *Screen {
	d := routes.Lookup(routes.KeyHome)
	return newScreen(routes.KeyHome, d.Label,
		"Your money at a glance. Balances, recent activity and shortcuts will live here.",
		pal,
		widgets.Card{Glyph: ic.Glyph(icons.Wallet), Heading: "Balance", Caption: "Linked accounts and wallet balances appear here once you sign in.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Clock), Heading: "Recent activity", Caption: "Your latest transfers show up here.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Bolt), Heading: "Quick send", Caption: "Repeat a recent transfer with one tap.", Palette: pal},
	)
}

func Recipients(pal theme.Palette, ic icons.Set) *Screen {
	d := routes.Lookup(routes.KeyRecipients)
	return newScreen(routes.KeyRecipients, d.Label,
		"People you send money to. Add, edit and organise recipients.",
		pal,
		widgets.Card{Glyph: ic.Glyph(icons.People), Heading: "Saved recipients", Caption: "Recipients you add are stored for faster repeat transfers.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Shield), Heading: "Verified details", Caption: "Bank and mobile wallet details are checked before every transfer.", Palette: pal},
	)
}

func SendMoney(pal theme.Palette, ic icons.Set) *Screen {
	d := routes.Lookup(routes.KeySendMoney)
	return newScreen(routes.KeySendMoney, d.Label,
		"Start a new transfer. Choose a recipient, an amount and a delivery method.",
		pal,
		widgets.Card{Glyph: ic.Glyph(icons.PaperPlane), Heading: "New transfer", Caption: "Send to a bank account, mobile wallet or cash pickup point.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Globe), Heading: "Exchange rates", Caption: "Live rates are locked in when you confirm a transfer.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Shield), Heading: "Protected", Caption: "Every transfer is encrypted and monitored for fraud.", Palette: pal},
	)
}

func Track(pal theme.Palette, ic icons.Set) *Screen {
	d := routes.Lookup(routes.KeyTrack)
	return newScreen(routes.KeyTrack, d.Label,
		"Follow your transfers from sent to delivered.",
		pal,
		widgets.Card{Glyph: ic.Glyph(icons.Arrows), Heading: "In progress", Caption: "Transfers currently on their way appear here.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Clock), Heading: "History", Caption: "Completed transfers are kept for your records.", Palette: pal},
	)
}

func Locations(pal theme.Palette, ic icons.Set) *Screen {
	d := routes.Lookup(routes.KeyLocations)
	return newScreen(routes.KeyLocations, d.Label,
		"Find agents and cash pickup points near you.",
		pal,
		widgets.Card{Glyph: ic.Glyph(icons.Pin), Heading: "Nearby agents", Caption: "Agent locations and opening hours will be listed here.", Palette: pal},
		widgets.Card{Glyph: ic.Glyph(icons.Phone), Heading: "Support", Caption: "Call or message support from any location page.", Palette: pal},
	)
}

// All returns the five screens in tab order, matching routes.Keys.
func All(pal theme.Palette, ic icons.Set) []*Screen {
	return []*Screen{
		Home(pal, ic),
		Recipients(pal, ic),
		SendMoney(pal, ic),
		Track(pal, ic),
		Locations(pal, ic),
	}
}
