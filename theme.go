package carousel

import "image/color"

// Theme is the fixed brand configuration: canvas geometry, palette,
// branding strings, and the icon cycle for content slides. It is pure
// data; a Theme is never mutated by the engine.
type Theme struct {
	// Canvas geometry in pixels.
	Width        int
	Height       int
	FooterHeight int

	// Palette.
	DeepBlue     color.RGBA
	Gold         color.RGBA
	White        color.RGBA
	LightBG      color.RGBA
	MidBlue      color.RGBA
	Green        color.RGBA
	SoftGray     color.RGBA
	DarkGray     color.RGBA
	ProgressGray color.RGBA

	// Branding strings.
	SiteURL          string
	SwipeLabel       string
	StepBadgeFormat  string // fmt verb receives the 1-based slide number
	TipLabel         string
	CTAButtonLabel   string
	CTAFallbackTitle string
	LinkLabel        string
	CredibilityLine  string

	// IconCycle is indexed by slide position modulo its length to pick
	// the geometric icon on content slides.
	IconCycle []IconID
}

// DefaultTheme returns the tuspapeles2026 brand theme: a 1080x1350
// portrait canvas with an 80 px footer band.
func DefaultTheme() *Theme {
	return &Theme{
		Width:        1080,
		Height:       1350,
		FooterHeight: 80,

		DeepBlue:     color.RGBA{R: 27, G: 58, B: 92, A: 255},
		Gold:         color.RGBA{R: 212, G: 168, B: 67, A: 255},
		White:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		LightBG:      color.RGBA{R: 240, G: 244, B: 250, A: 255},
		MidBlue:      color.RGBA{R: 45, G: 80, B: 120, A: 255},
		Green:        color.RGBA{R: 45, G: 139, B: 78, A: 255},
		SoftGray:     color.RGBA{R: 180, G: 190, B: 205, A: 255},
		DarkGray:     color.RGBA{R: 80, G: 90, B: 100, A: 255},
		ProgressGray: color.RGBA{R: 100, G: 110, B: 130, A: 255},

		SiteURL:          "tuspapeles2026.es",
		SwipeLabel:       "Desliza para ver...",
		StepBadgeFormat:  "PASO %d",
		TipLabel:         "CONSEJO",
		CTAButtonLabel:   "VERIFICAR ELEGIBILIDAD GRATIS",
		CTAFallbackTitle: "Empieza hoy",
		LinkLabel:        "Link en bio",
		CredibilityLine:  "Pombo, Horowitz y Espinosa  -  Abogados",

		IconCycle: []IconID{
			IconCalendar, IconRocket, IconClock,
			IconLock, IconHourglass, IconCheckmark,
		},
	}
}
