package carousel

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Composer renders one SlideSpec at a time into a RenderedSlide,
// dispatching on the slide's positional variant. It holds only read-only
// state (theme, fonts, logos) and is safe to reuse across decks.
type Composer struct {
	theme  *Theme
	fonts  *FontCache
	assets BrandAssets
}

// NewComposer creates a Composer. A nil theme selects DefaultTheme; a nil
// font cache creates one probing the default font paths.
func NewComposer(theme *Theme, fonts *FontCache, assets BrandAssets) *Composer {
	if theme == nil {
		theme = DefaultTheme()
	}
	if fonts == nil {
		fonts = NewFontCache()
	}
	return &Composer{theme: theme, fonts: fonts, assets: assets}
}

// RenderDeck renders every slide of the deck, in order. The returned
// slice is index-aligned with deck.Slides. An empty deck is the single
// fatal input condition.
func (c *Composer) RenderDeck(deck *Deck) ([]RenderedSlide, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	total := len(deck.Slides)
	slides := make([]RenderedSlide, total)
	for i, spec := range deck.Slides {
		slides[i] = c.RenderSlide(spec, i, total, deck.Topic)
		Logger().Debug("slide rendered",
			"index", i, "variant", VariantFor(i, total).String())
	}
	return slides, nil
}

// RenderSlide composes one slide given its index and the deck's total
// slide count. Composition cannot fail: missing assets and fonts degrade
// to their fallbacks.
func (c *Composer) RenderSlide(spec SlideSpec, index, total int, topic string) RenderedSlide {
	var p *painter
	switch VariantFor(index, total) {
	case VariantCover:
		p = c.renderCover(spec, topic, total)
	case VariantCTA:
		p = c.renderCTA(spec, total)
	default:
		p = c.renderContent(spec, index, total)
	}
	return RenderedSlide{Index: index, Image: p.img}
}

// --- Cover variant ---

func (c *Composer) renderCover(spec SlideSpec, topic string, total int) *painter {
	t := c.theme
	p := newPainter(t.Width, t.Height, t.DeepBlue)

	c.drawProgressDots(p, total, 0, 50)

	// Gold accent line above the logo.
	p.fillRect(t.Width/2-120, 80, t.Width/2+120, 83, t.Gold)

	c.drawLogoInPill(p, c.assets.Wide, t.Width/2, 140, 40, 20)

	// Title falls back to the topic when the cover slide carries none.
	title := spec.Title
	if title == "" {
		title = topic
	}
	titleFace := c.fonts.Face(72, WeightBold)
	y := 220
	for _, line := range capLines(Wrap(titleFace, Sanitize(title), t.Width-140), 3) {
		p.textCentered(titleFace, line, y, t.Gold)
		y += 85
	}

	subFace := c.fonts.Face(40, WeightBold)
	for _, line := range capLines(Wrap(subFace, Sanitize(topic), t.Width-160), 2) {
		p.textCentered(subFace, line, y, t.White)
		y += 50
	}

	y += 20
	p.fillRect(t.Width/2-80, y, t.Width/2+80, y+3, t.Gold)
	y += 30

	// Up to four summary bullets, centered and muted.
	bodyFace := c.fonts.Face(28, WeightRegular)
	for _, b := range capStrings(spec.Bullets, 4) {
		for _, line := range capLines(Wrap(bodyFace, Sanitize(b), t.Width-200), 2) {
			p.textCentered(bodyFace, line, y, t.SoftGray)
			y += 36
		}
		y += 8
	}

	// "Swipe to continue" pill above the footer.
	cardY := t.Height - t.FooterHeight - 130
	p.fillRoundedRect(t.Width/2-200, cardY, t.Width/2+200, cardY+60, 30, t.MidBlue)
	cardFace := c.fonts.Face(26, WeightBold)
	p.textCentered(cardFace, t.SwipeLabel, cardY+16, t.White)

	c.drawFooter(p)
	return p
}

// --- Content variant ---

func (c *Composer) renderContent(spec SlideSpec, index, total int) *painter {
	t := c.theme
	p := newPainter(t.Width, t.Height, t.LightBG)

	c.drawWatermark(p)
	c.drawProgressDots(p, total, index, 50)

	// Header band with gold underline.
	p.fillRect(0, 70, t.Width, 120, t.DeepBlue)
	p.fillRect(0, 120, t.Width, 124, t.Gold)

	// Step badge.
	badgeFace := c.fonts.Face(22, WeightBold)
	p.fillRoundedRect(60, 85, 200, 115, 15, t.MidBlue)
	p.text(badgeFace, fmt.Sprintf(t.StepBadgeFormat, index+1), 80, 89, t.Gold)

	// Numbered gold circle on the right.
	numCX, numCY := t.Width-80, 97
	p.fillEllipse(numCX-22, numCY-22, numCX+22, numCY+22, t.Gold)
	numFace := c.fonts.Face(24, WeightBold)
	num := fmt.Sprintf("%d", index+1)
	p.text(numFace, num, numCX-textWidth(numFace, num)/2, numCY-14, t.DeepBlue)

	if len(t.IconCycle) > 0 {
		drawIcon(p, t.IconCycle[index%len(t.IconCycle)], t.Width/2, 190, 50, t.Gold)
	}

	titleFace := c.fonts.Face(42, WeightBold)
	y := 240
	for _, line := range capLines(Wrap(titleFace, Sanitize(spec.Title), t.Width-140), 3) {
		p.textCentered(titleFace, line, y, t.DeepBlue)
		y += 52
	}

	y += 10
	p.fillRect(70, y, t.Width-70, y+2, t.Gold)
	y += 24

	bodyFace := c.fonts.Face(30, WeightRegular)
	if len(spec.Bullets) > 0 {
		for _, b := range capStrings(spec.Bullets, 6) {
			p.fillEllipse(80, y+8, 92, y+20, t.Gold)
			// Continuation lines keep the first line's left edge.
			for _, line := range capLines(Wrap(bodyFace, Sanitize(b), t.Width-200), 3) {
				p.text(bodyFace, line, 110, y, t.DarkGray)
				y += 38
			}
			y += 10
		}
	} else if spec.Body != "" {
		for _, line := range capLines(Wrap(bodyFace, Sanitize(spec.Body), t.Width-160), 8) {
			p.text(bodyFace, line, 80, y, t.DarkGray)
			y += 38
		}
	}

	if spec.TipBox != "" {
		c.drawTipBox(p, spec.TipBox)
	}

	c.drawFooter(p)
	return p
}

// drawTipBox anchors the tip callout to the bottom of the content region,
// growing its height with the wrapped line count.
func (c *Composer) drawTipBox(p *painter, tip string) {
	t := c.theme
	tipFace := c.fonts.Face(24, WeightRegular)
	labelFace := c.fonts.Face(20, WeightBold)

	lines := Wrap(tipFace, Sanitize(tip), t.Width-200)
	tipH := 50 + len(lines)*30
	if tipH < 80 {
		tipH = 80
	}
	tipY := t.Height - t.FooterHeight - tipH - 30

	p.fillRoundedRect(50, tipY, t.Width-50, tipY+tipH, 16, t.DeepBlue)
	p.fillRoundedRect(70, tipY+10, 170, tipY+36, 13, t.Gold)
	p.text(labelFace, t.TipLabel, 82, tipY+12, t.DeepBlue)

	y := tipY + 44
	for _, line := range capLines(lines, 3) {
		p.text(tipFace, line, 80, y, t.Gold)
		y += 30
	}
}

// --- CTA variant ---

func (c *Composer) renderCTA(spec SlideSpec, total int) *painter {
	t := c.theme
	p := newPainter(t.Width, t.Height, t.DeepBlue)

	c.drawWatermark(p)
	c.drawProgressDots(p, total, total-1, 50)

	// Green checkmark badge.
	cx, cy, r := t.Width/2, 220, 70
	p.fillEllipse(cx-r, cy-r, cx+r, cy+r, t.Green)
	p.line(cx-30, cy, cx-8, cy+25, t.White, 6)
	p.line(cx-8, cy+25, cx+35, cy-25, t.White, 6)

	title := spec.Title
	if title == "" {
		title = t.CTAFallbackTitle
	}
	titleFace := c.fonts.Face(52, WeightBold)
	y := 330
	for _, line := range capLines(Wrap(titleFace, Sanitize(title), t.Width-120), 3) {
		p.textCentered(titleFace, line, y, t.White)
		y += 64
	}

	y += 10
	p.fillRect(t.Width/2-60, y, t.Width/2+60, y+3, t.Gold)
	y += 30

	bodyFace := c.fonts.Face(30, WeightRegular)
	if len(spec.Bullets) > 0 {
		for _, b := range capStrings(spec.Bullets, 5) {
			p.fillEllipse(80, y+8, 92, y+20, t.Gold)
			for _, line := range capLines(Wrap(bodyFace, Sanitize(b), t.Width-200), 2) {
				p.text(bodyFace, line, 110, y, t.SoftGray)
				y += 38
			}
			y += 6
		}
	} else if spec.Body != "" {
		for _, line := range capLines(Wrap(bodyFace, Sanitize(spec.Body), t.Width-160), 5) {
			p.text(bodyFace, line, 80, y, t.SoftGray)
			y += 38
		}
	}

	// Call-to-action button.
	y += 30
	btnW, btnH := 600, 70
	bx := (t.Width - btnW) / 2
	p.fillRoundedRect(bx, y, bx+btnW, y+btnH, 35, t.Gold)
	ctaFace := c.fonts.Face(24, WeightBold)
	p.textCentered(ctaFace, t.CTAButtonLabel, y+20, t.DeepBlue)
	y += btnH + 16

	linkFace := c.fonts.Face(22, WeightRegular)
	p.textCentered(linkFace, t.LinkLabel, y, t.SoftGray)
	y += 40

	// Credibility card.
	cardW, cardH := 520, 50
	cardX := (t.Width - cardW) / 2
	p.fillRoundedRect(cardX, y, cardX+cardW, y+cardH, 25, t.MidBlue)
	credFace := c.fonts.Face(20, WeightRegular)
	p.textCentered(credFace, t.CredibilityLine, y+13, t.SoftGray)

	c.drawFooter(p)
	return p
}

// --- Shared chrome ---

// drawProgressDots draws one dot per slide, centered horizontally, with
// the current slide highlighted in gold.
func (c *Composer) drawProgressDots(p *painter, total, current, y int) {
	t := c.theme
	const dotR, gap = 6, 18
	totalW := total*dotR*2 + (total-1)*gap
	startX := (t.Width - totalW) / 2
	for i := 0; i < total; i++ {
		cx := startX + i*(dotR*2+gap) + dotR
		fill := t.ProgressGray
		if i == current {
			fill = t.Gold
		}
		p.fillEllipse(cx-dotR, y-dotR, cx+dotR, y+dotR, fill)
	}
}

// drawFooter draws the brand band: deep blue bar, gold accent line, the
// wide logo in a pill, and the site URL.
func (c *Composer) drawFooter(p *painter) {
	t := c.theme
	fy := t.Height - t.FooterHeight
	p.fillRect(0, fy, t.Width, t.Height, t.DeepBlue)
	p.fillRect(0, fy, t.Width, fy+3, t.Gold)
	c.drawLogoInPill(p, c.assets.Wide, t.Width/2-100, fy+t.FooterHeight/2, 22, 10)

	urlFace := c.fonts.Face(20, WeightRegular)
	p.text(urlFace, t.SiteURL, t.Width/2+20, fy+t.FooterHeight/2-10, t.Gold)
}

// drawLogoInPill draws a logo centered in a white pill at (cx, cy). A nil
// logo draws nothing: the slide simply has no pill there.
func (c *Composer) drawLogoInPill(p *painter, logo image.Image, cx, cy, maxLogoH, pad int) {
	if logo == nil {
		return
	}
	scaled := FitToHeight(logo, maxLogoH)
	lw := scaled.Bounds().Dx()
	lh := scaled.Bounds().Dy()

	pw := lw + pad*2
	ph := lh + pad
	px0 := cx - pw/2
	py0 := cy - ph/2

	p.fillPill(px0, py0, px0+pw, py0+ph, c.theme.White)
	p.drawImage(scaled, px0+(pw-lw)/2, py0+(ph-lh)/2)
}

// drawWatermark places the faint square logo in the top-left corner.
func (c *Composer) drawWatermark(p *painter) {
	if c.assets.Square == nil {
		return
	}
	wm := imaging.Resize(c.assets.Square, 60, 60, imaging.Lanczos)
	p.drawImage(FaintCopy(wm, 40), 30, 25)
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
