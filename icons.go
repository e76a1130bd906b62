package carousel

import (
	"hash/fnv"
	"image"
	"image/color"
)

// IconID names a geometric icon. Unknown ids are not an error: they
// resolve deterministically to a registered icon (see ResolveIcon).
type IconID string

const (
	IconCalendar  IconID = "calendar"
	IconRocket    IconID = "rocket"
	IconClock     IconID = "clock"
	IconLock      IconID = "lock"
	IconHourglass IconID = "hourglass"
	IconCheckmark IconID = "checkmark"
)

// iconEntry pairs an id with its vector drawing procedure. Procedures
// draw around a center point with a nominal size, using the single
// accent color the caller supplies.
type iconEntry struct {
	id   IconID
	draw func(p *painter, cx, cy, size int, c color.RGBA)
}

// iconRegistry is the fixed, ordered registry. Order matters: the
// fallback for unknown ids indexes into it by hash, so reordering would
// change which icon an unknown id resolves to.
var iconRegistry = []iconEntry{
	{IconCalendar, drawCalendar},
	{IconRocket, drawRocket},
	{IconClock, drawClock},
	{IconLock, drawLock},
	{IconHourglass, drawHourglass},
	{IconCheckmark, drawCheckmark},
}

// ResolveIcon maps an id to a registered icon. Known ids map to
// themselves. Unknown ids resolve via FNV-1a modulo the registry size, so
// the same unknown id always yields the same icon across runs. This
// always-render-something fallback is deliberate; upstream content
// occasionally invents icon names and a slide with a wrong icon beats a
// failed export.
func ResolveIcon(id IconID) IconID {
	for _, e := range iconRegistry {
		if e.id == id {
			return id
		}
	}
	h := fnv.New32a()
	h.Write([]byte(id))
	return iconRegistry[h.Sum32()%uint32(len(iconRegistry))].id
}

// drawIcon renders the icon for id centered at (cx, cy).
func drawIcon(p *painter, id IconID, cx, cy, size int, c color.RGBA) {
	resolved := ResolveIcon(id)
	if resolved != id {
		Logger().Warn("unknown icon id, using hashed fallback",
			"id", string(id), "resolved", string(resolved))
	}
	for _, e := range iconRegistry {
		if e.id == resolved {
			e.draw(p, cx, cy, size, c)
			return
		}
	}
}

func drawCalendar(p *painter, cx, cy, size int, c color.RGBA) {
	hs := size / 2
	p.strokeRect(cx-hs, cy-hs, cx+hs, cy+hs, c, 3)
	p.fillRect(cx-hs, cy-hs, cx+hs, cy-hs+size/3, c)
	// Hanger ticks.
	p.line(cx-hs/2, cy-hs-6, cx-hs/2, cy-hs+4, c, 3)
	p.line(cx+hs/2, cy-hs-6, cx+hs/2, cy-hs+4, c, 3)
}

func drawRocket(p *painter, cx, cy, size int, c color.RGBA) {
	hs := size / 2
	p.fillTriangle(
		image.Pt(cx, cy-hs),
		image.Pt(cx+hs/2, cy+hs),
		image.Pt(cx-hs/2, cy+hs),
		c,
	)
	p.fillRect(cx-hs/3, cy+hs, cx+hs/3, cy+hs+size/4, c)
}

func drawClock(p *painter, cx, cy, size int, c color.RGBA) {
	hs := size / 2
	p.strokeEllipse(cx-hs, cy-hs, cx+hs, cy+hs, c, 3)
	p.line(cx, cy, cx, cy-hs+8, c, 3)
	p.line(cx, cy, cx+hs-10, cy, c, 3)
}

func drawLock(p *painter, cx, cy, size int, c color.RGBA) {
	hs := size / 2
	p.fillRect(cx-hs+5, cy, cx+hs-5, cy+hs, c)
	p.strokeEllipse(cx-hs/2, cy-hs, cx+hs/2, cy+4, c, 3)
}

func drawHourglass(p *painter, cx, cy, size int, c color.RGBA) {
	hs := size / 2
	p.fillTriangle(
		image.Pt(cx-hs, cy-hs),
		image.Pt(cx+hs, cy-hs),
		image.Pt(cx, cy),
		c,
	)
	p.fillTriangle(
		image.Pt(cx-hs, cy+hs),
		image.Pt(cx+hs, cy+hs),
		image.Pt(cx, cy),
		c,
	)
}

func drawCheckmark(p *painter, cx, cy, size int, c color.RGBA) {
	hs := size / 2
	p.line(cx-hs, cy, cx-hs/3, cy+hs/2, c, 4)
	p.line(cx-hs/3, cy+hs/2, cx+hs, cy-hs/2, c, 4)
}
