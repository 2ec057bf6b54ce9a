package zones

import "image/color"

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Booth palette
var (
	Violet      = hex(0x8b5cf6)
	Lavender    = hex(0xa78bfa)
	Cyan        = hex(0x06b6d4)
	Emerald     = hex(0x10b981)
	Sky         = hex(0x0ea5e9)
	Slate       = hex(0x1e293b)
	SlateLight  = hex(0x94a3b8)
	Navy        = hex(0x0f172a)
	Ink         = hex(0x020617)
	HallBlue    = hex(0x0b1220)
	Charcoal    = hex(0x111827)
	Graphite    = hex(0x1f2937)
	Mist        = hex(0xe0e7ff)
	White       = hex(0xffffff)
	Amber       = hex(0xf59e0b)
	errorRed    = hex(0xef4444)
	transparent = color.RGBA{}
)
