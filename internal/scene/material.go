package scene

import (
	"image/color"
	"sync/atomic"
)

// materialCount hands out stable material ids.
var materialCount atomic.Uint64

// Material describes the surface of a mesh. Emissive is optional: a material
// without it is never touched by hover effects.
type Material struct {
	id                uint64
	Color             color.RGBA
	emissive          bool
	EmissiveColor     color.RGBA
	EmissiveIntensity float64
}

// NewMaterial creates a plain, non-emissive material
func NewMaterial(c color.RGBA) *Material {
	return &Material{id: materialCount.Add(1), Color: c}
}

// NewEmissiveMaterial creates a material that glows with the given intensity
func NewEmissiveMaterial(c, emissive color.RGBA, intensity float64) *Material {
	m := NewMaterial(c)
	m.emissive = true
	m.EmissiveColor = emissive
	m.EmissiveIntensity = intensity
	return m
}

// ID returns the stable identifier of the material
func (m *Material) ID() uint64 { return m.id }

// HasEmissive reports whether the material has an emissive channel
func (m *Material) HasEmissive() bool { return m.emissive }

// Shade returns the colour a flat renderer should use: the base colour
// brightened towards the emissive colour by the current intensity.
func (m *Material) Shade() color.RGBA {
	return m.Lit(1)
}

// Lit returns the colour under a diffuse light factor. Emission is added on
// top and is not affected by the light.
func (m *Material) Lit(light float64) color.RGBA {
	k := 0.0
	if m.emissive {
		k = m.EmissiveIntensity
		if k > 1 {
			k = 1
		}
	}
	mix := func(base, glow uint8) uint8 {
		v := float64(base)*light + float64(glow)*k
		if v > 255 {
			v = 255
		}
		if v < 0 {
			v = 0
		}
		return uint8(v)
	}
	return color.RGBA{
		R: mix(m.Color.R, m.EmissiveColor.R),
		G: mix(m.Color.G, m.EmissiveColor.G),
		B: mix(m.Color.B, m.EmissiveColor.B),
		A: m.Color.A,
	}
}
