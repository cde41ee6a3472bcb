package color

// Accent saturation and lightness chosen for readable badge backgrounds.
const (
	accentSaturation = 40
	accentLightness  = 65
)

// ForKey returns a stable accent color for an arbitrary key such as a
// palette slug. The same key always yields the same color.
func ForKey(key string) RGB {
	h := 0
	for _, c := range key {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	return HSLToRGB(float64(h%360), accentSaturation, accentLightness)
}
