package util

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const IdleColor = "#e0e0e0"

// PastelColor derives a stable pastel hsl() color from a label, so the same
// process keeps its color across requests.
func PastelColor(label string) string {
	h := xxhash.Sum64String(label)
	hue := h % 360
	saturation := 75 + (h>>16)%25
	lightness := 75 + (h>>32)%10
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, saturation, lightness)
}
