// Package theme derives decoration colors from a recipe's image reference.
//
// The catalog never blocks on extraction and has no behavior depending on
// its result; this package exists for display layers that want a gradient
// per recipe card.
package theme

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/aretw0/lifecycle"
)

// Fallback palette used when a record has no image reference.
const (
	DefaultStart = 0xFF6B6B
	DefaultEnd   = 0xFFD93D
)

// Pair holds the start and end colors of a decoration gradient, formatted
// as "#RRGGBB".
type Pair struct {
	Start string
	End   string
}

// Extractor asynchronously derives a color pair from an image reference.
// The derivation is deterministic: the same reference always yields the
// same pair.
type Extractor struct {
	// Brightness scales the derived end color. Values <= 0 default to 1.4,
	// producing a lighter complementary gradient stop.
	Brightness float64
}

// Extract returns a channel that receives exactly one Pair and is then
// closed. An empty reference yields the default palette.
func (e *Extractor) Extract(ctx context.Context, imageRef string) <-chan Pair {
	out := make(chan Pair, 1)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(out)
		select {
		case out <- e.derive(imageRef):
		case <-ctx.Done():
		}
		return nil
	})
	return out
}

func (e *Extractor) derive(imageRef string) Pair {
	factor := e.Brightness
	if factor <= 0 {
		factor = 1.4
	}

	start := uint32(DefaultStart)
	end := uint32(DefaultEnd)
	if imageRef != "" {
		h := fnv.New32a()
		h.Write([]byte(imageRef))
		start = h.Sum32() & 0xFFFFFF
		end = AdjustBrightness(start, factor)
	}

	return Pair{
		Start: formatColor(start),
		End:   formatColor(end),
	}
}

// AdjustBrightness scales the RGB channels of a 0xRRGGBB color by factor,
// clamping each channel at 255.
func AdjustBrightness(color uint32, factor float64) uint32 {
	r := color >> 16 & 0xff
	g := color >> 8 & 0xff
	b := color & 0xff

	r = clamp(uint32(float64(r) * factor))
	g = clamp(uint32(float64(g) * factor))
	b = clamp(uint32(float64(b) * factor))

	return r<<16 | g<<8 | b
}

func clamp(v uint32) uint32 {
	if v > 255 {
		return 255
	}
	return v
}

func formatColor(c uint32) string {
	return fmt.Sprintf("#%06X", c&0xFFFFFF)
}
