package content

import (
	"math/rand/v2"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
)

// The virtual canvas is 5x the viewport in each dimension; new sparks spawn
// near its visual center. This convention is shared with the mobile client
// and must match exactly.
const canvasScale = 5

// maxJitter bounds the random offset per axis so successively created items
// don't stack at the exact same point.
const maxJitter = 60

// SpawnOffset returns the half-footprint offset used to center an item of
// the given stored kind. Notes are smaller tiles than images and files.
func SpawnOffset(tag domain.KindTag) float64 {
	switch tag {
	case domain.TagNote:
		return 80
	case domain.TagAudio:
		return 90
	default:
		return 100
	}
}

// Spawn computes the initial on-canvas position for a new spark: the canvas
// center shifted back by the item's half footprint, plus independent uniform
// jitter in [-maxJitter, maxJitter] per axis. Not deterministic by design.
func Spawn(viewportWidth, viewportHeight, offset float64) (x, y float64) {
	x = viewportWidth*canvasScale/2 - offset + jitter()
	y = viewportHeight*canvasScale/2 - offset + jitter()
	return x, y
}

func jitter() float64 {
	return rand.Float64()*(2*maxJitter) - maxJitter
}
