package model

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Seed builds a grid whose interior cells are each alive with probability
// density. A nil rng uses the shared math/rand generator.
func Seed(height, width int, density float64, rng *rand.Rand) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[Seed] dimensions %dx%d", height, width)
	}
	// !(a && b) also rejects NaN
	if !(density >= 0 && density <= 1) {
		return nil, errors.Wrapf(ErrInvalidArgument, "[Seed] density %v not in [0, 1]", density)
	}

	roll := rand.Float64
	if rng != nil {
		roll = rng.Float64
	}

	g := newGrid(height, width)
	for row := 1; row < height-1; row++ {
		for col := 1; col < width-1; col++ {
			g.cells[row][col] = roll() < density
		}
	}
	return g, nil
}

// NewRand returns a deterministic generator for a non-zero seed
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// NewSeed draws a non-zero seed from crypto/rand
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, errors.Wrap(err, "[NewSeed] failed to read random seed")
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}
