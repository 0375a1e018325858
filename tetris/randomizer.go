package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Randomizer chooses the kind of each spawned piece.
type Randomizer interface {
	Next() Kind
}

// Randomizer names accepted by NewRandomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// NewRandomizer builds the named randomizer seeded with seed.
func NewRandomizer(name string, seed uint64) (Randomizer, error) {
	switch name {
	case RandomizerUniform, "":
		return NewUniform(seed), nil
	case RandomizerBag:
		return NewBag(seed), nil
	default:
		return nil, fmt.Errorf("unknown randomizer %q", name)
	}
}

// Uniform picks every kind with equal probability, independently.
type Uniform struct {
	rng *rand.Rand
}

// NewUniform returns a uniform randomizer seeded with seed.
func NewUniform(seed uint64) *Uniform {
	return &Uniform{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns a kind drawn independently of earlier ones.
func (u *Uniform) Next() Kind {
	return Kinds[u.rng.IntN(KindCount)]
}

// Bag deals all seven kinds in a shuffled order before reshuffling.
type Bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag returns a 7-bag randomizer seeded with seed.
func NewBag(seed uint64) *Bag {
	return &Bag{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next deals the next kind of the bag, shuffling a fresh bag when empty.
func (b *Bag) Next() Kind {
	if len(b.pending) == 0 {
		bag := Kinds
		b.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		b.pending = bag[:]
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

// Sequence replays a fixed list of kinds, cycling when exhausted.
type Sequence struct {
	kinds []Kind
	pos   int
}

// NewSequence returns a randomizer that deals kinds in order. kinds must
// not be empty.
func NewSequence(kinds ...Kind) *Sequence {
	return &Sequence{kinds: kinds}
}

// Next returns the following kind of the sequence.
func (s *Sequence) Next() Kind {
	k := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return k
}
