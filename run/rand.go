package run

import (
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/YoutacRandS-VA/uiua/prim"
	"github.com/YoutacRandS-VA/uiua/value"
)

// tagCounter issues unique tags.  It is shared by every unit spawned from
// the same root environment.
type tagCounter struct {
	n uint64
}

func (t *tagCounter) next() uint64 {
	return atomic.AddUint64(&t.n, 1)
}

func randHandlers() map[prim.Primitive]handler {
	return map[prim.Primitive]handler{
		prim.Rand: func(env *Env, span Span) error {
			env.Push(value.Num(env.rand().Float64()))
			return nil
		},
		prim.Gen:  opGen,
		prim.Deal: opDeal,
		prim.Tag: func(env *Env, span Span) error {
			env.Push(value.Num(float64(env.tag.next())))
			return nil
		},
	}
}

const seedMask = 1<<53 - 1

// splitmix is the SplitMix64 output function, used to derive pure random
// values from explicit seeds.
func splitmix(s uint64) uint64 {
	s += 0x9e3779b97f4a7c15
	z := s
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}

// opGen derives a random number in [0,1) from an explicit seed and pushes
// the next seed on top of it.  The same seed always yields the same pair.
func opGen(env *Env, span Span) error {
	sv, err := env.Pop(span)
	if err != nil {
		return err
	}
	seed, err := sv.AsNum("gen")
	if err != nil {
		return kernelErr(err, span)
	}
	h := splitmix(math.Float64bits(seed))
	env.Push(value.Num(float64(h>>11) / (1 << 53)))
	env.Push(value.Num(float64(splitmix(h) & seedMask)))
	return nil
}

// opDeal shuffles the rows of an array with a generator built from an
// explicit seed.
func opDeal(env *Env, span Span) error {
	sv, err := env.Pop(span)
	if err != nil {
		return err
	}
	seed, err := sv.AsNum("deal")
	if err != nil {
		return kernelErr(err, span)
	}
	v, err := env.Pop(span)
	if err != nil {
		return err
	}
	if v.Rank() == 0 {
		return errorf(KindType, span, "cannot deal a scalar")
	}
	rows := v.Rows()
	rng := rand.New(rand.NewSource(int64(math.Float64bits(seed))))
	rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})
	out, err := value.FromRows(rows, nil)
	if err != nil {
		return kernelErr(err, span)
	}
	env.Push(out)
	return nil
}
