package vectorcade

import "github.com/MichaelTJones/pcg"

// Source is the single primitive a deterministic generator must supply.
// Every other draw is derived from it by [Rand] with fixed formulas, so two
// sources that agree on NextU32 agree on everything.
type Source interface {
	NextU32() uint32
}

// GameRng is the randomness capability handed to games through [GameCtx].
// Games must not use any other source of randomness; doing so breaks replays.
type GameRng interface {
	// NextU32 returns the next raw 32-bit draw.
	NextU32() uint32
	// NextU64 consumes two NextU32 draws: high word first, then low word.
	NextU64() uint64
	// NextF32 returns a float in [0, 1) built from the top 23 bits of a draw.
	NextF32() float32
	// RangeF32 returns a float in [lo, hi).
	RangeF32(lo, hi float32) float32
	// RangeI32 returns an integer in [lo, hi). Returns lo without drawing
	// when lo >= hi.
	RangeI32(lo, hi int32) int32
	// Chance reports true with probability p.
	Chance(p float32) bool
	// PickIndex returns an index in [0, n). Returns false when n <= 0.
	PickIndex(n int) (int, bool)
}

// Rand derives the full GameRng surface from a Source.
//
// The formulas are fixed for bit-compatibility with recorded replays. The
// modulo bucketing in RangeI32 and PickIndex is slightly biased for ranges
// that are not a power of two; that bias is part of the contract.
type Rand struct {
	src Source
}

var _ GameRng = (*Rand)(nil)

// NewRand wraps src.
func NewRand(src Source) *Rand {
	return &Rand{src: src}
}

// NewXorshiftRand returns a Rand over a fresh Xorshift64 seeded with seed.
func NewXorshiftRand(seed uint64) *Rand {
	return NewRand(NewXorshift64(seed))
}

// Source returns the underlying generator.
func (r *Rand) Source() Source {
	return r.src
}

func (r *Rand) NextU32() uint32 {
	return r.src.NextU32()
}

func (r *Rand) NextU64() uint64 {
	hi := uint64(r.src.NextU32())
	lo := uint64(r.src.NextU32())
	return hi<<32 | lo
}

func (r *Rand) NextF32() float32 {
	return float32(r.src.NextU32()>>9) * (1.0 / float32(1<<23))
}

func (r *Rand) RangeF32(lo, hi float32) float32 {
	return lo + r.NextF32()*(hi-lo)
}

func (r *Rand) RangeI32(lo, hi int32) int32 {
	if lo >= hi {
		return lo
	}
	// Unsigned arithmetic: spans wider than MaxInt32 must not overflow.
	span := uint32(hi) - uint32(lo)
	return int32(uint32(lo) + r.src.NextU32()%span)
}

func (r *Rand) Chance(p float32) bool {
	return r.NextF32() < p
}

func (r *Rand) PickIndex(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return int(uint64(r.src.NextU32()) % uint64(n)), true
}

// Pick returns a random element of items, or the zero value and false when
// items is empty.
func Pick[T any](rng GameRng, items []T) (T, bool) {
	i, ok := rng.PickIndex(len(items))
	if !ok {
		var zero T
		return zero, false
	}
	return items[i], true
}

// --- Xorshift64 ---

const (
	// DefaultSeed is the seed used by DefaultXorshift64 and DefaultConfig.
	DefaultSeed uint64 = 0x1234_5678_9ABC_DEF0

	// zeroSeedState replaces a zero seed; xorshift has an all-zero fixed point.
	zeroSeedState uint64 = 0xDEAD_BEEF_CAFE_BABE
)

// Xorshift64 is a 64-bit xorshift generator with the (13, 7, 17) shift
// triple. Fast and portable; not cryptographically secure.
type Xorshift64 struct {
	state uint64
}

var _ Source = (*Xorshift64)(nil)

// NewXorshift64 creates a generator. A zero seed is silently replaced with a
// fixed non-zero constant.
func NewXorshift64(seed uint64) *Xorshift64 {
	if seed == 0 {
		seed = zeroSeedState
	}
	return &Xorshift64{state: seed}
}

// DefaultXorshift64 returns a generator seeded with DefaultSeed.
func DefaultXorshift64() *Xorshift64 {
	return NewXorshift64(DefaultSeed)
}

// Step advances the state by one xorshift round and returns it.
func (x *Xorshift64) Step() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// NextU32 returns the low 32 bits of one step.
func (x *Xorshift64) NextU32() uint32 {
	return uint32(x.Step())
}

// State returns the current internal state. Feeding it back into
// NewXorshift64 resumes the exact same stream.
func (x *Xorshift64) State() uint64 {
	return x.state
}

// --- PCG32 ---

// pcgSequence selects the PCG stream; only the seed varies between runs.
const pcgSequence uint64 = 0xda3e39cb94b95bdb

// PCG32 is a Source backed by the PCG-XSH-RR generator. It has better
// statistical quality than Xorshift64 at a small speed cost.
type PCG32 struct {
	r *pcg.PCG32
}

var _ Source = (*PCG32)(nil)

// NewPCG32 creates a PCG32 source seeded with seed.
func NewPCG32(seed uint64) *PCG32 {
	r := pcg.NewPCG32()
	r.Seed(seed, pcgSequence)
	return &PCG32{r: r}
}

func (p *PCG32) NextU32() uint32 {
	return p.r.Random()
}
