// Package testhelpers provides deterministic sequence generators for
// filling bit structures with reproducible pseudo-random patterns in
// tests.
package testhelpers

import "math/rand"

// SeqGen produces an unbounded sequence of uints.
type SeqGen interface {
	Seed(value uint)
	Next() uint
	Reset()
}

const (
	SgRand = iota
	SgSeq
)

func NewSeqGen(sgt int) SeqGen {
	switch sgt {
	case SgRand:
		return &randSG{}
	case SgSeq:
		return &seqSG{}
	default:
		panic("invalid sequence generator type")
	}
}

type randSG struct {
	r *rand.Rand
}

func (g *randSG) Next() uint {
	if g.r == nil {
		g.r = rand.New(rand.NewSource(1))
	}
	return uint(g.r.Int63())
}

func (g *randSG) Reset() {
	g.r = rand.New(rand.NewSource(1))
}

func (g *randSG) Seed(value uint) {
	g.r = rand.New(rand.NewSource(int64(value)))
}

type seqSG struct {
	cur uint
}

func (g *seqSG) Next() uint {
	v := g.cur
	g.cur++
	return v
}

func (g *seqSG) Reset() {
	g.cur = 0
}

func (g *seqSG) Seed(value uint) {
	g.cur = value
}
