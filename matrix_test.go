package bitmatrix

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	th "github.com/pi/bitmatrix/internal/testhelpers"
)

// fill sets every cell of m from the generator's low bit.
func fill(m *Matrix, g th.SeqGen) {
	for i := uint(0); i < m.Height(); i++ {
		for j := uint(0); j < m.Width(); j++ {
			m.Set(i, j, g.Next()&1 == 1)
		}
	}
}

func TestNewDimensions(t *testing.T) {
	for _, d := range [][2]uint{{5, 10}, {1, 1}, {1, 200}, {200, 1}, {0, 0}, {0, 5}, {5, 0}} {
		m := New(d[0], d[1])
		assert.EqualValues(t, d[0], m.Height())
		assert.EqualValues(t, d[1], m.Width())
		assert.EqualValues(t, 0, m.Count())
	}
}

func TestDefaultFalse(t *testing.T) {
	m := New(9, 13)
	for i := uint(0); i < 9; i++ {
		for j := uint(0); j < 13; j++ {
			assert.False(t, m.Get(i, j))
		}
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	m := New(9, 13)
	ref := m.Clone()
	for _, v := range []bool{true, false} {
		for i := uint(0); i < 9; i++ {
			for j := uint(0); j < 13; j++ {
				m.Set(i, j, v)
				assert.Equal(t, v, m.Get(i, j))
				// no other cell changed
				ref.Set(i, j, v)
				assert.True(t, m.Equal(ref))
			}
		}
	}
}

func TestSetAll(t *testing.T) {
	m := New(3, 11)
	m.SetAll(true)
	assert.EqualValues(t, 33, m.Count())
	for b := range m.Bits() {
		assert.True(t, b)
	}
	m.SetAll(false)
	assert.EqualValues(t, 0, m.Count())
}

func TestRowViewEquivalence(t *testing.T) {
	m := New(7, 19)
	fill(m, th.NewSeqGen(th.SgRand))
	for i := uint(0); i < 7; i++ {
		row := m.Row(i)
		assert.EqualValues(t, 19, row.Len())
		for j := uint(0); j < 19; j++ {
			assert.Equal(t, m.Get(i, j), row.Get(j))
		}
	}
}

func TestRowViewAliases(t *testing.T) {
	m := New(4, 6)
	row := m.Row(2)
	row.Put(3, true)
	assert.True(t, m.Get(2, 3))
	m.Set(2, 5, true)
	assert.True(t, row.Get(5))

	row.SetAll(true)
	assert.EqualValues(t, 6, m.Row(2).Count())
	assert.False(t, m.Get(1, 0))
	assert.False(t, m.Get(3, 0))
}

func TestOutOfBounds(t *testing.T) {
	m := New(5, 7)
	assert.Panics(t, func() { m.Get(1, 8) })
	assert.Panics(t, func() { m.Get(5, 1) })
	assert.Panics(t, func() { m.Set(5, 1, true) })
	assert.Panics(t, func() { m.Set(1, 7, true) })
	assert.Panics(t, func() { m.Row(5) })
	assert.Panics(t, func() { m.Row(1).Put(10, true) })

	// just inside the boundary
	assert.NotPanics(t, func() { m.Get(4, 6) })
	assert.NotPanics(t, func() { m.Set(4, 6, true) })
	assert.NotPanics(t, func() { m.Row(4) })
}

func TestZeroDimensions(t *testing.T) {
	m := New(0, 5)
	assert.Panics(t, func() { m.Get(0, 0) })

	n := New(5, 0)
	// rows exist but are empty, so only column access fails
	assert.EqualValues(t, 0, n.Row(4).Len())
	assert.Panics(t, func() { n.Get(0, 0) })

	rows := 0
	for range n.Rows() {
		rows++
	}
	assert.Equal(t, 5, rows)
}

func TestBitsOrder(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 1, true)
	m.Set(1, 0, true)
	var got []bool
	for b := range m.Bits() {
		got = append(got, b)
	}
	assert.Equal(t, []bool{false, true, true, false}, got)
	assert.False(t, m.Get(0, 0))
	assert.True(t, m.Get(1, 0))
}

func TestBitsMatchesGet(t *testing.T) {
	m := New(6, 37)
	fill(m, th.NewSeqGen(th.SgRand))
	i, j := uint(0), uint(0)
	total := 0
	for b := range m.Bits() {
		assert.Equal(t, m.Get(i, j), b)
		if j++; j == m.Width() {
			j = 0
			i++
		}
		total++
	}
	assert.EqualValues(t, 6*37, total)
}

func TestMutBits(t *testing.T) {
	m := New(2, 2)
	for bit := range m.MutBits() {
		bit.Set(true)
		break
	}
	assert.True(t, m.Get(0, 0))
	assert.EqualValues(t, 1, m.Count())
}

func TestMutBitsCoordinates(t *testing.T) {
	m := New(3, 4)
	for bit := range m.MutBits() {
		bit.Set(bit.Row() == bit.Col())
	}
	for i := uint(0); i < 3; i++ {
		for j := uint(0); j < 4; j++ {
			assert.Equal(t, i == j, m.Get(i, j))
		}
	}
	for bit := range m.MutBits() {
		assert.Equal(t, bit.Row() == bit.Col(), bit.Get())
	}
}

func TestRows(t *testing.T) {
	m := New(4, 9)
	fill(m, th.NewSeqGen(th.SgRand))
	i := uint(0)
	for row := range m.Rows() {
		assert.True(t, row.Equal(m.Row(i)))
		i++
	}
	assert.EqualValues(t, 4, i)

	// non-overlapping views are independently writable in one pass
	i = 0
	for row := range m.Rows() {
		row.SetAll(i%2 == 0)
		i++
	}
	for i := uint(0); i < 4; i++ {
		for j := uint(0); j < 9; j++ {
			assert.Equal(t, i%2 == 0, m.Get(i, j))
		}
	}
}

func TestEqualAndHash(t *testing.T) {
	a := New(6, 11)
	b := New(6, 11)
	g := th.NewSeqGen(th.SgRand)
	fill(a, g)
	g.Reset()
	fill(b, g)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Set(3, 7, !b.Get(3, 7))
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(New(11, 6)))
	assert.False(t, New(2, 3).Equal(New(3, 2)))
}

func TestClone(t *testing.T) {
	m := New(5, 5)
	fill(m, th.NewSeqGen(th.SgRand))
	c := m.Clone()
	assert.True(t, m.Equal(c))
	c.Set(0, 0, !c.Get(0, 0))
	assert.False(t, m.Equal(c))
}

func TestString(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 1, true)
	m.Set(1, 0, true)
	assert.Equal(t, "01\n10\n", m.String())
	assert.Equal(t, "", New(0, 0).String())
	assert.Equal(t, "\n\n", New(2, 0).String())
}

func TestConcurrentReaders(t *testing.T) {
	m := New(64, 64)
	fill(m, th.NewSeqGen(th.SgRand))
	want := m.Clone()

	var eg errgroup.Group
	for r := 0; r < 8; r++ {
		eg.Go(func() error {
			if !m.Equal(want) {
				return fmt.Errorf("reader saw diverged contents")
			}
			n := 0
			for range m.Bits() {
				n++
			}
			if n != 64*64 {
				return fmt.Errorf("short pass: %d bits", n)
			}
			return nil
		})
	}
	assert.NoError(t, eg.Wait())
}
