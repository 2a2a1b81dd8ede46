package bitmatrix_test

import (
	"bytes"
	"fmt"

	"github.com/pi/bitmatrix"
)

func ExampleMatrix() {
	m := bitmatrix.New(2, 2)
	m.Set(0, 1, true)
	m.Set(1, 0, true)
	for bit := range m.Bits() {
		fmt.Println(bit)
	}
	// Output:
	// false
	// true
	// true
	// false
}

func ExampleMatrix_String() {
	m := bitmatrix.New(2, 2)
	m.Set(0, 1, true)
	m.Set(1, 0, true)
	fmt.Print(m)
	// Output:
	// 01
	// 10
}

func ExampleMatrix_MutBits() {
	m := bitmatrix.New(3, 3)
	for bit := range m.MutBits() {
		bit.Set(bit.Row() == bit.Col())
	}
	fmt.Print(m)
	// Output:
	// 100
	// 010
	// 001
}

func ExampleMatrix_Row() {
	m := bitmatrix.New(3, 4)
	row := m.Row(1)
	row.Put(2, true)
	fmt.Println(m.Get(1, 2))
	// Output:
	// true
}

func ExampleWriteSnapshot() {
	m := bitmatrix.New(2, 3)
	m.Set(0, 0, true)
	m.Set(1, 2, true)

	var buf bytes.Buffer
	if err := bitmatrix.WriteSnapshot(&buf, m, bitmatrix.CompressionZstd); err != nil {
		panic(err)
	}
	r, err := bitmatrix.ReadSnapshot(&buf)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Equal(m))
	// Output:
	// true
}
