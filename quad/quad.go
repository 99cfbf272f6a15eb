package quad

// Lanes is the number of float32 elements in a Quad and in a Vec128.
const Lanes = 4

// Quad is an ordered group of four float32 values.
type Quad [Lanes]float32

// ScalarAdd returns a new Quad holding a[i] + b[i], computed element by
// element. Every call makes one heap allocation that the caller owns.
//
//go:noinline
func ScalarAdd(a, b Quad) *Quad {
	sum := new(Quad)
	for i := range sum {
		sum[i] = a[i] + b[i]
	}
	return sum
}
