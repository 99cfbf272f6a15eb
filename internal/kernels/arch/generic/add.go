// Package generic provides the pure Go quad-add kernel.
package generic

// AddQuad computes dst[i] = a[i] + b[i] one lane at a time.
func AddQuad(dst, a, b *[4]float32) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
