package quad

import "testing"

func BenchmarkScalarAdd(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scalarSink = ScalarAdd(fixedA, fixedB)
	}
}

func BenchmarkVectorAdd(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vectorSink = VectorAdd(fixedA, fixedB)
	}
}

func BenchmarkReferenceAdd(b *testing.B) {
	var sink Quad
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = ReferenceAdd(fixedA, fixedB)
	}
	_ = sink
}
