package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkRing(b *testing.B) {

	for _, logN := range []int{10, 12, 13} {

		r, err := NewRing(1 << logN)
		require.NoError(b, err)

		prng := newTestPRNG(b)

		us := NewUniformSampler(prng, r)
		ts := NewTernarySampler(prng, r)
		gs := NewGaussianSampler(prng, r)

		p0, err := us.ReadNew()
		require.NoError(b, err)
		p1, err := ts.ReadNew()
		require.NoError(b, err)
		p2 := r.NewPoly()

		b.Run(testString("MulPoly", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r.MulPoly(p0, p1, p2)
			}
		})

		b.Run(testString("Add", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				r.Add(p0, p1, p2)
			}
		})

		b.Run(testString("Sample/Ternary", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := ts.Read(p2); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("Sample/Gaussian", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := gs.Read(p2); err != nil {
					b.Fatal(err)
				}
			}
		})

		b.Run(testString("Sample/Uniform", r), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := us.Read(p2); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
