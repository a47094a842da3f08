package ring

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/M21121/CKKS-SDKvGramine/utils/sampling"
)

var testLogN = []int{1, 2, 4, 6, 8}

func testString(opname string, r *Ring) string {
	return fmt.Sprintf("%s/N=%d/logQ=%d", opname, r.N(), LogQ)
}

func newTestPRNG(t testing.TB) sampling.PRNG {
	prng, err := sampling.NewKeyedPRNG([]byte{'r', 'i', 'n', 'g'})
	require.NoError(t, err)
	return prng
}

func TestRing(t *testing.T) {

	t.Run("NewRing/Invalid", func(t *testing.T) {
		for _, N := range []int{-4, 0, 1, 3, 12, 8191} {
			_, err := NewRing(N)
			require.Error(t, err, N)
		}
	})

	for _, logN := range testLogN {

		r, err := NewRing(1 << logN)
		require.NoError(t, err)
		require.Equal(t, logN, r.LogN())

		prng := newTestPRNG(t)

		testModularReduction(r, t)
		testAddSubNeg(r, prng, t)
		testMulPoly(r, prng, t)
		testInt64Conversions(r, prng, t)
	}
}

func testModularReduction(r *Ring, t *testing.T) {

	t.Run(testString("ModQ", r), func(t *testing.T) {
		require.Equal(t, uint64(0), ModQ(0))
		require.Equal(t, Q-1, ModQ(-1))
		require.Equal(t, uint64(5), ModQ(5))
		require.Equal(t, uint64(0), ModQ(int64(Q)))
		require.Equal(t, QHalf, ModQ(-int64(QHalf)))
		require.Equal(t, Q-3, ModQ(-3-2*int64(Q)))
	})

	t.Run(testString("Center", r), func(t *testing.T) {
		require.Equal(t, int64(0), Center(0))
		require.Equal(t, int64(-1), Center(Q-1))
		require.Equal(t, int64(QHalf), Center(QHalf))
		require.Equal(t, -int64(QHalf)+1, Center(QHalf+1))
		require.Equal(t, int64(7), Center(Q+7))

		for _, x := range []int64{-5, -1, 0, 1, 5, int64(QHalf), -int64(QHalf) + 1} {
			c := Center(ModQ(x))
			require.Equal(t, x, c)
			require.Greater(t, c, -int64(QHalf))
			require.LessOrEqual(t, c, int64(QHalf))
		}
	})
}

func testAddSubNeg(r *Ring, prng sampling.PRNG, t *testing.T) {

	t.Run(testString("Add/Sub/Neg", r), func(t *testing.T) {

		us := NewUniformSampler(prng, r)

		p0, err := us.ReadNew()
		require.NoError(t, err)
		p1, err := us.ReadNew()
		require.NoError(t, err)

		sum := r.NewPoly()
		r.Add(p0, p1, sum)

		diff := r.NewPoly()
		r.Sub(sum, p1, diff)
		require.True(t, diff.Equal(&p0))

		neg := r.NewPoly()
		r.Neg(p0, neg)
		r.Add(neg, p0, neg)
		require.True(t, neg.Equal(&Poly{Coeffs: make([]uint64, r.N())}))

		for _, c := range sum.Coeffs {
			require.Less(t, c, Q)
		}
	})
}

func testMulPoly(r *Ring, prng sampling.PRNG, t *testing.T) {

	t.Run(testString("MulPoly/Uniform", r), func(t *testing.T) {

		us := NewUniformSampler(prng, r)

		p0, err := us.ReadNew()
		require.NoError(t, err)
		p1, err := us.ReadNew()
		require.NoError(t, err)

		have := r.NewPoly()
		r.MulPoly(p0, p1, have)

		require.Equal(t, bigCyclicConvolution(p0.Coeffs, p1.Coeffs), have.Coeffs)
	})

	t.Run(testString("MulPoly/Ternary", r), func(t *testing.T) {

		us := NewUniformSampler(prng, r)
		ts := NewTernarySampler(prng, r)

		a, err := us.ReadNew()
		require.NoError(t, err)
		s, err := ts.ReadNew()
		require.NoError(t, err)

		have := r.NewPoly()
		r.MulPoly(a, s, have)

		// Reference computed with signed ternary coefficients.
		N := r.N()
		want := make([]int64, N)
		for i := 0; i < N; i++ {
			for j := 0; j < N; j++ {
				want[(i+j)%N] += int64(a.Coeffs[i]) * Center(s.Coeffs[j])
			}
		}

		for i := range want {
			require.Equal(t, ModQ(want[i]), have.Coeffs[i])
		}
	})

	t.Run(testString("MulPoly/ScratchIsErased", r), func(t *testing.T) {

		us := NewUniformSampler(prng, r)
		ts := NewTernarySampler(prng, r)

		a, err := us.ReadNew()
		require.NoError(t, err)
		s, err := ts.ReadNew()
		require.NoError(t, err)

		want := r.NewPoly()
		r.MulPoly(a, s, want)

		acc := make([]uint64, r.N())
		have := r.NewPoly()
		r.mulPoly(a, s, have, acc)

		require.True(t, want.Equal(&have))
		require.Equal(t, make([]uint64, r.N()), acc)
	})

	t.Run(testString("MulPoly/Aliasing", r), func(t *testing.T) {

		us := NewUniformSampler(prng, r)

		p0, err := us.ReadNew()
		require.NoError(t, err)
		p1, err := us.ReadNew()
		require.NoError(t, err)

		want := r.NewPoly()
		r.MulPoly(p0, p1, want)

		r.MulPoly(p0, p1, p0)
		require.True(t, want.Equal(&p0))
	})

	t.Run(testString("MulPoly/One", r), func(t *testing.T) {

		us := NewUniformSampler(prng, r)
		p0, err := us.ReadNew()
		require.NoError(t, err)

		one := r.NewPoly()
		one.Coeffs[0] = 1

		have := r.NewPoly()
		r.MulPoly(p0, one, have)
		require.True(t, have.Equal(&p0))

		// X * X^{N-1} = X^N = 1
		x := r.NewPoly()
		x.Coeffs[1] = 1
		xn1 := r.NewPoly()
		xn1.Coeffs[r.N()-1] = 1
		r.MulPoly(x, xn1, have)
		require.True(t, have.Equal(&one))
	})
}

func testInt64Conversions(r *Ring, prng sampling.PRNG, t *testing.T) {

	t.Run(testString("SetInt64/CenterInt64", r), func(t *testing.T) {

		values := make([]int64, r.N())
		for i := range values {
			values[i] = int64(i) - int64(r.N()/2)
		}

		pol := r.NewPoly()
		r.SetInt64(values, pol)

		for _, c := range pol.Coeffs {
			require.Less(t, c, Q)
		}

		have := make([]int64, r.N())
		r.CenterInt64(pol, have)
		require.Equal(t, values, have)

		require.Panics(t, func() { r.SetInt64(values[1:], pol) })
	})
}

func bigCyclicConvolution(a, b []uint64) (c []uint64) {

	N := len(a)
	Qb := new(big.Int).SetUint64(Q)
	acc := make([]*big.Int, N)
	for i := range acc {
		acc[i] = new(big.Int)
	}

	tmp := new(big.Int)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			tmp.Mul(new(big.Int).SetUint64(a[i]), new(big.Int).SetUint64(b[j]))
			acc[(i+j)%N].Add(acc[(i+j)%N], tmp)
		}
	}

	c = make([]uint64, N)
	for i := range acc {
		c[i] = acc[i].Mod(acc[i], Qb).Uint64()
	}

	return
}
