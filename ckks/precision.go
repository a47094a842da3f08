package ckks

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/M21121/CKKS-SDKvGramine/utils"
)

// PrecisionStats is a struct storing statistics about the precision of decoded values.
// Precisions are -log2 of the absolute error; errors are log2(scale) minus the precision.
type PrecisionStats struct {
	MINLog2Prec Stats
	MAXLog2Prec Stats
	AVGLog2Prec Stats
	MEDLog2Prec Stats
	STDLog2Prec Stats

	MINLog2Err Stats
	MAXLog2Err Stats
	AVGLog2Err Stats
	MEDLog2Err Stats
	STDLog2Err Stats

	// MAXAbsErr is the largest absolute error.
	MAXAbsErr Stats

	Log2Scale float64
}

// Stats is a struct storing the real, imaginary and L2 norm (modulus)
// about the precision of a complex value.
type Stats struct {
	Real, Imag, L2 float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────┬───────┬───────┐
│    Log2 │ REAL  │ IMAG  │ L2    │
├─────────┼───────┼───────┼───────┤
│MIN Prec │ %5.2f │ %5.2f │ %5.2f │
│MAX Prec │ %5.2f │ %5.2f │ %5.2f │
│AVG Prec │ %5.2f │ %5.2f │ %5.2f │
│MED Prec │ %5.2f │ %5.2f │ %5.2f │
│STD Prec │ %5.2f │ %5.2f │ %5.2f │
├─────────┼───────┼───────┼───────┤
│MIN Err  │ %5.2f │ %5.2f │ %5.2f │
│MAX Err  │ %5.2f │ %5.2f │ %5.2f │
│AVG Err  │ %5.2f │ %5.2f │ %5.2f │
│MED Err  │ %5.2f │ %5.2f │ %5.2f │
│STD Err  │ %5.2f │ %5.2f │ %5.2f │
└─────────┴───────┴───────┴───────┘
MAX |err| real=%.3e imag=%.3e L2=%.3e
`,
		prec.MINLog2Prec.Real, prec.MINLog2Prec.Imag, prec.MINLog2Prec.L2,
		prec.MAXLog2Prec.Real, prec.MAXLog2Prec.Imag, prec.MAXLog2Prec.L2,
		prec.AVGLog2Prec.Real, prec.AVGLog2Prec.Imag, prec.AVGLog2Prec.L2,
		prec.MEDLog2Prec.Real, prec.MEDLog2Prec.Imag, prec.MEDLog2Prec.L2,
		prec.STDLog2Prec.Real, prec.STDLog2Prec.Imag, prec.STDLog2Prec.L2,
		prec.MINLog2Err.Real, prec.MINLog2Err.Imag, prec.MINLog2Err.L2,
		prec.MAXLog2Err.Real, prec.MAXLog2Err.Imag, prec.MAXLog2Err.L2,
		prec.AVGLog2Err.Real, prec.AVGLog2Err.Imag, prec.AVGLog2Err.L2,
		prec.MEDLog2Err.Real, prec.MEDLog2Err.Imag, prec.MEDLog2Err.L2,
		prec.STDLog2Err.Real, prec.STDLog2Err.Imag, prec.STDLog2Err.L2,
		prec.MAXAbsErr.Real, prec.MAXAbsErr.Imag, prec.MAXAbsErr.L2)
}

// GetPrecisionStats generates a [PrecisionStats] struct from the reference values (wantRe, wantIm)
// and the decoded values (haveRe, haveIm). Only the first min(len) values of the four slices
// are compared. An exact value is assigned a precision of log2(scale).
func GetPrecisionStats(params Parameters, wantRe, wantIm, haveRe, haveIm []float64) (prec PrecisionStats) {

	n := utils.MinSlice([]int{len(wantRe), len(wantIm), len(haveRe), len(haveIm)})

	log2Scale := params.LogScale()

	prec.Log2Scale = log2Scale

	if n == 0 {
		return
	}

	precReal := make([]float64, n)
	precImag := make([]float64, n)
	precL2 := make([]float64, n)

	errReal := make([]float64, n)
	errImag := make([]float64, n)
	errL2 := make([]float64, n)

	toPrec := func(err float64) float64 {
		if err == 0 {
			return log2Scale
		}
		return -math.Log2(err)
	}

	for i := 0; i < n; i++ {
		errReal[i] = math.Abs(haveRe[i] - wantRe[i])
		errImag[i] = math.Abs(haveIm[i] - wantIm[i])
		errL2[i] = math.Hypot(errReal[i], errImag[i])

		precReal[i] = toPrec(errReal[i])
		precImag[i] = toPrec(errImag[i])
		precL2[i] = toPrec(errL2[i])
	}

	prec.MINLog2Prec = summarize(stats.Min, precReal, precImag, precL2)
	prec.MAXLog2Prec = summarize(stats.Max, precReal, precImag, precL2)
	prec.AVGLog2Prec = summarize(stats.Mean, precReal, precImag, precL2)
	prec.MEDLog2Prec = summarize(stats.Median, precReal, precImag, precL2)
	prec.STDLog2Prec = summarize(stats.StandardDeviationSample, precReal, precImag, precL2)
	prec.MAXAbsErr = summarize(stats.Max, errReal, errImag, errL2)

	prec.MAXLog2Prec.Real = min(prec.MAXLog2Prec.Real, log2Scale)
	prec.MAXLog2Prec.Imag = min(prec.MAXLog2Prec.Imag, log2Scale)
	prec.MAXLog2Prec.L2 = min(prec.MAXLog2Prec.L2, log2Scale)

	prec.MAXLog2Err = prec.MINLog2Prec.errorOf(log2Scale)
	prec.MINLog2Err = prec.MAXLog2Prec.errorOf(log2Scale)
	prec.AVGLog2Err = prec.AVGLog2Prec.errorOf(log2Scale)
	prec.MEDLog2Err = prec.MEDLog2Prec.errorOf(log2Scale)
	prec.STDLog2Err = prec.STDLog2Prec

	return
}

func (s Stats) errorOf(log2Scale float64) Stats {
	return Stats{
		Real: log2Scale - s.Real,
		Imag: log2Scale - s.Imag,
		L2:   log2Scale - s.L2,
	}
}

// summarize applies f on the three series. Errors of f, which only occur on
// empty or single-element inputs, yield NaN.
func summarize(f func(stats.Float64Data) (float64, error), re, im, l2 []float64) Stats {
	apply := func(x []float64) float64 {
		v, err := f(x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
	return Stats{Real: apply(re), Imag: apply(im), L2: apply(l2)}
}
