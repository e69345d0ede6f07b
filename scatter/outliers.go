// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scatter

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// maxAnnotations caps how many points get a text label directly on the
// plot. More than this and the labels shade each other out.
const maxAnnotations = 10

// Outlier thresholds are tried from zThresholdMin in zThresholdStep
// increments up to and including zThresholdMax.
const (
	zThresholdMin  = 1.0
	zThresholdMax  = 6.0
	zThresholdStep = 0.2
)

// SelectOutliers returns a copy of points with annotations added so
// that, where achievable, at most maxAnnotations points carry one.
//
// Points whose Annotate field is false are untouchable: they are never
// annotated and don't participate in the coordinate statistics below.
// Pre-set annotations are kept as they are and count toward the cap;
// if the cap is already met, the points come back unchanged.
//
// Otherwise each remaining point gets per-axis Z-scores, |v-mean|/std
// with the population standard deviation, and the selector walks the
// threshold ladder from tightest to loosest until the points exceeding
// the threshold on either axis fit within the cap together with the
// pre-annotated ones. If even the loosest threshold admits too many,
// it is used anyway and the cap is exceeded. An axis on which every
// point agrees contributes a zero Z-score; if both axes are flat there
// are no outliers to find, which is worth a warning, and only a lone
// point is annotated, with its own name.
func SelectOutliers(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	nAnnotated := 0
	for i := range out {
		if out[i].Annotation != "" {
			nAnnotated++
		}
	}
	if nAnnotated >= maxAnnotations {
		return out
	}

	var cand []int
	for i := range out {
		if out[i].annotatable() {
			cand = append(cand, i)
		}
	}
	if len(cand) == 0 {
		return out
	}

	xs := make([]float64, len(cand))
	ys := make([]float64, len(cand))
	for k, i := range cand {
		xs[k] = out[i].X
		ys[k] = out[i].Y
	}
	xMean, xStd := meanStd(xs)
	yMean, yStd := meanStd(ys)

	if xStd == 0 && yStd == 0 {
		Warning.Printf("all %d points have the same coordinates", len(cand))
		if len(cand) == 1 {
			i := cand[0]
			if out[i].Annotation == "" {
				out[i].Annotation = out[i].Name
			}
		}
		return out
	}

	xz := zScores(xs, xMean, xStd)
	yz := zScores(ys, yMean, yStd)

	threshold := zThresholdMax
	for step := 0; ; step++ {
		t := zThresholdMin + zThresholdStep*float64(step)
		if t > zThresholdMax {
			break
		}
		n := 0
		for k := range cand {
			if xz[k] > t || yz[k] > t {
				n++
			}
		}
		if nAnnotated+n <= maxAnnotations {
			threshold = t
			break
		}
	}

	for k, i := range cand {
		if (xz[k] > threshold || yz[k] > threshold) && out[i].Annotation == "" {
			out[i].Annotation = out[i].Name
		}
	}
	return out
}

// meanStd returns the mean and the population standard deviation of
// xs. stats.StdDev is the sample estimate and would overshoot here:
// the points on the plot are the whole population.
func meanStd(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	mean = stats.Mean(xs)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return mean, math.Sqrt(ss / float64(len(xs)))
}

// zScores returns |x-mean|/std for each x, or all zeros if std is 0.
func zScores(xs []float64, mean, std float64) []float64 {
	zs := make([]float64, len(xs))
	if std == 0 {
		return zs
	}
	for i, x := range xs {
		zs[i] = math.Abs(x-mean) / std
	}
	return zs
}
