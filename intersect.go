package bezier3

import (
	"math"
	"sort"
)

const (
	// broadPhaseDepth bounds the quadrant recursion of the broad phase. At
	// depth 8 each parameter range is divided into 256 leaf intervals.
	broadPhaseDepth = 8

	// refineEpsilon is the parameter interval width at which narrow-phase
	// refinement stops.
	refineEpsilon = 1e-6

	// mergeRadius2 is the squared parameter-space distance below which two
	// refined solutions describe the same physical intersection.
	mergeRadius2 = 0.01
)

// A candidate is a rectangle of the joint parameter square that may contain
// an intersection.
type candidate struct {
	aMin, aMax float64
	bMin, bMax float64
}

// A solution is a refined intersection estimate. A distance of +Inf marks a
// solution discarded as a duplicate.
type solution struct {
	ta, tb float64
	dist   float64
}

// Intersections returns the parameters at which the curves a and b
// intersect. Curve points closer than tolerance count as intersecting, so
// curves that pass near each other without crossing are reported as well. A
// tolerance of zero or less selects [DefaultTolerance].
//
// The curves are searched by recursive subdivision of the joint parameter
// square, pruned by control-box overlap, and every surviving region is
// refined by a derivative-free descent until its parameter intervals are
// narrower than 1e-6. Clusters of estimates that describe the same physical
// intersection are reduced to the estimate with the smallest distance.
//
// Both slices have the same length and are sorted ascending independently of
// each other. When several intersections are ordered differently along a
// than along b, corresponding entries of paramsA and paramsB may therefore
// belong to different intersection points.
//
// Curves that don't come within tolerance of each other anywhere yield empty
// slices.
func Intersections(a, b CubicBez, tolerance float64) (paramsA, paramsB []float64) {
	if tolerance <= 0.0 {
		tolerance = DefaultTolerance
	}
	cands := broadPhase(nil, broadPhaseDepth, a, b, candidate{0.0, 1.0, 0.0, 1.0}, tolerance)
	sols := make([]solution, len(cands))
	for i, cand := range cands {
		sols[i] = refine(a, b, cand)
	}
	markDuplicates(sols)
	for _, sol := range sols {
		if sol.dist < tolerance {
			paramsA = append(paramsA, sol.ta)
			paramsB = append(paramsB, sol.tb)
		}
	}
	sort.Float64s(paramsA)
	sort.Float64s(paramsB)
	return paramsA, paramsB
}

// broadPhase recursively quarters the rectangle r of the joint parameter
// square, pruning quarters whose curve slices have disjoint control boxes,
// and appends the rectangles surviving at depth 0 to out. The control box
// contains the curve slice, so pruning never discards a true intersection;
// inflating the boxes by tolerance additionally keeps slices that approach
// each other without touching.
func broadPhase(out []candidate, depth int, a, b CubicBez, r candidate, tolerance float64) []candidate {
	boxA := a.Subsegment(r.aMin, r.aMax).ControlBox()
	boxB := b.Subsegment(r.bMin, r.bMax).ControlBox()
	if !boxA.Intersects(boxB, tolerance) {
		return out
	}
	if depth == 0 {
		return append(out, r)
	}
	depth--
	aMid := 0.5 * (r.aMin + r.aMax)
	bMid := 0.5 * (r.bMin + r.bMax)
	out = broadPhase(out, depth, a, b, candidate{r.aMin, aMid, r.bMin, bMid}, tolerance)
	out = broadPhase(out, depth, a, b, candidate{r.aMin, aMid, bMid, r.bMax}, tolerance)
	out = broadPhase(out, depth, a, b, candidate{aMid, r.aMax, r.bMin, bMid}, tolerance)
	out = broadPhase(out, depth, a, b, candidate{aMid, r.aMax, bMid, r.bMax}, tolerance)
	return out
}

// refine shrinks a candidate rectangle around the pair of parameters with
// locally minimal curve distance. Every iteration samples the four quarter
// midpoints of the rectangle and collapses it onto the quadrant whose sample
// pair is closest, halving at least one parameter interval, so termination
// is guaranteed.
func refine(a, b CubicBez, r candidate) solution {
	aMin, aMax := r.aMin, r.aMax
	bMin, bMax := r.bMin, r.bMax
	dist := math.Inf(1)
	for aMax-aMin > refineEpsilon || bMax-bMin > refineEpsilon {
		aMid := 0.5 * (aMin + aMax)
		bMid := 0.5 * (bMin + bMax)
		a1 := a.Eval(0.5 * (aMin + aMid))
		a2 := a.Eval(0.5 * (aMid + aMax))
		b1 := b.Eval(0.5 * (bMin + bMid))
		b2 := b.Eval(0.5 * (bMid + bMax))
		quarters := [4]float64{
			a1.Sub(b1).Len(),
			a2.Sub(b1).Len(),
			a1.Sub(b2).Len(),
			a2.Sub(b2).Len(),
		}
		// The first minimum wins, keeping the descent deterministic.
		best := 0
		for i, d := range quarters {
			if d < quarters[best] {
				best = i
			}
		}
		switch best {
		case 0:
			aMax, bMax = aMid, bMid
		case 1:
			aMin, bMax = aMid, bMid
		case 2:
			aMax, bMin = aMid, bMid
		default:
			aMin, bMin = aMid, bMid
		}
		dist = quarters[best]
	}
	return solution{ta: aMin, tb: bMin, dist: dist}
}

// markDuplicates reduces clusters of solutions that describe the same
// physical intersection. Within a pair of solutions closer than 0.1 in
// combined parameter distance, the one with the larger curve distance has
// its distance set to +Inf. The pass is pairwise, not a transitive closure;
// chains of near-duplicates are caught link by link.
func markDuplicates(sols []solution) {
	for i := range sols {
		for j := range sols {
			if math.IsInf(sols[i].dist, 1) {
				break
			}
			if j == i || math.IsInf(sols[j].dist, 1) {
				continue
			}
			da := sols[i].ta - sols[j].ta
			db := sols[i].tb - sols[j].tb
			if da*da+db*db >= mergeRadius2 {
				continue
			}
			if sols[i].dist < sols[j].dist {
				sols[j].dist = math.Inf(1)
			} else {
				sols[i].dist = math.Inf(1)
			}
		}
	}
}
