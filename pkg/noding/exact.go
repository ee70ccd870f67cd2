package noding

import (
	"github.com/geoncore/geoncore/pkg/geom"
	"github.com/geoncore/geoncore/pkg/geom/segment"
	"github.com/geoncore/geoncore/pkg/geonerrors"
)

// ExactNoder finds every pairwise segment intersection with no
// tolerance for near-misses and splits segments only at points that are
// (to within floating-point precision) exactly on both segments. It is
// the tolerance-zero policy: two segments closer than machine epsilon
// but not truly crossing are left untouched, which is why a
// snapping-adjacent input can fail to converge and is reported via
// ErrCodeNodingConvergence rather than silently approximated.
type ExactNoder struct {
	// MaxPasses overrides the package default MaxPasses when non-zero.
	MaxPasses int
}

func (n ExactNoder) maxPasses() int {
	if n.MaxPasses > 0 {
		return n.MaxPasses
	}
	return MaxPasses
}

// Node implements Noder.
func (n ExactNoder) Node(strings []segment.String) ([]segment.String, error) {
	segs := explode(strings)

	for pass := 0; pass < n.maxPasses(); pass++ {
		splits := make(map[int][]geom.Coordinate)
		changed := false

		for i := 0; i < len(segs); i++ {
			if segs[i].isDegenerate() {
				continue
			}
			for j := i + 1; j < len(segs); j++ {
				if segs[j].isDegenerate() {
					continue
				}
				if shareEndpoint(segs[i], segs[j]) {
					continue
				}
				for _, x := range intersect(segs[i], segs[j]) {
					if x.onFirst {
						splits[i] = append(splits[i], x.point)
						changed = true
					}
					if x.onSecond {
						splits[j] = append(splits[j], x.point)
						changed = true
					}
				}
			}
		}

		if !changed {
			return toSegmentStrings(dedupe(segs)), nil
		}
		segs = applySplits(segs, splits)
	}

	return nil, geonerrors.New(geonerrors.ErrCodeNodingConvergence,
		"exact noder did not converge after %d passes", n.maxPasses())
}

// shareEndpoint reports whether two segments already touch at a common
// vertex, in which case that touch is a node already and not a crossing
// to be resolved by splitting.
func shareEndpoint(a, b atomicSegment) bool {
	return a.A.Equal(b.A) || a.A.Equal(b.B) || a.B.Equal(b.A) || a.B.Equal(b.B)
}
