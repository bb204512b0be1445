package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

// Simulated confusion axis per dichromat model, in degrees within [0,180).
const (
	protanAxisDegrees = 10.0
	deutanAxisDegrees = 170.0
	tritanAxisDegrees = 90.0
)

// Subject is a simulated observer that arranges caps.
type Subject struct {
	model string
	rng   *rand.Rand
}

// NewSubject creates a subject for the named observer model.
// Supported models: normal, protan, deutan, tritan, random.
func NewSubject(model string, seed int64) (*Subject, error) {
	switch strings.ToLower(model) {
	case "normal", "protan", "deutan", "tritan", "random":
		return &Subject{
			model: strings.ToLower(model),
			rng:   rand.New(rand.NewSource(seed)),
		}, nil
	default:
		return nil, fmt.Errorf("unknown subject model %q", model)
	}
}

// Model returns the observer model name.
func (s *Subject) Model() string { return s.model }

// Arrange orders the presented caps the way the modeled observer would,
// starting from the pilot cap. The returned slice holds cap ids.
func (s *Subject) Arrange(pilot LabPoint, caps []CapInfo) []string {
	switch s.model {
	case "random":
		return s.arrangeRandom(caps)
	case "normal":
		return arrangeNearest(pilot, caps)
	case "protan":
		return arrangeCollapsed(pilot, caps, protanAxisDegrees)
	case "deutan":
		return arrangeCollapsed(pilot, caps, deutanAxisDegrees)
	default:
		return arrangeCollapsed(pilot, caps, tritanAxisDegrees)
	}
}

// arrangeRandom shuffles the caps. This models a subject who cannot order
// the caps at all and serves as a worst case for the scoring pipeline.
func (s *Subject) arrangeRandom(caps []CapInfo) []string {
	out := make([]string, len(caps))
	for i, c := range caps {
		out[i] = c.CapID
	}
	s.rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// arrangeNearest greedily picks the closest remaining cap by full Lab
// distance, starting from the pilot. A color-normal observer on a clean
// dataset reproduces the reference order this way.
func arrangeNearest(pilot LabPoint, caps []CapInfo) []string {
	remaining := make([]CapInfo, len(caps))
	copy(remaining, caps)

	out := make([]string, 0, len(caps))
	cur := pilot
	for len(remaining) > 0 {
		best := 0
		bestDist := labDistance(cur, remaining[0].Lab)
		for i := 1; i < len(remaining); i++ {
			if d := labDistance(cur, remaining[i].Lab); d < bestDist {
				best, bestDist = i, d
			}
		}
		cur = remaining[best].Lab
		out = append(out, remaining[best].CapID)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return out
}

// arrangeCollapsed models a dichromat: colors along the confusion axis look
// alike, so the subject can only order caps by their projection onto the
// direction orthogonal to that axis. Caps are sorted by that perceived
// coordinate and oriented so the arrangement starts nearest the pilot.
func arrangeCollapsed(pilot LabPoint, caps []CapInfo, axisDegrees float64) []string {
	perp := (axisDegrees + 90.0) * math.Pi / 180.0
	ux, uy := math.Cos(perp), math.Sin(perp)

	perceived := func(p LabPoint) float64 { return p.A*ux + p.B*uy }
	p0 := perceived(pilot)

	sorted := make([]CapInfo, len(caps))
	copy(sorted, caps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return perceived(sorted[i].Lab) < perceived(sorted[j].Lab)
	})

	first := math.Abs(perceived(sorted[0].Lab) - p0)
	last := math.Abs(perceived(sorted[len(sorted)-1].Lab) - p0)
	if first > last {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}

	out := make([]string, len(sorted))
	for i, c := range sorted {
		out[i] = c.CapID
	}
	return out
}

func labDistance(p, q LabPoint) float64 {
	dl, da, db := p.L-q.L, p.A-q.A, p.B-q.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
