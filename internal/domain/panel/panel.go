// Package panel holds the calibrated hue-cap reference datasets for the
// screening panels. The tables are fixed scientific constants: loaded once
// at process start and read-only for the process lifetime, so they are safe
// to share across goroutines without synchronization.
package panel

import (
	"github.com/airisvision/chromascreen/internal/domain/colorspace"
)

// Type selects one of the two panel variants.
type Type string

const (
	// D15 is the saturated Farnsworth D-15 panel.
	D15 Type = "d15"
	// LD15 is the Lanthony desaturated variant: same lightness and hue
	// sequence, chroma reduced for a harder discrimination task.
	LD15 Type = "ld15"
)

// Version identifies the calibration revision of the cap tables. Persisted
// scores carry it so they can be re-validated against the dataset that
// produced them.
const Version = "2025.1"

// Cap is a single hue cap. Fixed caps (pilot and anchor) bound the
// arrangement task and are never presented as movable.
type Cap struct {
	ID    string
	Lab   colorspace.Lab
	Fixed bool
}

// Panel is an immutable ordered cap table: pilot, the movable caps in
// reference hue order, then the anchor. The anchor duplicates the last
// movable cap's Lab value to close the hue loop back near the pilot.
type Panel struct {
	typ  Type
	caps []Cap
	pos  map[string]int // movable cap id -> reference position 1..n
}

// ParseType validates a panel selector string.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case D15:
		return D15, nil
	case LD15:
		return LD15, nil
	default:
		return "", ErrUnknownPanel
	}
}

// Get returns the dataset for the given panel type.
func Get(t Type) (*Panel, error) {
	switch t {
	case D15:
		return d15Panel, nil
	case LD15:
		return ld15Panel, nil
	default:
		return nil, ErrUnknownPanel
	}
}

// Type returns the panel selector this dataset belongs to.
func (p *Panel) Type() Type { return p.typ }

// Caps returns the full ordered table, pilot first and anchor last. The
// slice is a copy; the underlying table cannot be mutated through it.
func (p *Panel) Caps() []Cap {
	out := make([]Cap, len(p.caps))
	copy(out, p.caps)
	return out
}

// Pilot returns the fixed leading cap.
func (p *Panel) Pilot() Cap { return p.caps[0] }

// Anchor returns the fixed trailing cap.
func (p *Panel) Anchor() Cap { return p.caps[len(p.caps)-1] }

// Movable returns the orderable caps in reference hue order.
func (p *Panel) Movable() []Cap {
	out := make([]Cap, len(p.caps)-2)
	copy(out, p.caps[1:len(p.caps)-1])
	return out
}

// MovableCount returns the number of caps a subject arranges.
func (p *Panel) MovableCount() int { return len(p.caps) - 2 }

// ReferenceOrder returns the movable cap identifiers in ideal hue order.
func (p *Panel) ReferenceOrder() []string {
	out := make([]string, 0, p.MovableCount())
	for _, c := range p.caps[1 : len(p.caps)-1] {
		out = append(out, c.ID)
	}
	return out
}

// Position returns a movable cap's 1-based reference position. The second
// return is false for unknown ids and for the fixed caps.
func (p *Panel) Position(id string) (int, bool) {
	n, ok := p.pos[id]
	return n, ok
}

// Lookup returns the cap with the given id, fixed caps included.
func (p *Panel) Lookup(id string) (Cap, bool) {
	if n, ok := p.pos[id]; ok {
		return p.caps[n], true
	}
	if id == p.caps[0].ID {
		return p.caps[0], true
	}
	if id == p.caps[len(p.caps)-1].ID {
		return p.caps[len(p.caps)-1], true
	}
	return Cap{}, false
}

func newPanel(t Type, caps []Cap) *Panel {
	pos := make(map[string]int, len(caps)-2)
	for i := 1; i < len(caps)-1; i++ {
		pos[caps[i].ID] = i
	}
	return &Panel{typ: t, caps: caps, pos: pos}
}
