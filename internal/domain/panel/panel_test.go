package panel_test

import (
	"testing"

	"github.com/airisvision/chromascreen/internal/domain/colorspace"
	"github.com/airisvision/chromascreen/internal/domain/panel"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPanelInvariants(t *testing.T) {
	for _, typ := range []panel.Type{panel.D15, panel.LD15} {
		Convey("Given the "+string(typ)+" dataset", t, func() {
			p, err := panel.Get(typ)
			So(err, ShouldBeNil)

			caps := p.Caps()

			Convey("Then it has 17 entries, 15 of them movable", func() {
				So(len(caps), ShouldEqual, 17)
				So(p.MovableCount(), ShouldEqual, 15)
			})

			Convey("Then exactly two caps are fixed, first and last", func() {
				fixed := 0
				for _, c := range caps {
					if c.Fixed {
						fixed++
					}
				}
				So(fixed, ShouldEqual, 2)
				So(caps[0].Fixed, ShouldBeTrue)
				So(caps[len(caps)-1].Fixed, ShouldBeTrue)
			})

			Convey("Then the anchor repeats the last movable cap's Lab exactly", func() {
				last := caps[len(caps)-2]
				anchor := p.Anchor()
				So(anchor.Lab, ShouldResemble, last.Lab)
				So(anchor.ID, ShouldNotEqual, last.ID)
			})

			Convey("Then cap ids are unique", func() {
				seen := make(map[string]bool)
				for _, c := range caps {
					So(seen[c.ID], ShouldBeFalse)
					seen[c.ID] = true
				}
			})

			Convey("Then every cap shares the same lightness plane", func() {
				for _, c := range caps {
					So(c.Lab.L, ShouldAlmostEqual, caps[0].Lab.L, 1e-9)
				}
			})

			Convey("Then positions cover 1..15 in reference order", func() {
				for i, id := range p.ReferenceOrder() {
					pos, ok := p.Position(id)
					So(ok, ShouldBeTrue)
					So(pos, ShouldEqual, i+1)
				}
				_, ok := p.Position(p.Pilot().ID)
				So(ok, ShouldBeFalse)
				_, ok = p.Position(p.Anchor().ID)
				So(ok, ShouldBeFalse)
			})
		})
	}
}

func TestDesaturatedVariant(t *testing.T) {
	Convey("Given both panels", t, func() {
		d15, _ := panel.Get(panel.D15)
		ld15, _ := panel.Get(panel.LD15)

		Convey("Then the desaturated caps have strictly smaller chroma at equal lightness", func() {
			dc := d15.Caps()
			lc := ld15.Caps()
			for i := range dc {
				So(lc[i].Lab.L, ShouldAlmostEqual, dc[i].Lab.L, 1e-9)
				So(chroma(lc[i].Lab), ShouldBeLessThan, chroma(dc[i].Lab))
			}
		})

		Convey("Then every cap renders inside the sRGB gamut", func() {
			for _, c := range append(d15.Caps(), ld15.Caps()...) {
				rgb := colorspace.XYZToSRGB(colorspace.LabToXYZ(c.Lab))
				back := colorspace.XYZToLab(colorspace.SRGBToXYZ(rgb))
				So(colorspace.DeltaE76(back, c.Lab), ShouldBeLessThan, 1.0)
			}
		})
	})
}

func TestGetAndParse(t *testing.T) {
	Convey("Given a panel selector", t, func() {
		Convey("When parsing a valid selector", func() {
			typ, err := panel.ParseType("ld15")
			So(err, ShouldBeNil)
			So(typ, ShouldEqual, panel.LD15)
		})

		Convey("When parsing an unknown selector", func() {
			_, err := panel.ParseType("d100")
			So(err, ShouldEqual, panel.ErrUnknownPanel)
		})

		Convey("When requesting an unknown dataset", func() {
			_, err := panel.Get(panel.Type("hrr"))
			So(err, ShouldEqual, panel.ErrUnknownPanel)
		})
	})
}

func chroma(c colorspace.Lab) float64 {
	return c.A*c.A + c.B*c.B
}
