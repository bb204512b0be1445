package panel

import "github.com/airisvision/chromascreen/internal/domain/colorspace"

// Calibrated cap colors, CIE L*a*b* against D65. Both panels share the
// lightness plane L*=51.6 (Munsell value 5); the saturated panel sits at
// chroma 30.0, the desaturated at 13.0. The anchor repeats the final
// movable cap's coordinates exactly.

var d15Panel = newPanel(D15, []Cap{
	{ID: "D15_P", Lab: colorspace.Lab{L: 51.6, A: -2.6, B: -29.9}, Fixed: true},
	{ID: "D15_01", Lab: colorspace.Lab{L: 51.6, A: -12.7, B: -27.2}},
	{ID: "D15_02", Lab: colorspace.Lab{L: 51.6, A: -21.2, B: -21.2}},
	{ID: "D15_03", Lab: colorspace.Lab{L: 51.6, A: -27.2, B: -12.7}},
	{ID: "D15_04", Lab: colorspace.Lab{L: 51.6, A: -29.9, B: -2.6}},
	{ID: "D15_05", Lab: colorspace.Lab{L: 51.6, A: -29.0, B: 7.8}},
	{ID: "D15_06", Lab: colorspace.Lab{L: 51.6, A: -24.6, B: 17.2}},
	{ID: "D15_07", Lab: colorspace.Lab{L: 51.6, A: -17.2, B: 24.6}},
	{ID: "D15_08", Lab: colorspace.Lab{L: 51.6, A: -7.8, B: 29.0}},
	{ID: "D15_09", Lab: colorspace.Lab{L: 51.6, A: 2.6, B: 29.9}},
	{ID: "D15_10", Lab: colorspace.Lab{L: 51.6, A: 12.7, B: 27.2}},
	{ID: "D15_11", Lab: colorspace.Lab{L: 51.6, A: 21.2, B: 21.2}},
	{ID: "D15_12", Lab: colorspace.Lab{L: 51.6, A: 27.2, B: 12.7}},
	{ID: "D15_13", Lab: colorspace.Lab{L: 51.6, A: 29.9, B: 2.6}},
	{ID: "D15_14", Lab: colorspace.Lab{L: 51.6, A: 29.0, B: -7.8}},
	{ID: "D15_15", Lab: colorspace.Lab{L: 51.6, A: 24.6, B: -17.2}},
	{ID: "D15_A", Lab: colorspace.Lab{L: 51.6, A: 24.6, B: -17.2}, Fixed: true},
})

var ld15Panel = newPanel(LD15, []Cap{
	{ID: "LD15_P", Lab: colorspace.Lab{L: 51.6, A: -1.1, B: -13.0}, Fixed: true},
	{ID: "LD15_01", Lab: colorspace.Lab{L: 51.6, A: -5.5, B: -11.8}},
	{ID: "LD15_02", Lab: colorspace.Lab{L: 51.6, A: -9.2, B: -9.2}},
	{ID: "LD15_03", Lab: colorspace.Lab{L: 51.6, A: -11.8, B: -5.5}},
	{ID: "LD15_04", Lab: colorspace.Lab{L: 51.6, A: -13.0, B: -1.1}},
	{ID: "LD15_05", Lab: colorspace.Lab{L: 51.6, A: -12.6, B: 3.4}},
	{ID: "LD15_06", Lab: colorspace.Lab{L: 51.6, A: -10.6, B: 7.5}},
	{ID: "LD15_07", Lab: colorspace.Lab{L: 51.6, A: -7.5, B: 10.6}},
	{ID: "LD15_08", Lab: colorspace.Lab{L: 51.6, A: -3.4, B: 12.6}},
	{ID: "LD15_09", Lab: colorspace.Lab{L: 51.6, A: 1.1, B: 13.0}},
	{ID: "LD15_10", Lab: colorspace.Lab{L: 51.6, A: 5.5, B: 11.8}},
	{ID: "LD15_11", Lab: colorspace.Lab{L: 51.6, A: 9.2, B: 9.2}},
	{ID: "LD15_12", Lab: colorspace.Lab{L: 51.6, A: 11.8, B: 5.5}},
	{ID: "LD15_13", Lab: colorspace.Lab{L: 51.6, A: 13.0, B: 1.1}},
	{ID: "LD15_14", Lab: colorspace.Lab{L: 51.6, A: 12.6, B: -3.4}},
	{ID: "LD15_15", Lab: colorspace.Lab{L: 51.6, A: 10.6, B: -7.5}},
	{ID: "LD15_A", Lab: colorspace.Lab{L: 51.6, A: 10.6, B: -7.5}, Fixed: true},
})
