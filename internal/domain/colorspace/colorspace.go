// Package colorspace provides the colorimetric primitives for the screening
// engine: conversions among device sRGB, CIE XYZ (D65-referenced) and
// CIE L*a*b*, the Delta-E 1976 perceptual distance, and the closed-form
// principal-axis angle over the (a*,b*) chroma plane.
//
// All functions are pure and total over their declared domains: out-of-gamut
// values clamp, they never error.
package colorspace

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RGB is a device color with 8-bit channels in [0,255].
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// XYZ is a CIE 1931 tristimulus value scaled so the D65 white has Y=100.
type XYZ struct {
	X float64
	Y float64
	Z float64
}

// Lab is a CIE L*a*b* color referenced to the D65 white point.
type Lab struct {
	L float64 `json:"l"`
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// D65 reference white, Y normalized to 100.
const (
	whiteX = 95.047
	whiteY = 100.0
	whiteZ = 108.883
)

// Piecewise sRGB transfer function constants (IEC 61966-2-1).
const (
	srgbDecodeKnee  = 0.04045
	srgbEncodeKnee  = 0.0031308
	srgbGamma       = 2.4
	srgbLinearSlope = 12.92
	srgbOffset      = 0.055
)

// labDelta is the 6/29 breakpoint of the CIE Lab companding helper.
const labDelta = 6.0 / 29.0

// Linear sRGB <-> XYZ matrices for the D65 white point.
var (
	rgbToXYZMatrix = mat.NewDense(3, 3, []float64{
		0.4124564, 0.3575761, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	})
	xyzToRGBMatrix = mat.NewDense(3, 3, []float64{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	})
)

// SRGBToXYZ gamma-decodes an 8-bit sRGB color and maps it to CIE XYZ.
func SRGBToXYZ(c RGB) XYZ {
	lin := mat.NewVecDense(3, []float64{
		srgbDecode(float64(c.R) / 255.0),
		srgbDecode(float64(c.G) / 255.0),
		srgbDecode(float64(c.B) / 255.0),
	})
	var out mat.VecDense
	out.MulVec(rgbToXYZMatrix, lin)
	return XYZ{
		X: out.AtVec(0) * 100.0,
		Y: out.AtVec(1) * 100.0,
		Z: out.AtVec(2) * 100.0,
	}
}

// XYZToSRGB maps CIE XYZ back to 8-bit sRGB. Out-of-gamut channels saturate
// at the gamut boundary rather than erroring.
func XYZToSRGB(v XYZ) RGB {
	in := mat.NewVecDense(3, []float64{v.X / 100.0, v.Y / 100.0, v.Z / 100.0})
	var out mat.VecDense
	out.MulVec(xyzToRGBMatrix, in)
	return RGB{
		R: toChannel(srgbEncode(out.AtVec(0))),
		G: toChannel(srgbEncode(out.AtVec(1))),
		B: toChannel(srgbEncode(out.AtVec(2))),
	}
}

// XYZToLab converts CIE XYZ to L*a*b* using the D65 reference white.
func XYZToLab(v XYZ) Lab {
	fx := labForward(v.X / whiteX)
	fy := labForward(v.Y / whiteY)
	fz := labForward(v.Z / whiteZ)
	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// LabToXYZ is the exact algebraic inverse of XYZToLab.
func LabToXYZ(c Lab) XYZ {
	fy := (c.L + 16.0) / 116.0
	fx := fy + c.A/500.0
	fz := fy - c.B/200.0
	return XYZ{
		X: whiteX * labInverse(fx),
		Y: whiteY * labInverse(fy),
		Z: whiteZ * labInverse(fz),
	}
}

// DeltaE76 is the CIE 1976 perceptual distance: Euclidean distance in Lab.
func DeltaE76(p, q Lab) float64 {
	dl := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// ConfusionAxisAngle computes the dominant axis of the given points projected
// onto the (a*,b*) plane, as an undirected angle in degrees within [0,180).
// Lightness is ignored. Fewer than two points yield 0 by convention.
func ConfusionAxisAngle(points []Lab) float64 {
	if len(points) < 2 {
		return 0
	}
	var meanA, meanB float64
	for _, p := range points {
		meanA += p.A
		meanB += p.B
	}
	meanA /= float64(len(points))
	meanB /= float64(len(points))

	var sxx, sxy, syy float64
	for _, p := range points {
		da := p.A - meanA
		db := p.B - meanB
		sxx += da * da
		sxy += da * db
		syy += db * db
	}

	theta := 0.5 * math.Atan2(2.0*sxy, sxx-syy)
	deg := math.Mod(theta*180.0/math.Pi, 180.0)
	if deg < 0 {
		deg += 180.0
	}
	if deg >= 180.0 {
		deg -= 180.0
	}
	return deg
}

func srgbDecode(c float64) float64 {
	if c <= srgbDecodeKnee {
		return c / srgbLinearSlope
	}
	return math.Pow((c+srgbOffset)/(1.0+srgbOffset), srgbGamma)
}

func srgbEncode(c float64) float64 {
	if c <= srgbEncodeKnee {
		return srgbLinearSlope * c
	}
	return (1.0+srgbOffset)*math.Pow(c, 1.0/srgbGamma) - srgbOffset
}

func labForward(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3.0*labDelta*labDelta) + 4.0/29.0
}

func labInverse(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3.0 * labDelta * labDelta * (t - 4.0/29.0)
}

// toChannel clamps an encoded channel into [0,1] and scales to 8 bits.
func toChannel(c float64) uint8 {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return uint8(math.Round(c * 255.0))
}
