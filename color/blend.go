// Copyright 2026 The inkwell2d Authors
// SPDX-License-Identifier: BSD-3-Clause

package color

// BlendMethod selects how the pen combines a source color with the pixel
// already on the surface. All methods operate on premultiplied colors.
type BlendMethod uint8

const (
	// BlendComposite is standard source-over compositing [default].
	BlendComposite BlendMethod = iota
	// BlendStraight cross-fades destination toward source by amount.
	BlendStraight
	// BlendOnto composites source only where the destination has coverage.
	BlendOnto
	// BlendAdditive sums source into destination, clamped to [0, 1].
	BlendAdditive
	// BlendMultiply multiplies destination by the source channels.
	BlendMultiply
)

// BlendFunc combines a premultiplied source with a premultiplied destination.
// amount scales the source contribution and lies in [0, 1].
type BlendFunc func(dst, src Color, amount float64) Color

// Get returns the blend function for the method.
// Unknown methods fall back to BlendComposite.
func (m BlendMethod) Get() BlendFunc {
	switch m {
	case BlendStraight:
		return blendStraight
	case BlendOnto:
		return blendOnto
	case BlendAdditive:
		return blendAdditive
	case BlendMultiply:
		return blendMultiply
	default:
		return blendComposite
	}
}

// Blend applies the method directly. Convenience for callers that blend a
// single pixel; hot loops should capture the BlendFunc once via Get.
func (m BlendMethod) Blend(dst, src Color, amount float64) Color {
	return m.Get()(dst, src, amount)
}

func blendComposite(dst, src Color, amount float64) Color {
	s := src.Scale(amount)
	k := 1 - s.A
	return Color{
		R: s.R + dst.R*k,
		G: s.G + dst.G*k,
		B: s.B + dst.B*k,
		A: s.A + dst.A*k,
	}
}

func blendStraight(dst, src Color, amount float64) Color {
	k := 1 - amount
	return Color{
		R: src.R*amount + dst.R*k,
		G: src.G*amount + dst.G*k,
		B: src.B*amount + dst.B*k,
		A: src.A*amount + dst.A*k,
	}
}

func blendOnto(dst, src Color, amount float64) Color {
	// Source contributes only where the destination already has coverage;
	// destination alpha is preserved.
	s := src.Scale(amount * dst.A)
	k := 1 - src.A*amount
	return Color{
		R: s.R + dst.R*k,
		G: s.G + dst.G*k,
		B: s.B + dst.B*k,
		A: dst.A,
	}
}

func blendAdditive(dst, src Color, amount float64) Color {
	s := src.Scale(amount)
	return Color{
		R: clamp01(dst.R + s.R),
		G: clamp01(dst.G + s.G),
		B: clamp01(dst.B + s.B),
		A: clamp01(dst.A + s.A),
	}
}

func blendMultiply(dst, src Color, amount float64) Color {
	// Fade the multiplier toward identity as amount drops.
	k := 1 - amount
	return Color{
		R: dst.R * (src.R*amount + k),
		G: dst.G * (src.G*amount + k),
		B: dst.B * (src.B*amount + k),
		A: dst.A * (src.A*amount + k),
	}
}
