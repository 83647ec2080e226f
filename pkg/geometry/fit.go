package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AffineFromPairs computes the affine transform mapping src points onto dst
// points by least squares. At least three non-collinear correspondences are
// required; with more, the returned transform minimizes squared residuals.
func AffineFromPairs(src, dst []Point2D) (AffineTransform, error) {
	if len(src) != len(dst) {
		return AffineTransform{}, fmt.Errorf("point count mismatch: %d vs %d", len(src), len(dst))
	}
	if len(src) < 3 {
		return AffineTransform{}, fmt.Errorf("need at least 3 points, got %d", len(src))
	}

	n := len(src)
	a := mat.NewDense(2*n, 6, nil)
	b := mat.NewVecDense(2*n, nil)

	for i, p := range src {
		a.SetRow(2*i, []float64{p.X, p.Y, 1, 0, 0, 0})
		a.SetRow(2*i+1, []float64{0, 0, 0, p.X, p.Y, 1})
		b.SetVec(2*i, dst[i].X)
		b.SetVec(2*i+1, dst[i].Y)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return AffineTransform{}, fmt.Errorf("affine solve: %w", err)
	}

	return AffineTransform{
		A: x.AtVec(0), B: x.AtVec(1), TX: x.AtVec(2),
		C: x.AtVec(3), D: x.AtVec(4), TY: x.AtVec(5),
	}, nil
}

// RectMapping returns the affine transform that maps the src rectangle onto
// the dst rectangle, solved from their corner correspondences.
func RectMapping(src, dst Rect) (AffineTransform, error) {
	if src.IsEmpty() {
		return AffineTransform{}, fmt.Errorf("source rectangle is empty")
	}
	return AffineFromPairs(src.Corners(), dst.Corners())
}
