// Package hittest resolves pointer positions on a rendered diagram surface
// back to part identifiers in the diagram's native coordinate space.
package hittest

import (
	"sort"

	"bodymap/internal/diagram"
	"bodymap/internal/taxonomy"
	"bodymap/pkg/geometry"
)

// Resolver answers "which part is under this point" for one parsed diagram.
// Bounds are approximate; when a tap lands outside every rectangle the
// caller offers the fallback picker built from Candidates.
type Resolver struct {
	native geometry.Size
	order  []taxonomy.PartKey
	bounds map[taxonomy.PartKey]geometry.Rect
}

// NewResolver builds a resolver from a parsed document.
func NewResolver(doc *diagram.Document) *Resolver {
	return &Resolver{
		native: doc.Size(),
		order:  doc.Order,
		bounds: doc.Bounds,
	}
}

// Scale returns the rendered-to-native scale factor for a surface of the
// given size: the dominant axis of the contain-fit used by the render
// surface.
func (r *Resolver) Scale(rendered geometry.Size) float64 {
	if rendered.IsEmpty() || r.native.IsEmpty() {
		return 1
	}
	sx := r.native.Width / rendered.Width
	sy := r.native.Height / rendered.Height
	if sx > sy {
		return sx
	}
	return sy
}

// ToNative maps a pointer position in rendered-surface coordinates into the
// diagram's native coordinate space.
func (r *Resolver) ToNative(p geometry.Point2D, rendered geometry.Size) geometry.Point2D {
	return p.Scale(r.Scale(rendered))
}

// Resolve maps a pointer position in rendered coordinates to the part whose
// bounds contain it. Overlapping bounds resolve to the first part in
// traversal order; no z-order disambiguation is attempted. A false second
// return means no direct hit: the caller is then eligible to present the
// fallback picker (provided any part is registered at all).
func (r *Resolver) Resolve(p geometry.Point2D, rendered geometry.Size) (taxonomy.PartKey, bool) {
	return r.ResolveNative(r.ToNative(p, rendered))
}

// ResolveNative resolves a point already in native diagram coordinates.
func (r *Resolver) ResolveNative(p geometry.Point2D) (taxonomy.PartKey, bool) {
	for _, key := range r.order {
		if r.bounds[key].Contains(p) {
			return key, true
		}
	}
	return "", false
}

// PartCount returns how many parts are registered for the current diagram.
func (r *Resolver) PartCount() int {
	return len(r.order)
}

// PartBounds returns the native bounds of one registered part.
func (r *Resolver) PartBounds(key taxonomy.PartKey) (geometry.Rect, bool) {
	b, ok := r.bounds[key]
	return b, ok
}

// Candidates returns every registered part sorted by display label in the
// given locale, for the explicit fallback picker.
func (r *Resolver) Candidates(lang taxonomy.Language) []taxonomy.PartKey {
	keys := make([]taxonomy.PartKey, len(r.order))
	copy(keys, r.order)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Label(lang) < keys[j].Label(lang)
	})
	return keys
}
