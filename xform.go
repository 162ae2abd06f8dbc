// Package xform implements a rigid 3D homogeneous transform that maintains
// its forward and inverse 4x4 matrices in lockstep.
//
// Instead of recomputing a general matrix inverse after every edit, each
// mutator updates both matrices analytically: the inverse of a rigid
// transform is its own structured counterpart (transposed rotation block,
// negated translation expressed in the rotated frame), so a translation or a
// single-axis rotation can be applied to both sides in constant time. This
// keeps forward and inverse mapping equally cheap for scene-graph and
// kinematic-chain code that queries both directions constantly.
//
// An Xform holds rotation and translation only. Scale, shear and perspective
// are never introduced by its operations, and composing it with transforms
// built from the same operations preserves that.
package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Xform is a rigid transform stored as a pair of column-major 4x4 matrices:
// fwd maps local to parent coordinates, inv maps parent to local. Every
// mutator leaves inv equal to the exact algebraic inverse of fwd, to
// floating-point precision.
//
// The zero value is not a valid transform; use New.
type Xform struct {
	fwd mgl64.Mat4
	inv mgl64.Mat4
}

// New returns an identity transform.
func New() Xform {
	return Xform{
		fwd: mgl64.Ident4(),
		inv: mgl64.Ident4(),
	}
}

// NewFrom returns an independent copy of other.
func NewFrom(other Xform) Xform {
	return other
}

// Reset sets the transform back to identity.
func (x *Xform) Reset() {
	x.fwd = mgl64.Ident4()
	x.inv = mgl64.Ident4()
}

// Set copies the value of other into x. The two transforms share no storage
// afterwards.
func (x *Xform) Set(other Xform) {
	*x = other
}

// Translate moves the transform by (dx, dy, dz) expressed in its current
// local frame: the offset is rotated through the forward basis before being
// added to the forward translation column.
//
// The inverse side needs no rotation at all: in the inverse's own basis the
// update is a plain subtraction of the raw offset. This relies on inv being
// fully consistent with fwd on entry, which every mutator guarantees on
// return.
func (x *Xform) Translate(dx, dy, dz float64) {
	x.fwd[12] += x.fwd[0]*dx + x.fwd[4]*dy + x.fwd[8]*dz
	x.fwd[13] += x.fwd[1]*dx + x.fwd[5]*dy + x.fwd[9]*dz
	x.fwd[14] += x.fwd[2]*dx + x.fwd[6]*dy + x.fwd[10]*dz
	x.inv[12] -= dx
	x.inv[13] -= dy
	x.inv[14] -= dz
}

// Rotate applies an intrinsic Euler rotation in radians: yaw about the
// current Z axis, then pitch about the resulting Y axis, then roll about the
// resulting X axis. Each axis whose angle is exactly zero is skipped
// entirely, leaving both matrices untouched for that axis.
//
// For each axis the forward update rotates the two coupled basis columns
// with the positive angle; the inverse update rotates the two coupled rows,
// translation entries included, with the negated angle. Together these keep
// inv the exact inverse of fwd without any general inversion.
func (x *Xform) Rotate(roll, pitch, yaw float64) {
	if yaw != 0 {
		c, s := math.Cos(yaw), math.Sin(yaw)
		rotateCols(&x.fwd, 0, 1, c, s)
		c, s = math.Cos(-yaw), math.Sin(-yaw)
		rotateRows(&x.inv, 1, 0, c, s)
	}
	if pitch != 0 {
		c, s := math.Cos(pitch), math.Sin(pitch)
		rotateCols(&x.fwd, 2, 0, c, s)
		c, s = math.Cos(-pitch), math.Sin(-pitch)
		rotateRows(&x.inv, 0, 2, c, s)
	}
	if roll != 0 {
		c, s := math.Cos(roll), math.Sin(roll)
		rotateCols(&x.fwd, 1, 2, c, s)
		c, s = math.Cos(-roll), math.Sin(-roll)
		rotateRows(&x.inv, 2, 1, c, s)
	}
}

// rotateCols replaces basis columns a and b of m with their 2D rotation mix:
// colA' = colA*c + colB*s, colB' = colB*c - colA*s. Only the three basis
// rows are touched; the bottom row stays [0,0,0,1] and the translation
// column is never a or b.
func rotateCols(m *mgl64.Mat4, a, b int, c, s float64) {
	for r := 0; r < 3; r++ {
		ta, tb := m[a*4+r], m[b*4+r]
		m[a*4+r] = ta*c + tb*s
		m[b*4+r] = tb*c - ta*s
	}
}

// rotateRows replaces full rows a and b of m, all four columns including the
// translation entries, with the same 2D rotation mix: rowA' = rowA*c +
// rowB*s, rowB' = rowB*c - rowA*s. Both prior entries of each coupled pair
// are read before either is written.
func rotateRows(m *mgl64.Mat4, a, b int, c, s float64) {
	for col := 0; col < 4; col++ {
		ta, tb := m[col*4+a], m[col*4+b]
		m[col*4+a] = ta*c + tb*s
		m[col*4+b] = tb*c - ta*s
	}
}

// Mul composes x with other in place: other's transform is applied first in
// the local frame, then x's. The forward side right-multiplies while the
// inverse side left-multiplies, since the inverse of a product reverses
// order:
//
//	fwd' = fwd · other.fwd
//	inv' = other.inv · inv
//
// other is never modified.
func (x *Xform) Mul(other Xform) {
	x.fwd = x.fwd.Mul4(other.fwd)
	x.inv = other.inv.Mul4(x.inv)
}

// Invert swaps the roles of the forward and inverse matrices, so x now
// represents the inverse of its previous value. No arithmetic is performed.
func (x *Xform) Invert() {
	x.fwd, x.inv = x.inv, x.fwd
}
