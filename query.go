package xform

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Apply maps a point from local to parent coordinates through the forward
// matrix. The transform is not modified.
func (x Xform) Apply(p mgl64.Vec3) mgl64.Vec3 {
	return mapPoint(x.fwd, p)
}

// ApplyInverse maps a point from parent to local coordinates through the
// inverse matrix. The transform is not modified.
func (x Xform) ApplyInverse(p mgl64.Vec3) mgl64.Vec3 {
	return mapPoint(x.inv, p)
}

// mapPoint applies m to the homogeneous point (p, 1). For a rigid transform
// the resulting w is exactly 1.0 and the perspective divide is skipped; any
// other w is divided through defensively.
func mapPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	h := m.Mul4x1(p.Vec4(1))
	if h.W() == 1.0 {
		return mgl64.Vec3{h.X(), h.Y(), h.Z()}
	}
	return mgl64.Vec3{h.X() / h.W(), h.Y() / h.W(), h.Z() / h.W()}
}

// Translation returns the net translation of the transform, in whatever
// linear unit the caller has been translating with.
func (x Xform) Translation() mgl64.Vec3 {
	return mgl64.Vec3{x.fwd[12], x.fwd[13], x.fwd[14]}
}

// EulerAngles returns the net rotation as (roll, pitch, yaw) in radians,
// recovered from the forward rotation basis. The decomposition is valid for
// matrices built from Rotate, Translate and Mul on rigid transforms. At
// gimbal lock (pitch = ±π/2) roll and yaw are linearly dependent and the
// returned split is one valid choice, not a unique one.
func (x Xform) EulerAngles() mgl64.Vec3 {
	roll := math.Atan2(x.fwd[6], x.fwd[10])
	pitch := math.Atan2(-x.fwd[2], math.Sqrt(x.fwd[6]*x.fwd[6]+x.fwd[10]*x.fwd[10]))
	yaw := math.Atan2(x.fwd[1], x.fwd[0])
	return mgl64.Vec3{roll, pitch, yaw}
}

// Rotation returns the net rotation as a unit quaternion.
func (x Xform) Rotation() mgl64.Quat {
	return mgl64.Mat4ToQuat(x.fwd)
}

// Mat4 returns a copy of the forward matrix.
func (x Xform) Mat4() mgl64.Mat4 {
	return x.fwd
}

// InverseMat4 returns a copy of the inverse matrix.
func (x Xform) InverseMat4() mgl64.Mat4 {
	return x.inv
}

// String renders the forward matrix row-major, one text line per row. It is
// a debugging aid, not a parseable format.
func (x Xform) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%g %g %g %g", x.fwd[r], x.fwd[4+r], x.fwd[8+r], x.fwd[12+r])
	}
	return b.String()
}
