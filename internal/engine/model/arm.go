package model

import (
	gomath "math"

	"github.com/Faultbox/snowmen/internal/engine/mesh"
	"github.com/Faultbox/snowmen/pkg/math"
)

// Arm range names.
const (
	ArmLimb        = "limb"
	ArmShoulderCap = "shoulder_cap"
	ArmFinger1     = "finger1"
	ArmFinger2     = "finger2"
	ArmFinger3     = "finger3"
)

// ArmFingers lists the finger tip caps.
var ArmFingers = []string{ArmFinger1, ArmFinger2, ArmFinger3}

type armJoint struct {
	origin, extent math.Vec3
}

// The stick arm: shoulder, two elbows, and three twig tips, in model space
// for the right arm. The left arm is the same mesh mirrored in X.
var (
	armJoints = [6]armJoint{
		{math.Vec3{X: 0.76}, math.Vec3{Y: 0.06, Z: 0.06}},
		{math.Vec3{X: 1.6, Y: 0.2}, math.Vec3{Y: 0.05, Z: 0.05}},
		{math.Vec3{X: 1.9, Y: 0.1}, math.Vec3{Y: 0.04, Z: 0.04}},
		{math.Vec3{X: 2.3, Y: 0.2}, math.Vec3{X: 0.01, Y: 0.02, Z: 0.02}},
		{math.Vec3{X: 2, Y: 0.5, Z: 0.3}, math.Vec3{X: 0.01, Y: 0.02, Z: 0.02}},
		{math.Vec3{X: 2.3, Z: 0.1}, math.Vec3{X: -0.01, Y: 0.02, Z: 0.02}},
	}

	armOutlineJoints = [6]armJoint{
		{math.Vec3{X: 0.793}, math.Vec3{Y: 0.09, Z: 0.09}},
		{math.Vec3{X: 1.6, Y: 0.2}, math.Vec3{Y: 0.08, Z: 0.08}},
		{math.Vec3{X: 1.9, Y: 0.1}, math.Vec3{Y: 0.07, Z: 0.07}},
		{math.Vec3{X: 2.33, Y: 0.2}, math.Vec3{X: 0.01, Y: 0.05, Z: 0.05}},
		{math.Vec3{X: 2.03, Y: 0.5, Z: 0.3}, math.Vec3{X: 0.03, Y: 0.05, Z: 0.05}},
		{math.Vec3{X: 2.33, Z: 0.1}, math.Vec3{X: -0.01, Y: 0.05, Z: 0.05}},
	}

	// One strip threads every segment, with repeated indices bridging
	// between them, followed by the shoulder cap fan.
	armIndices = []uint32{
		24, 16, 25, 17, 26, 18, 27, 19, 28, 20, 29, 21, 30, 22, 31, 23, 24, 16,
		16, 8, 17, 9, 18, 10, 19, 11, 20, 12, 21, 13, 22, 14, 23, 15, 16, 8,
		8, 0, 9, 1, 10, 2, 11, 3, 12, 4, 13, 5, 14, 6, 15, 7, 8, 0, 0,
		32, 32, 8, 33, 9, 34, 10, 35, 11, 36, 12, 37, 13, 38, 14, 39, 15, 32, 8, 8,
		40, 40, 16, 41, 17, 42, 18, 43, 19, 44, 20, 45, 21, 46, 22, 47, 23, 40, 16,
		7, 6, 5, 4, 3, 2, 1, 0,
	}
)

const armStripCount = 94

// armJointRing returns the octagonal cross-section around origin. The ring
// leans along extent so the joint can face down the limb.
func armJointRing(j armJoint) []math.Vec3 {
	o, r := j.origin, j.extent
	d := r.Scale(float32(1 / gomath.Sqrt2))
	return []math.Vec3{
		{X: o.X - r.X, Y: o.Y + r.Y, Z: o.Z},
		{X: o.X - d.X, Y: o.Y + d.Y, Z: o.Z + d.Z},
		{X: o.X, Y: o.Y, Z: o.Z + r.Z},
		{X: o.X + d.X, Y: o.Y - d.Y, Z: o.Z + d.Z},
		{X: o.X + r.X, Y: o.Y - r.Y, Z: o.Z},
		{X: o.X + d.X, Y: o.Y - d.Y, Z: o.Z - d.Z},
		{X: o.X, Y: o.Y, Z: o.Z - r.Z},
		{X: o.X - d.X, Y: o.Y + d.Y, Z: o.Z - d.Z},
	}
}

// BuildArm generates the right stick arm with its ink outline.
// The shoulder cap is only drawn for the outline; on the real arm it is
// hidden inside the torso.
func BuildArm() *mesh.Buffer {
	b := &mesh.Buffer{
		Name:            "arm",
		Vertices:        make([]math.Vec3, 0, 48),
		OutlineVertices: make([]math.Vec3, 0, 48),
		Indices:         append([]uint32(nil), armIndices...),
	}
	for i := range armJoints {
		b.Vertices = append(b.Vertices, armJointRing(armJoints[i])...)
		b.OutlineVertices = append(b.OutlineVertices, armJointRing(armOutlineJoints[i])...)
	}

	b.Ranges = []mesh.Range{
		{Name: ArmLimb, Primitive: mesh.TriangleStrip, Source: mesh.Elements, Offset: 0, Count: armStripCount},
		{Name: ArmShoulderCap, Primitive: mesh.TriangleFan, Source: mesh.Elements, Offset: armStripCount, Count: 8},
		{Name: ArmFinger1, Primitive: mesh.TriangleFan, Source: mesh.Arrays, Offset: 24, Count: 8},
		{Name: ArmFinger2, Primitive: mesh.TriangleFan, Source: mesh.Arrays, Offset: 32, Count: 8},
		{Name: ArmFinger3, Primitive: mesh.TriangleFan, Source: mesh.Arrays, Offset: 40, Count: 8},
	}
	return b
}
