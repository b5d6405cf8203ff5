package world

import "github.com/Faultbox/snowmen/pkg/math"

// Scene colors.
var (
	SkyColor    = math.Vec4{0.53, 0.81, 0.92, 1}
	SnowColor   = math.Vec4{1, 0.98, 0.98, 1}
	CarrotColor = math.Vec4{1, 0.35, 0, 1}
	SkateColor  = math.Vec4{0.5, 0.5, 0.5, 1}
	ArmColor    = math.Vec4{0.55, 0.37, 0.17, 1}
	IceColor    = math.Vec4{0.6, 0.8, 0.9, 0.92}
	TrunkColor  = math.Vec4{0.55, 0.27, 0.07, 1}
	InkColor    = math.Vec4{0, 0, 0, 1}
	ShadowColor = math.Vec4{0, 0, 0, 0.1}
	White       = math.Vec4{1, 1, 1, 1}
)
