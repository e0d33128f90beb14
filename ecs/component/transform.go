package component

import "math"

// Vec3 is a world-space vector. Y is up; the ground plane is X/Z.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Transform is an entity pose. Yaw is in radians; zero faces +Z.
type Transform struct {
	X   float64
	Y   float64
	Z   float64
	Yaw float64
}

func (t Transform) Position() Vec3 {
	return Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

func (t Transform) Forward() Vec3 {
	return Vec3{X: math.Sin(t.Yaw), Z: math.Cos(t.Yaw)}
}

func (t Transform) Right() Vec3 {
	return Vec3{X: math.Cos(t.Yaw), Z: -math.Sin(t.Yaw)}
}

func (t Transform) Up() Vec3 {
	return Vec3{Y: 1}
}

var TransformComponent = NewComponent[Transform]()
