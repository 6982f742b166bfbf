// Package utils 提供动画编排中常用的工具函数
//
// vector.go 提供三维向量运算，用于门板位移和插值目标位置的计算。
package utils

import "math"

// Vec3 三维向量（世界坐标，单位与宿主场景一致）
// 门板位移计算只涉及加法和取反，这里仍提供常用的向量运算以便复用
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Add 返回 v + w
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub 返回 v - w
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale 返回 s·v
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Neg 返回 -v（用于左右门板的镜像位移）
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Length 返回向量长度
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LerpVec3 在 a 和 b 之间根据 t 线性插值
// t=0 返回 a，t=1 返回 b
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(a.X, b.X, t),
		Y: Lerp(a.Y, b.Y, t),
		Z: Lerp(a.Z, b.Z, t),
	}
}
