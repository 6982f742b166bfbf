package utils

import (
	"math"

	"github.com/decker502/doorway/pkg/types"
)

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 特点：开始慢，结束较快
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢（开门动画的默认曲线）
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInSine 正弦缓入
// 公式：f(t) = 1 - cos(tπ/2)
func EaseInSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

// EaseOutSine 正弦缓出
// 公式：f(t) = sin(tπ/2)
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseInOutSine 正弦缓入缓出
// 特点：比 Cubic 更柔和的两端缓动（关门动画的默认曲线）
// 公式：f(t) = -(cos(tπ) - 1) / 2
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(t*math.Pi) - 1) / 2
}

// EaseInExpo 指数缓入
// 公式：f(t) = 2^(10t - 10)
func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// easeIn 按样式返回"缓入"基础曲线的值
func easeIn(style types.EasingStyle, t float64) float64 {
	switch style {
	case types.EasingQuad:
		return EaseInQuad(t)
	case types.EasingCubic:
		return EaseInCubic(t)
	case types.EasingSine:
		return EaseInSine(t)
	case types.EasingExpo:
		return EaseInExpo(t)
	default:
		return EaseLinear(t)
	}
}

// Ease 根据样式和方向计算缓动后的进度值
//
// 方向的推导遵循标准关系：
//
//	Out(t)   = 1 - In(1-t)
//	InOut(t) = In(2t)/2          (t < 0.5)
//	         = 1 - In(2-2t)/2    (t >= 0.5)
//
// 输入 t 会被钳制到 [0, 1]
func Ease(style types.EasingStyle, dir types.EasingDirection, t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch dir {
	case types.EaseIn:
		return easeIn(style, t)
	case types.EaseOut:
		return 1 - easeIn(style, 1-t)
	default: // EaseInOut
		if t < 0.5 {
			return easeIn(style, 2*t) / 2
		}
		return 1 - easeIn(style, 2-2*t)/2
	}
}
