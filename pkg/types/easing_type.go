// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EasingStyle 定义缓动曲线的形状
type EasingStyle int

const (
	// EasingLinear 线性（无缓动）
	EasingLinear EasingStyle = iota
	// EasingQuad 二次方曲线
	EasingQuad
	// EasingCubic 三次方曲线
	EasingCubic
	// EasingSine 正弦曲线
	EasingSine
	// EasingExpo 指数曲线
	EasingExpo
)

// String 返回缓动样式的字符串表示
func (s EasingStyle) String() string {
	switch s {
	case EasingLinear:
		return "Linear"
	case EasingQuad:
		return "Quad"
	case EasingCubic:
		return "Cubic"
	case EasingSine:
		return "Sine"
	case EasingExpo:
		return "Expo"
	default:
		return "Unknown"
	}
}

// ParseEasingStyle 解析缓动样式名称(不区分大小写的常见写法)
// 无法识别时返回 EasingLinear 和 false
func ParseEasingStyle(name string) (EasingStyle, bool) {
	switch name {
	case "linear", "Linear":
		return EasingLinear, true
	case "quad", "Quad":
		return EasingQuad, true
	case "cubic", "Cubic":
		return EasingCubic, true
	case "sine", "Sine":
		return EasingSine, true
	case "expo", "Expo":
		return EasingExpo, true
	default:
		return EasingLinear, false
	}
}

// EasingDirection 定义缓动作用的方向（起始端、结束端或两端）
type EasingDirection int

const (
	// EaseIn 仅起始端缓动（开始慢）
	EaseIn EasingDirection = iota
	// EaseOut 仅结束端缓动（结束慢）
	EaseOut
	// EaseInOut 两端缓动（开始慢，中间快，结束慢）
	EaseInOut
)

// String 返回缓动方向的字符串表示
func (d EasingDirection) String() string {
	switch d {
	case EaseIn:
		return "In"
	case EaseOut:
		return "Out"
	case EaseInOut:
		return "InOut"
	default:
		return "Unknown"
	}
}

// ParseEasingDirection 解析缓动方向名称
// 无法识别时返回 EaseInOut 和 false
func ParseEasingDirection(name string) (EasingDirection, bool) {
	switch name {
	case "in", "In":
		return EaseIn, true
	case "out", "Out":
		return EaseOut, true
	case "in_out", "inout", "InOut":
		return EaseInOut, true
	default:
		return EaseInOut, false
	}
}
