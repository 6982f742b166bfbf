// Package config 提供门动画的调参配置
//
// 门板滑动相关配置
//
// 门组件由两部分组成：
//   - LeftPanel (左门板)：开门时沿 Z 轴正向滑动
//   - RightPanel (右门板)：开门时沿 Z 轴负向滑动（镜像位移）
//
// 坐标说明：
//   - 位移为世界坐标下的相对偏移，始终相对部件调用时的实时位置
//   - 关门位移是开门位移的取反
package config

import (
	"fmt"
	"os"

	"github.com/decker502/doorway/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultSlideDistance 门板滑动距离（世界单位）
// 调整指南：增大则门开得更宽
const DefaultSlideDistance = 2.6

// DefaultCloseDurationMin 关门时长随机下界（秒，含）
const DefaultCloseDurationMin = 3.0

// DefaultCloseDurationMax 关门时长随机上界（秒，不含）
const DefaultCloseDurationMax = 6.0

// DoorParams 门动画参数
// 显式传入 DoorSystem，避免散落的全局可变常量
type DoorParams struct {
	// SlideDistance 门板滑动距离（世界单位）
	SlideDistance float64
	// OpenStyle 开门缓动样式
	OpenStyle types.EasingStyle
	// OpenDirection 开门缓动方向
	OpenDirection types.EasingDirection
	// CloseStyle 关门缓动样式
	CloseStyle types.EasingStyle
	// CloseDirection 关门缓动方向
	CloseDirection types.EasingDirection
	// CloseDurationMin 关门时长随机下界（秒，含）
	CloseDurationMin float64
	// CloseDurationMax 关门时长随机上界（秒，不含）
	CloseDurationMax float64
	// ContinueOnMissingPanel 缺失门板时是否继续处理后续门组件
	// false 表示中止本次调用剩余的全部门组件
	ContinueOnMissingPanel bool
}

// DefaultDoorParams 返回默认参数
//
// 开门用三次方缓入缓出；关门用正弦缓入缓出，时长在 [3.0, 6.0) 内随机
func DefaultDoorParams() DoorParams {
	return DoorParams{
		SlideDistance:          DefaultSlideDistance,
		OpenStyle:              types.EasingCubic,
		OpenDirection:          types.EaseInOut,
		CloseStyle:             types.EasingSine,
		CloseDirection:         types.EaseInOut,
		CloseDurationMin:       DefaultCloseDurationMin,
		CloseDurationMax:       DefaultCloseDurationMax,
		ContinueOnMissingPanel: false,
	}
}

// Validate 校验参数合法性
func (p DoorParams) Validate() error {
	if p.SlideDistance <= 0 {
		return fmt.Errorf("slide distance must be positive, got %v", p.SlideDistance)
	}
	if p.CloseDurationMin <= 0 {
		return fmt.Errorf("close duration min must be positive, got %v", p.CloseDurationMin)
	}
	if p.CloseDurationMax <= p.CloseDurationMin {
		return fmt.Errorf("close duration max %v must exceed min %v", p.CloseDurationMax, p.CloseDurationMin)
	}
	return nil
}

// doorParamsYAML YAML 文件中的参数表示
// 缓动样式和方向以字符串形式书写（如 "cubic" / "in_out"）
type doorParamsYAML struct {
	SlideDistance          *float64 `yaml:"slideDistance"`
	OpenEasing             string   `yaml:"openEasing"`
	OpenDirection          string   `yaml:"openDirection"`
	CloseEasing            string   `yaml:"closeEasing"`
	CloseDirection         string   `yaml:"closeDirection"`
	CloseDurationMin       *float64 `yaml:"closeDurationMin"`
	CloseDurationMax       *float64 `yaml:"closeDurationMax"`
	ContinueOnMissingPanel *bool    `yaml:"continueOnMissingPanel"`
}

// LoadDoorParams 从 YAML 文件加载参数
//
// 文件中未出现的字段保持默认值
//
// 返回：
//   - DoorParams: 合并默认值后的参数
//   - error: 读取、解析或校验错误
func LoadDoorParams(path string) (DoorParams, error) {
	params := DefaultDoorParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read door config: %w", err)
	}

	var raw doorParamsYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return params, fmt.Errorf("failed to parse door config: %w", err)
	}

	if raw.SlideDistance != nil {
		params.SlideDistance = *raw.SlideDistance
	}
	if raw.OpenEasing != "" {
		style, ok := types.ParseEasingStyle(raw.OpenEasing)
		if !ok {
			return params, fmt.Errorf("unknown open easing style %q", raw.OpenEasing)
		}
		params.OpenStyle = style
	}
	if raw.OpenDirection != "" {
		dir, ok := types.ParseEasingDirection(raw.OpenDirection)
		if !ok {
			return params, fmt.Errorf("unknown open easing direction %q", raw.OpenDirection)
		}
		params.OpenDirection = dir
	}
	if raw.CloseEasing != "" {
		style, ok := types.ParseEasingStyle(raw.CloseEasing)
		if !ok {
			return params, fmt.Errorf("unknown close easing style %q", raw.CloseEasing)
		}
		params.CloseStyle = style
	}
	if raw.CloseDirection != "" {
		dir, ok := types.ParseEasingDirection(raw.CloseDirection)
		if !ok {
			return params, fmt.Errorf("unknown close easing direction %q", raw.CloseDirection)
		}
		params.CloseDirection = dir
	}
	if raw.CloseDurationMin != nil {
		params.CloseDurationMin = *raw.CloseDurationMin
	}
	if raw.CloseDurationMax != nil {
		params.CloseDurationMax = *raw.CloseDurationMax
	}
	if raw.ContinueOnMissingPanel != nil {
		params.ContinueOnMissingPanel = *raw.ContinueOnMissingPanel
	}

	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("invalid door config: %w", err)
	}
	return params, nil
}
