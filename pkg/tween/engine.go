// Package tween 定义插值引擎协作方的能力接口以及一个逐帧推进的运行时实现
//
// 门动画编排器只负责构造插值任务，任务的推进由宿主引擎在后续帧中完成。
// 宿主引擎通过实现 Engine 和 Task 接口接入；runtime.go 中的 Runtime
// 是本仓库自带的实现，由 Ebiten 的 Update 循环驱动。
package tween

import (
	"github.com/decker502/doorway/pkg/scene"
	"github.com/decker502/doorway/pkg/types"
	"github.com/decker502/doorway/pkg/utils"
)

// Task 一次插值任务
// 创建后不产生任何副作用，Start 之后归引擎所有，调用方不保留回调或取消句柄
type Task interface {
	// Start 开始播放任务
	Start()
}

// Engine 插值引擎：按给定时长和缓动曲线把部件移动到目标位置
type Engine interface {
	// CreateInterpolation 创建一个插值任务（不启动）
	//
	// 参数：
	//   - part: 目标刚体部件
	//   - target: 目标位置（世界坐标）
	//   - duration: 播放时长（秒）
	//   - style: 缓动样式
	//   - dir: 缓动方向
	CreateInterpolation(part scene.Part, target utils.Vec3, duration float64, style types.EasingStyle, dir types.EasingDirection) Task
}
