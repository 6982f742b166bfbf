// Package systems 实现门动画的编排逻辑
package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/doorway/pkg/config"
	"github.com/decker502/doorway/pkg/scene"
	"github.com/decker502/doorway/pkg/tween"
	"github.com/decker502/doorway/pkg/types"
	"github.com/decker502/doorway/pkg/utils"
)

// 场景图中的节点命名约定
const (
	// TagDoorAssembly 门组件子节点的标签
	TagDoorAssembly = "DoorAssembly"
	// PanelLeftName 左门板子模型的名称
	PanelLeftName = "LeftPanel"
	// PanelRightName 右门板子模型的名称
	PanelRightName = "RightPanel"
)

// DoorSystem 门动画编排系统
//
// 负责枚举容器下的门组件，计算左右门板的镜像位移，
// 并把插值任务交给注入的引擎播放。本身不持有任何跨调用状态，
// 每次调用都从场景图的实时状态重新计算。
//
// 已知竞争语义：同一门组件上并发的 Open/Close 不做协调，
// 同一部件上后启动的任务会静默取代先前的任务。
type DoorSystem struct {
	engine tween.Engine
	params config.DoorParams
}

// NewDoorSystem 创建门动画编排系统
//
// 参数：
//   - engine: 插值引擎（宿主引擎或 tween.Runtime）
//   - params: 门动画参数（见 config.DefaultDoorParams）
func NewDoorSystem(engine tween.Engine, params config.DoorParams) *DoorSystem {
	return &DoorSystem{
		engine: engine,
		params: params,
	}
}

// Animate 为模型下的每个刚体部件创建一个位移插值任务
//
// 对模型下（含嵌套子模型）的每个刚体部件，以其调用时的实时位置
// 加上 displacement 作为目标位置创建任务。仅创建，不启动——
// 在调用方 Start 之前不会移动任何部件。
//
// 模型未设置锚点部件时记录诊断并返回空序列，
// 同一门组件中已处理的另一侧门板不受影响。
//
// 返回的任务数等于模型下的刚体部件数，顺序为遍历顺序。
func (s *DoorSystem) Animate(model scene.Node, displacement utils.Vec3, duration float64, style types.EasingStyle, dir types.EasingDirection) []tween.Task {
	if model.Anchor() == nil {
		log.Printf("[DoorSystem] 警告: 门板 %s 未设置锚点部件，跳过", model.Name())
		return nil
	}

	parts := model.Parts()
	tasks := make([]tween.Task, 0, len(parts))
	for _, part := range parts {
		target := part.Position().Add(displacement)
		tasks = append(tasks, s.engine.CreateInterpolation(part, target, duration, style, dir))
	}
	return tasks
}

// Open 打开容器下所有门组件
//
// 左门板沿 Z 轴正向滑动 SlideDistance，右门板镜像滑动，
// 两侧共用调用方给定的时长和开门缓动曲线。
// 每个门组件的全部任务在创建后立即启动，再处理下一个门组件。
//
// 参数：
//   - container: 门容器节点
//   - duration: 播放时长（秒，正数）
func (s *DoorSystem) Open(container scene.Node, duration float64) {
	offset := utils.Vec3{Z: s.params.SlideDistance}

	for _, assembly := range container.ChildrenWithTag(TagDoorAssembly) {
		left, right, ok := s.resolvePanels(assembly)
		if !ok {
			if s.params.ContinueOnMissingPanel {
				continue
			}
			// 默认策略：中止本次调用剩余的全部门组件
			return
		}

		tasks := s.Animate(left, offset, duration, s.params.OpenStyle, s.params.OpenDirection)
		tasks = append(tasks, s.Animate(right, offset.Neg(), duration, s.params.OpenStyle, s.params.OpenDirection)...)
		startAll(tasks)
	}
}

// Close 关闭容器下所有门组件
//
// 位移是 Open 的取反：左门板沿 Z 轴负向滑回，右门板镜像。
// 每侧门板的时长在 [CloseDurationMin, CloseDurationMax) 内独立
// 均匀采样，左右不必相等。任务创建后立即启动。
//
// 参数：
//   - container: 门容器节点
func (s *DoorSystem) Close(container scene.Node) {
	offset := utils.Vec3{Z: -s.params.SlideDistance}

	for _, assembly := range container.ChildrenWithTag(TagDoorAssembly) {
		left, right, ok := s.resolvePanels(assembly)
		if !ok {
			if s.params.ContinueOnMissingPanel {
				continue
			}
			return
		}

		tasks := s.Animate(left, offset, s.sampleCloseDuration(), s.params.CloseStyle, s.params.CloseDirection)
		tasks = append(tasks, s.Animate(right, offset.Neg(), s.sampleCloseDuration(), s.params.CloseStyle, s.params.CloseDirection)...)
		startAll(tasks)
	}
}

// resolvePanels 定位门组件的左右门板
//
// 任一门板缺失时记录诊断并返回 ok=false，由调用方决定中止还是跳过
func (s *DoorSystem) resolvePanels(assembly scene.Node) (left, right scene.Node, ok bool) {
	left, lok := assembly.Child(PanelLeftName)
	right, rok := assembly.Child(PanelRightName)
	if !lok || !rok {
		log.Printf("[DoorSystem] 警告: 门组件 %s 缺失门板 (left=%v, right=%v)", assembly.Name(), lok, rok)
		return nil, nil, false
	}
	return left, right, true
}

// sampleCloseDuration 采样一次关门时长（秒）
// 均匀分布于 [CloseDurationMin, CloseDurationMax)
func (s *DoorSystem) sampleCloseDuration() float64 {
	return s.params.CloseDurationMin + rand.Float64()*(s.params.CloseDurationMax-s.params.CloseDurationMin)
}

// startAll 启动一组任务
func startAll(tasks []tween.Task) {
	for _, task := range tasks {
		task.Start()
	}
}
