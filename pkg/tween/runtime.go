package tween

import (
	"log"
	"sync"

	"github.com/decker502/doorway/pkg/scene"
	"github.com/decker502/doorway/pkg/types"
	"github.com/decker502/doorway/pkg/utils"
)

// Movable 可被运行时驱动的部件：在可读位置之上增加写能力
type Movable interface {
	scene.Part
	SetPosition(pos utils.Vec3)
}

// Runtime 逐帧推进的插值引擎实现
//
// 每个部件同一时刻只有一个活跃任务：后启动的任务静默取代先前的任务
// （竞争语义，不做协调）。
// Update 由外部循环（如 Ebiten 的 Game.Update）按帧调用。
type Runtime struct {
	mu     sync.Mutex
	active map[Movable]*playback
}

// NewRuntime 创建插值运行时
func NewRuntime() *Runtime {
	return &Runtime{
		active: make(map[Movable]*playback),
	}
}

// playback 单个部件的插值播放状态
type playback struct {
	part     Movable
	from     utils.Vec3 // Start 时读取的起始位置
	target   utils.Vec3
	duration float64
	elapsed  float64
	style    types.EasingStyle
	dir      types.EasingDirection
}

// runtimeTask Task 接口实现：Start 时把播放状态注册进运行时
type runtimeTask struct {
	rt       *Runtime
	part     Movable
	target   utils.Vec3
	duration float64
	style    types.EasingStyle
	dir      types.EasingDirection
}

// Start 开始播放：注册播放状态，取代该部件上已有的任务
func (t *runtimeTask) Start() {
	t.rt.mu.Lock()
	defer t.rt.mu.Unlock()
	// 起始位置在 Start 时读取，位移始终相对场景的实时状态
	t.rt.active[t.part] = &playback{
		part:     t.part,
		from:     t.part.Position(),
		target:   t.target,
		duration: t.duration,
		style:    t.style,
		dir:      t.dir,
	}
}

// noopTask 部件不可写时返回的空任务
type noopTask struct{}

func (noopTask) Start() {}

// CreateInterpolation 创建插值任务（不启动）
//
// 部件必须实现 Movable，否则记录诊断并返回空任务
func (rt *Runtime) CreateInterpolation(part scene.Part, target utils.Vec3, duration float64, style types.EasingStyle, dir types.EasingDirection) Task {
	movable, ok := part.(Movable)
	if !ok {
		log.Printf("[TweenRuntime] 警告: 部件 %s 不支持写入位置，任务将被忽略", part.Name())
		return noopTask{}
	}
	return &runtimeTask{
		rt:       rt,
		part:     movable,
		target:   target,
		duration: duration,
		style:    style,
		dir:      dir,
	}
}

// Update 推进所有活跃任务
//
// 参数：
//   - dt: 时间增量（秒）
func (rt *Runtime) Update(dt float64) {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	for part, pb := range rt.active {
		pb.elapsed += dt

		// 非正时长视为立即到位；完成判定带 1e-9 容差，
		// 抵消逐帧累加的浮点误差（如 10×0.1 累加后略小于 1.0）
		if pb.duration <= 0 || pb.elapsed >= pb.duration-1e-9 {
			pb.part.SetPosition(pb.target)
			delete(rt.active, part)
			continue
		}

		k := utils.Ease(pb.style, pb.dir, pb.elapsed/pb.duration)
		pb.part.SetPosition(utils.LerpVec3(pb.from, pb.target, k))
	}
}

// ActiveCount 返回当前活跃任务数（调试与测试用）
func (rt *Runtime) ActiveCount() int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return len(rt.active)
}
