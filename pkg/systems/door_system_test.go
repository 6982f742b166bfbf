package systems

import (
	"math"
	"testing"

	"github.com/decker502/doorway/pkg/config"
	"github.com/decker502/doorway/pkg/scene"
	"github.com/decker502/doorway/pkg/tween"
	"github.com/decker502/doorway/pkg/types"
	"github.com/decker502/doorway/pkg/utils"
)

// recordedTask 记录引擎创建的任务参数，供断言使用
type recordedTask struct {
	part     scene.Part
	target   utils.Vec3
	duration float64
	style    types.EasingStyle
	dir      types.EasingDirection
	started  bool
}

func (t *recordedTask) Start() {
	t.started = true
}

// fakeEngine 记录所有 CreateInterpolation 调用的假引擎
type fakeEngine struct {
	tasks []*recordedTask
}

func (e *fakeEngine) CreateInterpolation(part scene.Part, target utils.Vec3, duration float64, style types.EasingStyle, dir types.EasingDirection) tween.Task {
	task := &recordedTask{
		part:     part,
		target:   target,
		duration: duration,
		style:    style,
		dir:      dir,
	}
	e.tasks = append(e.tasks, task)
	return task
}

// buildPanel 构建一个门板模型，含 partCount 个部件，basePos 为首个部件位置
// withAnchor 为 false 时不设置锚点
func buildPanel(name string, partCount int, basePos utils.Vec3, withAnchor bool) *scene.Tree {
	panel := scene.NewTree(name, "")
	for i := 0; i < partCount; i++ {
		pos := basePos
		pos.Y += float64(i)
		part := scene.NewRigidPart("Part", pos)
		panel.AddPart(part)
		if i == 0 && withAnchor {
			panel.SetAnchor(part)
		}
	}
	return panel
}

// buildContainer 构建含 n 个完整门组件的容器，每侧门板 3 个部件
func buildContainer(n int) *scene.Tree {
	container := scene.NewTree("Doors", "")
	for i := 0; i < n; i++ {
		assembly := scene.NewTree("Door", TagDoorAssembly)
		assembly.AddChild(buildPanel(PanelLeftName, 3, utils.Vec3{Z: -0.7}, true))
		assembly.AddChild(buildPanel(PanelRightName, 3, utils.Vec3{Z: 0.7}, true))
		container.AddChild(assembly)
	}
	return container
}

// TestOpenEndToEnd 端到端：1 个门组件 × 每侧 3 部件 → 6 个已启动任务
func TestOpenEndToEnd(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())
	container := buildContainer(1)

	system.Open(container, 2)

	if len(engine.tasks) != 6 {
		t.Fatalf("任务数: got %d, 期望 6", len(engine.tasks))
	}

	plus, minus := 0, 0
	for _, task := range engine.tasks {
		if !task.started {
			t.Error("所有任务都应已启动")
		}
		if task.duration != 2 {
			t.Errorf("时长: got %v, 期望 2", task.duration)
		}
		if task.style != types.EasingCubic || task.dir != types.EaseInOut {
			t.Errorf("缓动: got %v/%v, 期望 Cubic/InOut", task.style, task.dir)
		}

		// 目标位置 = 当前位置 ± (0, 0, 2.6)
		delta := task.target.Sub(task.part.Position())
		switch {
		case math.Abs(delta.Z-2.6) < 1e-9 && delta.X == 0 && delta.Y == 0:
			plus++
		case math.Abs(delta.Z+2.6) < 1e-9 && delta.X == 0 && delta.Y == 0:
			minus++
		default:
			t.Errorf("位移异常: %+v", delta)
		}
	}
	if plus != 3 || minus != 3 {
		t.Errorf("位移分布: +2.6×%d, -2.6×%d, 期望各 3", plus, minus)
	}
}

// TestOpenLeftRightMirrored 测试左门板正向、右门板镜像位移
func TestOpenLeftRightMirrored(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())
	container := buildContainer(1)

	system.Open(container, 1.5)

	// Animate 先处理左门板：前 3 个任务属于左侧
	for i, task := range engine.tasks {
		delta := task.target.Sub(task.part.Position())
		if i < 3 && math.Abs(delta.Z-2.6) > 1e-9 {
			t.Errorf("左门板任务 %d 位移: got %v, 期望 +2.6", i, delta.Z)
		}
		if i >= 3 && math.Abs(delta.Z+2.6) > 1e-9 {
			t.Errorf("右门板任务 %d 位移: got %v, 期望 -2.6", i, delta.Z)
		}
	}
}

// TestCloseNegatesOpen 测试关门位移是开门位移的取反
func TestCloseNegatesOpen(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())
	container := buildContainer(1)

	system.Close(container)

	if len(engine.tasks) != 6 {
		t.Fatalf("任务数: got %d, 期望 6", len(engine.tasks))
	}
	for i, task := range engine.tasks {
		if !task.started {
			t.Error("所有任务都应已启动")
		}
		delta := task.target.Sub(task.part.Position())
		if i < 3 && math.Abs(delta.Z+2.6) > 1e-9 {
			t.Errorf("左门板任务 %d 位移: got %v, 期望 -2.6", i, delta.Z)
		}
		if i >= 3 && math.Abs(delta.Z-2.6) > 1e-9 {
			t.Errorf("右门板任务 %d 位移: got %v, 期望 +2.6", i, delta.Z)
		}
		if task.style != types.EasingSine || task.dir != types.EaseInOut {
			t.Errorf("缓动: got %v/%v, 期望 Sine/InOut", task.style, task.dir)
		}
	}
}

// TestCloseDurationSampling 测试关门时长落在 [3, 6) 且左右独立采样
func TestCloseDurationSampling(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())

	// 多次采样验证范围；左右时长同组件内部相等、跨采样独立
	sawDifferent := false
	for run := 0; run < 50; run++ {
		engine.tasks = nil
		system.Close(buildContainer(1))

		leftDur := engine.tasks[0].duration
		rightDur := engine.tasks[3].duration
		for _, d := range []float64{leftDur, rightDur} {
			if d < 3.0 || d >= 6.0 {
				t.Fatalf("关门时长越界: %v", d)
			}
		}
		// 同一侧门板的 3 个任务共用一次采样
		if engine.tasks[1].duration != leftDur || engine.tasks[2].duration != leftDur {
			t.Error("同侧任务的时长应一致")
		}
		if leftDur != rightDur {
			sawDifferent = true
		}
	}
	if !sawDifferent {
		t.Error("50 次采样中左右时长始终相等，采样疑似未独立")
	}
}

// TestMissingPanelAbortsRemaining 测试缺失门板时中止本次调用剩余的门组件
func TestMissingPanelAbortsRemaining(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())

	container := scene.NewTree("Doors", "")
	// 第一个门组件缺失右门板
	broken := scene.NewTree("Broken", TagDoorAssembly)
	broken.AddChild(buildPanel(PanelLeftName, 3, utils.Vec3{}, true))
	container.AddChild(broken)
	// 第二个门组件完好，但默认策略下不应被处理
	intact := scene.NewTree("Intact", TagDoorAssembly)
	intact.AddChild(buildPanel(PanelLeftName, 3, utils.Vec3{}, true))
	intact.AddChild(buildPanel(PanelRightName, 3, utils.Vec3{}, true))
	container.AddChild(intact)

	system.Open(container, 2)

	if len(engine.tasks) != 0 {
		t.Errorf("任务数: got %d, 期望 0（缺失门板应中止整个调用）", len(engine.tasks))
	}
}

// TestMissingPanelContinuePolicy 测试 ContinueOnMissingPanel 策略下跳过继续
func TestMissingPanelContinuePolicy(t *testing.T) {
	engine := &fakeEngine{}
	params := config.DefaultDoorParams()
	params.ContinueOnMissingPanel = true
	system := NewDoorSystem(engine, params)

	container := scene.NewTree("Doors", "")
	broken := scene.NewTree("Broken", TagDoorAssembly)
	broken.AddChild(buildPanel(PanelLeftName, 3, utils.Vec3{}, true))
	container.AddChild(broken)
	intact := scene.NewTree("Intact", TagDoorAssembly)
	intact.AddChild(buildPanel(PanelLeftName, 3, utils.Vec3{}, true))
	intact.AddChild(buildPanel(PanelRightName, 3, utils.Vec3{}, true))
	container.AddChild(intact)

	system.Open(container, 2)

	if len(engine.tasks) != 6 {
		t.Errorf("任务数: got %d, 期望 6（跳过残缺门组件，处理完好的）", len(engine.tasks))
	}
}

// TestMissingAnchorSkipsPanelOnly 测试缺失锚点只跳过该门板，同级门板正常
func TestMissingAnchorSkipsPanelOnly(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())

	container := scene.NewTree("Doors", "")
	assembly := scene.NewTree("Door", TagDoorAssembly)
	assembly.AddChild(buildPanel(PanelLeftName, 3, utils.Vec3{}, false)) // 无锚点
	assembly.AddChild(buildPanel(PanelRightName, 3, utils.Vec3{}, true))
	container.AddChild(assembly)

	system.Open(container, 2)

	if len(engine.tasks) != 3 {
		t.Fatalf("任务数: got %d, 期望 3（仅右门板）", len(engine.tasks))
	}
	for _, task := range engine.tasks {
		if !task.started {
			t.Error("右门板任务应已启动")
		}
		delta := task.target.Sub(task.part.Position())
		if math.Abs(delta.Z+2.6) > 1e-9 {
			t.Errorf("右门板位移: got %v, 期望 -2.6", delta.Z)
		}
	}
}

// TestAnimateTaskCountMatchesParts 测试 Animate 任务数等于部件数（含嵌套）
func TestAnimateTaskCountMatchesParts(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())

	panel := buildPanel(PanelLeftName, 2, utils.Vec3{}, true)
	nested := scene.NewTree("Handle", "")
	nested.AddPart(scene.NewRigidPart("Grip", utils.Vec3{Y: 0.5}))
	panel.AddChild(nested)

	tasks := system.Animate(panel, utils.Vec3{Z: 2.6}, 1, types.EasingCubic, types.EaseInOut)

	if len(tasks) != 3 {
		t.Errorf("任务数: got %d, 期望 3", len(tasks))
	}
	// 仅创建，不应启动
	for _, task := range engine.tasks {
		if task.started {
			t.Error("Animate 不应启动任务")
		}
	}
}

// TestAnimateReadsLivePosition 测试目标位置基于调用时的实时位置
func TestAnimateReadsLivePosition(t *testing.T) {
	engine := &fakeEngine{}
	system := NewDoorSystem(engine, config.DefaultDoorParams())

	panel := scene.NewTree(PanelLeftName, "")
	part := scene.NewRigidPart("Slab", utils.Vec3{Z: 1})
	panel.AddPart(part)
	panel.SetAnchor(part)

	// 第一次调用后移动部件，第二次调用的目标应随之变化
	system.Animate(panel, utils.Vec3{Z: 2.6}, 1, types.EasingCubic, types.EaseInOut)
	part.SetPosition(utils.Vec3{Z: 5})
	system.Animate(panel, utils.Vec3{Z: 2.6}, 1, types.EasingCubic, types.EaseInOut)

	if got := engine.tasks[0].target.Z; math.Abs(got-3.6) > 1e-9 {
		t.Errorf("第一次目标: got %v, 期望 3.6", got)
	}
	if got := engine.tasks[1].target.Z; math.Abs(got-7.6) > 1e-9 {
		t.Errorf("第二次目标: got %v, 期望 7.6", got)
	}
}
