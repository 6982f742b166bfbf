// Package main provides a sliding-door animation verification tool for testing
// and debugging the door orchestration system.
//
// Usage:
//
//	go run cmd/verify_doors/main.go [flags]
//
// Flags:
//
//	--config <path>      Door parameter YAML file (default: built-in defaults)
//	--duration <seconds> Open duration for this run only, not persisted
//	                     (default: last saved value)
//	--no-save            Do not persist settings between runs
//
// Controls:
//
//	O          - Open all doors
//	C          - Close all doors (randomized duration per panel)
//	R          - Reset panels to their home positions
//	Up/Down    - Adjust open duration by 0.5s
//	F          - Toggle fullscreen
//	Q          - Quit
//
// Purpose:
//   - Quickly eyeball door easing curves without a host scene
//   - Verify mirrored left/right displacement
//   - Tune slide distance and duration parameters
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/decker502/doorway/pkg/config"
	"github.com/decker502/doorway/pkg/scene"
	"github.com/decker502/doorway/pkg/settings"
	"github.com/decker502/doorway/pkg/systems"
	"github.com/decker502/doorway/pkg/tween"
	"github.com/decker502/doorway/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"
)

const (
	screenWidth  = 800
	screenHeight = 600

	// 世界坐标到屏幕像素的换算比例
	pixelsPerUnit = 60.0
	// 门板渲染尺寸（像素）
	panelWidth  = 70
	panelHeight = 110
)

var (
	configFlag   = flag.String("config", "", "Door parameter YAML file")
	durationFlag = flag.Float64("duration", 0, "Open duration in seconds for this run only (0 = use saved setting)")
	noSaveFlag   = flag.Bool("no-save", false, "Do not persist settings between runs")
)

// DoorVerifyGame implements ebiten.Game interface for door animation verification
type DoorVerifyGame struct {
	runtime   *tween.Runtime
	doors     *systems.DoorSystem
	container *scene.Tree
	home      map[*scene.RigidPart]utils.Vec3
	settings  *settings.SettingsManager
	opened    bool
}

// buildDemoContainer 构建演示场景：两个门组件，每侧门板含 3 个刚体部件
//
// 世界坐标约定：X 为门组件的排布方向，Z 为门板滑动方向
func buildDemoContainer() *scene.Tree {
	container := scene.NewTree("Doors", "")

	for i := 0; i < 2; i++ {
		assembly := scene.NewTree(fmt.Sprintf("Door_%d", i+1), systems.TagDoorAssembly)
		baseX := float64(i) * 5.0

		// 开门时左门板沿 Z 正向滑动，所以闭合状态下它贴在门缝的 Z 正侧
		for _, side := range []struct {
			name string
			sign float64
		}{
			{systems.PanelLeftName, 1},
			{systems.PanelRightName, -1},
		} {
			panel := scene.NewTree(side.name, "")
			// 门板主体 + 上下门框条，闭合状态下左右各贴着门缝
			slab := scene.NewRigidPart("Slab", utils.Vec3{X: baseX, Z: side.sign * 0.7})
			panel.AddPart(slab)
			panel.AddPart(scene.NewRigidPart("TrimTop", utils.Vec3{X: baseX, Y: 1.0, Z: side.sign * 0.7}))
			panel.AddPart(scene.NewRigidPart("TrimBottom", utils.Vec3{X: baseX, Y: -1.0, Z: side.sign * 0.7}))
			panel.SetAnchor(slab)
			assembly.AddChild(panel)
		}
		container.AddChild(assembly)
	}
	return container
}

// NewDoorVerifyGame 创建验证工具实例
func NewDoorVerifyGame(params config.DoorParams, sm *settings.SettingsManager) *DoorVerifyGame {
	runtime := tween.NewRuntime()
	container := buildDemoContainer()

	home := make(map[*scene.RigidPart]utils.Vec3)
	for _, part := range container.RigidParts() {
		home[part] = part.Position()
	}

	return &DoorVerifyGame{
		runtime:   runtime,
		doors:     systems.NewDoorSystem(runtime, params),
		container: container,
		home:      home,
		settings:  sm,
	}
}

// resetPanels 把所有门板部件放回初始位置
func (g *DoorVerifyGame) resetPanels() {
	for part, pos := range g.home {
		part.SetPosition(pos)
	}
	g.opened = false
}

// Update 处理输入并推进插值运行时
func (g *DoorVerifyGame) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.doors.Open(g.container, g.settings.GetSettings().OpenDuration)
		g.opened = true
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.doors.Close(g.container)
		g.opened = false
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.resetPanels()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		d := g.settings.GetSettings().OpenDuration + 0.5
		if err := g.settings.SetOpenDuration(d); err != nil {
			log.Printf("[verify_doors] 保存设置失败: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		d := g.settings.GetSettings().OpenDuration - 0.5
		if d >= 0.5 {
			if err := g.settings.SetOpenDuration(d); err != nil {
				log.Printf("[verify_doors] 保存设置失败: %v", err)
			}
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if err := g.settings.SetFullscreen(fullscreen); err != nil {
			log.Printf("[verify_doors] 保存设置失败: %v", err)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	g.runtime.Update(dt)
	return nil
}

// Draw 俯视渲染：世界 Z 轴映射到屏幕水平方向，每个门组件占一行
func (g *DoorVerifyGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 32, A: 255})

	for i, assembly := range g.container.ChildrenWithTag(systems.TagDoorAssembly) {
		rowY := float32(120 + i*220)

		// 门洞背景
		vector.DrawFilledRect(screen, 60, rowY-10, screenWidth-120, panelHeight+20,
			color.RGBA{R: 44, G: 48, B: 58, A: 255}, false)

		for _, part := range assembly.Parts() {
			pos := part.Position()
			sx := float32(screenWidth/2 + pos.Z*pixelsPerUnit - panelWidth/2)
			sy := rowY + float32(pos.Y*12)
			vector.DrawFilledRect(screen, sx, sy, panelWidth, panelHeight,
				color.RGBA{R: 120, G: 170, B: 220, A: 200}, false)
			vector.StrokeRect(screen, sx, sy, panelWidth, panelHeight, 1,
				color.RGBA{R: 220, G: 230, B: 240, A: 255}, false)
		}
	}

	state := "closed"
	if g.opened {
		state = "open"
	}
	hud := fmt.Sprintf(
		"O: open  C: close  R: reset  Up/Down: duration  F: fullscreen  Q: quit\n"+
			"open duration: %.1fs  active tasks: %d  state: %s",
		g.settings.GetSettings().OpenDuration, g.runtime.ActiveCount(), state)
	ebitenutil.DebugPrint(screen, hud)
}

// Layout implements ebiten.Game interface
func (g *DoorVerifyGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	// 加载门动画参数
	params := config.DefaultDoorParams()
	if *configFlag != "" {
		loaded, err := config.LoadDoorParams(*configFlag)
		if err != nil {
			log.Printf("[verify_doors] 加载配置失败: %v", err)
			os.Exit(1)
		}
		params = loaded
	}

	// 初始化设置持久化（--no-save 时降级为内存模式）
	var gdataManager *gdata.Manager
	if !*noSaveFlag {
		m, err := gdata.Open(gdata.Config{AppName: "doorway_verify"})
		if err != nil {
			log.Printf("[verify_doors] Warning: gdata unavailable: %v (settings will not persist)", err)
		} else {
			gdataManager = m
		}
	}
	sm, err := settings.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[verify_doors] Warning: %v", err)
	}
	if *durationFlag > 0 {
		// 仅本次运行生效，不覆盖已保存的设置
		if err := sm.OverrideOpenDuration(*durationFlag); err != nil {
			log.Printf("[verify_doors] %v", err)
			os.Exit(1)
		}
	}

	game := NewDoorVerifyGame(params, sm)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Doorway - Door Animation Verify")
	ebiten.SetFullscreen(sm.GetSettings().Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("[verify_doors] %v", err)
	}
}
