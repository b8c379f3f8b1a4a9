// Package app 提供桌面窗口后端的应用包装器
//
// 该包把星空世界接入 ebiten 的 Update/Draw 循环：
// Update 负责输入与推进，Draw 只负责把本 tick 的绘制记录画到屏幕上。
package app

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/game"
	"github.com/decker502/warpfield/pkg/input"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Starfield 已加载并校验的星空配置
	Starfield *config.StarfieldConfig
	// Seed 随机种子，0 表示使用配置中的种子（仍为 0 时使用进程号）
	Seed int64
}

// App 是星空应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg      *config.StarfieldConfig
	world    *game.World
	source   *input.EbitenSource
	input    *systems.InputSystem
	renderer *systems.RenderSystem
	plane    *render.EbitenPlane
	sprites  *render.EbitenSprites
	palette  config.Palette
	verbose  bool

	drawErr error // Draw 中的绘制失败，在下一次 Update 返回
}

// NewApp 创建并初始化应用
//
// 必须在 ebiten.RunGame 之前调用；图像在首次绘制前不会真正上传到 GPU。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sf := cfg.Starfield
	if sf == nil {
		sf = config.DefaultStarfieldConfig()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = sf.Starfield.Seed
	}
	world, err := game.NewWorld(sf, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	if sf.Audio.Enabled {
		world.Sounds = game.NewAudioManager(audio.NewContext(game.SampleRate), sf.Audio.Volume)
		log.Printf("[App] AudioManager initialized")
	}

	palette := sf.Palette()
	a := &App{
		cfg:      sf,
		world:    world,
		source:   input.NewEbitenSource(),
		input:    systems.NewInputSystem(),
		renderer: systems.NewRenderSystem(palette),
		plane:    render.NewEbitenPlane(sf.Window.Width, sf.Window.Height),
		sprites:  render.NewEbitenSprites(),
		palette:  palette,
		verbose:  cfg.Verbose,
	}

	log.Printf("[App] ebiten backend ready: %dx%d @ %d TPS",
		sf.Window.Width, sf.Window.Height, sf.TicksPerSecond())
	return a, nil
}

// ConfigureWindow 按配置设置窗口属性与 TPS
//
// 窗口最大尺寸固定为初始尺寸，只能缩小到配置的最小尺寸。
func ConfigureWindow(cfg *config.StarfieldConfig) {
	w := cfg.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowSizeLimits(w.MinWidth, w.MinHeight, w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetCursorShape(CursorShape(w.Cursor))
	ebiten.SetTPS(cfg.TicksPerSecond())
}

// CursorShape 把配置中的光标名转换为 ebiten 光标形状，未知名称使用默认光标
func CursorShape(name string) ebiten.CursorShapeType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crosshair":
		return ebiten.CursorShapeCrosshair
	case "pointer":
		return ebiten.CursorShapePointer
	case "text":
		return ebiten.CursorShapeText
	default:
		return ebiten.CursorShapeDefault
	}
}

// Update 更新世界
// 每个 tick 调用一次（默认每秒 50 次）
func (a *App) Update() error {
	if a.drawErr != nil {
		return a.drawErr
	}

	intents := a.input.Drain(a.source)
	if a.world.Step(intents) {
		log.Printf("[App] quit after %d ticks", a.world.Ticks)
		return ebiten.Termination
	}
	return nil
}

// Draw 绘制当前 tick 的画面
func (a *App) Draw(screen *ebiten.Image) {
	display := render.NewEbitenDisplay(screen, a.sprites, a.palette.Background)
	if err := a.renderer.Render(a.world.Frame(), a.plane, display); err != nil {
		log.Printf("[App] Draw failed: %v", err)
		a.drawErr = err
	}

	if a.cfg.Debug.ShowHUD {
		ebitenutil.DebugPrint(screen, a.hudText())
	}
}

// hudText 调试信息：状态、拖尾进度、鱼雷占用、TPS
func (a *App) hudText() string {
	w := a.world
	return fmt.Sprintf("%s %d/%d\ntorps %d/%d\ntps %.0f",
		w.WarpSys.Mode(), w.WarpSys.StreakCount(), a.cfg.Starfield.MaxStreak,
		w.Torpedoes.ActiveCount(), w.Torpedoes.Capacity(),
		ebiten.ActualTPS())
}

// Layout 返回逻辑屏幕尺寸
// 窗口缩小时由 ebiten 自动缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// World 返回星空世界
func (a *App) World() *game.World {
	return a.world
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
