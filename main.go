// Command warpfield 绘制一片下落的星空，支持曲速拖尾与光子鱼雷
//
// 用法：
//
//	go run . [flags]
//
// 操作：
//
//	右键按住      接合曲速，松开后拖尾逐步收起
//	左键          在光标处发射鱼雷
//	中键松开      退出
//
// 后端：
//
//	--backend=ebiten  桌面窗口（默认）
//	--backend=fbdev   Linux 帧缓冲 + evdev 鼠标，无需窗口系统
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/warpfield/pkg/app"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/game"
	"github.com/decker502/warpfield/pkg/input"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "星空配置文件路径（为空时使用内置默认配置）")
	seedFlag   = flag.Int64("seed", 0, "随机种子（0 表示使用配置中的种子，仍为 0 时使用进程号）")
	verbose    = flag.Bool("verbose", false, "启用详细日志")
	backend    = flag.String("backend", "ebiten", "显示后端：ebiten 或 fbdev")
	fbDevice   = flag.String("fb-device", "/dev/fb0", "帧缓冲设备（fbdev 后端）")
	inputGlob  = flag.String("input", "/dev/input/event*", "evdev 输入设备匹配模式（fbdev 后端）")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	cfg, err := config.LoadStarfieldConfig(*configPath)
	if err != nil {
		fatalf("配置加载失败: %v", err)
	}
	log.Printf("[Main] backend=%s config=%q", *backend, *configPath)

	switch *backend {
	case "ebiten":
		err = runEbiten(cfg)
	case "fbdev":
		err = runFramebuffer(cfg)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}
	if err != nil {
		fatalf("%v", err)
	}
}

// runEbiten 以桌面窗口运行
func runEbiten(cfg *config.StarfieldConfig) error {
	a, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Starfield: cfg,
		Seed:      *seedFlag,
	})
	if err != nil {
		return fmt.Errorf("应用初始化失败: %w", err)
	}

	app.ConfigureWindow(cfg)
	// Update 返回 ebiten.Termination 时 RunGame 返回 nil
	return ebiten.RunGame(a)
}

// runFramebuffer 直接在 Linux 帧缓冲上运行
func runFramebuffer(cfg *config.StarfieldConfig) error {
	seed := *seedFlag
	if seed == 0 {
		seed = cfg.Starfield.Seed
	}
	world, err := game.NewWorld(cfg, seed)
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	display, err := render.OpenFramebuffer(*fbDevice, w, h, cfg.Palette().Background)
	if err != nil {
		return err
	}
	defer display.Close()

	src, err := input.OpenEvdev(*inputGlob, w, h)
	if err != nil {
		return err
	}
	defer src.Close()

	if cfg.Audio.Enabled {
		log.Printf("[Main] audio cues are only available on the ebiten backend")
	}

	pacer := game.NewTickerPacer(cfg.TickInterval())
	defer pacer.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(world, src, render.NewBitPlane(w, h), display, pacer)
	return loop.Run(ctx)
}

// fatalf 输出错误并退出；日志可能已被丢弃，因此直接写 stderr
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warpfield: "+format+"\n", args...)
	os.Exit(1)
}
