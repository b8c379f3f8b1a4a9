// Package main 无界面验证曲速状态机与鱼雷
//
// 使用软件渲染后端按脚本回放输入，逐 tick 输出状态、拖尾进度与鱼雷数量。
//
// 用法：
//
//	go run ./cmd/verify_warp --seed=1996 --script="0:engage 3:fire@150/280 25:disengage 60:quit"
//	go run ./cmd/verify_warp --ticks=120 --snapshot=frame.png
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/game"
	"github.com/decker502/warpfield/pkg/input"
	"github.com/decker502/warpfield/pkg/render"
)

var (
	configPath = flag.String("config", "", "星空配置文件路径")
	seed       = flag.Int64("seed", 1996, "随机种子")
	script     = flag.String("script", "0:engage 3:fire@150/280 25:disengage 60:quit", "输入脚本（tick:action）")
	maxTicks   = flag.Int("ticks", 200, "最多运行的 tick 数")
	snapshot   = flag.String("snapshot", "", "把最后一帧保存为 PNG")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadStarfieldConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	events, err := input.ParseScript(*script)
	if err != nil {
		fmt.Fprintf(os.Stderr, "脚本解析失败: %v\n", err)
		os.Exit(1)
	}

	world, err := game.NewWorld(cfg, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "世界创建失败: %v\n", err)
		os.Exit(1)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	display := render.NewImageDisplay(w, h, cfg.Palette().Background)
	loop := game.NewLoop(world, input.NewScriptedSource(events), render.NewBitPlane(w, h), display, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Println("tick  mode         streak  torpedoes")
	loop.OnTick = func(w *game.World) {
		fmt.Printf("%4d  %-11s  %6d  %d/%d\n",
			w.Ticks, w.WarpSys.Mode(), w.WarpSys.StreakCount(),
			w.Torpedoes.ActiveCount(), w.Torpedoes.Capacity())
		if w.Ticks >= *maxTicks {
			cancel()
		}
	}

	if err := loop.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ 结束于 tick %d\n", world.Ticks)

	if *snapshot != "" {
		if err := writePNG(*snapshot, display); err != nil {
			fmt.Fprintf(os.Stderr, "保存截图失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ 已保存 %s\n", *snapshot)
	}
}

func writePNG(path string, display *render.ImageDisplay) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, display.Canvas()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
