package game

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/decker502/warpfield/pkg/input"
	"github.com/decker502/warpfield/pkg/render"
	"github.com/decker502/warpfield/pkg/systems"
)

// Pacer 控制 tick 节奏
type Pacer interface {
	// Wait 阻塞到下一个 tick，ctx 取消时返回其错误
	Wait(ctx context.Context) error
}

// TickerPacer 基于 time.Ticker 的固定节奏
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer 创建固定间隔的节奏器
func NewTickerPacer(interval time.Duration) *TickerPacer {
	return &TickerPacer{ticker: time.NewTicker(interval)}
}

// Wait 实现 Pacer
func (p *TickerPacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}

// Stop 停止底层 ticker
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// Loop 无窗口后端（软件画布、帧缓冲）使用的主循环
//
// ebiten 后端由 app.App 驱动，不使用 Loop。
type Loop struct {
	World    *World
	Source   input.Source
	Input    *systems.InputSystem
	Renderer *systems.RenderSystem
	Plane    render.Plane
	Display  render.Display
	Pacer    Pacer // 为 nil 时不限速

	// OnTick 在每帧渲染之后调用，可为 nil
	OnTick func(w *World)
}

// NewLoop 创建主循环
func NewLoop(world *World, src input.Source, plane render.Plane, display render.Display, pacer Pacer) *Loop {
	return &Loop{
		World:    world,
		Source:   src,
		Input:    systems.NewInputSystem(),
		Renderer: systems.NewRenderSystem(world.Config.Palette()),
		Plane:    plane,
		Display:  display,
		Pacer:    pacer,
	}
}

// Tick 执行一个 tick：取输入 → 应用意图 → 推进 → 渲染 → 提交
//
// 收到退出意图时返回 quit=true，且本 tick 不推进也不渲染。
func (l *Loop) Tick() (quit bool, err error) {
	intents := l.Input.Drain(l.Source)
	if l.World.Step(intents) {
		return true, nil
	}

	if err := l.Renderer.Render(l.World.Frame(), l.Plane, l.Display); err != nil {
		return false, fmt.Errorf("tick %d: %w", l.World.Ticks, err)
	}
	if p, ok := l.Display.(render.Presenter); ok {
		if err := p.Present(); err != nil {
			return false, fmt.Errorf("tick %d: failed to present: %w", l.World.Ticks, err)
		}
	}

	if l.OnTick != nil {
		l.OnTick(l.World)
	}
	return false, nil
}

// Run 运行到退出意图、绘制失败或 ctx 取消
//
// 退出意图与 ctx 取消都视为正常结束，返回 nil。
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("[Loop] started")
	for {
		quit, err := l.Tick()
		if err != nil {
			return err
		}
		if quit {
			log.Printf("[Loop] quit after %d ticks", l.World.Ticks)
			return nil
		}

		if l.Pacer == nil {
			if ctx.Err() != nil {
				return nil
			}
			continue
		}
		if err := l.Pacer.Wait(ctx); err != nil {
			log.Printf("[Loop] stopped: %v", err)
			return nil
		}
	}
}
