package systems

import (
	"fmt"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/render"
)

// discDiameter 巡航状态下大星的圆点直径，也是曲速时大星矩形的宽度
const discDiameter = 3

// FrameState 渲染一帧所需的只读数据
//
// 星星的运动已经由 WarpSystem 和 TorpedoSystem 在本 tick 内完成，
// 渲染系统只消费它们产出的绘制记录。
type FrameState struct {
	Marks   []components.StreakMark
	Alert   bool // 曲速接合中或拖尾尚未收起
	Sprites []components.TorpedoSprite
}

// RenderSystem 帧渲染器
//
// 每帧依次：清空星空层 → 绘制星星 → 整层着色 blit 到显示表面 → 在其上绘制鱼雷。
type RenderSystem struct {
	palette config.Palette
}

// NewRenderSystem 创建帧渲染器
func NewRenderSystem(palette config.Palette) *RenderSystem {
	return &RenderSystem{palette: palette}
}

// Render 绘制一帧
//
// 绘制失败（如星空层与显示表面不匹配）会原样返回，由主循环终止程序。
func (s *RenderSystem) Render(frame FrameState, plane render.Plane, display render.Display) error {
	plane.Clear()
	for _, m := range frame.Marks {
		drawMark(plane, m)
	}

	tint := s.palette.Cruise
	if frame.Alert {
		tint = s.palette.Warp
	}
	if err := display.BlitPlane(plane, tint); err != nil {
		return fmt.Errorf("failed to blit starfield: %w", err)
	}

	for _, sp := range frame.Sprites {
		display.DrawSprite(render.TorpedoSprite(sp.Frame), sp.X, sp.Y, s.palette.Torpedo)
	}
	return nil
}

// drawMark 把单颗星的绘制记录画到星空层
func drawMark(plane render.Plane, m components.StreakMark) {
	switch m.Shape {
	case components.ShapePoint:
		plane.DrawPoint(m.X, m.Y0)
	case components.ShapeDisc:
		plane.DrawFilledDisc(m.X, m.Y0, discDiameter)
	case components.ShapeLine:
		plane.DrawLine(m.X, m.Y0, m.X, m.Y1)
	case components.ShapeBar:
		plane.DrawFilledRect(m.X, m.Y0, discDiameter, m.Y1-m.Y0)
	}
}
