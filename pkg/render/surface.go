// Package render 定义星空引擎使用的绘图表面及其实现
//
// 引擎只依赖 Plane（离屏单色星空层）和 Display（可见表面）两个接口：
//   - ebiten_surface.go：桌面窗口（ebiten）
//   - software.go：纯软件光栅（无界面验证、帧缓冲）
//   - framebuffer.go：Linux 帧缓冲设备
package render

import (
	"errors"
	"image/color"
)

// ErrIncompatiblePlane 星空层与显示表面来自不同的后端
var ErrIncompatiblePlane = errors.New("plane is not compatible with display")

// Plane 离屏单色绘图层
//
// 所有图元以前景色（置位）绘制，Clear 把整层恢复为背景。
// 坐标超出范围的部分被裁剪。
type Plane interface {
	Clear()
	DrawPoint(x, y int)
	// DrawLine 绘制包含两端点的线段
	DrawLine(x0, y0, x1, y1 int)
	// DrawFilledRect 填充 w×h 矩形，w 或 h 不大于 0 时不绘制
	DrawFilledRect(x, y, w, h int)
	// DrawFilledDisc 在以 (x, y) 为左上角、边长 diameter 的方框内填充圆
	DrawFilledDisc(x, y, diameter int)
}

// Display 可见表面
type Display interface {
	// BlitPlane 把星空层整体复制到表面：置位像素使用 tint，其余像素使用背景色
	BlitPlane(p Plane, tint color.Color) error
	// DrawSprite 在 (x, y) 绘制 8×8 精灵：置位像素使用 tint，其余像素使用背景色
	DrawSprite(id SpriteID, x, y int, tint color.Color)
}

// Presenter 需要显式提交画面的表面（如帧缓冲）
type Presenter interface {
	Present() error
}
