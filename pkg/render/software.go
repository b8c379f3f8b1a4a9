package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// BitPlane 基于 image.Alpha 的软件星空层
type BitPlane struct {
	img *image.Alpha
}

// NewBitPlane 创建 width×height 的软件星空层
func NewBitPlane(width, height int) *BitPlane {
	return &BitPlane{img: image.NewAlpha(image.Rect(0, 0, width, height))}
}

// Image 返回底层遮罩
func (p *BitPlane) Image() *image.Alpha { return p.img }

// IsSet 返回 (x, y) 是否置位
func (p *BitPlane) IsSet(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return false
	}
	return p.img.AlphaAt(x, y).A != 0
}

// Count 返回置位像素数量
func (p *BitPlane) Count() int {
	n := 0
	for _, a := range p.img.Pix {
		if a != 0 {
			n++
		}
	}
	return n
}

// Clear 实现 Plane
func (p *BitPlane) Clear() {
	clear(p.img.Pix)
}

// DrawPoint 实现 Plane
func (p *BitPlane) DrawPoint(x, y int) {
	if (image.Point{X: x, Y: y}).In(p.img.Rect) {
		p.img.SetAlpha(x, y, color.Alpha{A: 0xff})
	}
}

// DrawLine 实现 Plane（Bresenham）
func (p *BitPlane) DrawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		p.DrawPoint(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawFilledRect 实现 Plane
func (p *BitPlane) DrawFilledRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(p.img.Rect)
	draw.Draw(p.img, r, image.Opaque, image.Point{}, draw.Src)
}

// DrawFilledDisc 实现 Plane
//
// 像素中心落在圆内即置位。
func (p *BitPlane) DrawFilledDisc(x, y, diameter int) {
	if diameter <= 0 {
		return
	}
	r := float64(diameter) / 2
	for py := 0; py < diameter; py++ {
		for px := 0; px < diameter; px++ {
			dx := float64(px) + 0.5 - r
			dy := float64(py) + 0.5 - r
			if dx*dx+dy*dy < r*r {
				p.DrawPoint(x+px, y+py)
			}
		}
	}
}

// ImageDisplay 基于 image.RGBA 的软件显示表面
type ImageDisplay struct {
	canvas     *image.RGBA
	background color.Color
}

// NewImageDisplay 创建软件显示表面
func NewImageDisplay(width, height int, background color.Color) *ImageDisplay {
	d := &ImageDisplay{
		canvas:     image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
	}
	draw.Draw(d.canvas, d.canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return d
}

// Canvas 返回底层画布
func (d *ImageDisplay) Canvas() *image.RGBA { return d.canvas }

// BlitPlane 实现 Display
func (d *ImageDisplay) BlitPlane(p Plane, tint color.Color) error {
	bp, ok := p.(*BitPlane)
	if !ok {
		return fmt.Errorf("%w: %T on software display", ErrIncompatiblePlane, p)
	}

	r := bp.img.Rect.Intersect(d.canvas.Rect)
	draw.Draw(d.canvas, r, image.NewUniform(d.background), image.Point{}, draw.Src)
	draw.DrawMask(d.canvas, r, image.NewUniform(tint), image.Point{}, bp.img, r.Min, draw.Over)
	return nil
}

// DrawSprite 实现 Display
func (d *ImageDisplay) DrawSprite(id SpriteID, x, y int, tint color.Color) {
	cell := image.Rect(x, y, x+SpriteSize, y+SpriteSize)
	r := cell.Intersect(d.canvas.Rect)
	if r.Empty() {
		return
	}
	draw.Draw(d.canvas, r, image.NewUniform(d.background), image.Point{}, draw.Src)
	draw.DrawMask(d.canvas, r, image.NewUniform(tint), image.Point{}, SpriteMask(id), r.Min.Sub(cell.Min), draw.Over)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
