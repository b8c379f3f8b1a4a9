package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenPlane 基于 ebiten 离屏图像的星空层
//
// 置位像素为不透明白色，其余像素透明，blit 时通过 ColorScale 着色。
type EbitenPlane struct {
	img *ebiten.Image
}

// NewEbitenPlane 创建 width×height 的离屏星空层
func NewEbitenPlane(width, height int) *EbitenPlane {
	return &EbitenPlane{img: ebiten.NewImage(width, height)}
}

// Image 返回底层图像
func (p *EbitenPlane) Image() *ebiten.Image { return p.img }

// Clear 实现 Plane
func (p *EbitenPlane) Clear() {
	p.img.Clear()
}

// DrawPoint 实现 Plane
func (p *EbitenPlane) DrawPoint(x, y int) {
	vector.DrawFilledRect(p.img, float32(x), float32(y), 1, 1, color.White, false)
}

// DrawLine 实现 Plane
//
// 竖直线（星星拖尾）按像素矩形填充，保证两端点都被覆盖。
func (p *EbitenPlane) DrawLine(x0, y0, x1, y1 int) {
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		vector.DrawFilledRect(p.img, float32(x0), float32(y0), 1, float32(y1-y0+1), color.White, false)
		return
	}
	vector.StrokeLine(p.img, float32(x0)+0.5, float32(y0)+0.5, float32(x1)+0.5, float32(y1)+0.5, 1, color.White, false)
}

// DrawFilledRect 实现 Plane
func (p *EbitenPlane) DrawFilledRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(p.img, float32(x), float32(y), float32(w), float32(h), color.White, false)
}

// DrawFilledDisc 实现 Plane
func (p *EbitenPlane) DrawFilledDisc(x, y, diameter int) {
	if diameter <= 0 {
		return
	}
	r := float32(diameter) / 2
	vector.DrawFilledCircle(p.img, float32(x)+r, float32(y)+r, r, color.White, true)
}

// EbitenSprites 预先上传到 GPU 的精灵图像
type EbitenSprites struct {
	images map[SpriteID]*ebiten.Image
}

// NewEbitenSprites 把所有鱼雷精灵转换为 ebiten 图像
func NewEbitenSprites() *EbitenSprites {
	s := &EbitenSprites{images: make(map[SpriteID]*ebiten.Image, len(torpedoBits))}
	for id := range torpedoBits {
		s.images[id] = ebiten.NewImageFromImage(SpriteMask(id))
	}
	return s
}

// EbitenDisplay 以 ebiten 屏幕图像为可见表面
//
// 屏幕由 ebiten 在每帧 Draw 时提供，因此 Display 只在 Draw 期间有效。
type EbitenDisplay struct {
	screen     *ebiten.Image
	sprites    *EbitenSprites
	background color.Color
}

// NewEbitenDisplay 包装当前帧的屏幕
func NewEbitenDisplay(screen *ebiten.Image, sprites *EbitenSprites, background color.Color) *EbitenDisplay {
	return &EbitenDisplay{screen: screen, sprites: sprites, background: background}
}

// BlitPlane 实现 Display
func (d *EbitenDisplay) BlitPlane(p Plane, tint color.Color) error {
	ep, ok := p.(*EbitenPlane)
	if !ok {
		return fmt.Errorf("%w: %T on ebiten display", ErrIncompatiblePlane, p)
	}

	b := ep.img.Bounds()
	vector.DrawFilledRect(d.screen, 0, 0, float32(b.Dx()), float32(b.Dy()), d.background, false)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(tint)
	d.screen.DrawImage(ep.img, op)
	return nil
}

// DrawSprite 实现 Display
func (d *EbitenDisplay) DrawSprite(id SpriteID, x, y int, tint color.Color) {
	img, ok := d.sprites.images[id]
	if !ok {
		return
	}

	vector.DrawFilledRect(d.screen, float32(x), float32(y), SpriteSize, SpriteSize, d.background, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(tint)
	d.screen.DrawImage(img, op)
}
