//go:build linux && cgo

package render

import (
	"fmt"
	"image"
	"image/color"
	"log"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
)

// FramebufferDisplay 在软件画布上合成，再整体缩放到 Linux 帧缓冲设备
//
// 画布保持逻辑尺寸；Present 按最近邻等比缩放并居中，四周填充背景色。
type FramebufferDisplay struct {
	*ImageDisplay
	dev  *fb.Device
	dest image.Rectangle
}

// OpenFramebuffer 打开帧缓冲设备
//
// 参数:
//   - path: 设备路径（如 "/dev/fb0"）
//   - width, height: 逻辑画布尺寸
//   - background: 背景色
func OpenFramebuffer(path string, width, height int, background color.Color) (*FramebufferDisplay, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open framebuffer %s: %w", path, err)
	}

	d := &FramebufferDisplay{
		ImageDisplay: NewImageDisplay(width, height, background),
		dev:          dev,
	}
	d.dest = fitRect(dev.Bounds(), width, height)

	xdraw.Draw(dev, dev.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)
	log.Printf("[Framebuffer] opened %s, bounds=%v, viewport=%v", path, dev.Bounds(), d.dest)
	return d, nil
}

// Present 实现 Presenter
func (d *FramebufferDisplay) Present() error {
	if d.dev == nil {
		return fmt.Errorf("framebuffer is closed")
	}
	xdraw.NearestNeighbor.Scale(d.dev, d.dest, d.canvas, d.canvas.Bounds(), xdraw.Src, nil)
	return nil
}

// Close 释放设备
func (d *FramebufferDisplay) Close() error {
	if d.dev == nil {
		return nil
	}
	d.dev.Close()
	d.dev = nil
	return nil
}

// fitRect 计算在 bounds 内等比放大 width×height 后居中的目标区域
func fitRect(bounds image.Rectangle, width, height int) image.Rectangle {
	bw, bh := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 || bw <= 0 || bh <= 0 {
		return bounds
	}

	// 取两个方向上较小的缩放比例
	w, h := bw, bw*height/width
	if h > bh {
		w, h = bh*width/height, bh
	}

	x := bounds.Min.X + (bw-w)/2
	y := bounds.Min.Y + (bh-h)/2
	return image.Rect(x, y, x+w, y+h)
}
