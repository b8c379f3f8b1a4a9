//go:build !linux || !cgo

package render

import (
	"errors"
	"image/color"
)

// FramebufferDisplay 仅在 Linux 上可用
type FramebufferDisplay struct {
	*ImageDisplay
}

// OpenFramebuffer 在非 Linux 平台上总是返回错误
func OpenFramebuffer(path string, width, height int, background color.Color) (*FramebufferDisplay, error) {
	return nil, errors.New("framebuffer display is only supported on linux")
}

// Present 无操作
func (d *FramebufferDisplay) Present() error { return nil }

// Close 无操作
func (d *FramebufferDisplay) Close() error { return nil }
