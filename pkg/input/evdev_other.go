//go:build !linux

package input

import "errors"

// EvdevSource 仅在 Linux 上可用
type EvdevSource struct{}

// OpenEvdev 在非 Linux 平台上总是返回错误
func OpenEvdev(pattern string, width, height int) (*EvdevSource, error) {
	return nil, errors.New("evdev input is only supported on linux")
}

// Poll 实现 Source
func (s *EvdevSource) Poll() []Event { return nil }

// Close 无操作
func (s *EvdevSource) Close() error { return nil }
