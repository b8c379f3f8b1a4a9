//go:build linux

package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// EvdevSource 从 /dev/input/event* 读取鼠标按键的输入来源
//
// 设备以 O_NONBLOCK 打开，Poll 使用零超时的 poll(2)，
// 因此在没有事件时立即返回。光标位置由相对位移累加得到。
type EvdevSource struct {
	fds     []int
	tvSize  int
	buf     []byte
	pointer *pointerTracker
	events  []Event
}

// OpenEvdev 打开匹配 pattern 的所有输入设备
//
// 参数:
//   - pattern: 设备路径通配符（如 "/dev/input/event*"）
//   - width, height: 画面尺寸，用于限制光标范围
//
// 返回:
//   - *EvdevSource: 至少成功打开一个设备时返回
//   - error: 没有可用设备时返回错误
func OpenEvdev(pattern string, width, height int) (*EvdevSource, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid input device pattern %q: %w", pattern, err)
	}

	s := &EvdevSource{
		tvSize:  binary.Size(unix.Timeval{}),
		buf:     make([]byte, 4096),
		pointer: newPointerTracker(width, height),
	}
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			log.Printf("[Evdev] Warning: skip %s: %v", path, err)
			continue
		}
		s.fds = append(s.fds, fd)
		log.Printf("[Evdev] opened %s", path)
	}

	if len(s.fds) == 0 {
		return nil, fmt.Errorf("no readable input devices match %q", pattern)
	}
	return s, nil
}

// Poll 实现 Source
func (s *EvdevSource) Poll() []Event {
	s.events = s.events[:0]

	pollFds := make([]unix.PollFd, len(s.fds))
	for i, fd := range s.fds {
		pollFds[i] = unix.PollFd{Fd: int32(fd), Events: unix.POLLIN}
	}
	n, err := unix.Poll(pollFds, 0)
	if err != nil || n == 0 {
		return s.events
	}

	for _, pfd := range pollFds {
		if pfd.Revents&unix.POLLIN == 0 {
			continue
		}
		read, err := unix.Read(int(pfd.Fd), s.buf)
		if err != nil {
			if !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EINTR) {
				log.Printf("[Evdev] Warning: read fd %d: %v", pfd.Fd, err)
			}
			continue
		}
		for _, raw := range decodeEvents(s.buf[:read], s.tvSize) {
			if ev, ok := s.pointer.apply(raw); ok {
				s.events = append(s.events, ev)
			}
		}
	}

	return s.events
}

// Close 关闭所有设备
func (s *EvdevSource) Close() error {
	var errs []error
	for _, fd := range s.fds {
		if err := unix.Close(fd); err != nil {
			errs = append(errs, err)
		}
	}
	s.fds = nil
	return errors.Join(errs...)
}
