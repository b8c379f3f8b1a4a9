// Package input 提供非阻塞的指针输入来源
//
// 所有来源都实现 Source：每个 tick 调用一次 Poll，立即返回本 tick 之前
// 积累的事件（可能为空），从不等待新事件。
package input

// Button 逻辑按键编号，沿用 X11 的 1/2/3 编号
type Button int

const (
	// ButtonPrimary 主键（鼠标左键，X11 Button1）
	ButtonPrimary Button = 1
	// ButtonTertiary 第三键（鼠标中键，X11 Button2）
	ButtonTertiary Button = 2
	// ButtonSecondary 副键（鼠标右键，X11 Button3）
	ButtonSecondary Button = 3
)

// String 返回按键名称
func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonTertiary:
		return "tertiary"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// EventKind 事件类型
type EventKind int

const (
	// EventPress 按下
	EventPress EventKind = iota
	// EventRelease 释放
	EventRelease
)

// Event 指针按键事件，X/Y 为事件发生时的画面坐标
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   int
}

// Source 非阻塞输入来源
type Source interface {
	// Poll 返回自上次调用以来的事件，没有事件时立即返回空切片
	Poll() []Event
}
