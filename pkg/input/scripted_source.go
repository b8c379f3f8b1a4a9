package input

import (
	"fmt"
	"strconv"
	"strings"
)

// ScriptedSource 按 Poll 次数回放预设事件的输入来源
//
// 第 n 次 Poll（从 0 开始）返回 script[n]。用于无界面验证和测试。
type ScriptedSource struct {
	script map[int][]Event
	polls  int
}

// NewScriptedSource 创建脚本输入来源
func NewScriptedSource(script map[int][]Event) *ScriptedSource {
	if script == nil {
		script = make(map[int][]Event)
	}
	return &ScriptedSource{script: script}
}

// Poll 实现 Source
func (s *ScriptedSource) Poll() []Event {
	ev := s.script[s.polls]
	s.polls++
	return ev
}

// Polls 返回已调用 Poll 的次数
func (s *ScriptedSource) Polls() int {
	return s.polls
}

// LastTick 返回脚本中最后一个有事件的 tick，脚本为空时返回 -1
func (s *ScriptedSource) LastTick() int {
	last := -1
	for tick := range s.script {
		if tick > last {
			last = tick
		}
	}
	return last
}

// ParseScript 解析文本脚本
//
// 格式为以空白或逗号分隔的 "tick:action" 条目，action 可为：
//
//	engage        副键按下
//	disengage     副键释放
//	fire@X/Y      主键在 (X, Y) 按下
//	quit          第三键释放
//
// 例如 "0:engage 3:fire@150/280 25:disengage 60:quit"。
func ParseScript(text string) (map[int][]Event, error) {
	script := make(map[int][]Event)
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})

	for _, field := range fields {
		tickStr, action, ok := strings.Cut(field, ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: missing ':'", field)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("script entry %q: invalid tick %q", field, tickStr)
		}

		ev, err := parseAction(action)
		if err != nil {
			return nil, fmt.Errorf("script entry %q: %w", field, err)
		}
		script[tick] = append(script[tick], ev)
	}

	return script, nil
}

func parseAction(action string) (Event, error) {
	switch action {
	case "engage":
		return Event{Kind: EventPress, Button: ButtonSecondary}, nil
	case "disengage":
		return Event{Kind: EventRelease, Button: ButtonSecondary}, nil
	case "quit":
		return Event{Kind: EventRelease, Button: ButtonTertiary}, nil
	}

	coords, ok := strings.CutPrefix(action, "fire@")
	if !ok {
		return Event{}, fmt.Errorf("unknown action %q", action)
	}
	xs, ys, ok := strings.Cut(coords, "/")
	if !ok {
		return Event{}, fmt.Errorf("fire needs X/Y coordinates, got %q", coords)
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Event{}, fmt.Errorf("invalid fire x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Event{}, fmt.Errorf("invalid fire y %q: %w", ys, err)
	}
	return Event{Kind: EventPress, Button: ButtonPrimary, X: x, Y: y}, nil
}
