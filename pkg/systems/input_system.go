package systems

import "github.com/decker502/warpfield/pkg/input"

// IntentKind 输入意图类型
type IntentKind int

const (
	// IntentEngage 接合曲速
	IntentEngage IntentKind = iota
	// IntentDisengage 脱离曲速
	IntentDisengage
	// IntentFire 发射鱼雷，X/Y 为按下位置
	IntentFire
	// IntentQuit 退出
	IntentQuit
)

// String 返回意图名称
func (k IntentKind) String() string {
	switch k {
	case IntentEngage:
		return "engage"
	case IntentDisengage:
		return "disengage"
	case IntentFire:
		return "fire"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent 由输入事件映射出的意图
type Intent struct {
	Kind IntentKind
	X, Y int
}

// InputSystem 输入分发器
//
// 每个 tick 调用一次 Drain，把来源中积累的事件映射为意图；
// 不产生意图的事件（如主键释放）被丢弃。
type InputSystem struct {
	intents []Intent
}

// NewInputSystem 创建输入分发器
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Drain 非阻塞地取出所有待处理事件并映射为意图
//
// 返回的切片在下一次 Drain 前有效。
func (s *InputSystem) Drain(src input.Source) []Intent {
	s.intents = s.intents[:0]
	if src == nil {
		return s.intents
	}
	for _, ev := range src.Poll() {
		if intent, ok := MapEvent(ev); ok {
			s.intents = append(s.intents, intent)
		}
	}
	return s.intents
}

// MapEvent 把单个输入事件映射为意图
//
//   - 副键按下 → 接合曲速；副键释放 → 脱离曲速
//   - 主键按下 → 在按下位置发射鱼雷
//   - 第三键释放 → 退出
func MapEvent(ev input.Event) (Intent, bool) {
	switch {
	case ev.Button == input.ButtonSecondary && ev.Kind == input.EventPress:
		return Intent{Kind: IntentEngage}, true
	case ev.Button == input.ButtonSecondary && ev.Kind == input.EventRelease:
		return Intent{Kind: IntentDisengage}, true
	case ev.Button == input.ButtonPrimary && ev.Kind == input.EventPress:
		return Intent{Kind: IntentFire, X: ev.X, Y: ev.Y}, true
	case ev.Button == input.ButtonTertiary && ev.Kind == input.EventRelease:
		return Intent{Kind: IntentQuit}, true
	}
	return Intent{}, false
}
