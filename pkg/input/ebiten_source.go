package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ebitenButtons 逻辑按键与 ebiten 鼠标按键的映射
var ebitenButtons = []struct {
	button Button
	mouse  ebiten.MouseButton
}{
	{ButtonPrimary, ebiten.MouseButtonLeft},
	{ButtonTertiary, ebiten.MouseButtonMiddle},
	{ButtonSecondary, ebiten.MouseButtonRight},
}

// EbitenSource 基于 ebiten 输入状态的事件来源
//
// ebiten 在每个 Update 之前刷新输入状态，inpututil 的 Just* 查询
// 只读取这一快照，不会阻塞。触摸视为主键。
type EbitenSource struct {
	events []Event
}

// NewEbitenSource 创建 ebiten 输入来源
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll 实现 Source
func (s *EbitenSource) Poll() []Event {
	s.events = s.events[:0]

	x, y := ebiten.CursorPosition()
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			s.events = append(s.events, Event{Kind: EventPress, Button: b.button, X: x, Y: y})
		}
	}
	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			s.events = append(s.events, Event{Kind: EventRelease, Button: b.button, X: x, Y: y})
		}
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		s.events = append(s.events, Event{Kind: EventPress, Button: ButtonPrimary, X: tx, Y: ty})
	}

	return s.events
}
