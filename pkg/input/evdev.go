package input

import "encoding/binary"

// Linux input-event-codes.h
const (
	evKey = 0x01
	evRel = 0x02

	relX = 0x00
	relY = 0x01

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112
)

// rawEvent 解码后的 input_event（不含时间戳）
type rawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// decodeEvents 把读取到的字节解析为 input_event 序列
//
// input_event = timeval + u16 type + u16 code + s32 value，timeval 大小随架构变化。
// 末尾不足一条记录的字节被丢弃。
func decodeEvents(buf []byte, tvSize int) []rawEvent {
	size := tvSize + 8
	out := make([]rawEvent, 0, len(buf)/size)
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		out = append(out, rawEvent{
			Type:  binary.LittleEndian.Uint16(rec[tvSize : tvSize+2]),
			Code:  binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4]),
			Value: int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8])),
		})
	}
	return out
}

// pointerTracker 累加相对位移得到画面内的光标位置
type pointerTracker struct {
	x, y          int
	width, height int
}

func newPointerTracker(width, height int) *pointerTracker {
	return &pointerTracker{x: width / 2, y: height / 2, width: width, height: height}
}

// apply 处理一条原始事件，返回是否产生了按键事件
//
// 自动重复（value == 2）被忽略。
func (p *pointerTracker) apply(ev rawEvent) (Event, bool) {
	switch ev.Type {
	case evRel:
		switch ev.Code {
		case relX:
			p.x = clamp(p.x+int(ev.Value), 0, p.width-1)
		case relY:
			p.y = clamp(p.y+int(ev.Value), 0, p.height-1)
		}
	case evKey:
		var b Button
		switch ev.Code {
		case btnLeft:
			b = ButtonPrimary
		case btnMiddle:
			b = ButtonTertiary
		case btnRight:
			b = ButtonSecondary
		default:
			return Event{}, false
		}
		switch ev.Value {
		case 1:
			return Event{Kind: EventPress, Button: b, X: p.x, Y: p.y}, true
		case 0:
			return Event{Kind: EventRelease, Button: b, X: p.x, Y: p.y}, true
		}
	}
	return Event{}, false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
