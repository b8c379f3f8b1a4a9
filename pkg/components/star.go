package components

// StarSize 星星尺寸类别
type StarSize int

const (
	// StarSmall 小星：绘制为点或细线
	StarSmall StarSize = iota
	// StarLarge 大星：绘制为 3 像素宽的实心矩形或圆点
	StarLarge
)

// String 返回尺寸名称
func (s StarSize) String() string {
	switch s {
	case StarSmall:
		return "small"
	case StarLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Star 背景星粒子
//
// Velocity、Size、StreakLength 在创建时确定，之后只有 X、Y 会变化。
type Star struct {
	X, Y         int      // 当前位置
	Velocity     int      // 巡航速度（1-5）
	Size         StarSize // 尺寸类别
	StreakLength int      // 完整拖尾长度 = 2 * Velocity * MaxStreak
}

// StarField 固定大小的星星集合
//
// 星星数量在创建时确定，整个生命周期内不增不减；
// 系统按数组下标顺序处理每颗星。
type StarField struct {
	Stars []Star
}

// NewStarField 使用已生成的星星创建星空
func NewStarField(stars []Star) *StarField {
	return &StarField{Stars: stars}
}

// Len 返回星星数量
func (f *StarField) Len() int {
	return len(f.Stars)
}

// StarShape 单颗星本帧的绘制形状
type StarShape int

const (
	// ShapePoint 单像素点（小星巡航）
	ShapePoint StarShape = iota
	// ShapeDisc 直径 3 的实心圆点（大星巡航）
	ShapeDisc
	// ShapeLine 竖直拖尾线（小星曲速）
	ShapeLine
	// ShapeBar 宽 3 的竖直实心矩形（大星曲速）
	ShapeBar
)

// StreakMark 一颗星在当前 tick 的绘制记录
//
// 由曲速系统在推进星星时生成，渲染系统只负责绘制，不再计算运动。
// 线段从 (X, Y0) 到 (X, Y1)，Y1 >= Y0。
type StreakMark struct {
	X      int
	Y0, Y1 int
	Shape  StarShape
}
