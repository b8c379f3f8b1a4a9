package systems

import (
	"log"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/utils"
)

// WarpMode 曲速状态
type WarpMode int

const (
	// WarpModeCruise 常规巡航：星星按自身速度下落，绘制为点
	WarpModeCruise WarpMode = iota
	// WarpModeEntering 进入曲速：拖尾逐 tick 拉长
	WarpModeEntering
	// WarpModeWarpCruise 曲速巡航：拖尾已满，星星以 3 倍速度下落
	WarpModeWarpCruise
	// WarpModeExiting 退出曲速：拖尾逐 tick 缩短，星星停止移动
	WarpModeExiting
)

// String 返回状态名称
func (m WarpMode) String() string {
	switch m {
	case WarpModeCruise:
		return "cruise"
	case WarpModeEntering:
		return "entering"
	case WarpModeWarpCruise:
		return "warp-cruise"
	case WarpModeExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// WarpSystem 曲速状态机
//
// 状态由外部输入的 engaged 标志和内部的 streakCount（0..maxStreak）共同决定。
// 每次 Update 选择一个分支，对所有星星按下标顺序应用同一运动规则，
// 并为每颗星记录一条 StreakMark 供渲染系统绘制。
type WarpSystem struct {
	rng           utils.RandomSource
	width, height int
	maxStreak     int

	engaged     bool
	streakCount int
	mode        WarpMode

	marks []components.StreakMark
}

// NewWarpSystem 创建曲速状态机
//
// 参数:
//   - rng: 星星回绕时重新抽取 x 坐标所用的随机源
//   - width, height: 画面尺寸
//   - maxStreak: 拖尾最大步数
func NewWarpSystem(rng utils.RandomSource, width, height, maxStreak int) *WarpSystem {
	return &WarpSystem{
		rng:       rng,
		width:     width,
		height:    height,
		maxStreak: maxStreak,
		mode:      WarpModeCruise,
	}
}

// SetEngaged 设置曲速意图
//
// 不会重置 streakCount：退出过程中重新接合会从当前进度继续拉长拖尾。
func (s *WarpSystem) SetEngaged(engaged bool) {
	s.engaged = engaged
}

// Engaged 返回曲速意图
func (s *WarpSystem) Engaged() bool { return s.engaged }

// StreakCount 返回拖尾进度
func (s *WarpSystem) StreakCount() int { return s.streakCount }

// Mode 返回最近一次 Update 所处的状态
func (s *WarpSystem) Mode() WarpMode { return s.mode }

// Alert 是否处于曲速相关状态（渲染使用警告色）
func (s *WarpSystem) Alert() bool {
	return s.engaged || s.streakCount > 0
}

// Marks 返回最近一次 Update 生成的绘制记录，与星星下标一一对应
func (s *WarpSystem) Marks() []components.StreakMark {
	return s.marks
}

// nextMode 根据当前输入与进度决定本 tick 的状态
func (s *WarpSystem) nextMode() WarpMode {
	switch {
	case s.engaged && s.streakCount < s.maxStreak:
		return WarpModeEntering
	case s.engaged:
		return WarpModeWarpCruise
	case s.streakCount > 0:
		return WarpModeExiting
	default:
		return WarpModeCruise
	}
}

// Update 推进一个 tick
func (s *WarpSystem) Update(field *components.StarField) {
	stars := field.Stars
	next := s.nextMode()
	if next != s.mode {
		s.transition(s.mode, next, stars)
	}
	s.mode = next

	if cap(s.marks) < len(stars) {
		s.marks = make([]components.StreakMark, len(stars))
	}
	s.marks = s.marks[:len(stars)]

	switch next {
	case WarpModeEntering:
		s.updateEntering(stars)
	case WarpModeWarpCruise:
		s.updateWarpCruise(stars)
	case WarpModeExiting:
		s.updateExiting(stars)
	default:
		s.updateCruise(stars)
	}
}

// transition 状态切换时的一次性动作
func (s *WarpSystem) transition(from, to WarpMode, stars []components.Star) {
	log.Printf("[WarpSystem] %s -> %s (streak %d)", from, to, s.streakCount)

	// 拖尾拉满后退出：一次性前移 2*v*maxStreak，缩短阶段以拖尾末端为锚点
	if to == WarpModeExiting && s.streakCount == s.maxStreak {
		for i := range stars {
			stars[i].Y += 2 * stars[i].Velocity * s.maxStreak
		}
	}
}

func (s *WarpSystem) updateEntering(stars []components.Star) {
	s.streakCount++
	for i := range stars {
		st := &stars[i]
		st.Y += s.streakCount
		s.marks[i] = streakMark(st, st.Y, st.Y+s.streakCount*2*st.Velocity)
		if st.Y > s.height {
			st.Y -= s.height + st.StreakLength
		}
	}
}

func (s *WarpSystem) updateWarpCruise(stars []components.Star) {
	for i := range stars {
		st := &stars[i]
		st.Y += 3 * st.Velocity
		s.marks[i] = streakMark(st, st.Y, st.Y+st.StreakLength)
		if st.Y > s.height {
			st.Y = -st.StreakLength
			st.X = s.randomX()
		}
	}
}

func (s *WarpSystem) updateExiting(stars []components.Star) {
	s.streakCount--
	for i := range stars {
		st := &stars[i]
		s.marks[i] = streakMark(st, st.Y-2*st.Velocity*s.streakCount, st.Y)
	}
}

func (s *WarpSystem) updateCruise(stars []components.Star) {
	for i := range stars {
		st := &stars[i]
		st.Y += st.Velocity
		if st.Y > s.height {
			st.X = s.randomX()
			st.Y -= s.height
		}

		shape := components.ShapePoint
		if st.Size == components.StarLarge {
			shape = components.ShapeDisc
		}
		s.marks[i] = components.StreakMark{X: st.X, Y0: st.Y, Y1: st.Y, Shape: shape}
	}
}

func (s *WarpSystem) randomX() int {
	return int(s.rng.Float64() * float64(s.width))
}

// streakMark 构造拖尾绘制记录（小星为线，大星为 3 像素宽的矩形）
func streakMark(st *components.Star, y0, y1 int) components.StreakMark {
	shape := components.ShapeLine
	if st.Size == components.StarLarge {
		shape = components.ShapeBar
	}
	return components.StreakMark{X: st.X, Y0: y0, Y1: y1, Shape: shape}
}
