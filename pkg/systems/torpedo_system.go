package systems

import "github.com/decker502/warpfield/pkg/components"

// TorpedoSystem 推进光子鱼雷
type TorpedoSystem struct {
	step    int
	sprites []components.TorpedoSprite
}

// NewTorpedoSystem 创建鱼雷系统
//
// 参数:
//   - step: 每 tick 上移的像素数
func NewTorpedoSystem(step int) *TorpedoSystem {
	return &TorpedoSystem{step: step}
}

// Update 推进一个 tick
//
// 每个活动鱼雷上移 step 像素并翻转精灵帧；y <= 0 时槽位释放，
// 但这一 tick 仍会绘制（与飞出顶边前的最后一帧一致）。
func (s *TorpedoSystem) Update(pool *components.TorpedoPool) {
	s.sprites = s.sprites[:0]
	for i := range pool.Slots {
		t := &pool.Slots[i]
		if !t.Active {
			continue
		}
		t.Y -= s.step
		t.Frame = 1 - t.Frame
		s.sprites = append(s.sprites, components.TorpedoSprite{X: t.X, Y: t.Y, Frame: t.Frame})
		if t.Y <= 0 {
			t.Active = false
		}
	}
}

// Sprites 返回最近一次 Update 需要绘制的鱼雷精灵
func (s *TorpedoSystem) Sprites() []components.TorpedoSprite {
	return s.sprites
}
