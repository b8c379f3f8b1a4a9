package components

// Torpedo 光子鱼雷槽位
//
// Active 显式标记槽位是否被占用，不依赖坐标哨兵值。
type Torpedo struct {
	X, Y   int
	Frame  int // 当前精灵帧（0 或 1），每个活动 tick 翻转一次
	Active bool
}

// TorpedoPool 固定大小的鱼雷槽位池
type TorpedoPool struct {
	Slots []Torpedo
}

// NewTorpedoPool 创建指定容量的鱼雷池
func NewTorpedoPool(size int) *TorpedoPool {
	return &TorpedoPool{Slots: make([]Torpedo, size)}
}

// Fire 在最小下标的空闲槽位发射鱼雷
//
// 池已满时静默忽略并返回 false；y <= 0 的发射点已在画面之外，同样不占用槽位。
func (p *TorpedoPool) Fire(x, y int) bool {
	if y <= 0 {
		return false
	}
	for i := range p.Slots {
		if p.Slots[i].Active {
			continue
		}
		p.Slots[i] = Torpedo{X: x, Y: y, Frame: p.Slots[i].Frame, Active: true}
		return true
	}
	return false
}

// ActiveCount 返回活动鱼雷数量
func (p *TorpedoPool) ActiveCount() int {
	n := 0
	for i := range p.Slots {
		if p.Slots[i].Active {
			n++
		}
	}
	return n
}

// Capacity 返回槽位总数
func (p *TorpedoPool) Capacity() int {
	return len(p.Slots)
}

// TorpedoSprite 鱼雷在当前 tick 的绘制记录
type TorpedoSprite struct {
	X, Y  int
	Frame int
}
