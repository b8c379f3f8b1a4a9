package render

import (
	"image"
	"image/color"
)

// SpriteID 精灵编号
type SpriteID int

const (
	// SpriteTorpedoPinwheel 鱼雷第 0 帧（四向风车）
	SpriteTorpedoPinwheel SpriteID = iota
	// SpriteTorpedoCross 鱼雷第 1 帧（交叉）
	SpriteTorpedoCross
)

// SpriteSize 鱼雷精灵边长
const SpriteSize = 8

// torpedoBits XBM 格式位图数据：每行一个字节，低位在左
var torpedoBits = map[SpriteID][SpriteSize]byte{
	SpriteTorpedoPinwheel: {0x10, 0x10, 0x10, 0x1f, 0xf8, 0x08, 0x08, 0x08},
	SpriteTorpedoCross:    {0x81, 0x42, 0x24, 0x18, 0x18, 0x24, 0x42, 0x81},
}

// TorpedoSprite 根据帧号选择鱼雷精灵
func TorpedoSprite(frame int) SpriteID {
	if frame%2 == 0 {
		return SpriteTorpedoPinwheel
	}
	return SpriteTorpedoCross
}

// SpriteBit 返回精灵 (x, y) 处是否置位
func SpriteBit(id SpriteID, x, y int) bool {
	rows, ok := torpedoBits[id]
	if !ok || x < 0 || y < 0 || x >= SpriteSize || y >= SpriteSize {
		return false
	}
	return rows[y]&(1<<uint(x)) != 0
}

// SpriteMask 把精灵转换为 8×8 的 Alpha 遮罩（置位像素不透明）
func SpriteMask(id SpriteID) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, SpriteSize, SpriteSize))
	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			if SpriteBit(id, x, y) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
