package entities

import (
	"fmt"
	"log"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/utils"
)

// StarParams 生成星星所需的参数
type StarParams struct {
	Width, Height int
	MaxStreak     int
	MaxVelocity   int
	LargeRatio    float64
}

// StarParamsFromConfig 从配置构造星星参数
func StarParamsFromConfig(cfg *config.StarfieldConfig) StarParams {
	return StarParams{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		MaxStreak:   cfg.Starfield.MaxStreak,
		MaxVelocity: cfg.Starfield.MaxVelocity,
		LargeRatio:  cfg.Starfield.LargeRatio,
	}
}

// NewStar 生成一颗随机星
//
// 随机数按 x、y、速度、尺寸的固定顺序抽取，固定种子下结果可完全复现。
//
// 参数:
//   - rng: [0,1) 均匀随机源
//   - p: 画面尺寸与拖尾参数
//
// 返回:
//   - components.Star: 新星
func NewStar(rng utils.RandomSource, p StarParams) components.Star {
	x := int(rng.Float64() * float64(p.Width))
	y := int(rng.Float64() * float64(p.Height))
	vel := 1 + int(float64(p.MaxVelocity)*rng.Float64())

	size := components.StarSmall
	if rng.Float64() < p.LargeRatio {
		size = components.StarLarge
	}

	return components.Star{
		X:            x,
		Y:            y,
		Velocity:     vel,
		Size:         size,
		StreakLength: 2 * vel * p.MaxStreak,
	}
}

// NewStarField 生成完整星空
//
// 恰好调用 count 次 NewStar，星星按生成顺序存放。
func NewStarField(rng utils.RandomSource, p StarParams, count int) (*components.StarField, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if count <= 0 {
		return nil, fmt.Errorf("star count must be positive, got %d", count)
	}

	stars := make([]components.Star, count)
	large := 0
	for i := range stars {
		stars[i] = NewStar(rng, p)
		if stars[i].Size == components.StarLarge {
			large++
		}
	}

	log.Printf("[StarFactory] 生成 %d 颗星（大星 %d 颗），画面 %dx%d", count, large, p.Width, p.Height)
	return components.NewStarField(stars), nil
}
