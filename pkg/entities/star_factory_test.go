package entities

import (
	"testing"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/utils"
)

// sequenceSource 按顺序返回预设值的随机源
type sequenceSource struct {
	values []float64
	next   int
}

func (s *sequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

func defaultParams() StarParams {
	return StarParamsFromConfig(config.DefaultStarfieldConfig())
}

// TestNewStar_SeededReference 固定种子下第一颗星必须与记录值一致
func TestNewStar_SeededReference(t *testing.T) {
	rng := utils.NewDrand48(1996)
	p := defaultParams()

	want := []components.Star{
		{X: 87, Y: 33, Velocity: 1, Size: components.StarLarge, StreakLength: 20},
		{X: 298, Y: 257, Velocity: 3, Size: components.StarSmall, StreakLength: 60},
		{X: 166, Y: 185, Velocity: 1, Size: components.StarSmall, StreakLength: 20},
	}

	for i, w := range want {
		got := NewStar(rng, p)
		if got != w {
			t.Errorf("star %d: got %+v, want %+v", i, got, w)
		}
	}
}

func TestNewStar_DrawOrder(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   components.Star
	}{
		{
			name:   "最小值",
			values: []float64{0, 0, 0, 0.5},
			want:   components.Star{X: 0, Y: 0, Velocity: 1, Size: components.StarSmall, StreakLength: 20},
		},
		{
			name:   "接近上界",
			values: []float64{0.999, 0.999, 0.999, 0.999},
			want:   components.Star{X: 299, Y: 299, Velocity: 5, Size: components.StarSmall, StreakLength: 100},
		},
		{
			name:   "大星",
			values: []float64{0.5, 0.25, 0.5, 0.05},
			want:   components.Star{X: 150, Y: 75, Velocity: 3, Size: components.StarLarge, StreakLength: 60},
		},
		{
			name:   "大星阈值边界",
			values: []float64{0.1, 0.2, 0.2, 0.1},
			want:   components.Star{X: 30, Y: 60, Velocity: 2, Size: components.StarSmall, StreakLength: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewStar(&sequenceSource{values: tt.values}, defaultParams())
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestNewStar_SizeDistribution 大量生成时大星比例应接近 10%
func TestNewStar_SizeDistribution(t *testing.T) {
	const n = 10000
	rng := utils.NewDrand48(7)
	p := defaultParams()

	large := 0
	for i := 0; i < n; i++ {
		s := NewStar(rng, p)
		if s.Size == components.StarLarge {
			large++
		}
		if s.Velocity < 1 || s.Velocity > 5 {
			t.Fatalf("star %d velocity out of range: %d", i, s.Velocity)
		}
		if s.X < 0 || s.X >= p.Width || s.Y < 0 || s.Y >= p.Height {
			t.Fatalf("star %d out of bounds: (%d, %d)", i, s.X, s.Y)
		}
		if s.StreakLength != 2*s.Velocity*p.MaxStreak {
			t.Fatalf("star %d streak length %d, want %d", i, s.StreakLength, 2*s.Velocity*p.MaxStreak)
		}
	}

	ratio := float64(large) / n
	if ratio < 0.085 || ratio > 0.115 {
		t.Errorf("large star ratio %.4f outside tolerance around 0.10", ratio)
	}
}

func TestNewStarField(t *testing.T) {
	cfg := config.DefaultStarfieldConfig()
	field, err := NewStarField(utils.NewDrand48(1996), StarParamsFromConfig(cfg), cfg.Starfield.NumStars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if field.Len() != 100 {
		t.Errorf("expected 100 stars, got %d", field.Len())
	}
	if field.Stars[0].X != 87 || field.Stars[0].Y != 33 {
		t.Errorf("first star should match seeded reference, got %+v", field.Stars[0])
	}

	if _, err := NewStarField(nil, StarParamsFromConfig(cfg), 10); err == nil {
		t.Error("expected error for nil random source")
	}
	if _, err := NewStarField(utils.NewDrand48(1), StarParamsFromConfig(cfg), 0); err == nil {
		t.Error("expected error for zero star count")
	}
}
