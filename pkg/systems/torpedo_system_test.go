package systems

import (
	"testing"

	"github.com/decker502/warpfield/pkg/components"
)

// TestTorpedoSystem_FreesAfterCeilTicks 从 py 发射的鱼雷在 ceil(py/5) 个 tick 后释放槽位
func TestTorpedoSystem_FreesAfterCeilTicks(t *testing.T) {
	tests := []struct {
		name      string
		py        int
		wantTicks int
	}{
		{"整除", 25, 5},
		{"非整除", 23, 5},
		{"一步即出", 5, 1},
		{"底部发射", 300, 60},
		{"最小高度", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := components.NewTorpedoPool(5)
			sys := NewTorpedoSystem(5)
			if !pool.Fire(100, tt.py) {
				t.Fatal("fire should succeed")
			}

			ticks := 0
			for pool.Slots[0].Active {
				sys.Update(pool)
				ticks++
				if ticks > 1000 {
					t.Fatal("torpedo never left the surface")
				}
			}

			if ticks != tt.wantTicks {
				t.Errorf("freed after %d ticks, want %d", ticks, tt.wantTicks)
			}
			if pool.Slots[0].Y > 0 {
				t.Errorf("freed torpedo should be at y <= 0, got %d", pool.Slots[0].Y)
			}
			if !pool.Fire(10, 150) || pool.Slots[0].X != 10 {
				t.Error("freed slot 0 should be reused by the next fire")
			}
		})
	}
}

func TestTorpedoSystem_FrameAlternates(t *testing.T) {
	pool := components.NewTorpedoPool(1)
	sys := NewTorpedoSystem(5)
	pool.Fire(40, 200)

	want := []int{1, 0, 1, 0}
	for i, frame := range want {
		sys.Update(pool)
		sprites := sys.Sprites()
		if len(sprites) != 1 {
			t.Fatalf("tick %d: expected 1 sprite, got %d", i, len(sprites))
		}
		if sprites[0].Frame != frame {
			t.Errorf("tick %d: frame = %d, want %d", i, sprites[0].Frame, frame)
		}
		if sprites[0].Y != 200-5*(i+1) {
			t.Errorf("tick %d: y = %d, want %d", i, sprites[0].Y, 200-5*(i+1))
		}
	}
}

func TestTorpedoSystem_LastFrameStillDrawn(t *testing.T) {
	pool := components.NewTorpedoPool(2)
	sys := NewTorpedoSystem(5)
	pool.Fire(10, 3)
	pool.Fire(20, 100)

	sys.Update(pool)

	sprites := sys.Sprites()
	if len(sprites) != 2 {
		t.Fatalf("expected both torpedoes drawn this tick, got %d", len(sprites))
	}
	if sprites[0].Y != -2 {
		t.Errorf("exiting torpedo should be drawn at y = -2, got %d", sprites[0].Y)
	}
	if pool.Slots[0].Active {
		t.Error("slot 0 should be free after leaving the top")
	}
	if pool.ActiveCount() != 1 {
		t.Errorf("expected 1 active torpedo, got %d", pool.ActiveCount())
	}

	sys.Update(pool)
	if len(sys.Sprites()) != 1 {
		t.Errorf("freed torpedo should not be drawn again, got %d sprites", len(sys.Sprites()))
	}
}
