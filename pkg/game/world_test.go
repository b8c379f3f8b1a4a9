package game

import (
	"os"
	"reflect"
	"testing"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/systems"
)

// recordingCues 记录播放过的提示音
type recordingCues struct {
	cues []SoundCue
}

func (r *recordingCues) PlayCue(cue SoundCue) { r.cues = append(r.cues, cue) }

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(config.DefaultStarfieldConfig(), 1996)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return w
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t)

	if w.Stars.Len() != 100 {
		t.Errorf("stars = %d, want 100", w.Stars.Len())
	}
	if w.Torpedoes.Capacity() != 5 {
		t.Errorf("torpedo slots = %d, want 5", w.Torpedoes.Capacity())
	}

	first := w.Stars.Stars[0]
	want := components.Star{X: 87, Y: 33, Velocity: 1, Size: components.StarLarge, StreakLength: 20}
	if first != want {
		t.Errorf("first star = %+v, want %+v", first, want)
	}
}

func TestNewWorld_NilConfig(t *testing.T) {
	if _, err := NewWorld(nil, 1); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(42); got != 42 {
		t.Errorf("ResolveSeed(42) = %d", got)
	}
	if got := ResolveSeed(0); got != int64(os.Getpid()) {
		t.Errorf("ResolveSeed(0) = %d, want pid %d", got, os.Getpid())
	}
}

func TestWorld_Apply(t *testing.T) {
	tests := []struct {
		name       string
		intents    []systems.Intent
		wantQuit   bool
		wantEngage bool
		wantActive int
		wantCues   []SoundCue
	}{
		{
			name:       "接合并发射",
			intents:    []systems.Intent{{Kind: systems.IntentEngage}, {Kind: systems.IntentFire, X: 100, Y: 100}},
			wantEngage: true,
			wantActive: 1,
			wantCues:   []SoundCue{CueWarpEngage, CueTorpedo},
		},
		{
			name:       "同一 tick 内接合后脱离",
			intents:    []systems.Intent{{Kind: systems.IntentEngage}, {Kind: systems.IntentDisengage}},
			wantEngage: false,
			wantCues:   []SoundCue{CueWarpEngage},
		},
		{
			name:     "退出后的意图被忽略",
			intents:  []systems.Intent{{Kind: systems.IntentQuit}, {Kind: systems.IntentFire, X: 5, Y: 5}},
			wantQuit: true,
		},
		{
			name:    "顶边之外发射不占槽位",
			intents: []systems.Intent{{Kind: systems.IntentFire, X: 50, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			cues := &recordingCues{}
			w.Sounds = cues

			if got := w.Apply(tt.intents); got != tt.wantQuit {
				t.Errorf("quit = %v, want %v", got, tt.wantQuit)
			}
			if got := w.WarpSys.Engaged(); got != tt.wantEngage {
				t.Errorf("engaged = %v, want %v", got, tt.wantEngage)
			}
			if got := w.Torpedoes.ActiveCount(); got != tt.wantActive {
				t.Errorf("active torpedoes = %d, want %d", got, tt.wantActive)
			}
			if !reflect.DeepEqual(cues.cues, tt.wantCues) {
				t.Errorf("cues = %v, want %v", cues.cues, tt.wantCues)
			}
		})
	}
}

func TestWorld_FireCentresSprite(t *testing.T) {
	w := newTestWorld(t)
	w.Apply([]systems.Intent{{Kind: systems.IntentFire, X: 150, Y: 280}})

	if got := w.Torpedoes.Slots[0]; got.X != 146 || got.Y != 280 {
		t.Errorf("torpedo spawned at (%d, %d), want (146, 280)", got.X, got.Y)
	}
}

func TestWorld_StepQuitDoesNotAdvance(t *testing.T) {
	w := newTestWorld(t)
	before := append([]components.Star(nil), w.Stars.Stars...)

	if !w.Step([]systems.Intent{{Kind: systems.IntentQuit}}) {
		t.Fatal("Step should report quit")
	}
	if w.Ticks != 0 {
		t.Errorf("ticks = %d, want 0", w.Ticks)
	}
	if !reflect.DeepEqual(before, w.Stars.Stars) {
		t.Error("stars moved on the quit tick")
	}
}

func TestWorld_ExitAfterFullRamp(t *testing.T) {
	w := newTestWorld(t)

	w.Step([]systems.Intent{{Kind: systems.IntentEngage}})
	for i := 1; i < 10; i++ {
		w.Step(nil)
	}
	if w.WarpSys.StreakCount() != 10 {
		t.Fatalf("streakCount = %d after ramp, want 10", w.WarpSys.StreakCount())
	}

	w.Step([]systems.Intent{{Kind: systems.IntentDisengage}})
	for want := 9; want > 0; want-- {
		if got := w.WarpSys.StreakCount(); got != want {
			t.Fatalf("streakCount = %d, want %d", got, want)
		}
		if !w.Frame().Alert {
			t.Fatal("frame should stay in alert while the streak collapses")
		}
		w.Step(nil)
	}

	if w.WarpSys.StreakCount() != 0 || w.Frame().Alert {
		t.Errorf("expected cruise after exit, count=%d alert=%v", w.WarpSys.StreakCount(), w.Frame().Alert)
	}
	if w.WarpSys.Mode() != systems.WarpModeExiting {
		t.Errorf("last tick mode = %s, want exiting", w.WarpSys.Mode())
	}

	w.Step(nil)
	if w.WarpSys.Mode() != systems.WarpModeCruise {
		t.Errorf("mode = %s, want cruise", w.WarpSys.Mode())
	}
}
