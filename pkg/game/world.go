package game

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/warpfield/pkg/components"
	"github.com/decker502/warpfield/pkg/config"
	"github.com/decker502/warpfield/pkg/entities"
	"github.com/decker502/warpfield/pkg/systems"
	"github.com/decker502/warpfield/pkg/utils"
)

// SoundCue 游戏事件对应的提示音
type SoundCue int

const (
	// CueTorpedo 鱼雷发射
	CueTorpedo SoundCue = iota
	// CueWarpEngage 曲速接合
	CueWarpEngage
)

// CuePlayer 播放提示音
type CuePlayer interface {
	PlayCue(cue SoundCue)
}

// World 拥有全部实体集合并按 tick 推进
//
// 星空与鱼雷池在这里创建，以引用传递给各系统，不存在包级全局状态。
type World struct {
	Config    *config.StarfieldConfig
	Rand      *utils.Drand48
	Stars     *components.StarField
	Torpedoes *components.TorpedoPool

	WarpSys    *systems.WarpSystem
	TorpedoSys *systems.TorpedoSystem

	Sounds CuePlayer // 可为 nil
	Ticks  int
}

// ResolveSeed 把配置中的种子转换为实际使用的种子
//
// 0 表示使用进程号，与传统 srand48(getpid()) 的行为一致。
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return int64(os.Getpid())
	}
	return seed
}

// NewWorld 根据配置创建世界
//
// 参数:
//   - cfg: 已校验的配置
//   - seed: 随机种子，0 表示使用进程号
func NewWorld(cfg *config.StarfieldConfig, seed int64) (*World, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	seed = ResolveSeed(seed)
	rng := utils.NewDrand48(seed)

	params := entities.StarParamsFromConfig(cfg)
	stars, err := entities.NewStarField(rng, params, cfg.Starfield.NumStars)
	if err != nil {
		return nil, fmt.Errorf("failed to create starfield: %w", err)
	}

	w := &World{
		Config:     cfg,
		Rand:       rng,
		Stars:      stars,
		Torpedoes:  components.NewTorpedoPool(cfg.Torpedoes.MaxTorps),
		WarpSys:    systems.NewWarpSystem(rng, cfg.Window.Width, cfg.Window.Height, cfg.Starfield.MaxStreak),
		TorpedoSys: systems.NewTorpedoSystem(cfg.Torpedoes.Step),
	}

	log.Printf("[World] created: seed=%d, stars=%d, torpedoes=%d", seed, stars.Len(), w.Torpedoes.Capacity())
	return w, nil
}

// Apply 按顺序应用本 tick 的全部意图
//
// 返回 true 表示收到退出意图；退出之后的意图不再处理。
func (w *World) Apply(intents []systems.Intent) (quit bool) {
	for _, in := range intents {
		switch in.Kind {
		case systems.IntentEngage:
			if !w.WarpSys.Engaged() {
				w.playCue(CueWarpEngage)
			}
			w.WarpSys.SetEngaged(true)
		case systems.IntentDisengage:
			w.WarpSys.SetEngaged(false)
		case systems.IntentFire:
			// 精灵以按下位置水平居中
			if w.Torpedoes.Fire(in.X-w.Config.Torpedoes.SpriteSize/2, in.Y) {
				w.playCue(CueTorpedo)
			}
		case systems.IntentQuit:
			log.Printf("[World] quit requested at tick %d", w.Ticks)
			return true
		}
	}
	return false
}

// Advance 推进星空与鱼雷一个 tick
func (w *World) Advance() {
	w.WarpSys.Update(w.Stars)
	w.TorpedoSys.Update(w.Torpedoes)
	w.Ticks++
}

// Step 应用意图并推进一个 tick
//
// 收到退出意图时立即返回 true，本 tick 不再推进。
func (w *World) Step(intents []systems.Intent) (quit bool) {
	if w.Apply(intents) {
		return true
	}
	w.Advance()
	return false
}

// Frame 返回当前 tick 的渲染数据
func (w *World) Frame() systems.FrameState {
	return systems.FrameState{
		Marks:   w.WarpSys.Marks(),
		Alert:   w.WarpSys.Alert(),
		Sprites: w.TorpedoSys.Sprites(),
	}
}

func (w *World) playCue(cue SoundCue) {
	if w.Sounds != nil {
		w.Sounds.PlayCue(cue)
	}
}
