package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SampleRate 合成音频的采样率
const SampleRate = 44100

// AudioManager 提示音管理器
//
// 提示音在创建时合成为 16 位立体声 PCM 并缓存为播放器，
// 不依赖任何音频资源文件。
type AudioManager struct {
	ctx     *audio.Context
	volume  float64
	players map[SoundCue]*audio.Player
}

// NewAudioManager 创建提示音管理器
//
// 参数：
//   - ctx: ebiten 音频上下文（进程内只能创建一个）
//   - volume: 音量 (0.0 ~ 1.0)
func NewAudioManager(ctx *audio.Context, volume float64) *AudioManager {
	am := &AudioManager{
		ctx:     ctx,
		volume:  volume,
		players: make(map[SoundCue]*audio.Player),
	}

	am.players[CueTorpedo] = ctx.NewPlayerFromBytes(SynthesizeCue(CueTorpedo, SampleRate))
	am.players[CueWarpEngage] = ctx.NewPlayerFromBytes(SynthesizeCue(CueWarpEngage, SampleRate))

	log.Printf("[AudioManager] Prepared %d cues (volume: %.2f)", len(am.players), volume)
	return am
}

// PlayCue 实现 CuePlayer
func (am *AudioManager) PlayCue(cue SoundCue) {
	player, ok := am.players[cue]
	if !ok {
		log.Printf("[AudioManager] Warning: Cue not found: %d", cue)
		return
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind cue %d: %v", cue, err)
	}
	player.Play()
}

// SetVolume 设置音量，对后续播放生效
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = volume
	for _, player := range am.players {
		player.SetVolume(volume)
	}
}

// cueShape 提示音的频率包络
type cueShape struct {
	duration  float64 // 秒
	startFreq float64 // Hz
	endFreq   float64 // Hz
}

var cueShapes = map[SoundCue]cueShape{
	// 鱼雷：短促的下滑音
	CueTorpedo: {duration: 0.12, startFreq: 1760, endFreq: 440},
	// 曲速：低沉的上升嗡鸣
	CueWarpEngage: {duration: 0.6, startFreq: 55, endFreq: 220},
}

// SynthesizeCue 合成提示音的 PCM 数据（16 位有符号小端，立体声交错）
//
// 频率在时长内线性变化，振幅按线性衰减包络收尾，避免结束处爆音。
func SynthesizeCue(cue SoundCue, sampleRate int) []byte {
	shape, ok := cueShapes[cue]
	if !ok || sampleRate <= 0 {
		return nil
	}

	n := int(shape.duration * float64(sampleRate))
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := shape.startFreq + (shape.endFreq-shape.startFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 0.5 * (1 - t)
		v := int16(math.Sin(phase) * amp * math.MaxInt16)

		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
