package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed default_starfield.yaml
var defaultStarfieldYAML []byte

// ErrUnknownColor 颜色名称无法在 colornames 表中找到
var ErrUnknownColor = errors.New("unknown color name")

// StarfieldConfig 星空引擎配置
//
// 配置文件为 YAML 格式，字段使用 camelCase。
// 未出现在用户文件中的字段保留默认值（见 default_starfield.yaml）。
type StarfieldConfig struct {
	Window    WindowConfig  `yaml:"window"`
	Starfield StarsConfig   `yaml:"starfield"`
	Torpedoes TorpedoConfig `yaml:"torpedoes"`
	Loop      LoopConfig    `yaml:"loop"`
	Colors    ColorConfig   `yaml:"colors"`
	Audio     AudioConfig   `yaml:"audio"`
	Debug     DebugConfig   `yaml:"debug"`
}

// WindowConfig 窗口配置
//
// 最大尺寸固定等于初始尺寸，用户只能缩小窗口。
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"minWidth"`
	MinHeight int    `yaml:"minHeight"`
	Title     string `yaml:"title"`
	Cursor    string `yaml:"cursor"` // default / crosshair / pointer / text
}

// StarsConfig 星星配置
type StarsConfig struct {
	NumStars    int     `yaml:"numStars"`
	MaxStreak   int     `yaml:"maxStreak"`   // 拖尾最大步数
	MaxVelocity int     `yaml:"maxVelocity"` // 速度取值范围 [1, MaxVelocity]
	LargeRatio  float64 `yaml:"largeRatio"`  // 大星比例
	Seed        int64   `yaml:"seed"`
}

// TorpedoConfig 光子鱼雷配置
type TorpedoConfig struct {
	MaxTorps   int `yaml:"maxTorps"`
	Step       int `yaml:"step"`       // 每 tick 上移的像素数
	SpriteSize int `yaml:"spriteSize"` // 精灵边长（8x8 位图）
}

// LoopConfig 主循环配置
type LoopConfig struct {
	TickMillis int `yaml:"tickMillis"`
}

// ColorConfig 颜色配置，值为 CSS 颜色名（如 "red", "yellow"）
type ColorConfig struct {
	Background string `yaml:"background"`
	Cruise     string `yaml:"cruise"`
	Warp       string `yaml:"warp"`
	Torpedo    string `yaml:"torpedo"`
}

// AudioConfig 音效配置
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// DebugConfig 调试配置
type DebugConfig struct {
	ShowHUD bool `yaml:"showHUD"`
}

// DefaultStarfieldConfig 返回内嵌的默认配置
func DefaultStarfieldConfig() *StarfieldConfig {
	cfg, err := ParseStarfieldConfig(nil)
	if err != nil {
		// 内嵌配置由构建保证有效
		panic(fmt.Sprintf("config: embedded default starfield config is invalid: %v", err))
	}
	return cfg
}

// ParseStarfieldConfig 在默认配置之上解析用户 YAML 数据
//
// 参数:
//   - data: 用户 YAML 内容，为空时直接返回默认配置
//
// 返回:
//   - *StarfieldConfig: 合并并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseStarfieldConfig(data []byte) (*StarfieldConfig, error) {
	var cfg StarfieldConfig
	if err := yaml.Unmarshal(defaultStarfieldYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default starfield config: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse starfield config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid starfield config: %w", err)
	}

	return &cfg, nil
}

// LoadStarfieldConfig 从文件加载星空配置
//
// 参数:
//   - path: 配置文件路径，为空时返回默认配置
//
// 返回:
//   - *StarfieldConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadStarfieldConfig(path string) (*StarfieldConfig, error) {
	if path == "" {
		return ParseStarfieldConfig(nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read starfield config: %w", err)
	}

	return ParseStarfieldConfig(data)
}

// Validate 验证配置有效性
func (c *StarfieldConfig) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.MinWidth <= 0 || w.MinHeight <= 0 {
		return fmt.Errorf("window min size must be positive, got %dx%d", w.MinWidth, w.MinHeight)
	}
	if w.MinWidth > w.Width || w.MinHeight > w.Height {
		return fmt.Errorf("window min size %dx%d exceeds window size %dx%d",
			w.MinWidth, w.MinHeight, w.Width, w.Height)
	}

	s := c.Starfield
	if s.NumStars <= 0 {
		return fmt.Errorf("numStars must be positive, got %d", s.NumStars)
	}
	if s.MaxStreak <= 0 {
		return fmt.Errorf("maxStreak must be positive, got %d", s.MaxStreak)
	}
	if s.MaxVelocity <= 0 {
		return fmt.Errorf("maxVelocity must be positive, got %d", s.MaxVelocity)
	}
	if s.LargeRatio < 0 || s.LargeRatio > 1 {
		return fmt.Errorf("largeRatio must be in [0, 1], got %.3f", s.LargeRatio)
	}

	t := c.Torpedoes
	if t.MaxTorps <= 0 {
		return fmt.Errorf("maxTorps must be positive, got %d", t.MaxTorps)
	}
	if t.Step <= 0 {
		return fmt.Errorf("torpedo step must be positive, got %d", t.Step)
	}
	if t.SpriteSize <= 0 {
		return fmt.Errorf("torpedo spriteSize must be positive, got %d", t.SpriteSize)
	}

	if c.Loop.TickMillis <= 0 {
		return fmt.Errorf("tickMillis must be positive, got %d", c.Loop.TickMillis)
	}

	for field, name := range map[string]string{
		"background": c.Colors.Background,
		"cruise":     c.Colors.Cruise,
		"warp":       c.Colors.Warp,
		"torpedo":    c.Colors.Torpedo,
	} {
		if _, err := LookupColor(name); err != nil {
			return fmt.Errorf("colors.%s: %w", field, err)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0, 1], got %.2f", c.Audio.Volume)
	}

	return nil
}

// TickInterval 返回每个 tick 的时长
func (c *StarfieldConfig) TickInterval() time.Duration {
	return time.Duration(c.Loop.TickMillis) * time.Millisecond
}

// TicksPerSecond 返回目标 TPS（20ms → 50）
func (c *StarfieldConfig) TicksPerSecond() int {
	tps := 1000 / c.Loop.TickMillis
	if tps < 1 {
		return 1
	}
	return tps
}

// Palette 已解析的颜色表
type Palette struct {
	Background color.RGBA
	Cruise     color.RGBA
	Warp       color.RGBA
	Torpedo    color.RGBA
}

// Palette 解析配置中的颜色名
//
// Validate 已保证所有名称有效，这里忽略错误。
func (c *StarfieldConfig) Palette() Palette {
	bg, _ := LookupColor(c.Colors.Background)
	cruise, _ := LookupColor(c.Colors.Cruise)
	warp, _ := LookupColor(c.Colors.Warp)
	torp, _ := LookupColor(c.Colors.Torpedo)
	return Palette{Background: bg, Cruise: cruise, Warp: warp, Torpedo: torp}
}

// LookupColor 根据 CSS 颜色名查找颜色（大小写不敏感）
func LookupColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}
