//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.warpfield -o build/android/warpfield.aar ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Warpfield.xcframework ./mobile
//
// 触摸视为主键（发射鱼雷）；移动端没有副键和第三键，曲速与退出不可用。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/warpfield/pkg/app"
	"github.com/decker502/warpfield/pkg/config"
)

func init() {
	// 使用内置默认配置，种子取进程号
	warpApp, err := app.NewApp(app.Config{
		Verbose:   true,
		Starfield: config.DefaultStarfieldConfig(),
	})
	if err != nil {
		log.Fatalf("星空初始化失败: %v", err)
	}

	mobile.SetGame(warpApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
