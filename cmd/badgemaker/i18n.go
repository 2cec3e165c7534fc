// Package main provides localization for the badgemaker CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Chinese translations for CLI messages.
	l10n.Register("zh", l10n.LexiconMap{
		// Root command
		"Turn a square video crop into a circular, looping animated WebP badge.": "将视频的正方形裁剪区域制作成圆形、循环播放的动态 WebP 勋章。",

		// Make command
		"Make a circular animated WebP badge from a video crop.": "从视频裁剪区域制作圆形动态 WebP 勋章。",
		"%s already exists; pass --overwrite to replace it":      "文件已存在：%s，使用 --overwrite 覆盖",
		"Interrupted, cancelling...":                             "已中断，正在取消…",

		// Probe command
		"Print the source video dimensions as JSON.": "以 JSON 输出源视频尺寸。",

		// Version command
		"Show version information.": "显示版本信息。",
		"badgemaker version %s":     "badgemaker 版本 %s",
	})
}
