package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("zh", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Probing %s":                          "正在读取 %s",
		"Source is %dx%d":                     "源视频尺寸 %dx%d",
		"Making badge (quality %d, %dpx, %d fps)": "正在制作（质量 %d，%dpx，%dfps）…",
		"Badge written to %s (quality %d, %d bytes, %d attempts)": "已输出：%s（质量 %d，%d 字节，共 %d 次尝试）",
		"Overwrite of %s confirmed":           "已确认覆盖 %s",

		// Size-fit search
		"Size limit %d MB, trying quality %d":       "限制大小：目标 %d MB，尝试质量 %d…",
		"Over budget, trying floor quality %d":      "超出目标，尝试最低质量 %d…",
		"Search attempt %d: quality %d":             "第 %d 次尝试，质量 %d…",
		"Attempt %d: encoding at quality %d":        "第 %d 次编码，质量 %d",
		"Attempt %d: quality %d produced %d bytes":  "第 %d 次编码：质量 %d 输出 %d 字节",

		// Warnings
		"Job cancelled":                          "已取消",
		"Destination %s exists, not overwriting": "文件已存在：%s，未覆盖",
		"Size limit %d MB not reachable; wrote floor-quality output (%d bytes). Consider a smaller size or frame rate": "无法达到目标大小 %d MB，已使用最低质量输出（%d 字节）。建议降低尺寸或帧率",
		"Cannot reach %d MB even at floor quality, keeping the floor output (%d bytes)": "最低质量仍超出 %d MB，保留最低质量结果（%d 字节）",

		// Errors
		"Failed to probe source: %s": "读取视频失败：%s",
		"Invalid crop region: %s":    "裁剪区域无效：%s",
		"Encoding failed: %s":        "制作失败：%s",
	})
}
