package utils

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本（保留其中的 '\n' 段落分隔）
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（空段落对应空字符串行）
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if font == nil {
		return strings.Split(textStr, "\n")
	}
	return WrapTextFunc(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// WrapTextFunc 使用给定的测量函数换行
//
// 换行规则:
//   - 优先在空格处断行
//   - 单词本身超过最大宽度时按字符强制断行
func WrapTextFunc(textStr string, maxWidth float64, measure func(string) float64) []string {
	if maxWidth <= 0 || measure == nil {
		return strings.Split(textStr, "\n")
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}

			if current != "" {
				lines = append(lines, current)
			}
			current = ""
			if measure(word) <= maxWidth {
				current = word
				continue
			}
			// 单词过长：按字符拆分
			for _, r := range word {
				next := current + string(r)
				if current != "" && measure(next) > maxWidth {
					lines = append(lines, current)
					next = string(r)
				}
				current = next
			}
		}
		lines = append(lines, current)
	}

	return lines
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
