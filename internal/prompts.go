package internal

import (
	"fmt"
	"strings"
)

// Mode selects the instruction template injected as a system message.
type Mode string

const (
	ModeAdvice   Mode = "advice"
	ModeMenu     Mode = "menu"
	ModeCalories Mode = "calories"
)

// ParseMode validates a chat mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAdvice, ModeMenu, ModeCalories:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unsupported mode: %s (supported: advice, menu, calories)", s)
	}
}

// ModeLabel is the human-readable name of a mode.
func ModeLabel(mode Mode, lang Language) string {
	switch mode {
	case ModeMenu:
		return lang.pick("Menu building", "Xây dựng thực đơn")
	case ModeCalories:
		return lang.pick("Calorie analysis", "Phân tích calories")
	default:
		return lang.pick("Nutrition and fitness advice", "Lời khuyên dinh dưỡng và thể chất")
	}
}

// SystemPrompt is the base instruction the completion client prepends to every
// request. It pins the response language and demands plain text output.
func SystemPrompt(lang Language) string {
	if lang == LanguageVI {
		return strings.Join([]string{
			"Bạn là trợ lý dinh dưỡng song ngữ.",
			"LUÔN trả lời bằng tiếng Việt, bất kể người dùng nhập bằng ngôn ngữ nào.",
			"Chỉ dùng văn bản thuần — không dùng Markdown, gạch đầu dòng, code fence hoặc định dạng đặc biệt.",
			"Sắp xếp câu trả lời thành các đoạn ngắn, phân tách bằng ký tự xuống dòng để dễ đọc.",
			"Hãy đưa ra hướng dẫn ăn uống an toàn, thực tế, phù hợp mục tiêu của người dùng, ưu tiên mẹo ngắn gọn và gợi ý bữa ăn.",
		}, " ")
	}
	return strings.Join([]string{
		"You are a bilingual nutrition assistant.",
		"ALWAYS respond in English, regardless of the user input language.",
		"Use plain text only — do not use Markdown, bullet points, code fences, or special formatting.",
		"Structure your response as short paragraphs separated by newline characters for readability.",
		"Provide clear, safe, practical diet guidance aligned to user goals, with concise tips and optional meal suggestions.",
	}, " ")
}

// ModeInstruction is the mode-specific response-style paragraph.
func ModeInstruction(mode Mode, lang Language) string {
	if lang == LanguageVI {
		switch mode {
		case ModeMenu:
			return strings.Join([]string{
				"Chế độ: Xây dựng thực đơn.",
				"Tạo thực đơn đơn giản.",
				"Mỗi bữa: tên, calories và macros ước lượng.",
				"Kết thúc bằng danh sách mua sắm ngắn gọn, nhóm theo danh mục.",
			}, " ")
		case ModeCalories:
			return strings.Join([]string{
				"Chế độ: Phân tích calories từ ảnh món ăn.",
				"Nhận diện món ăn, ước lượng khẩu phần, calories và macros cho từng món và tổng.",
				"Đưa mức độ tự tin, nêu giả định và gợi ý thay thế lành mạnh nếu phù hợp.",
			}, " ")
		default:
			return strings.Join([]string{
				"Chế độ: Lời khuyên dinh dưỡng và thể chất.",
				"Đưa ra hướng dẫn an toàn, thực tế, phù hợp bối cảnh và mục tiêu của người dùng.",
				"Ưu tiên mẹo theo từng bước, gợi ý thay đổi thói quen nhỏ và kế hoạch hành động 7 ngày (tùy chọn).",
			}, " ")
		}
	}
	switch mode {
	case ModeMenu:
		return strings.Join([]string{
			"Mode: Menu building.",
			"Create a simple 7-day menu with 3 meals + 1 snack per day.",
			"Each meal: name, approximate calories and macros.",
			"End with a concise shopping list summary grouped by categories.",
		}, " ")
	case ModeCalories:
		return strings.Join([]string{
			"Mode: Calorie analysis from meal image.",
			"Identify foods, estimate portion sizes, calories and macros per item and total.",
			"Provide confidence level and mention assumptions; suggest healthier swaps if relevant.",
		}, " ")
	default:
		return strings.Join([]string{
			"Mode: Nutrition and fitness advice.",
			"Give practical, safe guidance tailored to the user's context and goals.",
			"Prefer step-by-step tips, suggest small habit changes, and optional 7-day action plan.",
		}, " ")
	}
}

// SummarizeInstruction asks the model to compact the conversation so far.
func SummarizeInstruction(lang Language) string {
	return lang.pick(
		"Summarize the following conversation in one short paragraph.",
		"Tóm tắt cuộc hội thoại sau thành một đoạn ngắn.",
	)
}
