package internal

import "fmt"

// Language selects the localization of prompts and user-facing notices.
type Language string

const (
	LanguageEN Language = "en"
	LanguageVI Language = "vi"
)

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEN:
		return LanguageEN, nil
	case LanguageVI:
		return LanguageVI, nil
	default:
		return "", fmt.Errorf("unsupported language: %s (supported: en, vi)", s)
	}
}

// pick returns the English or Vietnamese variant of a string. Unknown codes
// fall back to English.
func (l Language) pick(en, vi string) string {
	if l == LanguageVI {
		return vi
	}
	return en
}

// Greeting is the synthetic assistant message every session starts with.
func Greeting(lang Language) string {
	return lang.pick(
		"Hello! I can help you with meal suggestions and nutrition questions. What would you like to know?",
		"Xin chào! Tôi có thể giúp bạn về gợi ý bữa ăn và câu hỏi dinh dưỡng. Bạn muốn biết gì?",
	)
}

// LimitNotice is appended when the usage quota is exhausted.
func LimitNotice(lang Language) string {
	return lang.pick(
		"You have reached the limit of 20 uses in this session.",
		"Bạn đã dùng tối đa 20 lần trong phiên này.",
	)
}

// ChatFallback is appended when a text completion fails.
func ChatFallback(lang Language) string {
	return lang.pick(
		"Sorry, I could not reach the nutrition assistant. Please try again later.",
		"Xin lỗi, không thể kết nối trợ lý dinh dưỡng. Vui lòng thử lại sau.",
	)
}

// PhotoFallback is appended when a photo analysis fails.
func PhotoFallback(lang Language) string {
	return lang.pick(
		"Sorry, I could not analyze the photo. Please try again later.",
		"Xin lỗi, không thể phân tích ảnh. Vui lòng thử lại sau.",
	)
}

// PhotoPlaceholder is recorded as the user's turn for a photo submission.
func PhotoPlaceholder(lang Language) string {
	return lang.pick(
		"Sent a meal photo for analysis.",
		"Đã gửi ảnh bữa ăn để phân tích.",
	)
}

// PhotoPrompt is the literal instruction text sent alongside the photo.
func PhotoPrompt(lang Language) string {
	return lang.pick(
		"Please analyze the calories and macros in this meal photo.",
		"Hãy phân tích calories và macros trong ảnh bữa ăn này.",
	)
}

// SummaryContext wraps a persisted summary for injection as a system message.
func SummaryContext(lang Language, summary string) string {
	return lang.pick("Conversation summary: ", "Tóm tắt hội thoại: ") + summary
}
