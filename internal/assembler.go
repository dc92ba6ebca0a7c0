package internal

// BuildRequest assembles the outbound message list for a text completion:
// the persisted summary (when non-empty) as a synthetic system message, the
// mode instruction, the full prior history in order, then the new user turn.
// The base system prompt is prepended by the completion client.
func BuildRequest(summary string, mode Mode, lang Language, history []WireMessage, userText string) []WireMessage {
	msgs := make([]WireMessage, 0, len(history)+3)
	if summary != "" {
		msgs = append(msgs, SystemMessage(SummaryContext(lang, summary)))
	}
	msgs = append(msgs, SystemMessage(ModeInstruction(mode, lang)))
	msgs = append(msgs, history...)
	msgs = append(msgs, UserMessage(userText))
	return msgs
}

// BuildVisionRequest assembles the context for a photo analysis: summary,
// calorie-analysis instruction, and prior history. The completion client
// attaches the multi-part user turn (instruction text + image data URI).
func BuildVisionRequest(summary string, lang Language, history []WireMessage) []WireMessage {
	msgs := make([]WireMessage, 0, len(history)+2)
	if summary != "" {
		msgs = append(msgs, SystemMessage(SummaryContext(lang, summary)))
	}
	msgs = append(msgs, SystemMessage(ModeInstruction(ModeCalories, lang)))
	msgs = append(msgs, history...)
	return msgs
}

// BuildSummarizeRequest assembles a dedicated summarization request over the
// full history.
func BuildSummarizeRequest(lang Language, history []WireMessage) []WireMessage {
	msgs := make([]WireMessage, 0, len(history)+1)
	msgs = append(msgs, SystemMessage(SummarizeInstruction(lang)))
	msgs = append(msgs, history...)
	return msgs
}
