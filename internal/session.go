package internal

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultSummaryThreshold is the stored-history length that triggers a
// summarization call before the next text completion.
const DefaultSummaryThreshold = 8

// SessionOptions configures a chat session. Surface, Store, and Client are
// required; everything else has a sensible default.
type SessionOptions struct {
	Surface          string // storage-key namespace, e.g. "calendar" or "global"
	Language         Language
	Mode             Mode
	Store            StateStore
	Client           Completer
	UsageLimit       int
	SummaryThreshold int
}

// Session is one chat surface: an append-only message history seeded with a
// greeting, plus the persisted usage counter and rolling summary. Surfaces
// with different namespaces are fully independent.
type Session struct {
	surface          string
	lang             Language
	mode             Mode
	store            StateStore
	client           Completer
	gate             QuotaGate
	summaryThreshold int

	messages []Message
	usage    int
	summary  string
	sending  bool
}

// NewSession creates a session, reading the persisted counter and summary
// from the store (defaulting to 0 and "" when absent or unparseable).
func NewSession(opts SessionOptions) *Session {
	lang := opts.Language
	if lang == "" {
		lang = LanguageEN
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeAdvice
	}
	threshold := opts.SummaryThreshold
	if threshold <= 0 {
		threshold = DefaultSummaryThreshold
	}

	s := &Session{
		surface:          opts.Surface,
		lang:             lang,
		mode:             mode,
		store:            opts.Store,
		client:           opts.Client,
		gate:             NewQuotaGate(opts.UsageLimit),
		summaryThreshold: threshold,
	}
	s.usage = LoadUsage(opts.Store, opts.Surface)
	s.summary = LoadSummary(opts.Store, opts.Surface)
	s.messages = []Message{{Role: RoleAssistant, Text: Greeting(lang)}}
	return s
}

// Messages returns a copy of the conversation history in order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// UsageCount returns the current persisted usage counter.
func (s *Session) UsageCount() int {
	return s.usage
}

// Remaining returns how many billable calls are left.
func (s *Session) Remaining() int {
	return s.gate.Remaining(s.usage)
}

// Summary returns the current rolling summary ("" when none yet).
func (s *Session) Summary() string {
	return s.summary
}

// Mode returns the active instruction mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the instruction template for subsequent sends. The mode is
// transient and never persisted.
func (s *Session) SetMode(mode Mode) {
	s.mode = mode
}

// Surface returns the session's storage-key namespace.
func (s *Session) Surface() string {
	return s.surface
}

// Language returns the session's localization.
func (s *Session) Language() Language {
	return s.lang
}

// Send submits a user text turn and returns the assistant's reply.
//
// When the quota is exhausted it appends and returns the localized limit
// notice without any network call. On failure it appends the localized
// fallback message and returns it together with the underlying error for
// diagnostics; the user's own turn stays in the history and no quota is
// consumed.
func (s *Session) Send(ctx context.Context, text string) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, &ValidationError{Field: "text", Reason: "empty message"}
	}
	if s.sending {
		return Message{}, fmt.Errorf("a send is already in progress")
	}
	s.sending = true
	defer func() { s.sending = false }()

	if !s.gate.CanProceed(s.usage) {
		return s.append(RoleAssistant, LimitNotice(s.lang)), nil
	}

	// History and summary are captured before the new turn: the user text is
	// the final turn of the request, and a freshly generated summary only
	// takes effect from the following request.
	history := s.history()
	summary := s.summary
	s.append(RoleUser, text)

	if len(history) >= s.summaryThreshold && s.gate.CanProceed(s.usage) {
		fresh, err := s.client.Chat(ctx, BuildSummarizeRequest(s.lang, history), s.lang)
		if err != nil {
			return s.fail(ChatFallback(s.lang), err)
		}
		s.setSummary(fresh)
		s.recordUsage()
	}

	reply, err := s.client.Chat(ctx, BuildRequest(summary, s.mode, s.lang, history, text), s.lang)
	if err != nil {
		return s.fail(ChatFallback(s.lang), err)
	}

	msg := s.append(RoleAssistant, FormatForChat(reply))
	s.recordUsage()
	return msg, nil
}

// SendPhoto runs the calorie-analysis pipeline on a meal photo encoded as a
// data: URI. On success both a localized user placeholder turn and the
// assistant's analysis are appended; on failure only the fallback message is.
func (s *Session) SendPhoto(ctx context.Context, imageDataURI string) (Message, error) {
	if imageDataURI == "" {
		return Message{}, &ValidationError{Field: "image", Reason: "empty image data"}
	}
	if s.sending {
		return Message{}, fmt.Errorf("a send is already in progress")
	}
	s.sending = true
	defer func() { s.sending = false }()

	if !s.gate.CanProceed(s.usage) {
		return s.append(RoleAssistant, LimitNotice(s.lang)), nil
	}

	msgs := BuildVisionRequest(s.summary, s.lang, s.history())
	reply, err := s.client.ChatVision(ctx, msgs, PhotoPrompt(s.lang), imageDataURI, s.lang)
	if err != nil {
		return s.fail(PhotoFallback(s.lang), err)
	}

	s.append(RoleUser, PhotoPlaceholder(s.lang))
	msg := s.append(RoleAssistant, FormatForChat(reply))
	s.recordUsage()
	return msg, nil
}

// append adds a message to the history. Never reorders, never truncates.
func (s *Session) append(role Role, text string) Message {
	msg := Message{Role: role, Text: text}
	s.messages = append(s.messages, msg)
	return msg
}

// history maps the stored messages to wire role/content pairs in order.
func (s *Session) history() []WireMessage {
	out := make([]WireMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, WireMessage{Role: m.Role.WireRole(), Content: m.Text})
	}
	return out
}

// fail appends the localized fallback and surfaces the cause to the caller.
func (s *Session) fail(fallback string, cause error) (Message, error) {
	LogError("chat request failed [%s]: %v", s.surface, cause)
	return s.append(RoleAssistant, fallback), cause
}

// recordUsage advances and persists the usage counter. A persistence failure
// is logged but does not fail the exchange.
func (s *Session) recordUsage() {
	s.usage = s.gate.Record(s.usage)
	if err := s.store.Set(UsageKey(s.surface), strconv.Itoa(s.usage)); err != nil {
		LogWarn("failed to persist usage counter: %v", err)
	}
}

// setSummary replaces (never appends to) the rolling summary and persists it.
func (s *Session) setSummary(summary string) {
	s.summary = summary
	if err := s.store.Set(SummaryKey(s.surface), summary); err != nil {
		LogWarn("failed to persist summary: %v", err)
	}
}
