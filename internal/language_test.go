package internal

import (
	"strings"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{input: "en", want: LanguageEN},
		{input: "vi", want: LanguageVI},
		{input: "fr", wantErr: true},
		{input: "EN", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLanguage(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLanguage(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLanguage(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLimitNotice(t *testing.T) {
	if got := LimitNotice(LanguageEN); got != "You have reached the limit of 20 uses in this session." {
		t.Errorf("LimitNotice(en) = %q", got)
	}
	if got := LimitNotice(LanguageVI); !strings.Contains(got, "20") {
		t.Errorf("LimitNotice(vi) = %q, want the limit mentioned", got)
	}
}

func TestSummaryContext(t *testing.T) {
	if got := SummaryContext(LanguageEN, "eats fish"); got != "Conversation summary: eats fish" {
		t.Errorf("SummaryContext(en) = %q", got)
	}
	if got := SummaryContext(LanguageVI, "ăn cá"); got != "Tóm tắt hội thoại: ăn cá" {
		t.Errorf("SummaryContext(vi) = %q", got)
	}
}

func TestLocalizedStringsDiffer(t *testing.T) {
	pairs := []struct {
		name string
		fn   func(Language) string
	}{
		{"Greeting", Greeting},
		{"LimitNotice", LimitNotice},
		{"ChatFallback", ChatFallback},
		{"PhotoFallback", PhotoFallback},
		{"PhotoPlaceholder", PhotoPlaceholder},
		{"PhotoPrompt", PhotoPrompt},
	}
	for _, p := range pairs {
		en, vi := p.fn(LanguageEN), p.fn(LanguageVI)
		if en == "" || vi == "" {
			t.Errorf("%s: empty localized string", p.name)
		}
		if en == vi {
			t.Errorf("%s: English and Vietnamese variants are identical", p.name)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{input: "advice", want: ModeAdvice},
		{input: "menu", want: ModeMenu},
		{input: "calories", want: ModeCalories},
		{input: "other", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q) succeeded, want error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestModeInstructionVaries(t *testing.T) {
	seen := map[string]Mode{}
	for _, mode := range []Mode{ModeAdvice, ModeMenu, ModeCalories} {
		instr := ModeInstruction(mode, LanguageEN)
		if instr == "" {
			t.Errorf("ModeInstruction(%s, en) is empty", mode)
		}
		if prev, dup := seen[instr]; dup {
			t.Errorf("modes %s and %s share an instruction", prev, mode)
		}
		seen[instr] = mode
	}
}
