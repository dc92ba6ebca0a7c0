package internal

import "testing"

func TestNewQuotaGate(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "explicit", limit: 5, want: 5},
		{name: "zero falls back", limit: 0, want: DefaultUsageLimit},
		{name: "negative falls back", limit: -3, want: DefaultUsageLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewQuotaGate(tt.limit).Limit; got != tt.want {
				t.Errorf("NewQuotaGate(%d).Limit = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestQuotaGate_CanProceed(t *testing.T) {
	g := NewQuotaGate(20)

	tests := []struct {
		count int
		want  bool
	}{
		{0, true},
		{19, true},
		{20, false},
		{25, false},
	}
	for _, tt := range tests {
		if got := g.CanProceed(tt.count); got != tt.want {
			t.Errorf("CanProceed(%d) = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestQuotaGate_Record(t *testing.T) {
	g := NewQuotaGate(20)

	if got := g.Record(0); got != 1 {
		t.Errorf("Record(0) = %d, want 1", got)
	}
	if got := g.Record(19); got != 20 {
		t.Errorf("Record(19) = %d, want 20", got)
	}
	// Counter never exceeds the limit.
	if got := g.Record(20); got != 20 {
		t.Errorf("Record(20) = %d, want 20", got)
	}
}

func TestQuotaGate_Remaining(t *testing.T) {
	g := NewQuotaGate(20)

	tests := []struct {
		count int
		want  int
	}{
		{0, 20},
		{13, 7},
		{20, 0},
		{99, 0},
	}
	for _, tt := range tests {
		if got := g.Remaining(tt.count); got != tt.want {
			t.Errorf("Remaining(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}
