package internal

import "testing"

func TestRole_WireRole(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want string
	}{
		{name: "user", role: RoleUser, want: "user"},
		{name: "assistant", role: RoleAssistant, want: "assistant"},
		{name: "unknown defaults to user", role: Role(99), want: "user"},
		{name: "zero defaults to user", role: Role(0), want: "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.role.WireRole(); got != tt.want {
				t.Errorf("WireRole() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisionUserMessage(t *testing.T) {
	msg := VisionUserMessage("What is on this plate?", "data:image/png;base64,AAAA")

	if msg.Role != "user" {
		t.Errorf("Role = %q, want \"user\"", msg.Role)
	}
	parts, ok := msg.Content.([]ContentPart)
	if !ok {
		t.Fatalf("Content is %T, want []ContentPart", msg.Content)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	if parts[0].Type != "text" || parts[0].Text != "What is on this plate?" {
		t.Errorf("parts[0] = %+v, want text part", parts[0])
	}
	if parts[0].ImageURL != nil {
		t.Error("text part carries an image URL")
	}
	if parts[1].Type != "image_url" {
		t.Errorf("parts[1].Type = %q, want \"image_url\"", parts[1].Type)
	}
	if parts[1].ImageURL == nil || parts[1].ImageURL.URL != "data:image/png;base64,AAAA" {
		t.Errorf("parts[1].ImageURL = %+v, want the data URI", parts[1].ImageURL)
	}
}
