package internal

// Role identifies the author of a conversation message.
type Role int

const (
	RoleUser Role = iota + 1
	RoleAssistant
)

// Wire roles understood by the chat-completion API.
const (
	wireRoleSystem    = "system"
	wireRoleUser      = "user"
	wireRoleAssistant = "assistant"
)

// WireRole maps an internal role to the role string sent on the wire.
func (r Role) WireRole() string {
	switch r {
	case RoleAssistant:
		return wireRoleAssistant
	case RoleUser:
		return wireRoleUser
	default:
		return wireRoleUser // Default fallback
	}
}

// Message is a single conversation turn as held in memory. Messages are
// append-only within a session and are never mutated once added.
type Message struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// WireMessage is one entry of the outbound request payload. Content is either
// a plain string or a []ContentPart for vision requests.
type WireMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one segment of a multi-part user turn.
type ContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *ImageURLPart `json:"image_url,omitempty"`
}

// ImageURLPart carries the image of a vision request as a data: URI.
type ImageURLPart struct {
	URL string `json:"url"`
}

// SystemMessage builds a system wire message.
func SystemMessage(text string) WireMessage {
	return WireMessage{Role: wireRoleSystem, Content: text}
}

// UserMessage builds a plain-text user wire message.
func UserMessage(text string) WireMessage {
	return WireMessage{Role: wireRoleUser, Content: text}
}

// VisionUserMessage builds a two-part user turn: the instruction text plus the
// meal photo embedded as a data: URI. The image is never inlined into the text
// segment.
func VisionUserMessage(text, imageDataURI string) WireMessage {
	return WireMessage{
		Role: wireRoleUser,
		Content: []ContentPart{
			{Type: "text", Text: text},
			{Type: "image_url", ImageURL: &ImageURLPart{URL: imageDataURI}},
		},
	}
}
