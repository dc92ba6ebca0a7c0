package testutil

import (
	"context"
	"fmt"

	"github.com/vietfit/nutrichat/internal"
)

// RecordedCall captures one request made against the fake completer.
type RecordedCall struct {
	Messages     []internal.WireMessage
	Vision       bool
	UserText     string
	ImageDataURI string
}

// FakeCompleter is a scripted Completer for session tests. Replies are
// returned in order; when the script runs out the last reply repeats. A
// non-nil Err fails every call.
type FakeCompleter struct {
	Replies []string
	Err     error
	Calls   []RecordedCall
}

// Chat records the request and returns the next scripted reply
func (f *FakeCompleter) Chat(_ context.Context, messages []internal.WireMessage, _ internal.Language) (string, error) {
	f.Calls = append(f.Calls, RecordedCall{Messages: messages})
	return f.next()
}

// ChatVision records the request and returns the next scripted reply
func (f *FakeCompleter) ChatVision(_ context.Context, messages []internal.WireMessage, userText, imageDataURI string, _ internal.Language) (string, error) {
	f.Calls = append(f.Calls, RecordedCall{
		Messages:     messages,
		Vision:       true,
		UserText:     userText,
		ImageDataURI: imageDataURI,
	})
	return f.next()
}

func (f *FakeCompleter) next() (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Replies) == 0 {
		return "", fmt.Errorf("no scripted reply")
	}
	reply := f.Replies[0]
	if len(f.Replies) > 1 {
		f.Replies = f.Replies[1:]
	}
	return reply, nil
}
