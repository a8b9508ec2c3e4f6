package dashboard

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrGigNotFound          = errors.New("gig not found")
	ErrUnknownSetting       = errors.New("unknown notification setting")
	ErrUnknownTheme         = errors.New("unknown theme")
)
