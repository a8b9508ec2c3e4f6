package config

import "time"

const (
	// Gig form
	MaxGigImages = 3
	MinGigPrice  = 5

	// Toasts
	ToastBufferSize = 16
	ToastTTL        = 5 * time.Second

	// WebSocket
	WSWriteWait      = 10 * time.Second
	WSPongWait       = 60 * time.Second
	WSPingPeriod     = (WSPongWait * 9) / 10
	WSMaxMessageSize = 512

	// Session
	SessionCookieName   = "gigdesk_session"
	SessionCookieMaxAge = 24 * time.Hour
)

// SupportedThemes are the values accepted by the settings page theme switch.
var SupportedThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

// NotificationChannels lists the notification preference keys in display order.
var NotificationChannels = []string{
	"email",
	"push",
	"sms",
	"newOrders",
	"messages",
	"payments",
	"marketing",
}
