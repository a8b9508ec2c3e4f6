package dashboard

import (
	"fmt"
	"maps"
	"slices"

	"gigdesk/backend/internal/config"
	"gigdesk/backend/internal/models"
)

const (
	KeySettingsSaved   = "settings.saved"
	KeyAccountDeletion = "account.deletion"
)

// SettingsPanel is the state of the settings page.
type SettingsPanel struct {
	settings models.Settings
}

func NewSettingsPanel(s models.Settings) *SettingsPanel {
	s.Notifications = maps.Clone(s.Notifications)
	if s.Notifications == nil {
		s.Notifications = make(map[string]bool)
	}
	return &SettingsPanel{settings: s}
}

func (p *SettingsPanel) Settings() models.Settings {
	s := p.settings
	s.Notifications = maps.Clone(s.Notifications)
	return s
}

// Enabled reports the switch state of a notification channel.
func (p *SettingsPanel) Enabled(key string) bool {
	return p.settings.Notifications[key]
}

func (p *SettingsPanel) SetNotification(key string, on bool) error {
	if !slices.Contains(config.NotificationChannels, key) {
		return fmt.Errorf("%q: %w", key, ErrUnknownSetting)
	}
	p.settings.Notifications[key] = on
	return nil
}

func (p *SettingsPanel) SetTheme(theme string) error {
	if !config.SupportedThemes[theme] {
		return fmt.Errorf("%q: %w", theme, ErrUnknownTheme)
	}
	p.settings.Theme = theme
	return nil
}

func (p *SettingsPanel) Save() models.Notification {
	return models.NewNotification(KeySettingsSaved, models.VariantDefault)
}

// RequestAccountDeletion deletes nothing; it points the user to support.
func (p *SettingsPanel) RequestAccountDeletion() models.Notification {
	return models.NewNotification(KeyAccountDeletion, models.VariantDestructive)
}
