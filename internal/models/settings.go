package models

// Settings holds the preferences edited on the settings page.
type Settings struct {
	Theme         string          `yaml:"theme" json:"theme"`
	Notifications map[string]bool `yaml:"notifications" json:"notifications"`
}
