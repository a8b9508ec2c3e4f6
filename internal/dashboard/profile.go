package dashboard

import (
	"slices"
	"strings"

	"gigdesk/backend/internal/models"
)

const KeyProfileUpdated = "profile.updated"

// ProfileEditor is the state of the "Edit Profile" page.
type ProfileEditor struct {
	profile models.Profile
}

func NewProfileEditor(p models.Profile) *ProfileEditor {
	p.Skills = slices.Clone(p.Skills)
	return &ProfileEditor{profile: p}
}

func (e *ProfileEditor) Profile() models.Profile {
	p := e.profile
	p.Skills = slices.Clone(p.Skills)
	return p
}

// AddSkill adds a trimmed, non-empty skill that is not already listed.
func (e *ProfileEditor) AddSkill(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" || slices.Contains(e.profile.Skills, skill) {
		return false
	}
	e.profile.Skills = append(e.profile.Skills, skill)
	return true
}

func (e *ProfileEditor) RemoveSkill(skill string) bool {
	i := slices.Index(e.profile.Skills, skill)
	if i < 0 {
		return false
	}
	e.profile.Skills = slices.Delete(e.profile.Skills, i, i+1)
	return true
}

// Save only confirms; the profile never leaves the session.
func (e *ProfileEditor) Save() models.Notification {
	return models.NewNotification(KeyProfileUpdated, models.VariantDefault)
}
