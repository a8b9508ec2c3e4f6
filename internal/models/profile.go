package models

// Language is a spoken language with a proficiency label.
type Language struct {
	Name  string `yaml:"name" json:"name"`
	Level string `yaml:"level" json:"level"`
}

// PortfolioItem is a showcase project on the profile page.
type PortfolioItem struct {
	ID           int      `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	ImageRef     string   `yaml:"imageRef" json:"imageRef"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

// Profile is the freelancer's editable public profile.
type Profile struct {
	FirstName   string          `yaml:"firstName" json:"firstName"`
	LastName    string          `yaml:"lastName" json:"lastName"`
	DisplayName string          `yaml:"displayName" json:"displayName"`
	Email       string          `yaml:"email" json:"email"`
	Phone       string          `yaml:"phone" json:"phone"`
	Title       string          `yaml:"title" json:"title"`
	Bio         string          `yaml:"bio" json:"bio"`
	HourlyRate  int             `yaml:"hourlyRate" json:"hourlyRate"`
	PhotoRef    string          `yaml:"photoRef" json:"photoRef"`
	Rating      float64         `yaml:"rating" json:"rating"`
	Skills      []string        `yaml:"skills" json:"skills"`
	Languages   []Language      `yaml:"languages" json:"languages"`
	Portfolio   []PortfolioItem `yaml:"portfolio" json:"portfolio"`
}
