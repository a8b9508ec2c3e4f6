package models

// NavItem is one entry of the sidebar navigation.
type NavItem struct {
	Title string `yaml:"title" json:"title"`
	Href  string `yaml:"href" json:"href"`
}
