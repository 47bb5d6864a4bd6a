// Package chef is the typed client for chef.v1.ChefProfileService.
package chef

// PortfolioItem is a single portfolio entry. An empty ID marks the item as
// new on update; ids are assigned server-side.
type PortfolioItem struct {
	ID      string
	URL     string
	Caption string
}

// Profile is a chef's public profile. There is at most one per chef user;
// it is created once and updated thereafter.
type Profile struct {
	ID              string
	UserID          string
	FullName        string
	Headline        string
	Summary         string
	Location        string
	YearsExperience int
	Availability    string
	Specialties     []string
	WorkAreas       []string
	Languages       []string
	Bio             string
	LearningFocus   []string
	SkillTreeJSON   string
	PortfolioItems  []PortfolioItem
	CreatedAt       string
	UpdatedAt       string
}

// CreateProfileParams carries every caller-settable profile field.
type CreateProfileParams struct {
	FullName        string
	Headline        string
	Summary         string
	Location        string
	YearsExperience int
	Availability    string
	Specialties     []string
	WorkAreas       []string
	Languages       []string
	Bio             string
	LearningFocus   []string
	SkillTreeJSON   string
	PortfolioItems  []PortfolioItem
}

// UpdateProfileParams targets an existing profile by id. Portfolio items
// keep their ids so the server can tell kept items from new ones.
type UpdateProfileParams struct {
	ProfileID string
	CreateProfileParams
}

// SearchParams filters profiles. Zero Limit defaults to 10.
type SearchParams struct {
	Specialties []string
	WorkAreas   []string
	Limit       int
	Offset      int
}
