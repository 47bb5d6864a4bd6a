// Package restaurant is the typed client for
// restaurant.v1.RestaurantProfileService.
package restaurant

// LearningHighlight is one mentorship offering on a restaurant profile. An
// empty ID marks the highlight as new on update.
type LearningHighlight struct {
	ID       string
	Title    string
	Duration string
	Detail   string
}

// Profile is a restaurant's public profile, one per restaurant user.
type Profile struct {
	ID                 string
	UserID             string
	DisplayName        string
	Tagline            string
	Location           string
	Seats              int
	CuisineTypes       []string
	MentorshipStyle    string
	Description        string
	CultureKeywords    []string
	Benefits           []string
	SupportPrograms    []string
	LearningHighlights []LearningHighlight
	CreatedAt          string
	UpdatedAt          string
}

type CreateProfileParams struct {
	DisplayName        string
	Tagline            string
	Location           string
	Seats              int
	CuisineTypes       []string
	MentorshipStyle    string
	Description        string
	CultureKeywords    []string
	Benefits           []string
	SupportPrograms    []string
	LearningHighlights []LearningHighlight
}

// UpdateProfileParams targets an existing profile by id. Highlights keep
// their ids so the server can tell kept entries from new ones.
type UpdateProfileParams struct {
	ProfileID string
	CreateProfileParams
}

// SearchParams filters profiles by cuisine and display name. Zero Limit
// defaults to 10.
type SearchParams struct {
	CuisineTypes []string
	Name         string
	Limit        int
	Offset       int
}
