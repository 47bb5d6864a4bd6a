package chef

type wirePortfolioItem struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type wireProfile struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	FullName        string              `json:"full_name"`
	Headline        string              `json:"headline"`
	Summary         string              `json:"summary"`
	Location        string              `json:"location"`
	YearsExperience int                 `json:"years_experience"`
	Availability    string              `json:"availability"`
	Specialties     []string            `json:"specialties"`
	WorkAreas       []string            `json:"work_areas"`
	Languages       []string            `json:"languages"`
	Bio             string              `json:"bio"`
	LearningFocus   []string            `json:"learning_focus"`
	SkillTreeJSON   string              `json:"skill_tree_json"`
	PortfolioItems  []wirePortfolioItem `json:"portfolio_items"`
	CreatedAt       string              `json:"created_at"`
	UpdatedAt       string              `json:"updated_at"`
}

// createProfileRequest carries no item ids: every item is new.
type createProfileRequest struct {
	FullName        string              `json:"full_name"`
	Headline        string              `json:"headline"`
	Summary         string              `json:"summary"`
	Location        string              `json:"location"`
	YearsExperience int                 `json:"years_experience"`
	Availability    string              `json:"availability"`
	Specialties     []string            `json:"specialties"`
	WorkAreas       []string            `json:"work_areas"`
	Languages       []string            `json:"languages"`
	Bio             string              `json:"bio"`
	LearningFocus   []string            `json:"learning_focus"`
	SkillTreeJSON   string              `json:"skill_tree_json"`
	PortfolioItems  []wirePortfolioItem `json:"portfolio_items"`
}

type updateProfileRequest struct {
	ProfileID string `json:"profile_id"`
	createProfileRequest
}

type getProfileRequest struct {
	ProfileID string `json:"profile_id"`
}

type searchProfilesRequest struct {
	Specialties []string `json:"specialties"`
	WorkAreas   []string `json:"work_areas"`
	Limit       int      `json:"limit"`
	Offset      int      `json:"offset"`
}

type profileResponse struct {
	Profile wireProfile `json:"profile"`
}

type searchProfilesResponse struct {
	Profiles []wireProfile `json:"profiles"`
}

func toCreateRequest(params CreateProfileParams) createProfileRequest {
	items := make([]wirePortfolioItem, 0, len(params.PortfolioItems))
	for _, item := range params.PortfolioItems {
		items = append(items, wirePortfolioItem{URL: item.URL, Caption: item.Caption})
	}
	return createProfileRequest{
		FullName:        params.FullName,
		Headline:        params.Headline,
		Summary:         params.Summary,
		Location:        params.Location,
		YearsExperience: params.YearsExperience,
		Availability:    params.Availability,
		Specialties:     params.Specialties,
		WorkAreas:       params.WorkAreas,
		Languages:       params.Languages,
		Bio:             params.Bio,
		LearningFocus:   params.LearningFocus,
		SkillTreeJSON:   params.SkillTreeJSON,
		PortfolioItems:  items,
	}
}

func toUpdateRequest(params UpdateProfileParams) updateProfileRequest {
	req := updateProfileRequest{
		ProfileID:            params.ProfileID,
		createProfileRequest: toCreateRequest(params.CreateProfileParams),
	}
	// Update items carry their id; "" means the item is new.
	req.PortfolioItems = req.PortfolioItems[:0]
	for _, item := range params.PortfolioItems {
		req.PortfolioItems = append(req.PortfolioItems, wirePortfolioItem{
			ID:      item.ID,
			URL:     item.URL,
			Caption: item.Caption,
		})
	}
	return req
}

func fromWireProfile(p wireProfile) Profile {
	items := make([]PortfolioItem, 0, len(p.PortfolioItems))
	for _, item := range p.PortfolioItems {
		items = append(items, PortfolioItem{ID: item.ID, URL: item.URL, Caption: item.Caption})
	}
	return Profile{
		ID:              p.ID,
		UserID:          p.UserID,
		FullName:        p.FullName,
		Headline:        p.Headline,
		Summary:         p.Summary,
		Location:        p.Location,
		YearsExperience: p.YearsExperience,
		Availability:    p.Availability,
		Specialties:     orEmpty(p.Specialties),
		WorkAreas:       orEmpty(p.WorkAreas),
		Languages:       orEmpty(p.Languages),
		Bio:             p.Bio,
		LearningFocus:   orEmpty(p.LearningFocus),
		SkillTreeJSON:   p.SkillTreeJSON,
		PortfolioItems:  items,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// orEmpty keeps absent wire arrays from surfacing as nil slices.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
