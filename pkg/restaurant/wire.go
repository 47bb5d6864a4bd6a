package restaurant

type wireLearningHighlight struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Detail   string `json:"detail"`
}

type wireProfile struct {
	ID                 string                  `json:"id"`
	UserID             string                  `json:"user_id"`
	DisplayName        string                  `json:"display_name"`
	Tagline            string                  `json:"tagline"`
	Location           string                  `json:"location"`
	Seats              int                     `json:"seats"`
	CuisineTypes       []string                `json:"cuisine_types"`
	MentorshipStyle    string                  `json:"mentorship_style"`
	Description        string                  `json:"description"`
	CultureKeywords    []string                `json:"culture_keywords"`
	Benefits           []string                `json:"benefits"`
	SupportPrograms    []string                `json:"support_programs"`
	LearningHighlights []wireLearningHighlight `json:"learning_highlights"`
	CreatedAt          string                  `json:"created_at"`
	UpdatedAt          string                  `json:"updated_at"`
}

type createProfileRequest struct {
	DisplayName        string                  `json:"display_name"`
	Tagline            string                  `json:"tagline"`
	Location           string                  `json:"location"`
	Seats              int                     `json:"seats"`
	CuisineTypes       []string                `json:"cuisine_types"`
	MentorshipStyle    string                  `json:"mentorship_style"`
	Description        string                  `json:"description"`
	CultureKeywords    []string                `json:"culture_keywords"`
	Benefits           []string                `json:"benefits"`
	SupportPrograms    []string                `json:"support_programs"`
	LearningHighlights []wireLearningHighlight `json:"learning_highlights"`
}

type updateProfileRequest struct {
	ProfileID string `json:"profile_id"`
	createProfileRequest
}

type getProfileRequest struct {
	ProfileID string `json:"profile_id"`
}

type searchProfilesRequest struct {
	CuisineTypes []string `json:"cuisine_types"`
	Name         string   `json:"name"`
	Limit        int      `json:"limit"`
	Offset       int      `json:"offset"`
}

type profileResponse struct {
	Profile wireProfile `json:"profile"`
}

type searchProfilesResponse struct {
	Profiles []wireProfile `json:"profiles"`
}

func toCreateRequest(params CreateProfileParams) createProfileRequest {
	highlights := make([]wireLearningHighlight, 0, len(params.LearningHighlights))
	for _, h := range params.LearningHighlights {
		highlights = append(highlights, wireLearningHighlight{
			Title:    h.Title,
			Duration: h.Duration,
			Detail:   h.Detail,
		})
	}
	return createProfileRequest{
		DisplayName:        params.DisplayName,
		Tagline:            params.Tagline,
		Location:           params.Location,
		Seats:              params.Seats,
		CuisineTypes:       params.CuisineTypes,
		MentorshipStyle:    params.MentorshipStyle,
		Description:        params.Description,
		CultureKeywords:    params.CultureKeywords,
		Benefits:           params.Benefits,
		SupportPrograms:    params.SupportPrograms,
		LearningHighlights: highlights,
	}
}

func toUpdateRequest(params UpdateProfileParams) updateProfileRequest {
	req := updateProfileRequest{
		ProfileID:            params.ProfileID,
		createProfileRequest: toCreateRequest(params.CreateProfileParams),
	}
	// Update highlights carry their id; "" means the entry is new.
	req.LearningHighlights = req.LearningHighlights[:0]
	for _, h := range params.LearningHighlights {
		req.LearningHighlights = append(req.LearningHighlights, wireLearningHighlight{
			ID:       h.ID,
			Title:    h.Title,
			Duration: h.Duration,
			Detail:   h.Detail,
		})
	}
	return req
}

func fromWireProfile(p wireProfile) Profile {
	highlights := make([]LearningHighlight, 0, len(p.LearningHighlights))
	for _, h := range p.LearningHighlights {
		highlights = append(highlights, LearningHighlight{
			ID:       h.ID,
			Title:    h.Title,
			Duration: h.Duration,
			Detail:   h.Detail,
		})
	}
	return Profile{
		ID:                 p.ID,
		UserID:             p.UserID,
		DisplayName:        p.DisplayName,
		Tagline:            p.Tagline,
		Location:           p.Location,
		Seats:              p.Seats,
		CuisineTypes:       orEmpty(p.CuisineTypes),
		MentorshipStyle:    p.MentorshipStyle,
		Description:        p.Description,
		CultureKeywords:    orEmpty(p.CultureKeywords),
		Benefits:           orEmpty(p.Benefits),
		SupportPrograms:    orEmpty(p.SupportPrograms),
		LearningHighlights: highlights,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
