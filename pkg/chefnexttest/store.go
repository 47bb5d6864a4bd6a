package chefnexttest

import (
	"errors"
	"sync"
)

var (
	errUserExists    = errors.New("user already exists")
	errProfileExists = errors.New("profile already exists")
)

type userRecord struct {
	id           string
	email        string
	role         string // wire encoding, USER_ROLE_*
	passwordHash []byte
}

type portfolioItemDoc struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type chefProfileDoc struct {
	ID              string             `json:"id"`
	UserID          string             `json:"user_id"`
	FullName        string             `json:"full_name"`
	Headline        string             `json:"headline"`
	Summary         string             `json:"summary"`
	Location        string             `json:"location"`
	YearsExperience int                `json:"years_experience"`
	Availability    string             `json:"availability"`
	Specialties     []string           `json:"specialties"`
	WorkAreas       []string           `json:"work_areas"`
	Languages       []string           `json:"languages"`
	Bio             string             `json:"bio"`
	LearningFocus   []string           `json:"learning_focus"`
	SkillTreeJSON   string             `json:"skill_tree_json"`
	PortfolioItems  []portfolioItemDoc `json:"portfolio_items"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

type learningHighlightDoc struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Detail   string `json:"detail"`
}

type restaurantProfileDoc struct {
	ID                 string                 `json:"id"`
	UserID             string                 `json:"user_id"`
	DisplayName        string                 `json:"display_name"`
	Tagline            string                 `json:"tagline"`
	Location           string                 `json:"location"`
	Seats              int                    `json:"seats"`
	CuisineTypes       []string               `json:"cuisine_types"`
	MentorshipStyle    string                 `json:"mentorship_style"`
	Description        string                 `json:"description"`
	CultureKeywords    []string               `json:"culture_keywords"`
	Benefits           []string               `json:"benefits"`
	SupportPrograms    []string               `json:"support_programs"`
	LearningHighlights []learningHighlightDoc `json:"learning_highlights"`
	CreatedAt          string                 `json:"created_at"`
	UpdatedAt          string                 `json:"updated_at"`
}

type restaurantSummaryDoc struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Tagline     string `json:"tagline"`
	Location    string `json:"location"`
}

type jobDoc struct {
	ID             string   `json:"id"`
	RestaurantID   string   `json:"restaurant_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location,omitempty"`
	SalaryRange    string   `json:"salary_range,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Status         string   `json:"status"`
	MetadataJSON   string   `json:"metadata_json"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`

	ownerUserID string
}

// jobView is a jobDoc rendered with the owning restaurant's summary.
type jobView struct {
	jobDoc
	Restaurant *restaurantSummaryDoc `json:"restaurant,omitempty"`
}

type jobSummaryDoc struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	RestaurantName string `json:"restaurant_name"`
}

type chefSummaryDoc struct {
	ProfileID string `json:"profile_id"`
	FullName  string `json:"full_name"`
	Location  string `json:"location"`
}

type applicationDoc struct {
	ID            string `json:"id"`
	JobID         string `json:"job_id"`
	ChefProfileID string `json:"chef_profile_id"`
	Status        string `json:"status"`
	CoverLetter   string `json:"cover_letter,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// applicationView is an applicationDoc rendered with its summaries.
type applicationView struct {
	applicationDoc
	Job  *jobSummaryDoc  `json:"job,omitempty"`
	Chef *chefSummaryDoc `json:"chef,omitempty"`
}

// store keeps every record in memory. All maps are guarded by mu; handlers
// call the coarse methods below so each RPC is one critical section.
type store struct {
	mu sync.Mutex

	users       map[string]*userRecord
	userByEmail map[string]string
	refresh     map[string]string // refresh token -> user id

	chefProfiles map[string]*chefProfileDoc
	chefByUser   map[string]string
	chefOrder    []string

	restProfiles map[string]*restaurantProfileDoc
	restByUser   map[string]string
	restOrder    []string

	jobs     map[string]*jobDoc
	jobOrder []string

	apps     map[string]*applicationDoc
	appOrder []string
}

func newStore() *store {
	return &store{
		users:        make(map[string]*userRecord),
		userByEmail:  make(map[string]string),
		refresh:      make(map[string]string),
		chefProfiles: make(map[string]*chefProfileDoc),
		chefByUser:   make(map[string]string),
		restProfiles: make(map[string]*restaurantProfileDoc),
		restByUser:   make(map[string]string),
		jobs:         make(map[string]*jobDoc),
		apps:         make(map[string]*applicationDoc),
	}
}

func (s *store) createUser(u *userRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.userByEmail[u.email]; ok {
		return errUserExists
	}
	s.users[u.id] = u
	s.userByEmail[u.email] = u.id
	return nil
}

func (s *store) userWithEmail(email string) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.userByEmail[email]
	if !ok {
		return nil, false
	}
	u, ok := s.users[id]
	return u, ok
}

func (s *store) userWithID(id string) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *store) putRefresh(token, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh[token] = userID
}

// takeRefresh consumes a refresh token, returning the user it belonged to.
func (s *store) takeRefresh(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.refresh[token]
	if ok {
		delete(s.refresh, token)
	}
	return userID, ok
}

func (s *store) createChefProfile(doc *chefProfileDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.chefByUser[doc.UserID]; ok {
		return errProfileExists
	}
	s.chefProfiles[doc.ID] = doc
	s.chefByUser[doc.UserID] = doc.ID
	s.chefOrder = append(s.chefOrder, doc.ID)
	return nil
}

func (s *store) chefProfileByID(id string) (*chefProfileDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.chefProfiles[id]
	return doc, ok
}

func (s *store) chefProfileByUser(userID string) (*chefProfileDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.chefByUser[userID]
	if !ok {
		return nil, false
	}
	doc, ok := s.chefProfiles[id]
	return doc, ok
}

func (s *store) chefProfilesInOrder() []*chefProfileDoc {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*chefProfileDoc, 0, len(s.chefOrder))
	for _, id := range s.chefOrder {
		out = append(out, s.chefProfiles[id])
	}
	return out
}

func (s *store) createRestaurantProfile(doc *restaurantProfileDoc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.restByUser[doc.UserID]; ok {
		return errProfileExists
	}
	s.restProfiles[doc.ID] = doc
	s.restByUser[doc.UserID] = doc.ID
	s.restOrder = append(s.restOrder, doc.ID)
	return nil
}

func (s *store) restaurantProfileByID(id string) (*restaurantProfileDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.restProfiles[id]
	return doc, ok
}

func (s *store) restaurantProfileByUser(userID string) (*restaurantProfileDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.restByUser[userID]
	if !ok {
		return nil, false
	}
	doc, ok := s.restProfiles[id]
	return doc, ok
}

func (s *store) restaurantProfilesInOrder() []*restaurantProfileDoc {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*restaurantProfileDoc, 0, len(s.restOrder))
	for _, id := range s.restOrder {
		out = append(out, s.restProfiles[id])
	}
	return out
}

func (s *store) addJob(doc *jobDoc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[doc.ID] = doc
	s.jobOrder = append(s.jobOrder, doc.ID)
}

func (s *store) jobByID(id string) (*jobDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.jobs[id]
	return doc, ok
}

func (s *store) jobsInOrder() []*jobDoc {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*jobDoc, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		out = append(out, s.jobs[id])
	}
	return out
}

func (s *store) addApplication(doc *applicationDoc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps[doc.ID] = doc
	s.appOrder = append(s.appOrder, doc.ID)
}

func (s *store) applicationByID(id string) (*applicationDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.apps[id]
	return doc, ok
}

func (s *store) applicationsInOrder() []*applicationDoc {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*applicationDoc, 0, len(s.appOrder))
	for _, id := range s.appOrder {
		out = append(out, s.apps[id])
	}
	return out
}

func (s *store) applicationForChefAndJob(chefProfileID, jobID string) (*applicationDoc, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.appOrder {
		doc := s.apps[id]
		if doc.ChefProfileID == chefProfileID && doc.JobID == jobID {
			return doc, true
		}
	}
	return nil, false
}
