package chefnexttest

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

type learningHighlightReq struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Detail   string `json:"detail"`
}

type restaurantProfileRequest struct {
	ProfileID          string                 `json:"profile_id"`
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
	LearningHighlights []learningHighlightReq `json:"learning_highlights"`
}

type restaurantSearchRequest struct {
	CuisineTypes []string `json:"cuisine_types"`
	Name         string   `json:"name"`
	Limit        int      `json:"limit"`
	Offset       int      `json:"offset"`
}

func (s *Server) createRestaurantProfile(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	if user.role != "USER_ROLE_RESTAURANT" {
		return permissionDenied(c, "only restaurant accounts can create a restaurant profile")
	}
	var req restaurantProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	if strings.TrimSpace(req.DisplayName) == "" {
		return invalidArgument(c, "display_name is required")
	}

	now := nowStamp()
	doc := restaurantDocFromRequest(req)
	doc.ID = uuid.NewString()
	doc.UserID = user.id
	doc.CreatedAt = now
	doc.UpdatedAt = now
	for i := range doc.LearningHighlights {
		doc.LearningHighlights[i].ID = uuid.NewString()
	}
	if err := s.store.createRestaurantProfile(doc); err != nil {
		return rpcError(c, http.StatusConflict, transport.CodeAlreadyExists, "profile already exists")
	}
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) getRestaurantProfile(c *fiber.Ctx) error {
	var req restaurantProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.restaurantProfileByID(req.ProfileID)
	if !ok {
		return notFound(c, "profile not found")
	}
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) getMyRestaurantProfile(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	doc, ok := s.store.restaurantProfileByUser(user.id)
	if !ok {
		return notFound(c, "profile not found")
	}
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) updateRestaurantProfile(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	var req restaurantProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.restaurantProfileByID(req.ProfileID)
	if !ok {
		return notFound(c, "profile not found")
	}
	if doc.UserID != user.id {
		return permissionDenied(c, "profile belongs to another user")
	}

	updated := restaurantDocFromRequest(req)
	updated.ID = doc.ID
	updated.UserID = doc.UserID
	updated.CreatedAt = doc.CreatedAt
	updated.UpdatedAt = nowStamp()
	// Empty highlight ids mark new entries; known ids are kept as-is.
	for i := range updated.LearningHighlights {
		if updated.LearningHighlights[i].ID == "" {
			updated.LearningHighlights[i].ID = uuid.NewString()
		}
	}
	*doc = *updated
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) searchRestaurantProfiles(c *fiber.Ctx) error {
	var req restaurantSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	limit, offset := clampPage(req.Limit, req.Offset, 10)
	name := strings.ToLower(strings.TrimSpace(req.Name))

	var matched []*restaurantProfileDoc
	for _, doc := range s.store.restaurantProfilesInOrder() {
		if len(req.CuisineTypes) > 0 && !overlaps(doc.CuisineTypes, req.CuisineTypes) {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(doc.DisplayName), name) {
			continue
		}
		matched = append(matched, doc)
	}
	lo, hi := page(len(matched), limit, offset)
	profiles := matched[lo:hi]
	if profiles == nil {
		profiles = []*restaurantProfileDoc{}
	}
	return c.JSON(fiber.Map{"profiles": profiles})
}

func restaurantDocFromRequest(req restaurantProfileRequest) *restaurantProfileDoc {
	highlights := make([]learningHighlightDoc, 0, len(req.LearningHighlights))
	for _, h := range req.LearningHighlights {
		highlights = append(highlights, learningHighlightDoc{
			ID:       h.ID,
			Title:    h.Title,
			Duration: h.Duration,
			Detail:   h.Detail,
		})
	}
	return &restaurantProfileDoc{
		DisplayName:        req.DisplayName,
		Tagline:            req.Tagline,
		Location:           req.Location,
		Seats:              req.Seats,
		CuisineTypes:       req.CuisineTypes,
		MentorshipStyle:    req.MentorshipStyle,
		Description:        req.Description,
		CultureKeywords:    req.CultureKeywords,
		Benefits:           req.Benefits,
		SupportPrograms:    req.SupportPrograms,
		LearningHighlights: highlights,
	}
}
