package chefnexttest

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

type chefPortfolioItemReq struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

type chefProfileRequest struct {
	ProfileID       string                 `json:"profile_id"`
	FullName        string                 `json:"full_name"`
	Headline        string                 `json:"headline"`
	Summary         string                 `json:"summary"`
	Location        string                 `json:"location"`
	YearsExperience int                    `json:"years_experience"`
	Availability    string                 `json:"availability"`
	Specialties     []string               `json:"specialties"`
	WorkAreas       []string               `json:"work_areas"`
	Languages       []string               `json:"languages"`
	Bio             string                 `json:"bio"`
	LearningFocus   []string               `json:"learning_focus"`
	SkillTreeJSON   string                 `json:"skill_tree_json"`
	PortfolioItems  []chefPortfolioItemReq `json:"portfolio_items"`
}

type chefSearchRequest struct {
	Specialties []string `json:"specialties"`
	WorkAreas   []string `json:"work_areas"`
	Limit       int      `json:"limit"`
	Offset      int      `json:"offset"`
}

func (s *Server) createChefProfile(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	if user.role != "USER_ROLE_CHEF" {
		return permissionDenied(c, "only chef accounts can create a chef profile")
	}
	var req chefProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return invalidArgument(c, "full_name is required")
	}

	now := nowStamp()
	doc := chefDocFromRequest(req)
	doc.ID = uuid.NewString()
	doc.UserID = user.id
	doc.CreatedAt = now
	doc.UpdatedAt = now
	for i := range doc.PortfolioItems {
		doc.PortfolioItems[i].ID = uuid.NewString()
	}
	if err := s.store.createChefProfile(doc); err != nil {
		return rpcError(c, http.StatusConflict, transport.CodeAlreadyExists, "profile already exists")
	}
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) getChefProfile(c *fiber.Ctx) error {
	var req chefProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.chefProfileByID(req.ProfileID)
	if !ok {
		return notFound(c, "profile not found")
	}
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) getMyChefProfile(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	doc, ok := s.store.chefProfileByUser(user.id)
	if !ok {
		return notFound(c, "profile not found")
	}
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) updateChefProfile(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	var req chefProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.chefProfileByID(req.ProfileID)
	if !ok {
		return notFound(c, "profile not found")
	}
	if doc.UserID != user.id {
		return permissionDenied(c, "profile belongs to another user")
	}

	updated := chefDocFromRequest(req)
	updated.ID = doc.ID
	updated.UserID = doc.UserID
	updated.CreatedAt = doc.CreatedAt
	updated.UpdatedAt = nowStamp()
	// Empty item ids mark new entries; known ids are kept as-is.
	for i := range updated.PortfolioItems {
		if updated.PortfolioItems[i].ID == "" {
			updated.PortfolioItems[i].ID = uuid.NewString()
		}
	}
	*doc = *updated
	return c.JSON(fiber.Map{"profile": doc})
}

func (s *Server) searchChefProfiles(c *fiber.Ctx) error {
	var req chefSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	limit, offset := clampPage(req.Limit, req.Offset, 10)

	var matched []*chefProfileDoc
	for _, doc := range s.store.chefProfilesInOrder() {
		if len(req.Specialties) > 0 && !overlaps(doc.Specialties, req.Specialties) {
			continue
		}
		if len(req.WorkAreas) > 0 && !overlaps(doc.WorkAreas, req.WorkAreas) {
			continue
		}
		matched = append(matched, doc)
	}
	lo, hi := page(len(matched), limit, offset)
	profiles := matched[lo:hi]
	if profiles == nil {
		profiles = []*chefProfileDoc{}
	}
	return c.JSON(fiber.Map{"profiles": profiles})
}

func chefDocFromRequest(req chefProfileRequest) *chefProfileDoc {
	items := make([]portfolioItemDoc, 0, len(req.PortfolioItems))
	for _, item := range req.PortfolioItems {
		items = append(items, portfolioItemDoc{ID: item.ID, URL: item.URL, Caption: item.Caption})
	}
	return &chefProfileDoc{
		FullName:        req.FullName,
		Headline:        req.Headline,
		Summary:         req.Summary,
		Location:        req.Location,
		YearsExperience: req.YearsExperience,
		Availability:    req.Availability,
		Specialties:     req.Specialties,
		WorkAreas:       req.WorkAreas,
		Languages:       req.Languages,
		Bio:             req.Bio,
		LearningFocus:   req.LearningFocus,
		SkillTreeJSON:   req.SkillTreeJSON,
		PortfolioItems:  items,
	}
}

// overlaps reports whether any needle occurs in hay, case-insensitively.
func overlaps(hay, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.EqualFold(h, n) {
				return true
			}
		}
	}
	return false
}
