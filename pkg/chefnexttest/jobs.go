package chefnexttest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

var jobStatuses = map[string]bool{
	"JOB_STATUS_DRAFT":     true,
	"JOB_STATUS_PUBLISHED": true,
	"JOB_STATUS_CLOSED":    true,
}

var applicationStatuses = map[string]bool{
	"APPLICATION_STATUS_PENDING":  true,
	"APPLICATION_STATUS_ACCEPTED": true,
	"APPLICATION_STATUS_REJECTED": true,
}

type jobRequest struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location"`
	SalaryRange    string   `json:"salary_range"`
	EmploymentType string   `json:"employment_type"`
	Status         string   `json:"status"`
	MetadataJSON   string   `json:"metadata_json"`
}

type jobListRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type jobSearchRequest struct {
	Keyword        string   `json:"keyword"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location"`
	Limit          int      `json:"limit"`
	Offset         int      `json:"offset"`
}

type applicationRequest struct {
	JobID         string `json:"job_id"`
	CoverLetter   string `json:"cover_letter"`
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}

func (s *Server) createJob(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	profile, ok := s.store.restaurantProfileByUser(user.id)
	if !ok {
		return rpcError(c, http.StatusBadRequest, transport.CodeFailedPrecondition, "restaurant profile required")
	}
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return invalidArgument(c, "title and description are required")
	}
	status := req.Status
	if status == "" {
		status = "JOB_STATUS_DRAFT"
	}
	if !jobStatuses[status] {
		return invalidArgument(c, "unknown job status")
	}
	metadata := req.MetadataJSON
	if metadata == "" {
		metadata = "{}"
	}

	now := nowStamp()
	doc := &jobDoc{
		ID:             uuid.NewString(),
		RestaurantID:   profile.ID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		EmploymentType: req.EmploymentType,
		Status:         status,
		MetadataJSON:   metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
		ownerUserID:    user.id,
	}
	s.store.addJob(doc)
	return c.JSON(fiber.Map{"job": s.renderJob(doc)})
}

func (s *Server) updateJob(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.jobByID(req.JobID)
	if !ok {
		return notFound(c, "job not found")
	}
	if doc.ownerUserID != user.id {
		return permissionDenied(c, "job belongs to another restaurant")
	}

	// Absent fields are omitted by clients and left unchanged.
	if req.Title != "" {
		doc.Title = req.Title
	}
	if req.Description != "" {
		doc.Description = req.Description
	}
	if req.RequiredSkills != nil {
		doc.RequiredSkills = req.RequiredSkills
	}
	if req.Location != "" {
		doc.Location = req.Location
	}
	if req.SalaryRange != "" {
		doc.SalaryRange = req.SalaryRange
	}
	if req.EmploymentType != "" {
		doc.EmploymentType = req.EmploymentType
	}
	if req.Status != "" {
		if !jobStatuses[req.Status] {
			return invalidArgument(c, "unknown job status")
		}
		doc.Status = req.Status
	}
	if req.MetadataJSON != "" {
		doc.MetadataJSON = req.MetadataJSON
	}
	doc.UpdatedAt = nowStamp()
	return c.JSON(fiber.Map{"job": s.renderJob(doc)})
}

func (s *Server) getJob(c *fiber.Ctx) error {
	var req jobRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.jobByID(req.JobID)
	if !ok {
		return notFound(c, "job not found")
	}
	return c.JSON(fiber.Map{"job": s.renderJob(doc)})
}

func (s *Server) listMyJobs(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	var req jobListRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	limit, offset := clampPage(req.Limit, req.Offset, 20)

	var matched []*jobDoc
	for _, doc := range s.store.jobsInOrder() {
		if doc.ownerUserID == user.id {
			matched = append(matched, doc)
		}
	}
	return s.renderJobList(c, matched, limit, offset)
}

func (s *Server) searchJobs(c *fiber.Ctx) error {
	var req jobSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	limit, offset := clampPage(req.Limit, req.Offset, 20)
	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))
	location := strings.ToLower(strings.TrimSpace(req.Location))

	var matched []*jobDoc
	for _, doc := range s.store.jobsInOrder() {
		if doc.Status != "JOB_STATUS_PUBLISHED" {
			continue
		}
		if keyword != "" &&
			!strings.Contains(strings.ToLower(doc.Title), keyword) &&
			!strings.Contains(strings.ToLower(doc.Description), keyword) {
			continue
		}
		if len(req.RequiredSkills) > 0 && !overlaps(doc.RequiredSkills, req.RequiredSkills) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(doc.Location), location) {
			continue
		}
		matched = append(matched, doc)
	}
	return s.renderJobList(c, matched, limit, offset)
}

func (s *Server) createApplication(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	profile, ok := s.store.chefProfileByUser(user.id)
	if !ok {
		return rpcError(c, http.StatusBadRequest, transport.CodeFailedPrecondition, "chef profile required")
	}
	var req applicationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	job, ok := s.store.jobByID(req.JobID)
	if !ok {
		return notFound(c, "job not found")
	}
	if job.Status != "JOB_STATUS_PUBLISHED" {
		return rpcError(c, http.StatusBadRequest, transport.CodeFailedPrecondition, "job is not accepting applications")
	}
	if _, ok := s.store.applicationForChefAndJob(profile.ID, job.ID); ok {
		return rpcError(c, http.StatusConflict, transport.CodeAlreadyExists, "application already exists")
	}

	now := nowStamp()
	doc := &applicationDoc{
		ID:            uuid.NewString(),
		JobID:         job.ID,
		ChefProfileID: profile.ID,
		Status:        "APPLICATION_STATUS_PENDING",
		CoverLetter:   req.CoverLetter,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.store.addApplication(doc)
	return c.JSON(fiber.Map{"application": s.renderApplication(doc)})
}

func (s *Server) listApplicationsForChef(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	profile, ok := s.store.chefProfileByUser(user.id)
	if !ok {
		return rpcError(c, http.StatusBadRequest, transport.CodeFailedPrecondition, "chef profile required")
	}
	var req jobListRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	limit, offset := clampPage(req.Limit, req.Offset, 20)

	var matched []*applicationDoc
	for _, doc := range s.store.applicationsInOrder() {
		if doc.ChefProfileID == profile.ID {
			matched = append(matched, doc)
		}
	}
	return s.renderApplicationList(c, matched, limit, offset)
}

func (s *Server) listApplicationsForRestaurant(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	var req jobListRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	limit, offset := clampPage(req.Limit, req.Offset, 20)

	var matched []*applicationDoc
	for _, doc := range s.store.applicationsInOrder() {
		job, ok := s.store.jobByID(doc.JobID)
		if ok && job.ownerUserID == user.id {
			matched = append(matched, doc)
		}
	}
	return s.renderApplicationList(c, matched, limit, offset)
}

func (s *Server) updateApplicationStatus(c *fiber.Ctx) error {
	user, ok := s.authedUser(c)
	if !ok {
		return unauthenticated(c, "invalid or missing access token")
	}
	var req applicationRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidArgument(c, "invalid JSON payload")
	}
	doc, ok := s.store.applicationByID(req.ApplicationID)
	if !ok {
		return notFound(c, "application not found")
	}
	job, ok := s.store.jobByID(doc.JobID)
	if !ok || job.ownerUserID != user.id {
		return permissionDenied(c, "application belongs to another restaurant's job")
	}
	if !applicationStatuses[req.Status] {
		return invalidArgument(c, "unknown application status")
	}
	doc.Status = req.Status
	doc.UpdatedAt = nowStamp()
	return c.JSON(fiber.Map{"application": s.renderApplication(doc)})
}

func (s *Server) renderJob(doc *jobDoc) jobView {
	view := jobView{jobDoc: *doc}
	if profile, ok := s.store.restaurantProfileByID(doc.RestaurantID); ok {
		view.Restaurant = &restaurantSummaryDoc{
			ID:          profile.ID,
			DisplayName: profile.DisplayName,
			Tagline:     profile.Tagline,
			Location:    profile.Location,
		}
	}
	return view
}

func (s *Server) renderJobList(c *fiber.Ctx, matched []*jobDoc, limit, offset int) error {
	lo, hi := page(len(matched), limit, offset)
	jobs := make([]jobView, 0, hi-lo)
	for _, doc := range matched[lo:hi] {
		jobs = append(jobs, s.renderJob(doc))
	}
	// int64 totals travel as strings in protobuf JSON.
	return c.JSON(fiber.Map{
		"jobs":        jobs,
		"total_count": strconv.Itoa(len(matched)),
	})
}

func (s *Server) renderApplication(doc *applicationDoc) applicationView {
	view := applicationView{applicationDoc: *doc}
	if job, ok := s.store.jobByID(doc.JobID); ok {
		summary := &jobSummaryDoc{ID: job.ID, Title: job.Title, Status: job.Status}
		if profile, ok := s.store.restaurantProfileByID(job.RestaurantID); ok {
			summary.RestaurantName = profile.DisplayName
		}
		view.Job = summary
	}
	if profile, ok := s.store.chefProfileByID(doc.ChefProfileID); ok {
		view.Chef = &chefSummaryDoc{
			ProfileID: profile.ID,
			FullName:  profile.FullName,
			Location:  profile.Location,
		}
	}
	return view
}

func (s *Server) renderApplicationList(c *fiber.Ctx, matched []*applicationDoc, limit, offset int) error {
	lo, hi := page(len(matched), limit, offset)
	apps := make([]applicationView, 0, hi-lo)
	for _, doc := range matched[lo:hi] {
		apps = append(apps, s.renderApplication(doc))
	}
	return c.JSON(fiber.Map{"applications": apps})
}
