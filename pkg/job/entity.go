// Package job is the typed client for job.v1.JobService: job postings and
// job applications.
package job

import "fmt"

// JobStatus is the lifecycle state of a posting.
type JobStatus string

const (
	StatusDraft     JobStatus = "DRAFT"
	StatusPublished JobStatus = "PUBLISHED"
	StatusClosed    JobStatus = "CLOSED"
)

var jobStatusToWire = map[JobStatus]string{
	StatusDraft:     "JOB_STATUS_DRAFT",
	StatusPublished: "JOB_STATUS_PUBLISHED",
	StatusClosed:    "JOB_STATUS_CLOSED",
}

var wireToJobStatus = map[string]JobStatus{
	"JOB_STATUS_DRAFT":     StatusDraft,
	"JOB_STATUS_PUBLISHED": StatusPublished,
	"JOB_STATUS_CLOSED":    StatusClosed,
}

// Wire returns the proto-style string encoding of the status.
func (s JobStatus) Wire() string { return jobStatusToWire[s] }

// JobStatusFromWire decodes a wire status. Unknown or missing values fall
// back to StatusDraft.
func JobStatusFromWire(s string) JobStatus {
	if status, ok := wireToJobStatus[s]; ok {
		return status
	}
	return StatusDraft
}

// ParseJobStatusWire is the strict variant of JobStatusFromWire.
func ParseJobStatusWire(s string) (JobStatus, error) {
	if status, ok := wireToJobStatus[s]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// ApplicationStatus is the state of a chef's application to a job.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationAccepted ApplicationStatus = "ACCEPTED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

var applicationStatusToWire = map[ApplicationStatus]string{
	ApplicationPending:  "APPLICATION_STATUS_PENDING",
	ApplicationAccepted: "APPLICATION_STATUS_ACCEPTED",
	ApplicationRejected: "APPLICATION_STATUS_REJECTED",
}

var wireToApplicationStatus = map[string]ApplicationStatus{
	"APPLICATION_STATUS_PENDING":  ApplicationPending,
	"APPLICATION_STATUS_ACCEPTED": ApplicationAccepted,
	"APPLICATION_STATUS_REJECTED": ApplicationRejected,
}

// Wire returns the proto-style string encoding of the status.
func (s ApplicationStatus) Wire() string { return applicationStatusToWire[s] }

// ApplicationStatusFromWire decodes a wire status. Unknown or missing
// values fall back to ApplicationPending.
func ApplicationStatusFromWire(s string) ApplicationStatus {
	if status, ok := wireToApplicationStatus[s]; ok {
		return status
	}
	return ApplicationPending
}

// ParseApplicationStatusWire is the strict variant of
// ApplicationStatusFromWire.
func ParseApplicationStatusWire(s string) (ApplicationStatus, error) {
	if status, ok := wireToApplicationStatus[s]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// Metadata is the free-form metadata object attached to a job. It is
// serialized to a JSON string on the wire and is never nil on the domain
// side.
type Metadata map[string]any

// Job is a posting. Restaurant* fields come from the optional restaurant
// summary embedded in responses and stay empty when the server omits it.
type Job struct {
	ID                 string
	RestaurantID       string
	RestaurantName     string
	RestaurantLocation string
	RestaurantTagline  string
	Title              string
	Description        string
	RequiredSkills     []string
	Location           string
	SalaryRange        string
	EmploymentType     string
	Status             JobStatus
	Metadata           Metadata
	CreatedAt          string
	UpdatedAt          string
}

// JobSummary is the partial job projection embedded in applications.
type JobSummary struct {
	ID             string
	Title          string
	Status         JobStatus
	RestaurantName string
}

// ChefSummary is the partial chef projection embedded in applications.
type ChefSummary struct {
	ProfileID string
	FullName  string
	Location  string
}

// Application is a chef's application to a job. Job and Chef are set only
// when the server embeds the matching summary.
type Application struct {
	ID            string
	JobID         string
	ChefProfileID string
	Status        ApplicationStatus
	CoverLetter   string
	CreatedAt     string
	UpdatedAt     string
	Job           *JobSummary
	Chef          *ChefSummary
}

// ListResult pairs one page of jobs with the total match count.
type ListResult struct {
	Jobs  []Job
	Total int
}

// CreateJobParams creates a posting. Leaving Status empty lets the server
// default it (drafts); Metadata may be nil.
type CreateJobParams struct {
	Title          string
	Description    string
	RequiredSkills []string
	Location       string
	SalaryRange    string
	EmploymentType string
	Status         JobStatus
	Metadata       Metadata
}

// UpdateJobParams updates a posting. Zero-valued fields are omitted from
// the request and left unchanged server-side.
type UpdateJobParams struct {
	JobID          string
	Title          string
	Description    string
	RequiredSkills []string
	Location       string
	SalaryRange    string
	EmploymentType string
	Status         JobStatus
	Metadata       Metadata
}

// ListParams pages through a listing. Zero values are omitted and the
// server applies its own defaults.
type ListParams struct {
	Limit  int
	Offset int
}

// SearchParams filters the public job search.
type SearchParams struct {
	Keyword        string
	RequiredSkills []string
	Location       string
	Limit          int
	Offset         int
}

type CreateApplicationParams struct {
	JobID       string
	CoverLetter string
}

type UpdateApplicationStatusParams struct {
	ApplicationID string
	Status        ApplicationStatus
}
