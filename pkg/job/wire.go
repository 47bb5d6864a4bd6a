package job

import (
	"encoding/json"
	"strconv"
)

type wireRestaurantSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Tagline     string `json:"tagline"`
	Location    string `json:"location"`
}

type wireJob struct {
	ID             string                 `json:"id"`
	RestaurantID   string                 `json:"restaurant_id"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	RequiredSkills []string               `json:"required_skills"`
	Location       string                 `json:"location"`
	SalaryRange    string                 `json:"salary_range"`
	EmploymentType string                 `json:"employment_type"`
	Status         string                 `json:"status"`
	MetadataJSON   string                 `json:"metadata_json"`
	CreatedAt      string                 `json:"created_at"`
	UpdatedAt      string                 `json:"updated_at"`
	Restaurant     *wireRestaurantSummary `json:"restaurant"`
}

type wireJobSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	RestaurantName string `json:"restaurant_name"`
}

type wireChefSummary struct {
	ProfileID string `json:"profile_id"`
	FullName  string `json:"full_name"`
	Location  string `json:"location"`
}

type wireApplication struct {
	ID            string           `json:"id"`
	JobID         string           `json:"job_id"`
	ChefProfileID string           `json:"chef_profile_id"`
	Status        string           `json:"status"`
	CoverLetter   string           `json:"cover_letter"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
	Job           *wireJobSummary  `json:"job"`
	Chef          *wireChefSummary `json:"chef"`
}

type createJobRequest struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Location       string   `json:"location,omitempty"`
	SalaryRange    string   `json:"salary_range,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Status         string   `json:"status,omitempty"`
	MetadataJSON   string   `json:"metadata_json,omitempty"`
}

type updateJobRequest struct {
	JobID          string   `json:"job_id"`
	Title          string   `json:"title,omitempty"`
	Description    string   `json:"description,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Location       string   `json:"location,omitempty"`
	SalaryRange    string   `json:"salary_range,omitempty"`
	EmploymentType string   `json:"employment_type,omitempty"`
	Status         string   `json:"status,omitempty"`
	MetadataJSON   string   `json:"metadata_json,omitempty"`
}

type getJobRequest struct {
	JobID string `json:"job_id"`
}

type listRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

type searchJobsRequest struct {
	Keyword        string   `json:"keyword,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	Location       string   `json:"location,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Offset         int      `json:"offset,omitempty"`
}

type createApplicationRequest struct {
	JobID       string `json:"job_id"`
	CoverLetter string `json:"cover_letter,omitempty"`
}

type updateApplicationStatusRequest struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
}

type jobResponse struct {
	Job wireJob `json:"job"`
}

type jobListResponse struct {
	Jobs       []wireJob  `json:"jobs"`
	TotalCount totalCount `json:"total_count"`
}

type applicationResponse struct {
	Application wireApplication `json:"application"`
}

type applicationListResponse struct {
	Applications []wireApplication `json:"applications"`
}

// totalCount tolerates both plain JSON numbers and the protobuf JSON
// convention of encoding int64 as a decimal string. Anything non-numeric
// decodes to 0, never to an error.
type totalCount int

func (t *totalCount) UnmarshalJSON(data []byte) error {
	*t = 0
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = totalCount(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(s); err == nil {
			*t = totalCount(n)
		}
	}
	return nil
}

// stringifyMetadata encodes metadata for the wire. nil maps to "" so the
// field is omitted; a marshal failure degrades to an empty object.
func stringifyMetadata(m Metadata) string {
	if m == nil {
		return ""
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// ParseMetadata decodes a metadata_json wire value. Empty, malformed or
// null payloads all decode to an empty map, so callers always hold a plain
// object.
func ParseMetadata(raw string) Metadata {
	if raw == "" {
		return Metadata{}
	}
	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return Metadata{}
	}
	return m
}

// ParseMetadataStrict is the strict variant of ParseMetadata, for callers
// that want malformed metadata surfaced instead of swallowed.
func ParseMetadataStrict(raw string) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = Metadata{}
	}
	return m, nil
}

func fromWireJob(j wireJob) Job {
	out := Job{
		ID:             j.ID,
		RestaurantID:   j.RestaurantID,
		Title:          j.Title,
		Description:    j.Description,
		RequiredSkills: orEmpty(j.RequiredSkills),
		Location:       j.Location,
		SalaryRange:    j.SalaryRange,
		EmploymentType: j.EmploymentType,
		Status:         JobStatusFromWire(j.Status),
		Metadata:       ParseMetadata(j.MetadataJSON),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
	if j.Restaurant != nil {
		out.RestaurantName = j.Restaurant.DisplayName
		out.RestaurantLocation = j.Restaurant.Location
		out.RestaurantTagline = j.Restaurant.Tagline
	}
	return out
}

func fromWireApplication(a wireApplication) Application {
	out := Application{
		ID:            a.ID,
		JobID:         a.JobID,
		ChefProfileID: a.ChefProfileID,
		Status:        ApplicationStatusFromWire(a.Status),
		CoverLetter:   a.CoverLetter,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.Job != nil {
		out.Job = &JobSummary{
			ID:             a.Job.ID,
			Title:          a.Job.Title,
			Status:         JobStatusFromWire(a.Job.Status),
			RestaurantName: a.Job.RestaurantName,
		}
	}
	if a.Chef != nil {
		out.Chef = &ChefSummary{
			ProfileID: a.Chef.ProfileID,
			FullName:  a.Chef.FullName,
			Location:  a.Chef.Location,
		}
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
