package job

import (
	"context"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

const (
	procCreateJob               = "job.v1.JobService/CreateJob"
	procUpdateJob               = "job.v1.JobService/UpdateJob"
	procGetJob                  = "job.v1.JobService/GetJob"
	procListMyJobs              = "job.v1.JobService/ListMyJobs"
	procSearchJobs              = "job.v1.JobService/SearchJobs"
	procCreateApplication       = "job.v1.JobService/CreateApplication"
	procListApplicationsForChef = "job.v1.JobService/ListApplicationsForChef"
	procListApplicationsForRest = "job.v1.JobService/ListApplicationsForRestaurant"
	procUpdateApplicationStatus = "job.v1.JobService/UpdateApplicationStatus"
)

// Options configures a Client. Zero values select the defaults of
// transport.New.
type Options struct {
	BaseURL    string
	HTTPClient transport.Doer
}

// Client calls job.v1.JobService. It is stateless and safe to share.
type Client struct {
	rpc *transport.Client
}

func NewClient(opts Options) *Client {
	return &Client{rpc: transport.New(opts.BaseURL, opts.HTTPClient)}
}

func (c *Client) CreateJob(ctx context.Context, params CreateJobParams, accessToken string) (Job, error) {
	req := createJobRequest{
		Title:          params.Title,
		Description:    params.Description,
		RequiredSkills: params.RequiredSkills,
		Location:       params.Location,
		SalaryRange:    params.SalaryRange,
		EmploymentType: params.EmploymentType,
		MetadataJSON:   stringifyMetadata(params.Metadata),
	}
	if params.Status != "" {
		req.Status = params.Status.Wire()
	}
	var resp jobResponse
	if err := c.rpc.Invoke(ctx, procCreateJob, req, &resp, accessToken); err != nil {
		return Job{}, err
	}
	return fromWireJob(resp.Job), nil
}

func (c *Client) UpdateJob(ctx context.Context, params UpdateJobParams, accessToken string) (Job, error) {
	req := updateJobRequest{
		JobID:          params.JobID,
		Title:          params.Title,
		Description:    params.Description,
		RequiredSkills: params.RequiredSkills,
		Location:       params.Location,
		SalaryRange:    params.SalaryRange,
		EmploymentType: params.EmploymentType,
		MetadataJSON:   stringifyMetadata(params.Metadata),
	}
	if params.Status != "" {
		req.Status = params.Status.Wire()
	}
	var resp jobResponse
	if err := c.rpc.Invoke(ctx, procUpdateJob, req, &resp, accessToken); err != nil {
		return Job{}, err
	}
	return fromWireJob(resp.Job), nil
}

func (c *Client) GetJob(ctx context.Context, jobID, accessToken string) (Job, error) {
	var resp jobResponse
	if err := c.rpc.Invoke(ctx, procGetJob, getJobRequest{JobID: jobID}, &resp, accessToken); err != nil {
		return Job{}, err
	}
	return fromWireJob(resp.Job), nil
}

// ListMyJobs pages through the postings owned by the caller's restaurant.
func (c *Client) ListMyJobs(ctx context.Context, params ListParams, accessToken string) (ListResult, error) {
	req := listRequest{Limit: params.Limit, Offset: params.Offset}
	var resp jobListResponse
	if err := c.rpc.Invoke(ctx, procListMyJobs, req, &resp, accessToken); err != nil {
		return ListResult{}, err
	}
	return toListResult(resp), nil
}

func (c *Client) SearchJobs(ctx context.Context, params SearchParams, accessToken string) (ListResult, error) {
	req := searchJobsRequest{
		Keyword:        params.Keyword,
		RequiredSkills: params.RequiredSkills,
		Location:       params.Location,
		Limit:          params.Limit,
		Offset:         params.Offset,
	}
	var resp jobListResponse
	if err := c.rpc.Invoke(ctx, procSearchJobs, req, &resp, accessToken); err != nil {
		return ListResult{}, err
	}
	return toListResult(resp), nil
}

func (c *Client) CreateApplication(ctx context.Context, params CreateApplicationParams, accessToken string) (Application, error) {
	req := createApplicationRequest{JobID: params.JobID, CoverLetter: params.CoverLetter}
	var resp applicationResponse
	if err := c.rpc.Invoke(ctx, procCreateApplication, req, &resp, accessToken); err != nil {
		return Application{}, err
	}
	return fromWireApplication(resp.Application), nil
}

// ListApplicationsForChef returns the caller's own applications, each with
// a job summary when the server embeds one.
func (c *Client) ListApplicationsForChef(ctx context.Context, params ListParams, accessToken string) ([]Application, error) {
	return c.listApplications(ctx, procListApplicationsForChef, params, accessToken)
}

// ListApplicationsForRestaurant returns applications to the caller's
// postings, each with job and chef summaries when embedded.
func (c *Client) ListApplicationsForRestaurant(ctx context.Context, params ListParams, accessToken string) ([]Application, error) {
	return c.listApplications(ctx, procListApplicationsForRest, params, accessToken)
}

func (c *Client) listApplications(ctx context.Context, procedure string, params ListParams, accessToken string) ([]Application, error) {
	req := listRequest{Limit: params.Limit, Offset: params.Offset}
	var resp applicationListResponse
	if err := c.rpc.Invoke(ctx, procedure, req, &resp, accessToken); err != nil {
		return nil, err
	}
	apps := make([]Application, 0, len(resp.Applications))
	for _, a := range resp.Applications {
		apps = append(apps, fromWireApplication(a))
	}
	return apps, nil
}

func (c *Client) UpdateApplicationStatus(ctx context.Context, params UpdateApplicationStatusParams, accessToken string) (Application, error) {
	req := updateApplicationStatusRequest{
		ApplicationID: params.ApplicationID,
		Status:        params.Status.Wire(),
	}
	var resp applicationResponse
	if err := c.rpc.Invoke(ctx, procUpdateApplicationStatus, req, &resp, accessToken); err != nil {
		return Application{}, err
	}
	return fromWireApplication(resp.Application), nil
}

func toListResult(resp jobListResponse) ListResult {
	jobs := make([]Job, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		jobs = append(jobs, fromWireJob(j))
	}
	return ListResult{Jobs: jobs, Total: int(resp.TotalCount)}
}
