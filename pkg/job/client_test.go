package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefnext/chefnext-go/pkg/chef"
	"github.com/chefnext/chefnext-go/pkg/chefnexttest"
	"github.com/chefnext/chefnext-go/pkg/identity"
	"github.com/chefnext/chefnext-go/pkg/restaurant"
	"github.com/chefnext/chefnext-go/pkg/transport"
)

type fixture struct {
	srv             *chefnexttest.Server
	jobs            *Client
	restaurantToken string
	chefToken       string
	restaurantName  string
	chefProfileID   string
}

// newFixture registers a restaurant and a chef, each with a profile, so
// job operations have both sides of the marketplace available.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	srv := chefnexttest.NewServer()
	ids := identity.NewClient(identity.Options{HTTPClient: srv.Client()})

	restAuth, err := ids.Register(ctx, identity.RegisterParams{
		Email:    "kitchen@example.com",
		Password: "secret123",
		Role:     identity.RoleRestaurant,
	})
	require.NoError(t, err)
	_, err = restaurant.NewClient(restaurant.Options{HTTPClient: srv.Client()}).
		CreateProfile(ctx, restaurant.CreateProfileParams{
			DisplayName:  "Nonna",
			Tagline:      "slow food",
			Location:     "Bologna",
			CuisineTypes: []string{"italian"},
		}, restAuth.Tokens.AccessToken)
	require.NoError(t, err)

	chefAuth, err := ids.Register(ctx, identity.RegisterParams{
		Email:    "cook@example.com",
		Password: "secret123",
		Role:     identity.RoleChef,
	})
	require.NoError(t, err)
	chefProfile, err := chef.NewClient(chef.Options{HTTPClient: srv.Client()}).
		CreateProfile(ctx, chef.CreateProfileParams{
			FullName:    "Aiko Tanaka",
			Location:    "Osaka",
			Specialties: []string{"pasta"},
		}, chefAuth.Tokens.AccessToken)
	require.NoError(t, err)

	return &fixture{
		srv:             srv,
		jobs:            NewClient(Options{HTTPClient: srv.Client()}),
		restaurantToken: restAuth.Tokens.AccessToken,
		chefToken:       chefAuth.Tokens.AccessToken,
		restaurantName:  "Nonna",
		chefProfileID:   chefProfile.ID,
	}
}

func TestJobLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.jobs.CreateJob(ctx, CreateJobParams{
		Title:          "Pasta station",
		Description:    "Fresh pasta daily.",
		RequiredSkills: []string{"pasta"},
		Location:       "Bologna",
		SalaryRange:    "2000-2400",
		EmploymentType: "full-time",
		Metadata:       Metadata{"shift": "evening"},
	}, f.restaurantToken)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, StatusDraft, created.Status, "status defaults to draft when omitted")
	assert.Equal(t, Metadata{"shift": "evening"}, created.Metadata)
	assert.Equal(t, f.restaurantName, created.RestaurantName)
	assert.Equal(t, "Bologna", created.RestaurantLocation)

	// Drafts are invisible to the public search.
	hidden, err := f.jobs.SearchJobs(ctx, SearchParams{Keyword: "pasta"}, "")
	require.NoError(t, err)
	assert.Empty(t, hidden.Jobs)
	assert.Equal(t, 0, hidden.Total)

	published, err := f.jobs.UpdateJob(ctx, UpdateJobParams{
		JobID:  created.ID,
		Status: StatusPublished,
	}, f.restaurantToken)
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, published.Status)
	assert.Equal(t, "Pasta station", published.Title, "unsent fields stay unchanged")
	assert.Equal(t, Metadata{"shift": "evening"}, published.Metadata)

	found, err := f.jobs.SearchJobs(ctx, SearchParams{Keyword: "pasta"}, "")
	require.NoError(t, err)
	require.Len(t, found.Jobs, 1)
	assert.Equal(t, 1, found.Total, "string-encoded total_count is coerced")

	mine, err := f.jobs.ListMyJobs(ctx, ListParams{}, f.restaurantToken)
	require.NoError(t, err)
	require.Len(t, mine.Jobs, 1)
	assert.Equal(t, 1, mine.Total)

	got, err := f.jobs.GetJob(ctx, created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.jobs.GetJob(ctx, "missing", "")
	assert.True(t, transport.IsNotFound(err))

	// Only the owning restaurant can edit a posting.
	_, err = f.jobs.UpdateJob(ctx, UpdateJobParams{JobID: created.ID, Title: "Hijack"}, f.chefToken)
	assert.True(t, transport.IsCode(err, transport.CodePermissionDenied))

	// Posting requires a restaurant profile.
	_, err = f.jobs.CreateJob(ctx, CreateJobParams{Title: "x", Description: "y"}, f.chefToken)
	assert.True(t, transport.IsCode(err, transport.CodeFailedPrecondition))
}

func TestSearchJobsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, params := range []CreateJobParams{
		{Title: "Grill lead", Description: "charcoal", RequiredSkills: []string{"grill"}, Location: "Bologna", Status: StatusPublished},
		{Title: "Pastry commis", Description: "lamination", RequiredSkills: []string{"pastry"}, Location: "Modena", Status: StatusPublished},
		{Title: "Closed role", Description: "gone", Status: StatusClosed},
	} {
		_, err := f.jobs.CreateJob(ctx, params, f.restaurantToken)
		require.NoError(t, err)
	}

	bySkill, err := f.jobs.SearchJobs(ctx, SearchParams{RequiredSkills: []string{"pastry"}}, "")
	require.NoError(t, err)
	require.Len(t, bySkill.Jobs, 1)
	assert.Equal(t, "Pastry commis", bySkill.Jobs[0].Title)

	byLocation, err := f.jobs.SearchJobs(ctx, SearchParams{Location: "bologna"}, "")
	require.NoError(t, err)
	require.Len(t, byLocation.Jobs, 1)
	assert.Equal(t, "Grill lead", byLocation.Jobs[0].Title)

	all, err := f.jobs.SearchJobs(ctx, SearchParams{}, "")
	require.NoError(t, err)
	assert.Len(t, all.Jobs, 2, "closed postings stay hidden")
	assert.Equal(t, 2, all.Total)

	paged, err := f.jobs.SearchJobs(ctx, SearchParams{Limit: 1, Offset: 1}, "")
	require.NoError(t, err)
	require.Len(t, paged.Jobs, 1)
	assert.Equal(t, 2, paged.Total, "total reflects all matches, not the page")
}

func TestApplicationFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	posting, err := f.jobs.CreateJob(ctx, CreateJobParams{
		Title:       "Pasta station",
		Description: "Fresh pasta daily.",
		Status:      StatusPublished,
	}, f.restaurantToken)
	require.NoError(t, err)

	application, err := f.jobs.CreateApplication(ctx, CreateApplicationParams{
		JobID:       posting.ID,
		CoverLetter: "I make good tortellini.",
	}, f.chefToken)
	require.NoError(t, err)
	assert.Equal(t, ApplicationPending, application.Status)
	assert.Equal(t, f.chefProfileID, application.ChefProfileID)
	require.NotNil(t, application.Job)
	assert.Equal(t, posting.ID, application.Job.ID)
	assert.Equal(t, f.restaurantName, application.Job.RestaurantName)

	// One application per chef per job.
	_, err = f.jobs.CreateApplication(ctx, CreateApplicationParams{JobID: posting.ID}, f.chefToken)
	assert.True(t, transport.IsCode(err, transport.CodeAlreadyExists))

	forChef, err := f.jobs.ListApplicationsForChef(ctx, ListParams{}, f.chefToken)
	require.NoError(t, err)
	require.Len(t, forChef, 1)
	require.NotNil(t, forChef[0].Job)
	assert.Equal(t, StatusPublished, forChef[0].Job.Status)

	forRestaurant, err := f.jobs.ListApplicationsForRestaurant(ctx, ListParams{}, f.restaurantToken)
	require.NoError(t, err)
	require.Len(t, forRestaurant, 1)
	require.NotNil(t, forRestaurant[0].Chef)
	assert.Equal(t, "Aiko Tanaka", forRestaurant[0].Chef.FullName)

	// Only the restaurant behind the job can decide the application.
	_, err = f.jobs.UpdateApplicationStatus(ctx, UpdateApplicationStatusParams{
		ApplicationID: application.ID,
		Status:        ApplicationAccepted,
	}, f.chefToken)
	assert.True(t, transport.IsCode(err, transport.CodePermissionDenied))

	accepted, err := f.jobs.UpdateApplicationStatus(ctx, UpdateApplicationStatusParams{
		ApplicationID: application.ID,
		Status:        ApplicationAccepted,
	}, f.restaurantToken)
	require.NoError(t, err)
	assert.Equal(t, ApplicationAccepted, accepted.Status)

	// Applying to a draft posting is rejected.
	draft, err := f.jobs.CreateJob(ctx, CreateJobParams{Title: "Draft", Description: "soon"}, f.restaurantToken)
	require.NoError(t, err)
	_, err = f.jobs.CreateApplication(ctx, CreateApplicationParams{JobID: draft.ID}, f.chefToken)
	assert.True(t, transport.IsCode(err, transport.CodeFailedPrecondition))
}
