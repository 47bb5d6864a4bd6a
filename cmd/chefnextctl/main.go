// chefnextctl exercises the ChefNext SDK end to end: it registers a
// restaurant and a chef, creates both profiles, publishes a job, applies
// to it and accepts the application, logging each step. By default it
// talks to the server configured through the environment; with -local it
// runs entirely against the in-process conformance backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/chefnext/chefnext-go/pkg/chef"
	"github.com/chefnext/chefnext-go/pkg/chefnexttest"
	"github.com/chefnext/chefnext-go/pkg/config"
	"github.com/chefnext/chefnext-go/pkg/identity"
	"github.com/chefnext/chefnext-go/pkg/job"
	"github.com/chefnext/chefnext-go/pkg/restaurant"
	"github.com/chefnext/chefnext-go/pkg/transport"
)

func main() {
	local := flag.Bool("local", false, "run against an in-process backend instead of CHEFNEXT_BASE_URL")
	flag.Parse()

	cfg := config.Load()

	var httpDo transport.Doer
	baseURL := cfg.BaseURL
	if *local {
		httpDo = chefnexttest.NewServer().Client()
		log.Println("using in-process backend")
	} else {
		httpDo = &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}
		log.Printf("using backend at %s", baseURL)
	}

	identityClient := identity.NewClient(identity.Options{BaseURL: baseURL, HTTPClient: httpDo})
	chefClient := chef.NewClient(chef.Options{BaseURL: baseURL, HTTPClient: httpDo})
	restaurantClient := restaurant.NewClient(restaurant.Options{BaseURL: baseURL, HTTPClient: httpDo})
	jobClient := job.NewClient(job.Options{BaseURL: baseURL, HTTPClient: httpDo})

	ctx := context.Background()
	suffix := time.Now().UnixNano()

	restaurantAuth, err := identityClient.Register(ctx, identity.RegisterParams{
		Email:    fmt.Sprintf("bistro+%d@example.com", suffix),
		Password: "demo-password",
		Role:     identity.RoleRestaurant,
	})
	if err != nil {
		log.Fatalf("register restaurant: %v", err)
	}
	log.Printf("registered restaurant user %s", restaurantAuth.User.ID)

	chefAuth, err := identityClient.Register(ctx, identity.RegisterParams{
		Email:    fmt.Sprintf("chef+%d@example.com", suffix),
		Password: "demo-password",
		Role:     identity.RoleChef,
	})
	if err != nil {
		log.Fatalf("register chef: %v", err)
	}
	log.Printf("registered chef user %s", chefAuth.User.ID)

	restProfile, err := restaurantClient.CreateProfile(ctx, restaurant.CreateProfileParams{
		DisplayName:     "Bistro Demo",
		Tagline:         "seasonal plates",
		Location:        "Lyon",
		Seats:           28,
		CuisineTypes:    []string{"french"},
		MentorshipStyle: "hands-on",
		Description:     "A small demo bistro.",
	}, restaurantAuth.Tokens.AccessToken)
	if err != nil {
		log.Fatalf("create restaurant profile: %v", err)
	}
	log.Printf("created restaurant profile %s", restProfile.ID)

	chefProfile, err := chefClient.CreateProfile(ctx, chef.CreateProfileParams{
		FullName:        "Demo Chef",
		Headline:        "line cook studying pastry",
		Location:        "Lyon",
		YearsExperience: 3,
		Availability:    "full-time",
		Specialties:     []string{"pastry"},
		WorkAreas:       []string{"kitchen"},
		Languages:       []string{"fr", "en"},
	}, chefAuth.Tokens.AccessToken)
	if err != nil {
		log.Fatalf("create chef profile: %v", err)
	}
	log.Printf("created chef profile %s", chefProfile.ID)

	posting, err := jobClient.CreateJob(ctx, job.CreateJobParams{
		Title:          "Commis de cuisine",
		Description:    "Join the demo brigade.",
		RequiredSkills: []string{"pastry"},
		Location:       "Lyon",
		Status:         job.StatusPublished,
		Metadata:       job.Metadata{"source": "chefnextctl"},
	}, restaurantAuth.Tokens.AccessToken)
	if err != nil {
		log.Fatalf("create job: %v", err)
	}
	log.Printf("published job %s (%s)", posting.ID, posting.Status)

	results, err := jobClient.SearchJobs(ctx, job.SearchParams{Keyword: "brigade"}, chefAuth.Tokens.AccessToken)
	if err != nil {
		log.Fatalf("search jobs: %v", err)
	}
	log.Printf("search found %d job(s), total %d", len(results.Jobs), results.Total)

	application, err := jobClient.CreateApplication(ctx, job.CreateApplicationParams{
		JobID:       posting.ID,
		CoverLetter: "I would love to join.",
	}, chefAuth.Tokens.AccessToken)
	if err != nil {
		log.Fatalf("create application: %v", err)
	}
	log.Printf("created application %s (%s)", application.ID, application.Status)

	accepted, err := jobClient.UpdateApplicationStatus(ctx, job.UpdateApplicationStatusParams{
		ApplicationID: application.ID,
		Status:        job.ApplicationAccepted,
	}, restaurantAuth.Tokens.AccessToken)
	if err != nil {
		log.Fatalf("accept application: %v", err)
	}
	log.Printf("application %s is now %s", accepted.ID, accepted.Status)

	if err := identityClient.Logout(ctx, chefAuth.Tokens.RefreshToken); err != nil {
		log.Fatalf("logout chef: %v", err)
	}
	log.Println("done")
}
