package restaurant

import (
	"context"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

const (
	procCreateProfile  = "restaurant.v1.RestaurantProfileService/CreateProfile"
	procGetProfile     = "restaurant.v1.RestaurantProfileService/GetProfile"
	procGetMyProfile   = "restaurant.v1.RestaurantProfileService/GetMyProfile"
	procUpdateProfile  = "restaurant.v1.RestaurantProfileService/UpdateProfile"
	procSearchProfiles = "restaurant.v1.RestaurantProfileService/SearchProfiles"
)

const defaultSearchLimit = 10

// Options configures a Client. Zero values select the defaults of
// transport.New.
type Options struct {
	BaseURL    string
	HTTPClient transport.Doer
}

// Client calls restaurant.v1.RestaurantProfileService. It is stateless and
// safe to share.
type Client struct {
	rpc *transport.Client
}

func NewClient(opts Options) *Client {
	return &Client{rpc: transport.New(opts.BaseURL, opts.HTTPClient)}
}

func (c *Client) CreateProfile(ctx context.Context, params CreateProfileParams, accessToken string) (Profile, error) {
	var resp profileResponse
	if err := c.rpc.Invoke(ctx, procCreateProfile, toCreateRequest(params), &resp, accessToken); err != nil {
		return Profile{}, err
	}
	return fromWireProfile(resp.Profile), nil
}

func (c *Client) GetProfile(ctx context.Context, profileID, accessToken string) (Profile, error) {
	var resp profileResponse
	req := getProfileRequest{ProfileID: profileID}
	if err := c.rpc.Invoke(ctx, procGetProfile, req, &resp, accessToken); err != nil {
		return Profile{}, err
	}
	return fromWireProfile(resp.Profile), nil
}

// GetMyProfile resolves the profile owned by the token's subject. A
// not_found reply means the profile has not been created yet; it is passed
// through for the caller to branch on (transport.IsNotFound).
func (c *Client) GetMyProfile(ctx context.Context, accessToken string) (Profile, error) {
	var resp profileResponse
	if err := c.rpc.Invoke(ctx, procGetMyProfile, struct{}{}, &resp, accessToken); err != nil {
		return Profile{}, err
	}
	return fromWireProfile(resp.Profile), nil
}

func (c *Client) UpdateProfile(ctx context.Context, params UpdateProfileParams, accessToken string) (Profile, error) {
	var resp profileResponse
	if err := c.rpc.Invoke(ctx, procUpdateProfile, toUpdateRequest(params), &resp, accessToken); err != nil {
		return Profile{}, err
	}
	return fromWireProfile(resp.Profile), nil
}

func (c *Client) SearchProfiles(ctx context.Context, params SearchParams, accessToken string) ([]Profile, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	req := searchProfilesRequest{
		CuisineTypes: orEmpty(params.CuisineTypes),
		Name:         params.Name,
		Limit:        limit,
		Offset:       offset,
	}
	var resp searchProfilesResponse
	if err := c.rpc.Invoke(ctx, procSearchProfiles, req, &resp, accessToken); err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		profiles = append(profiles, fromWireProfile(p))
	}
	return profiles, nil
}
