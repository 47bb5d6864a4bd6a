// Package chefnexttest hosts an in-memory implementation of the whole
// ChefNext RPC surface (identity, chef profiles, restaurant profiles,
// jobs) on Fiber. The SDK test suites run against it through Server.Client
// without opening a socket, and cmd/chefnextctl can serve it locally.
//
// Behavior mirrors the production services: real HS256 access tokens,
// bcrypt password hashes, opaque rotating refresh tokens, server-assigned
// UUID ids, Connect-style {code, message} error bodies, and total_count
// encoded as a string per the protobuf JSON convention for int64.
package chefnexttest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/chefnext/chefnext-go/pkg/transport"
)

const (
	testSecret = "chefnext-test-secret"
	testIssuer = "chefnext-test"
)

// Server is one isolated in-memory backend. Each NewServer call starts
// from an empty state.
type Server struct {
	app    *fiber.App
	secret []byte
	issuer string
	ttl    time.Duration
	store  *store
}

func NewServer() *Server {
	s := &Server{
		app:    fiber.New(fiber.Config{DisableStartupMessage: true}),
		secret: []byte(testSecret),
		issuer: testIssuer,
		ttl:    time.Hour,
		store:  newStore(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Post("/identity.v1.AuthService/Register", s.register)
	s.app.Post("/identity.v1.AuthService/Login", s.login)
	s.app.Post("/identity.v1.AuthService/RefreshToken", s.refreshToken)
	s.app.Post("/identity.v1.AuthService/Logout", s.logout)
	s.app.Post("/identity.v1.AuthService/GetMe", s.getMe)

	s.app.Post("/chef.v1.ChefProfileService/CreateProfile", s.createChefProfile)
	s.app.Post("/chef.v1.ChefProfileService/GetProfile", s.getChefProfile)
	s.app.Post("/chef.v1.ChefProfileService/GetMyProfile", s.getMyChefProfile)
	s.app.Post("/chef.v1.ChefProfileService/UpdateProfile", s.updateChefProfile)
	s.app.Post("/chef.v1.ChefProfileService/SearchProfiles", s.searchChefProfiles)

	s.app.Post("/restaurant.v1.RestaurantProfileService/CreateProfile", s.createRestaurantProfile)
	s.app.Post("/restaurant.v1.RestaurantProfileService/GetProfile", s.getRestaurantProfile)
	s.app.Post("/restaurant.v1.RestaurantProfileService/GetMyProfile", s.getMyRestaurantProfile)
	s.app.Post("/restaurant.v1.RestaurantProfileService/UpdateProfile", s.updateRestaurantProfile)
	s.app.Post("/restaurant.v1.RestaurantProfileService/SearchProfiles", s.searchRestaurantProfiles)

	s.app.Post("/job.v1.JobService/CreateJob", s.createJob)
	s.app.Post("/job.v1.JobService/UpdateJob", s.updateJob)
	s.app.Post("/job.v1.JobService/GetJob", s.getJob)
	s.app.Post("/job.v1.JobService/ListMyJobs", s.listMyJobs)
	s.app.Post("/job.v1.JobService/SearchJobs", s.searchJobs)
	s.app.Post("/job.v1.JobService/CreateApplication", s.createApplication)
	s.app.Post("/job.v1.JobService/ListApplicationsForChef", s.listApplicationsForChef)
	s.app.Post("/job.v1.JobService/ListApplicationsForRestaurant", s.listApplicationsForRestaurant)
	s.app.Post("/job.v1.JobService/UpdateApplicationStatus", s.updateApplicationStatus)
}

// Client returns a transport.Doer that dispatches requests straight into
// the Fiber app, no listener involved.
func (s *Server) Client() transport.Doer {
	return transport.DoerFunc(func(req *http.Request) (*http.Response, error) {
		return s.app.Test(req, -1)
	})
}

// Listen serves the fake on addr, for local development against a real
// socket.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// rpcError writes a Connect-style error envelope.
func rpcError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"code": code, "message": message})
}

func invalidArgument(c *fiber.Ctx, message string) error {
	return rpcError(c, http.StatusBadRequest, transport.CodeInvalidArgument, message)
}

func unauthenticated(c *fiber.Ctx, message string) error {
	return rpcError(c, http.StatusUnauthorized, transport.CodeUnauthenticated, message)
}

func notFound(c *fiber.Ctx, message string) error {
	return rpcError(c, http.StatusNotFound, transport.CodeNotFound, message)
}

func permissionDenied(c *fiber.Ctx, message string) error {
	return rpcError(c, http.StatusForbidden, transport.CodePermissionDenied, message)
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

func (s *Server) issueAccessToken(u *userRecord) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   u.id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: u.role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// authedUser resolves the bearer token to a user. Supports "Bearer <JWT>"
// and a bare token, as the production middleware does.
func (s *Server) authedUser(c *fiber.Ctx) (*userRecord, bool) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, false
	}
	tokenStr := header
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		tokenStr = strings.TrimSpace(parts[1])
	}
	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || claims.Issuer != s.issuer {
		return nil, false
	}
	return s.store.userWithID(claims.Subject)
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// clampPage applies the listing defaults the production services use.
func clampPage(limit, offset, defLimit int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = defLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// page slices [offset, offset+limit) out of n items.
func page(n, limit, offset int) (lo, hi int) {
	if offset >= n {
		return n, n
	}
	hi = offset + limit
	if hi > n {
		hi = n
	}
	return offset, hi
}
