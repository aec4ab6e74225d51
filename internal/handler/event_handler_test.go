package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The-boat-boat/sponsorreel/internal/domain"
	"github.com/The-boat-boat/sponsorreel/internal/repository"
	"github.com/The-boat-boat/sponsorreel/internal/service"
	"github.com/The-boat-boat/sponsorreel/pkg/activity"
	"github.com/The-boat-boat/sponsorreel/pkg/middleware"
)

// newApplicationRouter wires the seeded memory stack behind real routes so
// the tests cover login through the application endpoints end to end.
func newApplicationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memStore := repository.NewMemoryStore(repository.DefaultSeed())
	authService := service.NewMemoryAuthService(memStore)
	eventService := service.NewEventService(
		repository.NewMemoryEventRepository(memStore),
		repository.NewMemoryApplicationRepository(memStore),
		repository.NewMemoryActivityRepository(memStore),
		activity.NopPublisher{},
	)
	sponsorService := service.NewMemorySponsorService(
		repository.NewMemorySponsorRepository(memStore),
		func() float64 { return 0 },
	)

	authMW := middleware.SessionMiddleware(func(ctx context.Context, token string) (string, string, string, error) {
		profile, err := authService.GetCurrentUser(ctx, token)
		if err != nil {
			return "", "", "", err
		}
		return profile.ID, profile.Email, string(profile.UserType), nil
	})

	authHandler := NewAuthHandler(authService)
	eventHandler := NewEventHandler(eventService, sponsorService)

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	v1.POST("/auth/login", authHandler.Login)

	apps := v1.Group("", authMW)
	apps.POST("/applications", eventHandler.SubmitApplication)
	apps.GET("/applications", eventHandler.ListApplications)
	apps.POST("/applications/:id/withdraw", eventHandler.WithdrawApplication)
	return engine
}

func loginAs(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()

	body := `{"email":"` + email + `","password":"` + repository.DemoPassword + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func doJSON(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestListApplications_ResolvesSponsorProfile(t *testing.T) {
	engine := newApplicationRouter(t)
	token := loginAs(t, engine, repository.DemoSponsorEmail)

	w := doJSON(engine, http.MethodGet, "/api/v1/applications", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []*domain.SponsorshipApplication `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The demo account owns sponsor profile sp-0001, which holds app-0001
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "app-0001", resp.Data[0].ID)
	assert.Equal(t, "sp-0001", resp.Data[0].SponsorID)
	assert.Equal(t, domain.ApplicationStatusPending, resp.Data[0].Status)
}

func TestWithdrawApplication_EndToEnd(t *testing.T) {
	engine := newApplicationRouter(t)
	token := loginAs(t, engine, repository.DemoSponsorEmail)

	w := doJSON(engine, http.MethodPost, "/api/v1/applications/app-0001/withdraw", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data *domain.SponsorshipApplication `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.ApplicationStatusWithdrawn, resp.Data.Status)

	list := doJSON(engine, http.MethodGet, "/api/v1/applications", token, "")
	require.Equal(t, http.StatusOK, list.Code)

	var listResp struct {
		Data []*domain.SponsorshipApplication `json:"data"`
	}
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	assert.Equal(t, domain.ApplicationStatusWithdrawn, listResp.Data[0].Status)
}

func TestSubmitApplication_WritesSponsorProfileID(t *testing.T) {
	engine := newApplicationRouter(t)
	token := loginAs(t, engine, repository.DemoSponsorEmail)

	body := `{"event_id":"ev-0002","tier_id":"tier-0003","message":"Coffee cart for the shorts night."}`
	w := doJSON(engine, http.MethodPost, "/api/v1/applications", token, body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data *domain.SponsorshipApplication `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Stored under the sponsor profile ID, not the account's profile ID
	assert.Equal(t, "sp-0001", resp.Data.SponsorID)
	assert.Equal(t, "ev-0002", resp.Data.EventID)
	assert.Equal(t, domain.ApplicationStatusPending, resp.Data.Status)
}

func TestApplications_AccountWithoutSponsorProfile(t *testing.T) {
	engine := newApplicationRouter(t)
	token := loginAs(t, engine, repository.DemoOperatorEmail)

	w := doJSON(engine, http.MethodGet, "/api/v1/applications", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
