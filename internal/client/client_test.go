package client

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"awards-cms-go/internal/editor"
	"awards-cms-go/internal/handler"
	"awards-cms-go/internal/middleware"
	"awards-cms-go/internal/region"
	"awards-cms-go/internal/store"
	"awards-cms-go/pkg/model"
)

const testWriteToken = "client-test-token"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	regionHandler := handler.NewRegionHandler(region.NewRegionService(st))

	router := gin.New()
	router.GET("/api/regions", regionHandler.ListRegions)
	router.POST("/api/awards", regionHandler.CreateRegion)
	router.GET("/api/awards/:region", regionHandler.GetRegion)

	writes := router.Group("/api")
	writes.Use(middleware.WriteTokenMiddleware(testWriteToken))
	writes.PUT("/awards/:region", regionHandler.UpdateRegion)
	writes.DELETE("/awards/:region", regionHandler.DeleteRegion)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestClientRegionLifecycle(t *testing.T) {
	server := newTestServer(t)
	api := NewClient(ClientConfig{BaseURL: server.URL, WriteToken: testWriteToken})
	ctx := context.Background()

	created, err := api.CreateRegion(ctx, "emea")
	require.NoError(t, err)
	require.Equal(t, "emea", created.Region)

	regions, err := api.ListRegions(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"emea"}, regions)

	_, err = api.CreateRegion(ctx, "EMEA")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 409, apiErr.StatusCode)

	require.NoError(t, api.DeleteRegion(ctx, "EMEA"))

	_, err = api.GetRegion(ctx, "emea")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
}

func TestEditorSaveThenReloadRoundTrip(t *testing.T) {
	server := newTestServer(t)
	api := NewClient(ClientConfig{BaseURL: server.URL, WriteToken: testWriteToken})
	ctx := context.Background()

	created, err := api.CreateRegion(ctx, "emea")
	require.NoError(t, err)

	ed := editor.New(created.Region, created.RegionContent, api)
	require.NoError(t, ed.AddIndustry("Banking"))
	require.NoError(t, ed.AddRecognition("Excellence"))
	ed.AddAward()
	require.NoError(t, ed.SetAwardFields(0, "Best Bank", "Top award", "🏆", "https://example.com"))
	require.NoError(t, ed.AddIndustryToAward(0, "Banking"))
	require.NoError(t, ed.SetIndustryWeight(0, "Banking", 70))
	require.NoError(t, ed.AddSynonymGroup("Excellence"))
	require.NoError(t, ed.AppendSynonym("Excellence"))
	require.NoError(t, ed.SetSynonym("Excellence", 0, "Excellent"))

	saved, err := ed.Save(ctx)
	require.NoError(t, err)
	require.False(t, saved.UpdatedAt.IsZero())

	reloaded, err := api.GetRegion(ctx, "EMEA")
	require.NoError(t, err)
	require.Equal(t, "emea", reloaded.Region)
	require.Equal(t, ed.Content(), reloaded.RegionContent)
}

func TestClientSendsTokenOnlyOnWrites(t *testing.T) {
	server := newTestServer(t)

	// A client without a token still reads, but cannot write.
	api := NewClient(ClientConfig{BaseURL: server.URL})
	ctx := context.Background()

	_, err := api.ListRegions(ctx)
	require.NoError(t, err)

	_, err = api.UpdateRegion(ctx, "emea", model.EmptyContent())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.StatusCode)
}
