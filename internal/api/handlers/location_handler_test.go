package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bebond/concierge-search/internal/api/handlers"
	"github.com/bebond/concierge-search/internal/application/services"
	"github.com/bebond/concierge-search/internal/domain/entities"
	apperrors "github.com/bebond/concierge-search/pkg/errors"
)

type MockLocationProvider struct {
	mock.Mock
}

func (m *MockLocationProvider) Hierarchy(ctx context.Context, orgKey string) (*entities.LocationHierarchy, error) {
	args := m.Called(ctx, orgKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LocationHierarchy), args.Error(1)
}

func usHierarchy() *entities.LocationHierarchy {
	return &entities.LocationHierarchy{
		Countries: map[string]*entities.CountryNode{
			"USA": {
				Count: 3,
				Regions: map[string]*entities.RegionNode{
					"New Jersey": {
						Count: 3,
						Cities: map[string]*entities.CityNode{
							"Hoboken":     {Count: 2, Neighbourhoods: map[string]int{"Uptown": 1, "Waterfront": 1}},
							"Jersey City": {Count: 1, Neighbourhoods: map[string]int{}},
						},
					},
				},
			},
		},
	}
}

func TestLocationHandler_Options_DrillsToCities(t *testing.T) {
	mockLocations := new(MockLocationProvider)
	mockLocations.On("Hierarchy", mock.Anything, "BB_vrconcierge").Return(usHierarchy(), nil)

	handler := handlers.NewLocationHandler(mockLocations, services.NewLocationService())

	r := httptest.NewRequest(http.MethodGet, "/api/locations?org_key=BB_vrconcierge&country=USA&region=New+Jersey", nil)
	w := httptest.NewRecorder()
	handler.Options(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp entities.LocationResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, entities.LevelCity, resp.Level)
	assert.Equal(t, "New Jersey", resp.Parent)
	assert.Equal(t, []entities.LocationOption{
		{Value: "Hoboken", Count: 2},
		{Value: "Jersey City", Count: 1},
	}, resp.Options)
	mockLocations.AssertExpectations(t)
}

func TestLocationHandler_Options_MissingOrgKey(t *testing.T) {
	mockLocations := new(MockLocationProvider)
	handler := handlers.NewLocationHandler(mockLocations, services.NewLocationService())

	r := httptest.NewRequest(http.MethodGet, "/api/locations?country=USA", nil)
	w := httptest.NewRecorder()
	handler.Options(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockLocations.AssertNotCalled(t, "Hierarchy")
}

func TestLocationHandler_Options_ProviderFailure(t *testing.T) {
	mockLocations := new(MockLocationProvider)
	mockLocations.On("Hierarchy", mock.Anything, "BB_vrconcierge").
		Return(nil, apperrors.NewExternalError("hierarchy query failed", nil))

	handler := handlers.NewLocationHandler(mockLocations, services.NewLocationService())

	r := httptest.NewRequest(http.MethodGet, "/api/locations?org_key=BB_vrconcierge", nil)
	w := httptest.NewRecorder()
	handler.Options(w, r)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
