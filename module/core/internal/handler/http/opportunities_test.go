package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pwlogicon/pwlogicon/module/core/domain"
)

type findNearbyCall struct {
	lat, lng, maxDistanceKm float64
}

type mockOpportunityService struct {
	findNearbyFn func(ctx context.Context, lat, lng, maxDistanceKm float64) ([]domain.OpportunityMatch, error)
	calls        []findNearbyCall
}

func (m *mockOpportunityService) FindNearby(ctx context.Context, lat, lng, maxDistanceKm float64) ([]domain.OpportunityMatch, error) {
	m.calls = append(m.calls, findNearbyCall{lat, lng, maxDistanceKm})
	if m.findNearbyFn != nil {
		return m.findNearbyFn(ctx, lat, lng, maxDistanceKm)
	}
	return nil, nil
}

func setupOpportunityRouter(svc opportunityService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOpportunityHandler(svc)
	h.Register(r.Group(""))
	return r
}

func TestFindNearbyOpportunities_Success(t *testing.T) {
	expiry := time.Unix(1715090000, 0)
	svc := &mockOpportunityService{
		findNearbyFn: func(_ context.Context, _, _, _ float64) ([]domain.OpportunityMatch, error) {
			return []domain.OpportunityMatch{
				{
					Opportunity: domain.Opportunity{
						ID: 2, Origin: "Bandung", Destination: "Semarang",
						OriginLat: -6.9175, OriginLng: 107.6191,
						Payload: "textiles", Revenue: 1200, Expiry: expiry,
					},
					DistanceKm: 92.4,
				},
				{
					Opportunity: domain.Opportunity{
						ID: 1, Origin: "Jakarta", Destination: "Bandung",
						OriginLat: -6.2088, OriginLng: 106.8456,
						Payload: "palletized electronics", Revenue: 850, Expiry: expiry,
					},
					DistanceKm: 1.2,
				},
			}, nil
		},
	}

	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=-6.21&lng=106.85", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []opportunityResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp))
	}
	if resp[0].ID != 2 {
		t.Errorf("expected ID 2 first, got %d", resp[0].ID)
	}
	if resp[0].DistanceKm != 92.4 {
		t.Errorf("expected 92.4, got %f", resp[0].DistanceKm)
	}
	if resp[0].Expiry != 1715090000 {
		t.Errorf("expected 1715090000, got %d", resp[0].Expiry)
	}
	if resp[1].Origin != "Jakarta" {
		t.Errorf("expected Jakarta, got %s", resp[1].Origin)
	}
}

func TestFindNearbyOpportunities_MissingLat(t *testing.T) {
	svc := &mockOpportunityService{}
	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lng=106.85", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(svc.calls) != 0 {
		t.Fatalf("expected service not to be called, got %v", svc.calls)
	}
}

func TestFindNearbyOpportunities_MissingLng(t *testing.T) {
	svc := &mockOpportunityService{}
	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=-6.21", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFindNearbyOpportunities_InvalidLat(t *testing.T) {
	svc := &mockOpportunityService{}
	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=abc&lng=106.85", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFindNearbyOpportunities_DefaultMaxDistance(t *testing.T) {
	svc := &mockOpportunityService{}
	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=-6.21&lng=106.85", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(svc.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(svc.calls))
	}
	if svc.calls[0].maxDistanceKm != 100 {
		t.Errorf("expected max distance 100, got %f", svc.calls[0].maxDistanceKm)
	}
	if svc.calls[0].lat != -6.21 {
		t.Errorf("expected lat -6.21, got %f", svc.calls[0].lat)
	}
}

func TestFindNearbyOpportunities_CustomMaxDistance(t *testing.T) {
	svc := &mockOpportunityService{}
	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=-6.21&lng=106.85&max_distance_km=250.5", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(svc.calls) != 1 || svc.calls[0].maxDistanceKm != 250.5 {
		t.Fatalf("expected max distance 250.5, got %v", svc.calls)
	}
}

func TestFindNearbyOpportunities_InvalidMaxDistance(t *testing.T) {
	svc := &mockOpportunityService{}
	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=-6.21&lng=106.85&max_distance_km=abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if len(svc.calls) != 0 {
		t.Fatalf("expected service not to be called, got %v", svc.calls)
	}
}

func TestFindNearbyOpportunities_OutOfRangeCoordinates(t *testing.T) {
	svc := &mockOpportunityService{
		findNearbyFn: func(_ context.Context, _, _, _ float64) ([]domain.OpportunityMatch, error) {
			return nil, fmt.Errorf("%w: lat must be between -90 and 90", domain.ErrInvalidArgument)
		},
	}

	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=95&lng=106.85", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFindNearbyOpportunities_StoreError(t *testing.T) {
	svc := &mockOpportunityService{
		findNearbyFn: func(_ context.Context, _, _, _ float64) ([]domain.OpportunityMatch, error) {
			return nil, fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable)
		},
	}

	r := setupOpportunityRouter(svc)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/opportunities?lat=-6.21&lng=106.85", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
