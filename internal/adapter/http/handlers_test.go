package adapthttp_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	adapthttp "fitfuel/internal/adapter/http"
	"fitfuel/internal/adapter/memory"
	"fitfuel/internal/app"
	"fitfuel/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Test-server helper
// ---------------------------------------------------------------------------

func newTestServer(t *testing.T, store domain.Store) *httptest.Server {
	t.Helper()

	if store == nil {
		db := memory.New()
		t.Cleanup(func() { _ = db.Close() })
		store = db
	}

	webDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(webDir, "index.html"), []byte("<html></html>"), 0o600))

	ts := httptest.NewServer(adapthttp.New(app.NewServices(store), webDir).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&m), "failed to decode response body")
	return m
}

const testDay = "2026-03-10"

func meal(name string, typ domain.MealType, calories int) map[string]any {
	return map[string]any{
		"name": name, "type": typ, "calories": calories,
		"protein": 30.5, "carbs": 40, "fat": 10,
		"timestamp": testDay + "T12:00:00Z",
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := do(t, http.MethodGet, ts.URL+"/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, decodeBody(t, resp)["ok"])
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestMealsCRUD(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := do(t, http.MethodPost, ts.URL+"/api/meals", meal("Dinner", domain.MealDinner, 700))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	do(t, http.MethodPost, ts.URL+"/api/meals", meal("Oats", domain.MealBreakfast, 400))
	id := decodeBody(t, resp)["id"].(float64)

	resp = do(t, http.MethodGet, ts.URL+"/api/meals?date="+testDay, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	plan := decodeBody(t, resp)
	meals := plan["meals"].([]any)
	require.Len(t, meals, 2)
	assert.Equal(t, "Oats", meals[0].(map[string]any)["name"], "meal-type order")
	assert.Equal(t, 1100.0, plan["nutrition"].(map[string]any)["calories"])

	mealURL := ts.URL + "/api/meals/" + jsonID(id)
	resp = do(t, http.MethodGet, mealURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dinner", decodeBody(t, resp)["name"])

	update := meal("Late dinner", domain.MealDinner, 750)
	resp = do(t, http.MethodPut, mealURL, update)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, decodeBody(t, resp)["id"])

	resp = do(t, http.MethodDelete, mealURL, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, mealURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, http.MethodDelete, mealURL, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func jsonID(id float64) string {
	b, _ := json.Marshal(int64(id))
	return string(b)
}

func TestMealsPost_BadInput(t *testing.T) {
	tests := []struct {
		name       string
		payload    any
		wantStatus int
	}{
		{"valid", meal("Soup", domain.MealLunch, 300), http.StatusCreated},
		{"blank name", meal(" ", domain.MealLunch, 300), http.StatusBadRequest},
		{"bad type", meal("Soup", "BRUNCH", 300), http.StatusBadRequest},
		{"negative calories", meal("Soup", domain.MealLunch, -1), http.StatusBadRequest},
		{"unknown field", map[string]any{"name": "Soup", "type": "LUNCH", "sugar": 3}, http.StatusBadRequest},
	}

	ts := newTestServer(t, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, ts.URL+"/api/meals", tc.payload)
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus == http.StatusBadRequest {
				assert.NotEmpty(t, decodeBody(t, resp)["error"])
			}
		})
	}
}

func TestRouting_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, ts.URL+"/api/meals/abc", nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, ts.URL+"/api/meals?date=10-03-2026", nil).StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, http.MethodPatch, ts.URL+"/api/meals", nil).StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, http.MethodPost, ts.URL+"/api/dashboard", nil).StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, do(t, http.MethodGet, ts.URL+"/api/grocery/purchased", nil).StatusCode)
}

func TestTrainingCompleted(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := do(t, http.MethodPost, ts.URL+"/api/training", map[string]any{
		"title": "Intervals", "type": "CARDIO", "intensity": "HIGH", "duration": 40,
		"timestamp": testDay + "T07:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := jsonID(decodeBody(t, resp)["id"].(float64))

	resp = do(t, http.MethodPut, ts.URL+"/api/training/"+id+"/completed", map[string]any{"completed": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/api/training?date="+testDay, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	day := decodeBody(t, resp)
	assert.Equal(t, 1.0, day["completed"])
	assert.Equal(t, 1.0, day["total"])
	assert.Equal(t, 40.0, day["stats"].(map[string]any)["totalMinutes"])

	resp = do(t, http.MethodPut, ts.URL+"/api/training/999/completed", map[string]any{"completed": true})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGroceryFlow(t *testing.T) {
	ts := newTestServer(t, nil)

	var ids []string
	for _, it := range []map[string]any{
		{"name": "Eggs", "quantity": "12", "category": "PROTEIN"},
		{"name": "Milk", "quantity": "1 l", "category": "DAIRY"},
		{"name": "Beef", "quantity": "500 g", "category": "PROTEIN"},
	} {
		resp := do(t, http.MethodPost, ts.URL+"/api/grocery", it)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		ids = append(ids, jsonID(decodeBody(t, resp)["id"].(float64)))
	}

	resp := do(t, http.MethodPut, ts.URL+"/api/grocery/"+ids[0]+"/purchased", map[string]any{"purchased": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/api/grocery?category=PROTEIN", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decodeBody(t, resp)
	assert.Len(t, list["items"].([]any), 2)
	assert.Len(t, list["pending"].([]any), 1)
	assert.Len(t, list["purchased"].([]any), 1)
	assert.Equal(t, 2.0, list["unpurchased"])

	resp = do(t, http.MethodGet, ts.URL+"/api/grocery?all=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	groups := decodeBody(t, resp)["groups"].(map[string]any)
	assert.Len(t, groups, len(domain.GroceryCategories))
	assert.Empty(t, groups["FRUITS"])

	resp = do(t, http.MethodGet, ts.URL+"/api/grocery?category=TOYS", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodDelete, ts.URL+"/api/grocery/purchased", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1.0, decodeBody(t, resp)["deleted"])

	resp = do(t, http.MethodGet, ts.URL+"/api/grocery/"+ids[0], nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/api/grocery", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["items"].([]any), 2)
}

func TestGroceryBulkPurchase(t *testing.T) {
	ts := newTestServer(t, nil)
	for _, name := range []string{"Oats", "Rice"} {
		resp := do(t, http.MethodPost, ts.URL+"/api/grocery", map[string]any{"name": name, "category": "GRAINS"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := do(t, http.MethodPut, ts.URL+"/api/grocery/purchased", map[string]any{"purchased": true})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2.0, decodeBody(t, resp)["updated"])

	resp = do(t, http.MethodGet, ts.URL+"/api/grocery", nil)
	list := decodeBody(t, resp)
	assert.Equal(t, 0.0, list["unpurchased"])
	assert.Empty(t, list["pending"])
	assert.Len(t, list["purchased"].([]any), 2)

	resp = do(t, http.MethodPut, ts.URL+"/api/grocery/purchased", map[string]any{"purchased": "yes"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMealsAndSessionsListing(t *testing.T) {
	ts := newTestServer(t, nil)
	do(t, http.MethodPost, ts.URL+"/api/meals", meal("Oats", domain.MealBreakfast, 400))
	do(t, http.MethodPost, ts.URL+"/api/meals", meal("Nuts", domain.MealSnack, 200))

	resp := do(t, http.MethodGet, ts.URL+"/api/meals/all?type=SNACK", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	meals := decodeBody(t, resp)["meals"].([]any)
	require.Len(t, meals, 1)
	assert.Equal(t, "Nuts", meals[0].(map[string]any)["name"])

	resp = do(t, http.MethodGet, ts.URL+"/api/meals/all", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["meals"].([]any), 2)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, ts.URL+"/api/meals/all?type=BRUNCH", nil).StatusCode)

	for _, typ := range []string{"CARDIO", "STRENGTH"} {
		resp := do(t, http.MethodPost, ts.URL+"/api/training", map[string]any{
			"title": typ, "type": typ, "intensity": "LOW", "duration": 30, "timestamp": testDay + "T07:00:00Z",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		if typ == "CARDIO" {
			id := jsonID(decodeBody(t, resp)["id"].(float64))
			do(t, http.MethodPut, ts.URL+"/api/training/"+id+"/completed", map[string]any{"completed": true})
		}
	}

	resp = do(t, http.MethodGet, ts.URL+"/api/training/all?completed=false", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sessions := decodeBody(t, resp)["sessions"].([]any)
	require.Len(t, sessions, 1)
	assert.Equal(t, "STRENGTH", sessions[0].(map[string]any)["type"])

	resp = do(t, http.MethodGet, ts.URL+"/api/training/all?type=CARDIO&completed=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["sessions"].([]any), 1)

	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, ts.URL+"/api/training/all?completed=maybe", nil).StatusCode)
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, ts.URL+"/api/training/all?type=YOGA", nil).StatusCode)
}

func TestOnboardingAndProfile(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := do(t, http.MethodGet, ts.URL+"/api/onboarding", nil)
	assert.Equal(t, false, decodeBody(t, resp)["completed"])
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, ts.URL+"/api/profile", nil).StatusCode)

	resp = do(t, http.MethodPost, ts.URL+"/api/onboarding", map[string]any{
		"name": "Alex", "goal": "BUILD_MUSCLE", "trainingFrequency": "FOUR_FIVE_DAYS", "dietaryPreference": "VEGAN",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decodeBody(t, resp)
	assert.Equal(t, 2900.0, p["dailyCalorieTarget"])
	assert.Equal(t, 250.0, p["dailyProteinTarget"])

	resp = do(t, http.MethodGet, ts.URL+"/api/onboarding", nil)
	assert.Equal(t, true, decodeBody(t, resp)["completed"])

	p["dailyCalorieTarget"] = 3000
	resp = do(t, http.MethodPut, ts.URL+"/api/profile", p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3000.0, decodeBody(t, resp)["dailyCalorieTarget"])

	p["dailyFatTarget"] = 0
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodPut, ts.URL+"/api/profile", p).StatusCode)

	resp = do(t, http.MethodDelete, ts.URL+"/api/onboarding", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = do(t, http.MethodGet, ts.URL+"/api/onboarding", nil)
	assert.Equal(t, false, decodeBody(t, resp)["completed"])

	resp = do(t, http.MethodGet, ts.URL+"/api/profile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Alex", decodeBody(t, resp)["name"], "reset keeps the profile")
}

func TestProfileTargetsPreview(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := do(t, http.MethodGet, ts.URL+"/api/profile/targets?goal=IMPROVE_PERFORMANCE&frequency=SIX_PLUS_DAYS", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decodeBody(t, resp)
	assert.Equal(t, 2850.0, got["calories"])
	assert.Equal(t, 225.0, got["protein"])
	assert.Equal(t, 300.0, got["carbs"])
	assert.Equal(t, 67.0, got["fat"])

	resp = do(t, http.MethodGet, ts.URL+"/api/profile/targets?goal=NAP", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDashboardAndHistory(t *testing.T) {
	ts := newTestServer(t, nil)
	do(t, http.MethodPost, ts.URL+"/api/meals", meal("Lunch", domain.MealLunch, 600))

	resp := do(t, http.MethodGet, ts.URL+"/api/dashboard?date="+testDay, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d := decodeBody(t, resp)
	assert.Equal(t, testDay, d["date"])
	assert.Nil(t, d["profile"])
	assert.Nil(t, d["progress"])
	assert.Equal(t, 600.0, d["nutrition"].(map[string]any)["calories"])

	resp = do(t, http.MethodGet, ts.URL+"/api/history?days=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["days"].([]any), 3)

	resp = do(t, http.MethodGet, ts.URL+"/api/history", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody(t, resp)["days"].([]any), 7)
}

func TestDashboardStream(t *testing.T) {
	ts := newTestServer(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/dashboard/stream?date="+testDay, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := bufio.NewReader(resp.Body)
	readEvent := func() map[string]any {
		t.Helper()
		for {
			line, err := events.ReadString('\n')
			require.NoError(t, err)
			if data, ok := strings.CutPrefix(strings.TrimSpace(line), "data: "); ok {
				var m map[string]any
				require.NoError(t, json.Unmarshal([]byte(data), &m))
				return m
			}
		}
	}

	first := readEvent()
	assert.Equal(t, 0.0, first["nutrition"].(map[string]any)["calories"])

	do(t, http.MethodPost, ts.URL+"/api/meals", meal("Snack", domain.MealSnack, 250))
	second := readEvent()
	assert.Equal(t, 250.0, second["nutrition"].(map[string]any)["calories"])
}

type failingStore struct {
	*memory.DB
}

func (failingStore) ListMealsBetween(context.Context, time.Time, time.Time) ([]domain.Meal, error) {
	return nil, errors.New("disk on fire")
}

func TestInternalErrorsAreMasked(t *testing.T) {
	db := memory.New()
	t.Cleanup(func() { _ = db.Close() })
	ts := newTestServer(t, failingStore{db})

	resp := do(t, http.MethodGet, ts.URL+"/api/dashboard", nil)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal error", decodeBody(t, resp)["error"])
}

func TestSPAFallback(t *testing.T) {
	ts := newTestServer(t, nil)

	resp := do(t, http.MethodGet, ts.URL+"/grocery/some/route", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(b))

	resp = do(t, http.MethodGet, ts.URL+"/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(b))
}
