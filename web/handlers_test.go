package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/milica1221/fpl/cache"
	"github.com/milica1221/fpl/controller/mockcontroller"
	"github.com/milica1221/fpl/model"
	"github.com/milica1221/fpl/testutils"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(ctrl *mockcontroller.C) *chi.Mux {
	return getRouter(testutils.NewTestConfig(), ctrl, newRender())
}

func samplePage() *model.StandingsPage {
	return &model.StandingsPage{
		LeagueName: "Nosata liga",
		State:      model.GameweekState{Current: 5, Display: 5, Status: model.StatusLive},
		HasData:    true,
		Team1: model.TeamView{
			Name:  "Team 1",
			Wins:  4,
			Total: 767,
			Live: []model.EntryLive{
				{EntryID: 101, Name: "grmilica", GameweekPoints: 46, CaptainPoints: 26, SeasonTotal: 281},
			},
		},
		Team2: model.TeamView{Name: "Team 2", Wins: 1, Total: 728},
		Rows:  []model.WeekRow{{Week: 5, Team1: 105, Team2: 100}},
		LeagueLive: []model.LeagueLiveRow{
			{
				LeagueEntry: model.LeagueEntry{EntryID: 101, EntryName: "Grmilica XI", PlayerName: "Marko", Total: 310},
				LivePoints:  46,
			},
		},
	}
}

func TestStandingsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetStandingsPage", mock.Anything).Return(samplePage(), nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Nosata liga") {
		t.Error("expected the league name in the page")
	}
	// The higher weekly sum gets the win styling, the lower the lose one.
	if !strings.Contains(body, `<td class="win">105</td>`) {
		t.Error("expected the winning cell to be marked")
	}
	if !strings.Contains(body, `<td class="lose">100</td>`) {
		t.Error("expected the losing cell to be marked")
	}
	if !strings.Contains(body, "grmilica") {
		t.Error("expected the live table to list the entry")
	}
}

func TestStandingsHandler_error(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetStandingsPage", mock.Anything).Return(nil, errors.New("upstream down"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Something went wrong") {
		t.Error("expected the error page")
	}
}

func TestTeamDetailsHandler(t *testing.T) {
	details := &model.TeamDetails{
		EntryID:     101,
		TotalPoints: 46,
		StartingXI: []model.PickDetail{
			{Name: "M.Salah", Points: 26, Multiplier: 2, IsCaptain: true},
		},
	}

	ctrl := &mockcontroller.C{}
	ctrl.On("GetTeamDetails", mock.Anything, 101).Return(details, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/team-details/101", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var got model.TeamDetails
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if got.EntryID != 101 || got.TotalPoints != 46 {
		t.Errorf("unexpected payload: %+v", got)
	}
	if len(got.StartingXI) != 1 || !got.StartingXI[0].IsCaptain {
		t.Errorf("unexpected starting XI: %+v", got.StartingXI)
	}
}

func TestTeamDetailsHandler_badEntryID(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/team-details/abc", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	// The route only matches numeric IDs.
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	ctrl.AssertNotCalled(t, "GetTeamDetails", mock.Anything, mock.Anything)
}

func TestPlayerSearchHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SearchPlayers", mock.Anything, "salah").Return([]model.Footballer{
		{ID: 11, FirstName: "Mohamed", SecondName: "Salah", WebName: "M.Salah", Club: 1},
	}, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/players?q=salah", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "M.Salah") {
		t.Error("expected the result in the page")
	}
}

func TestPlayerSearchHandler_noQuery(t *testing.T) {
	ctrl := &mockcontroller.C{}
	router := newTestRouter(ctrl)

	// A missing q and a whitespace-only q both render the empty form.
	for _, target := range []string{"/players", "/players?q=%20%20"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", target, nil)
		router.ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", target, w.Code)
		}
	}
	ctrl.AssertNotCalled(t, "SearchPlayers", mock.Anything, mock.Anything)
}

func TestHealthHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/healthz", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestMetricsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/metrics", nil)
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminRequiresAuth(t *testing.T) {
	ctrl := &mockcontroller.C{}
	router := newTestRouter(ctrl)

	for _, tc := range []struct{ method, path string }{
		{"POST", "/admin/cache/clear"},
		{"GET", "/admin/cache/stats"},
		{"POST", "/admin/refresh"},
	} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(tc.method, tc.path, nil)
		router.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestCacheClearHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("ClearLiveData").Return(2)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/admin/cache/clear", nil)
	r.SetBasicAuth("admin", "pa55word")
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "removed 2 cache entries") {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
	ctrl.AssertCalled(t, "ClearLiveData")
}

func TestCacheClearHandler_allScope(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("FlushCache").Return(11)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/admin/cache/clear", strings.NewReader("scope=all"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.SetBasicAuth("admin", "pa55word")
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "removed 11 cache entries") {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}

func TestCacheClearHandler_badScope(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/admin/cache/clear", strings.NewReader("scope=bogus"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.SetBasicAuth("admin", "pa55word")
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCacheStatsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("CacheStats").Return(cache.Stats{Hits: 10, Misses: 4, Size: 3, Capacity: 64})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/admin/cache/stats", nil)
	r.SetBasicAuth("admin", "pa55word")
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats cache.Stats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if stats.Hits != 10 || stats.Size != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestRefreshHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RefreshBootstrap", mock.Anything).Return(nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/admin/refresh", nil)
	r.SetBasicAuth("admin", "pa55word")
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	ctrl.AssertCalled(t, "RefreshBootstrap", mock.Anything)
}

func TestRefreshHandler_error(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("RefreshBootstrap", mock.Anything).Return(errors.New("upstream down"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/admin/refresh", nil)
	r.SetBasicAuth("admin", "pa55word")
	newTestRouter(ctrl).ServeHTTP(w, r)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
