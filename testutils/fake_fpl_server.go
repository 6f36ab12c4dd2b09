package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed fpldata
var fpldata embed.FS

// FakeFPLServer serves canned FPL API responses for tests. It counts the
// requests per endpoint so tests can assert that the cache layer actually
// prevented upstream calls.
type FakeFPLServer struct {
	s *httptest.Server

	mu       sync.Mutex
	requests map[string]int
}

func NewFakeFPLServer() *FakeFPLServer {
	f := &FakeFPLServer{
		requests: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Get("/bootstrap-static/", f.counting("bootstrap", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, "bootstrap.json")
	}))
	r.Get("/leagues-classic/{leagueID}/standings/", f.counting("standings", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, "standings.json")
	}))
	r.Get("/event/{event}/live/", f.counting("live", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("live_%s.json", trimLeadingZero(chi.URLParam(r, "event"))))
	}))
	r.Get("/fixtures/", f.counting("fixtures", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("fixtures_%s.json", r.URL.Query().Get("event")))
	}))
	r.Get("/entry/{entryID}/history/", f.counting("history", func(w http.ResponseWriter, r *http.Request) {
		serveFile(w, fmt.Sprintf("history_%s.json", chi.URLParam(r, "entryID")))
	}))
	r.Get("/entry/{entryID}/event/{event}/picks/", f.counting("picks", func(w http.ResponseWriter, r *http.Request) {
		entryID := chi.URLParam(r, "entryID")
		event := trimLeadingZero(chi.URLParam(r, "event"))
		serveFile(w, fmt.Sprintf("picks_%s_%s.json", entryID, event))
	}))

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeFPLServer) Close() {
	f.s.Close()
}

func (f *FakeFPLServer) URL() string {
	return f.s.URL
}

// Requests returns how many times the named endpoint has been hit. Names
// are: bootstrap, standings, live, fixtures, history, picks.
func (f *FakeFPLServer) Requests(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[name]
}

func (f *FakeFPLServer) ResetRequests() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = make(map[string]int)
}

func (f *FakeFPLServer) counting(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests[name]++
		f.mu.Unlock()
		next(w, r)
	}
}

// The real API accepts zero-padded event numbers like "05"; the data files
// are named without the padding.
func trimLeadingZero(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := fpldata.ReadFile(fmt.Sprintf("fpldata/%s", name))
	if err != nil {
		log.Printf("error reading fpldata/%s: %v", name, err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
