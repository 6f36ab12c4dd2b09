package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/milica1221/fpl/controller"
	"github.com/milica1221/fpl/model"
	"github.com/unrolled/render"
)

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := ctrl.GetStandingsPage(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "index", page)
	}
}

func teamDetailsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := strconv.Atoi(chi.URLParam(r, "entryID"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("error parsing entry id: %v", err)})
			return
		}

		details, err := ctrl.GetTeamDetails(r.Context(), entryID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, details)
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))

		var err error
		var results []model.Footballer
		if query != "" {
			results, err = ctrl.SearchPlayers(r.Context(), query)
			if err != nil {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
				return
			}
		}

		data := map[string]any{
			"q":       query,
			"results": results,
		}
		render.HTML(w, http.StatusOK, "playerSearch", data)
	}
}

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "ok")
	}
}

func cacheClearHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		scope := r.PostForm.Get("scope")
		if scope == "" {
			scope = "live"
		}

		var removed int
		switch scope {
		case "live":
			removed = ctrl.ClearLiveData()
		case "all":
			removed = ctrl.FlushCache()
		default:
			render.Text(w, http.StatusBadRequest, fmt.Sprintf("unknown scope: %s", scope))
			return
		}

		render.Text(w, http.StatusOK, fmt.Sprintf("removed %d cache entries", removed))
	}
}

func cacheStatsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, ctrl.CacheStats())
	}
}

func refreshHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.RefreshBootstrap(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error refreshing bootstrap data: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "bootstrap refresh completed successfully")
	}
}
