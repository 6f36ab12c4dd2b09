package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/milica1221/fpl/config"
	"github.com/milica1221/fpl/controller"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(cfg *config.Config, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(cfg, ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"cellclass": cellClassFormatter,
				"badge":     statusBadgeFormatter,
				"signed":    signedFormatter,
			},
		},
	})
}

// cellClassFormatter marks the winning and losing cell of a week row.
// Equal sums mark neither.
func cellClassFormatter(mine, theirs int) string {
	if mine > theirs {
		return "win"
	}
	if mine < theirs {
		return "lose"
	}
	return ""
}

func statusBadgeFormatter(status string) string {
	switch status {
	case "live":
		return "LIVE"
	case "finished":
		return "Finished"
	default:
		return "Not started"
	}
}

func signedFormatter(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}
	return fmt.Sprintf("%d", n)
}
