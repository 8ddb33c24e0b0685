package keepalive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

const liveness = "Bot is running..."

// Server answers uptime monitors so the hosting platform keeps the
// process alive. It knows nothing about the bot itself.
type Server struct {
	server *http.Server
}

func NewRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, liveness)
	}).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, "ok")
	}).Methods(http.MethodGet)
	return router
}

func NewServer(port int) *Server {
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until the context is cancelled
func (s *Server) Run(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.server.Addr).Msg("Keep-alive server listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("keep-alive server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("keep-alive server shutdown: %w", err)
	}
	log.Info().Msg("Keep-alive server stopped")
	return nil
}
