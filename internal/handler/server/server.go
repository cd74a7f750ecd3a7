package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/task-tracker/internal/auth"
	"github.com/bagdasarian/task-tracker/internal/handler"
	"github.com/sirupsen/logrus"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	log     logrus.FieldLogger
}

// NewServer собирает маршруты; при пустом jwtSecret аутентификация выключена
func NewServer(h *handler.Handler, addr, jwtSecret string, log logrus.FieldLogger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	var root http.Handler = mux
	if jwtSecret != "" {
		root = authMiddleware(auth.NewVerifier(jwtSecret), log, root)
	} else {
		log.Warn("JWT_SECRET is empty, authentication disabled")
	}
	root = loggingMiddleware(log, root)

	return &Server{
		handler: h,
		log:     log,
		server: &http.Server{
			Addr:    addr,
			Handler: root,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.log.Infof("Server starting on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.log.Info("Server stopped")
	return nil
}
