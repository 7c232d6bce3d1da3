package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/RazanRezq/jadara-sub002/internal/config"
	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/notification"
)

// MyServer holds the dependencies shared by every route handler.
type MyServer struct {
	Config *config.Config
	DB     *database.DBinstanceStruct
	Log    logrus.FieldLogger

	// Redis is optional, rate limit counters stay in memory without it.
	Redis *redis.Client
	// Publisher is optional, broadcasts are only stored without it.
	Publisher notification.Publisher
}

// NewServer construct new http.Server serving the API on cfg.Port
func NewServer(s *MyServer) *http.Server {
	if s.Log == nil {
		s.Log = logrus.StandardLogger()
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Config.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
