package httpapi

import (
	"time"

	"go.uber.org/zap"

	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/apistats"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/config"
	"github.com/ext-sakamoro/ALICE-Kinematics-Cloud/presets"
)

// routeNames are the per-route apistats counter keys, matching the path
// segment each handler is registered under in Router.
var routeNames = []string{
	"solve-ik",
	"solve-fk",
	"compress-intent",
	"optimize-trajectory",
	"chains",
	"stats",
	"health",
}

// Server binds the core packages to the HTTP contract. It holds no
// request-scoped state; every field is safe for concurrent handler use.
type Server struct {
	logger  *zap.Logger
	stats   *apistats.Stats
	presets *presets.Registry
	cfg     config.Config
	version string
}

// NewServer constructs a Server. version is reported verbatim by GET
// /health.
func NewServer(logger *zap.Logger, reg *presets.Registry, cfg config.Config, version string) *Server {
	return &Server{
		logger:  logger,
		stats:   apistats.New(routeNames),
		presets: reg,
		cfg:     cfg,
		version: version,
	}
}

func microsSince(start time.Time) int64 {
	return time.Since(start).Microseconds()
}
