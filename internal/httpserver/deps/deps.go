package deps

import (
	"net/http"
	"time"

	"github.com/resfinder/resfinder/internal/directory"
	"github.com/resfinder/resfinder/internal/logger"
)

// Deps carries everything route registrars and handlers need. Extend
// as needed; handlers must not reach for globals.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	// Directory is the persistence-and-invariant core every request is
	// dispatched to.
	Directory *directory.Service

	// AdminHeader names the trusted header carrying the caller's email.
	AdminHeader string

	CORSOrigins  []string
	AllowedHosts []string

	// RateLimiter guards mutating routes; wired in app, identity
	// middleware when rate limiting is disabled.
	RateLimiter func(http.Handler) http.Handler
}
