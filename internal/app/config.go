package app

import (
	"net/http"
	"time"

	"kembang/internal/logging"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string        // data directory, e.g. $HOME/.kembang
	APIURL   string        // backend base URL including /api/v1
	Timeout  time.Duration // per-request timeout; ignored when HTTP is set
	LogLevel string        // debug | info | warn | error
	HTTP     *http.Client  // optional; built from Timeout when nil
	Log      *logging.Logger
}
