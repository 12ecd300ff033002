// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// JWTSecret signs session tokens, the service refuses to start without it
	JWTSecret  string `envconfig:"JWT_SECRET" required:"true"`
	BcryptCost int    `envconfig:"bcrypt_cost" default:"10"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	// LoginRateLimit is the number of login/registration attempts per minute
	// allowed for a single client, 0 disables the limiter
	LoginRateLimit float64 `envconfig:"login_rate_limit" default:"30"`
	LoginRateBurst int     `envconfig:"login_rate_burst" default:"10"`
}

// String hides the secrets, the env vars are logged at debug level on startup
func (e EnvSpec) String() string {
	c := e
	c.JWTSecret = "*****"
	c.DSN = "*****"

	type plain EnvSpec
	return fmt.Sprintf("%+v", plain(c))
}
