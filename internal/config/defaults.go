package config

import "time"

const defaultPort = 8080

const defaultServiceTimeout = 3 * time.Second

const defaultLogLevel = "info"

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "yards",
}

var defaultFlash = Flash{
	Backend: FlashBackendCookie,
	TTL:     time.Minute,
}

var defaultRedis = Redis{
	Addr: "127.0.0.1:6379",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       10,
	Burst:      20,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default HTTP port.
func DefaultPort() int { return defaultPort }

// DefaultServiceTimeout returns the default timeout of a service operation.
func DefaultServiceTimeout() time.Duration { return defaultServiceTimeout }

// DefaultLogLevel returns the default log level.
func DefaultLogLevel() string { return defaultLogLevel }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultFlash returns the default flash settings.
func DefaultFlash() Flash { return defaultFlash }

// DefaultRedis returns the default redis settings.
func DefaultRedis() Redis { return defaultRedis }

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultPprof returns the default pprof settings.
func DefaultPprof() PprofConfig { return defaultPprof }
