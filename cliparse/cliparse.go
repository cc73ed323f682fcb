package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// Transport constants
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// DefaultBaseURL is the public Washington State Legislature web services host.
const DefaultBaseURL = "https://wslwebservices.leg.wa.gov"

type Config struct {
	Port           int
	BaseURL        string
	Transport      string
	TimeoutSeconds int
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("wa-leg-mcp", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "SSE server port")
	fs.StringVar(&cfg.BaseURL, "u", "", "Upstream WSL web services base URL")
	fs.StringVar(&cfg.Transport, "t", "", "MCP transport (stdio or sse)")
	fs.IntVar(&cfg.TimeoutSeconds, "timeout", 0, "Upstream HTTP timeout in seconds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3320 // default
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("WSL_API_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if cfg.Transport == "" {
		cfg.Transport = os.Getenv("MCP_TRANSPORT")
		if cfg.Transport == "" {
			cfg.Transport = TransportStdio
		}
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportSSE {
		return Config{}, errors.New("transport must be stdio or sse (use -t or MCP_TRANSPORT env)")
	}

	if cfg.TimeoutSeconds == 0 {
		if timeoutStr := os.Getenv("WSL_TIMEOUT_SECONDS"); timeoutStr != "" {
			timeout, err := strconv.Atoi(timeoutStr)
			if err != nil {
				return Config{}, errors.New("invalid WSL_TIMEOUT_SECONDS env variable")
			}
			cfg.TimeoutSeconds = timeout
		} else {
			cfg.TimeoutSeconds = 30 // default
		}
	}
	if cfg.TimeoutSeconds < 0 {
		return Config{}, errors.New("timeout must be positive")
	}

	return cfg, nil
}
