package config

// This file turns the orchestrator-provided cache descriptor into a Redis
// client. The descriptor is optional: callers treat every error returned here
// as "no cache" and keep serving without one.

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

var (
	// ErrEmptyDescriptor is returned when no descriptor was provided.
	ErrEmptyDescriptor = errors.New("empty cache descriptor")
	// ErrMalformedDescriptor is returned when the descriptor is not host:port.
	ErrMalformedDescriptor = errors.New("malformed cache descriptor")
	// ErrInvalidPort is returned when the port is not an integer in 1..65535.
	ErrInvalidPort = errors.New("invalid cache port")
)

// knownSchemes are stripped from the front of a descriptor before splitting.
var knownSchemes = []string{"tcp://", "redis://"}

// Endpoint is the parsed form of a cache descriptor.
type Endpoint struct {
	Host     string
	Port     int
	Password string // from a ",password=" option
	TLS      bool   // from a ",ssl=true" option
}

// Addr returns host:port suitable for redis.Options.Addr.
func (e Endpoint) Addr() string {
	return e.Host + ":" + strconv.Itoa(e.Port)
}

// ParseDescriptor parses "[scheme://]host:port[,key=value...]". The host and
// port must be separated by exactly one colon. A password option takes the
// rest of the descriptor, so it may contain commas. Errors never quote option
// values.
func ParseDescriptor(s string) (Endpoint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Endpoint{}, ErrEmptyDescriptor
	}
	for _, scheme := range knownSchemes {
		if strings.HasPrefix(s, scheme) {
			s = strings.TrimPrefix(s, scheme)
			break
		}
	}

	addr, opts, _ := strings.Cut(s, ",")
	addr = strings.TrimSpace(addr)
	host, portStr, ok := strings.Cut(addr, ":")
	if !ok || host == "" || strings.Contains(portStr, ":") {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrMalformedDescriptor, addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidPort, portStr)
	}

	ep := Endpoint{Host: host, Port: port}
	if err := parseOptions(opts, &ep); err != nil {
		return Endpoint{}, err
	}
	return ep, nil
}

const passwordOpt = "password="

func parseOptions(opts string, ep *Endpoint) error {
	for n := 1; ; n++ {
		opts = strings.TrimLeft(opts, " ")
		if opts == "" {
			return nil
		}
		if len(opts) >= len(passwordOpt) && strings.EqualFold(opts[:len(passwordOpt)], passwordOpt) {
			ep.Password = opts[len(passwordOpt):]
			return nil
		}
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		k, v, ok := strings.Cut(strings.TrimSpace(opt), "=")
		if !ok {
			return fmt.Errorf("%w: option %d has no value", ErrMalformedDescriptor, n)
		}
		if strings.EqualFold(k, "ssl") {
			ep.TLS = strings.EqualFold(v, "true") || v == "1"
		}
	}
}

// NewRedisClient builds a client for ep. It does not contact the server;
// connection problems surface on the first command. Retries are disabled.
func NewRedisClient(ep Endpoint) *redis.Client {
	var tlsConf *tls.Config
	if ep.TLS {
		tlsConf = &tls.Config{ServerName: ep.Host}
	}
	return redis.NewClient(&redis.Options{
		Addr:       ep.Addr(),
		Password:   ep.Password,
		TLSConfig:  tlsConf,
		MaxRetries: -1,
	})
}
