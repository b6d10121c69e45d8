package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// BucketBindings collects repeated "-bucket name=url" flags.
// It implements the flag.Value interface.
type BucketBindings map[string]string

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-bucket bucket binding in format name=url (repeatable)
//	-c/-config json file path with configs
//	-version application version
//	-log-level minimum log level (debug, info, warn, error)
//	-expose-stack-trace append stack traces to 500 responses
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-storage-http-timeout HTTP storage client timeout (e.g., "5s")
//	-db-max-open-conns max open connections per SQL bucket
//	-db-migrate run schema migrations for SQL buckets
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	buckets := BucketBindings{}
	var jsonConfigPath string
	var version string
	var logLevel string
	var exposeStackTrace bool
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var storageHTTPTimeout time.Duration
	var dbMaxOpenConns int
	var dbMigrate bool

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&buckets, "bucket", "Bucket binding name=url (repeatable)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&version, "version", "", "Application version")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.BoolVar(&exposeStackTrace, "expose-stack-trace", false, "Append stack traces to 500 responses")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	flag.DurationVar(&storageHTTPTimeout, "storage-http-timeout", 0, "HTTP storage client timeout (e.g., 5s)")
	flag.IntVar(&dbMaxOpenConns, "db-max-open-conns", 0, "Max open connections per SQL bucket")
	flag.BoolVar(&dbMigrate, "db-migrate", false, "Run schema migrations for SQL buckets")

	flag.Parse()

	cfg := &StructuredConfig{
		App: App{
			Version:          version,
			LogLevel:         logLevel,
			ExposeStackTrace: exposeStackTrace,
		},
		Storage: Storage{
			HTTP: HTTPStorage{
				Timeout: storageHTTPTimeout,
			},
			DB: DB{
				MaxOpenConns: dbMaxOpenConns,
				Migrate:      dbMigrate,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
	if len(buckets) > 0 {
		cfg.Storage.Buckets = buckets
	}

	return cfg
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// String returns the bindings as a sorted, comma-separated name=url list.
func (b *BucketBindings) String() string {
	if b == nil || len(*b) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(*b))
	for name, rawURL := range *b {
		pairs = append(pairs, name+"="+rawURL)
	}
	sort.Strings(pairs)

	return strings.Join(pairs, ",")
}

// Set adds one name=url binding. The URL may itself contain '='.
func (b *BucketBindings) Set(s string) error {
	name, rawURL, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	rawURL = strings.TrimSpace(rawURL)
	if !ok || name == "" || rawURL == "" {
		return fmt.Errorf("need bucket binding in a form `name=url`, got %q", s)
	}

	if *b == nil {
		*b = BucketBindings{}
	}
	(*b)[name] = rawURL
	return nil
}
