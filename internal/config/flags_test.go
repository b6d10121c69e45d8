package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.addr.String()
			assert.Equal(t, tt.expected, result)
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedHost string
		expectedPort int
	}{
		{name: "localhost", input: "localhost:8080", expectedHost: "localhost", expectedPort: 8080},
		{name: "ipv4", input: "127.0.0.1:3000", expectedHost: "127.0.0.1", expectedPort: 3000},
		{name: "all interfaces", input: ":8080", expectedHost: "", expectedPort: 8080},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example.com:8080", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHost, addr.Host)
			assert.Equal(t, tt.expectedPort, addr.Port)
		})
	}
}

func TestBucketBindings_Set(t *testing.T) {
	b := BucketBindings{}

	require.NoError(t, b.Set("assets=file:///srv/assets"))
	require.NoError(t, b.Set(" pg = postgres://u:p@localhost/db?sslmode=disable "))

	assert.Equal(t, "file:///srv/assets", b["assets"])
	assert.Equal(t, "postgres://u:p@localhost/db?sslmode=disable", b["pg"])
}

func TestBucketBindings_SetInvalid(t *testing.T) {
	for _, input := range []string{"", "assets", "=file:///srv", "assets="} {
		t.Run(input, func(t *testing.T) {
			b := BucketBindings{}
			assert.Error(t, b.Set(input))
			assert.Empty(t, b)
		})
	}
}

func TestBucketBindings_String(t *testing.T) {
	b := BucketBindings{"b": "file:///b", "a": "file:///a"}
	assert.Equal(t, "a=file:///a,b=file:///b", b.String())

	var empty BucketBindings
	assert.Equal(t, "", empty.String())
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-bucket", "assets=file:///srv/assets",
				"-bucket", "cdn=https://cdn.example.com",
				"-c", "/path/to/config.json",
				"-version", "1.0.0",
				"-log-level", "error",
				"-expose-stack-trace",
				"-request-timeout", "30s",
				"-shutdown-timeout", "10s",
				"-storage-http-timeout", "5s",
				"-db-max-open-conns", "6",
				"-db-migrate",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, map[string]string{
					"assets": "file:///srv/assets",
					"cdn":    "https://cdn.example.com",
				}, cfg.Storage.Buckets)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
				assert.Equal(t, "1.0.0", cfg.App.Version)
				assert.Equal(t, "error", cfg.App.LogLevel)
				assert.True(t, cfg.App.ExposeStackTrace)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
				assert.Equal(t, 5*time.Second, cfg.Storage.HTTP.Timeout)
				assert.Equal(t, 6, cfg.Storage.DB.MaxOpenConns)
				assert.True(t, cfg.Storage.DB.Migrate)
			},
		},
		{
			name: "config alias flag",
			args: []string{
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Nil(t, cfg.Storage.Buckets)
				assert.Empty(t, cfg.JSONFilePath)
				assert.False(t, cfg.App.ExposeStackTrace)
				assert.Zero(t, cfg.Server.RequestTimeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			// Set os.Args to simulate command line arguments
			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
