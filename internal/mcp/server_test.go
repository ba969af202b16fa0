package mcp

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/koopa0/canvas-mcp/internal/canvas"
	"github.com/koopa0/canvas-mcp/internal/log"
)

// newTestClient returns a Canvas client pointed at a fake server driven
// by the given handler. A nil handler replies 200 {} to everything.
func newTestClient(t *testing.T, handler http.HandlerFunc) *canvas.Client {
	t.Helper()

	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}
	}
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := canvas.New(srv.URL, "test-token", canvas.WithLogger(log.NewNop()))
	if err != nil {
		t.Fatalf("canvas.New() unexpected error: %v", err)
	}
	return client
}

func validConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Name:    "canvas-mcp-test",
		Version: "0.0.1",
		Logger:  log.NewNop(),
		Client:  newTestClient(t, nil),
	}
}

func TestNewServer(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "missing name", modify: func(c *Config) { c.Name = "" }, wantErr: "name"},
		{name: "missing version", modify: func(c *Config) { c.Version = "" }, wantErr: "version"},
		{name: "missing client", modify: func(c *Config) { c.Client = nil }, wantErr: "client"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(t)
			tt.modify(&cfg)

			server, err := NewServer(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("NewServer() unexpected error: %v", err)
				}
				if server == nil {
					t.Fatal("NewServer() returned nil server")
				}
				return
			}

			if err == nil {
				t.Fatalf("NewServer() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewServer() error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestNewServer_DefaultLogger(t *testing.T) {
	cfg := validConfig(t)
	cfg.Logger = nil

	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}
	if server.logger == nil {
		t.Error("NewServer() did not default the logger")
	}
}

func TestHandler(t *testing.T) {
	server, err := NewServer(validConfig(t))
	if err != nil {
		t.Fatalf("NewServer() unexpected error: %v", err)
	}
	if server.Handler() == nil {
		t.Fatal("Handler() returned nil")
	}
}
