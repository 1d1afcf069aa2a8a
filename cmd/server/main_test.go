package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/JoaoSCoelho/my-finances-backend/internal/infrastructure/config"
)

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := &config.Config{
		HTTPPort:         "9090",
		HTTPReadTimeout:  5 * time.Second,
		HTTPWriteTimeout: 10 * time.Second,
		HTTPIdleTimeout:  30 * time.Second,
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	server := newServer(cfg, handler)

	if server.Addr != ":9090" {
		t.Errorf("Addr = %s, want :9090", server.Addr)
	}
	if server.ReadTimeout != 5*time.Second {
		t.Errorf("ReadTimeout = %s, want 5s", server.ReadTimeout)
	}
	if server.WriteTimeout != 10*time.Second {
		t.Errorf("WriteTimeout = %s, want 10s", server.WriteTimeout)
	}
	if server.IdleTimeout != 30*time.Second {
		t.Errorf("IdleTimeout = %s, want 30s", server.IdleTimeout)
	}
}
