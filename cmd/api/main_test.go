package main

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/config"
)

func testConfig(t *testing.T, port string) *config.Config {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return &config.Config{
		Port:          port,
		DBDriver:      config.DriverSQLite,
		DBPath:        filepath.Join(t.TempDir(), "tracker.sqlite"),
		DBAutoMigrate: true,
		JWTSecret:     "test-secret-key-at-least-32-chars-long",
		JWTExpiry:     time.Hour,
	}
}

func runAsync(cfg *config.Config, quit chan os.Signal) <-chan error {
	done := make(chan error, 1)
	go func() { done <- run(cfg, quit) }()
	return done
}

func TestRun_PortInUseReturnsError(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	select {
	case err := <-runAsync(testConfig(t, port), make(chan os.Signal)):
		if err == nil {
			t.Error("run() on a busy port returned nil")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run() did not return after the listener failed")
	}
}

func TestRun_StopsOnSignal(t *testing.T) {
	quit := make(chan os.Signal, 1)
	done := runAsync(testConfig(t, "0"), quit)

	quit <- syscall.SIGTERM

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() error = %v", err)
		}
	case <-time.After(15 * time.Second):
		t.Fatal("run() did not return after the signal")
	}
}

func TestRun_DatabaseFailure(t *testing.T) {
	cfg := testConfig(t, "0")
	cfg.DBPath = filepath.Join(t.TempDir(), "missing", "dir", "tracker.sqlite")

	if err := run(cfg, make(chan os.Signal)); err == nil {
		t.Error("run() with an unopenable database returned nil")
	}
}
