package config

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadServerDefaults(t *testing.T) {
	cfg, err := LoadServer(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":3000" || cfg.TCPAddr != "0.0.0.0:7878" {
		t.Fatalf("unexpected addresses %+v", cfg)
	}
	if cfg.WriteTimeout != 5*time.Second {
		t.Fatalf("unexpected write timeout %v", cfg.WriteTimeout)
	}
	if cfg.MaxFrameSize != 1<<20 {
		t.Fatalf("unexpected max frame %d", cfg.MaxFrameSize)
	}
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
}

func TestLoadServerFlagsAndEnv(t *testing.T) {
	t.Setenv("CHESS3D_TCP", ":9000")
	t.Setenv("CHESS3D_MOVE_BURST", "9")

	cfg, err := LoadServer([]string{"-http", ":8080", "-origins", "a, b,,", "-move-burst", "2", "-write-timeout", "0"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("flag not applied: %q", cfg.HTTPAddr)
	}
	if cfg.TCPAddr != ":9000" {
		t.Fatalf("env not applied: %q", cfg.TCPAddr)
	}
	if cfg.MoveBurst != 2 {
		t.Fatalf("flag must win over env, got %d", cfg.MoveBurst)
	}
	if cfg.WriteTimeout != 0 {
		t.Fatalf("expected write timeout to be disabled")
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[1] != "b" {
		t.Fatalf("unexpected origins %v", cfg.AllowOrigins)
	}
}

func TestLoadServerRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "UnknownFlag", args: []string{"-nope"}},
		{name: "ZeroFrame", args: []string{"-max-frame", "0"}},
		{name: "NegativeRate", args: []string{"-move-rate", "-1"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadServer(tt.args); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadClient(t *testing.T) {
	cfg, err := LoadClient([]string{"-addr", "example.org:7878"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != "example.org:7878" || cfg.Offline {
		t.Fatalf("unexpected config %+v", cfg)
	}

	if _, err := LoadClient([]string{"-addr", ""}); err == nil {
		t.Fatalf("expected missing address to fail")
	}
	cfg, err = LoadClient([]string{"-addr", "", "-offline"})
	if err != nil {
		t.Fatalf("offline play needs no address: %v", err)
	}
	if !cfg.Offline {
		t.Fatalf("expected offline mode")
	}
}

func TestHelpPrintsUsage(t *testing.T) {
	var buf bytes.Buffer
	usageOutput = &buf
	defer func() { usageOutput = os.Stderr }()

	if _, err := LoadServer([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	for _, name := range []string{"Usage of server", "-http", "-write-timeout", "-max-frame"} {
		if !strings.Contains(buf.String(), name) {
			t.Fatalf("usage is missing %q:\n%s", name, buf.String())
		}
	}

	buf.Reset()
	if _, err := LoadClient([]string{"-nope"}); err == nil || errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected a parse error, got %v", err)
	}
	if !strings.Contains(buf.String(), "-offline") {
		t.Fatalf("usage is missing -offline:\n%s", buf.String())
	}
}
