// Package config parses command-line flags for the server and client
// binaries. Every flag can also be set through a CHESS3D_* environment
// variable; an explicit flag wins.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

type Server struct {
	HTTPAddr     string
	TCPAddr      string
	AllowOrigins []string
	WriteTimeout time.Duration
	MaxFrameSize uint
	MoveRate     float64
	MoveBurst    int
}

type Client struct {
	Addr        string
	Offline     bool
	LogFile     string
	DialTimeout time.Duration
}

// usageOutput receives the flag listing when parsing fails or -h is given.
var usageOutput io.Writer = os.Stderr

// parse runs fs over args and prints the flag listing on failure. The
// error, flag.ErrHelp included, is returned wrapped.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil {
		return nil
	}
	fmt.Fprintf(usageOutput, "Usage of %s:\n", fs.Name())
	fs.SetOutput(usageOutput)
	fs.PrintDefaults()
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("parse %s flags: %w", fs.Name(), err)
}

func LoadServer(args []string) (Server, error) {
	var cfg Server
	var origins string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.HTTPAddr, "http", env("CHESS3D_HTTP", ":3000"),
		"Address for the HTTP API and websocket endpoint.")
	fs.StringVar(&cfg.TCPAddr, "tcp", env("CHESS3D_TCP", "0.0.0.0:7878"),
		"Address for the framed TCP protocol used by terminal clients.")
	fs.StringVar(&origins, "origins", env("CHESS3D_ORIGINS", "http://localhost:5173"),
		"Comma separated origins allowed to use the HTTP API.")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", envDuration("CHESS3D_WRITE_TIMEOUT", 5*time.Second),
		"Deadline for each message sent to a player. 0 disables it.")
	fs.UintVar(&cfg.MaxFrameSize, "max-frame", uint(envInt("CHESS3D_MAX_FRAME", 1<<20)),
		"Largest inbound frame in bytes.")
	fs.Float64Var(&cfg.MoveRate, "move-rate", envFloat("CHESS3D_MOVE_RATE", 20),
		"Inbound messages per second per connection. 0 disables pacing.")
	fs.IntVar(&cfg.MoveBurst, "move-burst", envInt("CHESS3D_MOVE_BURST", 5),
		"Burst allowance for -move-rate.")

	if err := parse(fs, args); err != nil {
		return Server{}, err
	}
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	if cfg.MaxFrameSize == 0 || cfg.MaxFrameSize > 1<<31 {
		return Server{}, fmt.Errorf("max-frame must be in (0, 2^31], got %d", cfg.MaxFrameSize)
	}
	if cfg.MoveRate < 0 {
		return Server{}, fmt.Errorf("move-rate must not be negative, got %v", cfg.MoveRate)
	}
	return cfg, nil
}

func LoadClient(args []string) (Client, error) {
	var cfg Client

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", env("CHESS3D_ADDR", "localhost:7878"),
		"Server address as host:port.")
	fs.BoolVar(&cfg.Offline, "offline", false,
		"Play both sides locally without a server.")
	fs.StringVar(&cfg.LogFile, "log", env("CHESS3D_LOG", ""),
		"Write logs to this file. Logs are discarded when empty.")
	fs.DurationVar(&cfg.DialTimeout, "dial-timeout", envDuration("CHESS3D_DIAL_TIMEOUT", 10*time.Second),
		"Timeout for connecting to the server.")

	if err := parse(fs, args); err != nil {
		return Client{}, err
	}
	if !cfg.Offline && cfg.Addr == "" {
		return Client{}, fmt.Errorf("addr is required unless -offline is set")
	}
	return cfg, nil
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
