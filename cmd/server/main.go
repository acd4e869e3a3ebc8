package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nkornelsen/chess3d/internal/config"
	"github.com/nkornelsen/chess3d/internal/controller"
	"github.com/nkornelsen/chess3d/internal/service"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadServer(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	session := service.NewSession()
	gameService := service.NewGameService(session)
	log.Printf("game %s created", session.ID)

	// Initialize controllers
	opts := controller.Options{
		WriteTimeout: cfg.WriteTimeout,
		MaxFrameSize: uint32(cfg.MaxFrameSize),
		MoveRate:     rate.Limit(cfg.MoveRate),
		MoveBurst:    cfg.MoveBurst,
	}
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService, opts)
	tcpController := controller.NewTCPController(gameService, opts)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, OPTIONS",
		AllowCredentials: !slices.Contains(cfg.AllowOrigins, "*"),
	}))
	controller.RegisterRoutes(app, gameController, wsController, cfg.AllowOrigins)

	ln, err := net.Listen("tcp", cfg.TCPAddr)
	if err != nil {
		log.Fatalf("listen on %s: %v", cfg.TCPAddr, err)
	}
	log.Printf("accepting players on %s", ln.Addr())
	go func() {
		if err := tcpController.Serve(ctx, ln); err != nil {
			log.Printf("tcp server stopped: %v", err)
			stop()
		}
	}()

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("http shutdown: %v", err)
		}
	}()

	log.Printf("http api on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
