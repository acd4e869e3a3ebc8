package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/nkornelsen/chess3d/internal/middleware"
)

// RegisterRoutes mounts the websocket endpoint and the read-only REST API.
func RegisterRoutes(app *fiber.App, gameController *GameController, wsController *WebSocketController, origins []string) {
	app.Use("/ws", middleware.EnsureClientID(), middleware.WebSocketUpgrade())
	app.Get("/ws/game", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	}))

	api := app.Group("/api", middleware.EnsureClientID())
	gameRoutes := api.Group("/game")
	gameRoutes.Get("/", gameController.GetGame)
	gameRoutes.Get("/board", gameController.GetBoard)
	gameRoutes.Get("/moves/:x/:y/:z", gameController.GetPieceMoves)
}
