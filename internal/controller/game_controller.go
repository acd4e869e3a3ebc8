package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nkornelsen/chess3d/internal/model"
	"github.com/nkornelsen/chess3d/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) GetGame(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.GetGame())
}

func (gc *GameController) GetBoard(c *fiber.Ctx) error {
	return c.JSON(gc.gameService.GetBoard())
}

// GetPieceMoves lists the moves of the piece at /moves/:x/:y/:z.
func (gc *GameController) GetPieceMoves(c *fiber.Ctx) error {
	var coords [3]int
	for i, name := range []string{"x", "y", "z"} {
		v, err := strconv.Atoi(c.Params(name))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "coordinate " + name + " must be an integer",
			})
		}
		coords[i] = v
	}

	pos := model.Position{X: coords[0], Y: coords[1], Z: coords[2]}
	moves, err := gc.gameService.GetPieceMoves(pos)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPosition) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate moves",
		})
	}
	if moves == nil {
		moves = []model.Move{}
	}

	return c.JSON(fiber.Map{
		"from":  pos,
		"moves": moves,
	})
}
