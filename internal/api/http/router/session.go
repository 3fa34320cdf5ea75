package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/runehealth/rune_backend/internal/api/http/handler"
)

func (r *Router) registerSessionRoutes(api fiber.Router, ih *handler.IntakeHandler) {
	sessions := api.Group("/sessions")

	sessions.Post("/", ih.Start)

	s := sessions.Group("/:id")
	s.Get("/", ih.Get)
	s.Get("/messages", ih.Messages)
	s.Post("/utterances", ih.ProcessUtterance)
	s.Patch("/record", ih.SetField)
	s.Post("/save", ih.Save)
}
