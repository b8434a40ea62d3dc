package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/service"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, tickets *service.TicketService) error
}
