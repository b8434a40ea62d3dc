// Package charset lists the charset table over http.
package charset

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/service"
	"github.com/ticketgen/ticketgen/internal/ticket"
	"github.com/ticketgen/ticketgen/internal/web/handler"
)

// Path is the path of the charset endpoints.
const Path = handler.APIPath + "charsets"

// Service is the charset handler service.
type Service struct {
	handler.Service
}

// Entry is one named charset.
type Entry struct {
	Name    string `json:"name"`
	Charset string `json:"charset"`
}

// Init initializes the charset handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, tickets *service.TicketService) error {
	if app == nil || cfg == nil || tickets == nil {
		log.Fatal().Msg(handler.ErrNilACTFatalLogMsg)
		return nil
	}

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.List)
		router.Get("/:name", s.Get)
	})

	return nil
}

// List returns the charset table sorted by name.
func (s *Service) List(c fiber.Ctx) error {
	names := ticket.Names()
	entries := make([]Entry, 0, len(names))

	for _, name := range names {
		charset, _ := ticket.Lookup(name)
		entries = append(entries, Entry{Name: name, Charset: charset})
	}

	return c.JSON(entries)
}

// Get returns a single charset or 404.
func (s *Service) Get(c fiber.Ctx) error {
	name := c.Params("name")

	charset, ok := ticket.Lookup(name)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown charset "+name)
	}

	return c.JSON(Entry{Name: name, Charset: charset})
}
