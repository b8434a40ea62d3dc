// Package ticket serves ticket generation over http.
package ticket

import (
	"github.com/gofiber/fiber/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ticketgen/ticketgen/internal/config"
	"github.com/ticketgen/ticketgen/internal/service"
	gen "github.com/ticketgen/ticketgen/internal/ticket"
	"github.com/ticketgen/ticketgen/internal/web/handler"
)

// Path is the path of the ticket endpoint.
const Path = handler.APIPath + "tickets"

// Service is the ticket handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	tickets *service.TicketService
}

// Query are the accepted query parameters. Validation runs through fiber's StructValidator.
type Query struct {
	Strategy string `query:"strategy" validate:"omitempty,oneof=library secure sampling ascii"`
	Charset  string `query:"charset"`
	Length   *int   `query:"length" validate:"omitempty,min=0"`
	Count    int    `query:"count" validate:"min=0"`
}

// Init initializes the ticket handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, tickets *service.TicketService) error {
	if app == nil || cfg == nil || tickets == nil {
		log.Fatal().Msg(handler.ErrNilACTFatalLogMsg)
		return nil
	}

	s.cfg = cfg
	s.tickets = tickets

	app.Get(Path, s.Get)

	return nil
}

// Get generates one batch of tickets.
func (s *Service) Get(c fiber.Ctx) error {
	var q Query

	if err := c.Bind().Query(&q); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return err
		}

		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	batch, err := s.tickets.Generate(service.Request{
		Strategy: q.Strategy,
		Charset:  q.Charset,
		Length:   q.Length,
		Count:    q.Count,
	})
	if err != nil {
		if isBadRequest(err) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return err
	}

	return c.JSON(batch)
}

// isBadRequest reports whether err was caused by the request parameters.
func isBadRequest(err error) bool {
	return errors.Is(err, gen.ErrInvalidLength) ||
		errors.Is(err, gen.ErrInvalidCharset) ||
		errors.Is(err, gen.ErrUnknownStrategy) ||
		errors.Is(err, service.ErrInvalidCount) ||
		errors.Is(err, service.ErrLengthTooLarge)
}
