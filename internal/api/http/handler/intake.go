package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/runehealth/rune_backend/internal/intake"
	"github.com/runehealth/rune_backend/internal/service/session"
)

type IntakeHandler struct {
	svc session.Service
}

func NewIntakeHandler(svc session.Service) *IntakeHandler {
	return &IntakeHandler{svc: svc}
}

func mapSessionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, session.ErrEmptyUtterance),
		errors.Is(err, session.ErrUnknownField),
		errors.Is(err, session.ErrInvalidValue):
		return badRequest(c, err.Error())
	case errors.Is(err, session.ErrEmptyRecord):
		return unprocessable(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /sessions
func (h *IntakeHandler) Start(c fiber.Ctx) error {
	sess, err := h.svc.Start(c.Context())
	if err != nil {
		return mapSessionError(c, err)
	}
	return created(c, sess)
}

// GET /sessions/:id
func (h *IntakeHandler) Get(c fiber.Ctx) error {
	sess, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, sess)
}

// GET /sessions/:id/messages
func (h *IntakeHandler) Messages(c fiber.Ctx) error {
	msgs, err := h.svc.Messages(c.Context(), c.Params("id"))
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, msgs)
}

// POST /sessions/:id/utterances
func (h *IntakeHandler) ProcessUtterance(c fiber.Ctx) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.ProcessUtterance(c.Context(), c.Params("id"), body.Text)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, res)
}

// PATCH /sessions/:id/record
func (h *IntakeHandler) SetField(c fiber.Ctx) error {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Field == "" {
		return badRequest(c, "field is required")
	}

	rec, err := h.svc.SetField(c.Context(), c.Params("id"), intake.Field(body.Field), body.Value)
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, rec)
}

// POST /sessions/:id/save
func (h *IntakeHandler) Save(c fiber.Ctx) error {
	res, err := h.svc.Save(c.Context(), c.Params("id"))
	if err != nil {
		return mapSessionError(c, err)
	}
	return ok(c, res)
}
