package controller

import (
	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IContactController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type contactController struct {
	service service.IContactService
}

func NewContactController(service service.IContactService) IContactController {
	return &contactController{service: service}
}

func (c *contactController) RegisterRoutes(r fiber.Router) {
	r.Post("/contact", c.Submit)
}

func (c *contactController) Submit(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	metadata := map[string]interface{}{
		"ip":         ctx.IP(),
		"user_agent": ctx.Get(fiber.HeaderUserAgent),
	}

	res, err := c.service.Submit(ctx.Context(), &req, metadata)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message Sent!", res))
}
