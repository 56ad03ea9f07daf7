package controller

import (
	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type productController struct {
	service   service.ICatalogService
	jwtSecret string
}

func NewProductController(service service.ICatalogService, jwtSecret string) IProductController {
	return &productController{service: service, jwtSecret: jwtSecret}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("", c.List)
	h.Get("/categories", c.Categories)
	h.Post("", serverutils.AdminMiddleware(c.jwtSecret), c.Create)
}

func (c *productController) List(ctx *fiber.Ctx) error {
	var query dto.ListProductsQuery
	args := ctx.Context().QueryArgs()
	if args.Has("search") {
		search := ctx.Query("search")
		query.Search = &search
	}
	if args.Has("category") {
		category := ctx.Query("category")
		query.Category = &category
	}

	res, err := c.service.List(ctx.Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *productController) Categories(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success list categories", c.service.Categories(ctx.Context())))
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewBadRequestError("Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.CreatedResponse("Product added", res))
}
