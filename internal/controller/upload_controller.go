package controller

import (
	"github.com/gofiber/fiber/v2"

	"classico-be/internal/pkg/logger"
	"classico-be/internal/service"
)

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
	Session(ctx *fiber.Ctx) error
}

type uploadController struct {
	service service.IUploadService
	log     logger.ILogger
}

func NewUploadController(service service.IUploadService, log logger.ILogger) IUploadController {
	return &uploadController{service: service, log: log}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload")
	h.Post("/", c.Upload)
	h.Get("/:id", c.Session)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "missing archive file field",
		})
	}

	result, err := c.service.Process(ctx.Context(), file)
	if err != nil {
		c.log.Warn("upload", "upload rejected", map[string]interface{}{
			"filename": file.Filename,
			"error":    err.Error(),
		})
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "project analyzed",
		"data":    result,
	})
}

func (c *uploadController) Session(ctx *fiber.Ctx) error {
	result, err := c.service.Session(ctx.Params("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "session found",
		"data":    result,
	})
}
