package routes

import (
	"product-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, productHandler *handlers.ProductHandler, uploadHandler *handlers.UploadHandler) {
	// Product routes - create and search
	product := app.Group("/product")
	{
		product.Post("/", productHandler.CreateProduct)
		product.Get("/", productHandler.GetProducts)
	}

	// Language directory - read-only reference data
	app.Get("/languages", productHandler.GetLanguages)

	// Product image uploads
	upload := app.Group("/upload")
	{
		upload.Get("/presign", uploadHandler.GetPresignedURL)
	}
}
