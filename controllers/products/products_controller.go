package productsController

import (
	"strconv"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

const featuredLimit = 8

// Controller handles catalog reads and admin CRUD.
type Controller struct {
	Products stores.ProductStore
	Validate *validatorv10.Validate
}

type UpdateProductRequest struct {
	Name         *string               `json:"name" validate:"omitempty,min=3,max=100"`
	Description  *string               `json:"description" validate:"omitempty,min=10"`
	Price        *float64              `json:"price" validate:"omitempty,gt=0"`
	ComparePrice *float64              `json:"comparePrice" validate:"omitempty,gt=0"`
	Category     *string               `json:"category" validate:"omitempty,oneof=Electronics Clothing Sports 'Home & Garden' Books Other"`
	Stock        *int                  `json:"stock" validate:"omitempty,gte=0"`
	Rating       *float64              `json:"rating" validate:"omitempty,gte=0,lte=5"`
	NumReviews   *int                  `json:"numReviews" validate:"omitempty,gte=0"`
	Featured     *bool                 `json:"featured"`
	Tags         []string              `json:"tags"`
	Images       []models.ProductImage `json:"images" validate:"omitempty,dive"`
}

func (ctl *Controller) GetProducts(c *fiber.Ctx) error {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "12"), 10, 64)
	if err != nil {
		limit = 12
	}

	filter := stores.ProductFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Page:     page,
		Limit:    limit,
	}

	products, total, err := ctl.Products.Find(c.Context(), filter)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.List(c, total, products)
}

func (ctl *Controller) GetFeaturedProducts(c *fiber.Ctx) error {
	products, err := ctl.Products.FindFeatured(c.Context(), featuredLimit)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.List(c, int64(len(products)), products)
}

func (ctl *Controller) GetProductById(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	product, err := ctl.Products.FindById(c.Context(), id)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, product)
}

func (ctl *Controller) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &product); !ok {
		return err
	}

	if err := ctl.Products.Create(c.Context(), &product); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusCreated, product)
}

func (ctl *Controller) UpdateProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	var req UpdateProductRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	product, err := ctl.Products.FindById(c.Context(), id)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ComparePrice != nil {
		product.ComparePrice = req.ComparePrice
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Rating != nil {
		product.Rating = *req.Rating
	}
	if req.NumReviews != nil {
		product.NumReviews = *req.NumReviews
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.Tags != nil {
		product.Tags = req.Tags
	}
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := ctl.Products.Update(c.Context(), product); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, product)
}

func (ctl *Controller) DeleteProduct(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	if err := ctl.Products.Delete(c.Context(), id); err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.Message(c, fiber.StatusOK, "Product deleted")
}
