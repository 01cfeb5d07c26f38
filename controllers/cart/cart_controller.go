package cartController

import (
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

// Controller handles the caller's cart. Every route requires auth.
type Controller struct {
	Carts    stores.CartStore
	Products stores.ProductStore
	Validate *validatorv10.Validate
}

type AddToCartRequest struct {
	ProductId string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

func (ctl *Controller) GetCart(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	cart, err := ctl.Carts.FindByUser(c.Context(), user.Id)
	if err != nil {
		if err == stores.ErrNotFound {
			// No cart yet reads as an empty one; nothing is persisted.
			return responses.OK(c, fiber.StatusOK, &models.Cart{
				UserId: user.Id,
				Items:  []models.CartItem{},
			})
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.populate(c, cart); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, cart)
}

func (ctl *Controller) AddToCart(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req AddToCartRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	productId, err := primitive.ObjectIDFromHex(req.ProductId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
	}

	product, err := ctl.Products.FindById(c.Context(), productId)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Product not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	cart, err := ctl.Carts.FindByUser(c.Context(), user.Id)
	if err == stores.ErrNotFound {
		cart = &models.Cart{UserId: user.Id, Items: []models.CartItem{}}
	} else if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	quantity := req.Quantity
	for i, item := range cart.Items {
		if item.ProductId == productId {
			quantity += item.Quantity
			if quantity > product.Stock {
				return responses.Error(c, fiber.StatusBadRequest, "Insufficient stock for "+product.Name)
			}
			cart.Items[i].Quantity = quantity
			return ctl.save(c, cart)
		}
	}

	if quantity > product.Stock {
		return responses.Error(c, fiber.StatusBadRequest, "Insufficient stock for "+product.Name)
	}

	// Unit price is captured now; later catalog edits do not reprice the cart.
	cart.Items = append(cart.Items, models.CartItem{
		Id:        primitive.NewObjectID(),
		ProductId: productId,
		Quantity:  req.Quantity,
		Price:     product.Price,
	})

	return ctl.save(c, cart)
}

func (ctl *Controller) UpdateCartItem(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	itemId, err := primitive.ObjectIDFromHex(c.Params("itemId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid cart item ID format")
	}

	var req UpdateCartItemRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	cart, err := ctl.Carts.FindByUser(c.Context(), user.Id)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Cart is empty")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	for i, item := range cart.Items {
		if item.Id != itemId {
			continue
		}

		product, err := ctl.Products.FindById(c.Context(), item.ProductId)
		if err != nil {
			if err == stores.ErrNotFound {
				return responses.Error(c, fiber.StatusNotFound, "Product not found")
			}
			return responses.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		if req.Quantity > product.Stock {
			return responses.Error(c, fiber.StatusBadRequest, "Insufficient stock for "+product.Name)
		}

		cart.Items[i].Quantity = req.Quantity
		return ctl.save(c, cart)
	}

	return responses.Error(c, fiber.StatusNotFound, "Cart item not found")
}

func (ctl *Controller) RemoveFromCart(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	itemId, err := primitive.ObjectIDFromHex(c.Params("itemId"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid cart item ID format")
	}

	cart, err := ctl.Carts.FindByUser(c.Context(), user.Id)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Cart is empty")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	for i, item := range cart.Items {
		if item.Id == itemId {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return ctl.save(c, cart)
		}
	}

	return responses.Error(c, fiber.StatusNotFound, "Cart item not found")
}

func (ctl *Controller) ClearCart(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	if err := ctl.Carts.Clear(c.Context(), user.Id); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, &models.Cart{
		UserId: user.Id,
		Items:  []models.CartItem{},
	})
}

// save recomputes the total, persists the cart and responds with the
// populated document.
func (ctl *Controller) save(c *fiber.Ctx, cart *models.Cart) error {
	cart.Recalculate()

	if err := ctl.Carts.Save(c.Context(), cart); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.populate(c, cart); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, cart)
}

// populate attaches live product documents to the cart lines. Lines whose
// product was deleted keep a nil Product rather than failing the read.
func (ctl *Controller) populate(c *fiber.Ctx, cart *models.Cart) error {
	for i := range cart.Items {
		product, err := ctl.Products.FindById(c.Context(), cart.Items[i].ProductId)
		if err == stores.ErrNotFound {
			continue
		}
		if err != nil {
			return err
		}
		cart.Items[i].Product = product
	}
	return nil
}
