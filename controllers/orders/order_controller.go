package orderController

import (
	"log"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

// Controller handles order placement, queries and admin status updates.
type Controller struct {
	Orders   stores.OrderStore
	Products stores.ProductStore
	Carts    stores.CartStore
	Validate *validatorv10.Validate
}

type OrderItemRequest struct {
	Product  string  `json:"product" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Image    string  `json:"image"`
}

type ShippingAddressRequest struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	ItemsPrice      float64                `json:"itemsPrice" validate:"gte=0"`
	TaxPrice        float64                `json:"taxPrice" validate:"gte=0"`
	ShippingPrice   float64                `json:"shippingPrice" validate:"gte=0"`
	TotalPrice      float64                `json:"totalPrice" validate:"required,gt=0"`
}

type UpdateStatusRequest struct {
	Status      *string `json:"status"`
	IsDelivered *bool   `json:"isDelivered"`
}

type reservation struct {
	productId primitive.ObjectID
	quantity  int
}

// CreateOrder validates and reserves stock per item, snapshots the items
// into a new order and clears the caller's cart. Reservations made before a
// failing item are released, so a failed placement never leaks stock.
func (ctl *Controller) CreateOrder(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req CreateOrderRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	var reserved []reservation
	release := func() {
		for _, r := range reserved {
			if err := ctl.Products.ReleaseStock(c.Context(), r.productId, r.quantity); err != nil {
				log.Printf("release stock for %s: %v", r.productId.Hex(), err)
			}
		}
	}

	orderItems := make([]models.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		productId, err := primitive.ObjectIDFromHex(item.Product)
		if err != nil {
			release()
			return responses.Error(c, fiber.StatusBadRequest, "Invalid product ID format")
		}

		if err := ctl.Products.ReserveStock(c.Context(), productId, item.Quantity); err != nil {
			release()
			switch err {
			case stores.ErrNotFound:
				return responses.Error(c, fiber.StatusNotFound, "Product "+item.Product+" not found")
			case stores.ErrInsufficientStock:
				return responses.Error(c, fiber.StatusBadRequest, "Insufficient stock for "+item.Name)
			default:
				return responses.Error(c, fiber.StatusInternalServerError, err.Error())
			}
		}
		reserved = append(reserved, reservation{productId: productId, quantity: item.Quantity})

		orderItems = append(orderItems, models.OrderItem{
			ProductId: productId,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	order := &models.Order{
		UserId:     user.Id,
		OrderItems: orderItems,
		ShippingAddress: models.ShippingAddress{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ItemsPrice:    req.ItemsPrice,
		TaxPrice:      req.TaxPrice,
		ShippingPrice: req.ShippingPrice,
		TotalPrice:    req.TotalPrice,
		Status:        models.OrderPending,
	}

	if err := ctl.Orders.Create(c.Context(), order); err != nil {
		release()
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// Best effort: the order exists either way, the client refetches the
	// cart after checkout.
	if err := ctl.Carts.Clear(c.Context(), user.Id); err != nil {
		log.Printf("clear cart for %s: %v", user.Id.Hex(), err)
	}

	return responses.OK(c, fiber.StatusCreated, order)
}

// GetOrders lists the caller's orders, newest first.
func (ctl *Controller) GetOrders(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	orders, err := ctl.Orders.FindByUser(c.Context(), user.Id)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.List(c, int64(len(orders)), orders)
}

// GetOrderById returns one order to its owner or to an admin.
func (ctl *Controller) GetOrderById(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	orderId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	order, err := ctl.Orders.FindById(c.Context(), orderId)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if order.UserId != user.Id && !user.IsAdmin() {
		return responses.Error(c, fiber.StatusForbidden, "Not authorized to view this order")
	}

	return responses.OK(c, fiber.StatusOK, order)
}

// UpdateOrderStatus is admin-only. A supplied status overwrites the current
// one verbatim; there is no transition graph. A true delivered flag stamps
// the delivery time.
func (ctl *Controller) UpdateOrderStatus(c *fiber.Ctx) error {
	orderId, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var req UpdateStatusRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	order, err := ctl.Orders.FindById(c.Context(), orderId)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if req.Status != nil {
		status := models.OrderStatus(*req.Status)
		if !status.Valid() {
			return responses.Error(c, fiber.StatusBadRequest, "Invalid order status")
		}
		order.Status = status
	}

	if req.IsDelivered != nil {
		order.IsDelivered = *req.IsDelivered
		if *req.IsDelivered {
			now := time.Now()
			order.DeliveredAt = &now
		}
	}

	if err := ctl.Orders.Update(c.Context(), order); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, order)
}
