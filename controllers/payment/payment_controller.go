package paymentController

import (
	"math"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/payments"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

// Controller handles payment-intent creation and reconciliation of the
// processor's outcome back onto orders.
type Controller struct {
	Orders    stores.OrderStore
	Processor payments.Processor
	Validate  *validatorv10.Validate
}

type CreateIntentRequest struct {
	Amount  float64 `json:"amount"`
	OrderId string  `json:"orderId"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentId string `json:"paymentIntentId" validate:"required"`
	OrderId         string `json:"orderId" validate:"required"`
}

// CreatePaymentIntent asks the processor for a transaction denominated in
// cents, tagged with the caller and the order it pays for.
func (ctl *Controller) CreatePaymentIntent(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req CreateIntentRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	if req.Amount <= 0 {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid amount")
	}

	amount := int64(math.Round(req.Amount * 100))
	metadata := map[string]string{
		"orderId": req.OrderId,
		"userId":  user.Id.Hex(),
	}

	intent, err := ctl.Processor.CreateIntent(c.Context(), amount, "usd", metadata)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, fiber.Map{
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.Id,
	})
}

// ConfirmPayment queries the processor and, only when the transaction has
// succeeded, marks the order paid and moves it to processing. Any other
// processor state leaves the order untouched.
func (ctl *Controller) ConfirmPayment(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req ConfirmPaymentRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	orderId, err := primitive.ObjectIDFromHex(req.OrderId)
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	intent, err := ctl.Processor.GetIntent(c.Context(), req.PaymentIntentId)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if intent.Status != payments.StatusSucceeded {
		return responses.Error(c, fiber.StatusBadRequest, "Payment not completed")
	}

	order, err := ctl.Orders.FindById(c.Context(), orderId)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusNotFound, "Order not found")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	order.IsPaid = true
	order.PaidAt = &now
	order.PaymentResult = &models.PaymentResult{
		Id:           intent.Id,
		Status:       intent.Status,
		UpdateTime:   now.UTC().Format(time.RFC3339),
		EmailAddress: user.Email,
	}
	order.Status = models.OrderProcessing

	if err := ctl.Orders.Update(c.Context(), order); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, order)
}

// GetPaymentStatus returns the payment sub-state of an order to its owner or
// to an admin.
func (ctl *Controller) GetPaymentStatus(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	orderId, err := primitive.ObjectIDFromHex(c.Params("orderId"))
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
		return responses.Error(c, fiber.StatusForbidden, "Not authorized")
	}

	return responses.OK(c, fiber.StatusOK, fiber.Map{
		"isPaid":        order.IsPaid,
		"paidAt":        order.PaidAt,
		"paymentResult": order.PaymentResult,
	})
}
