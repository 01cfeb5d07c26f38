package authController

import (
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

// Controller handles registration, login and profile management.
type Controller struct {
	Users     stores.UserStore
	JWTSecret string
	Validate  *validatorv10.Validate
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// authPayload is the user document plus a fresh token, the shape the SPA
// stores after register/login.
type authPayload struct {
	*models.User
	Token string `json:"token"`
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}

	if err := ctl.Users.Create(c.Context(), user); err != nil {
		if err == stores.ErrDuplicateEmail {
			return responses.Error(c, fiber.StatusBadRequest, "User with same email already exists")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := ctl.createToken(user.Id.Hex())
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}

	return responses.OK(c, fiber.StatusCreated, authPayload{User: user, Token: token})
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	user, err := ctl.Users.FindByEmail(c.Context(), req.Email)
	if err != nil {
		if err == stores.ErrNotFound {
			return responses.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return responses.Error(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ctl.createToken(user.Id.Hex())
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, "Error generating token")
	}

	return responses.OK(c, fiber.StatusOK, authPayload{User: user, Token: token})
}

// Logout is a stateless acknowledgement; the client discards its token.
func (ctl *Controller) Logout(c *fiber.Ctx) error {
	return responses.Message(c, fiber.StatusOK, "Logged out successfully")
}

func (ctl *Controller) GetProfile(c *fiber.Ctx) error {
	return responses.OK(c, fiber.StatusOK, middlewares.CurrentUser(c))
}

func (ctl *Controller) UpdateProfile(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)

	var req UpdateProfileRequest
	if ok, err := validation.BindAndValidate(c, ctl.Validate, &req); !ok {
		return err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return responses.Error(c, fiber.StatusInternalServerError, "Error hashing password")
		}
		user.Password = string(hashed)
	}

	if err := ctl.Users.Update(c.Context(), user); err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return responses.OK(c, fiber.StatusOK, user)
}

func (ctl *Controller) createToken(userId string) (string, error) {
	claims := jwt.MapClaims{
		"id":  userId,
		"exp": time.Now().Add(time.Hour * 720).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ctl.JWTSecret))
}
