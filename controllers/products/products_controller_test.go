package productsController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	productsController "github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/controllers/products"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/middlewares"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/routes"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores/storetest"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/validation"
)

type testEnv struct {
	app      *fiber.App
	users    *storetest.UserStore
	products *storetest.ProductStore
	user     *models.User
	admin    *models.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    storetest.NewUserStore(),
		products: storetest.NewProductStore(),
	}
	env.user = env.users.Seed(&models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleUser})
	env.admin = env.users.Seed(&models.User{Name: "Root", Email: "root@example.com", Role: models.RoleAdmin})

	auth := func(c *fiber.Ctx) error {
		if hex := c.Get("X-Test-User"); hex != "" {
			id, err := primitive.ObjectIDFromHex(hex)
			if err != nil {
				return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
			}
			user, err := env.users.FindById(c.Context(), id)
			if err != nil {
				return responses.Error(c, fiber.StatusUnauthorized, "User no longer exists")
			}
			c.Locals("user", user)
			return c.Next()
		}
		return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
	}

	env.app = fiber.New()
	routes.ProductsRoutes(env.app, &productsController.Controller{
		Products: env.products,
		Validate: validation.New(),
	}, auth, middlewares.AdminOnly())
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, as *models.User, body interface{}) (*http.Response, responses.APIResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if as != nil {
		req.Header.Set("X-Test-User", as.Id.Hex())
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	var envelope responses.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func validProduct() fiber.Map {
	return fiber.Map{
		"name":        "Wireless Headphones",
		"description": "High-quality wireless headphones with noise cancellation.",
		"price":       89.99,
		"category":    "Electronics",
		"stock":       50,
		"rating":      4.5,
		"tags":        []string{"wireless", "audio"},
		"images": []fiber.Map{
			{"url": "https://example.com/headphones.jpg", "public_id": "sample1"},
		},
	}
}

func TestGetProducts(t *testing.T) {
	env := newTestEnv(t)
	env.products.Seed(&models.Product{Name: "Wireless Headphones", Category: "Electronics", Price: 89.99})
	env.products.Seed(&models.Product{Name: "Running Shoes", Category: "Sports", Price: 79.99})

	t.Run("all", func(t *testing.T) {
		resp, envelope := env.request(t, http.MethodGet, "/api/products", nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.NotNil(t, envelope.Count)
		assert.EqualValues(t, 2, *envelope.Count)
	})

	t.Run("filtered by category", func(t *testing.T) {
		resp, envelope := env.request(t, http.MethodGet, "/api/products?category=Sports", nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 1, *envelope.Count)
	})

	t.Run("searched by name", func(t *testing.T) {
		resp, envelope := env.request(t, http.MethodGet, "/api/products?search=headphones", nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 1, *envelope.Count)
	})
}

func TestGetProductById(t *testing.T) {
	env := newTestEnv(t)
	product := env.products.Seed(&models.Product{Name: "Yoga Mat Premium", Price: 29.99})

	t.Run("found", func(t *testing.T) {
		resp, envelope := env.request(t, http.MethodGet, "/api/products/"+product.Id.Hex(), nil, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		data := envelope.Data.(map[string]interface{})
		assert.Equal(t, "Yoga Mat Premium", data["name"])
	})

	t.Run("missing", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodGet, "/api/products/"+primitive.NewObjectID().Hex(), nil, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed id", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodGet, "/api/products/not-an-id", nil, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv(t)

	t.Run("admin only", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodPost, "/api/products", env.user, validProduct())
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		resp, _ = env.request(t, http.MethodPost, "/api/products", nil, validProduct())
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("created", func(t *testing.T) {
		resp, envelope := env.request(t, http.MethodPost, "/api/products", env.admin, validProduct())
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		data := envelope.Data.(map[string]interface{})
		assert.NotEmpty(t, data["_id"])
		assert.Len(t, env.products.Products, 1)
	})

	t.Run("validation", func(t *testing.T) {
		body := validProduct()
		body["category"] = "Spaceships"
		resp, envelope := env.request(t, http.MethodPost, "/api/products", env.admin, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Validation failed", envelope.Message)
	})
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)
	product := env.products.Seed(&models.Product{
		Name: "Classic T-Shirt", Description: "Comfortable cotton t-shirt.",
		Price: 19.99, Category: "Clothing", Stock: 200,
	})

	resp, envelope := env.request(t, http.MethodPut, "/api/products/"+product.Id.Hex(), env.admin, fiber.Map{
		"price": 24.99,
		"stock": 150,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := envelope.Data.(map[string]interface{})

	// Supplied fields applied, the rest untouched.
	assert.Equal(t, 24.99, data["price"])
	assert.EqualValues(t, 150, data["stock"])
	assert.Equal(t, "Classic T-Shirt", data["name"])

	t.Run("missing product", func(t *testing.T) {
		resp, _ := env.request(t, http.MethodPut, "/api/products/"+primitive.NewObjectID().Hex(), env.admin, fiber.Map{"price": 5.0})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)
	product := env.products.Seed(&models.Product{Name: "Laptop Backpack", Price: 59.99})

	resp, _ := env.request(t, http.MethodDelete, "/api/products/"+product.Id.Hex(), env.admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, env.products.Products)

	resp, _ = env.request(t, http.MethodDelete, "/api/products/"+product.Id.Hex(), env.admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetFeaturedProducts(t *testing.T) {
	env := newTestEnv(t)
	env.products.Seed(&models.Product{Name: "Smart Watch Pro", Featured: true})
	env.products.Seed(&models.Product{Name: "Classic T-Shirt", Featured: false})

	resp, envelope := env.request(t, http.MethodGet, "/api/products/featured", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, envelope.Count)
	assert.EqualValues(t, 1, *envelope.Count)
}
