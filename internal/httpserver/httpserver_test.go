package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeromade/storefront/internal/models"
	"github.com/zeromade/storefront/internal/pricing"
	"github.com/zeromade/storefront/internal/service/account"
	"github.com/zeromade/storefront/internal/service/catalog"
	"github.com/zeromade/storefront/internal/service/orders"
	"github.com/zeromade/storefront/internal/store"
	"github.com/zeromade/storefront/internal/tokens"
)

type testEnv struct {
	e       *echo.Echo
	account *account.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := store.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	accountSvc := &account.Service{Store: st, Tokens: tokens.NewService("test-secret", time.Hour)}
	catalogSvc := &catalog.Service{Store: st}
	orderSvc := &orders.Service{Store: st, Pricing: pricing.Default}

	e := echo.New()
	Register(e, &Deps{
		AccountSvc:     accountSvc,
		ProductHandler: &ProductHandler{Svc: catalogSvc},
		AuthHandler:    &AuthHandler{Svc: accountSvc},
		OrderHandler:   &OrderHandler{Svc: orderSvc},
	})

	return &testEnv{e: e, account: accountSvc}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(data))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// registerUser signs up via the real endpoint and hands back the token.
// The first registered user per env is the admin.
func (env *testEnv) registerUser(t *testing.T, name, email string) string {
	t.Helper()

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": name, "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var res account.AuthResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Token
}

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","service":"zeromade-api"}`, rec.Body.String())
}

func TestGetProducts(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	assert.Len(t, products, 8)
}

func TestGetProduct_BySlugAndNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/products/premium-black-hoodie", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/products/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestCreateProduct_RequiresAdmin(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.registerUser(t, "Admin", "first@example.com")
	customerToken := env.registerUser(t, "Customer", "shopper@example.com")

	body := map[string]any{
		"name":     "Beanie",
		"category": "Accessories",
		"price":    699,
		"image":    "https://cdn.example.com/beanie.jpg",
		"slug":     "beanie",
	}

	rec := env.do(t, http.MethodPost, "/api/products", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/products", customerToken, body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/products", adminToken, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.ID, "prod_"))
}

func TestDeleteProduct(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	adminToken := env.registerUser(t, "Admin", "first@example.com")

	rec := env.do(t, http.MethodDelete, "/api/products/1", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Product deleted"}`, rec.Body.String())

	rec = env.do(t, http.MethodDelete, "/api/products/1", adminToken, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddReview(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	token := env.registerUser(t, "A", "reviewer@example.com")

	rec := env.do(t, http.MethodPost, "/api/products/1/reviews", "", map[string]any{
		"rating": 4, "comment": "nice",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/products/1/reviews", token, map[string]any{
		"rating": 4, "comment": "nice",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var review models.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &review))
	assert.Equal(t, "reviewer@example.com", review.UserName)

	rec = env.do(t, http.MethodPost, "/api/products/1/reviews", token, map[string]any{
		"rating": 9, "comment": "nice",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "A", "email": "a@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	rec = env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "B", "email": "a@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "a@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "a@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/orders", "", map[string]any{"items": []any{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/orders", "", map[string]any{
		"items":    []map[string]any{{"id": "1", "name": "Hoodie", "price": 1000, "quantity": 2}},
		"customer": map[string]any{"email": "a@example.com"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var placed models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &placed))
	assert.Equal(t, 2000, placed.Total)

	rec = env.do(t, http.MethodGet, "/api/orders/"+placed.ID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/orders?email=a@example.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	rec = env.do(t, http.MethodGet, "/api/orders?email=other@example.com", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var theirs []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &theirs))
	assert.Empty(t, theirs)

	rec = env.do(t, http.MethodGet, "/api/orders/order_missing", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthenticate_RejectsBadHeaders(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/products/1/reviews", strings.NewReader(`{"rating":4,"comment":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc123")
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec2 := env.do(t, http.MethodPost, "/api/products/1/reviews", "not-a-jwt", map[string]any{
		"rating": 4, "comment": "x",
	})
	require.Equal(t, http.StatusUnauthorized, rec2.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec2.Body.String())
}
