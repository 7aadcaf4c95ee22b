package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ekarimov/restoran/internal/models"
	"github.com/ekarimov/restoran/internal/repo"
	"github.com/ekarimov/restoran/internal/service"
	"github.com/ekarimov/restoran/internal/tokens"
)

var testSecret = []byte("test-secret")

func newTestEnv(t *testing.T) (*echo.Echo, *repo.GormRepo) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
		&models.CartLine{},
	))

	r := &repo.GormRepo{DB: db}
	deps := &Deps{
		Catalog:   &CatalogHTTP{Svc: &service.CatalogService{Repo: r}},
		Cart:      &CartHTTP{Svc: &service.CartService{Repo: r}},
		Orders:    &OrderHTTP{Checkout: &service.CheckoutService{Repo: r}, Orders: &service.OrderService{Repo: r}},
		Admins:    &AdminHTTP{Svc: &service.AdminService{Repo: r, JWTSecret: testSecret}},
		Search:    &SearchHTTP{},
		JWTSecret: testSecret,
	}

	e := echo.New()
	Register(e, deps)
	return e, r
}

func doJSON(e *echo.Echo, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(sid string) *http.Cookie {
	return &http.Cookie{Name: cartCookieName, Value: sid}
}

func adminCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := tokens.SignAccess(testSecret, "1", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)
	return &http.Cookie{Name: "accessToken", Value: token}
}

func seedTestProduct(t *testing.T, r *repo.GormRepo, p models.Product) models.Product {
	t.Helper()
	require.NoError(t, r.CreateProduct(context.Background(), &p))
	return p
}

func seedTestCart(t *testing.T, r *repo.GormRepo, sid string, p models.Product, qty uint) {
	t.Helper()

	lines, err := r.LoadCart(context.Background(), sid)
	require.NoError(t, err)
	lines = append(lines, models.CartLine{
		SessionID: sid,
		ProductID: p.ID,
		Title:     p.Title,
		UnitPrice: p.Price,
		Discount:  p.Discount,
		Stock:     p.Stock,
		Quantity:  qty,
	})
	require.NoError(t, r.ReplaceCart(context.Background(), sid, lines))
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), "body: %s", rec.Body.String())
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func hasCookie(rec *httptest.ResponseRecorder, name string) bool {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name && ck.Value != "" {
			return true
		}
	}
	return false
}
