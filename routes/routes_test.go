package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/TanthaiP001/spprosupply/configs"
	"github.com/TanthaiP001/spprosupply/entity"
	"github.com/TanthaiP001/spprosupply/middlewares"
	"github.com/TanthaiP001/spprosupply/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

var e2eSeq int

// newTestServer ตั้ง stack ทั้งชุดบน sqlite in-memory + local storage
func newTestServer(t *testing.T) (*gin.Engine, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e2eSeq++
	cfg := &configs.Config{
		Port:             "0",
		DBDriver:         "sqlite",
		DBSource:         fmt.Sprintf("file:e2e_%d?mode=memory&cache=shared", e2eSeq),
		JWTSecret:        "e2e-access-secret",
		JWTRefreshSecret: "e2e-refresh-secret",
		CSRFSecret:       "e2e-csrf-secret",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  7 * 24 * time.Hour,
		CSRFTokenTTL:     time.Hour,
		UploadDriver:     "local",
		UploadDir:        t.TempDir(),
		SiteURL:          "http://localhost:3000",
	}

	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	r := gin.New()
	store := storage.NewLocalStore(cfg.UploadDir)
	limiters := middlewares.NewRateLimiters(middlewares.NewMemoryStore())
	RegisterRoutes(r, cfg, store, limiters)
	return r, cfg
}

// client เก็บ cookie ระหว่าง request เหมือน browser
type client struct {
	t       *testing.T
	r       *gin.Engine
	cookies map[string]string
	csrf    string
}

func newClient(t *testing.T, r *gin.Engine) *client {
	return &client{t: t, r: r, cookies: map[string]string{}}
}

func (c *client) do(method, path string, body io.Reader, contentType string, headers map[string]string) *httptest.ResponseRecorder {
	c.t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for name, value := range c.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge < 0 {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck.Value
	}
	return w
}

func (c *client) postJSON(path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	c.t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		c.t.Fatalf("marshal payload: %v", err)
	}
	return c.do("POST", path, bytes.NewReader(body), "application/json", headers)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func (c *client) register(email string) {
	c.t.Helper()
	w := c.postJSON("/api/users/register", gin.H{
		"email":     email,
		"password":  "password123",
		"firstName": "สมชาย",
		"lastName":  "ใจดี",
		"phone":     "0812345678",
	}, nil)
	if w.Code != http.StatusCreated {
		c.t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	c.csrf, _ = decodeBody(c.t, w)["csrfToken"].(string)
}

func (c *client) login(email string) {
	c.t.Helper()
	w := c.postJSON("/api/users/login", gin.H{"email": email, "password": "password123"}, nil)
	if w.Code != http.StatusOK {
		c.t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	c.csrf, _ = decodeBody(c.t, w)["csrfToken"].(string)
}

func seedCatalog(t *testing.T) (entity.Category, entity.Product) {
	t.Helper()
	db := configs.DB()

	cat := entity.Category{Name: "เครื่องมือช่าง", Slug: "power-tools"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	p := entity.Product{Name: "สว่านไร้สาย", Slug: "cordless-drill", Price: 2590, CategoryID: cat.ID}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return cat, p
}

func seedAdmin(t *testing.T) entity.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("adminpass123"), bcrypt.DefaultCost)
	admin := entity.User{Email: "admin@example.com", Password: string(hashed), Role: "admin"}
	if err := configs.DB().Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

// multipart ของหน้า checkout: ข้อมูลจัดส่ง + items + สลิปโอนเงิน
func orderForm(t *testing.T, productID uint) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"firstName":   "สมชาย",
		"lastName":    "ใจดี",
		"phone":       "0812345678",
		"email":       "somchai@example.com",
		"address":     "99/1 หมู่ 4",
		"district":    "เมือง",
		"province":    "เชียงใหม่",
		"postalCode":  "50000",
		"shippingFee": "50",
		"items":       fmt.Sprintf(`[{"productId":%d,"quantity":2}]`, productID),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="paymentSlip"; filename="slip.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create slip part: %v", err)
	}
	part.Write([]byte("\x89PNG\r\n\x1a\nfake image bytes"))

	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	c := newClient(t, r)

	w := c.do("GET", "/health", nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: got %d", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	r, _ := newTestServer(t)
	_, product := seedCatalog(t)
	admin := seedAdmin(t)

	c := newClient(t, r)
	c.register("somchai@example.com")
	c.login("somchai@example.com")

	// สั่งซื้อพร้อมแนบสลิป
	body, contentType := orderForm(t, product.ID)
	w := c.do("POST", "/api/orders", body, contentType, map[string]string{middlewares.CSRFHeader: c.csrf})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	created := decodeBody(t, w)
	orderInfo, _ := created["order"].(map[string]any)
	orderNumber, _ := orderInfo["orderNumber"].(string)
	if !strings.HasPrefix(orderNumber, "ORD-") {
		t.Fatalf("unexpected order number %q", orderNumber)
	}
	orderID := int(orderInfo["id"].(float64))

	// ติดตามออเดอร์ (public)
	w = c.do("GET", "/api/orders/track?orderNumber="+orderNumber, nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("track: got %d: %s", w.Code, w.Body.String())
	}
	tracked, _ := decodeBody(t, w)["order"].(map[string]any)
	if tracked["status"] != "pending" {
		t.Errorf("fresh order status = %v, want pending", tracked["status"])
	}
	if tracked["total"].(float64) != 2590*2+50 {
		t.Errorf("total = %v, want %v", tracked["total"], 2590*2+50)
	}
	if tracked["paymentSlip"] == "" {
		t.Error("payment slip url missing")
	}

	// admin ไล่อัปเดตสถานะ
	adminHeaders := map[string]string{"X-User-Id": fmt.Sprint(admin.ID)}
	for _, status := range []string{"confirmed", "processing", "shipped", "completed"} {
		w = c.do("PUT", fmt.Sprintf("/api/orders/%d", orderID),
			strings.NewReader(fmt.Sprintf(`{"status":%q}`, status)), "application/json", adminHeaders)
		if w.Code != http.StatusOK {
			t.Fatalf("update status to %s: got %d: %s", status, w.Code, w.Body.String())
		}
	}

	// สถานะนอก allow-list ต้องโดนปฏิเสธ
	w = c.do("PUT", fmt.Sprintf("/api/orders/%d", orderID),
		strings.NewReader(`{"status":"verified"}`), "application/json", adminHeaders)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status: expected 400, got %d", w.Code)
	}

	// ฝั่งลูกค้าเห็นสถานะล่าสุด
	w = c.do("GET", "/api/orders/track?orderNumber="+orderNumber, nil, "", nil)
	tracked, _ = decodeBody(t, w)["order"].(map[string]any)
	if tracked["status"] != "completed" {
		t.Errorf("tracked status = %v, want completed", tracked["status"])
	}
}

func TestOrderRequiresCSRF(t *testing.T) {
	r, _ := newTestServer(t)
	_, product := seedCatalog(t)

	c := newClient(t, r)
	body, contentType := orderForm(t, product.ID)
	w := c.do("POST", "/api/orders", body, contentType, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 without CSRF token, got %d", w.Code)
	}
}

func TestGuestCheckoutWithCSRFEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	_, product := seedCatalog(t)

	c := newClient(t, r)
	w := c.do("GET", "/api/csrf-token", nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("csrf endpoint: got %d", w.Code)
	}
	token, _ := decodeBody(t, w)["csrfToken"].(string)

	body, contentType := orderForm(t, product.ID)
	w = c.do("POST", "/api/orders", body, contentType, map[string]string{middlewares.CSRFHeader: token})
	if w.Code != http.StatusCreated {
		t.Fatalf("guest checkout: expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProfileRequiresLogin(t *testing.T) {
	r, _ := newTestServer(t)
	c := newClient(t, r)

	w := c.do("GET", "/api/users/profile", nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	c.register("user@example.com")
	c.login("user@example.com")

	w = c.do("GET", "/api/users/profile", nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile after login: got %d: %s", w.Code, w.Body.String())
	}
	user, _ := decodeBody(t, w)["user"].(map[string]any)
	if user["email"] != "user@example.com" {
		t.Errorf("profile email = %v", user["email"])
	}
}

func TestRefreshFlow(t *testing.T) {
	r, _ := newTestServer(t)
	c := newClient(t, r)

	c.register("user@example.com")
	c.login("user@example.com")

	// ทิ้ง access token แล้ว refresh เอาตัวใหม่
	delete(c.cookies, "access_token")
	w := c.do("POST", "/api/users/refresh", nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("refresh: got %d: %s", w.Code, w.Body.String())
	}
	if c.cookies["access_token"] == "" {
		t.Fatal("refresh did not set a new access token cookie")
	}

	w = c.do("GET", "/api/users/profile", nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile with refreshed token: got %d", w.Code)
	}

	// refresh token ปลอม → 401 + cookie ถูกล้าง
	c.cookies["refresh_token"] = "garbage"
	delete(c.cookies, "access_token")
	w = c.do("POST", "/api/users/refresh", nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bogus refresh: expected 401, got %d", w.Code)
	}
}

func TestAdminRoutesRequireAdminHeader(t *testing.T) {
	r, _ := newTestServer(t)
	c := newClient(t, r)

	// ไม่มี header
	w := c.do("GET", "/api/orders", nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}

	// user ธรรมดาเอา id ตัวเองมาสวมก็ไม่ผ่าน
	c.register("user@example.com")
	db := configs.DB()
	var u entity.User
	if err := db.Where("email = ?", "user@example.com").First(&u).Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	w = c.do("GET", "/api/orders", nil, "", map[string]string{"X-User-Id": fmt.Sprint(u.ID)})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin, got %d", w.Code)
	}

	admin := seedAdmin(t)
	w = c.do("GET", "/api/orders", nil, "", map[string]string{"X-User-Id": fmt.Sprint(admin.ID)})
	if w.Code != http.StatusOK {
		t.Fatalf("admin list orders: got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminProductAndCategoryCRUD(t *testing.T) {
	r, _ := newTestServer(t)
	admin := seedAdmin(t)
	c := newClient(t, r)
	adminHeaders := map[string]string{"X-User-Id": fmt.Sprint(admin.ID)}

	// หมวดหมู่
	w := c.postJSON("/api/admin/categories", gin.H{"name": "Power Tools"}, adminHeaders)
	if w.Code != http.StatusCreated {
		t.Fatalf("create category: got %d: %s", w.Code, w.Body.String())
	}
	cat, _ := decodeBody(t, w)["category"].(map[string]any)
	if cat["slug"] != "power-tools" {
		t.Errorf("category slug = %v", cat["slug"])
	}
	catID := int(cat["id"].(float64))

	// สินค้า
	w = c.postJSON("/api/admin/products", gin.H{
		"name":       "Impact Drill",
		"price":      2590,
		"image":      "/uploads/products/impact-drill.jpg",
		"categoryId": catID,
	}, adminHeaders)
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: got %d: %s", w.Code, w.Body.String())
	}
	prod, _ := decodeBody(t, w)["product"].(map[string]any)
	if prod["slug"] != "impact-drill" {
		t.Errorf("product slug = %v", prod["slug"])
	}

	// ลบหมวดที่มีสินค้า → 400
	w = c.do("DELETE", fmt.Sprintf("/api/admin/categories/%d", catID), nil, "", adminHeaders)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("delete non-empty category: expected 400, got %d: %s", w.Code, w.Body.String())
	}

	// หน้าเว็บเห็นสินค้าผ่าน endpoint public
	w = c.do("GET", "/api/products/impact-drill", nil, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public product detail: got %d", w.Code)
	}
}

func TestAuthRateLimit(t *testing.T) {
	r, _ := newTestServer(t)
	c := newClient(t, r)

	// login ผิดรัวๆ เกิน 5 ครั้ง → 429
	var last *httptest.ResponseRecorder
	for i := 0; i < 6; i++ {
		last = c.postJSON("/api/users/login", gin.H{"email": "x@example.com", "password": "wrong-password"}, nil)
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", last.Code)
	}
	if last.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After header")
	}
}

func TestCheckRole(t *testing.T) {
	r, _ := newTestServer(t)
	admin := seedAdmin(t)
	c := newClient(t, r)

	// ไม่ส่ง header
	w := c.do("GET", "/api/admin/check-role", nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}

	// id ที่ไม่มีในระบบ
	w = c.do("GET", "/api/admin/check-role", nil, "", map[string]string{"X-User-Id": "9999"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown user, got %d", w.Code)
	}

	w = c.do("GET", "/api/admin/check-role", nil, "", map[string]string{"X-User-Id": fmt.Sprint(admin.ID)})
	if w.Code != http.StatusOK {
		t.Fatalf("check-role: got %d: %s", w.Code, w.Body.String())
	}
	user, _ := decodeBody(t, w)["user"].(map[string]any)
	if user["isAdmin"] != true {
		t.Errorf("isAdmin = %v, want true", user["isAdmin"])
	}
	if user["role"] != "admin" {
		t.Errorf("role = %v, want admin", user["role"])
	}
}

func TestListUsersRequiresAdmin(t *testing.T) {
	r, _ := newTestServer(t)
	c := newClient(t, r)
	c.register("user@example.com")

	w := c.do("GET", "/api/users", nil, "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without header, got %d", w.Code)
	}

	admin := seedAdmin(t)
	w = c.do("GET", "/api/users", nil, "", map[string]string{"X-User-Id": fmt.Sprint(admin.ID)})
	if w.Code != http.StatusOK {
		t.Fatalf("list users: got %d: %s", w.Code, w.Body.String())
	}
	out := decodeBody(t, w)
	if out["count"].(float64) != 2 {
		t.Errorf("count = %v, want 2", out["count"])
	}
}

func TestAdminStatistics(t *testing.T) {
	r, _ := newTestServer(t)
	admin := seedAdmin(t)
	_, product := seedCatalog(t)

	c := newClient(t, r)
	w := c.do("GET", "/api/csrf-token", nil, "", nil)
	token, _ := decodeBody(t, w)["csrfToken"].(string)

	body, contentType := orderForm(t, product.ID)
	w = c.do("POST", "/api/orders", body, contentType, map[string]string{middlewares.CSRFHeader: token})
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: got %d: %s", w.Code, w.Body.String())
	}

	w = c.do("GET", "/api/admin/statistics", nil, "", map[string]string{"X-User-Id": fmt.Sprint(admin.ID)})
	if w.Code != http.StatusOK {
		t.Fatalf("statistics: got %d: %s", w.Code, w.Body.String())
	}
	stats, _ := decodeBody(t, w)["statistics"].(map[string]any)
	if stats["totalOrders"].(float64) != 1 {
		t.Errorf("totalOrders = %v, want 1", stats["totalOrders"])
	}
	if stats["totalProducts"].(float64) != 1 {
		t.Errorf("totalProducts = %v, want 1", stats["totalProducts"])
	}
}
