package productControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopsphere/ecommerce-api/auth"
	"github.com/shopsphere/ecommerce-api/models"
	"github.com/shopsphere/ecommerce-api/routes"
)

type envelope struct {
	Success int             `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupProductTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Product{}, &models.ProductImage{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupProductRoutes(r, db)
	return db, r
}

func seedUsers(t *testing.T, db *gorm.DB) (seller, otherSeller, customer models.User) {
	t.Helper()
	seller = models.User{Email: "seller@example.com", Password: "x", Role: models.RoleSeller, IsActive: true}
	otherSeller = models.User{Email: "rival@example.com", Password: "x", Role: models.RoleSeller, IsActive: true}
	customer = models.User{Email: "c@example.com", Password: "x", Role: models.RoleCustomer, IsActive: true}
	for _, u := range []*models.User{&seller, &otherSeller, &customer} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("failed to create user %s: %v", u.Email, err)
		}
	}
	return seller, otherSeller, customer
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

func bearer(t *testing.T, user models.User) string {
	t.Helper()
	tok, err := auth.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return tok
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode envelope %q: %v", w.Body.String(), err)
	}
	return env
}

func TestCreateProductSellerOnly(t *testing.T) {
	db, r := setupProductTest(t)
	seller, _, customer := seedUsers(t, db)
	category := seedCategory(t, db, "peripherals")

	body := gin.H{"name": "keyboard", "description": "mechanical", "price": "149.99", "quantity": 10, "category": category.ID}

	w := do(r, http.MethodPost, "/products/create/", bearer(t, customer), body)
	if w.Code != http.StatusForbidden {
		t.Errorf("customer create status = %d, want 403", w.Code)
	}
	if env := decode(t, w); env.Message != "Only sellers can add products." {
		t.Errorf("message = %q", env.Message)
	}

	w = do(r, http.MethodPost, "/products/create/", bearer(t, seller), body)
	if w.Code != http.StatusCreated {
		t.Fatalf("seller create status = %d: %s", w.Code, w.Body.String())
	}

	var product models.Product
	if err := db.First(&product).Error; err != nil {
		t.Fatalf("product not persisted: %v", err)
	}
	if product.CreatedByID != seller.ID {
		t.Errorf("created_by = %d, want %d", product.CreatedByID, seller.ID)
	}
	if !product.Price.Equal(decimal.RequireFromString("149.99")) {
		t.Errorf("price = %s, want 149.99", product.Price)
	}
	if !product.IsActive {
		t.Error("new product not active")
	}
}

func TestCreateProductValidation(t *testing.T) {
	db, r := setupProductTest(t)
	seller, _, _ := seedUsers(t, db)
	category := seedCategory(t, db, "peripherals")
	token := bearer(t, seller)

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing name", gin.H{"price": "10", "quantity": 1, "category": category.ID}},
		{"zero price", gin.H{"name": "x", "price": "0", "quantity": 1, "category": category.ID}},
		{"negative price", gin.H{"name": "x", "price": "-5", "quantity": 1, "category": category.ID}},
		{"negative quantity", gin.H{"name": "x", "price": "10", "quantity": -1, "category": category.ID}},
		{"unknown category", gin.H{"name": "x", "price": "10", "quantity": 1, "category": 9999}},
	}
	for _, tc := range cases {
		w := do(r, http.MethodPost, "/products/create/", token, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, w.Code)
		}
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 0 {
		t.Errorf("%d products persisted by invalid input", count)
	}
}

func TestListProductsScopedBySeller(t *testing.T) {
	db, r := setupProductTest(t)
	seller, otherSeller, customer := seedUsers(t, db)
	category := seedCategory(t, db, "peripherals")

	for i, owner := range []models.User{seller, seller, otherSeller} {
		product := models.Product{
			Name:        fmt.Sprintf("product-%d", i),
			Price:       decimal.NewFromInt(10),
			Quantity:    1,
			CategoryID:  category.ID,
			CreatedByID: owner.ID,
			IsActive:    true,
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("failed to seed product: %v", err)
		}
	}
	// Inactive products are hidden from customers.
	inactive := models.Product{
		Name: "retired", Price: decimal.NewFromInt(10), Quantity: 1,
		CategoryID: category.ID, CreatedByID: seller.ID, IsActive: false,
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("failed to seed inactive product: %v", err)
	}
	// Create must store the false flag as-is; a column default would
	// silently flip it back to active.
	var stored models.Product
	db.First(&stored, inactive.ID)
	if stored.IsActive {
		t.Fatal("inactive product persisted as active")
	}

	listLen := func(user models.User) int {
		w := do(r, http.MethodGet, "/products/list/", bearer(t, user), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list status = %d: %s", w.Code, w.Body.String())
		}
		env := decode(t, w)
		var products []json.RawMessage
		if err := json.Unmarshal(env.Data, &products); err != nil {
			t.Fatalf("list data not an array: %v", err)
		}
		return len(products)
	}

	if n := listLen(customer); n != 3 {
		t.Errorf("customer sees %d products, want 3", n)
	}
	if n := listLen(seller); n != 2 {
		t.Errorf("seller sees %d products, want 2", n)
	}
	if n := listLen(otherSeller); n != 1 {
		t.Errorf("other seller sees %d products, want 1", n)
	}
}

func TestUpdateProductOwnership(t *testing.T) {
	db, r := setupProductTest(t)
	seller, otherSeller, customer := seedUsers(t, db)
	category := seedCategory(t, db, "peripherals")

	product := models.Product{
		Name: "keyboard", Price: decimal.NewFromInt(100), Quantity: 5,
		CategoryID: category.ID, CreatedByID: seller.ID, IsActive: true,
	}
	db.Create(&product)
	path := fmt.Sprintf("/products/update/%d/", product.ID)
	body := gin.H{"name": "keyboard v2", "price": "120", "quantity": 4, "category": category.ID}

	for _, user := range []models.User{otherSeller, customer} {
		w := do(r, http.MethodPut, path, bearer(t, user), body)
		if w.Code != http.StatusForbidden {
			t.Errorf("%s update status = %d, want 403", user.Email, w.Code)
		}
	}

	w := do(r, http.MethodPut, path, bearer(t, seller), body)
	if w.Code != http.StatusOK {
		t.Fatalf("owner update status = %d: %s", w.Code, w.Body.String())
	}
	db.First(&product, product.ID)
	if product.Name != "keyboard v2" {
		t.Errorf("name = %q, want %q", product.Name, "keyboard v2")
	}
	if !product.Price.Equal(decimal.NewFromInt(120)) {
		t.Errorf("price = %s, want 120", product.Price)
	}
}

func TestDeleteProductPreservesOrderSnapshots(t *testing.T) {
	db, r := setupProductTest(t)
	seller, _, customer := seedUsers(t, db)
	category := seedCategory(t, db, "peripherals")

	product := models.Product{
		Name: "keyboard", Price: decimal.NewFromInt(100), Quantity: 5,
		CategoryID: category.ID, CreatedByID: seller.ID, IsActive: true,
	}
	db.Create(&product)

	// A settled order line and a cart line both reference the product.
	order := models.Order{
		CustomerID:  customer.ID,
		TotalAmount: decimal.NewFromInt(100),
		Status:      models.OrderStatusCompleted,
		Items: []models.OrderItem{{
			ProductID:  &product.ID,
			Quantity:   1,
			Price:      decimal.NewFromInt(100),
			TotalPrice: decimal.NewFromInt(100),
		}},
	}
	db.Create(&order)
	cart := models.Cart{CustomerID: customer.ID}
	db.Create(&cart)
	db.Create(&models.CartItem{CartID: cart.ID, ProductID: product.ID, Quantity: 2})

	w := do(r, http.MethodDelete, fmt.Sprintf("/products/delete/%d/", product.ID), bearer(t, seller), nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d: %s", w.Code, w.Body.String())
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 delete response carries a body: %s", w.Body.String())
	}

	var products int64
	db.Model(&models.Product{}).Count(&products)
	if products != 0 {
		t.Errorf("%d products remain", products)
	}

	// The order line survives with its snapshot, minus the product link.
	var item models.OrderItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("order item removed with product: %v", err)
	}
	if item.ProductID != nil {
		t.Errorf("order item still references product %d", *item.ProductID)
	}
	if !item.Price.Equal(decimal.NewFromInt(100)) {
		t.Errorf("snapshot price = %s, want 100", item.Price)
	}

	// Cart lines for the product are gone.
	var cartItems int64
	db.Model(&models.CartItem{}).Count(&cartItems)
	if cartItems != 0 {
		t.Errorf("%d cart items remain", cartItems)
	}
}

func TestDeleteProductOwnershipGuard(t *testing.T) {
	db, r := setupProductTest(t)
	seller, otherSeller, _ := seedUsers(t, db)
	category := seedCategory(t, db, "peripherals")

	product := models.Product{
		Name: "keyboard", Price: decimal.NewFromInt(100), Quantity: 5,
		CategoryID: category.ID, CreatedByID: seller.ID, IsActive: true,
	}
	db.Create(&product)

	w := do(r, http.MethodDelete, fmt.Sprintf("/products/delete/%d/", product.ID), bearer(t, otherSeller), nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("non-owner delete status = %d, want 403", w.Code)
	}

	var count int64
	db.Model(&models.Product{}).Count(&count)
	if count != 1 {
		t.Errorf("product removed by non-owner")
	}
}

func TestCategoryEndpoints(t *testing.T) {
	db, r := setupProductTest(t)
	seller, _, _ := seedUsers(t, db)
	token := bearer(t, seller)

	w := do(r, http.MethodPost, "/products/categories/create/", token,
		gin.H{"name": "audio", "description": "headsets and speakers"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category status = %d: %s", w.Code, w.Body.String())
	}

	// Duplicate names are rejected by the unique constraint.
	w = do(r, http.MethodPost, "/products/categories/create/", token, gin.H{"name": "audio"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate category status = %d, want 400", w.Code)
	}

	w = do(r, http.MethodGet, "/products/categories/list/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list categories status = %d: %s", w.Code, w.Body.String())
	}
	env := decode(t, w)
	var categories []models.Category
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		t.Fatalf("categories data not an array: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "audio" {
		t.Errorf("categories = %+v, want one named audio", categories)
	}
}
