package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Edsonffff/catering-new/configs"
	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/utils"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	cfg := &configs.Config{
		JWTSecret: testSecret,
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}
	require.NoError(t, configs.Migrate(db))

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
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

func adminToken(t *testing.T) string {
	token, err := utils.GenerateToken(1, "admin@example.com", entity.RoleAdmin, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func customerToken(t *testing.T) string {
	token, err := utils.GenerateToken(2, "cust@example.com", entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestRegisterLoginMe(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice", "email": "alice@example.com", "password": "password1", "phone": "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var reg struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	assert.True(t, reg.Success)
	assert.Equal(t, "customer", reg.User.Role)

	// Duplicate email is a 400, case-insensitively.
	w = doJSON(r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice Again", "email": "ALICE@example.com", "password": "password2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "password1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	w = doJSON(r, http.MethodGet, "/api/auth/me", reg.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOrderEndToEnd(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/orders", "", gin.H{
		"customer_name":  "Bob",
		"customer_email": "bob@example.com",
		"customer_phone": "555-0102",
		"event_date":     "2026-10-17",
		"event_time":     "18:30",
		"location":       "12 Garden Street",
		"guest_count":    40,
		"items": []gin.H{
			{"item_type": "menu_item", "item_id": 1, "item_name": "Canapés", "quantity": 2, "price": "10.00"},
			{"item_type": "package", "item_id": 3, "item_name": "Silver Package", "quantity": 1, "price": "5.50"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			OrderID     uint   `json:"orderId"`
			TotalAmount string `json:"total_amount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "25.5", created.Data.TotalAmount)

	// Listing and detail require the admin role.
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodGet, "/api/orders", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, "/api/orders", customerToken(t), nil).Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/orders/%d", created.Data.OrderID), adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Data struct {
			TotalAmount string `json:"total_amount"`
			Status      string `json:"status"`
			Items       []struct {
				Subtotal string `json:"subtotal"`
			} `json:"items"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "25.5", detail.Data.TotalAmount)
	assert.Equal(t, "pending", detail.Data.Status)
	assert.Len(t, detail.Data.Items, 2)

	// Status update accepts only members of the closed set.
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", created.Data.OrderID), adminToken(t), gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", created.Data.OrderID), adminToken(t), gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderRejectsEmptyItems(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/orders", "", gin.H{
		"customer_name":  "Bob",
		"customer_email": "bob@example.com",
		"customer_phone": "555-0102",
		"event_date":     "2026-10-17",
		"event_time":     "18:30",
		"location":       "12 Garden Street",
		"guest_count":    40,
		"items":          []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewFlow(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(r, http.MethodPost, "/api/reviews", "", gin.H{
		"customer_name": "Carol", "rating": 6, "comment": "Too good",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/reviews", "", gin.H{
		"customer_name": "Carol", "rating": 5, "comment": "Great", "event_type": "wedding",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Unapproved reviews stay invisible on the public listing.
	w = doJSON(r, http.MethodGet, "/api/reviews", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Data)

	var review entity.Review
	require.NoError(t, db.First(&review).Error)

	w = doJSON(r, http.MethodPut, fmt.Sprintf("/api/reviews/%d/approve", review.ID), adminToken(t), gin.H{"is_approved": true})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/reviews", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Len(t, listing.Data, 1)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		w := doJSON(r, http.MethodPost, "/api/orders", "", gin.H{
			"customer_name":  "Bob",
			"customer_email": "bob@example.com",
			"customer_phone": "555-0102",
			"event_date":     "2026-10-17",
			"event_time":     "18:30",
			"location":       "12 Garden Street",
			"guest_count":    40,
			"items": []gin.H{
				{"item_type": "menu_item", "item_id": 1, "item_name": "Canapés", "quantity": 1, "price": "10.00"},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/orders/stats/dashboard", adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Data struct {
			TotalOrders   int64  `json:"totalOrders"`
			PendingOrders int64  `json:"pendingOrders"`
			TotalRevenue  string `json:"totalRevenue"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 2, stats.Data.TotalOrders)
	assert.EqualValues(t, 2, stats.Data.PendingOrders)
	assert.Equal(t, "20", stats.Data.TotalRevenue)
}
