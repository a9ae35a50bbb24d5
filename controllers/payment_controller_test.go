package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicktick/quicktick-api/config"
	"github.com/quicktick/quicktick-api/models"
)

const testRazorpaySecret = "testsecret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-jwt-secret")
	os.Setenv("RAZORPAY_SECRET", testRazorpaySecret)

	if err := config.InitTestDB(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func signPayment(orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(testRazorpaySecret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	return doJSON(router, http.MethodPost, path, body)
}

func postPut(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	return doJSON(router, http.MethodPut, path, body)
}

func doJSONWithCookies(router *gin.Engine, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func verifyRouter() *gin.Engine {
	router := gin.New()
	router.POST("/v1/payments/verify", VerifyRazorpayPayment)
	return router
}

func paymentCount(t *testing.T, paymentID string) int64 {
	t.Helper()
	var count int64
	require.NoError(t, config.DB.Model(&models.Payment{}).
		Where("razorpay_payment_id = ?", paymentID).Count(&count).Error)
	return count
}

func TestVerifyRazorpayPayment_Success(t *testing.T) {
	router := verifyRouter()

	w := postJSON(router, "/v1/payments/verify", gin.H{
		"razorpay_order_id":   "order_ok1",
		"razorpay_payment_id": "pay_ok1",
		"razorpay_signature":  signPayment("order_ok1", "pay_ok1"),
		"plan_id":             1,
		"user_id":             1,
		"amount":              149900,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	assert.EqualValues(t, 1, paymentCount(t, "pay_ok1"))

	var payment models.Payment
	require.NoError(t, config.DB.Where("razorpay_payment_id = ?", "pay_ok1").First(&payment).Error)
	assert.Equal(t, "order_ok1", payment.RazorpayOrderID)
	assert.EqualValues(t, 149900, payment.Amount)
	assert.Equal(t, models.PaymentStatusPaid, payment.Status)
}

func TestVerifyRazorpayPayment_DuplicateDelivery(t *testing.T) {
	router := verifyRouter()

	body := gin.H{
		"razorpay_order_id":   "order_dup1",
		"razorpay_payment_id": "pay_dup1",
		"razorpay_signature":  signPayment("order_dup1", "pay_dup1"),
		"amount":              50000,
	}

	first := postJSON(router, "/v1/payments/verify", body)
	assert.Equal(t, http.StatusOK, first.Code)

	second := postJSON(router, "/v1/payments/verify", body)
	assert.Equal(t, http.StatusOK, second.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	// Replay must not produce a second ledger row
	assert.EqualValues(t, 1, paymentCount(t, "pay_dup1"))
}

func TestVerifyRazorpayPayment_BadSignature(t *testing.T) {
	router := verifyRouter()

	w := postJSON(router, "/v1/payments/verify", gin.H{
		"razorpay_order_id":   "order_bad1",
		"razorpay_payment_id": "pay_bad1",
		"razorpay_signature":  signPayment("order_bad1", "pay_other"),
		"amount":              50000,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])

	assert.EqualValues(t, 0, paymentCount(t, "pay_bad1"))
}

func TestVerifyRazorpayPayment_MissingFields(t *testing.T) {
	router := verifyRouter()

	w := postJSON(router, "/v1/payments/verify", gin.H{
		"razorpay_order_id": "order_incomplete",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyRazorpayPayment_MalformedBody(t *testing.T) {
	router := verifyRouter()

	req := httptest.NewRequest(http.MethodPost, "/v1/payments/verify", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyRazorpayPayment_PersistenceFailure(t *testing.T) {
	router := verifyRouter()

	// Force the ledger write to fail and make sure the caller sees an
	// infrastructure fault, not a verification failure.
	require.NoError(t, config.DB.Migrator().DropTable(&models.Payment{}))
	defer func() {
		require.NoError(t, config.DB.AutoMigrate(&models.Payment{}))
	}()

	w := postJSON(router, "/v1/payments/verify", gin.H{
		"razorpay_order_id":   "order_db1",
		"razorpay_payment_id": "pay_db1",
		"razorpay_signature":  signPayment("order_db1", "pay_db1"),
		"amount":              50000,
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestVerifyHelpPayment(t *testing.T) {
	user := models.User{Username: "donor1", Email: "donor1@example.com", Password: "x"}
	require.NoError(t, config.DB.Create(&user).Error)

	router := gin.New()
	router.POST("/v1/payments/help/verify", func(c *gin.Context) {
		c.Set("user", user)
		VerifyHelpPayment(c)
	})

	w := postJSON(router, "/v1/payments/help/verify", gin.H{
		"razorpay_order_id":   "order_help1",
		"razorpay_payment_id": "pay_help1",
		"razorpay_signature":  signPayment("order_help1", "pay_help1"),
		"amount":              10000,
		"name":                "Donor One",
		"category":            "education",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var payment models.HelpPayment
	require.NoError(t, config.DB.Where("razorpay_payment_id = ?", "pay_help1").First(&payment).Error)
	assert.Equal(t, user.ID, payment.UserID)
	assert.Equal(t, "Donor One", payment.Name)

	// Forged contribution is refused
	w = postJSON(router, "/v1/payments/help/verify", gin.H{
		"razorpay_order_id":   "order_help2",
		"razorpay_payment_id": "pay_help2",
		"razorpay_signature":  "0000000000000000000000000000000000000000000000000000000000000000",
		"amount":              10000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
