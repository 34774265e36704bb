package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/domain"
	"ledgerly/internal/handler"
	"ledgerly/internal/middleware"
	"ledgerly/mocks"
)

func paymentRouter(svc *mocks.MockPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewPaymentHandler(svc)

	// Inject a fixed user the way AuthMiddleware would.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, uuid.New())
		c.Next()
	})
	r.POST("/payments", h.Create)
	return r
}

func postPayment(t *testing.T, r *gin.Engine, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPaymentCreate_Accepted(t *testing.T) {
	svc := new(mocks.MockPaymentService)
	r := paymentRouter(svc)

	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(&domain.Payment{
		ID: uuid.New(),
	}, nil)

	w := postPayment(t, r, map[string]interface{}{
		"invoice_id":      uuid.New().String(),
		"amount":          "100",
		"payment_mode_id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestPaymentCreate_DeclinedIsA202(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{domain.ErrMinimumAmount, "MINIMUM_AMOUNT"},
		{domain.ErrExceedsBalance, "MAX_AMOUNT"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			svc := new(mocks.MockPaymentService)
			r := paymentRouter(svc)

			svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			w := postPayment(t, r, map[string]interface{}{
				"invoice_id":      uuid.New().String(),
				"amount":          "0",
				"payment_mode_id": uuid.New().String(),
			})

			assert.Equal(t, http.StatusAccepted, w.Code)

			var resp handler.APIResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestPaymentCreate_InvoiceNotFoundIsA404(t *testing.T) {
	svc := new(mocks.MockPaymentService)
	r := paymentRouter(svc)

	svc.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrInvoiceNotFound)

	w := postPayment(t, r, map[string]interface{}{
		"invoice_id":      uuid.New().String(),
		"amount":          "100",
		"payment_mode_id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentCreate_MalformedBody(t *testing.T) {
	svc := new(mocks.MockPaymentService)
	r := paymentRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/payments", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestMapDomainError_Wrapped(t *testing.T) {
	status, code, msg := handler.MapDomainError(
		fmt.Errorf("%w: at least one item is required", domain.ErrValidation))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", code)
	assert.Contains(t, msg, "at least one item is required")
}

func TestMapDomainError_CreditExceedsTotal(t *testing.T) {
	status, code, _ := handler.MapDomainError(domain.ErrCreditExceedsTotal)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CREDIT_EXCEEDS_TOTAL", code)
}
