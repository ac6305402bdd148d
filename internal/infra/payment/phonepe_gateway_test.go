package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cakes/config"
	"cakes/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMerchantID = "PGTESTPAYUAT"
	testSaltKey    = "099eb0cd-02cf-4e2a-8aca-3e6c6aff0399"
	testSaltIndex  = "1"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestGateway(t *testing.T, baseURL string) service.PaymentGateway {
	t.Helper()

	gateway, err := NewPhonePeGateway(&config.Config{PhonePe: &config.PhonePeConfig{
		MerchantID:  testMerchantID,
		SaltKey:     testSaltKey,
		SaltIndex:   testSaltIndex,
		BaseURL:     baseURL + "/",
		RedirectURL: "https://cakesbuy.example/payment/return",
		CallbackURL: "https://api.cakesbuy.example/api/payments/phonepe/callback",
	}}, newDiscardLogger())
	require.NoError(t, err)

	return gateway
}

func encodeTransaction(t *testing.T, code, txnID string, amount int64) string {
	t.Helper()

	raw, err := json.Marshal(map[string]any{
		"success": code == string(service.PaymentStateSuccess),
		"code":    code,
		"data": map[string]any{
			"merchantTransactionId": txnID,
			"transactionId":         "T2501011234",
			"amount":                amount,
		},
	})
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func TestChecksum(t *testing.T) {
	got := Checksum("payload", "salt", "1")

	assert.Len(t, got, 64+len("###1"))
	assert.Equal(t, "###1", got[64:])
	assert.Equal(t, got, Checksum("payload", "salt", "1"))
	assert.NotEqual(t, got, Checksum("payload", "other", "1"))
}

func TestPaiseConversion(t *testing.T) {
	assert.Equal(t, int64(54950), ToPaise(decimal.RequireFromString("549.50")))
	assert.Equal(t, int64(100), ToPaise(decimal.RequireFromString("0.995")))
	assert.True(t, FromPaise(54950).Equal(decimal.RequireFromString("549.5")))
}

func TestNewPhonePeGateway_Validation(t *testing.T) {
	_, err := NewPhonePeGateway(&config.Config{}, newDiscardLogger())
	require.Error(t, err)

	_, err = NewPhonePeGateway(&config.Config{PhonePe: &config.PhonePeConfig{MerchantID: "m"}}, newDiscardLogger())
	require.Error(t, err)

	demo, err := NewPhonePeGateway(&config.Config{PhonePe: &config.PhonePeConfig{Demo: true}}, newDiscardLogger())
	require.NoError(t, err)
	assert.IsType(t, &demoGateway{}, demo)
}

func TestPhonePeGateway_Initiate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, payEndpoint, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, Checksum(body["request"]+payEndpoint, testSaltKey, testSaltIndex), r.Header.Get("X-VERIFY"))

		raw, err := base64.StdEncoding.DecodeString(body["request"])
		require.NoError(t, err)
		var payload payPayload
		require.NoError(t, json.Unmarshal(raw, &payload))
		assert.Equal(t, testMerchantID, payload.MerchantID)
		assert.Equal(t, int64(129900), payload.Amount)
		assert.Equal(t, "PAY_PAGE", payload.PaymentInstrument.Type)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"code":"PAYMENT_INITIATED","data":{"merchantTransactionId":"CK250101123456-1735689600","instrumentResponse":{"type":"PAY_PAGE","redirectInfo":{"url":"https://mercury-uat.phonepe.com/pay/abc","method":"GET"}}}}`))
	}))
	defer server.Close()

	gateway := newTestGateway(t, server.URL)

	session, err := gateway.Initiate(context.Background(), &service.PaymentRequest{
		MerchantTransactionID: "CK250101123456-1735689600",
		MerchantUserID:        "user-1",
		Amount:                decimal.RequireFromString("1299"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://mercury-uat.phonepe.com/pay/abc", session.RedirectURL)
}

func TestPhonePeGateway_Initiate_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"code":"BAD_REQUEST","message":"Please check the inputs you have provided."}`))
	}))
	defer server.Close()

	_, err := newTestGateway(t, server.URL).Initiate(context.Background(), &service.PaymentRequest{
		MerchantTransactionID: "CK250101123456-1",
		Amount:                decimal.NewFromInt(10),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAD_REQUEST")
}

func TestPhonePeGateway_VerifyCallback(t *testing.T) {
	gateway := newTestGateway(t, "http://unused")
	encoded := encodeTransaction(t, "PAYMENT_SUCCESS", "CK250101123456-1", 129900)

	result, err := gateway.VerifyCallback(Checksum(encoded, testSaltKey, testSaltIndex), encoded)
	require.NoError(t, err)
	assert.Equal(t, service.PaymentStateSuccess, result.State)
	assert.Equal(t, "CK250101123456-1", result.MerchantTransactionID)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(1299)))

	_, err = gateway.VerifyCallback("deadbeef###1", encoded)
	assert.Error(t, err)
}

func TestPhonePeGateway_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := statusEndpoint + "/" + testMerchantID + "/CK250101123456-1"
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, Checksum(path, testSaltKey, testSaltIndex), r.Header.Get("X-VERIFY"))
		assert.Equal(t, testMerchantID, r.Header.Get("X-MERCHANT-ID"))

		_, _ = w.Write([]byte(`{"success":false,"code":"PAYMENT_DECLINED","data":{"merchantTransactionId":"CK250101123456-1","state":"FAILED","amount":129900}}`))
	}))
	defer server.Close()

	result, err := newTestGateway(t, server.URL).Status(context.Background(), "CK250101123456-1")
	require.NoError(t, err)
	assert.Equal(t, service.PaymentStateDecline, result.State)
}

func TestTransactionResponse_StateFallback(t *testing.T) {
	resp := &transactionResponse{Code: "INTERNAL_SERVER_ERROR"}
	resp.Data.State = "COMPLETED"
	assert.Equal(t, service.PaymentStateSuccess, resp.toResult().State)

	resp.Data.State = "PENDING"
	assert.Equal(t, service.PaymentStatePending, resp.toResult().State)
}

func TestDemoGateway(t *testing.T) {
	gateway, err := NewPhonePeGateway(&config.Config{PhonePe: &config.PhonePeConfig{Demo: true, RedirectURL: "https://cakesbuy.example/payment/return"}}, newDiscardLogger())
	require.NoError(t, err)

	session, err := gateway.Initiate(context.Background(), &service.PaymentRequest{MerchantTransactionID: "CK1-1", Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.Equal(t, "https://cakesbuy.example/payment/return", session.RedirectURL)

	status, err := gateway.Status(context.Background(), "CK1-1")
	require.NoError(t, err)
	assert.Equal(t, service.PaymentStateSuccess, status.State)

	encoded := encodeTransaction(t, "PAYMENT_ERROR", "CK1-1", 500)
	result, err := gateway.VerifyCallback("ignored", encoded)
	require.NoError(t, err)
	assert.Equal(t, service.PaymentStateSuccess, result.State)
}
