// Package payment integrates the PhonePe payment gateway.
package payment

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"cakes/config"
	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	payEndpoint    = "/pg/v1/pay"
	statusEndpoint = "/pg/v1/status"

	defaultTimeout = 15 * time.Second
	saltSeparator  = "###"
	maxBodyBytes   = 1 << 20
)

var paiseMultiplier = decimal.NewFromInt(100)

type phonePeGateway struct {
	cfg    config.PhonePeConfig
	client *http.Client
	logger *slog.Logger
}

// NewPhonePeGateway creates the PhonePe gateway. In demo mode every transaction succeeds without a network call.
func NewPhonePeGateway(cfg *config.Config, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg.PhonePe == nil {
		return nil, errors.New("phonepe configuration is required")
	}

	ppCfg := *cfg.PhonePe
	if ppCfg.Demo {
		logger.Warn("PhonePe running in demo mode, payments always succeed")

		return &demoGateway{redirectURL: ppCfg.RedirectURL, logger: logger}, nil
	}

	if ppCfg.MerchantID == "" || ppCfg.SaltKey == "" || ppCfg.SaltIndex == "" || ppCfg.BaseURL == "" {
		return nil, errors.New("phonepe merchantId, saltKey, saltIndex and baseUrl must be provided")
	}
	ppCfg.BaseURL = strings.TrimRight(ppCfg.BaseURL, "/")

	timeout := ppCfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &phonePeGateway{
		cfg:    ppCfg,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}, nil
}

type payInstrument struct {
	Type string `json:"type"`
}

type payPayload struct {
	MerchantID            string        `json:"merchantId"`
	MerchantTransactionID string        `json:"merchantTransactionId"`
	MerchantUserID        string        `json:"merchantUserId"`
	Amount                int64         `json:"amount"`
	RedirectURL           string        `json:"redirectUrl"`
	RedirectMode          string        `json:"redirectMode"`
	CallbackURL           string        `json:"callbackUrl"`
	MobileNumber          string        `json:"mobileNumber,omitempty"`
	PaymentInstrument     payInstrument `json:"paymentInstrument"`
}

type payResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		MerchantTransactionID string `json:"merchantTransactionId"`
		InstrumentResponse    struct {
			RedirectInfo struct {
				URL string `json:"url"`
			} `json:"redirectInfo"`
		} `json:"instrumentResponse"`
	} `json:"data"`
}

// transactionResponse is both the decoded callback payload and the status API answer.
type transactionResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		MerchantTransactionID string `json:"merchantTransactionId"`
		TransactionID         string `json:"transactionId"`
		Amount                int64  `json:"amount"`
		State                 string `json:"state"`
	} `json:"data"`
}

// Initiate starts a pay-page transaction and returns the URL the customer must visit.
func (g *phonePeGateway) Initiate(ctx context.Context, req *service.PaymentRequest) (*service.PaymentSession, error) {
	payload := payPayload{
		MerchantID:            g.cfg.MerchantID,
		MerchantTransactionID: req.MerchantTransactionID,
		MerchantUserID:        req.MerchantUserID,
		Amount:                ToPaise(req.Amount),
		RedirectURL:           g.cfg.RedirectURL,
		RedirectMode:          "REDIRECT",
		CallbackURL:           g.cfg.CallbackURL,
		MobileNumber:          req.Phone,
		PaymentInstrument:     payInstrument{Type: "PAY_PAGE"},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pay payload")
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	body, err := json.Marshal(map[string]string{"request": encoded})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pay request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+payEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pay request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-VERIFY", Checksum(encoded+payEndpoint, g.cfg.SaltKey, g.cfg.SaltIndex))

	var resp payResponse
	if err := g.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data.InstrumentResponse.RedirectInfo.URL == "" {
		return nil, errors.Errorf("phonepe pay request failed: %s %s", resp.Code, resp.Message)
	}

	deliverycontext.GetLoggerOrDefault(ctx, g.logger).Info("PhonePe transaction initiated",
		slog.String("merchant_transaction_id", req.MerchantTransactionID),
		slog.Int64("amount_paise", payload.Amount),
	)

	return &service.PaymentSession{
		MerchantTransactionID: req.MerchantTransactionID,
		RedirectURL:           resp.Data.InstrumentResponse.RedirectInfo.URL,
	}, nil
}

// VerifyCallback checks the X-VERIFY header of a server-to-server callback and decodes its base64 body.
func (g *phonePeGateway) VerifyCallback(xVerify, encodedResponse string) (*service.PaymentResult, error) {
	expected := Checksum(encodedResponse, g.cfg.SaltKey, g.cfg.SaltIndex)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(xVerify)) != 1 {
		return nil, errors.New("phonepe callback checksum mismatch")
	}

	raw, err := base64.StdEncoding.DecodeString(encodedResponse)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode callback response")
	}

	var resp transactionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to parse callback response")
	}

	return resp.toResult(), nil
}

// Status asks PhonePe for the current state of a transaction.
func (g *phonePeGateway) Status(ctx context.Context, merchantTransactionID string) (*service.PaymentResult, error) {
	path := statusEndpoint + "/" + g.cfg.MerchantID + "/" + merchantTransactionID

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create status request")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-VERIFY", Checksum(path, g.cfg.SaltKey, g.cfg.SaltIndex))
	httpReq.Header.Set("X-MERCHANT-ID", g.cfg.MerchantID)

	var resp transactionResponse
	if err := g.do(httpReq, &resp); err != nil {
		return nil, err
	}

	result := resp.toResult()
	if result.MerchantTransactionID == "" {
		result.MerchantTransactionID = merchantTransactionID
	}

	return result, nil
}

func (g *phonePeGateway) do(req *http.Request, out any) error {
	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach phonepe")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return errors.Wrap(err, "failed to read phonepe response")
	}

	// PhonePe reports business failures with 4xx and a JSON body, so parse before judging the status.
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "phonepe returned status %d with unparsable body", resp.StatusCode)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return errors.Errorf("phonepe returned status %d", resp.StatusCode)
	}

	return nil
}

func (r *transactionResponse) toResult() *service.PaymentResult {
	state := service.PaymentState(r.Code)
	switch state {
	case service.PaymentStateSuccess, service.PaymentStatePending, service.PaymentStateError, service.PaymentStateDecline:
	default:
		switch strings.ToUpper(r.Data.State) {
		case "COMPLETED":
			state = service.PaymentStateSuccess
		case "FAILED":
			state = service.PaymentStateError
		default:
			state = service.PaymentStatePending
		}
	}

	return &service.PaymentResult{
		MerchantTransactionID: r.Data.MerchantTransactionID,
		TransactionID:         r.Data.TransactionID,
		State:                 state,
		Amount:                FromPaise(r.Data.Amount),
	}
}

// Checksum computes PhonePe's X-VERIFY value: sha256(payload + saltKey) + "###" + saltIndex.
func Checksum(payload, saltKey, saltIndex string) string {
	sum := sha256.Sum256([]byte(payload + saltKey))

	return hex.EncodeToString(sum[:]) + saltSeparator + saltIndex
}

// ToPaise converts rupees to integer paise, rounding half away from zero.
func ToPaise(amount decimal.Decimal) int64 {
	return amount.Mul(paiseMultiplier).Round(0).IntPart()
}

// FromPaise converts integer paise to rupees.
func FromPaise(paise int64) decimal.Decimal {
	return decimal.NewFromInt(paise).Div(paiseMultiplier)
}
