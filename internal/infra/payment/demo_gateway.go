package payment

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"

	deliverycontext "cakes/internal/delivery/context"
	"cakes/internal/domain/service"

	"github.com/pkg/errors"
)

// demoGateway completes every transaction immediately. It is used when phonepe.demo is set.
type demoGateway struct {
	redirectURL string
	logger      *slog.Logger
}

func (g *demoGateway) Initiate(ctx context.Context, req *service.PaymentRequest) (*service.PaymentSession, error) {
	deliverycontext.GetLoggerOrDefault(ctx, g.logger).Info("[DemoPayment] transaction initiated",
		slog.String("merchant_transaction_id", req.MerchantTransactionID),
		slog.String("amount", req.Amount.StringFixed(2)),
	)

	return &service.PaymentSession{
		MerchantTransactionID: req.MerchantTransactionID,
		RedirectURL:           g.redirectURL,
	}, nil
}

// VerifyCallback skips the checksum and reports success for the decoded transaction.
func (g *demoGateway) VerifyCallback(_ string, encodedResponse string) (*service.PaymentResult, error) {
	raw, err := base64.StdEncoding.DecodeString(encodedResponse)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode callback response")
	}

	var resp transactionResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to parse callback response")
	}

	result := resp.toResult()
	result.State = service.PaymentStateSuccess

	return result, nil
}

func (g *demoGateway) Status(_ context.Context, merchantTransactionID string) (*service.PaymentResult, error) {
	return &service.PaymentResult{
		MerchantTransactionID: merchantTransactionID,
		TransactionID:         "DEMO-" + merchantTransactionID,
		State:                 service.PaymentStateSuccess,
	}, nil
}
