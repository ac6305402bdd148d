package handler

import (
	"log/slog"
	"net/http"

	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/entity"
	"cakes/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// WalletHandlerParams holds dependencies for WalletHandler, injected by Fx.
type WalletHandlerParams struct {
	fx.In

	WalletUC usecase.WalletUsecase
	Logger   *slog.Logger
}

// WalletHandler serves wallet balances and admin adjustments.
type WalletHandler struct {
	walletUC usecase.WalletUsecase
	logger   *slog.Logger
}

// NewWalletHandler is the constructor for WalletHandler.
func NewWalletHandler(params WalletHandlerParams) *WalletHandler {
	return &WalletHandler{
		walletUC: params.WalletUC,
		logger:   params.Logger,
	}
}

// AdjustWalletRequest credits (positive) or debits (negative) a wallet.
type AdjustWalletRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason" validate:"max=255"`
}

// WalletResponse is the caller's wallet.
type WalletResponse struct {
	Balance       decimal.Decimal             `json:"balance"`
	LoyaltyPoints int                         `json:"loyalty_points"`
	Transactions  []*entity.WalletTransaction `json:"transactions"`
}

// GetWallet returns the caller's balance, points and recent transactions.
func (h *WalletHandler) GetWallet(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.walletUC.GetWallet(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	transactions := summary.Transactions
	if transactions == nil {
		transactions = []*entity.WalletTransaction{}
	}

	return response.Success(c, http.StatusOK, WalletResponse{
		Balance:       summary.Balance,
		LoyaltyPoints: summary.LoyaltyPoints,
		Transactions:  transactions,
	})
}

// AdjustWallet applies an admin credit or debit to a customer's wallet.
func (h *WalletHandler) AdjustWallet(c echo.Context) error {
	userID, err := uuidParam(c, "userId")
	if err != nil {
		return err
	}

	var req AdjustWalletRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	txn, err := h.walletUC.AdjustWallet(c.Request().Context(), userID, req.Amount, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, txn)
}
