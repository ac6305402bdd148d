package impl

import (
	"crypto/sha256"
	"encoding/hex"

	domainerrors "cakes/internal/domain/errors"
	"cakes/internal/domain/repository"

	"github.com/pkg/errors"
)

// repoErrors maps persistence sentinels to the application errors returned to clients.
var repoErrors = []struct {
	repoErr error
	appErr  *domainerrors.BaseError
}{
	{repository.ErrUserNotFound, domainerrors.ErrUserNotFound},
	{repository.ErrCategoryNotFound, domainerrors.ErrCategoryNotFound},
	{repository.ErrCakeNotFound, domainerrors.ErrCakeNotFound},
	{repository.ErrAddonNotFound, domainerrors.ErrAddonNotFound},
	{repository.ErrDuplicateSlug, domainerrors.ErrSlugAlreadyExists},
	{repository.ErrDeliveryAreaNotFound, domainerrors.ErrDeliveryAreaNotFound},
	{repository.ErrPromoCodeNotFound, domainerrors.ErrPromoCodeNotFound},
	{repository.ErrDuplicatePromoCode, domainerrors.ErrPromoCodeExists},
	{repository.ErrPromoUsageExhausted, domainerrors.ErrPromoCodeUsageExceeded},
	{repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound},
	{repository.ErrDuplicateOrderNumber, domainerrors.ErrOrderNumberConflict},
	{repository.ErrReviewNotFound, domainerrors.ErrReviewNotFound},
	{repository.ErrDuplicateReview, domainerrors.ErrReviewDuplicate},
	{repository.ErrReminderNotFound, domainerrors.ErrReminderNotFound},
	{repository.ErrNavigationItemNotFound, domainerrors.ErrNavigationMissing},
	{repository.ErrPageNotFound, domainerrors.ErrPageNotFound},
	{repository.ErrInsufficientBalance, domainerrors.ErrInsufficientWalletBalance},
	{repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
	{repository.ErrRefreshTokenNotFound, domainerrors.ErrRefreshTokenInvalid},
	{repository.ErrRefreshTokenExpired, domainerrors.ErrRefreshTokenInvalid},
}

// toAppError replaces a repository sentinel in err's chain with its application error,
// keeping message as context. Other errors are wrapped unchanged.
func toAppError(err error, message string) error {
	if err == nil {
		return nil
	}

	for _, m := range repoErrors {
		if errors.Is(err, m.repoErr) {
			return errors.Wrap(m.appErr, message)
		}
	}

	return errors.Wrap(err, message)
}

// hashToken returns the hex SHA-256 of a raw refresh token, which is what gets stored.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}
