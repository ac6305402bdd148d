// Package errors defines application errors that carry their own HTTP mapping.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details.
// errors.Is against the original still matches through Unwrap.
func (e *BaseError) WithDetails(details string) error {
	return &detailedError{
		BaseError: NewBaseError(e.httpCode, e.errorCode, e.message, details),
		origin:    e,
	}
}

type detailedError struct {
	*BaseError
	origin *BaseError
}

func (e *detailedError) Unwrap() error {
	return e.origin
}

func newError(httpCode int, code, message string) *BaseError {
	return NewBaseError(httpCode, code, message, "")
}

// Predefined error types
var (
	// Users and authentication
	ErrUserNotFound        = newError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists   = newError(http.StatusConflict, "USER_ALREADY_EXISTS", "This email is already registered")
	ErrUserInactive        = newError(http.StatusForbidden, "USER_INACTIVE", "This account has been disabled")
	ErrInvalidCredentials  = newError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")
	ErrRefreshTokenInvalid = newError(http.StatusUnauthorized, "REFRESH_TOKEN_INVALID", "Invalid or expired refresh token")
	ErrOAuthTokenInvalid   = newError(http.StatusUnauthorized, "OAUTH_TOKEN_INVALID", "Invalid ID token")
	ErrPasswordHashFailed  = newError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Failed to process password")
	ErrInvalidRole         = newError(http.StatusBadRequest, "INVALID_ROLE", "Role is not allowed here")

	// Catalog
	ErrCategoryNotFound  = newError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	ErrCakeNotFound      = newError(http.StatusNotFound, "CAKE_NOT_FOUND", "Cake not found")
	ErrCakeUnavailable   = newError(http.StatusUnprocessableEntity, "CAKE_UNAVAILABLE", "Cake is currently unavailable")
	ErrInvalidWeight     = newError(http.StatusBadRequest, "INVALID_WEIGHT", "Selected weight is not offered for this cake")
	ErrInvalidFlavor     = newError(http.StatusBadRequest, "INVALID_FLAVOR", "Selected flavor is not offered for this cake")
	ErrAddonNotFound     = newError(http.StatusNotFound, "ADDON_NOT_FOUND", "Addon not found")
	ErrAddonUnavailable  = newError(http.StatusUnprocessableEntity, "ADDON_UNAVAILABLE", "Addon is currently unavailable")
	ErrSlugAlreadyExists = newError(http.StatusConflict, "SLUG_ALREADY_EXISTS", "Slug is already in use")

	// Delivery areas
	ErrDeliveryAreaNotFound       = newError(http.StatusNotFound, "DELIVERY_AREA_NOT_FOUND", "Delivery area not found")
	ErrDeliveryAreaNotServiceable = newError(http.StatusUnprocessableEntity, "DELIVERY_AREA_NOT_SERVICEABLE", "We do not deliver to this location yet")

	// Promo codes
	ErrPromoCodeNotFound      = newError(http.StatusNotFound, "PROMO_CODE_NOT_FOUND", "Promo code not found")
	ErrPromoCodeInvalid       = newError(http.StatusBadRequest, "PROMO_CODE_INVALID", "Invalid promo code")
	ErrPromoCodeExpired       = newError(http.StatusBadRequest, "PROMO_CODE_EXPIRED", "Promo code has expired")
	ErrPromoCodeUsageExceeded = newError(http.StatusBadRequest, "PROMO_CODE_USAGE_EXCEEDED", "Promo code usage limit reached")
	ErrPromoMinOrderNotMet    = newError(http.StatusBadRequest, "PROMO_MIN_ORDER_NOT_MET", "Order value is below the minimum for this promo code")
	ErrPromoCodeExists        = newError(http.StatusConflict, "PROMO_CODE_EXISTS", "Promo code already exists")

	// Checkout and orders
	ErrEmptyCart                = newError(http.StatusBadRequest, "EMPTY_CART", "Cart is empty")
	ErrInvalidQuantity          = newError(http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1")
	ErrMinimumOrderNotMet       = newError(http.StatusBadRequest, "MINIMUM_ORDER_NOT_MET", "Order value is below the minimum order value")
	ErrInvalidPaymentMethod     = newError(http.StatusBadRequest, "INVALID_PAYMENT_METHOD", "Invalid payment method")
	ErrWalletNotCoveringOrder   = newError(http.StatusBadRequest, "WALLET_NOT_COVERING_ORDER", "Wallet balance does not cover the order")
	ErrOrderNotFound            = newError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrOrderInvalidTransition   = newError(http.StatusConflict, "ORDER_INVALID_TRANSITION", "Order cannot move to the requested status")
	ErrOrderNotCancellable      = newError(http.StatusConflict, "ORDER_NOT_CANCELLABLE", "Order can no longer be cancelled")
	ErrOrderNumberConflict      = newError(http.StatusInternalServerError, "ORDER_NUMBER_CONFLICT", "Could not allocate an order number")
	ErrOrderNotAssignedToCaller = newError(http.StatusForbidden, "ORDER_NOT_ASSIGNED", "Order is not assigned to you")
	ErrAssigneeRoleMismatch     = newError(http.StatusBadRequest, "ASSIGNEE_ROLE_MISMATCH", "User does not have the required role for this assignment")
	ErrOrderNotAssignable       = newError(http.StatusConflict, "ORDER_NOT_ASSIGNABLE", "Order cannot be assigned in its current status")

	// Payments
	ErrPaymentNotApplicable = newError(http.StatusConflict, "PAYMENT_NOT_APPLICABLE", "Order does not need an online payment")
	ErrPaymentChecksum      = newError(http.StatusUnauthorized, "PAYMENT_CHECKSUM_INVALID", "Payment callback checksum mismatch")
	ErrPaymentGateway       = newError(http.StatusBadGateway, "PAYMENT_GATEWAY_ERROR", "Payment gateway request failed")

	// Wallet
	ErrInsufficientWalletBalance = newError(http.StatusConflict, "INSUFFICIENT_WALLET_BALANCE", "Insufficient wallet balance")
	ErrInvalidAmount             = newError(http.StatusBadRequest, "INVALID_AMOUNT", "Amount must be positive")

	// Reviews
	ErrReviewNotAllowed  = newError(http.StatusForbidden, "REVIEW_NOT_ALLOWED", "You can only review cakes from your delivered orders")
	ErrReviewDuplicate   = newError(http.StatusConflict, "REVIEW_DUPLICATE", "You already reviewed this cake for this order")
	ErrReviewNotFound    = newError(http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
	ErrReminderNotFound  = newError(http.StatusNotFound, "REMINDER_NOT_FOUND", "Reminder not found")
	ErrNavigationMissing = newError(http.StatusNotFound, "NAVIGATION_ITEM_NOT_FOUND", "Navigation item not found")
	ErrPageNotFound      = newError(http.StatusNotFound, "PAGE_NOT_FOUND", "Page not found")

	// Devices
	ErrDeviceNotFound = newError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found")

	// Uploads
	ErrUploadTooLarge       = newError(http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE", "File is too large")
	ErrUploadTypeNotAllowed = newError(http.StatusUnsupportedMediaType, "UPLOAD_TYPE_NOT_ALLOWED", "Only JPEG, PNG, WEBP and GIF images are allowed")
	ErrUploadNotFound       = newError(http.StatusNotFound, "UPLOAD_NOT_FOUND", "File not found")

	// General errors
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidInput     = newError(http.StatusBadRequest, "INVALID_INPUT", "Request body could not be parsed")
	ErrInvalidID        = newError(http.StatusBadRequest, "INVALID_ID", "Invalid identifier")
	ErrUnauthenticated  = newError(http.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	ErrInternalError    = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrForbidden        = newError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotFound         = newError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict         = newError(http.StatusConflict, "CONFLICT", "Resource conflict")
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
