package handler

import (
	"log/slog"
	"net/http"
	"slices"

	"cakes/config"
	"cakes/internal/delivery/api/middleware"
	"cakes/internal/delivery/api/response"
	"cakes/internal/domain/constants"
	"cakes/internal/domain/entity"
	"cakes/internal/infra/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RealtimeHandlerParams holds dependencies for RealtimeHandler, injected by Fx.
type RealtimeHandlerParams struct {
	fx.In

	Hub            *realtime.Hub
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Logger         *slog.Logger
}

// RealtimeHandler upgrades staff clients to WebSocket push channels.
type RealtimeHandler struct {
	hub      *realtime.Hub
	auth     *middleware.AuthMiddleware
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler.
func NewRealtimeHandler(params RealtimeHandlerParams) *RealtimeHandler {
	allowed := params.Config.HTTP.AllowOrigins

	return &RealtimeHandler{
		hub:  params.Hub,
		auth: params.AuthMiddleware,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				return origin == "" || len(allowed) == 0 || slices.Contains(allowed, origin) || slices.Contains(allowed, "*")
			},
		},
		logger: params.Logger,
	}
}

// DeliveryChannel connects a delivery boy to their assignment feed.
func (h *RealtimeHandler) DeliveryChannel(c echo.Context) error {
	return h.connect(c, constants.ChannelDelivery, entity.RoleDeliveryBoy)
}

// AdminChannel connects the back office to the order activity feed.
func (h *RealtimeHandler) AdminChannel(c echo.Context) error {
	return h.connect(c, constants.ChannelAdmin, entity.RoleAdmin)
}

// connect authenticates the token query parameter before upgrading. Browsers cannot set
// headers on a WebSocket handshake.
func (h *RealtimeHandler) connect(c echo.Context, channel string, role entity.Role) error {
	token := c.QueryParam("token")
	if token == "" {
		return response.Unauthorized(c, "MISSING_TOKEN", "Token query parameter is missing")
	}

	userID, roles, err := h.auth.Identify(token)
	if err != nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
	}
	if !roles.Contains(role) {
		return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+role.String()+"' role")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		h.logger.Warn("WebSocket upgrade failed", slog.String("channel", channel), slog.Any("error", err))

		return nil
	}

	h.hub.Attach(conn, channel, userID)

	return nil
}
