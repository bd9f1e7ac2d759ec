// Package live serves a websocket view of a configurator session. Every edit sent by the
// client is applied to the session and answered with the recomputed stats.
package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"google.golang.org/grpc/status"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/errors"
)

// Message types
const (
	TypeEquip  = "equip"
	TypeAnimal = "animal"
	TypeReset  = "reset"
	TypeView   = "view"
	TypeState  = "state"
	TypeError  = "error"
)

// maxMessageSize caps a client frame. Larger frames close the connection with 1009.
const maxMessageSize = 4096

// ClientMessage is an edit or a view change sent by the browser
type ClientMessage struct {
	Type string `json:"type"`

	// equip
	Slot  string `json:"slot,omitempty"`
	Item  string `json:"item,omitempty"`
	Stars int32  `json:"stars,omitempty"`

	// animal, nil clears the companion
	Animal *configuratorv1alpha1.Animal `json:"animal,omitempty"`

	// view
	Scenario       string                       `json:"scenario,omitempty"`
	Starring       string                       `json:"starring,omitempty"`
	Refine         *configuratorv1alpha1.Refine `json:"refine,omitempty"`
	ExcludedTroops []string                     `json:"excluded_troops,omitempty"`
}

// ServerMessage is the state pushed after every message, or an error
type ServerMessage struct {
	Type    string                        `json:"type"`
	Session *configuratorv1alpha1.Session `json:"session,omitempty"`
	Stats   *configuratorv1alpha1.Stats   `json:"stats,omitempty"`
	Code    string                        `json:"code,omitempty"`
	Message string                        `json:"message,omitempty"`
}

// HandlerConfig holds dependencies for the live handler
type HandlerConfig struct {
	Service configuratorv1alpha1.ConfiguratorServiceServer
	// CheckOrigin defaults to accepting every origin
	CheckOrigin func(r *http.Request) bool
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.Service == nil {
		return errors.InvalidArgument("configurator service is required")
	}
	return nil
}

// Handler upgrades requests to websocket sessions
type Handler struct {
	service  configuratorv1alpha1.ConfiguratorServiceServer
	upgrader websocket.Upgrader
}

// NewHandler creates a live handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Handler{
		service: cfg.Service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}, nil
}

type view struct {
	scenario       string
	starring       string
	refine         *configuratorv1alpha1.Refine
	excludedTroops []string
}

// ServeHTTP expects the session id in the "session" query parameter
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(w, "missing session", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if _, err := h.service.GetSession(ctx, &configuratorv1alpha1.GetSessionRequest{SessionId: sessionID}); err != nil {
		http.Error(w, status.Convert(err).Message(), http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.WarnContext(ctx, "Websocket upgrade failed", "session_id", sessionID, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()
	conn.SetReadLimit(maxMessageSize)

	slog.InfoContext(ctx, "Live session connected", "session_id", sessionID)

	v := &view{}
	if !h.push(ctx, conn, sessionID, v) {
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrReadLimit) {
				slog.WarnContext(ctx, "Live message too large", "session_id", sessionID, "limit", maxMessageSize)
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.WarnContext(ctx, "Live session read failed", "session_id", sessionID, "error", err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			if !h.write(conn, errorMessage(errors.ToGRPCError(errors.InvalidArgument("malformed message")))) {
				return
			}
			continue
		}

		if err := h.apply(ctx, sessionID, v, &msg); err != nil {
			if !h.write(conn, errorMessage(err)) {
				return
			}
			continue
		}
		if !h.push(ctx, conn, sessionID, v) {
			return
		}
	}
}

func (h *Handler) apply(ctx context.Context, sessionID string, v *view, msg *ClientMessage) error {
	switch msg.Type {
	case TypeEquip:
		_, err := h.service.SetEquipment(ctx, &configuratorv1alpha1.SetEquipmentRequest{
			SessionId: sessionID,
			Slot:      msg.Slot,
			Item:      msg.Item,
			Stars:     msg.Stars,
		})
		return err
	case TypeAnimal:
		_, err := h.service.SetAnimal(ctx, &configuratorv1alpha1.SetAnimalRequest{
			SessionId: sessionID,
			Animal:    msg.Animal,
		})
		return err
	case TypeReset:
		_, err := h.service.ResetSession(ctx, &configuratorv1alpha1.ResetSessionRequest{SessionId: sessionID})
		return err
	case TypeView:
		v.scenario = msg.Scenario
		v.starring = msg.Starring
		v.refine = msg.Refine
		v.excludedTroops = msg.ExcludedTroops
		return nil
	default:
		return errors.ToGRPCError(errors.InvalidArgumentf("unknown message type: %s", msg.Type))
	}
}

// push sends the current session and stats. It returns false once the connection is unusable.
func (h *Handler) push(ctx context.Context, conn *websocket.Conn, sessionID string, v *view) bool {
	sess, err := h.service.GetSession(ctx, &configuratorv1alpha1.GetSessionRequest{SessionId: sessionID})
	if err != nil {
		h.write(conn, errorMessage(err))
		return false
	}

	stats, err := h.service.GetStats(ctx, &configuratorv1alpha1.GetStatsRequest{
		SessionId:      sessionID,
		Scenario:       v.scenario,
		Starring:       v.starring,
		Refine:         v.refine,
		ExcludedTroops: v.excludedTroops,
	})
	if err != nil {
		// a bad view is the client's to fix, keep the connection
		return h.write(conn, errorMessage(err))
	}

	return h.write(conn, &ServerMessage{Type: TypeState, Session: sess.Session, Stats: stats.Stats})
}

func (h *Handler) write(conn *websocket.Conn, msg *ServerMessage) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("Failed to marshal live message", "type", msg.Type, "error", err)
		return true
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return false
	}
	return true
}

func errorMessage(err error) *ServerMessage {
	st := status.Convert(err)
	return &ServerMessage{Type: TypeError, Code: st.Code().String(), Message: st.Message()}
}
