package dashboard_stream_get

import (
	"net/http"
	"time"

	"dashboard/internal/handlers/rest/dto"
	"dashboard/internal/handlers/rest/respond"
	"dashboard/internal/pkg/reqctx"
	"dashboard/internal/store"
	"dashboard/pkg/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	readLimit  = 512
)

// Handler отдаёт снимок экрана по WebSocket: сразу после подключения
// и после каждого изменения состояния. Клиент только читает.
type Handler struct {
	log      handlerLogger
	upgrader websocket.Upgrader
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(logger.NewField("handler", "dashboard_stream_get")),
		upgrader: websocket.Upgrader{
			// Запрос уже прошёл прокси аутентификации.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, ok := reqctx.View[View](r.Context())
	if !ok {
		respond.Error(w, h.log, http.StatusInternalServerError, "view is not active")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", logger.NewField("error", err))
		return
	}

	updates, unsubscribe := view.Subscribe()
	defer unsubscribe()

	log := h.log.With(logger.NewField("view", view.Kind().String()))
	log.Info("stream opened")

	gone := make(chan struct{})
	go readPump(conn, gone)

	writePump(log, conn, view, updates, gone)
	log.Info("stream closed")
}

// readPump читает только служебные кадры, чтобы заметить отключение клиента.
func readPump(conn *websocket.Conn, gone chan<- struct{}) {
	defer close(gone)

	conn.SetReadLimit(readLimit)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func writePump(log logger.Logger, conn *websocket.Conn, view View, updates <-chan struct{}, gone <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	if !writeSnapshot(log, conn, view) {
		return
	}

	for {
		select {
		case _, ok := <-updates:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "view closed"))
				return
			}
			if !writeSnapshot(log, conn, view) {
				return
			}

		case now := <-ticker.C:
			// открытый поток держит экран активным
			view.Touch(now)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-gone:
			return
		}
	}
}

func writeSnapshot(log logger.Logger, conn *websocket.Conn, view View) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

	snapshot := dto.FromSnapshot(view.Kind(), view.Session(), view.Snapshot(store.Query{}))
	if err := conn.WriteJSON(snapshot); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			log.Warn("write snapshot", logger.NewField("error", err))
		}
		return false
	}
	return true
}
