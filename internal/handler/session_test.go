package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/coder/websocket"

	"github.com/dormmate/dormmate/internal/session"
	"github.com/dormmate/dormmate/internal/store"
	"github.com/dormmate/dormmate/internal/websocket"
)

// dialHub connects a real client to the hub so tests can observe broadcasts.
func dialHub(t *testing.T, hub *websocket.Hub) *ws.Conn {
	t.Helper()
	srv := httptest.NewServer(websocket.HandleWebSocket(hub))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	conn, _, err := ws.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(ws.StatusNormalClosure, "") })

	for i := 0; i < 100 && hub.ClientCount() == 0; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ClientCount() == 0 {
		t.Fatal("client never registered with the hub")
	}
	return conn
}

func readMessage(t *testing.T, conn *ws.Conn) websocket.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	var msg websocket.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal broadcast: %v", err)
	}
	return msg
}

func TestSessionSetViewBroadcasts(t *testing.T) {
	hub := websocket.NewHub(slog.Default())
	conn := dialHub(t, hub)

	sess := session.New(store.NewRoommateStore())
	h := NewSessionHandler(sess, hub)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/session/view", strings.NewReader(`{"view":"games"}`))
	h.SetView(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := sess.View(); got != session.ViewGames {
		t.Errorf("view = %s, want games", got)
	}

	msg := readMessage(t, conn)
	if msg.Type != "session_view_changed" {
		t.Errorf("broadcast type = %s, want session_view_changed", msg.Type)
	}
	if msg.Extra["view"] != "games" {
		t.Errorf("broadcast view = %v, want games", msg.Extra["view"])
	}
}

func TestSessionCycleUserBroadcasts(t *testing.T) {
	hub := websocket.NewHub(slog.Default())
	conn := dialHub(t, hub)

	sess := session.New(store.NewRoommateStore())
	h := NewSessionHandler(sess, hub)

	rec := httptest.NewRecorder()
	h.CycleUser(rec, httptest.NewRequest("POST", "/api/session/user/cycle", nil))

	msg := readMessage(t, conn)
	if msg.Type != "session_user_changed" {
		t.Errorf("broadcast type = %s, want session_user_changed", msg.Type)
	}
	if msg.ID != "u2" {
		t.Errorf("broadcast id = %s, want u2", msg.ID)
	}
}

func TestSessionSetViewUnknownFallsBack(t *testing.T) {
	sess := session.New(store.NewRoommateStore())
	h := NewSessionHandler(sess, websocket.NewHub(slog.Default()))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/session/view", strings.NewReader(`{"view":"settings"}`))
	h.SetView(rec, req)

	if got := sess.View(); got != session.ViewDashboard {
		t.Errorf("view = %s, want dashboard fallback", got)
	}
}
