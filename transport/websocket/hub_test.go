package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/sheikhrachel/go-life/model"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("client count = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func blinkerWorld(t *testing.T) *model.World {
	t.Helper()
	w, err := model.New(3, 3, []model.Cell{
		model.Dead, model.Alive, model.Dead,
		model.Dead, model.Alive, model.Dead,
		model.Dead, model.Alive, model.Dead,
	})
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNewFrame(t *testing.T) {
	frame := NewFrame(blinkerWorld(t), 7)

	if frame.Event != "frame" || frame.Generation != 7 {
		t.Errorf("frame header = %q/%d", frame.Event, frame.Generation)
	}
	if frame.Width != 3 || frame.Height != 3 || frame.Population != 3 {
		t.Errorf("frame shape = %dx%d pop %d", frame.Width, frame.Height, frame.Population)
	}
	if frame.Text != " # \n # \n # " {
		t.Errorf("frame text = %q", frame.Text)
	}
}

func TestHubBroadcastsFrames(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	hub.BroadcastFrame(blinkerWorld(t), 3)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var frame Frame
	if err := json.Unmarshal(data, &frame); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	if frame.Generation != 3 || frame.Population != 3 || frame.Text != " # \n # \n # " {
		t.Errorf("unexpected frame %+v", frame)
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	conn.Close()
	waitForClients(t, hub, 0)
}

func TestBroadcastAfterStopDoesNotBlock(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub()
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	w := blinkerWorld(t)
	done := make(chan struct{})
	go func() {
		hub.BroadcastFrame(w, 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("BroadcastFrame blocked on a stopped hub")
	}
}
