package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aulagen/internal/domain/classroom"

	"github.com/coder/websocket"
)

func TestHubPublishNoConnections(t *testing.T) {
	hub := NewHub(nil)
	if err := hub.Publish(context.Background(), []classroom.Event{{Kind: classroom.EventSystem, Content: "x"}}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if hub.ConnectionCount() != 0 {
		t.Fatalf("expected 0 connections, got %d", hub.ConnectionCount())
	}
}

func TestHubRemoveNonexistent(t *testing.T) {
	hub := NewHub(nil)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	hub.remove(&conn{cancel: cancel})
}

func TestHubStreamsEventsToObserver(t *testing.T) {
	hub := NewHub(nil)
	srv := httptest.NewServer(httpHandler(hub))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer func() { _ = client.Close(websocket.StatusNormalClosure, "") }()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("observer never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	ev := classroom.Event{ID: "e1", Kind: classroom.EventDialogue, AgentID: "s1", AgentName: "Mateo", Content: "Mateo dice hola"}
	if err := hub.Publish(ctx, []classroom.Event{ev}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	_, data, err := client.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode message: %v", err)
	}
	if msg.Type != MessageEvent {
		t.Fatalf("type got=%q want=%q", msg.Type, MessageEvent)
	}
	var got classroom.Event
	if err := json.Unmarshal(msg.Payload, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if got.ID != "e1" || got.Kind != classroom.EventDialogue || got.Content != ev.Content {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestHubBroadcastDropsFullObserverWithoutBlocking(t *testing.T) {
	hub := NewHub(nil)
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	stalled := &conn{send: make(chan []byte, 1), cancel: cancel}
	stalled.send <- []byte("pending")
	hub.conns[stalled] = struct{}{}

	done := make(chan struct{})
	go func() {
		_ = hub.Publish(context.Background(), []classroom.Event{{ID: "e1", Kind: classroom.EventSystem, Content: "Pasa el tiempo..."}})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a stalled observer")
	}
	if hub.ConnectionCount() != 0 {
		t.Fatalf("stalled observer should be disconnected, got %d", hub.ConnectionCount())
	}
}
