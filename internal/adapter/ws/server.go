package ws

import (
	"net/http"
	"time"
)

// NewServer serves the observer stream at /ws.
func NewServer(addr string, hub *Hub) *http.Server {
	return &http.Server{Addr: addr, Handler: httpHandler(hub), ReadHeaderTimeout: 10 * time.Second}
}

func httpHandler(hub *Hub) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.HandleWS)
	return mux
}
