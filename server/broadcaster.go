package server

import (
    "sync"
    "github.com/gorilla/websocket"
    "local/eurorails/log"
    "local/eurorails/message"
)

// Implements message.Broadcaster interface.  Fans committed-turn
// notifications out to every subscribed websocket.  A slow or dead
// subscriber is dropped, never waited on.
type Broadcaster struct {
    mux sync.Mutex
    subs map[*websocket.Conn]struct{}
}

func NewBroadcaster() *Broadcaster {
    return &Broadcaster{subs: map[*websocket.Conn]struct{}{}}
}

func (bc *Broadcaster) Subscribe(ws *websocket.Conn) {
    bc.mux.Lock()
    defer bc.mux.Unlock()
    bc.subs[ws] = struct{}{}
    log.Debug("websocket subscribed (%d total)", len(bc.subs))
}

func (bc *Broadcaster) Unsubscribe(ws *websocket.Conn) {
    bc.mux.Lock()
    defer bc.mux.Unlock()
    delete(bc.subs, ws)
}

func (bc *Broadcaster) Broadcast(n message.Notification) {
    bc.mux.Lock()
    defer bc.mux.Unlock()
    for ws := range bc.subs {
        if err := ws.WriteJSON(n); err != nil {
            log.Debug("dropping websocket on write error: %s", err)
            ws.Close()
            delete(bc.subs, ws)
        }
    }
}
