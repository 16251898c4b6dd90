package server

import (
    "encoding/json"
    "fmt"
    "net/http"
    "runtime/debug"
    "strconv"
    "github.com/gorilla/mux"
    "github.com/gorilla/websocket"
    "local/eurorails/bot"
    "local/eurorails/database"
    "local/eurorails/grid"
    "local/eurorails/log"
    "local/eurorails/simple"
)

type Server struct {
    config simple.Config
    upgrader websocket.Upgrader
    db *database.DB
    grid *grid.Provider
    engine *bot.Engine
    broadcaster *Broadcaster
}

func New(config simple.Config) *Server {
    log.Info("New: running")
    initDone := make(chan struct{}, 100)

    db := database.New(config)
    err := db.Run(initDone)
    if err != nil {
        log.Stop("server New panic", err)
        panic(err)
    }

    broadcaster := NewBroadcaster()
    g := grid.NewDefaultProvider()
    engine := bot.NewEngine(db, db, bot.NewStoreExecutor(db, broadcaster), g)

    log.Info("New: Waiting for initDone on created resources")
    <-initDone
    log.Info("New: Done")

    return &Server{
        config: config,
        upgrader: websocket.Upgrader{},
        db: db,
        grid: g,
        engine: engine,
        broadcaster: broadcaster,
    }
}

func (s *Server) Run() {
    r := mux.NewRouter()
    r.HandleFunc("/health", s.handleHealth).Methods("GET")
    r.HandleFunc("/ws", s.handleWs).Methods("GET")
    r.HandleFunc("/api/game/{gid}/bot/{pid}/turn", s.handleBotTurn).Methods("POST")
    http.Handle("/", r)

    addr := fmt.Sprintf("0.0.0.0:%d", s.config.ServerPort)
    log.Debug("Listening on %s", addr)
    log.Fatal("ListenAndServe return: %s", http.ListenAndServe(addr, nil))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
    w.Write([]byte("OK"))
}

// handleBotTurn runs one full bot turn synchronously and returns the
// structured result.  The engine never panics out, so the response is
// always a Result; Success=false with an Error is still a 200.
func (s *Server) handleBotTurn(w http.ResponseWriter, r *http.Request) {
    vars := mux.Vars(r)
    gid, err := strconv.Atoi(vars["gid"])
    if err != nil {
        s.clientError(w, "GameId is not a number: %s", vars["gid"])
        return
    }
    pid := vars["pid"]
    if pid == "" {
        s.clientError(w, "PlayerId is empty")
        return
    }

    result := s.engine.TakeTurn(gid, pid)

    w.Header().Set("Content-Type", "application/json")
    if err := json.NewEncoder(w).Encode(result); err != nil {
        log.Error("encoding turn result for G%d %s: %s", gid, pid, err)
    }
}

// If this goroutine (for the web request) panics, we will terminate the
// websocket.  For that reason this handler only registers the socket and
// starts the reader, then completes quickly.
func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
    ws, err := s.upgrader.Upgrade(w, r, nil)
    if err != nil {
        s.clientError(w, "Can't upgrade websocket: %s", err)
        return
    }
    defer func() {
        if p := recover(); p != nil {
            log.Error("Panic in websocket goroutine: %s\n%s", p, string(debug.Stack()))
            ws.Close()
        }
    }()
    s.broadcaster.Subscribe(ws)
    go s.drain(ws)
}

// Subscribers never send anything we act on; the read loop exists to
// notice the close and unsubscribe.
func (s *Server) drain(ws *websocket.Conn) {
    defer func() {
        s.broadcaster.Unsubscribe(ws)
        ws.Close()
    }()
    for {
        if _, _, err := ws.ReadMessage(); err != nil {
            return
        }
    }
}

func (s *Server) clientError(w http.ResponseWriter, m string, fs ...interface{}) {
    m = fmt.Sprintf("(ClientError) %s", fmt.Sprintf(m, fs...))
    log.Info(m)
    http.Error(w, m, 400)
}
