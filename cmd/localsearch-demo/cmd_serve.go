package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/localsearch/cost"
	"github.com/katalvlaran/localsearch/examples/bitflip"
	"github.com/katalvlaran/localsearch/runner"
	"github.com/katalvlaran/localsearch/solver"
)

var (
	serveAddr string
	serveN    int
	serveSeed int64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a multistart search while streaming OnIteration/OnNewBest events over a websocket",
	Args:  cobra.NoArgs,
	Run:   runServeCommand,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8089", "HTTP listen address")
	serveCmd.Flags().IntVar(&serveN, "n", 64, "bit vector length")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 1, "RNG seed for the runner")
}

// event is one JSON frame pushed to every connected websocket client.
type event struct {
	RunID     string  `json:"run_id"`
	Kind      string  `json:"kind"` // "iteration", "new_best", "restart", "done"
	Iteration uint64  `json:"iteration,omitempty"`
	Restart   uint64  `json:"restart,omitempty"`
	BestCost  float64 `json:"best_cost,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// hub fans events out to every connected websocket client, the way
// leanlp-BTC-coinjoin's Hub does, adapted from gin to net/http.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newHub() *hub { return &hub{clients: make(map[*websocket.Conn]bool)} }

func (h *hub) subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *hub) broadcast(e event) {
	payload, err := json.Marshal(e)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	var conn *websocket.Conn
	for conn = range h.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func runServeCommand(cmd *cobra.Command, args []string) {
	h := newHub()
	http.HandleFunc("/ws", h.subscribe)

	go func() {
		slog.Info("serving websocket progress stream", "addr", serveAddr, "path", "/ws")
		if err := http.ListenAndServe(serveAddr, nil); err != nil {
			slog.Error("http server stopped", "error", err)
		}
	}()

	runID := uuid.New().String()
	sm := bitflip.NewManager()
	ne := bitflip.NewFlipNE()

	entries := make([]solver.RunnerEntry[bitflip.Input, []bool, int], 0, 3)
	var i int
	for i = 0; i < 3; i++ {
		hc := runner.NewHillClimbing[bitflip.Input, []bool, int](ne, 500, serveSeed+int64(i))
		r := &runner.Base[bitflip.Input, []bool, int]{}
		r.Observers = runner.Observers{
			OnIteration: func(iter uint64) { h.broadcast(event{RunID: runID, Kind: "iteration", Iteration: iter}) },
			OnNewBest:   func(iter uint64, c cost.Structure) { h.broadcast(event{RunID: runID, Kind: "new_best", Iteration: iter, BestCost: c.Total}) },
		}
		entries = append(entries, solver.RunnerEntry[bitflip.Input, []bool, int]{Runner: r, Strategy: hc})
	}

	ms := solver.NewMultiStart[bitflip.Input, []bool, int](sm, entries)
	ms.Observers.OnRestart = func(r uint64) { h.broadcast(event{RunID: runID, Kind: "restart", Restart: r}) }

	state, c, err := ms.Solve(bitflip.Input{N: serveN})
	if err != nil {
		slog.Error("solve failed", "run_id", runID, "error", err)
		h.broadcast(event{RunID: runID, Kind: "done"})
		return
	}

	slog.Info("solve complete", "run_id", runID, "best_cost", c.Total, "best_state", bitflip.FormatState(state))
	h.broadcast(event{RunID: runID, Kind: "done", BestCost: c.Total})
}
