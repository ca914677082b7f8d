// Package inspect streams live world state to debugging clients over
// websocket. It is a development aid, not a game transport: every
// connected client receives the same JSON snapshot each tick.
package inspect

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vexlab/vex/internal/core/observability/log"
	"github.com/vexlab/vex/internal/core/world"
	"github.com/vexlab/vex/pkg/generic"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Debug tool: accept any origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Frame is one broadcast payload.
type Frame struct {
	Tick     uint64           `json:"tick"`
	Entities []world.Snapshot `json:"entities"`
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

// Inspector accepts websocket subscribers and broadcasts world
// snapshots at the configured interval.
type Inspector struct {
	addr     string
	interval time.Duration
	w        *world.World
	log      *log.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	tick    uint64

	ready chan struct{}
	laddr net.Addr

	snapshots *generic.Pool[[]world.Snapshot]
}

// New creates an inspector for w, broadcasting every interval.
func New(addr string, interval time.Duration, w *world.World, logger *log.Logger) *Inspector {
	return &Inspector{
		addr:     addr,
		interval: interval,
		w:        w,
		log:      logger,
		clients:  make(map[*client]struct{}),
		ready:    make(chan struct{}),
		snapshots: generic.NewPool(func() []world.Snapshot {
			return make([]world.Snapshot, 0, 64)
		}).OnPut(func(s []world.Snapshot) []world.Snapshot { return s[:0] }),
	}
}

// Run serves subscribers and broadcasts until ctx is cancelled.
func (ins *Inspector) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ins.addr)
	if err != nil {
		return err
	}
	ins.laddr = ln.Addr()
	close(ins.ready)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", ins.handleWS)
	srv := &http.Server{Handler: mux}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(ins.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				ins.broadcast()
			}
		}
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		ins.closeAll()
		return nil
	})

	ins.log.Info("inspector listening", log.String("addr", ln.Addr().String()))
	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// Ready is closed once the listener is bound; Addr is valid after it.
func (ins *Inspector) Ready() <-chan struct{} { return ins.ready }

// Addr returns the bound listen address.
func (ins *Inspector) Addr() net.Addr { return ins.laddr }

// ClientCount reports how many subscribers are connected.
func (ins *Inspector) ClientCount() int {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	return len(ins.clients)
}

func (ins *Inspector) handleWS(rw http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(rw, req, nil)
	if err != nil {
		ins.log.Warn("inspector upgrade failed", log.Err(err))
		return
	}
	c := &client{conn: conn}
	ins.mu.Lock()
	ins.clients[c] = struct{}{}
	ins.mu.Unlock()
	ins.log.Debug("inspector client connected", log.String("remote", conn.RemoteAddr().String()))

	// Drain (and discard) client reads so pings and close frames are
	// processed; drop the client when the read loop ends.
	go func() {
		defer ins.drop(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (ins *Inspector) broadcast() {
	ins.mu.Lock()
	if len(ins.clients) == 0 {
		ins.tick++
		ins.mu.Unlock()
		return
	}
	targets := make([]*client, 0, len(ins.clients))
	for c := range ins.clients {
		targets = append(targets, c)
	}
	ins.tick++
	tick := ins.tick
	ins.mu.Unlock()

	snaps := ins.snapshots.Get()
	snaps = ins.w.Snapshots(snaps)
	payload, err := json.Marshal(Frame{Tick: tick, Entities: snaps})
	ins.snapshots.Put(snaps)
	if err != nil {
		ins.log.Error("inspector marshal failed", log.Err(err))
		return
	}

	for _, c := range targets {
		if err := c.send(payload); err != nil {
			ins.log.Debug("inspector client dropped", log.Err(err))
			ins.drop(c)
		}
	}
}

func (ins *Inspector) drop(c *client) {
	ins.mu.Lock()
	_, ok := ins.clients[c]
	if ok {
		delete(ins.clients, c)
	}
	ins.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

func (ins *Inspector) closeAll() {
	ins.mu.Lock()
	targets := make([]*client, 0, len(ins.clients))
	for c := range ins.clients {
		targets = append(targets, c)
	}
	ins.clients = make(map[*client]struct{})
	ins.mu.Unlock()
	for _, c := range targets {
		_ = c.conn.Close()
	}
}
