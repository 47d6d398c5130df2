// Command flocksim runs the flocking simulator: the per-tick simulation
// loop and the WebSocket fan-out server that streams agent-state
// snapshots to connected observers (spec §6).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"flocksim/config"
	"flocksim/network"
	"flocksim/simulation"
)

const (
	defaultBindAddr   = "127.0.0.1:8080"
	defaultConfigPath = "config.yaml"
	inboxBufferSize   = 256
)

func main() {
	debug := flag.Bool("debug", false, "log a per-tick behavior tally")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] [host:port]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	addr := defaultBindAddr
	if flag.NArg() > 0 {
		addr = flag.Arg(0)
	}

	params, err := config.Load(defaultConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "flocksim: config error: %v\n", err)
		os.Exit(1)
	}

	if err := run(addr, params, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "flocksim: %v\n", err)
		os.Exit(1)
	}
}

func run(addr string, params simulation.Parameters, debug bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inbox := make(chan network.IncomingMessage, inboxBufferSize)
	registry := simulation.NewClientRegistry()
	orchestrator := simulation.NewOrchestrator(inbox, registry, params)
	orchestrator.DebugLog = debug

	group, groupCtx := errgroup.WithContext(ctx)

	router := mux.NewRouter()
	router.HandleFunc("/", serveIndex).Methods(http.MethodGet)
	router.HandleFunc("/stats", serveStats(orchestrator.Metrics)).Methods(http.MethodGet)
	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWebSocket(groupCtx, w, r, inbox, registry)
	})

	httpServer := &http.Server{Addr: addr, Handler: router}

	// Shutdown is triggered by completion of either the accept loop or the
	// simulation loop; the first to finish wins and the other is dropped
	// (spec §5).
	group.Go(func() error {
		<-groupCtx.Done()
		return httpServer.Close()
	})

	group.Go(func() error {
		log.Printf("flocksim listening on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return orchestrator.Run(groupCtx)
	})

	return group.Wait()
}

func serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "flocksim: real-time flocking simulator, see /ws")
}

func serveStats(metrics *simulation.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "avg_delta_frame %.3f\n", metrics.AverageDeltaFrame())
	}
}

func serveWebSocket(ctx context.Context, w http.ResponseWriter, r *http.Request, inbox chan<- network.IncomingMessage, registry *simulation.ClientRegistry) {
	addr := r.RemoteAddr
	outbound := registry.Register(addr)
	defer registry.Deregister(addr)

	client, err := network.NewClient(addr, outbound, inbox, w, r)
	if err != nil {
		log.Printf("handshake failed for %s: %v", addr, err)
		return
	}

	if err := client.Sync(ctx); err != nil {
		log.Printf("client %s disconnected: %v", addr, err)
	}
}
