// Command chaosserve serves an interactive fractal viewer over HTTP.
//
// The page at / renders frames pushed over a websocket; each connection owns
// its own game instance and drives it with JSON commands (run steps, switch
// preset, explore a Julia constant, pan, zoom). All rendering happens server
// side; the browser only displays PNG frames.
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/coder/websocket"

	"github.com/stewi1014/chaosgame"
)

var (
	addr    = flag.String("addr", ":8080", "listen address")
	width   = flag.Int("width", 800, "canvas width in pixels")
	height  = flag.Int("height", 600, "canvas height in pixels")
	verbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	if *verbose {
		chaosgame.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler)
	mux.HandleFunc("/ws", websocketHandler)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost%s", *addr)
	return srv.ListenAndServe()
}

func indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// websocketHandler upgrades the connection and hands it to a session.
// Each connection gets its own explicitly owned game; nothing is shared
// between clients.
func websocketHandler(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Println(err)
		return
	}

	log.Printf("client connected: %s", r.RemoteAddr)
	s, err := newSession(c, *width, *height)
	if err != nil {
		log.Printf("session: %v", err)
		c.Close(websocket.StatusInternalError, "session setup failed")
		return
	}

	err = s.serve(r.Context())
	log.Printf("client disconnected: %s (%v)", r.RemoteAddr, err)
}
