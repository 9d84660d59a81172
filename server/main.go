//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"net/http"
	"os"

	"github.com/simukka/blackhole/logger"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML []byte

// newHandler serves the embedded page at the root and the compiled
// bundle (blackhole.js and its source map) from dir.
func newHandler(dir string) http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(dir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dir := flag.String("dir", ".", "Directory holding the gopherjs bundle")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{LogLevel: *logLevel, ServiceName: "blackhole-server"})
	defer log.Sync()

	log.Info("serving",
		zap.String("url", "http://localhost"+*addr),
		zap.String("dir", *dir),
	)

	if err := http.ListenAndServe(*addr, newHandler(*dir)); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
