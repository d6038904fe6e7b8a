package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"hltree/highlight"
	"hltree/internal/lang"
	"hltree/internal/metrics"
	"hltree/tsadapt"
)

var serveCfg struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /highlight and GET /metrics over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveCfg.addr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

type highlightRequest struct {
	Source   string `json:"source"`
	Language string `json:"language"`
}

type highlightResponse struct {
	RequestID string       `json:"request_id"`
	Spans     []spanResult `json:"spans"`
}

func runServe(cmd *cobra.Command, args []string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/highlight", handleHighlight)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	fmt.Fprintf(os.Stderr, "hltree: listening on %s\n", serveCfg.addr)
	return http.ListenAndServe(serveCfg.addr, mux)
}

func handleHighlight(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	start := time.Now()

	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req highlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("decoding request: %v", err), http.StatusBadRequest)
		return
	}

	id := lang.ID(req.Language)
	var spans []spanResult
	if id != lang.Plain && id != "" {
		grammar, ok := tsadapt.Lookup(id)
		if !ok {
			http.Error(w, fmt.Sprintf("unknown language %q", req.Language), http.StatusBadRequest)
			return
		}
		tree, err := tsadapt.Parse(r.Context(), grammar, []byte(req.Source))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		highlight.HighlightAll(tree, highlight.DefaultPreset.Match, func(from, to int, classes string) {
			spans = append(spans, spanResult{From: from, To: to, Classes: classes})
		})
		tree.Close()
	}

	dur := time.Since(start)
	metrics.Observe(req.Language, dur, len(spans))
	fmt.Fprintf(os.Stderr, "hltree: request=%s language=%s spans=%d duration=%s\n", requestID, req.Language, len(spans), dur)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(highlightResponse{RequestID: requestID, Spans: spans})
}
