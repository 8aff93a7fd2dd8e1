package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-drift/headless/pkg/entity"
	"github.com/go-drift/headless/pkg/semantics"
	"github.com/go-drift/headless/pkg/widget"
)

// Server exposes runtime state over HTTP for inspection while an app
// runs. All endpoints are GET and return JSON:
//
//	/widgets   - record kind and capability flags per entity
//	/focus     - focus context
//	/semantics - semantics mirror snapshot
//	/trace     - recent dispatch trace (?limit=, ?kind=, ?consumed=1)
//	/stats     - dispatch counters
//	/health    - liveness probe
type Server struct {
	runtime *Runtime

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer binds a debug server to rt. Call Start to begin serving.
func NewServer(rt *Runtime) *Server {
	return &Server{runtime: rt}
}

// WidgetInfo is the /widgets entry for one entity.
type WidgetInfo struct {
	Entity   entity.ID `json:"entity"`
	Kind     string    `json:"kind"`
	Flags    string    `json:"flags"`
	Disabled bool      `json:"disabled"`
	Pressed  bool      `json:"pressed"`
	Checked  *bool     `json:"checked,omitempty"`
}

// FocusInfo is the /focus response shape.
type FocusInfo struct {
	Focused entity.ID `json:"focused"`
	Visible bool      `json:"visible"`
}

// SemanticsInfo is the /semantics entry for one node.
type SemanticsInfo struct {
	Entity  entity.ID `json:"entity"`
	Role    string    `json:"role"`
	Label   string    `json:"label,omitempty"`
	Toggled string    `json:"toggled,omitempty"`
}

// Start binds port (0 for an ephemeral one) and serves in the
// background. Returns the bound port. Starting an already running
// server returns its current port.
func (s *Server) Start(port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		if s.listener != nil {
			return s.listener.Addr().(*net.TCPAddr).Port, nil
		}
		return port, nil
	}

	// Bind first to fail fast on port conflicts.
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return 0, fmt.Errorf("debug server listen: %w", err)
	}
	actualPort := listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.HandleFunc("/widgets", s.handleWidgets)
	mux.HandleFunc("/focus", s.handleFocus)
	mux.HandleFunc("/semantics", s.handleSemantics)
	mux.HandleFunc("/trace", s.handleTrace)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)

	server := &http.Server{Handler: mux}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			// Server failed; clear state so it can be restarted.
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
		}
	}()

	return actualPort, nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

func (s *Server) handleWidgets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	store := s.runtime.Store()
	entities := store.Entities()
	infos := make([]WidgetInfo, 0, len(entities))
	for _, e := range entities {
		flags := store.Flags(e)
		info := WidgetInfo{
			Entity:   e,
			Kind:     store.Kind(e).String(),
			Flags:    flags.String(),
			Disabled: flags.Has(widget.FlagDisabled),
			Pressed:  flags.Has(widget.FlagPressed),
		}
		if cb, ok := store.Checkbox(e); ok {
			checked := cb.Checked
			info.Checked = &checked
		}
		infos = append(infos, info)
	}

	writeJSON(w, infos)
}

func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	f := s.runtime.Focus()
	writeJSON(w, FocusInfo{Focused: f.Focused(), Visible: f.Visible()})
}

func (s *Server) handleSemantics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	nodes := s.runtime.Semantics().Snapshot()
	infos := make([]SemanticsInfo, 0, len(nodes))
	for _, n := range nodes {
		info := SemanticsInfo{
			Entity: n.Entity,
			Role:   n.Role.String(),
			Label:  n.Label,
		}
		if n.Toggled != semantics.ToggledUnset {
			info.Toggled = n.Toggled.String()
		}
		infos = append(infos, info)
	}

	writeJSON(w, infos)
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	entries := s.runtime.Trace()
	entries = applyTraceFilters(r, entries)

	resp := struct {
		Entries []TraceEntry `json:"entries"`
	}{
		Entries: entries,
	}
	writeJSON(w, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, s.runtime.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func applyTraceFilters(r *http.Request, entries []TraceEntry) []TraceEntry {
	var filters []func(TraceEntry) bool

	if kind := r.URL.Query().Get("kind"); kind != "" {
		filters = append(filters, func(e TraceEntry) bool { return e.Kind == kind })
	}
	if value := r.URL.Query().Get("consumed"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil && parsed {
			filters = append(filters, func(e TraceEntry) bool { return e.Consumed })
		}
	}

	if len(filters) > 0 {
		filtered := make([]TraceEntry, 0, len(entries))
	outer:
		for _, entry := range entries {
			for _, f := range filters {
				if !f(entry) {
					continue outer
				}
			}
			filtered = append(filtered, entry)
		}
		entries = filtered
	}

	limit := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
