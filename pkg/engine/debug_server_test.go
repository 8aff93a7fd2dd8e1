package engine

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-drift/headless/pkg/event"
	"github.com/go-drift/headless/pkg/input"
	"github.com/go-drift/headless/pkg/widget"
)

// waitForServer polls the health endpoint until ready or timeout.
func waitForServer(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/health", port)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}

// waitForServerDown polls until the server stops responding or timeout.
func waitForServerDown(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://localhost:%d/health", port)
	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err != nil {
			return nil // Connection refused = server is down
		}
		resp.Body.Close()
		time.Sleep(5 * time.Millisecond)
	}
	return fmt.Errorf("server still running after %v", timeout)
}

func startTestServer(t *testing.T, rt *Runtime) (*Server, int) {
	t.Helper()
	srv := NewServer(rt)
	port, err := srv.Start(0)
	if err != nil {
		t.Fatalf("failed to start debug server: %v", err)
	}
	t.Cleanup(srv.Stop)
	if err := waitForServer(port, 2*time.Second); err != nil {
		t.Fatalf("server not ready: %v", err)
	}
	return srv, port
}

func TestDebugServer_StartStop(t *testing.T) {
	rt := NewRuntime()
	srv, port := startTestServer(t, rt)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/health", port))
	if err != nil {
		t.Fatalf("failed to reach health endpoint: %v", err)
	}
	defer resp.Body.Close()

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}

	srv.Stop()
	if err := waitForServerDown(port, 2*time.Second); err != nil {
		t.Errorf("server did not stop: %v", err)
	}
}

func TestDebugServer_Widgets(t *testing.T) {
	rt := NewRuntime()
	btn, _ := rt.SpawnButton("Save", nil)
	box, _ := rt.SpawnCheckbox("Wrap", &widget.Checkbox{Checked: true})
	rt.Store().SetDisabled(btn, true)

	_, port := startTestServer(t, rt)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/widgets", port))
	if err != nil {
		t.Fatalf("failed to reach widgets endpoint: %v", err)
	}
	defer resp.Body.Close()

	var infos []WidgetInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		t.Fatalf("failed to decode widgets response: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("widgets = %d, want 2", len(infos))
	}
	if infos[0].Entity != btn || infos[0].Kind != "button" || !infos[0].Disabled {
		t.Errorf("infos[0] = %+v, want disabled button %v", infos[0], btn)
	}
	if infos[1].Entity != box || infos[1].Checked == nil || !*infos[1].Checked {
		t.Errorf("infos[1] = %+v, want checked checkbox %v", infos[1], box)
	}
}

func TestDebugServer_FocusAndSemantics(t *testing.T) {
	rt := NewRuntime()
	btn, _ := rt.SpawnButton("Save", nil)
	rt.Dispatch(event.NewPointer(event.TypePointerDown, btn, input.PointerEvent{}))

	_, port := startTestServer(t, rt)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/focus", port))
	if err != nil {
		t.Fatalf("failed to reach focus endpoint: %v", err)
	}
	var focusInfo FocusInfo
	if err := json.NewDecoder(resp.Body).Decode(&focusInfo); err != nil {
		t.Fatalf("failed to decode focus response: %v", err)
	}
	resp.Body.Close()
	if focusInfo.Focused != btn || focusInfo.Visible {
		t.Errorf("focus = %+v, want focused=%v visible=false", focusInfo, btn)
	}

	resp, err = http.Get(fmt.Sprintf("http://localhost:%d/semantics", port))
	if err != nil {
		t.Fatalf("failed to reach semantics endpoint: %v", err)
	}
	var nodes []SemanticsInfo
	if err := json.NewDecoder(resp.Body).Decode(&nodes); err != nil {
		t.Fatalf("failed to decode semantics response: %v", err)
	}
	resp.Body.Close()
	if len(nodes) != 1 || nodes[0].Role != "button" || nodes[0].Label != "Save" {
		t.Errorf("semantics = %+v, want one Save button", nodes)
	}
}

func TestDebugServer_TraceFilters(t *testing.T) {
	rt := NewRuntime()
	btn, _ := rt.SpawnButton("Go", nil)
	rt.Dispatch(event.NewPointer(event.TypePointerDown, btn, input.PointerEvent{}))
	rt.Dispatch(event.NewPointer(event.TypePointerUp, btn, input.PointerEvent{}))

	_, port := startTestServer(t, rt)

	resp, err := http.Get(fmt.Sprintf("http://localhost:%d/trace?kind=pointer-up&limit=1", port))
	if err != nil {
		t.Fatalf("failed to reach trace endpoint: %v", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Entries []TraceEntry `json:"entries"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode trace response: %v", err)
	}
	if len(payload.Entries) != 1 || payload.Entries[0].Kind != "pointer-up" {
		t.Errorf("entries = %+v, want a single pointer-up", payload.Entries)
	}
}

func TestDebugServer_MethodNotAllowed(t *testing.T) {
	rt := NewRuntime()
	_, port := startTestServer(t, rt)

	resp, err := http.Post(fmt.Sprintf("http://localhost:%d/stats", port), "application/json", nil)
	if err != nil {
		t.Fatalf("failed to reach stats endpoint: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", resp.StatusCode)
	}
}
