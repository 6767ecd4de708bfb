// SPDX-License-Identifier: MIT
package blackvue

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockServer provides a configurable dashcam mock for testing. It speaks
// the index protocol on /blackvue_vod.cgi and serves file bodies under
// /Record/.
type MockServer struct {
	*httptest.Server
	mu    sync.RWMutex
	files map[string][]byte // filename -> body
	order []string          // listing order
	hits  map[string]int    // request path -> count
}

// NewMockServer creates an empty mock dashcam.
func NewMockServer() *MockServer {
	mock := &MockServer{
		files: make(map[string][]byte),
		hits:  make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/blackvue_vod.cgi", mock.handleIndex)
	mux.HandleFunc("/Record/", mock.handleRecord)

	mock.Server = httptest.NewServer(mux)
	return mock
}

// AddFile registers a file on the device. Only .mp4 files appear in the
// index listing; sidecars are downloadable but never listed, matching real
// device behavior.
func (m *MockServer) AddFile(name string, body []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.files[name]; !exists && strings.HasSuffix(name, ".mp4") {
		m.order = append(m.order, name)
	}
	m.files[name] = body
}

// Hits returns how often the given request path was served.
func (m *MockServer) Hits(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits[path]
}

// Address returns the host:port of the mock, suitable for blackvue.New.
func (m *MockServer) Address() string {
	return strings.TrimPrefix(m.URL, "http://")
}

func (m *MockServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.hits[r.URL.Path]++
	m.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	var b strings.Builder
	b.WriteString("v:1.00\r\n")
	m.mu.RLock()
	for _, name := range m.order {
		fmt.Fprintf(&b, "n:/Record/%s,s:%d\r\n", name, len(m.files[name]))
	}
	m.mu.RUnlock()
	_, _ = w.Write([]byte(b.String()))
}

func (m *MockServer) handleRecord(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/Record/")

	m.mu.Lock()
	m.hits[r.URL.Path]++
	body, ok := m.files[name]
	m.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write(body)
}
