package nsx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dfwportal/internal/config"
)

type fakeManager struct {
	sections     []Section
	getByIdFails bool
	listFails    bool
	created      []Section
	listCalls    int
}

func (m *fakeManager) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/firewall/sections/{id}", func(w http.ResponseWriter, r *http.Request) {
		if m.getByIdFails {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error_message":"section not found"}`))
			return
		}
		for _, s := range m.sections {
			if s.Id == r.PathValue("id") {
				json.NewEncoder(w).Encode(s)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /api/v1/firewall/sections", func(w http.ResponseWriter, r *http.Request) {
		m.listCalls++
		if m.listFails {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"results": m.sections})
	})
	mux.HandleFunc("POST /api/v1/firewall/sections", func(w http.ResponseWriter, r *http.Request) {
		var s Section
		if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
			t.Fatalf("decode create payload: %v", err)
		}
		s.Id = "created-1"
		m.created = append(m.created, s)
		json.NewEncoder(w).Encode(s)
	})
	return mux
}

func TestResolveSectionByConfiguredId(t *testing.T) {
	m := &fakeManager{sections: []Section{{Id: "sec-1", DisplayName: "Existing"}}}
	srv := httptest.NewTLSServer(m.handler(t))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{Id: "sec-1", Name: "Portal", Category: "LAYER3"}, 0)
	section, err := c.ResolveSection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if section.Id != "sec-1" {
		t.Fatalf("expected configured section, got %+v", section)
	}
	if m.listCalls != 0 {
		t.Fatalf("id hit must not list sections")
	}
}

func TestResolveSectionFallsBackToName(t *testing.T) {
	m := &fakeManager{
		sections:     []Section{{Id: "sec-7", DisplayName: "Portal"}},
		getByIdFails: true,
	}
	srv := httptest.NewTLSServer(m.handler(t))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{Id: "gone", Name: "Portal", Category: "LAYER3"}, 0)
	section, err := c.ResolveSection(context.Background())
	if err != nil {
		t.Fatalf("lookup by id failure must not surface: %v", err)
	}
	if section.Id != "sec-7" {
		t.Fatalf("expected name match, got %+v", section)
	}
	if len(m.created) != 0 {
		t.Fatalf("existing section must not be recreated")
	}
}

func TestResolveSectionCreatesWhenMissing(t *testing.T) {
	m := &fakeManager{getByIdFails: true}
	srv := httptest.NewTLSServer(m.handler(t))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{Id: "gone", Name: "Portal", Category: "LAYER3"}, 0)
	section, err := c.ResolveSection(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if section.Id != "created-1" {
		t.Fatalf("expected created section, got %+v", section)
	}
	if len(m.created) != 1 {
		t.Fatalf("expected one create call, got %d", len(m.created))
	}
	created := m.created[0]
	if created.DisplayName != "Portal" || created.SectionType != "LAYER3" || !created.Stateful {
		t.Fatalf("unexpected create payload: %+v", created)
	}
}

func TestResolveSectionListFailureSurfaces(t *testing.T) {
	m := &fakeManager{listFails: true}
	srv := httptest.NewTLSServer(m.handler(t))
	defer srv.Close()

	c := newTestClient(srv, config.SectionConfig{Name: "Portal", Category: "LAYER3"}, 0)
	if _, err := c.ResolveSection(context.Background()); err == nil {
		t.Fatalf("expected error when listing fails")
	}
}
