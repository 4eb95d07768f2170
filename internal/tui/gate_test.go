package tui

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/store"
)

func TestGuard(t *testing.T) {
	present := &domain.Session{Token: "tok", Username: "alice"}

	tests := []struct {
		name    string
		session *domain.Session
		route   Route
		want    Decision
	}{
		{"No Session Redirects", nil, RouteDashboard, Decision{Route: RouteLogin, Redirect: true, From: RouteDashboard}},
		{"Empty Token Redirects", &domain.Session{Username: "alice"}, RouteProfile, Decision{Route: RouteLogin, Redirect: true, From: RouteProfile}},
		{"Session Renders Dashboard", present, RouteDashboard, Decision{Route: RouteDashboard, From: RouteDashboard}},
		{"Session Renders Profile", present, RouteProfile, Decision{Route: RouteProfile, From: RouteProfile}},
		{"Login Is Open", nil, RouteLogin, Decision{Route: RouteLogin, From: RouteLogin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Guard(tt.session, tt.route); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestGateCheck(t *testing.T) {
	st, err := store.NewCatalogStore("", "")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	gate := NewGate(st)

	if d := gate.Check(RouteDashboard); !d.Redirect || d.Route != RouteLogin {
		t.Errorf("expected redirect without session, got %+v", d)
	}

	st.SaveSession(domain.Session{Token: "tok"})
	if d := gate.Check(RouteDashboard); d.Redirect || d.Route != RouteDashboard {
		t.Errorf("expected dashboard with session, got %+v", d)
	}

	st.ClearSession()
	if d := gate.Check(RouteDashboard); !d.Redirect {
		t.Errorf("expected redirect after session cleared, got %+v", d)
	}
}
