package nav

import "testing"

func testRoutes() []Route {
	return []Route{
		{Key: "index", Title: "Home", Icon: "house"},
		{Key: "recipients", Title: "Recipients", Icon: "people"},
		{Key: "send-money", Title: "Send Money", Icon: "paperplane", Role: RolePrimary, Params: map[string]string{"source": "tab"}},
		{Key: "track", Title: "Track", Icon: "arrows"},
		{Key: "locations", Title: "Locations", Icon: "pin"},
	}
}

func TestPressSwitchesActiveRoute(t *testing.T) {
	r := NewRouter(testRoutes()...)
	cmd := r.Press(2)
	if cmd == nil {
		t.Fatalf("expected route change command")
	}
	msg, ok := cmd().(RouteChangedMsg)
	if !ok {
		t.Fatalf("unexpected message type %T", cmd())
	}
	if msg.Index != 2 || msg.Key != "send-money" {
		t.Fatalf("change addressed to %d/%s", msg.Index, msg.Key)
	}
	if msg.Params["source"] != "tab" {
		t.Fatalf("params not forwarded: %v", msg.Params)
	}
	if r.Snapshot().Active() != 2 {
		t.Fatalf("active index = %d", r.Snapshot().Active())
	}
}

func TestPressOnActiveTabIsIdempotent(t *testing.T) {
	r := NewRouter(testRoutes()...)
	events := 0
	r.Subscribe(func(ev Event) bool {
		events++
		if !ev.Active {
			t.Fatalf("event should mark the active tab")
		}
		return false
	})
	if cmd := r.Press(0); cmd != nil {
		t.Fatalf("press on active tab must not navigate")
	}
	if events != 1 {
		t.Fatalf("event count = %d, want 1", events)
	}
	if r.Snapshot().Active() != 0 {
		t.Fatalf("active index moved to %d", r.Snapshot().Active())
	}
}

func TestVetoSuppressesNavigation(t *testing.T) {
	r := NewRouter(testRoutes()...)
	r.Subscribe(func(Event) bool { return true })
	seen := 0
	r.Subscribe(func(Event) bool { seen++; return false })
	if cmd := r.Press(3); cmd != nil {
		t.Fatalf("vetoed press must not navigate")
	}
	if seen != 1 {
		t.Fatalf("later listeners should still observe the event")
	}
	if r.Snapshot().Active() != 0 {
		t.Fatalf("active index = %d after veto", r.Snapshot().Active())
	}
}

func TestPressOutOfRange(t *testing.T) {
	r := NewRouter(testRoutes()...)
	if cmd := r.Press(-1); cmd != nil {
		t.Fatalf("negative index must be ignored")
	}
	if cmd := r.Press(5); cmd != nil {
		t.Fatalf("index past end must be ignored")
	}
}

func TestSnapshotIsReadOnly(t *testing.T) {
	r := NewRouter(testRoutes()...)
	snap := r.Snapshot()
	routes := snap.Routes()
	routes[0].Key = "mutated"
	if r.Snapshot().ActiveRoute().Key != "index" {
		t.Fatalf("snapshot mutation leaked into router")
	}
	if snap.IndexOf("track") != 3 {
		t.Fatalf("IndexOf track = %d", snap.IndexOf("track"))
	}
	if snap.IndexOf("missing") != -1 {
		t.Fatalf("IndexOf missing should be -1")
	}
}

func TestRouterRegistrationGuards(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic", name)
			}
		}()
		fn()
	}
	mustPanic("empty", func() { NewRouter() })
	mustPanic("dup key", func() {
		NewRouter(
			Route{Key: "a", Role: RolePrimary},
			Route{Key: "a"},
		)
	})
	mustPanic("no primary", func() {
		NewRouter(Route{Key: "a"}, Route{Key: "b"})
	})
	mustPanic("two primaries", func() {
		NewRouter(
			Route{Key: "a", Role: RolePrimary},
			Route{Key: "b", Role: RolePrimary},
		)
	})
}
