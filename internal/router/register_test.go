package router

import "testing"

func TestRegisterClientAndIBCApp(t *testing.T) {
	r, store := newTestRouter(1000)

	if err := r.RegisterClient("client-a", "client-b"); err != nil {
		t.Fatalf("register client: %v", err)
	}
	rec, ok := store.GetClient("client-a")
	if !ok || rec.CounterpartyClientID != "client-b" {
		t.Fatalf("expected client-a to be registered with counterparty client-b, got %+v", rec)
	}

	app := &fakeApp{}
	if err := r.RegisterIBCApp("port-a", "identity-a", app); err != nil {
		t.Fatalf("register app: %v", err)
	}
	port, ok := store.GetPort("port-a")
	if !ok || port.AppIdentity != "identity-a" {
		t.Fatalf("expected port-a to be registered, got %+v", port)
	}
	if r.Apps["port-a"] != app {
		t.Fatalf("expected the app to be wired into the router's app registry")
	}
}

func TestSendPacketRejectsUnregisteredClient(t *testing.T) {
	r, _ := newTestRouter(1000)
	r.RegisterIBCApp("port-a", "app-a", &fakeApp{})
	payload := Payload{SourcePort: "port-a", DestPort: "port-b", Version: "1", Encoding: "json"}
	if _, _, err := r.SendPacket("client-a", "port-a", payload, 2000); err != ErrClientNotRegistered {
		t.Fatalf("expected ErrClientNotRegistered, got %v", err)
	}
}
