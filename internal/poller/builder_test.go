// internal/poller/builder_test.go
package poller

import (
	"errors"
	"net"
	"testing"
	"time"

	cfg "github.com/tamzrod/floatlink/internal/config"
	"github.com/tamzrod/floatlink/internal/frame"
	"github.com/tamzrod/floatlink/internal/receiver"
	wmodbus "github.com/tamzrod/floatlink/internal/writer/modbus"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	l.Close()
	return addr
}

func TestBuild_ConnectFailure(t *testing.T) {
	_, _, err := Build(cfg.WatchConfig{
		Endpoint:   freeAddr(t),
		UnitID:     1,
		IntervalMs: 100,
		TimeoutMs:  200,
	}, nil)
	if err == nil {
		t.Fatalf("expected connect error")
	}
}

// Send into a receiver, then read the same frame back with FC3.
func TestBuild_ReadsFrameFromReceiver(t *testing.T) {
	addr := freeAddr(t)

	r := receiver.New(10, nil)
	srv, err := receiver.NewServer(receiver.ServerConfig{Listen: addr, Timeout: 5 * time.Second, MaxClients: 4}, r.Handler())
	if err != nil {
		t.Fatalf("NewServer err=%v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("Start err=%v", err)
	}
	defer srv.Stop()

	w, err := wmodbus.NewEndpointClient(wmodbus.Config{Endpoint: addr, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("writer client: %v", err)
	}
	defer w.Close()

	p, closePoller, err := Build(cfg.WatchConfig{
		Endpoint:   addr,
		UnitID:     1,
		IntervalMs: 100,
		TimeoutMs:  2000,
	}, nil)
	if err != nil {
		t.Fatalf("Build err=%v", err)
	}
	defer closePoller()

	if err := w.WriteRegisters(1, 0, []uint16{49910, 59768, 5}); err != nil {
		t.Fatalf("write: %v", err)
	}

	res := p.PollOnce()
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if res.Value != -123.45599365234375 {
		t.Fatalf("value = %v", res.Value)
	}

	// corrupt the low word; the receiver stores it, watch must flag it
	if err := w.WriteRegisters(1, 1, []uint16{59769}); err != nil {
		t.Fatalf("write: %v", err)
	}

	res = p.PollOnce()
	if !errors.Is(res.Err, frame.ErrChecksumMismatch) {
		t.Fatalf("expected ErrChecksumMismatch, got %v", res.Err)
	}
}
