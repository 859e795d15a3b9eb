package netutil

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"
)

// TestBindTCP validates basic port binding with an OS-assigned port
func TestBindTCP(t *testing.T) {
	binder := NewPortBinder()

	listener, err := binder.BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("BindTCP failed: %v", err)
	}
	defer listener.Close()

	port, err := GetListenerPort(listener)
	if err != nil {
		t.Fatalf("GetListenerPort failed: %v", err)
	}

	if port <= 0 || port > 65535 {
		t.Errorf("GetListenerPort returned invalid port %d", port)
	}
}

// TestBindTCPConflict validates that binding an occupied port returns a
// typed AddressInUseError
func TestBindTCPConflict(t *testing.T) {
	binder := NewPortBinder()

	// Occupy a port first
	holder, err := binder.BindTCP("127.0.0.1", 0)
	if err != nil {
		t.Fatalf("failed to bind holder listener: %v", err)
	}
	defer holder.Close()

	port, err := GetListenerPort(holder)
	if err != nil {
		t.Fatalf("GetListenerPort failed: %v", err)
	}

	// Second bind on the same port must conflict
	_, err = binder.BindTCP("127.0.0.1", port)
	if err == nil {
		t.Fatalf("expected conflict binding port %d twice, got none", port)
	}

	var addrErr *AddressInUseError
	if !errors.As(err, &addrErr) {
		t.Fatalf("expected *AddressInUseError, got %T: %v", err, err)
	}

	if addrErr.Port != port {
		t.Errorf("AddressInUseError.Port = %d, want %d", addrErr.Port, port)
	}

	if !strings.Contains(addrErr.Error(), fmt.Sprintf("%d", port)) {
		t.Errorf("error message should name the port, got: %v", addrErr)
	}

	// Classification must see through the wrapper to the syscall error
	if !IsAddressInUseError(err) {
		t.Error("IsAddressInUseError should detect the wrapped conflict")
	}
}

// TestIsAddressInUseErrorNonConflict validates classification of unrelated errors
func TestIsAddressInUseErrorNonConflict(t *testing.T) {
	if IsAddressInUseError(nil) {
		t.Error("nil error should not classify as address in use")
	}

	if IsAddressInUseError(fmt.Errorf("some unrelated error")) {
		t.Error("generic error should not classify as address in use")
	}
}

// stubListener implements net.Listener with a non-TCP address for error path testing
type stubListener struct {
	net.Listener
}

func (s stubListener) Addr() net.Addr {
	return &net.UnixAddr{Name: "/tmp/stub.sock", Net: "unix"}
}

// TestGetListenerPortNonTCP validates the error path for non-TCP listeners
func TestGetListenerPortNonTCP(t *testing.T) {
	if _, err := GetListenerPort(stubListener{}); err == nil {
		t.Error("expected error for non-TCP listener address")
	}
}
