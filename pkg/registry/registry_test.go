package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/arthur-debert/buildscripts/pkg/errors"
)

type stepFunc func(params map[string]string) error

func TestRegister(t *testing.T) {
	reg := New[string]()

	t.Run("register valid item", func(t *testing.T) {
		if err := reg.Register("test", "first"); err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if n := len(reg.List()); n != 1 {
			t.Errorf("List() has %d items, want 1", n)
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", "nameless")
		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("duplicate is rejected and first registration kept", func(t *testing.T) {
		err := reg.Register("test", "second")
		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
		got, _ := reg.Get("test")
		if got != "first" {
			t.Errorf("Get() after duplicate = %q, want %q", got, "first")
		}
	})
}

func TestGetAndLookup(t *testing.T) {
	reg := New[string]()
	_ = reg.Register("test2", "echo")

	got, err := reg.Get("test2")
	if err != nil || got != "echo" {
		t.Fatalf("Get() = %q, %v", got, err)
	}

	_, err = reg.Get("ghost")
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Get() missing should return ErrNotFound, got %v", err)
	}

	if _, ok := reg.Lookup("ghost"); ok {
		t.Error("Lookup() missing should report false")
	}
	if !reg.Has("test2") || reg.Has("ghost") {
		t.Error("Has() mismatch")
	}
}

func TestList(t *testing.T) {
	reg := New[int]()
	for i, name := range []string{"test3", "test", "test2"} {
		_ = reg.Register(name, i)
	}

	list := reg.List()
	expected := []string{"test", "test2", "test3"}

	if len(list) != len(expected) {
		t.Fatalf("List() returned %d items, want %d", len(list), len(expected))
	}
	for i, name := range list {
		if name != expected[i] {
			t.Errorf("List()[%d] = %s, want %s", i, name, expected[i])
		}
	}
}

func TestWithFunctions(t *testing.T) {
	reg := New[stepFunc]()
	_ = reg.Register("fails", func(params map[string]string) error {
		return fmt.Errorf("failed with %s", params["k"])
	})

	fn, err := reg.Get("fails")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if err := fn(map[string]string{"k": "v"}); err == nil || err.Error() != "failed with v" {
		t.Errorf("retrieved function returned %v", err)
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[int]()
	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				if err := reg.Register(fmt.Sprintf("g%d_%d", id, i), i); err != nil {
					t.Errorf("concurrent Register() failed: %v", err)
				}
				_ = reg.List()
			}
		}(g)
	}
	wg.Wait()

	if n := len(reg.List()); n != goroutines*perGoroutine {
		t.Errorf("List() has %d items, want %d", n, goroutines*perGoroutine)
	}
}

func TestMustRegister(t *testing.T) {
	reg := New[int]()
	MustRegister(reg, "once", 1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustRegister() should panic on duplicate registration")
		}
	}()
	MustRegister(reg, "once", 2)
}
