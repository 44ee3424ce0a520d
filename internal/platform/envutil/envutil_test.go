package envutil

import (
	"testing"
	"time"
)

func TestInt(t *testing.T) {
	t.Setenv("XW_TEST_INT", "42")
	if got := Int("XW_TEST_INT", 7, nil); got != 42 {
		t.Fatalf("got %d want 42", got)
	}
	t.Setenv("XW_TEST_INT", "nope")
	if got := Int("XW_TEST_INT", 7, nil); got != 7 {
		t.Fatalf("got %d want default 7", got)
	}
	if got := Int("XW_TEST_INT_MISSING", 9, nil); got != 9 {
		t.Fatalf("got %d want default 9", got)
	}
}

func TestBool(t *testing.T) {
	t.Setenv("XW_TEST_BOOL", "Yes")
	if !Bool("XW_TEST_BOOL", false, nil) {
		t.Fatal("expected true")
	}
	t.Setenv("XW_TEST_BOOL", "off")
	if Bool("XW_TEST_BOOL", true, nil) {
		t.Fatal("expected false")
	}
}

func TestDuration(t *testing.T) {
	t.Setenv("XW_TEST_DUR", "90")
	if got := Duration("XW_TEST_DUR", 0, nil); got != 90*time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("XW_TEST_DUR", "1m30s")
	if got := Duration("XW_TEST_DUR", 0, nil); got != 90*time.Second {
		t.Fatalf("got %v", got)
	}
	t.Setenv("XW_TEST_DUR", "")
	if got := Duration("XW_TEST_DUR", time.Second, nil); got != time.Second {
		t.Fatalf("blank should fall back to default, got %v", got)
	}
}

func TestList(t *testing.T) {
	t.Setenv("XW_TEST_LIST", " a, ,b ,c")
	got := List("XW_TEST_LIST", nil, nil)
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestFloat(t *testing.T) {
	t.Setenv("XW_TEST_FLOAT", "0.5")
	if got := Float("XW_TEST_FLOAT", 0.1, nil); got != 0.5 {
		t.Fatalf("got %v want 0.5", got)
	}
	t.Setenv("XW_TEST_FLOAT", "half")
	if got := Float("XW_TEST_FLOAT", 0.1, nil); got != 0.1 {
		t.Fatalf("got %v want default 0.1", got)
	}
}
