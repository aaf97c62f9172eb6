package testkit

import (
	"os"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, `{"detail":"Internal Server Error"}`, "Internal Server Error")
}

func TestMustDecode(t *testing.T) {
	t.Parallel()
	got := MustDecode[map[string]any](t, []byte(`{"id":1,"prediction":0.5}`))
	if got["prediction"].(float64) != 0.5 {
		t.Fatalf("decoded = %#v", got)
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()
	p := WriteFile(t, t.TempDir(), "nested/model.yaml", "format: x\n")
	b, err := os.ReadFile(p)
	if err != nil || string(b) != "format: x\n" {
		t.Fatalf("read back = %q, %v", b, err)
	}
}
