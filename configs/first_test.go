package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewSourceLoader(testSources, testSchema)

	str := First[string](loader, "str")
	if str != "bar" {
		t.Fatalf("got %v", str)
	}

	list := First[[]int](loader, "list")
	if len(list) != 3 {
		t.Fatalf("got %v", list)
	}

	flag := First[*bool](loader, "missing")
	if flag != nil {
		t.Fatalf("got %v", flag)
	}
}
