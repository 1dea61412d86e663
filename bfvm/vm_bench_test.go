package bfvm

import (
	"testing"

	"github.com/reusee/bftape/bflang"
)

// four nested countdown loops around a long run of increments
const benchSource = `++++++++[>++++++++[>++++++++[>++++++++[>+++++++++++++++++++++++++++++++<-]<-]<-]<-]`

func benchmarkRun(b *testing.B, fold bool) {
	program, err := bflang.Compile([]byte(benchSource), fold)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		vm := NewVM(program, nil, nil)
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkRunFolded(b *testing.B) {
	benchmarkRun(b, true)
}

func BenchmarkRunUnfolded(b *testing.B) {
	benchmarkRun(b, false)
}

func BenchmarkCompile(b *testing.B) {
	src := []byte(helloWorld)
	for b.Loop() {
		if _, err := bflang.Compile(src, true); err != nil {
			b.Fatal(err)
		}
	}
}
