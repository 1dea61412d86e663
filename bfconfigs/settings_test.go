package bfconfigs

import (
	"testing"

	"github.com/reusee/bftape/cmds"
	"github.com/reusee/bftape/configs"
	"github.com/reusee/bftape/modes"
	"github.com/reusee/dscope"
	"golang.org/x/text/encoding/charmap"
)

func withSource(t *testing.T, content string, fn any) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewSourceLoader([]configs.Source{
				{
					Name:    "bftape.cue",
					Content: []byte(content),
				},
			}, Schema)
		},
	).Call(fn)
}

func TestDefaults(t *testing.T) {
	withSource(t, "", func(
		fold Fold,
		capacity TapeCapacity,
		quantum Quantum,
	) {
		if !fold {
			t.Fatal("fold should default to true")
		}
		if capacity != DefaultTapeCapacity {
			t.Fatalf("got %d", capacity)
		}
		if quantum != 0 {
			t.Fatalf("got %d", quantum)
		}
	})
}

func TestFromConfig(t *testing.T) {
	withSource(t, `
fold: false
tape_capacity: 8
quantum: 100
`, func(
		fold Fold,
		capacity TapeCapacity,
		quantum Quantum,
	) {
		if fold {
			t.Fatal("fold should be disabled")
		}
		if capacity != 8 {
			t.Fatalf("got %d", capacity)
		}
		if quantum != 100 {
			t.Fatalf("got %d", quantum)
		}
	})
}

func TestSchemaRejects(t *testing.T) {
	for _, content := range []string{
		`tape_capacity: 0`,
		`quantum: -1`,
		`fold: "yes"`,
		`memory: 512`,
	} {
		loader := configs.NewSourceLoader([]configs.Source{
			{
				Name:    "bad.cue",
				Content: []byte(content),
			},
		}, Schema)
		if _, err := loader.Sources(); err == nil {
			t.Fatalf("%s: should error", content)
		}
	}
}

func TestConfigsLoader(t *testing.T) {
	t.Chdir(t.TempDir())
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
	) {
		if _, err := loader.Sources(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestQuantumFlag(t *testing.T) {
	t.Cleanup(func() {
		cmds.GlobalExecutor.MustExecute([]string{"-quantum."})
	})

	cmds.GlobalExecutor.MustExecute([]string{"-quantum", "0"})
	withSource(t, `quantum: 100`, func(
		quantum Quantum,
	) {
		if quantum != 0 {
			t.Fatalf("got %d", quantum)
		}
	})

	cmds.GlobalExecutor.MustExecute([]string{"-quantum", "7"})
	withSource(t, `quantum: 100`, func(
		quantum Quantum,
	) {
		if quantum != 7 {
			t.Fatalf("got %d", quantum)
		}
	})

	cmds.GlobalExecutor.MustExecute([]string{"-quantum."})
	withSource(t, `quantum: 100`, func(
		quantum Quantum,
	) {
		if quantum != 100 {
			t.Fatalf("got %d", quantum)
		}
	})
}

func TestCharset(t *testing.T) {
	for _, c := range []struct {
		config string
		expect *charmap.Charmap
	}{
		{``, charmap.ISO8859_1},
		{`charset: "latin1"`, charmap.ISO8859_1},
		{`charset: "IBM437"`, charmap.CodePage437},
		{`charset: "cp437"`, charmap.CodePage437},
		{`charset: "windows-1252"`, charmap.Windows1252},
		{`charset: "UTF-8"`, charmap.ISO8859_1},
		{`charset: "no such charset"`, charmap.ISO8859_1},
	} {
		withSource(t, c.config, func(
			charset Charset,
		) {
			if (*charmap.Charmap)(charset) != c.expect {
				t.Fatalf("%s: got %v", c.config, charset)
			}
		})
	}
}
