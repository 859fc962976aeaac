package main

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

const source = `package semaphore

import "github.com/solid-rs/itron-rs"

type SignalError uint8

var signalKinds = itron.KindTable[SignalError]{}

var (
	notATable = []int{}
	waitKinds = itron.KindTable[WaitError]{}
)
`

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		qt.Assert(t, qt.IsNil(os.WriteFile(filepath.Join(dir, name), []byte(content), 0666)))
	}
	write("errors.go", source)
	write("kinds_gen.go", "package semaphore\n\nvar stale = itron.KindTable[Stale]{}\n")
	write("errors_test.go", "package semaphore\n\nvar probe = itron.KindTable[Probe]{}\n")

	f, err := collect(dir, "kinds_gen.go")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Package, "semaphore"))
	qt.Assert(t, qt.Equals(f.Qual, "itron."))
	qt.Assert(t, qt.DeepEquals(f.Kinds, []kind{
		{"SignalError", "signalKinds"},
		{"WaitError", "waitKinds"},
	}))

	var buf bytes.Buffer
	qt.Assert(t, qt.IsNil(tmpl.Execute(&buf, f)))
	out, err := format.Source(buf.Bytes())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.StringContains(string(out), "func (k WaitError) Available() bool {\n\treturn waitKinds.Available(k)\n}"))
	qt.Assert(t, qt.StringContains(string(out), `import "github.com/solid-rs/itron-rs"`))
}

func TestCollectRootPackage(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "kind.go"), []byte("package itron\n\nvar sampleKinds = KindTable[sample]{}\n"), 0666)
	qt.Assert(t, qt.IsNil(err))

	f, err := collect(dir, "kinds_gen.go")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Qual, ""))
	qt.Assert(t, qt.DeepEquals(f.Kinds, []kind{{"sample", "sampleKinds"}}))
}
