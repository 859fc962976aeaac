package processor

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs/internal/testutils"
)

func TestCurrent(t *testing.T) {
	testutils.HostKernel(t)

	p, err := Current()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(p, First))
	qt.Assert(t, qt.Equals(p.String(), "Processor(1)"))
}

func TestFromRaw(t *testing.T) {
	_, ok := FromRaw(0)
	qt.Assert(t, qt.IsFalse(ok))

	p, ok := FromRaw(3)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(p.ID().Get(), 3))
}
