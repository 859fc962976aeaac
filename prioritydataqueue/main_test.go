package prioritydataqueue

import (
	"testing"

	"github.com/solid-rs/itron-rs/internal/testutils/testmain"
)

func TestMain(m *testing.M) {
	testmain.Run(m)
}
