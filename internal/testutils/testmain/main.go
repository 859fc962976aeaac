package testmain

import (
	"fmt"
	"os"
	"sync"
)

type testingM interface {
	Run() int
}

// Run m with object leak tracing enabled.
//
// The function calls [os.Exit] and does not return.
func Run(m testingM) {
	objects = new(sync.Map)
	ret := m.Run()

	if leaks := flushObjects(); len(leaks) != 0 {
		for _, l := range leaks {
			onLeakObject(l)
		}
	}

	if foundLeak.Load() {
		ret = 99
	}

	if ret != 0 {
		fmt.Fprintln(os.Stderr, "kernel object trace:", traceSummary())
	}

	os.Exit(ret)
}
