package testmain

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// objects maps an objectKey to the stack of the goroutine that created the
// owned handle. It is nil unless Run is used.
var objects *sync.Map

var (
	foundLeak atomic.Bool
	traced    atomic.Uint64
	released  atomic.Uint64
)

type objectKey struct {
	class string
	id    int32
}

type leak struct {
	key    objectKey
	frames *runtime.Frames
}

// TraceObject records the creation of an owned kernel object.
//
// skip is the number of callers to omit from the trace, as for
// [runtime.Callers].
func TraceObject(class string, id int32, skip int) {
	if objects == nil {
		return
	}

	callers := make([]uintptr, 32)
	n := runtime.Callers(skip+2, callers)
	objects.Store(objectKey{class, id}, callers[:n])
	traced.Add(1)
}

// ForgetObject stops tracing an object that was deleted or deliberately
// leaked.
func ForgetObject(class string, id int32) {
	if objects == nil {
		return
	}

	if _, loaded := objects.LoadAndDelete(objectKey{class, id}); loaded {
		released.Add(1)
	}
}

// LeakObject reports that an owned object was garbage collected without
// being deleted or leaked.
func LeakObject(class string, id int32) {
	if objects == nil {
		return
	}

	key := objectKey{class, id}
	value, loaded := objects.LoadAndDelete(key)
	if !loaded {
		fmt.Fprintf(os.Stderr, "WARNING: %s %d was finalized but never traced\n", class, id)
		foundLeak.Store(true)
		return
	}

	onLeakObject(leak{key, runtime.CallersFrames(value.([]uintptr))})
}

func onLeakObject(l leak) {
	foundLeak.Store(true)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d was never deleted, created at:\n", l.key.class, l.key.id)
	for {
		frame, more := l.frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&sb, "\t%s\n\t\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	fmt.Fprint(os.Stderr, sb.String())
}

// flushObjects returns every object that is still traced, sorted by class
// and ID.
func flushObjects() []leak {
	var leaks []leak
	objects.Range(func(k, v any) bool {
		objects.Delete(k)
		leaks = append(leaks, leak{k.(objectKey), runtime.CallersFrames(v.([]uintptr))})
		return true
	})

	sort.Slice(leaks, func(i, j int) bool {
		if leaks[i].key.class != leaks[j].key.class {
			return leaks[i].key.class < leaks[j].key.class
		}
		return leaks[i].key.id < leaks[j].key.id
	})
	return leaks
}

func traceSummary() string {
	return fmt.Sprintf("%d created, %d released", traced.Load(), released.Load())
}

// Traced reports whether an owned object is currently traced.
func Traced(class string, id int32) bool {
	if objects == nil {
		return false
	}

	_, ok := objects.Load(objectKey{class, id})
	return ok
}
