// Package itron is a type safe interface to μITRON-lineage real-time
// kernels of the TOPPERS third generation family.
//
// Every kernel object kind lives in its own package (semaphore, mutex,
// dataqueue, ...). Each of them offers a borrowed reference type (Ref), an
// owning handle which deletes the object, a builder for dynamic creation and
// one method per service call. A failing service call returns an error of
// type [Error], parameterised with a kind type specific to that operation:
//
//	err := sem.Poll()
//	if kind, ok := itron.KindOf[semaphore.PollError](err); ok && kind == semaphore.PollTimeout {
//		// the semaphore was not available
//	}
//
// The kernel is selected at build time, see [KernelName].
package itron
