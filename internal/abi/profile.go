package abi

// The constants below describe the kernel selected at build time. Exactly
// one profile_*.go file provides them: a kernel is chosen with one of the
// itron_asp3, itron_fmp3, itron_solid_asp3 or itron_solid_fmp3 build tags,
// optional kernel features with itron_dcre, itron_rstr_task,
// itron_messagebuf and itron_pi_mutex. Selecting two kernels fails to
// compile. Without a kernel tag the host profile is used: the in-process
// kernel with every feature enabled.
//
//	KernelName      name of the selected kernel
//	Host            the in-process kernel is linked instead of a real one
//	Dcre            objects can be created and deleted at run time
//	RstrTask        restricted tasks exist (blocking calls may return E_NOSPT)
//	MessageBuf      message buffers exist
//	PiMutex         mutexes support priority inheritance
//	Multiprocessor  the kernel manages more than one processor
//	Interrupts      interrupt lines and the priority mask can be managed

// Never marks error kinds that no supported kernel returns.
const Never = false
