//go:build cgo && itron_messagebuf && (itron_asp3 || itron_solid_asp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import (
	"unsafe"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// Message buffers copy the message during the call, so passing Go memory
// is safe.

func (Kernel) SndMbf(mbfid abi.ID, msg []byte) abi.ER {
	return abi.ER(C.snd_mbf(C.ID(mbfid), unsafe.Pointer(unsafe.SliceData(msg)), C.uint_t(len(msg))))
}

func (Kernel) PsndMbf(mbfid abi.ID, msg []byte) abi.ER {
	return abi.ER(C.psnd_mbf(C.ID(mbfid), unsafe.Pointer(unsafe.SliceData(msg)), C.uint_t(len(msg))))
}

func (Kernel) TsndMbf(mbfid abi.ID, msg []byte, tmout abi.TMO) abi.ER {
	return abi.ER(C.tsnd_mbf(C.ID(mbfid), unsafe.Pointer(unsafe.SliceData(msg)), C.uint_t(len(msg)), C.TMO(tmout)))
}

func (Kernel) RcvMbf(mbfid abi.ID, msg []byte) abi.ER_UINT {
	return abi.ER_UINT(C.rcv_mbf(C.ID(mbfid), unsafe.Pointer(unsafe.SliceData(msg))))
}

func (Kernel) PrcvMbf(mbfid abi.ID, msg []byte) abi.ER_UINT {
	return abi.ER_UINT(C.prcv_mbf(C.ID(mbfid), unsafe.Pointer(unsafe.SliceData(msg))))
}

func (Kernel) TrcvMbf(mbfid abi.ID, msg []byte, tmout abi.TMO) abi.ER_UINT {
	return abi.ER_UINT(C.trcv_mbf(C.ID(mbfid), unsafe.Pointer(unsafe.SliceData(msg)), C.TMO(tmout)))
}

func (Kernel) IniMbf(mbfid abi.ID) abi.ER { return abi.ER(C.ini_mbf(C.ID(mbfid))) }

func (Kernel) RefMbf(mbfid abi.ID, pk *abi.T_RMBF) abi.ER {
	var r C.T_RMBF
	er := abi.ER(C.ref_mbf(C.ID(mbfid), &r))
	*pk = abi.T_RMBF{
		Stskid:  abi.ID(r.stskid),
		Rtskid:  abi.ID(r.rtskid),
		Smbfcnt: abi.Uint(r.smbfcnt),
		Fmbfsz:  uintptr(r.fmbfsz),
	}
	return er
}
