//go:build cgo && (itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3) && !(itron_dcre && (itron_asp3 || itron_solid_asp3 || itron_solid_fmp3))

package toppers

import "github.com/solid-rs/itron-rs/internal/abi"

// Without dynamic creation only statically configured objects exist. The
// typed API checks abi.Dcre before calling these.

func (Kernel) AcreSem(*abi.T_CSEM) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) AcreFlg(*abi.T_CFLG) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) AcreDtq(*abi.T_CDTQ) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) AcrePdq(*abi.T_CPDQ) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) AcreMtx(*abi.T_CMTX) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) AcreMpf(*abi.T_CMPF) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) AcreTsk(*abi.T_CTSK) abi.ER_ID { return abi.E_NOSPT }

func (Kernel) DelSem(abi.ID) abi.ER { return abi.E_NOSPT }
func (Kernel) DelFlg(abi.ID) abi.ER { return abi.E_NOSPT }
func (Kernel) DelDtq(abi.ID) abi.ER { return abi.E_NOSPT }
func (Kernel) DelPdq(abi.ID) abi.ER { return abi.E_NOSPT }
func (Kernel) DelMtx(abi.ID) abi.ER { return abi.E_NOSPT }
func (Kernel) DelMpf(abi.ID) abi.ER { return abi.E_NOSPT }
func (Kernel) DelTsk(abi.ID) abi.ER { return abi.E_NOSPT }
