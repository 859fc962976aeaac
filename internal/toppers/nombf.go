//go:build cgo && (itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3) && !(itron_messagebuf && (itron_asp3 || itron_solid_asp3))

package toppers

import "github.com/solid-rs/itron-rs/internal/abi"

// The kernel lacks message buffers. The typed API checks abi.MessageBuf
// before calling these.

func (Kernel) SndMbf(abi.ID, []byte) abi.ER                { return abi.E_NOSPT }
func (Kernel) PsndMbf(abi.ID, []byte) abi.ER               { return abi.E_NOSPT }
func (Kernel) TsndMbf(abi.ID, []byte, abi.TMO) abi.ER      { return abi.E_NOSPT }
func (Kernel) RcvMbf(abi.ID, []byte) abi.ER_UINT           { return abi.E_NOSPT }
func (Kernel) PrcvMbf(abi.ID, []byte) abi.ER_UINT          { return abi.E_NOSPT }
func (Kernel) TrcvMbf(abi.ID, []byte, abi.TMO) abi.ER_UINT { return abi.E_NOSPT }
func (Kernel) IniMbf(abi.ID) abi.ER                        { return abi.E_NOSPT }
func (Kernel) RefMbf(abi.ID, *abi.T_RMBF) abi.ER           { return abi.E_NOSPT }
func (Kernel) AcreMbf(*abi.T_CMBF) abi.ER_ID               { return abi.E_NOSPT }
func (Kernel) DelMbf(abi.ID) abi.ER                        { return abi.E_NOSPT }
