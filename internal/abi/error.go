package abi

// Main error codes.
const (
	E_SYS    ER = -5  // system error
	E_NOSPT  ER = -9  // unsupported function
	E_RSFN   ER = -10 // reserved function code
	E_RSATR  ER = -11 // reserved attribute
	E_PAR    ER = -17 // parameter error
	E_ID     ER = -18 // invalid ID number
	E_CTX    ER = -25 // context error
	E_MACV   ER = -26 // memory access violation
	E_OACV   ER = -27 // object access violation
	E_ILUSE  ER = -28 // illegal service call use
	E_NOMEM  ER = -33 // insufficient memory
	E_NOID   ER = -34 // no ID number available
	E_NORES  ER = -35 // no resource available
	E_OBJ    ER = -41 // object state error
	E_NOEXS  ER = -42 // non-existent object
	E_QOVR   ER = -43 // queue overflow
	E_RLWAI  ER = -49 // forced release from waiting
	E_TMOUT  ER = -50 // polling failure or timeout
	E_DLT    ER = -51 // waiting object deleted
	E_CLS    ER = -52 // waiting object state changed
	E_RASTER ER = -53 // task terminated by a termination request
	E_WBLK   ER = -57 // non-blocking call accepted
	E_BOVR   ER = -58 // buffer overflow
	E_COMM   ER = -65 // communication error
)

// E_OK is returned by successful calls without a payload.
const E_OK ER = 0

var errorNames = map[ER]string{
	E_SYS:    "E_SYS",
	E_NOSPT:  "E_NOSPT",
	E_RSFN:   "E_RSFN",
	E_RSATR:  "E_RSATR",
	E_PAR:    "E_PAR",
	E_ID:     "E_ID",
	E_CTX:    "E_CTX",
	E_MACV:   "E_MACV",
	E_OACV:   "E_OACV",
	E_ILUSE:  "E_ILUSE",
	E_NOMEM:  "E_NOMEM",
	E_NOID:   "E_NOID",
	E_NORES:  "E_NORES",
	E_OBJ:    "E_OBJ",
	E_NOEXS:  "E_NOEXS",
	E_QOVR:   "E_QOVR",
	E_RLWAI:  "E_RLWAI",
	E_TMOUT:  "E_TMOUT",
	E_DLT:    "E_DLT",
	E_CLS:    "E_CLS",
	E_RASTER: "E_RASTER",
	E_WBLK:   "E_WBLK",
	E_BOVR:   "E_BOVR",
	E_COMM:   "E_COMM",
}

// ErrorName returns the mnemonic of a main error code, or false if the
// code is not one the kernel defines.
func ErrorName(er ER) (string, bool) {
	name, ok := errorNames[er]
	return name, ok
}

// MERCD extracts the main error code.
func MERCD(ercd ER) ER {
	return ER(int8(ercd))
}

// SERCD extracts the sub error code.
func SERCD(ercd ER) ER {
	return ercd >> 8
}
