//go:build !itron_pi_mutex

package abi

const featurePiMutex = false
