//go:build !itron_dcre

package abi

const featureDcre = false
