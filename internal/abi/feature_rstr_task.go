//go:build itron_rstr_task

package abi

const featureRstrTask = true
