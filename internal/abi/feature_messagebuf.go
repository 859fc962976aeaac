//go:build itron_messagebuf

package abi

const featureMessageBuf = true
