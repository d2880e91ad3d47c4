//go:build !arenadebug

package arena

const debugChecks = false
