//go:build arenadebug

package arena

// debugChecks enables validity assertions in Get and Ptr.
const debugChecks = true
