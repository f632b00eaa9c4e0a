// Package resolve implements layered fallback resolution of metadata
// fields. A query carries an ordered chain of strategies; each strategy
// consults one external source (manifest file, embedded build info, a git
// subprocess, the environment). The first strategy producing a non-empty
// value wins, and a failing strategy — error, timeout, panic, or empty
// output — simply falls through to the next one. Resolution is total: it
// always yields a string, falling back to a caller-supplied default.
package resolve
