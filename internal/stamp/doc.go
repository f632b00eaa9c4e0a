// Package stamp handles parsing and writing of buildstamp.lock.yaml files.
// A stamp file freezes the field values resolved at build time so that a
// shipped binary can report them later, when the source tree and its git
// history are no longer around.
package stamp
