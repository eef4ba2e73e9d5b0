// Package flock provides cross-platform file locking utilities.
//
// The todo data file is shared between independent CLI invocations
// (e.g. two terminal sessions). This package provides the exclusive,
// non-blocking locks used to serialize writers on a single machine, on
// both Unix and Windows systems.
//
// Usage:
//
//	file, _ := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
//	if err := flock.Exclusive(file.Fd()); err != nil {
//	    // Lock not acquired - file is in use
//	}
//	defer flock.Unlock(file.Fd())
package flock
