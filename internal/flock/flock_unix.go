//go:build unix

// Package flock provides cross-platform file locking utilities.
package flock

import "syscall"

// Exclusive acquires an exclusive non-blocking lock on the file
// descriptor. The task manager takes this on the data file's companion
// .lock file so concurrent todo invocations serialize their
// load-mutate-save cycles instead of racing. Returns an error
// immediately when another process holds the lock.
func Exclusive(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_EX|syscall.LOCK_NB)
}

// Unlock releases the writer lock so the next waiting invocation can
// proceed with its transaction.
func Unlock(fd uintptr) error {
	return syscall.Flock(int(fd), syscall.LOCK_UN)
}
