package install

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestWithFileLockRunsFn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	ran := false
	if err := withFileLock(path, func() error { ran = true; return nil }); err != nil {
		t.Fatalf("withFileLock: %v", err)
	}
	if !ran {
		t.Fatal("expected fn to run")
	}
}

func TestWithFileLockPropagatesFnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")
	want := errors.New("boom")

	if err := withFileLock(path, func() error { return want }); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

func TestWithFileLockReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	if err := withFileLock(path, func() error { return nil }); err != nil {
		t.Fatalf("first lock: %v", err)
	}
	// A second acquisition succeeds immediately once released.
	if err := withFileLock(path, func() error { return nil }); err != nil {
		t.Fatalf("second lock: %v", err)
	}
}

func TestWithFileLockTimesOutWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock")

	prevTimeout, prevPoll := lockWaitTimeout, lockPollEvery
	lockWaitTimeout, lockPollEvery = 50*time.Millisecond, 5*time.Millisecond
	t.Cleanup(func() { lockWaitTimeout, lockPollEvery = prevTimeout, prevPoll })

	held, err := acquireFileLock(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	t.Cleanup(func() { _ = held.release() })

	err = withFileLock(path, func() error { return nil })
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestWithFileLockOpenError(t *testing.T) {
	if err := withFileLock(filepath.Join(t.TempDir(), "missing", "lock"), func() error { return nil }); err == nil {
		t.Fatal("expected open error")
	}
}

func TestLockFileRetriesUntilDeadline(t *testing.T) {
	prevFlock, prevSleep := flockFn, lockSleep
	prevTimeout := lockWaitTimeout
	t.Cleanup(func() { flockFn, lockSleep, lockWaitTimeout = prevFlock, prevSleep, prevTimeout })

	attempts := 0
	flockFn = func(fd int, how int) error {
		attempts++
		if attempts < 3 {
			return unix.EWOULDBLOCK
		}
		return nil
	}
	lockSleep = func(time.Duration) {}
	lockWaitTimeout = time.Minute

	path := filepath.Join(t.TempDir(), "lock")
	lock, err := acquireFileLock(path)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer func() { _ = lock.release() }()
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
}
