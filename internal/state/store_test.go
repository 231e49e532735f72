package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/five82/objspace/pkg/objspace"
)

func testConfig(width int) objspace.ObjectSpaceConfig {
	return objspace.ObjectSpaceConfig{Camera: objspace.DetectorDescriptor{
		Detector: objspace.Checkerboard{
			Width: width, Height: 6, EdgeLength: 0.025,
			Variances: []float64{1e-6, 1e-6, 1e-6},
		},
		Descriptor: objspace.DetectorDefined{},
	}}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update("/tmp/os.toml", testConfig(8), nil)

	snap := s.Snapshot()
	if !snap.HasConfig || snap.Config.Camera.Detector.(objspace.Checkerboard).Width != 8 {
		t.Fatalf("snapshot config = %#v, want width=8 HasConfig=true", snap.Config)
	}
	if snap.Path != "/tmp/os.toml" {
		t.Fatalf("Path = %q, want /tmp/os.toml", snap.Path)
	}
	if snap.LastLoaded.Before(before) {
		t.Fatalf("LastLoaded = %v, want >= %v", snap.LastLoaded, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Config.Camera.Detector.(objspace.Checkerboard).Variances[0] = 42
	snap2 := s.Snapshot()
	if got := snap2.Config.Camera.Detector.(objspace.Checkerboard).Variances[0]; got != 1e-6 {
		t.Fatalf("Snapshot should clone variances; got %v want 1e-6", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousConfig(t *testing.T) {
	var s Store

	s.Update("a.toml", testConfig(8), nil)

	origErr := errors.New("boom")
	s.Update("a.toml", objspace.ObjectSpaceConfig{}, origErr)

	snap := s.Snapshot()
	if !snap.HasConfig || snap.Config.Camera.Detector.(objspace.Checkerboard).Width != 8 {
		t.Fatalf("config changed on error: got %#v", snap.Config)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
	if !snap.IsStale() {
		t.Fatal("IsStale() = false, want true after a failed reload")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 || snap.IsStale() {
		t.Fatalf("initial snapshot = %#v, want zero failures and not stale", snap)
	}

	s.Update("a.toml", objspace.ObjectSpaceConfig{}, errors.New("fail 1"))
	s.Update("a.toml", objspace.ObjectSpaceConfig{}, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if snap.IsStale() {
		t.Fatal("IsStale() = true, want false when nothing ever loaded")
	}

	s.Update("a.toml", testConfig(4), nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
}

func TestStore_FailedLoadKeepsLastLoaded(t *testing.T) {
	var s Store

	s.Update("a.toml", testConfig(8), nil)
	loaded := s.Snapshot().LastLoaded

	time.Sleep(2 * time.Millisecond)
	s.Update("a.toml", objspace.ObjectSpaceConfig{}, errors.New("boom"))

	snap := s.Snapshot()
	if !snap.LastLoaded.Equal(loaded) {
		t.Fatalf("LastLoaded = %v, want unchanged %v after a failed load", snap.LastLoaded, loaded)
	}
	if !snap.LastAttempt.After(loaded) {
		t.Fatalf("LastAttempt = %v, want after %v", snap.LastAttempt, loaded)
	}
}

func TestStore_FailureFirstHasNoLoadTime(t *testing.T) {
	var s Store
	s.Update("a.toml", objspace.ObjectSpaceConfig{}, errors.New("boom"))

	snap := s.Snapshot()
	if !snap.LastLoaded.IsZero() {
		t.Fatalf("LastLoaded = %v, want zero when nothing loaded", snap.LastLoaded)
	}
	if snap.LastAttempt.IsZero() {
		t.Fatal("LastAttempt is zero, want the failed attempt recorded")
	}
}
