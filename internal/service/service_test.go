package service

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livespiff/internal/core/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := New(nil, Options{})
	svc.Start()
	t.Cleanup(svc.Stop)
	return svc
}

func TestFreshDaemonDefaults(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "Idle", svc.State())
	assert.Equal(t, int32(3), svc.SplitCount())
	assert.Equal(t, int32(0), svc.CurrentSplit())
	assert.Equal(t, int64(0), svc.ElapsedMs())
}

func TestStartOrSplitProgression(t *testing.T) {
	svc := newTestService(t)

	svc.StartOrSplit()
	assert.Equal(t, "Running", svc.State())
	assert.Equal(t, int32(0), svc.CurrentSplit())

	svc.StartOrSplit()
	svc.StartOrSplit()
	svc.StartOrSplit()
	assert.Equal(t, "Finished", svc.State())
	assert.Equal(t, int32(3), svc.CurrentSplit())

	frozen := svc.ElapsedMs()
	svc.StartOrSplit()
	assert.Equal(t, "Finished", svc.State())
	assert.Equal(t, int32(3), svc.CurrentSplit())
	assert.Equal(t, frozen, svc.ElapsedMs())
}

func TestResetReturnsToIdle(t *testing.T) {
	svc := newTestService(t)

	svc.StartOrSplit()
	svc.TogglePause()
	svc.Reset()

	assert.Equal(t, "Idle", svc.State())
	assert.Equal(t, int32(0), svc.CurrentSplit())
	assert.Equal(t, int64(0), svc.ElapsedMs())
}

func TestLoadRunReplacesActiveRunAndResets(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "five.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "game": "Quake",
  "category": "100%",
  "segments": ["E1M1", "E1M2", "E1M3", "E1M4", "E1M5"]
}`), 0o644))

	svc.StartOrSplit()
	require.Equal(t, "Running", svc.State())

	ok, message := svc.LoadRun(path)
	require.True(t, ok, message)
	assert.Equal(t, "Run loaded", message)
	assert.Equal(t, int32(5), svc.SplitCount())
	assert.Equal(t, "Idle", svc.State())
	assert.Equal(t, int32(0), svc.CurrentSplit())
}

func TestLoadRunFailureLeavesActiveRunUntouched(t *testing.T) {
	svc := newTestService(t)

	ok, message := svc.LoadRun(filepath.Join(t.TempDir(), "missing.json"))
	assert.False(t, ok)
	assert.NotEmpty(t, message)
	assert.Equal(t, int32(3), svc.SplitCount())

	json := svc.RunJSON()
	assert.Contains(t, json, `"game": "Game"`)
}

func TestLoadRunNullDocumentIsRejected(t *testing.T) {
	svc := newTestService(t)
	path := filepath.Join(t.TempDir(), "null.json")
	require.NoError(t, os.WriteFile(path, []byte(`null`), 0o644))

	ok, message := svc.LoadRun(path)
	assert.False(t, ok)
	assert.NotEmpty(t, message)
	assert.Equal(t, int32(3), svc.SplitCount())
	assert.Contains(t, svc.RunJSON(), `"Split 3"`)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	run := &model.Run{
		Game:     "Metroid Dread",
		Category: "Any%",
		Segments: []string{"Artaria", "Cataris", "Raven Beak"},
	}
	svc := New(run, Options{})
	svc.Start()
	t.Cleanup(svc.Stop)

	path := filepath.Join(t.TempDir(), "runs", "dread.json")
	ok, message := svc.SaveRun(path)
	require.True(t, ok, message)

	other := newTestService(t)
	ok, _ = other.LoadRun(path)
	require.True(t, ok)
	assert.Equal(t, int32(3), other.SplitCount())
	assert.Equal(t, svc.RunJSON(), other.RunJSON())
}

func TestSaveRunFailureReportsMessage(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	svc := newTestService(t)
	readOnly := t.TempDir()
	require.NoError(t, os.Chmod(readOnly, 0o500))
	t.Cleanup(func() { _ = os.Chmod(readOnly, 0o755) })

	ok, message := svc.SaveRun(filepath.Join(readOnly, "sub", "run.json"))
	assert.False(t, ok)
	assert.NotEmpty(t, message)
}

func TestConcurrentCallersKeepInvariants(t *testing.T) {
	svc := newTestService(t)

	var group sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		group.Add(1)
		go func() {
			defer group.Done()
			for i := 0; i < 50; i++ {
				svc.StartOrSplit()
				svc.TogglePause()
				svc.TogglePause()
				assert.LessOrEqual(t, svc.CurrentSplit(), svc.SplitCount())
				assert.GreaterOrEqual(t, svc.ElapsedMs(), int64(0))
			}
		}()
	}
	group.Wait()
}

func TestStopMakesCallsInert(t *testing.T) {
	svc := New(nil, Options{})
	svc.Start()
	svc.Stop()

	// Must not block or panic after shutdown.
	svc.StartOrSplit()
	assert.Equal(t, "", svc.State())
}

func TestRestartAfterStop(t *testing.T) {
	svc := New(nil, Options{})
	svc.Start()
	svc.StartOrSplit()
	svc.Stop()

	svc.Start()
	t.Cleanup(svc.Stop)

	assert.Equal(t, "Running", svc.State())
	svc.StartOrSplit()
	assert.Equal(t, int32(1), svc.CurrentSplit())
}
