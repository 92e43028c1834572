package notify

import (
	"bytes"
	"errors"
	"testing"

	"github.com/drake/pulseboard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenKV struct{}

func (brokenKV) Get(string) (string, bool) { return "", false }
func (brokenKV) Set(string, string) error  { return errors.New("storage unavailable") }

func TestPlayWritesBell(t *testing.T) {
	var bell bytes.Buffer
	n := New(store.NewSessionStore(), nil, &bell, nil)

	n.Play(SoundCreated)
	assert.Equal(t, "\a", bell.String())

	bell.Reset()
	n.Play(SoundCompleted)
	assert.Equal(t, "\a\a", bell.String())
}

func TestMuteSilencesPlay(t *testing.T) {
	var bell bytes.Buffer
	n := New(store.NewSessionStore(), nil, &bell, nil)

	n.ToggleMute()
	require.True(t, n.Muted())

	n.Play(SoundCreated)
	n.Play(SoundCompleted)
	assert.Zero(t, bell.Len(), "muted notifier must not write the bell")

	n.ToggleMute()
	n.Play(SoundCreated)
	assert.Equal(t, "\a", bell.String())
}

func TestMutePersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	kv, err := store.NewBoltStore(dir)
	require.NoError(t, err)

	n := New(kv, nil, nil, nil)
	n.ToggleMute()
	require.True(t, n.Muted())
	require.NoError(t, kv.Close())

	// Simulated reload: a fresh notifier over the reopened store is muted.
	kv2, err := store.NewBoltStore(dir)
	require.NoError(t, err)
	defer kv2.Close()

	n2 := New(kv2, nil, nil, nil)
	assert.True(t, n2.Muted())
}

func TestToggleMuteSwallowsStorageErrors(t *testing.T) {
	var bell bytes.Buffer
	n := New(brokenKV{}, nil, &bell, nil)

	assert.NotPanics(t, func() { n.ToggleMute() })
	assert.True(t, n.Muted(), "in-memory flag applies even when the write fails")

	n.Play(SoundCreated)
	assert.Zero(t, bell.Len())
}

func TestUnlockIsInformationalOnly(t *testing.T) {
	var bell bytes.Buffer
	n := New(store.NewSessionStore(), nil, &bell, nil)

	// Playback is attempted even before any user interaction.
	assert.False(t, n.Unlocked())
	n.Play(SoundCreated)
	assert.Equal(t, "\a", bell.String())

	n.Unlock()
	assert.True(t, n.Unlocked())
}

func TestPlayerFallsBackToBellWithoutSoundFiles(t *testing.T) {
	var bell bytes.Buffer
	player := NewPlayer("afplay", "", "", nil)
	n := New(store.NewSessionStore(), player, &bell, nil)

	n.Play(SoundCreated)
	assert.Equal(t, "\a", bell.String(), "no configured file for kind should use the bell")
}
