package ui

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/cairn/internal/adapters/clock"
	"github.com/renato0307/cairn/internal/domain"
	portsmocks "github.com/renato0307/cairn/internal/ports/mocks"
)

func TestTerminalBell_HeldForOneWindow(t *testing.T) {
	v := clock.NewVirtual()
	b := newTerminalBell(v)

	assert.Equal(t, "frame", b.decorate("frame"))

	b.ring()
	assert.Equal(t, "\aframe", b.decorate("frame"))

	v.Advance(bellHold / 2)
	b.ring()
	v.Advance(bellHold / 2)
	assert.Equal(t, "\aframe", b.decorate("frame"), "ringing again re-arms the hold")

	v.Advance(bellHold / 2)
	assert.Equal(t, "frame", b.decorate("frame"))
	assert.Equal(t, 0, v.Pending())
}

func TestTerminalBell_NilIsSilent(t *testing.T) {
	var b *terminalBell
	assert.Equal(t, "frame", b.decorate("frame"))
}

func TestChime(t *testing.T) {
	tests := []struct {
		name      string
		playerErr error
		hasPlayer bool
		bell      bool
		wantErr   bool
		wantBell  bool
	}{
		{name: "player plays", hasPlayer: true, bell: true},
		{name: "player fails, bell rings", hasPlayer: true, playerErr: errors.New("no audio"), bell: true, wantBell: true},
		{name: "player fails without bell", hasPlayer: true, playerErr: errors.New("no audio"), wantErr: true},
		{name: "bell only", bell: true, wantBell: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := clock.NewVirtual()
			var bell *terminalBell
			if tt.bell {
				bell = newTerminalBell(v)
			}
			sound := Sound{Bell: tt.bell}
			if tt.hasPlayer {
				player := portsmocks.NewMockSoundPlayer(t)
				player.EXPECT().PlaySoundForEvent(domain.SoundComplete).Return(tt.playerErr)
				sound.Player = player
			}

			c := newChime(sound, bell)
			require.NotNil(t, c)
			err := c.PlaySound()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantBell, strings.HasPrefix(bell.decorate("x"), "\a"))
		})
	}
}

func TestChime_OffWithoutPlayerOrBell(t *testing.T) {
	assert.Nil(t, newChime(Sound{}, nil))
}

func TestModel_CompletionRingsBellInFrame(t *testing.T) {
	m := NewModel(domain.DefaultSessionConfig, "", false, false, nil, Sound{Bell: true}, rand.New(rand.NewSource(7)))
	press(m, "s")

	for i := 0; i < 59; i++ {
		tickOnce(m)
	}
	assert.False(t, strings.HasPrefix(m.View(), "\a"))

	tickOnce(m)

	require.Equal(t, 1, m.Timer().Sessions())
	assert.True(t, strings.HasPrefix(m.View(), "\a"))
	assert.Equal(t, 1, strings.Count(m.View(), "\a"))
}
