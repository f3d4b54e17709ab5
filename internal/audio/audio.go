// Package audio plays the game's sound effects through ebiten's audio
// context. Missing sound files fall back to synthesised beeps.
package audio

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"
)

const sampleRate = 44100

type SoundData struct {
	raw []byte
}

// Manager implements game.Sounds.
type Manager struct {
	ctx *audio.Context
	dot *SoundData
	log logrus.FieldLogger
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// Enabled reports whether audio was switched on. Audio is off by default;
// PACMAN_ENABLE_AUDIO=1 turns it on and PACMAN_DISABLE_AUDIO=1 always wins.
func Enabled(flag bool) bool {
	if os.Getenv("PACMAN_DISABLE_AUDIO") == "1" {
		return false
	}
	return flag || os.Getenv("PACMAN_ENABLE_AUDIO") == "1"
}

func getAudioContext(enabled bool) *audio.Context {
	if !Enabled(enabled) {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

func NewManager(soundsDir string, enabled bool, log logrus.FieldLogger) *Manager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	m := &Manager{ctx: getAudioContext(enabled), log: log}
	if sd, err := loadSoundData(soundsDir, "dot.wav"); err == nil {
		m.dot = sd
	} else {
		if m.ctx != nil {
			log.WithError(err).Debug("using synthesised dot sound")
		}
		m.dot = &SoundData{raw: synthBeepWAV(sampleRate, 60, 880)}
	}
	return m
}

func loadSoundData(dir, file string) (*SoundData, error) {
	b, err := os.ReadFile(filepath.Join(dir, file))
	if err != nil {
		return nil, err
	}
	return &SoundData{raw: b}, nil
}

func (m *Manager) play(sd *SoundData) {
	if m == nil || m.ctx == nil || sd == nil || len(sd.raw) == 0 {
		return
	}
	// Decode per play so overlapping pickups each get a player.
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(sd.raw))
	if err != nil {
		m.log.WithError(err).Warn("decode sound")
		return
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		m.log.WithError(err).Warn("create audio player")
		return
	}
	p.Play()
}

func (m *Manager) PlayDot() { m.play(m.dot) }

// synthBeepWAV returns a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate int, durationMs int, freq float64) []byte {
	numSamples := int(float64(sampleRate) * float64(durationMs) / 1000.0)
	byteRate := sampleRate * 2
	blockAlign := 2
	dataSize := numSamples * 2
	totalSize := 44 + dataSize
	buf := make([]byte, totalSize)
	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(totalSize-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // channels
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(byteRate))
	putLE16(buf[32:34], uint16(blockAlign))
	putLE16(buf[34:36], 16) // bits per sample
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))
	amp := 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767.0 * amp)
		off := 44 + i*2
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
