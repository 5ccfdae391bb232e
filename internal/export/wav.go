package export

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	// WAVSuffix is appended to a table name for impulse response files.
	WAVSuffix = "_ir.wav"

	// Impulse responses are written as mono 32-bit integer PCM
	wavBitDepth    = 32
	wavChannels    = 1
	wavFormatPCM   = 1
	minWAVSampleHz = 1
)

// WriteImpulseWAV writes the coefficients as a mono 32-bit PCM impulse
// response. The fixed-point values are stored unchanged, so a q32 table
// plays back at roughly unity gain.
func WriteImpulseWAV(w io.WriteSeeker, coefs []int64, sampleRate int) error {
	if sampleRate < minWAVSampleHz {
		return fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if err := checkInt32(coefs); err != nil {
		return err
	}

	data := make([]int, len(coefs))
	for i, c := range coefs {
		data[i] = int(c)
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: wavChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: wavBitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, wavBitDepth, wavChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write impulse response: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}
