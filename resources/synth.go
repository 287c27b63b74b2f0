package resources

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
)

const (
	sampleRate    = 22050
	bitsPerSample = 16
	channels      = 1
)

func synthesize(name string) ([]byte, error) {
	var samples []float64
	switch name {
	case BellName:
		samples = bellTone(5)
	case "rain":
		samples = rainNoise(8)
	case "forest":
		samples = forestAmbience(8)
	case "waves":
		samples = oceanWaves(8)
	default:
		return nil, fmt.Errorf("unknown sound %q", name)
	}
	return encodeWAV(samples), nil
}

// bellTone approximates a singing bowl with a few inharmonic partials.
func bellTone(seconds float64) []float64 {
	partials := []struct {
		frequency float64
		amplitude float64
		decay     float64
	}{
		{196, 0.55, 2.2},
		{531, 0.25, 1.2},
		{1005, 0.12, 0.6},
		{1750, 0.05, 0.3},
	}

	samples := make([]float64, int(seconds*sampleRate))
	for i := range samples {
		t := float64(i) / sampleRate
		attack := math.Min(1, t/0.005)
		value := 0.0
		for _, partial := range partials {
			value += partial.amplitude * math.Exp(-t/partial.decay) * math.Sin(2*math.Pi*partial.frequency*t)
		}
		samples[i] = value * attack
	}
	return fadeEdges(samples, 0, 0.05)
}

func rainNoise(seconds float64) []float64 {
	rng := rand.New(rand.NewSource(1))
	samples := make([]float64, int(seconds*sampleRate))
	filtered := 0.0
	for i := range samples {
		white := rng.Float64()*2 - 1
		filtered += 0.35 * (white - filtered)
		samples[i] = 0.3 * filtered
	}
	return fadeEdges(samples, 0.05, 0.05)
}

func forestAmbience(seconds float64) []float64 {
	rng := rand.New(rand.NewSource(2))
	samples := make([]float64, int(seconds*sampleRate))
	brown := 0.0
	for i := range samples {
		brown += (rng.Float64()*2 - 1) * 0.02
		brown *= 0.995
		samples[i] = 0.6 * brown
	}

	for chirp := 0; chirp < 6; chirp++ {
		start := rng.Intn(len(samples) - sampleRate/2)
		base := 2200 + rng.Float64()*1400
		length := sampleRate / 8
		for j := 0; j < length; j++ {
			t := float64(j) / sampleRate
			envelope := math.Sin(math.Pi * float64(j) / float64(length))
			samples[start+j] += 0.12 * envelope * math.Sin(2*math.Pi*(base+4000*t)*t)
		}
	}
	return fadeEdges(samples, 0.05, 0.05)
}

func oceanWaves(seconds float64) []float64 {
	rng := rand.New(rand.NewSource(3))
	samples := make([]float64, int(seconds*sampleRate))
	filtered := 0.0
	for i := range samples {
		t := float64(i) / sampleRate
		filtered += 0.08 * ((rng.Float64()*2 - 1) - filtered)
		swell := 0.5 - 0.5*math.Cos(2*math.Pi*t/seconds)
		samples[i] = 0.9 * filtered * (0.15 + 0.85*swell)
	}
	return samples
}

func fadeEdges(samples []float64, fadeIn, fadeOut float64) []float64 {
	inSamples := int(fadeIn * sampleRate)
	outSamples := int(fadeOut * sampleRate)
	for i := 0; i < inSamples && i < len(samples); i++ {
		samples[i] *= float64(i) / float64(inSamples)
	}
	for i := 0; i < outSamples && i < len(samples); i++ {
		samples[len(samples)-1-i] *= float64(i) / float64(outSamples)
	}
	return samples
}

// encodeWAV writes mono 16-bit PCM with a canonical 44-byte RIFF header.
func encodeWAV(samples []float64) []byte {
	dataSize := len(samples) * bitsPerSample / 8
	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8

	buffer := bytes.NewBuffer(make([]byte, 0, 44+dataSize))
	buffer.WriteString("RIFF")
	_ = binary.Write(buffer, binary.LittleEndian, uint32(36+dataSize))
	buffer.WriteString("WAVE")
	buffer.WriteString("fmt ")
	_ = binary.Write(buffer, binary.LittleEndian, uint32(16))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(1))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buffer, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buffer, binary.LittleEndian, uint16(bitsPerSample))
	buffer.WriteString("data")
	_ = binary.Write(buffer, binary.LittleEndian, uint32(dataSize))

	for _, sample := range samples {
		if sample > 1 {
			sample = 1
		}
		if sample < -1 {
			sample = -1
		}
		_ = binary.Write(buffer, binary.LittleEndian, int16(sample*math.MaxInt16))
	}
	return buffer.Bytes()
}
