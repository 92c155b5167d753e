// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mp3 decodes an MPEG-1 Audio Layer III bitstream into interleaved
// float32 PCM, one frame at a time.
package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/gomp3dec/mp3iii/internal/bits"
	"github.com/gomp3dec/mp3iii/internal/frame"
	"github.com/gomp3dec/mp3iii/internal/maindata"
	"github.com/gomp3dec/mp3iii/internal/sideinfo"
)

var (
	// ErrUnsupportedLayer is returned when a header is structurally valid
	// but declares a layer or version outside this decoder's core scope
	// (Layers I/II, or a version that is not MPEG-1; §1 Non-goals).
	ErrUnsupportedLayer = errors.New("mp3: only MPEG-1 Layer III is supported")

	// ErrInvalidSideInfo is returned when reading the side information
	// following a header fails with a reader error. A stream that ends
	// inside the side information yields io.ErrUnexpectedEOF instead.
	ErrInvalidSideInfo = errors.New("mp3: truncated side information")
)

// FrameOutput is one decoded frame's interleaved PCM.
type FrameOutput struct {
	// Samples holds 576*2*Channels interleaved float32 samples (two
	// granules of 576 samples per channel).
	Samples    []float32
	SampleRate int
	Channels   int
}

// Decoder decodes frames from an MPEG-1 Layer III bitstream, one at a
// time, maintaining the bit reservoir and the overlap-add/synthesis state
// that carries across frames.
type Decoder struct {
	src        *source
	prevFrame  *frame.Frame
	reservoir  *bits.Bits
	sampleRate int
	channels   int
	log        zerolog.Logger
}

// NewDecoder skips any leading ID3v2 tag and returns a Decoder positioned
// at the first frame. r need only be an io.Reader: this decoder never
// requires seek support (§6 Non-goals: no time-seek).
func NewDecoder(r io.Reader) (*Decoder, error) {
	d := &Decoder{log: zerolog.New(os.Stderr).With().Timestamp().Logger()}
	if err := d.Reset(r); err != nil {
		return nil, err
	}
	return d, nil
}

// Reset discards all decoder state and resumes decoding from r, as if a
// new Decoder had been constructed. Useful for reusing a Decoder across
// many short streams without reallocating it.
func (d *Decoder) Reset(r io.Reader) error {
	d.src = newSource(r)
	d.prevFrame = nil
	d.reservoir = nil
	d.sampleRate = 0
	d.channels = 0
	if err := d.src.skipLeadingTag(); err != nil {
		return err
	}
	return nil
}

// DecodeFrame decodes and returns the next frame's PCM. It returns io.EOF
// once the stream is exhausted. A frame whose bit reservoir underflows
// (spec §7) is not an error: DecodeFrame returns a frame of silence for
// it and keeps the stream usable for subsequent frames.
func (d *Decoder) DecodeFrame() (*FrameOutput, error) {
	h, err := d.src.readHeader()
	if err != nil {
		return nil, err
	}
	if h.ProtectionBit() == 0 {
		if err := d.src.readCRC(); err != nil {
			return nil, err
		}
	}
	if !h.IsMPEG1() || !h.IsLayer3() {
		return nil, fmt.Errorf("%w: version=%d layer=%d", ErrUnsupportedLayer, h.ID(), h.Layer())
	}

	sideInfoSize := h.SideInfoSize()
	sideBuf := make([]byte, sideInfoSize)
	if _, err := d.src.ReadFull(sideBuf); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSideInfo, err)
	}
	si := sideinfo.Read(sideBuf, h)

	mainDataSize := h.FrameSize() - 4 - sideInfoSize
	if h.ProtectionBit() == 0 {
		mainDataSize -= 2
	}
	cur, ok, err := maindata.ReadReservoir(d.src, d.reservoir, mainDataSize, si.MainDataBegin)
	if err != nil {
		return nil, err
	}
	d.reservoir = cur

	if d.sampleRate == 0 {
		d.sampleRate = h.SampleRate()
		d.channels = h.NumberOfChannels()
	}

	if !ok {
		d.log.Debug().Int("main_data_begin", si.MainDataBegin).Msg("bit reservoir underflow, emitting silence")
		return &FrameOutput{
			Samples:    make([]float32, 1152*h.NumberOfChannels()),
			SampleRate: h.SampleRate(),
			Channels:   h.NumberOfChannels(),
		}, nil
	}

	md, err := maindata.Read(cur, h, si)
	if err != nil {
		return nil, err
	}

	f := frame.New(h, si, md, d.prevFrame)
	samples := f.Decode()
	d.prevFrame = f

	return &FrameOutput{
		Samples:    samples,
		SampleRate: h.SampleRate(),
		Channels:   h.NumberOfChannels(),
	}, nil
}

// SampleRate returns the sample rate observed on the first successfully
// parsed frame header, or 0 before any frame has been decoded.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

// Channels returns the channel count observed on the first successfully
// parsed frame header, or 0 before any frame has been decoded.
func (d *Decoder) Channels() int {
	return d.channels
}

// StreamDecoder adapts a Decoder to io.Reader, the shape most audio
// output backends (e.g. an oto.Player) expect: 16-bit little-endian PCM,
// interleaved, converted losslessly-enough from the core float32 pipeline
// by clamping to the int16 range.
type StreamDecoder struct {
	d   *Decoder
	buf []byte
}

// NewStreamDecoder wraps a fresh Decoder over r for byte-stream playback.
func NewStreamDecoder(r io.Reader) (*StreamDecoder, error) {
	d, err := NewDecoder(r)
	if err != nil {
		return nil, err
	}
	return &StreamDecoder{d: d}, nil
}

// Read is io.Reader's Read: it emits 16-bit little-endian PCM, decoding
// frames from the underlying stream as needed.
func (s *StreamDecoder) Read(p []byte) (int, error) {
	for len(s.buf) == 0 {
		fo, err := s.d.DecodeFrame()
		if err != nil {
			return 0, err
		}
		s.buf = float32ToLE16(fo.Samples, s.buf[:0])
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

// SampleRate returns the underlying Decoder's sample rate.
func (s *StreamDecoder) SampleRate() int {
	return s.d.SampleRate()
}

// Channels returns the underlying Decoder's channel count.
func (s *StreamDecoder) Channels() int {
	return s.d.Channels()
}

// float32ToLE16 appends samples to dst as 16-bit little-endian PCM,
// clamping out-of-range values rather than wrapping.
func float32ToLE16(samples []float32, dst []byte) []byte {
	for _, v := range samples {
		v *= 32768
		switch {
		case v > 32767:
			v = 32767
		case v < -32768:
			v = -32768
		}
		var b [2]byte
		binary.LittleEndian.PutUint16(b[:], uint16(int16(v)))
		dst = append(dst, b[:]...)
	}
	return dst
}
