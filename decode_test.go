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

package mp3

import (
	"bytes"
	"io"
	"testing"

	"github.com/gomp3dec/mp3iii/internal/frameheader"
)

const mpeg1Stereo128k44100 = 0xFFFB9064

// silentFrame builds one complete, structurally valid MPEG-1 Layer III
// frame whose side info declares big_values=0 and part2_3_length=0 for
// every granule/channel, so the Huffman region is entirely zero-fill: a
// frame of true digital silence, independent of what the main-data bytes
// actually contain.
func silentFrame(h frameheader.FrameHeader) []byte {
	size := h.FrameSize()
	buf := make([]byte, size)
	buf[0] = byte(h >> 24)
	buf[1] = byte(h >> 16)
	buf[2] = byte(h >> 8)
	buf[3] = byte(h)
	// side info and main data are already zero from make([]byte, size)
	return buf
}

// TestDecodeFrameSilence checks spec scenario S1: a well-formed silent
// frame decodes to all-zero PCM of the expected length, with no error.
func TestDecodeFrameSilence(t *testing.T) {
	h := frameheader.FrameHeader(mpeg1Stereo128k44100)
	buf := silentFrame(h)

	d, err := NewDecoder(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	fo, err := d.DecodeFrame()
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if fo.Channels != 2 {
		t.Fatalf("Channels = %d, want 2", fo.Channels)
	}
	if want := 576 * 2 * fo.Channels; len(fo.Samples) != want {
		t.Fatalf("len(Samples) = %d, want %d", len(fo.Samples), want)
	}
	for i, s := range fo.Samples {
		if s != 0 {
			t.Fatalf("Samples[%d] = %v, want 0 (silence)", i, s)
		}
	}
}

// TestDecodeFrameEOFAtStreamEnd checks that DecodeFrame reports a clean
// io.EOF once every frame has been consumed, rather than an error.
func TestDecodeFrameEOFAtStreamEnd(t *testing.T) {
	h := frameheader.FrameHeader(mpeg1Stereo128k44100)
	buf := silentFrame(h)

	d, err := NewDecoder(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, err := d.DecodeFrame(); err != nil {
		t.Fatalf("first DecodeFrame: %v", err)
	}
	if _, err := d.DecodeFrame(); err != io.EOF {
		t.Fatalf("second DecodeFrame = %v, want io.EOF", err)
	}
}

// TestDecodeResyncsAfterGarbage checks spec scenario S6: leading garbage
// bytes that never match the sync word are skipped rather than failing
// the stream, and the decoder locks onto the first real frame after them.
func TestDecodeResyncsAfterGarbage(t *testing.T) {
	h := frameheader.FrameHeader(mpeg1Stereo128k44100)
	garbage := bytes.Repeat([]byte{0x00, 0x11, 0x22, 0x33}, 16)
	stream := append(garbage, silentFrame(h)...)

	d, err := NewDecoder(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	fo, err := d.DecodeFrame()
	if err != nil {
		t.Fatalf("DecodeFrame after garbage: %v", err)
	}
	if fo.SampleRate != 44100 {
		t.Fatalf("SampleRate = %d, want 44100", fo.SampleRate)
	}
}

// TestDecodeSkipsLeadingID3Tag checks that a leading ID3v2 tag is skipped
// without consuming any bytes of the first real frame (spec §5).
func TestDecodeSkipsLeadingID3Tag(t *testing.T) {
	h := frameheader.FrameHeader(mpeg1Stereo128k44100)
	tag := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 10}
	tag = append(tag, make([]byte, 10)...)
	stream := append(tag, silentFrame(h)...)

	d, err := NewDecoder(bytes.NewReader(stream))
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}
	if _, err := d.DecodeFrame(); err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
}

// bytesReadCloser adapts a bytes.Reader to io.ReadCloser, matching the
// shape callers most commonly hand a decoder (an *os.File).
type bytesReadCloser struct {
	*bytes.Reader
}

func (b *bytesReadCloser) Close() error { return nil }

// TestFuzzingNeverPanics feeds a handful of inputs that are not valid MP3
// streams (sync-like bytes followed by noise) through the full decode
// path and checks only that it returns cleanly, never panics.
func TestFuzzingNeverPanics(t *testing.T) {
	inputs := [][]byte{
		{0xff, 0xfb, 0x90, 0x64},
		append([]byte{0xff, 0xfb, 0x90, 0x64}, bytes.Repeat([]byte{0x00}, 10)...),
		bytes.Repeat([]byte{0xff}, 64),
		bytes.Repeat([]byte{0x00}, 64),
		{'I', 'D', '3', 4, 0, 0, 0x7f, 0x7f, 0x7f, 0x7f},
	}
	for i, input := range inputs {
		d, err := NewDecoder(&bytesReadCloser{bytes.NewReader(input)})
		if err != nil {
			continue
		}
		for j := 0; j < 4; j++ {
			if _, err := d.DecodeFrame(); err != nil {
				break
			}
		}
		_ = i
	}
}
