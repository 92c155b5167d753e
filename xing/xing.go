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

// Package xing parses the advisory Xing/Info VBR header (and its LAME
// encoder-delay/padding extension) embedded in the first MPEG frame's
// main-data region. It is never required to decode audio (§1): a missing
// or malformed tag just means Parse returns ErrNoXingHeader, not a fatal
// error for the stream.
package xing

import (
	"encoding/binary"
	"errors"

	"github.com/gomp3dec/mp3iii/internal/frameheader"
)

// ErrNoXingHeader is returned by Parse when the frame carries no
// recognizable Xing/Info tag.
var ErrNoXingHeader = errors.New("xing: no Xing/Info header found")

const (
	FlagFrameCount = 0x0001
	FlagByteCount  = 0x0002
	FlagTOC        = 0x0004
	FlagVBRScale   = 0x0008
)

// DecoderDelay is the fixed decoder filter delay, in samples, that every
// LAME-tagged stream carries ahead of the first real sample in addition to
// the encoder delay recorded in the tag.
const DecoderDelay = 529

// Info is the decoded content of a Xing/Info tag and, if present, its
// LAME extension.
type Info struct {
	IsXing      bool // true for "Xing" (VBR), false for "Info" (CBR)
	Flags       uint32
	FrameCount  uint32
	ByteCount   uint32
	TOC         [100]byte
	VBRScale    uint32
	HasLAME     bool
	LAMEVersion string
	EncoderDelay   uint16
	EncoderPadding uint16
}

func (i *Info) HasFrameCount() bool { return i.Flags&FlagFrameCount != 0 }
func (i *Info) HasByteCount() bool  { return i.Flags&FlagByteCount != 0 }
func (i *Info) HasTOC() bool        { return i.Flags&FlagTOC != 0 }
func (i *Info) HasVBRScale() bool   { return i.Flags&FlagVBRScale != 0 }

// TotalDelay returns the combined decoder and encoder delay in samples,
// for trimming the padding LAME inserts ahead of the real audio.
func (i *Info) TotalDelay() int {
	return DecoderDelay + int(i.EncoderDelay)
}

// TotalPadding returns the number of samples to trim after the real audio:
// the encoder padding recorded by LAME less DecoderDelay, or 0 when the
// padding is smaller than DecoderDelay.
func (i *Info) TotalPadding() int {
	if i.EncoderPadding < DecoderDelay {
		return 0
	}
	return int(i.EncoderPadding) - DecoderDelay
}

// sideInfoSize returns the size, in bytes, of the side information that
// precedes the Xing/Info tag within the frame.
func sideInfoSize(h frameheader.FrameHeader) int {
	return h.SideInfoSize()
}

// Parse looks for a Xing/Info tag within frame, a buffer holding one
// complete MPEG-1 Layer III frame (header included), and its LAME
// extension if present.
func Parse(frame []byte, h frameheader.FrameHeader) (*Info, error) {
	pos := 4 + sideInfoSize(h) // header + side info
	if pos+4 > len(frame) {
		return nil, ErrNoXingHeader
	}
	tag := string(frame[pos : pos+4])
	if tag != "Xing" && tag != "Info" {
		return nil, ErrNoXingHeader
	}
	info := &Info{IsXing: tag == "Xing"}
	pos += 4

	if pos+4 > len(frame) {
		return info, nil
	}
	info.Flags = binary.BigEndian.Uint32(frame[pos : pos+4])
	pos += 4

	if info.HasFrameCount() {
		if pos+4 > len(frame) {
			return info, nil
		}
		info.FrameCount = binary.BigEndian.Uint32(frame[pos : pos+4])
		pos += 4
	}
	if info.HasByteCount() {
		if pos+4 > len(frame) {
			return info, nil
		}
		info.ByteCount = binary.BigEndian.Uint32(frame[pos : pos+4])
		pos += 4
	}
	if info.HasTOC() {
		if pos+100 > len(frame) {
			return info, nil
		}
		copy(info.TOC[:], frame[pos:pos+100])
		pos += 100
	}
	if info.HasVBRScale() {
		if pos+4 > len(frame) {
			return info, nil
		}
		info.VBRScale = binary.BigEndian.Uint32(frame[pos : pos+4])
		pos += 4
	}

	parseLAME(frame, pos, info)
	return info, nil
}

// parseLAME attempts to read the 9-byte LAME/Gogo/etc encoder tag that
// immediately follows the Xing/Info body, and the 12-bit encoder
// delay/padding packed into 3 bytes 12 bytes further in.
func parseLAME(frame []byte, pos int, info *Info) {
	if pos+9 > len(frame) {
		return
	}
	versionTag := string(frame[pos : pos+4])
	switch versionTag {
	case "LAME", "L3.9", "Gogo", "GOGO":
	default:
		return
	}
	info.HasLAME = true
	info.LAMEVersion = string(frame[pos : pos+9])

	delayOffset := pos + 12 + 9 // 9-byte version tag, then encoder info fields
	if delayOffset+3 > len(frame) {
		return
	}
	b0, b1, b2 := frame[delayOffset], frame[delayOffset+1], frame[delayOffset+2]
	info.EncoderDelay = uint16(b0)<<4 | uint16(b1)>>4
	info.EncoderPadding = (uint16(b1)&0x0f)<<8 | uint16(b2)
}
