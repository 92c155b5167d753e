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

// Package frameheader decodes the 32-bit MPEG audio frame header.
package frameheader

import (
	"github.com/gomp3dec/mp3iii/internal/consts"
)

// FrameHeader is the 32-bit header found at the start of every MPEG audio frame.
type FrameHeader uint32

// ID returns the MPEG version, stored in bits 20,19.
func (m FrameHeader) ID() consts.Version {
	return consts.Version((m & 0x00180000) >> 19)
}

// Layer returns the MPEG layer, stored in bits 18,17.
func (m FrameHeader) Layer() consts.Layer {
	return consts.Layer((m & 0x00060000) >> 17)
}

// ProtectionBit returns the CRC protection bit, stored in bit 16.
func (m FrameHeader) ProtectionBit() int {
	return int(m&0x00010000) >> 16
}

// BitrateIndex returns the bitrate index, stored in bits 15-12.
func (m FrameHeader) BitrateIndex() int {
	return int(m&0x0000f000) >> 12
}

// SamplingFrequency returns the sampling frequency index, stored in bits 11,10.
func (m FrameHeader) SamplingFrequency() consts.SamplingFrequency {
	return consts.SamplingFrequency(int(m&0x00000c00) >> 10)
}

// PaddingBit returns the padding bit, stored in bit 9.
func (m FrameHeader) PaddingBit() int {
	return int(m&0x00000200) >> 9
}

// PrivateBit returns the private bit, stored in bit 8.
func (m FrameHeader) PrivateBit() int {
	return int(m&0x00000100) >> 8
}

// Mode returns the channel mode, stored in bits 7,6.
func (m FrameHeader) Mode() consts.Mode {
	return consts.Mode((m & 0x000000c0) >> 6)
}

// ModeExtension returns the mode_extension bits, for joint stereo, stored in
// bits 5,4: bit 0 selects intensity stereo, bit 1 selects MS stereo.
func (m FrameHeader) ModeExtension() int {
	return int(m&0x00000030) >> 4
}

// Copyright returns the copyright bit, stored in bit 3.
func (m FrameHeader) Copyright() int {
	return int(m&0x00000008) >> 3
}

// OriginalOrCopy returns the original/copy bit, stored in bit 2.
func (m FrameHeader) OriginalOrCopy() int {
	return int(m&0x00000004) >> 2
}

// Emphasis returns the emphasis field, stored in bits 1,0.
func (m FrameHeader) Emphasis() int {
	return int(m&0x00000003) >> 0
}

// IsValid reports whether the header has a valid sync word and no reserved
// field values.
func (m FrameHeader) IsValid() bool {
	const sync = 0xffe00000
	if (m & sync) != sync {
		return false
	}
	if m.ID() == consts.VersionReserved {
		return false
	}
	if m.BitrateIndex() == 15 || m.BitrateIndex() == 0 {
		return false
	}
	if m.SamplingFrequency() == 3 {
		return false
	}
	if m.Layer() == consts.LayerReserved {
		return false
	}
	if m.Emphasis() == 2 {
		return false
	}
	return true
}

// IsLayer3 reports whether this header declares Layer III; Layers I and II
// are out of scope (§1) and are treated as an unsupported-layer error by
// the caller.
func (m FrameHeader) IsLayer3() bool {
	return m.Layer() == consts.Layer3
}

// IsMPEG1 reports whether this header's version is MPEG-1. The per-granule
// core pipeline is defined strictly in MPEG-1 terms (two granules, scfsi,
// preflag); MPEG-2/2.5 frames are recognized at the header level only, so
// that InvalidHeader can be told apart from an out-of-scope version and so
// the Xing/LAME side channel can still be located, but are not decoded by
// the granule pipeline.
func (m FrameHeader) IsMPEG1() bool {
	return m.ID() == consts.Version1
}

// lowSampleRateIndex returns 0 for MPEG-1's scalefactor-band table family
// and 1 for MPEG-2/2.5's halved-sample-rate family.
func (m FrameHeader) lowSampleRateIndex() int {
	if m.IsMPEG1() {
		return 0
	}
	return 1
}

// SfBandIndicesLong returns the long-block scalefactor band index table for
// this header's version and sampling frequency.
func (m FrameHeader) SfBandIndicesLong() []int {
	return consts.SfBandIndices[m.lowSampleRateIndex()][m.SamplingFrequency()][consts.SfBandIndicesLongIdx]
}

// SfBandIndicesShort returns the short-block scalefactor band index table
// for this header's version and sampling frequency.
func (m FrameHeader) SfBandIndicesShort() []int {
	return consts.SfBandIndices[m.lowSampleRateIndex()][m.SamplingFrequency()][consts.SfBandIndicesShortIdx]
}

// SampleRate returns the sampling rate in Hz, or 0 if the sampling
// frequency index is reserved.
func (m FrameHeader) SampleRate() int {
	return consts.SampleRate(m.ID(), m.SamplingFrequency())
}

// Bitrate returns the nominal bitrate in bits per second.
func (m FrameHeader) Bitrate() int {
	return consts.Bitrate(m.ID(), m.Layer(), m.BitrateIndex())
}

// samplesPerFrame is 1152 for MPEG-1 Layer III and 576 for MPEG-2/2.5 Layer III.
func (m FrameHeader) samplesPerFrame() int {
	if m.IsMPEG1() {
		return 1152
	}
	return 576
}

// FrameSize returns the total size of this frame in bytes, header included.
func (h FrameHeader) FrameSize() int {
	sr := h.SampleRate()
	if sr == 0 {
		return 0
	}
	return (h.samplesPerFrame()/8)*h.Bitrate()/sr + h.PaddingBit()
}

// NumberOfChannels returns 1 for single-channel mode, 2 otherwise.
func (h FrameHeader) NumberOfChannels() int {
	if h.Mode() == consts.ModeSingleChannel {
		return 1
	}
	return 2
}

// Granules returns the number of granules per frame: 2 for MPEG-1, 1 for
// MPEG-2/2.5 (the latter is out of scope for the core pipeline, §4.14).
func (h FrameHeader) Granules() int {
	if h.IsMPEG1() {
		return 2
	}
	return 1
}

// SideInfoSize returns the size, in bytes, of the side information that
// follows this header (MPEG-1 only; see Granules).
func (h FrameHeader) SideInfoSize() int {
	if h.NumberOfChannels() == 1 {
		return 17
	}
	return 32
}

// UseMSStereo reports whether MS stereo is enabled; only meaningful for
// JointStereo, where bit 1 of mode_extension selects it.
func (h FrameHeader) UseMSStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x2 != 0
}

// UseIntensityStereo reports whether intensity stereo is enabled: only
// meaningful for JointStereo, where bit 0 of mode_extension selects it.
func (h FrameHeader) UseIntensityStereo() bool {
	return h.Mode() == consts.ModeJointStereo && h.ModeExtension()&0x1 != 0
}
