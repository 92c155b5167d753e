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

// Package consts holds the process-wide constants of the MPEG-1/2 Layer
// III bitstream format: version/layer/mode enums, the bitrate and sampling
// rate lookup tables, and the scalefactor band index tables. These are
// process-constant per spec: computed once at init and never mutated.
package consts

import "fmt"

// Version is the MPEG version read from a frame header.
type Version int

const (
	Version2_5      Version = 0
	VersionReserved Version = 1
	Version2        Version = 2
	Version1        Version = 3
)

// Layer is the MPEG layer read from a frame header.
type Layer int

const (
	LayerReserved Layer = 0
	Layer3        Layer = 1
	Layer2        Layer = 2
	Layer1        Layer = 3
)

// Mode is the channel mode read from a frame header.
type Mode int

const (
	ModeStereo Mode = iota
	ModeJointStereo
	ModeDualChannel
	ModeSingleChannel
)

// SamplingFrequency is the 2-bit sampling-rate index read from a frame header.
type SamplingFrequency int

const (
	SamplingFrequency1 SamplingFrequency = 0
	SamplingFrequency2 SamplingFrequency = 1
	SamplingFrequency3 SamplingFrequency = 2
)

// SamplesPerGr is the number of frequency lines decoded per granule/channel.
const SamplesPerGr = 576

// UnexpectedEOF marks an EOF encountered mid-field, as opposed to a clean
// EOF at a frame boundary. Decoder.DecodeFrame returns it to its caller.
type UnexpectedEOF struct {
	At string
}

func (e *UnexpectedEOF) Error() string {
	return fmt.Sprintf("mp3: unexpected EOF at %s", e.At)
}

// samplingFrequencyTable[version][index] is in Hz; index 3 is reserved.
var samplingFrequencyTable = [4][4]int{
	{11025, 12000, 8000, 0}, // MPEG 2.5
	{0, 0, 0, 0},            // reserved
	{22050, 24000, 16000, 0},
	{44100, 48000, 32000, 0},
}

// SampleRate returns the sampling rate in Hz for a (version, freqIndex)
// pair, or 0 if the index is reserved.
func SampleRate(v Version, freqIndex SamplingFrequency) int {
	return samplingFrequencyTable[v][freqIndex]
}

// bitrateTableMPEG1[layer][index]*1000 and bitrateTableMPEG2[layer][index]*1000
// are the bitrates in bps. MPEG2 and MPEG2.5 share bitrateTableMPEG2.
var bitrateTableMPEG1 = [4][16]int{
	{}, // reserved layer
	{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0},    // Layer III
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0},   // Layer II
	{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0}, // Layer I
}

var bitrateTableMPEG2 = [4][16]int{
	{}, // reserved layer
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},      // Layer III
	{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},      // Layer II
	{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0}, // Layer I
}

// Bitrate returns the bitrate in bps for (version, layer, index), or 0 for
// the free/bad (0, 15) indices, which callers must reject beforehand.
func Bitrate(v Version, l Layer, index int) int {
	if v == Version1 {
		return bitrateTableMPEG1[l][index] * 1000
	}
	return bitrateTableMPEG2[l][index] * 1000
}

const (
	sfBandIndicesLong  = 0
	sfBandIndicesShort = 1
)

// SfBandIndices is indexed [lowSampleRateFlag][samplingFrequency][long=0/short=1].
// lowSampleRateFlag is 0 for MPEG-1 and 1 for MPEG-2/2.5 (halved sample rates
// shift scalefactor-band boundaries per ISO/IEC 11172-3 Table B.8 / 13818-3).
var SfBandIndices = [2][3][2][]int{
	{ // MPEG-1
		{ // 44100 Hz
			{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},
			{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192},
		},
		{ // 48000 Hz
			{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},
			{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192},
		},
		{ // 32000 Hz
			{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 550, 576},
			{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192},
		},
	},
	{ // MPEG-2 / MPEG-2.5
		{ // 22050 Hz
			{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
			{0, 4, 8, 12, 18, 24, 32, 42, 56, 74, 100, 132, 174, 192},
		},
		{ // 24000 Hz
			{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 114, 136, 162, 194, 232, 278, 332, 394, 464, 540, 576},
			{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 136, 180, 192},
		},
		{ // 16000 Hz
			{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
			{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 136, 180, 192},
		},
	},
}

// SfBandIndicesLongIdx and SfBandIndicesShortIdx index the inner dimension
// of SfBandIndices.
const (
	SfBandIndicesLongIdx  = sfBandIndicesLong
	SfBandIndicesShortIdx = sfBandIndicesShort
)

// BandWidthShort returns the width, in samples, of short-block scalefactor
// band sfb, derived from the gap between consecutive entries of
// SfBandIndices[lowSR][sfreq][short].
func BandWidthShort(lowSR int, sfreq SamplingFrequency, sfb int) int {
	s := SfBandIndices[lowSR][sfreq][sfBandIndicesShort]
	if sfb+1 >= len(s) {
		return 0
	}
	return s[sfb+1] - s[sfb]
}

// Pretab is the fixed additive scalefactor constant applied when preflag is
// set (spec §4.6).
var Pretab = [22]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}

// ScalefacSizes maps scalefac_compress (0..15) to {slen1, slen2} per
// spec §4.2.
var ScalefacSizes = [16][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 0}, {1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {4, 2}, {4, 3},
}
