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

// Package sideinfo parses the MPEG-1 Layer III side information block that
// follows the frame header (17 bytes mono, 32 bytes stereo).
package sideinfo

import (
	"github.com/gomp3dec/mp3iii/internal/bits"
	"github.com/gomp3dec/mp3iii/internal/frameheader"
)

// A SideInfo is MPEG1 Layer 3 Side Information.
// [2][2] means [gr][ch].
type SideInfo struct {
	MainDataBegin int       // 9 bits
	PrivateBits   int       // 5 bits in mono, 3 in stereo
	Scfsi         [2][4]int // 1 bit

	Part2_3Length    [2][2]int // 12 bits
	BigValues        [2][2]int // 9 bits
	GlobalGain       [2][2]int // 8 bits
	ScalefacCompress [2][2]int // 4 bits
	WinSwitchFlag    [2][2]int // 1 bit

	BlockType      [2][2]int    // 2 bits
	MixedBlockFlag [2][2]int    // 1 bit
	TableSelect    [2][2][3]int // 5 bits
	SubblockGain   [2][2][3]int // 3 bits

	Region0Count [2][2]int // 4 bits
	Region1Count [2][2]int // 3 bits

	Preflag           [2][2]int // 1 bit
	ScalefacScale     [2][2]int // 1 bit
	Count1TableSelect [2][2]int // 1 bit
	Count1            [2][2]int // not in the bitstream and never set; frame.findCount1 derives this boundary
}

// Read parses the side information immediately following h in buf, which
// must hold exactly h.SideInfoSize() bytes.
func Read(buf []byte, h frameheader.FrameHeader) *SideInfo {
	b := bits.New(buf)
	s := &SideInfo{}

	nch := h.NumberOfChannels()

	s.MainDataBegin = b.Bits(9)
	if nch == 1 {
		s.PrivateBits = b.Bits(5)
	} else {
		s.PrivateBits = b.Bits(3)
	}

	for ch := 0; ch < nch; ch++ {
		for band := 0; band < 4; band++ {
			s.Scfsi[ch][band] = b.Bit()
		}
	}

	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < nch; ch++ {
			s.Part2_3Length[gr][ch] = b.Bits(12)
			s.BigValues[gr][ch] = b.Bits(9)
			s.GlobalGain[gr][ch] = b.Bits(8)
			s.ScalefacCompress[gr][ch] = b.Bits(4)
			s.WinSwitchFlag[gr][ch] = b.Bit()

			if s.WinSwitchFlag[gr][ch] != 0 {
				s.BlockType[gr][ch] = b.Bits(2)
				s.MixedBlockFlag[gr][ch] = b.Bit()

				for i := 0; i < 2; i++ {
					s.TableSelect[gr][ch][i] = b.Bits(5)
				}
				for i := 0; i < 3; i++ {
					s.SubblockGain[gr][ch][i] = b.Bits(3)
				}

				// Table select for the unused third region is not
				// present when window switching is active; region
				// counts are implied by the block type.
				if s.BlockType[gr][ch] == 2 && s.MixedBlockFlag[gr][ch] == 0 {
					s.Region0Count[gr][ch] = 8
				} else {
					s.Region0Count[gr][ch] = 7
				}
				s.Region1Count[gr][ch] = 20 - s.Region0Count[gr][ch]
			} else {
				for i := 0; i < 3; i++ {
					s.TableSelect[gr][ch][i] = b.Bits(5)
				}
				s.Region0Count[gr][ch] = b.Bits(4)
				s.Region1Count[gr][ch] = b.Bits(3)
				s.BlockType[gr][ch] = 0
			}

			s.Preflag[gr][ch] = b.Bit()
			s.ScalefacScale[gr][ch] = b.Bit()
			s.Count1TableSelect[gr][ch] = b.Bit()
		}
	}

	return s
}
