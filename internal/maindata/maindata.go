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

// Package maindata reassembles the bit reservoir and decodes scalefactors
// and Huffman-coded frequency lines from it (spec §4.3-4.5).
package maindata

import (
	"fmt"
	"io"

	"github.com/gomp3dec/mp3iii/internal/bits"
	"github.com/gomp3dec/mp3iii/internal/consts"
	"github.com/gomp3dec/mp3iii/internal/frameheader"
	"github.com/gomp3dec/mp3iii/internal/huffman"
	"github.com/gomp3dec/mp3iii/internal/sideinfo"
)

// FullReader is the minimal reader the bit reservoir needs from its source.
type FullReader interface {
	ReadFull([]byte) (int, error)
}

// MainData holds the decoded scalefactors and Huffman-coded frequency
// lines ("is", for "integer samples") for both granules and channels.
type MainData struct {
	ScalefacL [2][2][22]int      // 0-4 bits each
	ScalefacS [2][2][13][3]int   // 0-4 bits each
	Is        [2][2][576]float32 // Huffman-decoded, pre-requantization
}

// ReadReservoir reassembles this frame's main data region from prev's
// trailing bytes (borrowed via main_data_begin, here "offset") and the
// next size bytes of the stream. If prev does not hold enough trailing
// bytes to satisfy offset, the reservoir has underflowed: ok is false, the
// size bytes are still consumed from source (so the stream stays in sync
// for the next frame) and appended to prev, but no usable cursor is
// returned for this frame (spec §4.3, §7: the caller must skip the frame,
// not fail the stream).
func ReadReservoir(source FullReader, prev *bits.Bits, size int, offset int) (cur *bits.Bits, ok bool, err error) {
	if size > 1500 {
		return nil, false, fmt.Errorf("mp3: main data size out of range: %d", size)
	}

	buf := make([]byte, size)
	if n, err := source.ReadFull(buf); n < size {
		if err == io.EOF {
			return nil, false, &consts.UnexpectedEOF{At: "maindata.ReadReservoir"}
		}
		return nil, false, err
	}

	if offset > 0 && (prev == nil || offset > prev.LenInBytes()) {
		return bits.Append(prev, buf), false, nil
	}

	var tail []byte
	if prev != nil {
		tail = prev.Tail(offset)
	}
	return bits.New(append(tail, buf...)), true, nil
}

// Read decodes the scalefactors and Huffman-coded frequency lines for
// every granule and channel from cur, which must be positioned at the
// start of this frame's main data (i.e. at the reservoir offset).
func Read(cur *bits.Bits, h frameheader.FrameHeader, si *sideinfo.SideInfo) (*MainData, error) {
	m := &MainData{}
	nch := h.NumberOfChannels()

	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < nch; ch++ {
			part2Start := cur.Pos()
			readScalefactors(cur, h, si, m, gr, ch)
			if err := readHuffman(cur, h, si, m, part2Start, gr, ch); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// readScalefactors reads the long- and/or short-block scalefactors for one
// granule/channel, applying the MPEG-1 scfsi copy-forward rule: when
// scfsi[ch][band] is set, granule 1's scalefactors for that band are
// copied from granule 0 instead of being read from the bitstream (spec
// §4.4). Scalefactor band 21 (long blocks) and band 12 (short blocks) are
// never encoded and remain zero, per the data model's invariant.
func readScalefactors(cur *bits.Bits, h frameheader.FrameHeader, si *sideinfo.SideInfo, m *MainData, gr, ch int) {
	slen := consts.ScalefacSizes[si.ScalefacCompress[gr][ch]]
	slen1, slen2 := slen[0], slen[1]

	scfsiBands := [4][2]int{{0, 6}, {6, 11}, {11, 16}, {16, 21}}

	readLong := func(bandLo, bandHi, bits_ int) {
		for sfb := bandLo; sfb < bandHi; sfb++ {
			m.ScalefacL[gr][ch][sfb] = cur.Bits(bits_)
		}
	}

	if si.WinSwitchFlag[gr][ch] != 0 && si.BlockType[gr][ch] == 2 {
		if si.MixedBlockFlag[gr][ch] != 0 {
			// Mixed block: bands 0-7 are long, encoded with slen1; the
			// short-block tail (window-major, bands 3-11) follows.
			readLong(0, 8, slen1)
			for sfb := 3; sfb < 6; sfb++ {
				for win := 0; win < 3; win++ {
					m.ScalefacS[gr][ch][sfb][win] = cur.Bits(slen1)
				}
			}
			for sfb := 6; sfb < 12; sfb++ {
				for win := 0; win < 3; win++ {
					m.ScalefacS[gr][ch][sfb][win] = cur.Bits(slen2)
				}
			}
		} else {
			for sfb := 0; sfb < 6; sfb++ {
				for win := 0; win < 3; win++ {
					m.ScalefacS[gr][ch][sfb][win] = cur.Bits(slen1)
				}
			}
			for sfb := 6; sfb < 12; sfb++ {
				for win := 0; win < 3; win++ {
					m.ScalefacS[gr][ch][sfb][win] = cur.Bits(slen2)
				}
			}
		}
		return
	}

	for band, rng := range scfsiBands {
		bits_ := slen1
		if band >= 2 {
			bits_ = slen2
		}
		if gr == 1 && si.Scfsi[ch][band] != 0 {
			for sfb := rng[0]; sfb < rng[1]; sfb++ {
				m.ScalefacL[gr][ch][sfb] = m.ScalefacL[0][ch][sfb]
			}
			continue
		}
		readLong(rng[0], rng[1], bits_)
	}
}

// readHuffman decodes the big_values, count1 and zero regions of one
// granule/channel's Huffman-coded data, per spec §4.5.
func readHuffman(cur *bits.Bits, h frameheader.FrameHeader, si *sideinfo.SideInfo, m *MainData, part2Start int, gr, ch int) error {
	part2_3End := part2Start + si.Part2_3Length[gr][ch]
	bigValues := si.BigValues[gr][ch]

	var region1Start, region2Start int
	if si.WinSwitchFlag[gr][ch] != 0 && si.BlockType[gr][ch] == 2 {
		region1Start = 36
		region2Start = 576
	} else {
		long := h.SfBandIndicesLong()
		r0 := si.Region0Count[gr][ch]
		r1 := si.Region1Count[gr][ch]
		if r0+1 < len(long) {
			region1Start = long[r0+1]
		} else {
			region1Start = 576
		}
		if r0+r1+2 < len(long) {
			region2Start = long[r0+r1+2]
		} else {
			region2Start = 576
		}
	}

	is := &m.Is[gr][ch]
	isPos := 0
	for isPos < 2*bigValues {
		var tableNum int
		switch {
		case isPos < region1Start:
			tableNum = si.TableSelect[gr][ch][0]
		case isPos < region2Start:
			tableNum = si.TableSelect[gr][ch][1]
		default:
			tableNum = si.TableSelect[gr][ch][2]
		}
		x, y, err := huffman.Decode(cur, tableNum)
		if err != nil {
			return err
		}
		is[isPos] = float32(x)
		is[isPos+1] = float32(y)
		isPos += 2
	}

	count1TableSelect := si.Count1TableSelect[gr][ch]
	for isPos+4 <= consts.SamplesPerGr && cur.Pos() < part2_3End {
		v, w, x, y, err := huffman.DecodeQuad(cur, count1TableSelect)
		if err != nil {
			return err
		}
		is[isPos] = float32(v)
		is[isPos+1] = float32(w)
		is[isPos+2] = float32(x)
		is[isPos+3] = float32(y)
		isPos += 4
	}

	// The final quadruple may have read past part2_3End; it is discarded
	// in that case (spec §4.5).
	if cur.Pos() > part2_3End && isPos >= 4 {
		isPos -= 4
	}

	for i := isPos; i < consts.SamplesPerGr; i++ {
		is[i] = 0
	}

	cur.SetPos(part2_3End)
	return nil
}
