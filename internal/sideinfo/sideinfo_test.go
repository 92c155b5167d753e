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

package sideinfo_test

import (
	"testing"

	"github.com/gomp3dec/mp3iii/internal/frameheader"
	. "github.com/gomp3dec/mp3iii/internal/sideinfo"
)

// bitWriter packs big-endian bit fields into a byte slice, mirroring the
// layout internal/bits.Bits reads back.
type bitWriter struct {
	buf []byte
	idx int // total bits written
}

func (w *bitWriter) put(v, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := (v >> uint(i)) & 1
		byteIdx := w.idx / 8
		for len(w.buf) <= byteIdx {
			w.buf = append(w.buf, 0)
		}
		if bit != 0 {
			w.buf[byteIdx] |= 1 << uint(7-w.idx%8)
		}
		w.idx++
	}
}

const mpeg1Stereo128k44100 = 0xFFFB9064

func TestReadStereoNoWindowSwitching(t *testing.T) {
	h := frameheader.FrameHeader(mpeg1Stereo128k44100)

	w := &bitWriter{}
	w.put(17, 9)  // main_data_begin
	w.put(5, 3)   // private_bits (stereo: 3 bits)
	for ch := 0; ch < 2; ch++ {
		for band := 0; band < 4; band++ {
			w.put(1, 1) // scfsi
		}
	}
	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < 2; ch++ {
			w.put(200, 12) // part2_3_length
			w.put(100, 9)  // big_values
			w.put(150, 8)  // global_gain
			w.put(3, 4)    // scalefac_compress
			w.put(0, 1)    // window_switching_flag = 0
			w.put(1, 5)    // table_select[0]
			w.put(2, 5)    // table_select[1]
			w.put(3, 5)    // table_select[2]
			w.put(5, 4)    // region0_count
			w.put(3, 3)    // region1_count
			w.put(1, 1)    // preflag
			w.put(0, 1)    // scalefac_scale
			w.put(1, 1)    // count1table_select
		}
	}

	si := Read(w.buf, h)

	if si.MainDataBegin != 17 {
		t.Fatalf("MainDataBegin = %d, want 17", si.MainDataBegin)
	}
	if si.PrivateBits != 5 {
		t.Fatalf("PrivateBits = %d, want 5", si.PrivateBits)
	}
	if si.Scfsi[1][3] != 1 {
		t.Fatalf("Scfsi[1][3] = %d, want 1", si.Scfsi[1][3])
	}
	if si.Part2_3Length[1][1] != 200 {
		t.Fatalf("Part2_3Length[1][1] = %d, want 200", si.Part2_3Length[1][1])
	}
	if si.BigValues[0][0] != 100 {
		t.Fatalf("BigValues[0][0] = %d, want 100", si.BigValues[0][0])
	}
	if si.GlobalGain[0][0] != 150 {
		t.Fatalf("GlobalGain[0][0] = %d, want 150", si.GlobalGain[0][0])
	}
	if si.Region0Count[0][0] != 5 || si.Region1Count[0][0] != 3 {
		t.Fatalf("region counts = %d,%d want 5,3", si.Region0Count[0][0], si.Region1Count[0][0])
	}
	if si.TableSelect[0][0] != [3]int{1, 2, 3} {
		t.Fatalf("TableSelect[0][0] = %v, want [1 2 3]", si.TableSelect[0][0])
	}
	if si.Preflag[0][0] != 1 {
		t.Fatalf("Preflag[0][0] = %d, want 1", si.Preflag[0][0])
	}
}

func TestReadWindowSwitchingShortBlock(t *testing.T) {
	h := frameheader.FrameHeader(mpeg1Stereo128k44100)

	w := &bitWriter{}
	w.put(0, 9) // main_data_begin
	w.put(0, 3) // private_bits
	for ch := 0; ch < 2; ch++ {
		for band := 0; band < 4; band++ {
			w.put(0, 1)
		}
	}
	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < 2; ch++ {
			w.put(0, 12)
			w.put(0, 9)
			w.put(0, 8)
			w.put(0, 4)
			w.put(1, 1) // window_switching_flag = 1
			w.put(2, 2) // block_type = 2 (short)
			w.put(0, 1) // mixed_block_flag = 0
			w.put(4, 5) // table_select[0]
			w.put(5, 5) // table_select[1]
			w.put(1, 3) // subblock_gain[0]
			w.put(2, 3) // subblock_gain[1]
			w.put(3, 3) // subblock_gain[2]
			w.put(0, 1) // preflag
			w.put(1, 1) // scalefac_scale
			w.put(0, 1) // count1table_select
		}
	}

	si := Read(w.buf, h)

	if si.BlockType[0][0] != 2 {
		t.Fatalf("BlockType[0][0] = %d, want 2", si.BlockType[0][0])
	}
	if si.Region0Count[0][0] != 8 {
		t.Fatalf("Region0Count[0][0] = %d, want 8 for pure short block", si.Region0Count[0][0])
	}
	if si.SubblockGain[0][0] != [3]int{1, 2, 3} {
		t.Fatalf("SubblockGain[0][0] = %v, want [1 2 3]", si.SubblockGain[0][0])
	}
	if si.TableSelect[0][0][2] != 0 {
		t.Fatalf("TableSelect[0][0][2] = %d, want 0 (unread, third region unused)", si.TableSelect[0][0][2])
	}
}
