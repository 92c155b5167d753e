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

package bits_test

import (
	"testing"

	. "github.com/gomp3dec/mp3iii/internal/bits"
)

func TestBits(t *testing.T) {
	b1 := byte(85)  // 01010101
	b2 := byte(170) // 10101010
	b3 := byte(204) // 11001100
	b4 := byte(51)  // 00110011
	b := New([]byte{b1, b2, b3, b4})
	if b.Bits(1) != 0 {
		t.Fail()
	}
	if b.Bits(1) != 1 {
		t.Fail()
	}
	if b.Bits(1) != 0 {
		t.Fail()
	}
	if b.Bits(1) != 1 {
		t.Fail()
	}
	if b.Bits(8) != 90 /* 01011010 */ {
		t.Fail()
	}
	if b.Bits(12) != 2764 /* 101011001100 */ {
		t.Fail()
	}
}

// TestBitsExhaustive checks, for every (a, b) with 0 <= b-a <= 32 bits into
// a fixed buffer, that reading b-a bits starting at bit a matches the
// big-endian integer value of that bit substring (spec property 8).
func TestBitsExhaustive(t *testing.T) {
	buf := []byte{0x5A, 0xC3, 0x7E, 0x91, 0x00, 0xFF}
	total := len(buf) * 8
	for start := 0; start < total; start++ {
		for n := 0; n <= 32 && start+n <= total; n++ {
			b := New(buf)
			b.SetPos(start)
			got := b.Bits(n)
			want := referenceBits(buf, start, n)
			if got != want {
				t.Fatalf("Bits(%d) at pos %d = %d, want %d", n, start, got, want)
			}
		}
	}
}

// referenceBits extracts n bits starting at bit offset start from buf,
// independently of the cursor implementation under test.
func referenceBits(buf []byte, start, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		bitIdx := start + i
		byteIdx := bitIdx / 8
		shift := 7 - uint(bitIdx%8)
		bit := (int(buf[byteIdx]) >> shift) & 1
		v = (v << 1) | bit
	}
	return v
}

// TestBitsIncAdvancesByExactCount checks that consecutive reads of known
// widths advance the cursor by exactly the requested count (spec property 9).
func TestBitsIncAdvancesByExactCount(t *testing.T) {
	buf := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b := New(buf)
	widths := []int{3, 5, 9, 1, 7, 7}
	pos := 0
	for _, w := range widths {
		b.Bits(w)
		pos += w
		if got := b.Pos(); got != pos {
			t.Fatalf("after reading %d bits, Pos() = %d, want %d", w, got, pos)
		}
	}
}

func TestSetPosRoundTrip(t *testing.T) {
	b := New([]byte{0x12, 0x34, 0x56, 0x78})
	for _, pos := range []int{0, 1, 7, 8, 15, 16, 31} {
		b.SetPos(pos)
		if got := b.Pos(); got != pos {
			t.Fatalf("SetPos(%d) then Pos() = %d", pos, got)
		}
	}
}
