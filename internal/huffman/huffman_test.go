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

package huffman_test

import (
	"testing"

	"github.com/gomp3dec/mp3iii/internal/bits"
	. "github.com/gomp3dec/mp3iii/internal/huffman"
)

// TestDecodeTable1Zero decodes the all-zero codeword of table 1, which by
// construction is the single 1-bit code mapping to (x=0, y=0) with no sign
// bits consumed (a zero magnitude never reads a sign bit, per spec §4.5).
func TestDecodeTable1Zero(t *testing.T) {
	b := bits.New([]byte{0x80, 0x00}) // leading bit 1 -> table 1's (0,0) code
	x, y, err := Decode(b, 1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if x != 0 || y != 0 {
		t.Fatalf("Decode = (%d,%d), want (0,0)", x, y)
	}
}

func TestDecodeQuadAllZero(t *testing.T) {
	b := bits.New([]byte{0x80, 0x00})
	v, w, x, y, err := DecodeQuad(b, 0)
	if err != nil {
		t.Fatalf("DecodeQuad: %v", err)
	}
	if v != 0 || w != 0 || x != 0 || y != 0 {
		t.Fatalf("DecodeQuad = (%d,%d,%d,%d), want all zero", v, w, x, y)
	}
}

func TestTableZeroIsAllZero(t *testing.T) {
	b := bits.New([]byte{0xFF, 0xFF})
	x, y, err := Decode(b, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if x != 0 || y != 0 {
		t.Fatalf("table 0 should decode to (0,0) without consuming bits, got (%d,%d)", x, y)
	}
}
