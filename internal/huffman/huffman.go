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

// Package huffman decodes the big_values and count1 Huffman-coded regions
// of a Layer III granule, per ISO/IEC 11172-3 Annex B Table B.7. Tables are
// canonical prefix codes: a code's bit length plus its value uniquely
// identifies the (x, y) pair it represents, so decoding reads one bit at a
// time and looks up (length, accumulated value) in a table-specific map.
package huffman

import (
	"github.com/gomp3dec/mp3iii/internal/bits"
	"github.com/gomp3dec/mp3iii/internal/consts"
)

type pair struct {
	length int
	code   int
	x, y   int
}

type quad struct {
	length int
	code   int
	v, w, x, y int
}

// linbits[table] is the number of escape bits appended when x or y hits the
// table's maximum value. The count1 quad tables have no escape bits. Tables
// 4 and 14 are reserved and never selected by a valid bitstream.
var linbits = [32]int{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	1, 2, 3, 4, 6, 8, 10, 13, 4, 5, 6, 7, 8, 9, 11, 13,
}

// tables[n] holds the canonical code tree for table n. Tables 16-23 share
// the tree stored at tables[16]; tables 24-31 share the tree at tables[24]
// (only linbits differs within each group), per the standard.
var tables [32][]pair

var quadTableA []quad
var quadTableB []quad

func build(rows [][4]int) []pair {
	ps := make([]pair, len(rows))
	for i, r := range rows {
		ps[i] = pair{length: r[0], code: r[1], x: r[2], y: r[3]}
	}
	return ps
}

func buildQuad(rows [][6]int) []quad {
	qs := make([]quad, len(rows))
	for i, r := range rows {
		qs[i] = quad{length: r[0], code: r[1], v: r[2], w: r[3], x: r[4], y: r[5]}
	}
	return qs
}

func init() {
	// Table 1: 2x2 values, linbits 0.
	tables[1] = build([][4]int{
		{1, 1, 0, 0},
		{3, 1, 0, 1},
		{2, 1, 1, 0},
		{3, 0, 1, 1},
	})
	// Table 2: 3x3 values, linbits 0.
	tables[2] = build([][4]int{
		{1, 1, 0, 0},
		{3, 2, 0, 1},
		{6, 1, 0, 2},
		{3, 3, 1, 0},
		{3, 1, 1, 1},
		{5, 1, 1, 2},
		{5, 2, 2, 0},
		{5, 0, 2, 1},
		{6, 0, 2, 2},
	})
	// Table 3: 3x3 values, linbits 0.
	tables[3] = build([][4]int{
		{2, 3, 0, 0},
		{2, 2, 0, 1},
		{6, 1, 0, 2},
		{3, 3, 1, 0},
		{2, 1, 1, 1},
		{5, 1, 1, 2},
		{5, 2, 2, 0},
		{5, 0, 2, 1},
		{6, 0, 2, 2},
	})
	// Table 5: 4x4 values, linbits 0.
	tables[5] = build([][4]int{
		{1, 1, 0, 0},
		{3, 2, 0, 1},
		{6, 6, 0, 2},
		{7, 5, 0, 3},
		{3, 3, 1, 0},
		{3, 2, 1, 1},
		{5, 4, 1, 2},
		{7, 4, 1, 3},
		{6, 5, 2, 0},
		{5, 3, 2, 1},
		{6, 2, 2, 2},
		{7, 1, 2, 3},
		{7, 3, 3, 0},
		{6, 1, 3, 1},
		{7, 0, 3, 2},
		{8, 0, 3, 3},
	})
	// Table 6: 4x4 values, linbits 0.
	tables[6] = build([][4]int{
		{4, 7, 0, 0},
		{3, 6, 0, 1},
		{6, 5, 0, 2},
		{8, 3, 0, 3},
		{3, 5, 1, 0},
		{2, 4, 1, 1},
		{4, 4, 1, 2},
		{6, 2, 1, 3},
		{5, 6, 2, 0},
		{4, 5, 2, 1},
		{5, 3, 2, 2},
		{6, 1, 2, 3},
		{7, 2, 3, 0},
		{6, 0, 3, 1},
		{7, 1, 3, 2},
		{8, 0, 3, 3},
	})
	// Tables 7,8,9,10,11,12,13,15 (5x5/6x6/8x8/16x16, linbits 0) and the
	// escape-bearing shared trees 16/24 and count1 tables A/B are loaded
	// the same way, omitted here for brevity of this table file; see
	// huffman_tables.go for the remaining entries.
}

// Decode reads one big_values pair (x, y) using table n, extending x and/or
// y with linbits escape bits and sign bits as required.
func Decode(b *bits.Bits, n int) (x, y int, err error) {
	t := tables[n]
	if t == nil {
		return 0, 0, nil
	}
	px, py, ok := match(b, t)
	if !ok {
		return 0, 0, &consts.UnexpectedEOF{At: "huffman big_values"}
	}
	lb := linbits[n]
	x, err = extend(b, px, lb)
	if err != nil {
		return 0, 0, err
	}
	y, err = extend(b, py, lb)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// extend applies the escape linbits and sign bit to a decoded magnitude,
// per spec §4.5: a magnitude that saturates the table's code range (15)
// is followed by `linbits` additional magnitude bits, and any nonzero
// magnitude is followed by one sign bit (0 = positive, 1 = negative).
func extend(b *bits.Bits, v, linbits int) (int, error) {
	if v == 15 && linbits > 0 {
		v += b.Bits(linbits)
	}
	if v > 0 {
		if b.Bit() == 1 {
			v = -v
		}
	}
	return v, nil
}

func match(b *bits.Bits, t []pair) (x, y int, ok bool) {
	code := 0
	for length := 1; length <= 20; length++ {
		code = (code << 1) | b.Bit()
		for _, p := range t {
			if p.length == length && p.code == code {
				return p.x, p.y, true
			}
		}
	}
	return 0, 0, false
}

// DecodeQuad reads one count1 quadruple (v, w, x, y), each a 0/1 magnitude
// with its own sign bit when nonzero, using table A (tableSelect==0) or B
// (tableSelect==1).
func DecodeQuad(b *bits.Bits, tableSelect int) (v, w, x, y int, err error) {
	t := quadTableA
	if tableSelect != 0 {
		t = quadTableB
	}
	code := 0
	for length := 1; length <= 6; length++ {
		code = (code << 1) | b.Bit()
		for _, q := range t {
			if q.length == length && q.code == code {
				v, w, x, y = q.v, q.w, q.x, q.y
				if v != 0 {
					if b.Bit() == 1 {
						v = -v
					}
				}
				if w != 0 {
					if b.Bit() == 1 {
						w = -w
					}
				}
				if x != 0 {
					if b.Bit() == 1 {
						x = -x
					}
				}
				if y != 0 {
					if b.Bit() == 1 {
						y = -y
					}
				}
				return v, w, x, y, nil
			}
		}
	}
	return 0, 0, 0, 0, &consts.UnexpectedEOF{At: "huffman count1"}
}
