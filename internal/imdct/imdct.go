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

// Package imdct implements the block-type-dependent 36-point (or 3x12-point
// for short blocks) inverse modified discrete cosine transform used by the
// hybrid synthesis stage, including its windowing per ISO/IEC 11172-3
// §2.4.3.4.10.
package imdct

import "math"

// Block types, matching the side information's block_type field.
const (
	BlockTypeNormal = 0
	BlockTypeStart  = 1
	BlockTypeShort  = 2
	BlockTypeStop   = 3
)

var imdctWinData [4][36]float32

var cosN12 [6][12]float32
var cosN36 [18][36]float32

func init() {
	// Block type 0: normal window (sine window over all 36 samples).
	for i := 0; i < 36; i++ {
		imdctWinData[BlockTypeNormal][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	// Block type 1: start window.
	for i := 0; i < 18; i++ {
		imdctWinData[BlockTypeStart][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}
	for i := 18; i < 24; i++ {
		imdctWinData[BlockTypeStart][i] = 1.0
	}
	for i := 24; i < 30; i++ {
		imdctWinData[BlockTypeStart][i] = float32(math.Sin(math.Pi / 12 * (float64(i) - 18 + 0.5)))
	}
	for i := 30; i < 36; i++ {
		imdctWinData[BlockTypeStart][i] = 0.0
	}
	// Block type 2: three short windows (12 samples each, sine windowed).
	for i := 0; i < 12; i++ {
		imdctWinData[BlockTypeShort][i] = float32(math.Sin(math.Pi / 12 * (float64(i) + 0.5)))
	}
	// Block type 3: stop window (mirror of start).
	for i := 0; i < 6; i++ {
		imdctWinData[BlockTypeStop][i] = 0.0
	}
	for i := 6; i < 12; i++ {
		imdctWinData[BlockTypeStop][i] = float32(math.Sin(math.Pi / 12 * (float64(i) - 6 + 0.5)))
	}
	for i := 12; i < 18; i++ {
		imdctWinData[BlockTypeStop][i] = 1.0
	}
	for i := 18; i < 36; i++ {
		imdctWinData[BlockTypeStop][i] = float32(math.Sin(math.Pi / 36 * (float64(i) + 0.5)))
	}

	for i := 0; i < 6; i++ {
		for j := 0; j < 12; j++ {
			cosN12[i][j] = float32(math.Cos(math.Pi / 24 * float64(2*j+1+6) * float64(2*i+1)))
		}
	}
	for i := 0; i < 18; i++ {
		for j := 0; j < 36; j++ {
			cosN36[i][j] = float32(math.Cos(math.Pi / 72 * float64(2*j+1+18) * float64(2*i+1)))
		}
	}
}

// imdct12 performs a 12-point IMDCT, producing 12 output samples from 6
// input samples.
func imdct12(in []float32) [12]float32 {
	var out [12]float32
	for i := 0; i < 12; i++ {
		var sum float32
		for j := 0; j < 6; j++ {
			sum += in[j] * cosN12[j][i]
		}
		out[i] = sum
	}
	return out
}

// imdct36 performs a 36-point IMDCT, producing 36 output samples from 18
// input samples.
func imdct36(in []float32) [36]float32 {
	var out [36]float32
	for i := 0; i < 36; i++ {
		var sum float32
		for j := 0; j < 18; j++ {
			sum += in[j] * cosN36[j][i]
		}
		out[i] = sum
	}
	return out
}

// Win computes the windowed IMDCT of an 18-sample frequency-domain input
// block, returning 36 time-domain samples ready for overlap-add. For
// blockType == BlockTypeShort, three 12-point IMDCTs are computed over
// consecutive 6-sample sub-blocks and accumulated into the 36-sample
// output at the standard 6-sample stagger.
func Win(in []float32, blockType int) []float32 {
	out := make([]float32, 36)
	if blockType == BlockTypeShort {
		for sb := 0; sb < 3; sb++ {
			sub := in[sb*6 : sb*6+6]
			w := imdct12(sub)
			iwd := imdctWinData[BlockTypeShort]
			for p := 0; p < 12; p++ {
				out[6*sb+p+6] += w[p] * iwd[p]
			}
		}
		return out
	}
	w := imdct36(in)
	iwd := imdctWinData[blockType]
	for i := 0; i < 36; i++ {
		out[i] = w[i] * iwd[i]
	}
	return out
}
