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

package maindata_test

import (
	"bytes"
	"testing"

	"github.com/gomp3dec/mp3iii/internal/bits"
	. "github.com/gomp3dec/mp3iii/internal/maindata"
)

type sliceReader struct {
	buf *bytes.Reader
}

func (s *sliceReader) ReadFull(p []byte) (int, error) {
	return s.buf.Read(p)
}

// TestReservoirZeroOffsetIsByteExact checks spec property 10: when
// main_data_begin == 0, the reassembled reservoir is exactly the bytes
// just read from the stream, independent of any previous frame.
func TestReservoirZeroOffsetIsByteExact(t *testing.T) {
	want := []byte{1, 2, 3, 4, 5}
	r := &sliceReader{buf: bytes.NewReader(want)}

	cur, ok, err := ReadReservoir(r, nil, len(want), 0)
	if err != nil {
		t.Fatalf("ReadReservoir: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true for zero offset")
	}
	if cur.LenInBytes() != len(want) {
		t.Fatalf("LenInBytes() = %d, want %d", cur.LenInBytes(), len(want))
	}
	for i, b := range want {
		got := cur.Bits(8)
		if got != int(b) {
			t.Fatalf("byte %d = %d, want %d", i, got, b)
		}
	}
}

// TestReservoirNonzeroOffsetHasCorrectLength checks spec property 11: when
// main_data_begin > 0, the reassembled reservoir includes exactly offset
// bytes borrowed from the previous frame's tail plus this frame's size
// bytes.
func TestReservoirNonzeroOffsetHasCorrectLength(t *testing.T) {
	prevBytes := []byte{10, 20, 30, 40, 50}
	prev := bits.New(prevBytes)

	size, offset := 4, 3
	want := []byte{100, 101, 102, 103}
	r := &sliceReader{buf: bytes.NewReader(want)}

	cur, ok, err := ReadReservoir(r, prev, size, offset)
	if err != nil {
		t.Fatalf("ReadReservoir: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true, prev has enough bytes")
	}
	if got := cur.LenInBytes(); got != offset+size {
		t.Fatalf("LenInBytes() = %d, want %d", got, offset+size)
	}
}

// TestReservoirUnderflowIsRecoverable checks spec §7: when the previous
// frame did not accumulate enough bytes to satisfy main_data_begin, the
// reservoir reports ok=false (the caller must skip this frame) but still
// consumes and retains the stream bytes so the next frame can resync.
func TestReservoirUnderflowIsRecoverable(t *testing.T) {
	prev := bits.New([]byte{1, 2})
	size, offset := 3, 10 // offset exceeds what prev holds

	want := []byte{9, 9, 9}
	r := &sliceReader{buf: bytes.NewReader(want)}

	cur, ok, err := ReadReservoir(r, prev, size, offset)
	if err != nil {
		t.Fatalf("ReadReservoir: %v", err)
	}
	if ok {
		t.Fatalf("expected ok=false on reservoir underflow")
	}
	if cur == nil {
		t.Fatalf("expected a non-nil cursor to carry state into the next frame")
	}
}
