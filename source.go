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

package mp3

import (
	"bufio"
	"io"

	"github.com/gomp3dec/mp3iii/id3"
	"github.com/gomp3dec/mp3iii/internal/frameheader"
)

// source wraps the caller's io.Reader in a bufio.Reader, so the leading
// ID3v2 tag check can Peek without losing bytes on a short or tag-less
// stream. It has no seek/rewind ability, matching a pure io.Reader-based
// decoder (spec §6: the core decoder never assumes io.Seeker).
type source struct {
	br *bufio.Reader
}

func newSource(r io.Reader) *source {
	return &source{br: bufio.NewReaderSize(r, 4096)}
}

// ReadFull reads exactly len(buf) bytes, satisfying maindata.FullReader.
func (s *source) ReadFull(buf []byte) (int, error) {
	n, err := io.ReadFull(s.br, buf)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n, err
}

// skipLeadingTag consumes a leading ID3v2 tag, if present, leaving the
// stream positioned at the first frame sync candidate. Recognition and
// parsing are delegated to id3.SkipLeadingTag (bogem/id3v2/v2 underneath),
// which only Peeks the magic bytes it needs, so a tag-less or short
// stream is left completely intact (spec §5: tag parsing is advisory and
// must never consume frame data).
func (s *source) skipLeadingTag() error {
	_, err := id3.SkipLeadingTag(s.br)
	return err
}

// readCRC discards the 2-byte CRC word that follows the header when the
// protection bit indicates one is present.
func (s *source) readCRC() error {
	var buf [2]byte
	_, err := s.ReadFull(buf[:])
	return err
}

// readHeader resynchronizes to the next structurally valid frame header
// (sync word, reserved fields): it reads 4 bytes, and while they don't
// form a valid header, shifts in one byte at a time and rescans. Layer
// and version are not resync criteria -- a Layer I/II or MPEG-2 frame is
// a valid header the caller reports on, not garbage to scan past.
func (s *source) readHeader() (frameheader.FrameHeader, error) {
	var buf [4]byte
	if _, err := s.ReadFull(buf[:]); err != nil {
		return 0, err
	}
	h := frameheader.FrameHeader(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]))
	for !h.IsValid() {
		buf[0], buf[1], buf[2] = buf[1], buf[2], buf[3]
		var next [1]byte
		if _, err := s.ReadFull(next[:]); err != nil {
			return 0, err
		}
		buf[3] = next[0]
		h = frameheader.FrameHeader(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]))
	}
	return h, nil
}
