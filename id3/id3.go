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

// Package id3 skips a leading ID3v2 tag so the core frame decoder can
// resume straight at the first MP3 frame. It is never required for audio
// decoding (§1): a caller that doesn't care about tags can ignore this
// package entirely and scan for the frame sync word. Parsing itself is
// delegated to bogem/id3v2/v2, the same library go-musicfox uses for its
// tag reading and writing.
package id3

import (
	"io"

	"github.com/bogem/id3v2/v2"
)

// PeekReader is the minimal interface SkipLeadingTag needs: Peek lets it
// check for the "ID3" magic without consuming bytes when no tag is
// present. *bufio.Reader satisfies this.
type PeekReader interface {
	io.Reader
	Peek(n int) ([]byte, error)
}

// Tag re-exports the parsed tag type so callers that want Title/Artist/
// etc. don't need to import bogem/id3v2/v2 themselves.
type Tag = id3v2.Tag

// SkipLeadingTag consumes a leading ID3v2 tag from r, if present, and
// returns it; r is left positioned at the first byte after the tag.
// Parsing -- including synchsafe size decoding and the frame list walk
// -- is delegated entirely to id3v2.ParseReader.
//
// If r does not start with "ID3", SkipLeadingTag peeks only the 3 magic
// bytes and returns (nil, nil) without consuming anything, leaving a
// tag-less or too-short stream completely intact for the frame header
// scan that follows.
func SkipLeadingTag(r PeekReader) (*Tag, error) {
	magic, err := r.Peek(3)
	if err != nil {
		return nil, nil
	}
	if string(magic) != "ID3" {
		return nil, nil
	}
	tag, err := id3v2.ParseReader(r, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	return tag, nil
}
