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

// Command mp3play plays an MP3 file through the system's audio device. It
// exists to exercise the decoder against real files during development;
// file I/O, CLI flags and playback are not part of the core decoder (§1).
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/oto/v2"

	mp3 "github.com/gomp3dec/mp3iii"
)

func run() error {
	fp := "classic.mp3"
	if len(os.Args) > 1 {
		if nfp := os.Args[1]; nfp != "" {
			fp = nfp
		}
	}
	f, err := os.Open(fp)
	if err != nil {
		return err
	}
	defer f.Close()

	d, err := mp3.NewStreamDecoder(f)
	if err != nil {
		return err
	}
	// Decode the first frame so the sample rate and channel count are known.
	if _, err := d.Read(nil); err != nil {
		return err
	}

	c, ready, err := oto.NewContext(d.SampleRate(), d.Channels(), 2)
	if err != nil {
		return err
	}
	<-ready

	p := c.NewPlayer(d)
	defer p.Close()
	p.Play()

	for p.IsPlaying() {
		time.Sleep(500 * time.Millisecond)
	}
	fmt.Println()
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
