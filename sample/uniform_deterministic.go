/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// keyedBufLen is the number of key stream bytes produced per nonce.
const keyedBufLen = 512

// keyedSource is a deterministic Source expanding a 32 byte key
// into a salsa20 key stream. The nonce counts the keyedBufLen byte
// buffers (eight salsa20 blocks, 64 values each), so the stream never
// repeats for a given key.
type keyedSource struct {
	key     *[32]byte
	counter uint64
	buf     []byte
}

// NewKeyedSource returns a Source producing a (deterministic) sequence
// of uniform values. The same key always yields the same sequence.
func NewKeyedSource(key *[32]byte) Source {
	return &keyedSource{
		key: key,
	}
}

func (k *keyedSource) Float64() (float64, error) {
	if len(k.buf) < 8 {
		k.refill()
	}
	r := binary.LittleEndian.Uint64(k.buf[:8])
	k.buf = k.buf[8:]

	return toUnit(r), nil
}

func (k *keyedSource) refill() {
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, k.counter)
	k.counter++

	in := make([]byte, keyedBufLen) // input is initialized to zeros
	out := make([]byte, keyedBufLen)
	salsa20.XORKeyStream(out, in, nonce, k.key)
	k.buf = out
}
