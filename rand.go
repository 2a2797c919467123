// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the package random state.

package bigmath

import (
	"math/big"
	"math/rand"
	"sync"
	"time"
)

var rnd = struct {
	sync.Mutex
	r *rand.Rand
}{
	r: rand.New(rand.NewSource(time.Now().UnixNano())),
}

// SetRandSource sets the source used by RandomBits and RandomRange. If src is
// nil, the package has no random source: RandomBits and RandomRange return 0
// and RandomSeed installs a new default source.
func SetRandSource(src rand.Source) {
	rnd.Lock()
	defer rnd.Unlock()
	if src == nil {
		rnd.r = nil
		return
	}
	rnd.r = rand.New(src)
}

// RandomSeed seeds the random state with the low 64 bits of seed. Sequences
// produced by RandomBits and RandomRange after two calls with the same seed
// are identical.
func RandomSeed(seed *Int) {
	s := new(big.Int).And(&seed.v, new(big.Int).SetUint64(^uint64(0)))
	rnd.Lock()
	defer rnd.Unlock()
	if rnd.r == nil {
		rnd.r = rand.New(rand.NewSource(int64(s.Uint64())))
		return
	}
	rnd.r.Seed(int64(s.Uint64()))
}

// RandomBits returns a uniformly distributed random integer in [0, 2**n).
// RandomBits panics with an InvalidArgument error if n < 0.
func RandomBits(n int) *Int {
	if n < 0 {
		panic(invalidArgument("bigmath: RandomBits: negative bit count %d", n))
	}
	z := new(Int)
	rnd.Lock()
	defer rnd.Unlock()
	if rnd.r == nil {
		return z
	}
	lim := new(big.Int).Lsh(big.NewInt(1), uint(n))
	z.v.Rand(rnd.r, lim)
	return z
}

// RandomRange returns a uniformly distributed random integer in [min, max].
// RandomRange panics with an InvalidArgument error if max < min.
func RandomRange(min, max *Int) *Int {
	if max.Lt(min) {
		panic(invalidArgument("bigmath: RandomRange: empty range [%s, %s]", min, max))
	}
	z := new(Int)
	rnd.Lock()
	defer rnd.Unlock()
	if rnd.r == nil {
		return z
	}
	n := new(big.Int).Sub(&max.v, &min.v)
	n.Add(n, big.NewInt(1))
	z.v.Rand(rnd.r, n)
	z.v.Add(&z.v, &min.v)
	return z
}
