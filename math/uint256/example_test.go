// Copyright (c) 2021-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uint256_test

import (
	"fmt"

	"github.com/decred/powcore/math/uint256"
)

// This example demonstrates calculating the result of dividing a max unsigned
// 256-bit integer by a max unsigned 128-bit integer and outputting that result
// in hex with leading zeros.
func Example_basicUsage() {
	// Calculate maxUint256 / maxUint128 and output it in hex with leading zeros.
	maxUint128 := new(uint256.Uint256).SetUint64(1).Lsh(128).SubUint64(1)
	result := new(uint256.Uint256).Not().Div(maxUint128)
	fmt.Printf("result: %064x\n", result)

	// Output:
	// result: 0000000000000000000000000000000100000000000000000000000000000001
}

// This example demonstrates computing the expected number of hashes needed to
// find a block hash at or below a target by evaluating 2^256 / (target+1)
// without representing 2^256 directly.
func Example_expectedWork() {
	target := new(uint256.Uint256).SetUint64(0xffff).Lsh(208)
	divisor := new(uint256.Uint256).Set(target).Increment()
	work := new(uint256.Uint256).Set(target).Not().Div(divisor).Increment()
	fmt.Printf("work: %#x\n", work)

	// Output:
	// work: 0x100010001
}
