// Copyright © 2019, Oleksandr Krykovliuk <k33nice@gmail.com>.
// Use of this source code is governed by the
// MIT license that can be found in the LICENSE file.

package radix_test

import (
	"fmt"
	"os"

	"github.com/k33nice/radix"
)

func Example() {
	tree, err := radix.New[uint64, string]()
	if err != nil {
		panic(err)
	}
	defer tree.Destroy()

	for _, key := range []uint64{5, 1, 1 << 20, 3} {
		tree.Insert(key, fmt.Sprint("v", key))
	}
	tree.Delete(1)

	value, ok := tree.Find(1 << 20)
	fmt.Println(value, ok, tree.Height())

	for key, value := range tree.All() {
		fmt.Println(key, value)
	}

	tree.Dump(os.Stdout)

	// Output:
	// v1048576 true 3
	// 5 v5
	// 1048576 v1048576
	// 3 v3
	// 0x3	v3
	// 0x5	v5
	// 0x100000	v1048576
}

func Example_setOnce() {
	tree, _ := radix.New[uint32, string](radix.WithDigitBits(4))

	tree.Insert(10, "first")
	actual, loaded, _ := tree.Insert(10, "second")
	fmt.Println(actual, loaded)

	// Output:
	// first true
}
