package huffman_test

import (
	"fmt"
	"os"

	huffman "github.com/chronos-tachyon/hufftree"
)

func Example() {
	e, err := huffman.FromText("abracadabra")
	if err != nil {
		panic(err)
	}

	back, err := huffman.FromEncoded(e.Encoded(), e.Root())
	if err != nil {
		panic(err)
	}

	fmt.Println(len(e.Encoded()), huffman.Text(back))
	// Output: 23 abracadabra
}

func ExampleDictionary_Dump() {
	root, err := huffman.BuildTree(huffman.Count([]rune("aaaabbc")))
	if err != nil {
		panic(err)
	}

	dict, err := huffman.BuildDictionary(root)
	if err != nil {
		panic(err)
	}

	_, _ = dict.Dump(os.Stdout)
	// Output:
	// Dictionary{
	// 	Encode('a') = "1"
	// 	Encode('b') = "01"
	// 	Encode('c') = "00"
	// }
}
