package encoding_test

import (
	"fmt"

	"github.com/arloliu/linecode/encoding"
	"github.com/arloliu/linecode/format"
)

func ExampleEncode() {
	levels, err := encoding.Encode([]encoding.Bit{0, 0, 1, 0}, format.SchemeManchester)
	if err != nil {
		panic(err)
	}
	fmt.Println(levels)
	// Output: [0 1 0 1 1 0 0 1]
}

func ExampleDecode() {
	// the first symbol has no mid transition
	levels := []encoding.Level{1, 1, 0, 1, 1, 0, 0, 1}

	bits, warnings, err := encoding.Decode(levels, format.SchemeManchester)
	if err != nil {
		panic(err)
	}
	fmt.Println(bits)
	for _, w := range warnings {
		fmt.Println(w)
	}
	fmt.Println(encoding.StripPadding(bits, warnings))
	// Output:
	// [0 0 1 0 0 0 0 0]
	// InvalidTransition at symbol 0 (level 0): recovered bit 0
	// Padding: appended 4 bits
	// [0 0 1 0]
}
