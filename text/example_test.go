package text_test

import (
	"fmt"

	"github.com/treeforest/easybase/alphabet"
	"github.com/treeforest/easybase/text"
)

// This example encodes plain text with the Base-32 Hex alphabet and parses
// it back.
func ExampleBase32FromString() {
	v, err := text.Base32FromString("1234567890", text.Options{Alphabet: alphabet.Base32Hex})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Encoded:", v)

	parsed, err := text.ParseBase32(v.String(), text.Options{Alphabet: alphabet.Base32Hex})
	if err != nil {
		fmt.Println(err)
		return
	}
	plain, _ := parsed.PlainText()
	fmt.Println("Plain:", plain)

	// Output:
	// Encoded: 64P36D1L6ORJGE9G
	// Plain: 1234567890
}

// This example appends a checksum to a Base-58 value.
func ExampleBase58_StringWithChecksum() {
	v, err := text.Base58FromString("1234567890", text.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v.StringWithChecksum())

	// Output:
	// K5zqBMZXFNFYSLJZTdx
}
