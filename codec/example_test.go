package codec_test

import (
	"fmt"
	"log"

	"github.com/oaskit/oaspath/codec"
)

// Example demonstrates converting a YAML path item to indented JSON.
func Example() {
	input := []byte(`
get:
  operationId: listPets
summary: Pets
x-owner: pets-team
`)
	item, err := codec.DecodePathItem(input)
	if err != nil {
		log.Fatalf("failed to decode: %v", err)
	}
	out, err := codec.Encode(item, codec.WithFormat(codec.FormatJSON), codec.WithIndent(2))
	if err != nil {
		log.Fatalf("failed to encode: %v", err)
	}
	fmt.Print(string(out))
	// Output:
	// {
	//   "summary": "Pets",
	//   "get": {
	//     "operationId": "listPets"
	//   },
	//   "x-owner": "pets-team"
	// }
}
