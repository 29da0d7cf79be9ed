package types_test

import (
	"fmt"

	"github.com/matzehuels/analogue/pkg/types"
)

func ExamplePool_DisplayName() {
	pool := types.NewPool()
	u8, _ := pool.UnsignedInt(8)
	block, _ := pool.FixedArray(u8, 16)
	stream, _ := pool.VariableArray(block)
	packet, _ := pool.Define("Packet",
		types.Field{Name: "header", Type: block},
		types.Field{Name: "body", Type: stream},
	)
	handle, _ := pool.Alias(packet)

	for _, id := range []types.TypeID{u8, block, stream, packet, handle} {
		fmt.Println(pool.DisplayName(id))
	}
	// Output:
	// u8
	// u8[16]
	// u8[16][]
	// Packet
	// Packet
}
