package nodeview

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/matzehuels/analogue/pkg/node"
)

// fingerprint hashes everything MinimumSize depends on that lives outside
// the renderer's library: the node's alias, classification and ports, and
// the display options. Types and declarations are append-only, so ids are
// hashed instead of resolved names.
func fingerprint(n *node.Node, opts *DisplayOptions) uint64 {
	buf := make([]byte, 0, 64)
	buf = binary.AppendUvarint(buf, uint64(len(n.Alias)))
	buf = append(buf, n.Alias...)

	buf = append(buf, byte(n.Class.Kind()))
	switch n.Class.Kind() {
	case node.ClassBuiltin:
		k, _ := n.Class.BuiltinKind()
		buf = append(buf, byte(k))
	case node.ClassStructInit:
		id, _ := n.Class.Record()
		buf = binary.AppendVarint(buf, int64(id))
	case node.ClassDefined:
		id, _ := n.Class.Declaration()
		buf = binary.AppendVarint(buf, int64(id))
	}

	ports := &n.Ports
	buf = append(buf, byte(ports.Strategy()), boolByte(opts.ShowTypeHints))
	buf = appendPrimary(buf, ports.PrimaryInput)
	buf = appendPrimary(buf, ports.PrimaryOutput)

	buf = binary.AppendUvarint(buf, uint64(ports.InputCount()))
	for i := 0; i < ports.InputCount(); i++ {
		p, _ := ports.Input(node.Slot(i))
		buf = binary.AppendVarint(buf, int64(p.Type))
	}
	buf = binary.AppendUvarint(buf, uint64(ports.OutputCount()))
	for i := 0; i < ports.OutputCount(); i++ {
		p, _ := ports.Output(node.Slot(i))
		buf = binary.AppendVarint(buf, int64(p.Type))
	}
	return xxhash.Sum64(buf)
}

func appendPrimary(buf []byte, get func() (node.Port, bool)) []byte {
	p, ok := get()
	if !ok {
		return append(buf, 0)
	}
	buf = append(buf, 1)
	return binary.AppendVarint(buf, int64(p.Type))
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
