// Package pkg provides the core libraries for Analogue, a terminal renderer
// for the nodes of a visual node-graph editor.
//
// # Overview
//
// Analogue draws each node as a bordered box with a name row and typed port
// markers on its left and right edges, sized to the smallest area that keeps
// the name, the ports and their type hints legible. The pkg directory is
// organized as:
//
//  1. [types] - Arena of value types (unsigned ints, arrays, aliases, records)
//  2. [node] - Ports, port configurations, classifications and the [node.Library]
//  3. [render/grid] - Cell grids: an in-memory [grid.Buffer] and a tcell adapter
//  4. [render/nodeview] - Minimum-size computation and painting of one node
//  5. [graph] and [io] - Node-graph documents in JSON, YAML or TOML
//  6. [config], [errors], [observability], [buildinfo] - Ambient support
//
// # Architecture
//
// The typical data flow:
//
//	JSON/YAML/TOML document
//	         ↓
//	    [io] package (decode)
//	         ↓
//	    [graph] package (build types, declarations and nodes)
//	         ↓
//	    [render/nodeview] package (measure + paint)
//	         ↓
//	    [render/grid] buffer or terminal screen
//
// # Quick Start
//
//	doc, _ := io.ImportFile("graph.yaml")
//	lib, entries, _ := graph.Build(doc)
//
//	r := nodeview.New(lib, nil)
//	r.Bind(entries[0].Node)
//	buf, _ := r.Buffer()
//	fmt.Println(buf.String())
package pkg
