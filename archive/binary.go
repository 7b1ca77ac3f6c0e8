package archive

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/traceforma/cpgraph/core"
)

// nodeRow and edgeRow are fixed-width, so nodes.tbl/edges.tbl are just
// flat arrays of these on disk. Byte order is big-endian throughout.

func encodeNodes(nodes []core.Node) []byte {
	buf := new(bytes.Buffer)
	for _, n := range nodes {
		_ = binary.Write(buf, binary.BigEndian, int64(n.Index))
		_ = binary.Write(buf, binary.BigEndian, n.EventIndex)
		_ = binary.Write(buf, binary.BigEndian, boolByte(n.IsStart))
		_ = binary.Write(buf, binary.BigEndian, n.TimestampNS)
	}
	return buf.Bytes()
}

const nodeRowSize = 8 + 8 + 1 + 8

func decodeNodes(data []byte) ([]core.Node, error) {
	if len(data)%nodeRowSize != 0 {
		return nil, fmt.Errorf("archive: nodes.tbl size %d not a multiple of row size %d", len(data), nodeRowSize)
	}
	r := bytes.NewReader(data)
	out := make([]core.Node, 0, len(data)/nodeRowSize)
	for r.Len() > 0 {
		var idx, ts int64
		var ev uint64
		var isStart byte
		if err := binary.Read(r, binary.BigEndian, &idx); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &ev); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &isStart); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &ts); err != nil {
			return nil, err
		}
		out = append(out, core.Node{
			Index:       core.NodeID(idx),
			EventIndex:  ev,
			IsStart:     isStart == 1,
			TimestampNS: ts,
		})
	}
	return out, nil
}

func encodeEdges(edges []core.Edge) []byte {
	buf := new(bytes.Buffer)
	for _, e := range edges {
		_ = binary.Write(buf, binary.BigEndian, int64(e.From))
		_ = binary.Write(buf, binary.BigEndian, int64(e.To))
		_ = binary.Write(buf, binary.BigEndian, e.Weight)
		_ = binary.Write(buf, binary.BigEndian, uint8(e.Category))
		if e.AttributedEvent != nil {
			_ = binary.Write(buf, binary.BigEndian, boolByte(true))
			_ = binary.Write(buf, binary.BigEndian, *e.AttributedEvent)
		} else {
			_ = binary.Write(buf, binary.BigEndian, boolByte(false))
			_ = binary.Write(buf, binary.BigEndian, uint64(0))
		}
	}
	return buf.Bytes()
}

const edgeRowSize = 8 + 8 + 8 + 1 + 1 + 8

func decodeEdges(data []byte) ([]core.Edge, error) {
	if len(data)%edgeRowSize != 0 {
		return nil, fmt.Errorf("archive: edges.tbl size %d not a multiple of row size %d", len(data), edgeRowSize)
	}
	r := bytes.NewReader(data)
	out := make([]core.Edge, 0, len(data)/edgeRowSize)
	for r.Len() > 0 {
		var from, to, weight int64
		var category uint8
		var hasAttributed byte
		var attributed uint64

		if err := binary.Read(r, binary.BigEndian, &from); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &to); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &weight); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &category); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &hasAttributed); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.BigEndian, &attributed); err != nil {
			return nil, err
		}

		edge := core.Edge{
			From:     core.NodeID(from),
			To:       core.NodeID(to),
			Weight:   weight,
			Category: core.EdgeCategory(category),
		}
		if hasAttributed == 1 {
			v := attributed
			edge.AttributedEvent = &v
		}
		out = append(out, edge)
	}
	return out, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
