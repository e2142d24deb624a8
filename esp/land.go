package esp

import (
	"fmt"

	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

// LandVertices is the number of vertices along one side of a landscape cell.
const LandVertices = 65

const (
	landVertexCount     = LandVertices * LandVertices
	vertexNormalsSize   = landVertexCount * 3
	vertexHeightsSize   = 4 + landVertexCount + 3
	worldMapHeightsSize = 81
	vertexColorsSize    = landVertexCount * 3
	textureIndicesSize  = 16 * 16 * 2
	pathGridDataSize    = 12
	pathGridPointSize   = 16
	pathGridConnSize    = 4
)

// Landscape is the terrain of one exterior cell (LAND). It is keyed by its
// grid coordinates.
type Landscape struct {
	Base
	Grid            [2]int32
	LandscapeFlags  LandscapeFlags
	VertexNormals   *[landVertexCount][3]int8
	VertexHeights   *VertexHeights
	WorldMapHeights *[worldMapHeightsSize]int8
	VertexColors    *[landVertexCount][3]uint8
	TextureIndices  *[16][16]uint16
}

// VertexHeights is the VHGT block: a base height and per-vertex deltas.
type VertexHeights struct {
	Offset  float32
	Deltas  [landVertexCount]int8
	Unknown [3]uint8
}

func (*Landscape) Tag() format.Tag  { return TagLAND }
func (*Landscape) TypeName() string { return "Landscape" }

// EditorID returns the grid coordinates as "x,y".
func (m *Landscape) EditorID() string {
	return fmt.Sprintf("%d,%d", m.Grid[0], m.Grid[1])
}

func (m *Landscape) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagINTV:
			if c.expect(8) && d.claim(c) {
				m.Grid = [2]int32{c.I32(), c.I32()}
			}
		case tagDATA:
			if c.expect(4) {
				m.LandscapeFlags = stream.FlagsU32[LandscapeFlags](c.Reader)
			}
		case tagVNML:
			if c.expect(vertexNormalsSize) {
				normals := new([landVertexCount][3]int8)
				b := c.Bytes(vertexNormalsSize)
				for i := range normals {
					normals[i] = [3]int8{int8(b[3*i]), int8(b[3*i+1]), int8(b[3*i+2])}
				}
				m.VertexNormals = normals
			}
		case tagVHGT:
			if c.expect(vertexHeightsSize) {
				h := &VertexHeights{Offset: c.F32()}
				for i, v := range c.Bytes(landVertexCount) {
					h.Deltas[i] = int8(v)
				}
				c.ReadFull(h.Unknown[:])
				m.VertexHeights = h
			}
		case tagWNAM:
			if c.expect(worldMapHeightsSize) {
				heights := new([worldMapHeightsSize]int8)
				for i, v := range c.Bytes(worldMapHeightsSize) {
					heights[i] = int8(v)
				}
				m.WorldMapHeights = heights
			}
		case tagVCLR:
			if c.expect(vertexColorsSize) {
				colors := new([landVertexCount][3]uint8)
				b := c.Bytes(vertexColorsSize)
				for i := range colors {
					copy(colors[i][:], b[3*i:3*i+3])
				}
				m.VertexColors = colors
			}
		case tagVTEX:
			if c.expect(textureIndicesSize) {
				textures := new([16][16]uint16)
				for i := range textures {
					for j := range textures[i] {
						textures[i][j] = c.U16()
					}
				}
				m.TextureIndices = textures
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Landscape) encode(w *stream.Writer) error {
	w.Chunk(tagINTV, 8, func(w *stream.Writer) {
		w.I32(m.Grid[0])
		w.I32(m.Grid[1])
	})
	writeU32(w, tagDATA, uint32(m.LandscapeFlags))
	if m.VertexNormals != nil {
		w.Chunk(tagVNML, vertexNormalsSize, func(w *stream.Writer) {
			for _, n := range m.VertexNormals {
				w.I8(n[0])
				w.I8(n[1])
				w.I8(n[2])
			}
		})
	}
	if h := m.VertexHeights; h != nil {
		w.Chunk(tagVHGT, vertexHeightsSize, func(w *stream.Writer) {
			w.F32(h.Offset)
			for _, v := range h.Deltas {
				w.I8(v)
			}
			w.Raw(h.Unknown[:])
		})
	}
	if m.WorldMapHeights != nil {
		w.Chunk(tagWNAM, worldMapHeightsSize, func(w *stream.Writer) {
			for _, v := range m.WorldMapHeights {
				w.I8(v)
			}
		})
	}
	if m.VertexColors != nil {
		w.Chunk(tagVCLR, vertexColorsSize, func(w *stream.Writer) {
			for _, c := range m.VertexColors {
				w.Raw(c[:])
			}
		})
	}
	if m.TextureIndices != nil {
		w.Chunk(tagVTEX, textureIndicesSize, func(w *stream.Writer) {
			for _, row := range m.TextureIndices {
				for _, v := range row {
					w.U16(v)
				}
			}
		})
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// PathGrid is the AI path grid of a cell (PGRD). It is keyed by the name of
// the cell it belongs to.
type PathGrid struct {
	Base
	Cell        string
	Data        PathGridData
	// Points and Connections are written when non-nil, so an empty chunk
	// read from a file is written back.
	Points      []PathGridPoint
	Connections []uint32
}

// PathGridData is the DATA block of a path grid.
type PathGridData struct {
	Grid        [2]int32
	Granularity uint16
	PointCount  uint16
}

// PathGridPoint is one node of a path grid. Connections of all points are
// stored back to back in PathGrid.Connections.
type PathGridPoint struct {
	Location        [3]int32
	AutoGenerated   uint8
	ConnectionCount uint8
}

func (*PathGrid) Tag() format.Tag    { return TagPGRD }
func (*PathGrid) TypeName() string   { return "PathGrid" }
func (m *PathGrid) EditorID() string { return m.Cell }

func (m *PathGrid) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagDATA:
			if c.expect(pathGridDataSize) {
				m.Data = PathGridData{
					Grid:        [2]int32{c.I32(), c.I32()},
					Granularity: c.U16(),
					PointCount:  c.U16(),
				}
			}
		case tagNAME:
			m.Cell = d.id(c)
		case tagPGRP:
			if c.size%pathGridPointSize != 0 {
				c.expect(c.size / pathGridPointSize * pathGridPointSize)
				return nil
			}
			m.Points = make([]PathGridPoint, c.size/pathGridPointSize)
			for i := range m.Points {
				p := &m.Points[i]
				p.Location = [3]int32{c.I32(), c.I32(), c.I32()}
				p.AutoGenerated = c.U8()
				p.ConnectionCount = c.U8()
				c.Skip(2)
			}
		case tagPGRC:
			if c.size%pathGridConnSize != 0 {
				c.expect(c.size / pathGridConnSize * pathGridConnSize)
				return nil
			}
			m.Connections = make([]uint32, c.size/pathGridConnSize)
			for i := range m.Connections {
				m.Connections[i] = c.U32()
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *PathGrid) encode(w *stream.Writer) error {
	w.Chunk(tagDATA, pathGridDataSize, func(w *stream.Writer) {
		w.I32(m.Data.Grid[0])
		w.I32(m.Data.Grid[1])
		w.U16(m.Data.Granularity)
		w.U16(m.Data.PointCount)
	})
	writeID(w, tagNAME, m.Cell)
	if m.Points != nil {
		w.Chunk(tagPGRP, len(m.Points)*pathGridPointSize, func(w *stream.Writer) {
			for _, p := range m.Points {
				w.I32(p.Location[0])
				w.I32(p.Location[1])
				w.I32(p.Location[2])
				w.U8(p.AutoGenerated)
				w.U8(p.ConnectionCount)
				w.Zeros(2)
			}
		})
	}
	if m.Connections != nil {
		w.Chunk(tagPGRC, len(m.Connections)*pathGridConnSize, func(w *stream.Writer) {
			for _, v := range m.Connections {
				w.U32(v)
			}
		})
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}
