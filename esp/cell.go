package esp

import (
	"fmt"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	cellDataSize       = 12
	atmosphereDataSize = 16
	referenceDataSize  = 24
	frmrIndexMask      = 0x00FFFFFF
	frmrMasterShift    = 24
)

// Cell is an interior cell or an exterior grid square with the object
// references placed in it (CELL).
//
// References before the NAM0 marker are persistent, those after it are
// temporary. The writer keeps that split.
type Cell struct {
	Base
	Name                 string
	Region               string
	WaterHeight          *float32
	Atmosphere           *AtmosphereData
	MapColor             *[4]uint8
	PersistentReferences []Reference
	TemporaryReferences  []Reference
	Data                 CellData
}

// CellData is the DATA block of a cell. Grid is only meaningful for
// exterior cells.
type CellData struct {
	Flags CellFlags
	Grid  [2]int32
}

// AtmosphereData is the AMBI block of an interior cell.
type AtmosphereData struct {
	Ambient    [4]uint8
	Sunlight   [4]uint8
	Fog        [4]uint8
	FogDensity float32
}

// Reference places an object in a cell.
type Reference struct {
	MasterIndex      uint8
	RefIndex         uint32
	Moved            *MovedReference
	ID               string
	Blocked          *uint8
	Scale            *float32
	Owner            string
	OwnerGlobal      string
	OwnerFaction     string
	OwnerFactionRank *int32
	Soul             string
	Charge           *float32
	Health           *int32
	Count            *uint32
	Destination      *TravelDestination
	LockLevel        *uint32
	Key              string
	Trap             string
	Deleted          bool
	Translation      [3]float32
	Rotation         [3]float32
}

// MovedReference records that a reference was moved into another cell. Cell
// names an interior destination, Grid an exterior one.
type MovedReference struct {
	RefNumber uint32
	Cell      string
	Grid      *[2]int32
}

func (*Cell) Tag() format.Tag  { return TagCELL }
func (*Cell) TypeName() string { return "Cell" }

// EditorID returns the cell name for interiors and the grid coordinates as
// "x,y" for exteriors.
func (m *Cell) EditorID() string {
	if m.Data.Flags&CellInterior != 0 {
		return m.Name
	}

	return fmt.Sprintf("%d,%d", m.Data.Grid[0], m.Data.Grid[1])
}

// cellState tracks which reference the current chunk belongs to.
type cellState struct {
	cell      *Cell
	ref       *Reference
	moved     *MovedReference
	temporary bool
}

func (m *Cell) decode(d *decoder, r *stream.Reader) error {
	s := &cellState{cell: m}

	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagMVRF:
			if c.expect(4) {
				s.ref = nil
				s.moved = &MovedReference{RefNumber: c.U32()}
			}

			return nil
		case tagFRMR:
			if c.expect(4) {
				s.startReference(c.U32())
			}

			return nil
		case tagNAM0:
			if c.expect(4) {
				c.Skip(4)
				s.ref = nil
				s.temporary = true
			}

			return nil
		}

		if s.moved != nil {
			switch c.tag {
			case tagCNAM:
				s.moved.Cell = c.str()
				return nil
			case tagCNDT:
				if c.expect(8) {
					s.moved.Grid = &[2]int32{c.I32(), c.I32()}
				}

				return nil
			}
		}

		if s.ref != nil {
			return s.ref.decodeChunk(c)
		}

		return m.decodeChunk(d, c)
	})
}

func (s *cellState) startReference(frmr uint32) {
	ref := Reference{
		MasterIndex: uint8(frmr >> frmrMasterShift),
		RefIndex:    frmr & frmrIndexMask,
		Moved:       s.moved,
	}
	s.moved = nil

	refs := &s.cell.PersistentReferences
	if s.temporary {
		refs = &s.cell.TemporaryReferences
	}
	*refs = append(*refs, ref)
	s.ref = &(*refs)[len(*refs)-1]
}

func (m *Cell) decodeChunk(d *decoder, c *chunk) error {
	switch c.tag {
	case tagNAME:
		m.Name = d.id(c)
	case tagDATA:
		if c.expect(cellDataSize) {
			m.Data.Flags = stream.FlagsU32[CellFlags](c.Reader)
			m.Data.Grid = [2]int32{c.I32(), c.I32()}
		}
	case tagINTV:
		if c.expect(4) {
			height := float32(c.I32())
			m.WaterHeight = &height
		}
	case tagWHGT:
		if c.expect(4) {
			height := c.F32()
			m.WaterHeight = &height
		}
	case tagAMBI:
		if c.expect(atmosphereDataSize) {
			a := &AtmosphereData{}
			c.ReadFull(a.Ambient[:])
			c.ReadFull(a.Sunlight[:])
			c.ReadFull(a.Fog[:])
			a.FogDensity = c.F32()
			m.Atmosphere = a
		}
	case tagRGNN:
		m.Region = c.str()
	case tagNAM5:
		if c.expect(4) {
			color := [4]uint8{}
			c.ReadFull(color[:])
			m.MapColor = &color
		}
	case tagCNAM, tagCNDT:
		return c.fail(errs.ErrOrphanChunk)
	default:
		return errUnhandled
	}

	return nil
}

func (ref *Reference) decodeChunk(c *chunk) error {
	switch c.tag {
	case tagNAME:
		ref.ID = c.str()
	case tagUNAM:
		if c.expect(1) {
			v := c.U8()
			ref.Blocked = &v
		}
	case tagXSCL:
		if c.expect(4) {
			v := c.F32()
			ref.Scale = &v
		}
	case tagANAM:
		ref.Owner = c.str()
	case tagBNAM:
		ref.OwnerGlobal = c.str()
	case tagCNAM:
		ref.OwnerFaction = c.str()
	case tagINDX:
		if c.expect(4) {
			v := c.I32()
			ref.OwnerFactionRank = &v
		}
	case tagXSOL:
		ref.Soul = c.str()
	case tagXCHG:
		if c.expect(4) {
			v := c.F32()
			ref.Charge = &v
		}
	case tagINTV:
		if c.expect(4) {
			v := c.I32()
			ref.Health = &v
		}
	case tagNAM9:
		if c.expect(4) {
			v := c.U32()
			ref.Count = &v
		}
	case tagDODT:
		if c.expect(travelDestinationSize) {
			dest := &TravelDestination{}
			dest.decode(c.Reader)
			ref.Destination = dest
		}
	case tagDNAM:
		if ref.Destination == nil {
			return c.fail(errs.ErrOrphanChunk)
		}
		ref.Destination.Cell = c.str()
	case tagFLTV:
		if c.expect(4) {
			v := c.U32()
			ref.LockLevel = &v
		}
	case tagKNAM:
		ref.Key = c.str()
	case tagTNAM:
		ref.Trap = c.str()
	case tagDELE:
		ref.Deleted = true
		c.Skip(c.Len())
	case tagDATA:
		if c.expect(referenceDataSize) {
			ref.Translation = readLocation(c.Reader)
			ref.Rotation = readLocation(c.Reader)
		}
	default:
		return errUnhandled
	}

	return nil
}

func (ref *Reference) encode(w *stream.Writer) {
	if mv := ref.Moved; mv != nil {
		writeU32(w, tagMVRF, mv.RefNumber)
		writeString(w, tagCNAM, mv.Cell)
		if mv.Grid != nil {
			w.Chunk(tagCNDT, 8, func(w *stream.Writer) {
				w.I32(mv.Grid[0])
				w.I32(mv.Grid[1])
			})
		}
	}
	writeU32(w, tagFRMR, uint32(ref.MasterIndex)<<frmrMasterShift|ref.RefIndex&frmrIndexMask)
	writeString(w, tagNAME, ref.ID)
	if ref.Blocked != nil {
		writeU8(w, tagUNAM, *ref.Blocked)
	}
	if ref.Scale != nil {
		writeF32(w, tagXSCL, *ref.Scale)
	}
	writeString(w, tagANAM, ref.Owner)
	writeString(w, tagBNAM, ref.OwnerGlobal)
	writeString(w, tagCNAM, ref.OwnerFaction)
	if ref.OwnerFactionRank != nil {
		writeI32(w, tagINDX, *ref.OwnerFactionRank)
	}
	writeString(w, tagXSOL, ref.Soul)
	if ref.Charge != nil {
		writeF32(w, tagXCHG, *ref.Charge)
	}
	if ref.Health != nil {
		writeI32(w, tagINTV, *ref.Health)
	}
	if ref.Count != nil {
		writeU32(w, tagNAM9, *ref.Count)
	}
	if ref.Destination != nil {
		w.Chunk(tagDODT, travelDestinationSize, ref.Destination.encode)
		writeString(w, tagDNAM, ref.Destination.Cell)
	}
	if ref.LockLevel != nil {
		writeU32(w, tagFLTV, *ref.LockLevel)
	}
	writeString(w, tagKNAM, ref.Key)
	writeString(w, tagTNAM, ref.Trap)
	writeDeleted(w, ref.Deleted)
	w.Chunk(tagDATA, referenceDataSize, func(w *stream.Writer) {
		writeLocation(w, ref.Translation)
		writeLocation(w, ref.Rotation)
	})
}

func (m *Cell) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.Name)
	writeDeleted(w, m.Deleted())
	w.Chunk(tagDATA, cellDataSize, func(w *stream.Writer) {
		w.U32(uint32(m.Data.Flags))
		w.I32(m.Data.Grid[0])
		w.I32(m.Data.Grid[1])
	})
	// Legacy INTV water heights are normalized to WHGT.
	if m.WaterHeight != nil {
		writeF32(w, tagWHGT, *m.WaterHeight)
	}
	if a := m.Atmosphere; a != nil {
		w.Chunk(tagAMBI, atmosphereDataSize, func(w *stream.Writer) {
			w.Raw(a.Ambient[:])
			w.Raw(a.Sunlight[:])
			w.Raw(a.Fog[:])
			w.F32(a.FogDensity)
		})
	}
	writeString(w, tagRGNN, m.Region)
	if m.MapColor != nil {
		w.Chunk(tagNAM5, 4, func(w *stream.Writer) { w.Raw(m.MapColor[:]) })
	}
	for i := range m.PersistentReferences {
		m.PersistentReferences[i].encode(w)
	}
	if len(m.TemporaryReferences) > 0 {
		writeU32(w, tagNAM0, uint32(len(m.TemporaryReferences)))
		for i := range m.TemporaryReferences {
			m.TemporaryReferences[i].encode(w)
		}
	}

	return w.Err()
}
