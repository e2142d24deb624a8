package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	soundDataSize  = 3
	scriptDataSize = 52
)

// GameSetting is a named engine setting (GMST).
type GameSetting struct {
	Base
	ID    string
	Value GameSettingValue
}

// GameSettingValue is the value of a game setting. The implementations are
// GameSettingString, GameSettingInt and GameSettingFloat. A nil value writes
// no value chunk.
type GameSettingValue interface {
	gameSettingValue()
}

type (
	GameSettingString string
	GameSettingInt    int32
	GameSettingFloat  float32
)

func (GameSettingString) gameSettingValue() {}
func (GameSettingInt) gameSettingValue()    {}
func (GameSettingFloat) gameSettingValue()  {}

func (*GameSetting) Tag() format.Tag    { return TagGMST }
func (*GameSetting) TypeName() string   { return "GameSetting" }
func (m *GameSetting) EditorID() string { return m.ID }

func (m *GameSetting) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagSTRV:
			m.Value = GameSettingString(c.str())
		case tagINTV:
			if c.expect(4) {
				m.Value = GameSettingInt(c.I32())
			}
		case tagFLTV:
			if c.expect(4) {
				m.Value = GameSettingFloat(c.F32())
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *GameSetting) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	switch v := m.Value.(type) {
	case GameSettingString:
		// An empty string is still a string value.
		p := w.BeginChunk(tagSTRV)
		w.String(string(v))
		w.EndChunk(p)
	case GameSettingInt:
		writeI32(w, tagINTV, int32(v))
	case GameSettingFloat:
		writeF32(w, tagFLTV, float32(v))
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// GlobalVariable is a script-visible global (GLOB). The value is stored as a
// float whatever the declared type. A zero Type writes no FNAM chunk.
type GlobalVariable struct {
	Base
	ID    string
	Type  GlobalType
	Value float32
}

func (*GlobalVariable) Tag() format.Tag    { return TagGLOB }
func (*GlobalVariable) TypeName() string   { return "GlobalVariable" }
func (m *GlobalVariable) EditorID() string { return m.ID }

func (m *GlobalVariable) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			if c.expect(1) {
				m.Type = stream.EnumU8[GlobalType](c.Reader)
			}
		case tagFLTV:
			if c.expect(4) {
				m.Value = c.F32()
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *GlobalVariable) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	if m.Type != 0 {
		writeU8(w, tagFNAM, uint8(m.Type))
	}
	writeF32(w, tagFLTV, m.Value)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Sound is a sound file with its playback settings (SOUN).
type Sound struct {
	Base
	ID       string
	FileName string
	Data     SoundData
}

// SoundData is the DATA block of a sound.
type SoundData struct {
	Volume   uint8
	MinRange uint8
	MaxRange uint8
}

func (*Sound) Tag() format.Tag    { return TagSOUN }
func (*Sound) TypeName() string   { return "Sound" }
func (m *Sound) EditorID() string { return m.ID }

func (m *Sound) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.FileName = c.str()
		case tagDATA:
			if c.expect(soundDataSize) {
				m.Data = SoundData{Volume: c.U8(), MinRange: c.U8(), MaxRange: c.U8()}
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Sound) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.FileName)
	w.Chunk(tagDATA, soundDataSize, func(w *stream.Writer) {
		w.U8(m.Data.Volume)
		w.U8(m.Data.MinRange)
		w.U8(m.Data.MaxRange)
	})
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// SoundGen binds a sound to a creature event (SNDG).
type SoundGen struct {
	Base
	ID       string
	Type     SoundGenType
	Creature string
	Sound    string
}

func (*SoundGen) Tag() format.Tag    { return TagSNDG }
func (*SoundGen) TypeName() string   { return "SoundGen" }
func (m *SoundGen) EditorID() string { return m.ID }

func (m *SoundGen) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagDATA:
			if c.expect(4) {
				m.Type = stream.EnumU32[SoundGenType](c.Reader)
			}
		case tagCNAM:
			m.Creature = c.str()
		case tagSNAM:
			m.Sound = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *SoundGen) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeU32(w, tagDATA, uint32(m.Type))
	writeString(w, tagCNAM, m.Creature)
	writeString(w, tagSNAM, m.Sound)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// StartScript is a script run when the game starts (SSCR). The DATA chunk
// holds its identifier.
type StartScript struct {
	Base
	ID     string
	Script string
}

func (*StartScript) Tag() format.Tag    { return TagSSCR }
func (*StartScript) TypeName() string   { return "StartScript" }
func (m *StartScript) EditorID() string { return m.ID }

func (m *StartScript) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagDATA:
			m.ID = d.id(c)
		case tagNAME:
			m.Script = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *StartScript) encode(w *stream.Writer) error {
	writeID(w, tagDATA, m.ID)
	writeString(w, tagNAME, m.Script)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// Script is a compiled script with its source (SCPT).
type Script struct {
	Base
	Header    ScriptHeader
	Variables []byte
	Bytecode  []byte
	Text      string
}

// ScriptHeader is the SCHD data block. It carries the script name, which is
// the script's identity.
type ScriptHeader struct {
	ID              string
	NumShorts       uint32
	NumLongs        uint32
	NumFloats       uint32
	BytecodeLength  uint32
	VariablesLength uint32
}

func (h *ScriptHeader) decode(r *stream.Reader) {
	h.ID = r.FixedString(stream.IDLength)
	h.NumShorts = r.U32()
	h.NumLongs = r.U32()
	h.NumFloats = r.U32()
	h.BytecodeLength = r.U32()
	h.VariablesLength = r.U32()
}

func (h *ScriptHeader) encode(w *stream.Writer) {
	w.FixedString(h.ID, stream.IDLength)
	w.U32(h.NumShorts)
	w.U32(h.NumLongs)
	w.U32(h.NumFloats)
	w.U32(h.BytecodeLength)
	w.U32(h.VariablesLength)
}

func (*Script) Tag() format.Tag    { return TagSCPT }
func (*Script) TypeName() string   { return "Script" }
func (m *Script) EditorID() string { return m.Header.ID }

func (m *Script) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagSCHD:
			if c.expect(scriptDataSize) && d.claim(c) {
				m.Header.decode(c.Reader)
			}
		case tagSCVR:
			m.Variables = c.Rest()
		case tagSCDT:
			m.Bytecode = c.Rest()
		case tagSCTX:
			m.Text = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Script) encode(w *stream.Writer) error {
	w.Chunk(tagSCHD, scriptDataSize, m.Header.encode)
	writeRaw(w, tagSCVR, m.Variables)
	writeRaw(w, tagSCDT, m.Bytecode)
	writeText(w, tagSCTX, m.Text)
	writeDeleted(w, m.Deleted())

	return w.Err()
}

// LandscapeTexture is a terrain texture (LTEX).
type LandscapeTexture struct {
	Base
	ID       string
	Index    uint32
	FileName string
}

func (*LandscapeTexture) Tag() format.Tag    { return TagLTEX }
func (*LandscapeTexture) TypeName() string   { return "LandscapeTexture" }
func (m *LandscapeTexture) EditorID() string { return m.ID }

func (m *LandscapeTexture) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagINTV:
			if c.expect(4) {
				m.Index = c.U32()
			}
		case tagDATA:
			m.FileName = c.str()
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *LandscapeTexture) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeU32(w, tagINTV, m.Index)
	writeString(w, tagDATA, m.FileName)
	writeDeleted(w, m.Deleted())

	return w.Err()
}
