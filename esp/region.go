package esp

import (
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/stream"
)

const (
	weatherChancesSize       = 10
	legacyWeatherChancesSize = 8
	regionSoundSize          = 33
)

// Region is a world region with its weather and ambient sounds (REGN).
type Region struct {
	Base
	ID             string
	Name           string
	WeatherChances WeatherChances
	SleepCreature  string
	MapColor       [4]uint8
	Sounds         []RegionSound
}

// WeatherChances holds the percentage chance of each weather type. Snow and
// Blizzard are absent from the short legacy layout and read as zero.
type WeatherChances struct {
	Clear    uint8
	Cloudy   uint8
	Foggy    uint8
	Overcast uint8
	Rain     uint8
	Thunder  uint8
	Ash      uint8
	Blight   uint8
	Snow     uint8
	Blizzard uint8
}

func (wc *WeatherChances) fields() []*uint8 {
	return []*uint8{
		&wc.Clear, &wc.Cloudy, &wc.Foggy, &wc.Overcast, &wc.Rain,
		&wc.Thunder, &wc.Ash, &wc.Blight, &wc.Snow, &wc.Blizzard,
	}
}

// RegionSound is an ambient sound with its chance to play.
type RegionSound struct {
	Sound  string
	Chance uint8
}

func (*Region) Tag() format.Tag    { return TagREGN }
func (*Region) TypeName() string   { return "Region" }
func (m *Region) EditorID() string { return m.ID }

func (m *Region) decode(d *decoder, r *stream.Reader) error {
	return d.chunks(r, func(c *chunk) error {
		switch c.tag {
		case tagNAME:
			m.ID = d.id(c)
		case tagFNAM:
			m.Name = c.str()
		case tagWEAT:
			if c.size == legacyWeatherChancesSize || c.expect(weatherChancesSize) {
				m.WeatherChances = WeatherChances{}
				for _, f := range m.WeatherChances.fields()[:c.size] {
					*f = c.U8()
				}
			}
		case tagBNAM:
			m.SleepCreature = c.str()
		case tagCNAM:
			if c.expect(4) {
				c.ReadFull(m.MapColor[:])
			}
		case tagSNAM:
			if c.expect(regionSoundSize) {
				m.Sounds = append(m.Sounds, RegionSound{Sound: c.FixedString(stream.IDLength), Chance: c.U8()})
			}
		default:
			return errUnhandled
		}

		return nil
	})
}

func (m *Region) encode(w *stream.Writer) error {
	writeID(w, tagNAME, m.ID)
	writeString(w, tagFNAM, m.Name)
	w.Chunk(tagWEAT, weatherChancesSize, func(w *stream.Writer) {
		for _, f := range m.WeatherChances.fields() {
			w.U8(*f)
		}
	})
	writeString(w, tagBNAM, m.SleepCreature)
	w.Chunk(tagCNAM, 4, func(w *stream.Writer) { w.Raw(m.MapColor[:]) })
	for _, s := range m.Sounds {
		w.Chunk(tagSNAM, regionSoundSize, func(w *stream.Writer) {
			w.FixedString(s.Sound, stream.IDLength)
			w.U8(s.Chance)
		})
	}
	writeDeleted(w, m.Deleted())

	return w.Err()
}
