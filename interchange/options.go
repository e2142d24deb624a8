package interchange

import (
	"fmt"

	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/options"
)

// Config holds the interchange options.
type Config struct {
	compression format.CompressionType
	decodeOpts  []esp.DecodeOption
}

// NewConfig returns the default configuration: Zstd compression and strict
// record decoding.
func NewConfig() *Config {
	return &Config{compression: format.CompressionZstd}
}

// Option is a functional option for Marshal and Unmarshal.
type Option = options.Option[*Config]

// WithCompression selects the payload codec used by Marshal.
// Unmarshal ignores it and follows the envelope.
//
// Parameters:
//   - compression: One of format.CompressionNone, Zstd, S2 or LZ4
//
// Returns:
//   - Option: fails with errs.ErrInvalidCompression for any other value
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *Config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("%w: %#x", errs.ErrInvalidCompression, uint8(compression))
		}
	})
}

// WithDecodeOptions passes record decoding options to Unmarshal.
func WithDecodeOptions(opts ...esp.DecodeOption) Option {
	return options.NoError(func(c *Config) {
		c.decodeOpts = append(c.decodeOpts, opts...)
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := NewConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
