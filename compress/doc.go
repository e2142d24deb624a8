// Package compress provides the compression codecs of the interchange
// envelope.
//
// Encoded record sets are dominated by repeated editor ids, mesh paths and
// zero padding in fixed blocks, so general purpose compressors shrink them
// well. Four codecs are available, selected by format.CompressionType:
//
//   - None: the payload is stored as is
//   - Zstd: best ratio, the default of the interchange package
//   - S2: faster than Zstd at a lower ratio
//   - LZ4: fastest decompression
//
// All codecs are stateless values safe for concurrent use. Zstd and LZ4 keep
// their encoder and decoder state in sync.Pool instances.
//
// # Build Tags
//
// Zstd uses the pure Go klauspost/compress implementation. Building with the
// nobuild tag switches it to the cgo binding valyala/gozstd.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "interchange")
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
