// Package endian provides byte order utilities for the plugin codec.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, and adds the IEEE-754 float helpers the record layouts need.
//
// # Basic Usage
//
// Plugin files are always little-endian, so most code uses the default engine:
//
//	import "github.com/arloliu/tes3/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, size)
//	buf = endian.AppendFloat32(engine, buf, weight)
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Float32 decodes an IEEE-754 single precision value from the first 4 bytes of b.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// PutFloat32 encodes v into the first 4 bytes of b.
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// AppendFloat32 appends the 4 byte encoding of v to b.
func AppendFloat32(engine EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}
