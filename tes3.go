// Package tes3 reads and writes TES3 plugin files, the ESP and ESM files of
// The Elder Scrolls III: Morrowind.
//
// A plugin is a TES3 header record followed by a flat sequence of records.
// Each record is a tagged, size-prefixed list of chunks. Decoding produces a
// typed value per record kind (*esp.MiscItem, *esp.Npc, *esp.Cell, ...) that
// owns all of its data and can be freely modified and encoded again.
//
// # Core Features
//
//   - All 43 record kinds of the format, decoded into plain Go structs
//   - Byte-exact re-encoding of plugins written by conforming tools
//   - Strict decoding by default, with an opt-in lenient mode that skips and
//     logs unknown records and chunks
//   - Structured errors carrying the record tag, chunk tag and byte offset
//   - Case-insensitive editor id index backed by 64-bit xxHash
//
// # Basic Usage
//
// Loading, modifying and saving a plugin:
//
//	import "github.com/arloliu/tes3"
//
//	plugin, err := tes3.Load("MyMod.esp")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, rec := range plugin.Records {
//	    if misc, ok := rec.(*esp.MiscItem); ok {
//	        misc.Data.Value *= 2
//	    }
//	}
//
//	if err := tes3.Save("MyMod.esp", plugin, esp.WithRecountObjects()); err != nil {
//	    log.Fatal(err)
//	}
//
// Looking up a record by editor id:
//
//	idx := plugin.Index()
//	if rec, ok := idx.Find(esp.TagNPC_, "fargoth"); ok {
//	    fmt.Println(rec.(*esp.Npc).Name)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the esp package.
// The stream package holds the byte cursors and section the raw record
// frames used by Summarize. Errors live in errs. The interchange package
// wraps record sets in compressed text, inspect offers dotted-path field
// access for editors, and sqlinfo describes the SQL export schema.
package tes3

import (
	"github.com/arloliu/tes3/errs"
	"github.com/arloliu/tes3/esp"
	"github.com/arloliu/tes3/format"
	"github.com/arloliu/tes3/internal/hash"
	"github.com/arloliu/tes3/section"
)

// Decode decodes a whole plugin held in memory.
//
// Parameters:
//   - data: The complete plugin file content
//   - opts: Decode options (esp.WithLenient, esp.WithStrictIdentity, esp.WithLogger)
//
// Returns:
//   - *esp.Plugin: The decoded header and records
//   - error: An *errs.DecodeError describing the first failure
//
// Example:
//
//	plugin, err := tes3.Decode(data, esp.WithLenient())
func Decode(data []byte, opts ...esp.DecodeOption) (*esp.Plugin, error) {
	return esp.DecodePlugin(data, opts...)
}

// Encode encodes a plugin: its header first, then its records in order.
//
// Parameters:
//   - p: The plugin to encode
//   - opts: Encode options (esp.WithRecountObjects)
//
// Returns:
//   - []byte: The encoded plugin
//   - error: An error wrapping errs.ErrEncodeFailure if a value cannot be written
func Encode(p *esp.Plugin, opts ...esp.EncodeOption) ([]byte, error) {
	return p.Encode(opts...)
}

// DecodeRecordGraph decodes a headerless sequence of records, as produced by
// EncodeRecordGraph.
func DecodeRecordGraph(data []byte, opts ...esp.DecodeOption) ([]esp.Record, error) {
	return esp.DecodeRecords(data, opts...)
}

// EncodeRecordGraph encodes records back to back without a header.
func EncodeRecordGraph(records []esp.Record) ([]byte, error) {
	return esp.EncodeRecords(records)
}

// Load reads and decodes the plugin file at path.
func Load(path string, opts ...esp.DecodeOption) (*esp.Plugin, error) {
	return esp.Load(path, opts...)
}

// Save encodes p and writes it to path.
func Save(path string, p *esp.Plugin, opts ...esp.EncodeOption) error {
	return p.Save(path, opts...)
}

// RecordID computes the 64-bit id of an editor id.
//
// Editor ids compare case-insensitively, so ids that differ only by letter
// case map to the same RecordID. This is the hash used by esp.Index.
//
// Example:
//
//	tes3.RecordID("Gold_001") == tes3.RecordID("gold_001") // true
func RecordID(editorID string) uint64 {
	return hash.EditorID(editorID)
}

var deleteMarker = format.NewTag("DELE")

// Summary counts the records of a plugin.
type Summary struct {
	// Records is the number of records, the TES3 header included.
	Records int
	// Deleted counts records marked deleted by their header flags or by a
	// DELE chunk.
	Deleted int
	// ByTag counts records per kind.
	ByTag map[format.Tag]int
}

// Summarize walks the record and chunk frames of data without decoding any
// chunk payload. Unknown record kinds are counted like known ones.
//
// Returns:
//   - Summary: Record counts
//   - error: An *errs.DecodeError wrapping errs.ErrUnexpectedEOF if a frame is truncated
func Summarize(data []byte) (Summary, error) {
	s := Summary{ByTag: make(map[format.Tag]int)}
	var chunkErr error
	err := section.Scan(data, func(h section.RecordHeader, offset int64) bool {
		s.Records++
		s.ByTag[h.Tag]++

		deleted := esp.ObjectFlags(h.Flags).Has(esp.ObjectDeleted)
		payload := data[offset+section.RecordHeaderSize : offset+int64(h.TotalSize())]
		chunkErr = section.ScanChunks(payload, offset+section.RecordHeaderSize, func(c section.ChunkHeader, _ int64) bool {
			deleted = deleted || c.Tag == deleteMarker
			return !deleted
		})
		if chunkErr != nil {
			chunkErr = errs.WithRecord(chunkErr, h.Tag)
			return false
		}
		if deleted {
			s.Deleted++
		}

		return true
	})
	if err == nil {
		err = chunkErr
	}
	if err != nil {
		return Summary{}, err
	}

	return s, nil
}
