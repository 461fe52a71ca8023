package decoder

import (
	"fmt"

	"github.com/hshore29/pyolk/internal/buf"
	"github.com/hshore29/pyolk/internal/format"
	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/hshore29/pyolk/internal/primitive"
	"github.com/hshore29/pyolk/pmap"
	"github.com/hshore29/pyolk/schema"
)

// Kind distinguishes the two top-level record shapes a record file holds.
type Kind uint8

const (
	KindEntity Kind = iota
	KindBlock
)

// Record is a single decoded record, either an entity (a decorated
// personal-information item: message, contact, event, and so on) or a
// block (an auxiliary payload keyed by a four-character block type).
type Record struct {
	Kind Kind

	// Entity fields.
	RecordID   int32
	ClassID    int32
	ItemID     [4]byte
	BlockType  string
	Properties pmap.Map

	// Block fields.
	BlockID [20]byte
}

// Decode parses a single record-file buffer: the four-byte magic, the
// entity/block discriminator, and whichever envelope follows. Only a bad
// magic, an entity whose class-id has no registered schema, or a buffer too
// short for the record, entity or block header are treated as fatal;
// everything past that point is decoded best-effort, with
// problems logged rather than propagated, so a single malformed property
// doesn't fail the rest of the record.
func Decode(data []byte) (*Record, error) {
	if !buf.Has(data, 0, format.EnvelopeOffset) {
		return nil, fmt.Errorf("decoder: record too short for header, have %d bytes", len(data))
	}
	for i, b := range format.RecordSignature {
		if data[i] != b {
			return nil, fmt.Errorf("decoder: %w", format.ErrSignatureMismatch)
		}
	}

	discriminator := format.ReadI32(data, format.DiscriminatorOffset)
	envelope := data[format.EnvelopeOffset:]

	switch discriminator {
	case format.DiscriminatorEntity:
		return decodeEntity(envelope)
	case format.DiscriminatorBlock:
		return decodeBlock(envelope)
	default:
		obslog.Warn("unrecognized entity/block discriminator", "discriminator", discriminator)
		return &Record{Properties: pmap.Map{}}, nil
	}
}

func decodeEntity(data []byte) (*Record, error) {
	if !buf.Has(data, 0, format.EntityHeaderSize) {
		return nil, fmt.Errorf("decoder: entity header truncated, have %d bytes", len(data))
	}

	rec := &Record{Kind: KindEntity}
	rec.RecordID = format.ReadI32(data, format.EntityRecordIDOffset)
	rec.ClassID = format.ReadI32(data, format.EntityClassIDOffset)
	copy(rec.ItemID[:], data[format.EntityItemIDOffset:format.EntityItemIDOffset+format.EntityItemIDSize])
	if code := primitive.TypeCode(data[format.EntityBlockTypeOffset : format.EntityBlockTypeOffset+format.EntityBlockTypeSize]); code != nil {
		rec.BlockType = *code
	}

	sch, ok := schema.ClassToSchema[rec.ClassID]
	if !ok {
		return nil, fmt.Errorf("decoder: %w: %d", format.ErrUnknownClass, rec.ClassID)
	}

	props, err := ReadCollection(data[format.EntityHeaderSize:], sch)
	if err != nil {
		obslog.Warn("entity collection decode failed", "record_id", rec.RecordID, "class_id", rec.ClassID, "error", err)
		props = pmap.Map{}
	}

	switch sch.Class {
	case "OlkEvent":
		postprocessEvent(props)
	case "OlkContact":
		postprocessContact(props)
	case "OlkMain":
		postprocessMain(props)
	}
	postprocessCollectXML(props)

	rec.Properties = props
	return rec, nil
}

func decodeBlock(data []byte) (*Record, error) {
	if !buf.Has(data, 0, format.BlockHeaderSize) {
		return nil, fmt.Errorf("decoder: block header truncated, have %d bytes", len(data))
	}

	rec := &Record{Kind: KindBlock}
	copy(rec.BlockID[:], data[format.BlockIDOffset:format.BlockIDOffset+format.BlockIDSize])
	if code := primitive.TypeCode(data[format.BlockTypeOffset : format.BlockTypeOffset+format.BlockTypeSize]); code != nil {
		rec.BlockType = *code
	}
	copy(rec.ItemID[:], data[format.BlockItemIDOffset:format.BlockItemIDOffset+format.BlockItemIDSize])

	rec.Properties = decodeBlockBody(rec.BlockType, data[format.BlockHeaderSize:])
	return rec, nil
}
