// Package format houses low-level decoders for the on-disk mail-cache record
// format. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

// RecordSignature is the four-byte magic at the start of every record file.
var RecordSignature = []byte{0xD0, 0x0D, 0x00, 0x00}

const (
	// SignatureSize is the width of RecordSignature.
	SignatureSize = 4

	// UnusedSize is a 4-byte gap between the magic and the discriminator.
	UnusedSize = 4

	// DiscriminatorOffset is where the entity/block discriminator int32
	// starts, after the magic and the 4 unused bytes that follow it.
	DiscriminatorOffset = SignatureSize + UnusedSize

	// DiscriminatorEntity marks an entity record (a single decorated item:
	// message, contact, event, and so on).
	DiscriminatorEntity = 1

	// DiscriminatorBlock marks a block record (an auxiliary payload keyed by
	// a four-character block type rather than a class-id).
	DiscriminatorBlock = 2

	// EnvelopeOffset is where the entity/block envelope begins, after the
	// magic, the unused bytes, and the discriminator.
	EnvelopeOffset = DiscriminatorOffset + 4
)

// Entity envelope layout (all little-endian), counted from EnvelopeOffset:
//
//	0x00  RecordID      int32
//	0x04  ClassID       int32
//	0x08  Unused        [12]byte
//	0x14  BlockType     [4]byte (reversed four-char code)
//	0x18  ItemID        [4]byte (raw)
const (
	EntityRecordIDOffset  = 0x00
	EntityClassIDOffset   = 0x04
	EntityUnusedOffset    = 0x08
	EntityUnusedSize      = 12
	EntityBlockTypeOffset = 0x14
	EntityBlockTypeSize   = 4
	EntityItemIDOffset    = 0x18
	EntityItemIDSize      = 4
	EntityHeaderSize      = EntityItemIDOffset + EntityItemIDSize // 0x1C
)

// Block envelope layout (all little-endian), counted from EnvelopeOffset:
//
//	0x00  BlockID      [20]byte
//	0x14  BlockType    [4]byte (reversed four-char code)
//	0x18  ItemID       [4]byte (raw)
const (
	BlockIDOffset     = 0x00
	BlockIDSize       = 20
	BlockTypeOffset   = BlockIDSize
	BlockTypeSize     = 4
	BlockItemIDOffset = BlockTypeOffset + BlockTypeSize
	BlockItemIDSize   = 4
	BlockHeaderSize   = BlockItemIDOffset + BlockItemIDSize // 0x1C
)

// Collection header layout. A collection is a count-prefixed, size-table
// keyed run of properties:
//
//	0x00  ItemCount   int32
//	0x04  HeaderSize  int32 (offset where the size table ends and bodies start)
//	0x08  BodySize    int32 (total bytes of property bodies)
//	0x0C  size table  (entries of SizeEntryWidth32 or SizeEntryWidth64 bytes)
const (
	CollectionHeaderFieldWidth = 4
	CollectionHeaderSize       = 3 * CollectionHeaderFieldWidth // 0x0C
	CollectionItemCountOffset  = 0x00
	CollectionHeaderLenOffset  = 0x04
	CollectionBodyLenOffset    = 0x08
	CollectionSizeTableOffset  = CollectionHeaderSize
)

// Size table entries pack a (tag, index) key into the first four bytes and a
// 32-bit or 64-bit body length in the remainder. Which width applies is
// selected by the entry's key: only the 0x20:0x15 key uses the 64-bit form.
const (
	SizeEntryKeyWidth = 4
	SizeEntryWidth32  = SizeEntryKeyWidth + 4 // int32 body length
	SizeEntryWidth64  = SizeEntryKeyWidth + 8 // int64 body length (footer 0x20:0x15 arrays)
)

// List layout: a homogeneous run of collections, each re-parsed with the
// same property dictionary.
//
//	0x00  ItemCount   int32
//	0x04  item sizes  ItemCount x int16
//	      item bodies (collections), back to back
const (
	ListItemCountOffset = 0x00
	ListItemCountWidth  = 4
	ListItemSizeWidth   = 2
)

// Sanity limits applied while decoding attacker-controllable counts and
// sizes, the same bounds discipline a hand-rolled binary decoder needs
// wherever a length prefix comes straight off the wire.
const (
	MaxCollectionItems = 1 << 16
	MaxListItems       = 1 << 16
	MaxBodySize        = 1 << 28
)

// Property dictionary variant-type tags. These select both the primitive
// decode and, for composite kinds, the handler dispatch.
const (
	VTShort      = 0x02 // int16
	VTInt        = 0x03 // int32, also Windows-epoch-minute dates and enums
	VTBString    = 0x08 // raw/opaque bytes
	VTBool       = 0x0B // bool (1 byte)
	VTDataObject = 0x0D // collection/list/handler-dispatched composite
	VTLong       = 0x14 // int64
	VTUserBlob   = 0x1D // ANSI string stored as a user-defined blob
	VTAnsiString = 0x1E // ANSI (Windows-1252) string
	VTUnicodeStr = 0x1F // UTF-16LE string
	VTFooterLong = 0x20 // int64 footer value, or size-array (key 0x20:0x15)
	VTGUID       = 0x48 // 16-byte GUID, passed through opaque
	VTMacDate    = 0x4D // float64 seconds since the Mac epoch
)

// UTF-16LE decode thresholds: the ASCII fast-path cutoff and the surrogate
// pair ranges used to recombine astral-plane code points.
const (
	UTF16ASCIIThreshold     = 0x80
	UTF16HighSurrogateStart = 0xD800
	UTF16HighSurrogateEnd   = 0xDBFF
	UTF16LowSurrogateStart  = 0xDC00
	UTF16LowSurrogateEnd    = 0xDFFF
	UTF16SurrogateBase      = 0x10000
)

// Four-character block type codes in their decoded form; on disk the four
// bytes are stored reversed (e.g. "ImgB" as "BgmI").
const (
	BlockTypeImage       = "ImgB"
	BlockTypeAttachment  = "Attc"
	BlockTypeMessageSrc  = "MSrc"
	BlockTypeClippedAttc = "ClAt"
	BlockTypeRecent      = "RcnA"
	BlockTypeSyncMap     = "ExSM"
	BlockTypeFolderSync  = "ExFS"
)
