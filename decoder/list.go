package decoder

import (
	"fmt"

	"github.com/hshore29/pyolk/internal/buf"
	"github.com/hshore29/pyolk/internal/format"
	"github.com/hshore29/pyolk/internal/obslog"
	"github.com/hshore29/pyolk/pmap"
	"github.com/hshore29/pyolk/schema"
)

// ReadList decodes a homogeneous run of collections: a 4-byte count, that
// many 2-byte item sizes, then the item bodies back to back, each
// re-parsed as a collection against the same sub-schema.
func ReadList(data []byte, sch *schema.Schema) ([]pmap.Map, error) {
	if !buf.Has(data, 0, format.ListItemCountWidth) {
		return nil, fmt.Errorf("decoder: list count truncated, have %d bytes", len(data))
	}

	count := int(format.ReadI32(data, format.ListItemCountOffset))
	if count < 0 || count > format.MaxListItems {
		return nil, fmt.Errorf("decoder: list item count %d exceeds sanity limit", count)
	}

	sizesOff := format.ListItemCountWidth
	sizesLen := count * format.ListItemSizeWidth
	if !buf.Has(data, sizesOff, sizesLen) {
		return nil, fmt.Errorf("decoder: list size table truncated")
	}
	sizes := data[sizesOff : sizesOff+sizesLen]
	body := data[sizesOff+sizesLen:]

	items := make([]pmap.Map, 0, count)
	for i := 0; i < count; i++ {
		size := int(format.ReadI16(sizes, i*format.ListItemSizeWidth))
		if size < 0 || size > len(body) {
			return nil, fmt.Errorf("decoder: list item %d size %d out of bounds", i, size)
		}
		item, err := ReadCollection(body[:size], sch)
		if err != nil {
			return nil, fmt.Errorf("decoder: list item %d: %w", i, err)
		}
		items = append(items, item)
		body = body[size:]
	}

	if len(body) > 0 {
		obslog.Warn("residual bytes after last list item", "bytes", len(body))
	}

	return items, nil
}
