// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

// Batch accumulates serialized data lines for one output file. The header is
// held apart from the data so a reset never drops it.
type Batch struct {
	header string
	limit  int
	lines  []string
}

// NewBatch returns an empty batch that is full after limit data lines.
func NewBatch(header string, limit int) *Batch {
	return &Batch{
		header: header,
		limit:  limit,
		lines:  make([]string, 0, limit),
	}
}

// Add appends a data line and reports whether the batch is now full.
func (b *Batch) Add(line string) bool {
	b.lines = append(b.lines, line)
	return b.Full()
}

// Full reports whether the batch holds limit data lines.
func (b *Batch) Full() bool {
	return b.limit > 0 && len(b.lines) >= b.limit
}

// Len returns the number of data lines, excluding the header.
func (b *Batch) Len() int {
	return len(b.lines)
}

// Lines returns the header followed by the data lines. The result is a
// fresh slice; later calls to Add or Reset do not affect it.
func (b *Batch) Lines() []string {
	out := make([]string, 0, len(b.lines)+1)
	out = append(out, b.header)
	return append(out, b.lines...)
}

// Reset drops all data lines, leaving only the header.
func (b *Batch) Reset() {
	b.lines = make([]string, 0, b.limit)
}
