package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the values persisted in the key-value store. These are
// hand-written; field order is part of the stored format and must stay
// stable across releases.
var (
	// SearchStatsMUS serializes per-code search statistics.
	SearchStatsMUS = searchStatsMUS{}

	// TermListMUS serializes an ordered list of search terms. Also used for
	// the recent-searches slot.
	TermListMUS = ord.NewSliceSer[string](ord.String)

	sourceCountsMUS = ord.NewMapSer[string, int](ord.String, varint.Int)
)

type searchStatsMUS struct{}

// Marshal writes v into bs and returns the number of bytes written.
// Timestamps are stored as Unix microseconds.
func (searchStatsMUS) Marshal(v SearchStats, bs []byte) (n int) {
	n = varint.Int.Marshal(v.Count, bs)
	n += varint.Int64.Marshal(v.LastSearched.UnixMicro(), bs[n:])
	n += TermListMUS.Marshal(v.Terms, bs[n:])
	n += sourceCountsMUS.Marshal(v.Sources, bs[n:])
	return n
}

// Unmarshal reads a SearchStats value from bs.
func (searchStatsMUS) Unmarshal(bs []byte) (v SearchStats, n int, err error) {
	var n1 int
	v.Count, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LastSearched = time.UnixMicro(micros).UTC()
	v.Terms, n1, err = TermListMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Sources, n1, err = sourceCountsMUS.Unmarshal(bs[n:])
	n += n1
	return
}

// Size returns the serialized size of v in bytes.
func (searchStatsMUS) Size(v SearchStats) (size int) {
	size = varint.Int.Size(v.Count)
	size += varint.Int64.Size(v.LastSearched.UnixMicro())
	size += TermListMUS.Size(v.Terms)
	size += sourceCountsMUS.Size(v.Sources)
	return size
}

// Skip advances past one serialized SearchStats value.
func (searchStatsMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Int.Skip(bs)
	if err != nil {
		return
	}
	n1, err = varint.Int64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = TermListMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sourceCountsMUS.Skip(bs[n:])
	n += n1
	return
}
