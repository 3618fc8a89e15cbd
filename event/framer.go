package event

import (
	"bytes"
	"io"

	"github.com/flp-go/flp/internal/varint"
	"github.com/pkg/errors"
)

// ErrTruncatedStream is returned by ParseStream when the buffer runs out of
// bytes mid-event: a tag byte with no body, or a body shorter than its
// declared length.
var ErrTruncatedStream = errors.New("event: truncated stream")

// ParseStream reads an ordered sequence of tagged events from data. Order is
// preserved exactly and unrecognized tags are kept with their raw bytes,
// ready to be written back byte-for-byte by SerializeStream.
func ParseStream(data []byte) ([]*Event, error) {
	r := bytes.NewReader(data)
	var events []*Event
	for r.Len() > 0 {
		tagByte, err := r.ReadByte()
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "event.ParseStream: reading tag")
		}
		tag := Tag(tagByte)

		n, err := bodyLength(r, tag)
		if err != nil {
			return nil, errors.Wrap(ErrTruncatedStream, "event.ParseStream: reading length prefix")
		}

		body := make([]byte, n)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, errors.Wrapf(ErrTruncatedStream, "event.ParseStream: tag %d wants %d body bytes", tag, n)
		}

		events = append(events, &Event{Tag: tag, Body: body})
	}
	return events, nil
}

// bodyLength determines how many body bytes follow a tag, consuming the
// varlen size prefix from r for tags in the Data range.
func bodyLength(r *bytes.Reader, tag Tag) (int, error) {
	switch KindOf(tag) {
	case KindScalar8:
		return 1, nil
	case KindScalar16:
		return 2, nil
	case KindScalar32:
		return 4, nil
	default:
		n, err := varint.ReadVarLen(r)
		return int(n), err
	}
}

// SerializeStream is the inverse of ParseStream: it re-emits every event's
// tag, size prefix (where applicable) and body, in order. For events whose
// body was never mutated since parsing, the output is byte-identical to the
// input ParseStream read it from.
func SerializeStream(events []*Event) []byte {
	buf := new(bytes.Buffer)
	for _, e := range events {
		buf.WriteByte(byte(e.Tag))
		if e.Kind() == KindData {
			// WriteVarLen never fails against a bytes.Buffer.
			_ = varint.WriteVarLen(buf, uint32(len(e.Body)))
		}
		buf.Write(e.Body)
	}
	return buf.Bytes()
}
