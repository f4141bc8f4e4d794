package mongoengine

import (
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Element is a single key/value entry of a Document.
type Element struct {
	Key   string
	Value any
}

// Document is the native query representation of a document store:
// an insertion-ordered sequence of key/value elements.
//
// A Go map cannot serve here because compilation output must be
// deterministic: key order carries through to the rendered query string.
// Values may be scalars, []any, []Document, or nested Documents.
//
// Documents returned by the compiler must be treated as read-only;
// they may be shared between callers through the query cache.
type Document []Element

// E creates a single Document element.
func E(key string, value any) Element {
	return Element{Key: key, Value: value}
}

// D creates a Document from the given elements, preserving their order.
func D(elements ...Element) Document {
	return Document(elements)
}

// Get returns the value stored under the given key
// and whether the key is present.
func (d Document) Get(key string) (any, bool) {
	for _, element := range d {
		if element.Key == key {
			return element.Value, true
		}
	}

	return nil, false
}

// MarshalJSON renders the document as canonical JSON, preserving element order.
func (d Document) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	d.writeTo(stream)

	if stream.Error != nil {
		return nil, stream.Error
	}

	rendered := make([]byte, len(stream.Buffer()))
	copy(rendered, stream.Buffer())

	return rendered, nil
}

// String returns the canonical JSON rendering of the document,
// mainly for logging and debugging.
func (d Document) String() string {
	rendered, err := d.MarshalJSON()
	if err != nil {
		return "<unrenderable document: " + err.Error() + ">"
	}

	return string(rendered)
}

func (d Document) writeTo(stream *jsoniter.Stream) {
	stream.WriteObjectStart()

	for i, element := range d {
		if i > 0 {
			stream.WriteMore()
		}

		stream.WriteObjectField(element.Key)
		writeValue(stream, element.Value)
	}

	stream.WriteObjectEnd()
}

func writeValue(stream *jsoniter.Stream, value any) {
	switch val := value.(type) {
	case Document:
		val.writeTo(stream)

	case []Document:
		stream.WriteArrayStart()
		for i, doc := range val {
			if i > 0 {
				stream.WriteMore()
			}
			doc.writeTo(stream)
		}
		stream.WriteArrayEnd()

	case []any:
		stream.WriteArrayStart()
		for i, item := range val {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, item)
		}
		stream.WriteArrayEnd()

	default:
		stream.WriteVal(val)
	}
}
