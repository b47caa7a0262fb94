package redisstore

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Codec serializes sessions for storage.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type cborCodec struct {
	enc cbor.EncMode
}

func (c cborCodec) Marshal(v any) ([]byte, error)      { return c.enc.Marshal(v) }
func (c cborCodec) Unmarshal(data []byte, v any) error { return cbor.Unmarshal(data, v) }

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

var (
	// CBOR is the compact default. Timestamps keep nanoseconds.
	CBOR Codec = newCBOR()

	// JSON is human readable, handy when inspecting keys with redis-cli.
	JSON Codec = jsonCodec{}
)

func newCBOR() Codec {
	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("redisstore: cbor encoder: %v", err))
	}
	return cborCodec{enc: enc}
}

// CodecByName maps the Config.Encoding value to a Codec.
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "cbor":
		return CBOR, nil
	case "json":
		return JSON, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
}
