package encoding

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"strings"

	msgpack "github.com/vmihailenco/msgpack/v5"

	"github.com/corpix/keypad/errors"
)

const (
	MimeJson    = "application/json"
	MimeMsgpack = "application/msgpack"
)

type Codec interface {
	ContentType() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(buf []byte, v interface{}) error
}

type (
	CodecJson    struct{}
	CodecMsgpack struct{}
)

var (
	_ Codec = CodecJson{}
	_ Codec = CodecMsgpack{}
)

func (CodecJson) ContentType() string { return MimeJson }

func (CodecJson) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (CodecJson) Unmarshal(buf []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(buf))
	err := dec.Decode(v)
	if err != nil {
		return errors.Wrap(err, "failed to decode json")
	}
	err = dec.Decode(&json.RawMessage{})
	if err != io.EOF {
		return errors.New("unexpected data after json value")
	}
	return nil
}

func (CodecMsgpack) ContentType() string { return MimeMsgpack }

func (CodecMsgpack) Marshal(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (CodecMsgpack) Unmarshal(buf []byte, v interface{}) error {
	err := msgpack.Unmarshal(buf, v)
	if err != nil {
		return errors.Wrap(err, "failed to decode msgpack")
	}
	return nil
}

// ForContentType picks a codec by media type, anything unknown is json.
func ForContentType(contentType string) Codec {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.ToLower(contentType))
	}
	switch mediaType {
	case MimeMsgpack, "application/x-msgpack":
		return CodecMsgpack{}
	default:
		return CodecJson{}
	}
}
