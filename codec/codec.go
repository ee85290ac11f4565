package codec

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/swap/errors"
)

// ErrEncoding is returned when binary data does not follow the wire format.
var ErrEncoding = errors.Register(30, "encoding")

// Marshal serializes msg following the protobuf struct tags of its fields.
//
// msg must not implement Marshal itself, otherwise proto hands the work back
// to it. Models declare an unexported copy of their type for that purpose:
//
//	type mintMsg Mint
//
//	func (m *Mint) Marshal() ([]byte, error) {
//		return codec.Marshal((*mintMsg)(m))
//	}
func Marshal(msg proto.Message) ([]byte, error) {
	raw, err := proto.Marshal(msg)
	if err != nil {
		return nil, errors.Wrapf(ErrEncoding, "marshal %T: %s", msg, err)
	}
	return raw, nil
}

// Unmarshal resets msg and loads the protobuf encoded raw into it.
func Unmarshal(raw []byte, msg proto.Message) error {
	if err := proto.Unmarshal(raw, msg); err != nil {
		return errors.Wrapf(ErrEncoding, "unmarshal %T: %s", msg, err)
	}
	return nil
}
