// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Ratios.

package ratio

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v4"
)

// Binary codec version. Permits backward-compatible changes to the encoding.
const ratioBinaryVersion byte = 1

// msgpackExtID is the msgpack extension type used for Ratio values.
const msgpackExtID int8 = 1

func init() {
	msgpack.RegisterExt(msgpackExtID, (*Ratio)(nil))
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The raw
// numerator and denominator of x are marshaled, so that decoding yields the
// same identity.
func (x Ratio) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 1+8+8)
	buf[0] = ratioBinaryVersion
	binary.BigEndian.PutUint64(buf[1:], uint64(x.num))
	binary.BigEndian.PutUint64(buf[9:], uint64(x.den.Get()))
	return buf, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (z *Ratio) UnmarshalBinary(buf []byte) error {
	if len(buf) == 0 {
		return fmt.Errorf("Ratio.UnmarshalBinary: empty buffer")
	}
	if buf[0] != ratioBinaryVersion {
		return fmt.Errorf("Ratio.UnmarshalBinary: encoding version %d not supported", buf[0])
	}
	if len(buf) != 17 {
		return fmt.Errorf("Ratio.UnmarshalBinary: invalid length %d", len(buf))
	}
	x, err := New(int64(binary.BigEndian.Uint64(buf[1:])), int64(binary.BigEndian.Uint64(buf[9:])))
	if err != nil {
		return fmt.Errorf("Ratio.UnmarshalBinary: %w", err)
	}
	*z = x
	return nil
}

// GobEncode implements the gob.GobEncoder interface.
func (x Ratio) GobEncode() ([]byte, error) {
	return x.MarshalBinary()
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Ratio) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Ratio{}
		return nil
	}
	return z.UnmarshalBinary(buf)
}

// MarshalMsgpack implements the msgpack.Marshaler interface.
func (x Ratio) MarshalMsgpack() ([]byte, error) {
	return x.MarshalBinary()
}

// UnmarshalMsgpack implements the msgpack.Unmarshaler interface.
func (z *Ratio) UnmarshalMsgpack(buf []byte) error {
	return z.UnmarshalBinary(buf)
}

// MarshalText implements the encoding.TextMarshaler interface. Only the
// canonical form is marshaled. Ratio does not implement
// encoding.TextUnmarshaler.
func (x Ratio) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

type jsonRatio struct {
	Num int64 `json:"num"`
	Den int64 `json:"den"`
}

// MarshalJSON implements the json.Marshaler interface. The raw numerator and
// denominator are marshaled as {"num":n,"den":d}.
func (x Ratio) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonRatio{x.num, x.den.Get()})
}

// UnmarshalJSON implements the json.Unmarshaler interface. A missing "den"
// field is an error.
func (z *Ratio) UnmarshalJSON(data []byte) error {
	var j jsonRatio
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	x, err := New(j.Num, j.Den)
	if err != nil {
		return fmt.Errorf("ratio: cannot unmarshal %s into a ratio.Ratio: %w", data, err)
	}
	*z = x
	return nil
}
