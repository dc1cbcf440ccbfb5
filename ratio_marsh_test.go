// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratio

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v4"
)

var marshalTests = []Ratio{
	{},
	MustNew(1, 2),
	MustNew(70, -154),
	MustNew(-99, -9999),
	MustNew(0, -3),
	MustNew(math.MinInt64, math.MaxInt64),
	MustNew(math.MaxInt64, -1),
}

func TestRatioGobEncoding(t *testing.T) {
	var medium bytes.Buffer
	enc := gob.NewEncoder(&medium)
	dec := gob.NewDecoder(&medium)
	for _, x := range marshalTests {
		medium.Reset()
		require.NoError(t, enc.Encode(x))
		var z Ratio
		require.NoError(t, dec.Decode(&z))
		// identity, not only value, must survive
		assert.Equal(t, x, z, "gob round trip of %s", x.RawString())
	}
}

func TestRatio_UnmarshalBinary(t *testing.T) {
	good, err := MustNew(3, -4).MarshalBinary()
	require.NoError(t, err)
	require.Len(t, good, 17)

	var z Ratio
	require.NoError(t, z.UnmarshalBinary(good))
	assert.Equal(t, MustNew(3, -4), z)

	bad := append([]byte(nil), good...)
	bad[0] = 2
	assert.ErrorContains(t, z.UnmarshalBinary(bad), "version 2 not supported")
	assert.Error(t, z.UnmarshalBinary(good[:9]))
	assert.Error(t, z.UnmarshalBinary(nil))

	// denominator 0
	zero := append([]byte(nil), good...)
	for i := 9; i < 17; i++ {
		zero[i] = 0
	}
	err = z.UnmarshalBinary(zero)
	assert.True(t, errors.Is(err, ErrZeroDenominator), "got %v", err)

	// empty gob payload decodes to the zero value
	z = MustNew(5, 7)
	require.NoError(t, z.GobDecode(nil))
	assert.Equal(t, Ratio{}, z)
}

func TestRatioJSONEncoding(t *testing.T) {
	for _, x := range marshalTests {
		b, err := json.Marshal(x)
		require.NoError(t, err)
		var z Ratio
		require.NoError(t, json.Unmarshal(b, &z))
		assert.Equal(t, x, z)
	}

	b, err := json.Marshal(MustNew(70, -154))
	require.NoError(t, err)
	assert.JSONEq(t, `{"num":70,"den":-154}`, string(b))

	var z Ratio
	err = json.Unmarshal([]byte(`{"num":1}`), &z)
	assert.True(t, errors.Is(err, ErrZeroDenominator), "got %v", err)
	err = json.Unmarshal([]byte(`{"num":1,"den":-9223372036854775808}`), &z)
	assert.True(t, errors.Is(err, ErrOverflow), "got %v", err)
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &z))
}

func TestRatioMsgpackEncoding(t *testing.T) {
	type payload struct {
		Name  string
		Scale Ratio
		List  []Ratio
	}
	in := payload{Name: "milli", Scale: MustNew(1, 1000), List: marshalTests}
	b, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, msgpack.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestRatio_MarshalText(t *testing.T) {
	b, err := MustNew(70, -154).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "-70 / 154", string(b))
}
