package integer

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/computronium/digitseq/control"
)

// Error is the class of every error returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block holding n.
func FromInt64(n int64) Block {
	return FromBig(big.NewInt(n))
}

// FromBig returns the block holding i.
func FromBig(i *big.Int) Block {
	data := new(big.Int).Abs(i).Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// BigInt returns the value of b.
func (b Block) BigInt() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Int64 returns the value of b if it fits.
func (b Block) Int64() (int64, error) {
	i := b.BigInt()
	if !i.IsInt64() {
		return 0, Error.New("%s overflows int64", i)
	}

	return i.Int64(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The sign is stored in
// the lowest bit.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}

// Schema for an integer.
type Schema struct {
	Signed bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, cd control.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     cd,
	}
}

// Decode advances to the next block and parses it.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return Error.Wrap(err)
		}

		return Error.New("unexpected end of input")
	}

	return d.Current(b)
}

// Current parses the block the control decoder is positioned at.
func (d *Decoder) Current(b *Block) (err error) {
	data, err := d.cd.Data()
	if err != nil {
		return Error.Wrap(err)
	}

	if d.schema.Signed {
		return b.UnmarshalBinary(data)
	}

	b.Value = new(big.Int).SetBytes(data).Bytes()
	if len(b.Value) == 0 {
		b.Value = []byte{0}
	}
	b.Negative = false

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ce control.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     ce,
	}
}

// Encode writes a block to the writer.
func (e *Encoder) Encode(b *Block) (err error) {
	if b.Negative && !e.schema.Signed {
		return Error.New("negative value in unsigned schema")
	}

	data := b.Value
	if e.schema.Signed {
		data, err = b.MarshalBinary()
		if err != nil {
			return Error.Wrap(err)
		}
	}

	data = new(big.Int).SetBytes(data).Bytes()
	if len(data) == 0 {
		data = []byte{0}
	}

	return Error.Wrap(e.ce.Data(data))
}
