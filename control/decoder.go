package control

import (
	"errors"
	"io"
	"math"
	"math/big"

	"github.com/calebcase/oops"
)

// Decoder reads control blocks one at a time.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Depth() int
	Stack() Stack
	Consumed() uint64

	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	stack *Stack

	value [1]byte
	t     Type
	data  []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r:     r,
		stack: &Stack{},
	}

	return d
}

// read reads exactly n bytes without trusting n for the allocation.
func (d *decoder) read(n uint64) (data []byte, err error) {
	if n > math.MaxInt64 {
		return nil, Error.New("unimplemented: size >= 2^63")
	}

	data, err = io.ReadAll(io.LimitReader(d.r, int64(n)))
	if err != nil {
		return nil, Error.Wrap(err)
	}

	d.consumed += uint64(len(data))

	if uint64(len(data)) != n {
		return nil, Error.Wrap(io.ErrUnexpectedEOF)
	}

	return data, nil
}

// Next reads the next block. It returns false at the end of the input or on
// error; Err tells the two apart.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Reset state for next block.
	d.value[0] = 0
	d.t = Unknown
	d.data = nil

	// Read the control byte.
	_, d.err = io.ReadFull(d.r, d.value[:])
	if d.err != nil {
		if errors.Is(d.err, io.EOF) {
			d.err = nil
			return false
		}

		d.err = Error.Wrap(d.err)

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	if t != ContainerEnd {
		d.stack.Count()
	}

	low := d.value[0] & t.Mask

	switch t {
	case Data:
		d.data = []byte{low}
	case Data1:
		d.data, d.err = d.read(1)
		d.data = append([]byte{low}, d.data...)
	case Data2:
		d.data, d.err = d.read(2)
		d.data = append([]byte{low}, d.data...)
	case DataSize:
		d.data, d.err = d.read(uint64(low) + 1)
	case DataSizeSize:
		var sizeBytes []byte
		sizeBytes, d.err = d.read(uint64(low) + 1)
		if d.err != nil {
			return false
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() {
			d.err = Error.New("unimplemented: size >= 2^64")

			return false
		}

		d.data, d.err = d.read(size.Uint64())
	case ContainerUnbounded:
		d.stack.Push(&Frame{
			Type: t,
		})
	case ContainerEnd:
		if d.stack.Top() == nil {
			d.err = Error.New("unexpected container end (not in a container)")

			return false
		}

		d.err = d.stack.Pop()
	case Empty, Null:
		// No additional bytes need to be read.
	}

	if d.err != nil {
		return false
	}

	d.t = t

	return true
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Depth() int {
	return len(*d.stack)
}

func (d *decoder) Stack() Stack {
	return *d.stack
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data returns the payload of the current block.
func (d *decoder) Data() (data []byte, err error) {
	if !d.t.IsData() {
		return nil, oops.Trace(ErrInvalidOperation)
	}

	return d.data, nil
}
