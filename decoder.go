package digitseq

import (
	"bytes"
	"io"

	"github.com/google/uuid"

	"github.com/computronium/digitseq/control"
	"github.com/computronium/digitseq/integer"
	"github.com/computronium/digitseq/series"
)

// Decoder reads sequences written by an Encoder.
type Decoder struct {
	cd       control.Decoder
	signed   *integer.Decoder
	unsigned *integer.Decoder
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	cd := control.NewDecoder(r)

	return &Decoder{
		cd:       cd,
		signed:   integer.NewDecoder(integer.Schema{Signed: true}, cd),
		unsigned: integer.NewDecoder(integer.Schema{}, cd),
	}
}

// Decode reads the next sequence into x. It returns io.EOF when the input
// ends before a sequence starts.
func (d *Decoder) Decode(x *Sequence) (err error) {
	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return Error.Wrap(err)
		}

		return io.EOF
	}

	if d.cd.Type() != control.ContainerUnbounded {
		return Error.New("expected a sequence, got a %q block", d.cd.Type().Abbr)
	}

	return Error.Wrap(d.decode(x))
}

func (d *Decoder) decode(x *Sequence) error {
	var hdr integer.Block

	err := d.signed.Decode(&hdr)
	if err != nil {
		return err
	}

	base, err := hdr.Int64()
	if err != nil {
		return err
	}

	b := series.NewBuilder(int(base))

	err = control.Expect(d.cd, control.ContainerUnbounded)
	if err != nil {
		return err
	}

	err = control.Each(d.cd, func(control.Decoder) error {
		var blk integer.Block

		err := d.unsigned.Current(&blk)
		if err != nil {
			return err
		}

		n, err := blk.Int64()
		if err != nil {
			return err
		}

		b.AddDigit(series.Digit(n))

		return nil
	})
	if err != nil {
		return err
	}

	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return err
		}

		return Error.New("unexpected end of input")
	}

	switch d.cd.Type() {
	case control.Empty:
	case control.ContainerUnbounded:
		err = d.tails(b)
		if err != nil {
			return err
		}
	default:
		return Error.New("expected e or cu, got %s", d.cd.Type().Abbr)
	}

	err = control.Expect(d.cd, control.ContainerEnd)
	if err != nil {
		return err
	}

	s, err := b.Build()
	if err != nil {
		return err
	}

	*x = FromSeries(hdr.Negative, s)

	return nil
}

// tails reads the provenance container d is positioned in and the offset
// after it.
func (d *Decoder) tails(b *series.Builder) error {
	entries := 0

	err := control.Each(d.cd, func(cd control.Decoder) error {
		data, err := cd.Data()
		if err != nil {
			return err
		}

		tok, err := uuid.FromBytes(data)
		if err != nil {
			return err
		}

		var blk integer.Block

		err = d.signed.Decode(&blk)
		if err != nil {
			return err
		}

		n, err := blk.Int64()
		if err != nil {
			return err
		}

		if n <= 0 {
			return Error.New("token %s has multiplicity %d", tok, n)
		}

		b.AddToken(tok, n)
		entries++

		return nil
	})
	if err != nil {
		return err
	}

	if entries == 0 {
		return Error.New("empty provenance")
	}

	if !d.cd.Next() {
		if err = d.cd.Err(); err != nil {
			return err
		}

		return Error.New("unexpected end of input")
	}

	if d.cd.Type() == control.Null {
		return nil
	}

	var blk integer.Block

	err = d.signed.Current(&blk)
	if err != nil {
		return err
	}

	b.WithOffset(blk.BigInt())

	return nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (x *Sequence) UnmarshalBinary(data []byte) (err error) {
	d := NewDecoder(bytes.NewReader(data))

	var y Sequence

	err = d.Decode(&y)
	if err == io.EOF {
		return Error.New("no sequence in %d bytes", len(data))
	}
	if err != nil {
		return err
	}

	if d.cd.Next() || d.cd.Err() != nil {
		return Error.New("trailing data after sequence")
	}

	*x = y

	return nil
}
