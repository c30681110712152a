package digitseq

import (
	"bytes"
	"io"

	"github.com/computronium/digitseq/control"
	"github.com/computronium/digitseq/integer"
	"github.com/computronium/digitseq/series"
)

// Encoder writes sequences in the binary format.
//
// Each sequence is an unbounded container holding a signed header block (the
// base, negated for a negative sequence) and a container of digits, least
// significant first. A finite sequence ends with an Empty block. An infinite
// one continues with a container of provenance entries, each a 16 byte token
// followed by its multiplicity, and its offset: a signed block, or Null when
// the offset is zero.
type Encoder struct {
	ce       control.Encoder
	signed   *integer.Encoder
	unsigned *integer.Encoder
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	ce := control.NewEncoder(w)

	return &Encoder{
		ce:       ce,
		signed:   integer.NewEncoder(integer.Schema{Signed: true}, ce),
		unsigned: integer.NewEncoder(integer.Schema{}, ce),
	}
}

// Encode writes x.
func (e *Encoder) Encode(x Sequence) (err error) {
	defer Error.WrapP(&err)

	return e.ce.Unbound(func(ce control.Encoder) error {
		hdr := integer.FromInt64(int64(x.Base()))
		hdr.Negative = x.negative

		err := e.signed.Encode(&hdr)
		if err != nil {
			return err
		}

		err = ce.Unbound(func(control.Encoder) error {
			for _, d := range x.series.Digits() {
				blk := integer.FromInt64(int64(d))

				err := e.unsigned.Encode(&blk)
				if err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return err
		}

		if x.IsFinite() {
			return ce.Empty()
		}

		return e.tails(ce, x.series)
	})
}

func (e *Encoder) tails(ce control.Encoder, s series.Series) error {
	prov := s.Provenance()

	err := ce.Unbound(func(ce control.Encoder) error {
		for _, tok := range prov.Tokens() {
			err := ce.Data(tok[:])
			if err != nil {
				return err
			}

			blk := integer.FromInt64(prov[tok])

			err = e.signed.Encode(&blk)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	off := s.Offset()
	if off.Sign() == 0 {
		return ce.Null()
	}

	blk := integer.FromBig(off)

	return e.signed.Encode(&blk)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (x Sequence) MarshalBinary() (data []byte, err error) {
	buf := &bytes.Buffer{}

	err = NewEncoder(buf).Encode(x)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
