package digitseq

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/computronium/digitseq/series"
)

func TestMarshalBinary(t *testing.T) {
	type TC struct {
		input  string
		output []byte
		Mark   error
	}

	tcs := []TC{
		{
			input: "5",
			output: []byte{
				0b_0000_0110, // sequence
				0b_1001_0100, // +10
				0b_0000_0110, // digits
				0b_1000_0101, // 5
				0b_0000_0100,
				0b_0000_0001, // finite
				0b_0000_0100,
			},
			Mark: oops.New("unexpected"),
		},
		{
			input: "-5",
			output: []byte{
				0b_0000_0110,
				0b_1001_0101, // -10
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0001,
				0b_0000_0100,
			},
			Mark: oops.New("unexpected"),
		},
		{
			input: "0",
			output: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0000,
				0b_0000_0100,
				0b_0000_0001,
				0b_0000_0100,
			},
			Mark: oops.New("unexpected"),
		},
		{
			input: "(15)0b16",
			output: []byte{
				0b_0000_0110,
				0b_1010_0000, // +16
				0b_0000_0110,
				0b_1000_0000,
				0b_1000_1111,
				0b_0000_0100,
				0b_0000_0001,
				0b_0000_0100,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.input), func(t *testing.T) {
			x := MustParse(tc.input)

			data, err := x.MarshalBinary()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.output, data, tc.Mark)

			var y Sequence
			err = y.UnmarshalBinary(data)
			require.NoError(t, err, tc.Mark)
			require.True(t, x.Equal(y), tc.Mark)
		})
	}
}

func TestMarshalBinaryTails(t *testing.T) {
	tok := uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff")

	type TC struct {
		name   string
		offset int64
		tail   []byte
	}

	tcs := []TC{
		{
			name:   "no offset",
			offset: 0,
			tail:   []byte{0b_0000_0000},
		},
		{
			name:   "negative offset",
			offset: -7,
			tail:   []byte{0b_1000_1111},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			s, err := series.NewBuilder(10).
				AddToken(tok, 2).
				AddDigit(3).
				WithOffset(big.NewInt(tc.offset)).
				Build()
			require.NoError(t, err)

			x := FromSeries(false, s)

			want := []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0011,
				0b_0000_0100,
				0b_0000_0110, // provenance
				0b_0100_1111, // 16 bytes
			}
			want = append(want, tok[:]...)
			want = append(want, 0b_1000_0100) // +2
			want = append(want, 0b_0000_0100)
			want = append(want, tc.tail...)
			want = append(want, 0b_0000_0100)

			data, err := x.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, want, data)

			var y Sequence
			require.NoError(t, y.UnmarshalBinary(data))
			require.True(t, x.Equal(y))
			require.Equal(t, tc.offset, y.Series().Offset().Int64())
		})
	}
}

func TestBinaryRoundtrip(t *testing.T) {
	x := MustParse("...123")

	values := append(samples(),
		x,
		x.MustAdd(x),
		x.Neg().MustMul(MustParse("7")),
		x.MustMul(MustParse("...45")),
		MustParse("-...1234b9"),
		MustParse("...(11)(12)0b13"),
		MustParse("12345678901234567890123456789"),
		x.MustAdd(MustParse("12345678901234567890")),
		x.MustSub(MustParse("600")),
	)

	for i, x := range values {
		t.Run(fmt.Sprintf("[%d]%s", i, x), func(t *testing.T) {
			data, err := x.MarshalBinary()
			require.NoError(t, err)

			var y Sequence
			err = y.UnmarshalBinary(data)
			require.NoError(t, err, "%x", data)

			if !x.Equal(y) {
				t.Logf("x: %s\ny: %s", spew.Sdump(x), spew.Sdump(y))
			}
			require.True(t, x.Equal(y))
			require.Equal(t, x.Hash(), y.Hash())
			require.Empty(t, cmp.Diff(x.Series().Provenance(), y.Series().Provenance()))

			// Decoded tails keep working with the originals.
			if !x.IsFinite() {
				zero, err := x.Sub(y)
				require.NoError(t, err)
				require.True(t, zero.IsZero())
			}
		})
	}
}

func TestStream(t *testing.T) {
	values := samples()

	buf := &bytes.Buffer{}
	e := NewEncoder(buf)
	for _, x := range values {
		require.NoError(t, e.Encode(x))
	}

	d := NewDecoder(bytes.NewReader(buf.Bytes()))

	var got []Sequence
	for {
		var x Sequence

		err := d.Decode(&x)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		got = append(got, x)
	}

	require.Len(t, got, len(values))
	for i := range values {
		require.True(t, values[i].Equal(got[i]), "[%d] %v != %v", i, values[i], got[i])
	}
}

func TestUnmarshalBinaryInvalid(t *testing.T) {
	valid, err := MustParse("5").MarshalBinary()
	require.NoError(t, err)

	type TC struct {
		name   string
		input  []byte
		format bool
	}

	tcs := []TC{
		{
			name:  "empty",
			input: nil,
		},
		{
			name:  "trailing data",
			input: append(append([]byte{}, valid...), 0b_1000_0001),
		},
		{
			name:  "two sequences",
			input: append(append([]byte{}, valid...), valid...),
		},
		{
			name:  "truncated",
			input: valid[:len(valid)-1],
		},
		{
			name:  "not a container",
			input: []byte{0b_1000_0001},
		},
		{
			name: "unsigned header",
			input: []byte{
				0b_0000_0110,
				0b_0000_0110,
			},
		},
		{
			name: "short token",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0110,
				0b_1000_0001,
				0b_1000_0010,
				0b_0000_0100,
				0b_0000_0000,
				0b_0000_0100,
			},
		},
		{
			name: "negative multiplicity",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0110,
				0b_0100_1111,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				0b_1000_0011, // -1
				0b_0000_0100,
				0b_0000_0000,
				0b_0000_0100,
			},
		},
		{
			name: "zero multiplicity",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0110,
				0b_0100_1111,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				0b_1000_0000, // +0
				0b_0000_0100,
				0b_0000_0000,
				0b_0000_0100,
			},
		},
		{
			name: "empty provenance",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0110,
				0b_0000_0100,
				0b_0000_0000,
				0b_0000_0100,
			},
		},
		{
			name: "missing tails",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0100,
			},
		},
		{
			name: "missing offset",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_0101,
				0b_0000_0100,
				0b_0000_0110,
				0b_0100_1111,
				0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
				0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
				0b_1000_0010, // +1
				0b_0000_0100,
			},
		},
		{
			name: "base one",
			input: []byte{
				0b_0000_0110,
				0b_1000_0010, // +1
				0b_0000_0110,
				0b_1000_0000,
				0b_0000_0100,
				0b_0000_0001,
				0b_0000_0100,
			},
			format: true,
		},
		{
			name: "digit out of range",
			input: []byte{
				0b_0000_0110,
				0b_1001_0100,
				0b_0000_0110,
				0b_1000_1010, // 10
				0b_0000_0100,
				0b_0000_0001,
				0b_0000_0100,
			},
			format: true,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			var x Sequence

			err := x.UnmarshalBinary(tc.input)
			require.Error(t, err)
			require.True(t, Error.Has(err), "%+v", err)
			require.Equal(t, tc.format, FormatError.Has(err), "%+v", err)
			require.True(t, x.Equal(Sequence{}))
		})
	}
}
