package control_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/computronium/digitseq/control"
)

func TestRoundtrip(t *testing.T) {
	t.Run("data", func(t *testing.T) {
		type TC struct {
			Input  []byte
			Output []byte
			Type   control.Type
			Mark   error
		}

		tcs := []TC{
			{
				Input:  []byte{0b_0000_0000},
				Output: []byte{0b_1000_0000},
				Type:   control.Data,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0100_0000},
				Output: []byte{0b_1100_0000},
				Type:   control.Data,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_1000_0000},
				Output: []byte{0b_0100_0000, 0b_1000_0000},
				Type:   control.DataSize,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0000_0000, 0b_0000_0000},
				Output: []byte{0b_0010_0000, 0b_0000_0000},
				Type:   control.Data1,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0001_0000, 0b_0000_0000},
				Output: []byte{0b_0011_0000, 0b_0000_0000},
				Type:   control.Data1,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0010_0000, 0b_0000_0000},
				Output: []byte{0b_0100_0001, 0b_0010_0000, 0b_0000_0000},
				Type:   control.DataSize,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0000_0000, 0b_0000_0000, 0b_0000_0000},
				Output: []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Type:   control.Data2,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0000_1000, 0b_0000_0000, 0b_0000_0000},
				Output: []byte{0b_0001_1000, 0b_0000_0000, 0b_0000_0000},
				Type:   control.Data2,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  []byte{0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Output: []byte{0b_0100_0010, 0b_0001_0000, 0b_0000_0000, 0b_0000_0000},
				Type:   control.DataSize,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  make([]byte, 4),
				Output: append([]byte{0b_0100_0011}, make([]byte, 4)...),
				Type:   control.DataSize,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  make([]byte, 64),
				Output: append([]byte{0b_0111_1111}, make([]byte, 64)...),
				Type:   control.DataSize,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  make([]byte, 65),
				Output: append([]byte{0b_0000_1000, 0b_0100_0000}, make([]byte, 65)...),
				Type:   control.DataSizeSize,
				Mark:   oops.New("unexpected"),
			},
			{
				Input:  make([]byte, 257),
				Output: append([]byte{0b_0000_1001, 0b_0000_0001, 0b_0000_0000}, make([]byte, 257)...),
				Type:   control.DataSizeSize,
				Mark:   oops.New("unexpected"),
			},
		}

		for i, tc := range tcs {
			t.Run(fmt.Sprintf("[%d]", i), func(t *testing.T) {
				buf := &bytes.Buffer{}

				e := control.NewEncoder(buf)
				err := e.Data(tc.Input)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Output, buf.Bytes(), tc.Mark)

				d := control.NewDecoder(bytes.NewReader(buf.Bytes()))
				require.True(t, d.Next(), tc.Mark)
				require.NoError(t, d.Err(), tc.Mark)
				require.Equal(t, tc.Type, d.Type(), tc.Mark)

				data, err := d.Data()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Input, data, tc.Mark)
				require.Equal(t, uint64(len(tc.Output)), d.Consumed(), tc.Mark)

				require.False(t, d.Next(), tc.Mark)
				require.NoError(t, d.Err(), tc.Mark)
			})
		}
	})

	t.Run("containers", func(t *testing.T) {
		buf := &bytes.Buffer{}

		e := control.NewEncoder(buf)
		err := e.Unbound(func(e control.Encoder) error {
			err := e.Data([]byte{1})
			if err != nil {
				return err
			}

			err = e.Unbound(func(e control.Encoder) error {
				err := e.Data([]byte{2})
				if err != nil {
					return err
				}

				return e.Data([]byte{3})
			})
			if err != nil {
				return err
			}

			err = e.Empty()
			if err != nil {
				return err
			}

			return e.Null()
		})
		require.NoError(t, err)
		require.Equal(t, []byte{
			0b_0000_0110,
			0b_1000_0001,
			0b_0000_0110,
			0b_1000_0010,
			0b_1000_0011,
			0b_0000_0100,
			0b_0000_0001,
			0b_0000_0000,
			0b_0000_0100,
		}, buf.Bytes())

		d := control.NewDecoder(bytes.NewReader(buf.Bytes()))
		require.NoError(t, control.Expect(d, control.ContainerUnbounded))
		require.Equal(t, 1, d.Depth())

		var (
			outer []control.Type
			inner [][]byte
		)

		err = control.Each(d, func(d control.Decoder) error {
			outer = append(outer, d.Type())

			if d.Type() != control.ContainerUnbounded {
				return nil
			}

			return control.Each(d, func(d control.Decoder) error {
				data, err := d.Data()
				if err != nil {
					return err
				}
				inner = append(inner, data)

				return nil
			})
		})
		require.NoError(t, err)
		require.Equal(t, []control.Type{
			control.Data,
			control.ContainerUnbounded,
			control.Empty,
			control.Null,
		}, outer)
		require.Equal(t, [][]byte{{2}, {3}}, inner)
		require.Equal(t, 0, d.Depth())

		require.False(t, d.Next())
		require.NoError(t, d.Err())
	})
}

func TestEncoderInvalid(t *testing.T) {
	e := control.NewEncoder(&bytes.Buffer{})

	err := e.Data(nil)
	require.Error(t, err)
	require.True(t, control.Error.Has(err))
}
