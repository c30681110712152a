// Package control provides the block framing of the binary digit sequence
// format.
//
// Control blocks use a prefix coding scheme in their first byte to indicate
// the type of the block, and with it how many bytes follow. Bits not taken by
// the prefix carry data, so small values need no extra bytes.
//
// Control Block
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type                |                                   |
//  |---------------|---------------||---------------------|-----------------------------------|
//  | 1 |                           || Data                | 2^7 = 128 values                  |
//  | 0 . 1 |                       || Data Size           | up to 64 bytes follow             |
//  | 0 . 0 . 1 |                   || Data + 1            | 2^(5+8) = 8192 values             |
//  | 0 . 0 . 0 . 1 |               || Data + 2            | 2^(4+8+8) = 1048576 values        |
//  | 0 . 0 . 0 . 0 . 1 |           || Data Size Size      | up to 8 size bytes, then the data |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 1 . 0 || Container Unbounded | opens a container                 |
//  | 0 . 0 . 0 . 0 . 0 . 1 . 0 . 0 || Container End       | closes the innermost container    |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty               | empty value                       |
//  | 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null                | null value                        |
//  |---------------|---------------||---------------------|-----------------------------------|
//
// Sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data Size blocks have two parts:
//
//  1. Number of bytes that contain data, minus one
//  2. Data
//
// Data Size Size blocks have three parts:
//
//  1. Number of bytes for the data size, minus one
//  2. Number of bytes that contain data, minus one, big endian
//  3. Data
//
// An unbounded container holds any number of blocks, including other
// containers, up to its matching Container End.
package control
