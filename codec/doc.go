// Package codec provides ready-made encode/decode contract implementations
// for flatvec containers with byte flat units.
//
// Codecs fall into three groups:
//
//   - Plain storage: Bytes, String store values as-is. The View variants
//     (BytesView, StringView) decode zero-copy borrowed views instead of
//     owned copies.
//   - Structured storage: JSON and GoJSON marshal arbitrary values, so a
//     container of bytes can hold a sequence of records.
//   - Compressed storage: Zstd, LZ4 and Gzip compress on the way in and
//     decompress on the way out, trading decode cost for memory.
//
// Codec selection is a compatibility boundary: units written by one codec
// decode correctly only through its matching counterpart. The container
// does not check this; it is a convention between the writing and reading
// sides.
package codec
