package utils

import (
	"encoding/base64"
	"strings"
)

// base64ChunkSize is the number of input bytes handed to the encoder per
// write.
const base64ChunkSize = 32 * 1024

// EncodeBase64 returns the standard, padded Base64 encoding of data. Input
// is streamed to the encoder in 32 KiB chunks; the encoder buffers partial
// 3-byte groups between writes, so the result equals the encoding of the
// whole input.
func EncodeBase64(data []byte) string {
	var sb strings.Builder
	sb.Grow(base64.StdEncoding.EncodedLen(len(data)))

	enc := base64.NewEncoder(base64.StdEncoding, &sb)
	for start := 0; start < len(data); start += base64ChunkSize {
		end := min(start+base64ChunkSize, len(data))
		enc.Write(data[start:end])
	}
	enc.Close()

	return sb.String()
}
