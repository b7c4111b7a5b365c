package can

import "testing"

// FuzzCodecReadDecodeInvalid ensures Read never panics on arbitrary or
// truncated buffers, only ever returning a DecodeError.
func FuzzCodecReadDecodeInvalid(f *testing.F) {
	m := map[string]string{"interface": "stream", "type": "can", "schema": "fbs"}
	seed := NewCodec(m, "fuzz-model", 0)
	seed.Write([]CanMessage{
		mkMessage(0x100, 0, 0, 0, nil),
		mkMessage(0x200, 1, 2, 3, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
	})
	seed.Flush()
	f.Add(seed.Stream)
	f.Add([]byte{0x01})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		c := NewCodec(map[string]string{}, "fuzz-model", 0)
		c.Stream = data
		_, _ = c.Read()
	})
}
