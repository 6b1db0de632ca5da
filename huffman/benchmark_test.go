package huffman

import (
	"strings"
	"testing"
)

func repeatText(text string, size int) string {
	return strings.Repeat(text, size/len(text)+1)[:size]
}

// BenchmarkEncode benchmarks text encoding with various sizes.
func BenchmarkEncode(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog. This is a test of compression performance. "

	benchmarks := []struct {
		name string
		text string
	}{
		{"Small_100B", repeatText(text, 100)},
		{"Medium_1KB", repeatText(text, 1024)},
		{"Large_10KB", repeatText(text, 10*1024)},
		{"VeryLarge_100KB", repeatText(text, 100*1024)},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.text)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Encode(bm.text, Options{}); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkDecode benchmarks text decoding with various sizes.
func BenchmarkDecode(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog. This is a test of compression performance. "

	benchmarks := []struct {
		name string
		text string
	}{
		{"Small_100B", repeatText(text, 100)},
		{"Medium_1KB", repeatText(text, 1024)},
		{"Large_10KB", repeatText(text, 10*1024)},
		{"VeryLarge_100KB", repeatText(text, 100*1024)},
	}

	for _, bm := range benchmarks {
		enc, err := Encode(bm.text, Options{})
		if err != nil {
			b.Fatal(err)
		}

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.text)))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decode(enc.Tree, enc.Payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
