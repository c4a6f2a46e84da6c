package benchmarks

import (
	"strings"
	"testing"

	"github.com/zoobzio/jsoncodec"
	codectest "github.com/zoobzio/jsoncodec/testing"
)

func people(n int) []codectest.Person {
	p := codectest.NewPerson(strings.Repeat("a", 1000), false)
	out := make([]codectest.Person, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func BenchmarkCodec_Encode_List(b *testing.B) {
	c, _ := jsoncodec.List[codectest.Person]()
	v := people(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encode(v)
	}
}

func BenchmarkCodec_EncodeWithLimit_EarlyAbort(b *testing.B) {
	c, _ := jsoncodec.List[codectest.Person]()
	v := people(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.EncodeWithLimit(v, 4096)
	}
}

func BenchmarkCodec_EncodeWithLimit_Fits(b *testing.B) {
	c, _ := jsoncodec.List[codectest.Person]()
	v := people(10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.EncodeWithLimit(v, 1<<20)
	}
}

func BenchmarkCodec_Decode(b *testing.B) {
	c, _ := jsoncodec.List[codectest.Person]()
	data, _ := c.Encode(people(100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Decode(data)
	}
}
