package streamcodec_test

import (
	"fmt"

	"github.com/shogo82148/streamcodec"
)

func Example() {
	host := streamcodec.NewDefaultHost()
	enc, _ := host.GetEncoder("cesu8", streamcodec.EncoderOptions{})
	dec, _ := host.GetDecoder("cesu8", streamcodec.DecoderOptions{})

	units := streamcodec.EncodeToUnits("Hello, 世界 💩")
	encoded := append(enc.Write(units), enc.End()...)
	decoded := append(dec.Write(encoded), dec.End()...)
	fmt.Println(decoded.String())
	// Output:
	// Hello, 世界 💩
}

func ExampleHost_GetEncoder() {
	host := streamcodec.NewDefaultHost()
	enc, err := host.GetEncoder("utf32le", streamcodec.EncoderOptions{})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out := append(enc.Write(streamcodec.EncodeToUnits("A")), enc.End()...)
	fmt.Printf("%x\n", out)
	// Output:
	// 41000000
}

func ExampleHost_GetEncoder_unknown() {
	host := streamcodec.NewDefaultHost()
	_, err := host.GetEncoder("latin9000", streamcodec.EncoderOptions{})
	fmt.Println(err)
	// Output:
	// streamcodec: unknown encoding: "latin9000"
}

func ExamplePrependBOM() {
	host := streamcodec.NewDefaultHost()
	enc, _ := host.GetEncoder("utf32", streamcodec.EncoderOptions{})
	out := streamcodec.PrependBOM(enc).Write(streamcodec.EncodeToUnits("A"))
	fmt.Printf("%x\n", out)
	// Output:
	// fffe000041000000
}

func ExampleFragment_String() {
	f := streamcodec.Fragment{0x48, 0x69}
	fmt.Println(f.String())
	// Output:
	// Hi
}
