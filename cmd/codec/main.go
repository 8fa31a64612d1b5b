// Command codec is a thin CLI front end over the streamcodec package: it
// pipes stdin through a named encoder or decoder session and writes the
// result to stdout, flushing any trailing state with End.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/shogo82148/streamcodec"
)

func main() {
	os.Exit(run())
}

func run() int {
	var decode bool
	var name string
	flag.BoolVar(&decode, "d", false, "decode data")
	flag.BoolVar(&decode, "decode", false, "decode data")
	flag.StringVar(&name, "name", "utf8", "encoding name (utf8, cesu8, binary, hex, base64, utf32le, utf32be, utf32)")
	flag.Parse()

	host := streamcodec.NewDefaultHost()
	if decode {
		return runDecode(os.Stdout, os.Stdin, host, name)
	}
	return runEncode(os.Stdout, os.Stdin, host, name)
}

func runEncode(w io.Writer, r io.Reader, host streamcodec.Host, name string) int {
	enc, err := host.GetEncoder(name, streamcodec.EncoderOptions{})
	if err != nil {
		log.Println(err)
		return 1
	}
	input, err := io.ReadAll(r)
	if err != nil {
		log.Println(err)
		return 1
	}
	if _, err := w.Write(enc.Write(streamcodec.EncodeToUnits(string(input)))); err != nil {
		log.Println(err)
		return 1
	}
	if _, err := w.Write(enc.End()); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func runDecode(w io.Writer, r io.Reader, host streamcodec.Host, name string) int {
	dec, err := host.GetDecoder(name, streamcodec.DecoderOptions{})
	if err != nil {
		log.Println(err)
		return 1
	}
	input, err := io.ReadAll(r)
	if err != nil {
		log.Println(err)
		return 1
	}
	frag := dec.Write(input)
	frag = append(frag, dec.End()...)
	if _, err := io.WriteString(w, frag.String()); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}
