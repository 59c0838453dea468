package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katakit/kata/codec"
	"github.com/katakit/kata/dsl"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "kata CLI\n\nUsage:\n  kata convert -from json -to yaml [-i in] [-o out]\n  kata check -format json [-i in]\n\nFormats: json, yaml, msgpack")
}

var contentTypes = map[string]string{
	"json":    "application/json",
	"yaml":    "application/yaml",
	"msgpack": "application/msgpack",
}

func codecFor(name string) codec.Codec {
	ct, ok := contentTypes[name]
	if !ok {
		fatalf("unknown format %q", name)
	}
	c, ok := codec.Lookup(ct)
	if !ok {
		fatalf("no codec registered for %q", ct)
	}
	return c
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var from, to, in, out string
	fs.StringVar(&from, "from", "json", "input format")
	fs.StringVar(&to, "to", "yaml", "output format")
	fs.StringVar(&in, "i", "", "input file (default stdin)")
	fs.StringVar(&out, "o", "", "output file (default stdout)")
	_ = fs.Parse(args)

	data := readInput(in)
	v, err := codec.Decode(codecFor(from), dsl.Anything(), data)
	if err != nil {
		fatalf("decode %s: %v", from, err)
	}
	converted, err := codec.Encode(codecFor(to), dsl.Anything(), v)
	if err != nil {
		fatalf("encode %s: %v", to, err)
	}
	writeOutput(out, converted)
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var format, in string
	fs.StringVar(&format, "format", "json", "input format")
	fs.StringVar(&in, "i", "", "input file (default stdin)")
	_ = fs.Parse(args)

	data := readInput(in)
	if _, err := codec.Decode(codecFor(format), dsl.Anything(), data); err != nil {
		fatalf("malformed %s: %v", format, err)
	}
	fmt.Println("ok")
}

func readInput(path string) []byte {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %v", path, err)
	}
	return data
}

func writeOutput(path string, data []byte) {
	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fatalf("writing stdout: %v", err)
		}
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fatalf("writing %s: %v", path, err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
