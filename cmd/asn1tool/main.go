package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/gemalto/asn1parser/internal/asnutil"
	"github.com/gemalto/asn1parser/tlv"
	"github.com/gemalto/flume"
)

const FormatHex = "hex"
const FormatDER = "der"
const FormatText = "text"

var log = flume.New("asn1tool")

func main() {

	flag.Usage = func() {
		s := `asn1tool - ASN.1 DER dump and encode tool

Usage:  asn1tool [options] [input]

Dumps the structure of DER encoded ASN.1, or, with -t, encodes a single
value of a universal type.

The input argument should be a string.  If not present, input will
be read from standard in, or from the file named by -f.

When reading hex input, whitespace and the separators '|', ':' and '-'
are ignored.

Examples:

    asn1tool 300c0101ff0201053002050004 00
    asn1tool -t PrintableString "HELLO (WORLD)"
    asn1tool -t UTCTime -o hex 2019-12-16T03:02:10Z

Output (in 'text' format):

    SEQUENCE (2+12) @0
      BOOLEAN (2+1) @2: ff
      INTEGER (2+1) @5: 05
      SEQUENCE (2+2) @8
        NULL (2+0) @10
      OCTET STRING (2+0) @12

Types accepted by -t:

    BOOLEAN, INTEGER, ENUMERATED, NULL, BIT STRING, OCTET STRING,
    UTF8String, PrintableString, IA5String, VisibleString, TeletexString,
    NumericString, BMPString, UniversalString, UTCTime, GeneralizedTime

BIT STRING and OCTET STRING values are read as hex.  Times are read as
RFC 3339.
`
		_, _ = fmt.Fprintln(flag.CommandLine.Output(), s)
		flag.PrintDefaults()
	}

	var inFormat string
	var outFormat string
	var inFile string
	var typeName string
	var precise bool
	var debug bool
	flag.StringVar(&inFormat, "i", FormatHex, "input format: hex|der")
	flag.StringVar(&outFormat, "o", FormatText, "output format: text|hex|der")
	flag.StringVar(&inFile, "f", "", "input file name, defaults to stdin")
	flag.StringVar(&typeName, "t", "", "encode the input as a value of this universal type")
	flag.BoolVar(&precise, "p", false, "include milliseconds when encoding times")
	flag.BoolVar(&debug, "d", false, "enable debug logging")

	flag.Parse()

	if debug {
		flume.Configure(flume.Config{
			Development:  true,
			DefaultLevel: flume.DebugLevel,
		})
	}

	input := readInput(inFile, flag.Arg(0))

	var raw []byte
	if typeName != "" {
		tag, err := tlv.ParseUniversalTag(typeName)
		if err != nil {
			fail("invalid type", err)
		}
		v, err := encodeValue(tag, strings.TrimSpace(string(input)), precise)
		if err != nil {
			fail("error encoding "+tag.String(), err)
		}
		raw = v.Bytes()
	} else {
		switch strings.ToLower(inFormat) {
		case FormatHex:
			b, err := asnutil.ParseHex(string(input))
			if err != nil {
				fail("error parsing hex", err)
			}
			raw = b
		case FormatDER:
			raw = input
		default:
			fail("invalid input format: "+inFormat, nil)
		}
	}

	log.Debug("input read", "bytes", len(raw))

	switch strings.ToLower(outFormat) {
	case FormatText:
		err := tlv.Print(os.Stdout, "  ", raw)
		fmt.Println()
		if err != nil {
			fail("error parsing", err)
		}
	case FormatHex:
		fmt.Println(hex.EncodeToString(raw))
	case FormatDER:
		if _, err := os.Stdout.Write(raw); err != nil {
			fail("error writing", err)
		}
	default:
		fail("invalid output format: "+outFormat, nil)
	}
}

func readInput(inFile, inArg string) []byte {
	if inFile != "" {
		file, err := ioutil.ReadFile(inFile)
		if err != nil {
			fail("error reading input file", err)
		}
		return file
	}
	if inArg != "" {
		return []byte(inArg)
	}

	buf := bytes.NewBuffer(nil)
	r := bufio.NewReader(os.Stdin)
	if _, err := buf.ReadFrom(r); err != nil {
		fail("error reading standard input", err)
	}
	return buf.Bytes()
}

func fail(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, msg+":", err)
	} else {
		_, _ = fmt.Fprintln(os.Stderr, msg)
	}
	os.Exit(1)
}
