package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jroosing/dnswire/internal/master"
	"github.com/jroosing/dnswire/internal/rdata"
	"github.com/jroosing/dnswire/internal/wire"
)

// scan-rdata reads RFC 3597 generic record data text ("\# <len> <hex>")
// from its arguments or stdin and prints the decoded wire bytes as hex.
func main() {
	flag.Parse()

	var in io.Reader
	if flag.NArg() > 0 {
		in = strings.NewReader(strings.Join(flag.Args(), " "))
	} else {
		in = os.Stdin
	}

	var sink wire.Sink
	if err := rdata.ScanGeneric(master.NewStream(in), &sink); err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%X\n", sink.Bytes())
}
