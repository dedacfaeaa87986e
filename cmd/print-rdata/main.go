package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jroosing/dnswire/internal/helpers"
	"github.com/jroosing/dnswire/internal/logging"
	"github.com/jroosing/dnswire/internal/rdata"
	"github.com/miekg/dns"
)

func main() {
	var (
		generic  = flag.Bool("generic", false, "Also print the RFC 3597 generic form")
		debug    = flag.Bool("debug", false, "Enable debug logging")
		jsonLogs = flag.Bool("json-logs", false, "Enable JSON structured logging")
	)
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: print-rdata [-generic] TYPE HEXDATA\n")
		os.Exit(2)
	}

	level := "INFO"
	if *debug {
		level = "DEBUG"
	}
	logger := logging.Configure(logging.Config{Level: level, JSON: *jsonLogs})

	rtype, err := resolveType(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	data, err := hex.DecodeString(strings.ReplaceAll(flag.Arg(1), " ", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad hex data: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("parsing record data", "rtype", rtype.String(), "bytes", len(data))

	p, err := rdata.NewParser(data, 0, len(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read record data: %v\n", err)
		os.Exit(1)
	}
	v, err := rdata.ParseAny(rtype, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse record data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s %s\n", v.Rtype(), v)
	if *generic {
		fmt.Printf("\\# %d %s\n",
			helpers.ClampIntToUint16(len(data)),
			strings.ToUpper(hex.EncodeToString(data)))
	}
}

// resolveType maps a type mnemonic or RFC 3597 "TYPE###" form to its
// code, using the IANA tables from miekg/dns so every registered
// mnemonic is accepted.
func resolveType(s string) (rdata.RecordType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if code, ok := dns.StringToType[s]; ok {
		return rdata.RecordType(code), nil
	}
	if rest, found := strings.CutPrefix(s, "TYPE"); found {
		if v, err := strconv.ParseUint(rest, 10, 16); err == nil {
			return rdata.RecordType(v), nil
		}
	}
	return 0, fmt.Errorf("unknown record type %q", s)
}
