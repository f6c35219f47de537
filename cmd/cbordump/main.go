// Command cbordump reads a CBOR document from a file and either
// validates its structure or renders it in the textual form produced
// by cborlite.PrettyPrint.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mbed-edge/cborlite/cborlite"
)

// CLI defines the cbordump command-line interface. Kept minimal, in
// the spirit of the generator tool this package's CLI was modeled on:
// one required input, two flags controlling how much it does.
type CLI struct {
	Pretty   bool   `short:"p" help:"Render the document with PrettyPrint instead of just validating it."`
	Validate bool   `short:"c" help:"Only check that the file holds one well-formed CBOR item."`
	File     string `arg:"" help:"Path to a file holding a single CBOR-encoded item, or - for stdin."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cbordump"),
		kong.Description("Inspect a CBOR document without decoding it into Go values."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	var b []byte
	var err error
	if cli.File == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(cli.File)
	}
	if err != nil {
		return err
	}

	n, ok := cborlite.MeasureDocument(b)
	if !ok {
		return fmt.Errorf("%s: not a well-formed CBOR item", cli.File)
	}
	if n != len(b) {
		fmt.Fprintf(os.Stderr, "warning: %d trailing byte(s) after the first item\n", len(b)-n)
	}

	if cli.Validate {
		fmt.Printf("%s: ok, %d byte item\n", cli.File, n)
		return nil
	}

	if cli.Pretty {
		fmt.Print(cborlite.PrettyPrint(b[:n]))
		return nil
	}

	fmt.Printf("%s: %d byte well-formed CBOR item (pass --pretty to render it)\n", cli.File, n)
	return nil
}
