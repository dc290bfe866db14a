package main

import (
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	num "github.com/shabbyrobe/go-int2x"
	flag "github.com/spf13/pflag"
)

// A small calculator for poking at the fixed-width types from the shell.
// Every operation uses the checked variants, so overflow is reported rather
// than silently wrapped.

const usage = `Fixed-width integer calculator

Usage: int2xcalc [options] <op> <a> <b>

Ops: add, sub, mul, mulfull, quo, rem, quorem, cmp

Options:
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	width int
	base  int
	comma bool
	dump  bool
}

func run(args []string) error {
	var cfg config

	fs := flag.NewFlagSet("int2xcalc", flag.ContinueOnError)
	fs.IntVarP(&cfg.width, "width", "w", 128, "integer width: 128, 256, 512 or 1024")
	fs.IntVarP(&cfg.base, "base", "b", 10, "base for parsing and printing")
	fs.BoolVarP(&cfg.comma, "comma", "c", false, "group decimal output with commas")
	fs.BoolVar(&cfg.dump, "dump", false, "dump the little-endian words of every result")
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) != 3 {
		fs.Usage()
		return fmt.Errorf("expected 3 args, found %d", len(rest))
	}
	op, a, b := strings.ToLower(rest[0]), rest[1], rest[2]

	switch cfg.width {
	case 128:
		return calc[num.Uint64](cfg, op, a, b)
	case 256:
		return calc[num.U128](cfg, op, a, b)
	case 512:
		return calc[num.U256](cfg, op, a, b)
	case 1024:
		return calc[num.U512](cfg, op, a, b)
	default:
		return fmt.Errorf("unsupported width %d", cfg.width)
	}
}

func calc[W num.Word[W]](cfg config, op, as, bs string) error {
	a, err := num.ParseInt2X[W](as, cfg.base)
	if err != nil {
		return err
	}
	b, err := num.ParseInt2X[W](bs, cfg.base)
	if err != nil {
		return err
	}

	var results []num.Int2X[W]

	switch op {
	case "add":
		v, err := a.AddChecked(b)
		if err != nil {
			return err
		}
		results = append(results, v)

	case "sub":
		v, err := a.SubChecked(b)
		if err != nil {
			return err
		}
		results = append(results, v)

	case "mul":
		v, err := a.MulChecked(b)
		if err != nil {
			return err
		}
		results = append(results, v)

	case "mulfull":
		hi, lo := a.MulFull(b)
		full := new(big.Int).Lsh(hi.AsBigInt(), a.BitWidth())
		full.Add(full, lo.AsBigInt())
		fmt.Println(formatBig(cfg, full))
		if cfg.dump {
			spew.Dump(hi.Words(), lo.Words())
		}
		return nil

	case "quo":
		v, err := a.QuoChecked(b)
		if err != nil {
			return err
		}
		results = append(results, v)

	case "rem":
		v, err := a.RemChecked(b)
		if err != nil {
			return err
		}
		results = append(results, v)

	case "quorem":
		if _, err := a.QuoChecked(b); err != nil {
			return err
		}
		q, r := a.QuoRem(b)
		results = append(results, q, r)

	case "cmp":
		fmt.Println(a.Cmp(b))
		return nil

	default:
		return fmt.Errorf("unknown op %q", op)
	}

	for _, v := range results {
		fmt.Println(formatBig(cfg, v.AsBigInt()))
		if cfg.dump {
			spew.Dump(v.Words())
		}
	}
	return nil
}

func formatBig(cfg config, v *big.Int) string {
	if cfg.comma && cfg.base == 10 {
		return humanize.BigComma(v)
	}
	return v.Text(cfg.base)
}
