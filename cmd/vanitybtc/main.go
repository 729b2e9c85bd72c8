// Command vanitybtc brute-forces secp256k1 private keys for P2PKH
// addresses matching one or more Base58 prefixes. Grounded on
// original_source/vanitygen.c's main()/CLI surface, expressed with
// pflag.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/coralbyte/vanitybtc/internal/appctx"
	"github.com/coralbyte/vanitybtc/internal/pattern"
	"github.com/coralbyte/vanitybtc/internal/search"
	"github.com/coralbyte/vanitybtc/internal/wallet"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("vanitybtc", pflag.ContinueOnError)
	maxHits := flags.IntP("count", "c", 1, "stop after N hits")
	caseInsensitive := flags.BoolP("insensitive", "i", false, "case-insensitive prefix matching")
	keepGoing := flags.BoolP("keep-going", "k", false, "keep going indefinitely")
	quiet := flags.BoolP("quiet", "q", false, "quiet: one CSV line per hit")
	workers := flags.IntP("threads", "t", 0, "worker count (clamped to [1, 2*numCPU])")
	verbose := flags.BoolP("verbose", "v", false, "dump patterns and timing")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	prefixes := flags.Args()
	if len(prefixes) == 0 {
		fmt.Fprintln(os.Stderr, "usage: vanitybtc [options] prefix ...")
		return 1
	}

	log := appctx.NewLogger(*verbose)

	table := &pattern.Table{}
	for _, p := range prefixes {
		if err := table.AddPrefix(p, *caseInsensitive); err != nil {
			fmt.Fprintf(os.Stderr, "invalid prefix %q: %v\n", p, err)
			return 1
		}
	}
	if table.Len() == 0 {
		fmt.Fprintln(os.Stderr, "no valid prefixes")
		return 1
	}

	if *verbose {
		log.Debug().Int("intervals", table.Len()).Float64("difficulty", pattern.Difficulty(table)).Msg("compiled pattern table")
		for _, iv := range table.Intervals() {
			log.Debug().Hex("low", iv.Low[:]).Hex("high", iv.High[:]).Msg("interval")
		}
	}

	cfg := search.Config{
		Workers:   search.ClampWorkers(*workers, runtime.NumCPU()),
		MaxHits:   *maxHits,
		KeepGoing: *keepGoing,
		Quiet:     *quiet,
		Pin:       true,
	}

	ctx, cancel := appctx.WithSignalCancel(context.Background())
	defer cancel()

	coord := search.New(cfg, table, log)
	err := coord.Run(ctx, func(h search.Hit) {
		if *quiet {
			fmt.Printf("%s,%s\n", wallet.EncodeWIF(h.PrivateKey), wallet.EncodeAddress(h.Hash160))
			return
		}
		// Leading newline moves past the in-place-rewritten status line
		// before printing the hit block.
		fmt.Printf("\nPrivate Key: %s\n", wallet.EncodeWIF(h.PrivateKey))
		fmt.Printf("Address: %s\n", wallet.EncodeAddress(h.Hash160))
		fmt.Println("---")
	})
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		return 1
	}
	return 0
}
