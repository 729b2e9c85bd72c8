// Package search coordinates a pool of secpbatch engines against a pattern
// table, reporting throughput, match probability, and percentile ETAs.
// Grounded on original_source/vanitygen.c's manager_loop() and on
// cmd/hexhunter/main.go's worker-goroutine-plus-ticker shape.
package search

import (
	"context"
	"fmt"
	"math"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/coralbyte/vanitybtc/internal/cpuaffinity"
	"github.com/coralbyte/vanitybtc/internal/pattern"
	"github.com/coralbyte/vanitybtc/internal/secpbatch"
	"github.com/coralbyte/vanitybtc/internal/wallet"
)

// percentileTargets are the match-probability milestones manager_loop reports
// an ETA for.
var percentileTargets = [...]float64{0.50, 0.75, 0.80, 0.90, 0.95}

// movingAverageSamples is the width of the throughput moving average.
const movingAverageSamples = 8

// Hit is a verified match: the private key and the hash160 it produced.
type Hit struct {
	PrivateKey [32]byte
	Hash160    [20]byte
}

// Config controls a Coordinator's run.
type Config struct {
	Workers   int
	MaxHits   int  // 0 means unbounded
	KeepGoing bool // continue searching after MaxHits is reached
	Quiet     bool // suppress the periodic status line
	Pin       bool // pin workers to distinct CPU cores
}

// ClampWorkers bounds a requested worker count to [1, 2*numCPU], defaulting
// to numCPU when requested is 0 or negative.
func ClampWorkers(requested, numCPU int) int {
	if numCPU <= 0 {
		numCPU = 1
	}
	if requested <= 0 {
		return numCPU
	}
	max := 2 * numCPU
	if requested > max {
		return max
	}
	return requested
}

// Coordinator owns the worker pool, the shared hash counter, and the status
// reporting loop.
type Coordinator struct {
	cfg   Config
	table *pattern.Table
	log   zerolog.Logger

	counter     uint64
	lastLineLen int // length of the previously written status line, for clearing
}

// New builds a Coordinator for table, searching with cfg.
func New(cfg Config, table *pattern.Table, log zerolog.Logger) *Coordinator {
	if cfg.Workers <= 0 {
		cfg.Workers = ClampWorkers(0, runtime.NumCPU())
	}
	return &Coordinator{cfg: cfg, table: table, log: log}
}

// Run spawns cfg.Workers engines and the manager status loop, streaming
// verified hits to onHit. It returns when ctx is canceled, when MaxHits is
// reached (and KeepGoing is false), or when every worker has exited.
func (c *Coordinator) Run(ctx context.Context, onHit func(Hit)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hits := make(chan [52]byte, c.cfg.Workers)
	errs := make(chan error, c.cfg.Workers)

	var wg sync.WaitGroup
	for i := 0; i < c.cfg.Workers; i++ {
		wg.Add(1)
		idx := i
		go func() {
			defer wg.Done()
			if c.cfg.Pin {
				_ = cpuaffinity.Pin(idx)
			}
			eng := secpbatch.NewEngine()
			if err := eng.Run(ctx, c.table, &c.counter, hits); err != nil {
				errs <- fmt.Errorf("worker %d: %w", idx, err)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(hits)
	}()

	difficulty := pattern.Difficulty(c.table)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var samples [movingAverageSamples]uint64
	var sampleIdx int
	var lastCount uint64
	start := time.Now()

	numHits := 0
	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errs:
			// A failed worker stops on its own; the others keep searching.
			c.log.Error().Err(err).Msg("worker stopped")

		case rec, ok := <-hits:
			if !ok {
				return nil
			}
			var priv [32]byte
			var h160 [20]byte
			copy(priv[:], rec[:32])
			copy(h160[:], rec[32:])

			if !wallet.Verify(priv, h160) {
				c.log.Warn().Msg("discarding unverifiable hit")
				continue
			}

			onHit(Hit{PrivateKey: priv, Hash160: h160})
			numHits++
			if c.cfg.MaxHits > 0 && numHits >= c.cfg.MaxHits && !c.cfg.KeepGoing {
				cancel()
				return nil
			}

		case <-ticker.C:
			count := atomic.LoadUint64(&c.counter)
			samples[sampleIdx%movingAverageSamples] = count - lastCount
			sampleIdx++
			lastCount = count

			if c.cfg.Quiet {
				continue
			}
			c.reportStatus(count, difficulty, samples[:], sampleIdx, time.Since(start))
		}
	}
}

// reportStatus rewrites a single status line on stdout in place (spec §4.6,
// §6), carrying throughput, cumulative match probability, and the ETA to the
// nearest percentile target not yet reached. zerolog is reserved for side-channel/debug output (warnings,
// the -v pattern dump) and never touches this line.
func (c *Coordinator) reportStatus(count uint64, difficulty float64, samples []uint64, sampleIdx int, elapsed time.Duration) {
	n := sampleIdx
	if n > len(samples) {
		n = len(samples)
	}
	var sum uint64
	for i := 0; i < n; i++ {
		sum += samples[i]
	}
	var avgRate float64
	if n > 0 {
		avgRate = float64(sum) / float64(n)
	}

	prob := 1 - math.Exp(-float64(count)/difficulty)

	line := fmt.Sprintf("[%s] %d keys, %.0f keys/s, %.4f%% probability",
		elapsed.Round(time.Second), count, avgRate, prob*100)

	if avgRate > 0 {
		for _, target := range percentileTargets {
			if prob >= target {
				continue
			}
			eta := (-difficulty*math.Log(1-target) - float64(count)) / avgRate
			if eta < 0 {
				eta = 0
			}
			line += fmt.Sprintf(", %.0f%%@%s", target*100, time.Duration(eta*float64(time.Second)).Round(time.Second))
			break
		}
	}

	pad := 0
	if c.lastLineLen > len(line) {
		pad = c.lastLineLen - len(line)
	}
	fmt.Fprintf(os.Stdout, "\r%s%s", line, strings.Repeat(" ", pad))
	c.lastLineLen = len(line)
}

// FormatHit renders a Hit the way announce_result() does: address, WIF,
// raw hash160.
func FormatHit(h Hit) string {
	return fmt.Sprintf("address=%s wif=%s hash160=%x",
		wallet.EncodeAddress(h.Hash160), wallet.EncodeWIF(h.PrivateKey), h.Hash160[:])
}
