// 18 Oct 2026

// Package screen checks reads against a set of contaminant sequences.
// A read is flagged if some local alignment with any contaminant, on
// either strand if asked for, reaches the cutoff. Reads are handed to a
// limited number of goroutines, but the caller sees the verdicts in the
// order the reads came in.
package screen

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/seqscreen/pkg/metrics"
	"github.com/andrew-torda/seqscreen/pkg/seq"
	"github.com/andrew-torda/seqscreen/pkg/swat"
)

// Params for a screen.
type Params struct {
	Scorer      swat.Scorer
	Sigma       float32
	Cutoff      float32
	BothStrands bool // also try the reverse complement of each read
	Threads     int  // at least one is used
}

// Strands a hit can be on.
const (
	Plus  byte = '+'
	Minus byte = '-'
)

// Verdict is the result for one read. If Hit is false, Contam is -1
// and Strand is zero.
type Verdict struct {
	Read   seq.Seq
	Num    int // position of the read in the input, from zero
	Hit    bool
	Contam int  // index of the first contaminant that hit
	Strand byte // Plus or Minus
}

// Source calls fn for each read, like seq.Each, and stops if fn
// returns an error.
type Source func(fn func(seq.Seq) error) error

// FromFile reads from a fasta or fastq file, maybe compressed.
func FromFile(fname string) Source {
	return func(fn func(seq.Seq) error) error { return seq.EachFile(fname, fn) }
}

// FromSlice hands out the sequences in seqs.
func FromSlice(seqs []seq.Seq) Source {
	return func(fn func(seq.Seq) error) error {
		for _, s := range seqs {
			if err := fn(s); err != nil {
				return err
			}
		}
		return nil
	}
}

// Stats are the totals at the end of a screen.
type Stats struct {
	Reads, Flagged int
}

// check screens one read against all contaminants and stops at the
// first hit. Contaminants are tried in order, plus strand first.
func (p *Params) check(read seq.Seq, n int, contams []seq.Seq) Verdict {
	v := Verdict{Read: read, Num: n, Contam: -1}
	s := read.GetSeq()
	var rc []byte
	if p.BothStrands {
		rc = seq.RevComp(s)
	}
	nPlus, nMinus := 0, 0
	defer func() {
		metrics.AddComparisons("plus", nPlus)
		metrics.AddComparisons("minus", nMinus)
	}()
	for k, c := range contams {
		nPlus++
		if swat.Screen(s, c.GetSeq(), p.Scorer, p.Sigma, p.Cutoff) {
			v.Hit, v.Contam, v.Strand = true, k, Plus
			return v
		}
		if rc == nil {
			continue
		}
		nMinus++
		if swat.Screen(rc, c.GetSeq(), p.Scorer, p.Sigma, p.Cutoff) {
			v.Hit, v.Contam, v.Strand = true, k, Minus
			return v
		}
	}
	return v
}

// Check screens a single read. It is what Run does for each read.
func (p Params) Check(read seq.Seq, contams []seq.Seq) Verdict {
	return p.check(read, 0, contams)
}

// inFlight is how many reads, per goroutine, may be handed out but not
// yet passed to visit. It bounds what waits behind a slow read.
const inFlight = 2

type numbered struct {
	n int
	v Verdict
}

// Run screens every read from src against contams and calls visit
// with each verdict, in input order. visit is only ever called from
// one goroutine. Run stops at the first error from reading, from visit
// or from ctx, and returns it.
// At most inFlight*Threads reads are held at any time, however slow
// one of them is.
func Run(ctx context.Context, p Params, src Source, contams []seq.Seq, visit func(Verdict) error) (Stats, error) {
	metrics.Register()
	threads := max(p.Threads, 1)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads + 1) // the reader takes one
	results := make(chan numbered, threads)
	slots := make(chan struct{}, inFlight*threads) // freed in input order

	var stats Stats
	var visitErr error
	collected := make(chan struct{})
	go func() { // put the verdicts back in order
		defer close(collected)
		pending := make(map[int]Verdict)
		next := 0
		for r := range results {
			pending[r.n] = r.v
			for v, ok := pending[next]; ok; v, ok = pending[next] {
				delete(pending, next)
				next++
				<-slots
				if visitErr != nil {
					continue
				}
				stats.Reads++
				if v.Hit {
					stats.Flagged++
				}
				if visitErr = visit(v); visitErr != nil {
					cancel()
				}
			}
		}
	}()

	g.Go(func() error {
		n := 0
		return src(func(read seq.Seq) error {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case slots <- struct{}{}:
			case <-gctx.Done():
				return gctx.Err()
			}
			i := n
			n++
			g.Go(func() error {
				start := time.Now()
				v := p.check(read, i, contams)
				metrics.ObserveRead(time.Since(start))
				metrics.IncScreened()
				if v.Hit {
					metrics.IncFlagged()
				}
				select {
				case results <- numbered{i, v}:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
			return nil
		})
	})

	err := g.Wait()
	close(results)
	<-collected
	switch {
	case visitErr != nil:
		return stats, visitErr
	case err != nil:
		return stats, err
	}
	return stats, ctx.Err()
}
