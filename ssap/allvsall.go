package ssap

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/strucalign/alignment"
	"github.com/katalvlaran/strucalign/protein"
	"github.com/katalvlaran/strucalign/viewcache"
	"github.com/katalvlaran/strucalign/xerrors"
)

// PairResult is one pairwise comparison's outcome from AllVsAll.
type PairResult struct {
	EntryA, EntryB int
	Alignment      *alignment.Alignment
	Score          float64
	Err            error
}

// AllVsAll compares every unordered pair of the given proteins, fanning the
// work out across workers goroutines. Each worker owns its own DP scratch
// state (affineGapAlign allocates its matrices fresh per call), so no
// synchronization is needed beyond collecting results. workers <= 0 is
// treated as 1. Individual pair failures are reported in that pair's
// PairResult.Err rather than aborting the whole run.
func AllVsAll(proteins []*protein.Protein, caches []*viewcache.Cache, cfg Config, workers int) ([]PairResult, error) {
	if len(proteins) != len(caches) {
		return nil, fmt.Errorf("ssap: proteins/caches length mismatch: %w", xerrors.InvalidArgument)
	}
	if workers <= 0 {
		workers = 1
	}

	type job struct{ a, b int }
	var jobs []job
	for a := 0; a < len(proteins); a++ {
		for b := a + 1; b < len(proteins); b++ {
			jobs = append(jobs, job{a, b})
		}
	}

	results := make([]PairResult, len(jobs))
	jobCh := make(chan int, len(jobs))
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				j := jobs[idx]
				aln, score, err := Align(proteins[j.a], proteins[j.b], caches[j.a], caches[j.b], cfg)
				results[idx] = PairResult{EntryA: j.a, EntryB: j.b, Alignment: aln, Score: score, Err: err}
			}
		}()
	}
	wg.Wait()

	return results, nil
}
