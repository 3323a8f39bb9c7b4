// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// eval validates the diffing algorithm on the history of a git repository: every change is diffed
// and the runs are checked to reconstruct both versions of the file with the minimal number of
// edits.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rundiff/rundiff"
	"github.com/rundiff/rundiff/internal/cmd/eval/internal/git"
	"github.com/rundiff/rundiff/textdiff"
)

type config struct {
	repo     string
	sample   int
	parallel int
	stats    string
	by       string
	maxBytes int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", "", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, sample commits to the value of the flag")
	flag.IntVar(&cfg.parallel, "parallel", runtime.GOMAXPROCS(0), "number of evaluations to run in parallel")
	flag.StringVar(&cfg.stats, "stats", "", "file to store stats in")
	flag.StringVar(&cfg.by, "by", "line,word", "comma separated list of granularities to evaluate (line, word, char)")
	flag.IntVar(&cfg.maxBytes, "max-bytes", 1<<16, "skip files larger than this")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var bars = []string{
	" ",
	"▏",
	"▎",
	"▍",
	"▌",
	"▋",
	"▊",
	"▉",
	"█",
}

type note struct {
	prefix string
	msg    string
}

type result struct {
	commitID string
	file     string
	by       string
	N, M     int
	D        int
	runs     int
	duration time.Duration
}

func granularities(list string) (map[string]textdiff.Option, error) {
	out := make(map[string]textdiff.Option)
	for by := range strings.SplitSeq(list, ",") {
		switch by = strings.TrimSpace(by); by {
		case "line":
			out[by] = textdiff.ByLine()
		case "word":
			out[by] = textdiff.ByWord()
		case "char":
			out[by] = textdiff.ByChar()
		default:
			return nil, fmt.Errorf("invalid granularity: %q", by)
		}
	}
	return out, nil
}

func run(ctx context.Context, cfg *config) error {
	start := time.Now()
	notes := make(chan note)
	done := make(chan struct{})
	var commitsDone atomic.Int64
	var processed atomic.Int64

	variants, err := granularities(cfg.by)
	if err != nil {
		return err
	}

	var stats *os.File
	if cfg.stats != "" {
		stats, err = os.Create(cfg.stats)
		if err != nil {
			return fmt.Errorf("creating stats file: %v", err)
		}
		defer stats.Close()
	}

	repo, err := git.Open(ctx, cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %v", err)
	}

	commitIDs, err := repo.RevList(ctx)
	if err != nil {
		repo.Close()
		return fmt.Errorf("reading rev-list: %v", err)
	}

	// Sample commits
	if cfg.sample > 0 && cfg.sample < len(commitIDs) {
		rand.Shuffle(len(commitIDs), func(i, j int) {
			commitIDs[i], commitIDs[j] = commitIDs[j], commitIDs[i]
		})
		commitIDs = commitIDs[:cfg.sample]
	}

	// Read changes.
	type change struct {
		commitID string
		filename string
		old, new string
	}
	changes := make(chan change)
	var changesWG sync.WaitGroup
	chunkSize := max(1, len(commitIDs)/(4*runtime.GOMAXPROCS(0)))
	for chunk := range slices.Chunk(commitIDs, chunkSize) {
		changesWG.Add(1)
		go func() {
			defer changesWG.Done()
			for _, commitID := range chunk {
				if ctx.Err() != nil {
					return
				}
				files, err := repo.DiffTree(ctx, commitID)
				if err != nil {
					notes <- note{
						prefix: commitID,
						msg:    fmt.Sprintf("error processing commit: %v", err),
					}
				}
				for _, file := range files {
					old, err := repo.ReadBlob(file.OldID)
					if err == nil {
						var new string
						new, err = repo.ReadBlob(file.NewID)
						if err == nil && max(len(old), len(new)) <= cfg.maxBytes {
							changes <- change{
								commitID: commitID,
								filename: file.Name,
								old:      old,
								new:      new,
							}
						}
					}
					if err != nil {
						notes <- note{
							prefix: commitID + ":" + file.Name,
							msg:    fmt.Sprintf("error reading file: %v", err),
						}
					}
				}
				commitsDone.Add(1)
			}
		}()
	}

	// Process diffs.
	var processWG sync.WaitGroup
	var results chan result
	if cfg.stats != "" {
		results = make(chan result)
	}
	for range cfg.parallel {
		processWG.Add(1)
		go func() {
			defer processWG.Done()
			for change := range changes {
				for by, opt := range variants {
					x, y := textdiff.Split(change.old, opt), textdiff.Split(change.new, opt)

					start := time.Now()
					rs := rundiff.Diff(x, y)
					duration := time.Since(start)

					d, err := check(x, y, rs, rundiff.Distance(x, y))
					if err != nil {
						notes <- note{
							prefix: change.commitID + ":" + change.filename,
							msg:    fmt.Sprintf("invalid runs by %s: %v", by, err),
						}
					}
					if results != nil {
						results <- result{
							commitID: change.commitID,
							file:     change.filename,
							by:       by,
							N:        len(x),
							M:        len(y),
							D:        d,
							runs:     len(rs),
							duration: duration,
						}
					}
				}
				processed.Add(1)
			}
		}()
	}

	// Render progress
	var ioWG sync.WaitGroup
	render := func() {
		const width = 60
		commits := commitsDone.Load()
		processed := processed.Load()
		progress := float64(commits) / float64(max(1, len(commitIDs)))
		whole := int(progress * width)
		remainder := math.Mod(progress*width, 1)
		last := bars[max(0, min(len(bars)-1, int(remainder*float64(len(bars)))))]
		if width-whole < 1 {
			last = ""
		}
		bar := strings.Repeat(bars[len(bars)-1], whole) + last
		var commitsPerSec, procPerSec int
		if commits > 0 {
			commitsPerSec = int((time.Duration(commits) * time.Second) / time.Since(start))
		}
		if processed > 0 {
			procPerSec = int((time.Duration(processed) * time.Second) / time.Since(start))
		}
		fmt.Printf("\r[%-*s] % 3.1f%% (%d commits/s, %d evals/s) ", width, bar, 100*progress, commitsPerSec, procPerSec)
	}
	ioWG.Add(1)
	go func() {
		defer ioWG.Done()
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case note := <-notes:
				fmt.Printf("\r%s: %s\n", note.prefix, note.msg)
				render()

			case <-ticker.C:
				render()

			case <-done:
				render()
				fmt.Printf("\n")
				return
			}
		}
	}()
	var statsWG sync.WaitGroup
	if results != nil {
		statsWG.Add(1)
		go func() {
			defer statsWG.Done()
			w := csv.NewWriter(stats)
			w.Write([]string{"commit_id", "file", "by", "n", "m", "d", "runs", "duration_ns"})
			for result := range results {
				err := w.Write([]string{
					result.commitID,
					result.file,
					result.by,
					strconv.Itoa(result.N),
					strconv.Itoa(result.M),
					strconv.Itoa(result.D),
					strconv.Itoa(result.runs),
					strconv.FormatInt(result.duration.Nanoseconds(), 10),
				})
				if err != nil {
					notes <- note{
						prefix: result.commitID + ":" + result.file,
						msg:    fmt.Sprintf("failed to write stats: %v", err),
					}
				}
			}
			w.Flush()
			if err := w.Error(); err != nil {
				notes <- note{
					prefix: "",
					msg:    fmt.Sprintf("failed to flush stats: %v", err),
				}
			}
		}()
	}

	// Shutdown
	changesWG.Wait()
	close(changes)
	processWG.Wait()
	if results != nil {
		close(results)
	}
	statsWG.Wait()
	close(done)
	ioWG.Wait()

	if err := repo.Close(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("closing git repository: %v", err)
	}
	return ctx.Err()
}
