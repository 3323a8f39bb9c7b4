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


// Package git provides a simplified git interface for reading a repository for evaluations.
package git

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// NullID is the object id git uses for a missing side of a change.
const NullID = "0000000000000000000000000000000000000000"

// Repo is a git repository. It keeps a git cat-file process running to read blobs.
type Repo struct {
	dir string

	mu  sync.Mutex // guards the cat-file process
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open opens the repository in dir.
func Open(ctx context.Context, dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %w", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %w", err)
	}
	return &Repo{
		dir: dir,
		cmd: cmd,
		in:  in,
		out: bufio.NewReader(out),
	}, nil
}

// Close stops the cat-file process.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.in.Close()
	return r.cmd.Wait()
}

// RevList returns the ids of all non-merge commits reachable from HEAD.
func (r *Repo) RevList(ctx context.Context) ([]string, error) {
	out, err := git(ctx, "-C", r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// FileDiff is a file changed by a commit.
type FileDiff struct {
	Name  string
	OldID string
	NewID string
}

// DiffTree returns the files changed by commit.
func (r *Repo) DiffTree(ctx context.Context, commit string) ([]FileDiff, error) {
	out, err := git(ctx, "-C", r.dir, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	return parseDiffTree(out)
}

// parseDiffTree parses the raw output of git diff-tree, one line per file:
//
//	:100644 100644 <old id> <new id> M<tab><path>
func parseDiffTree(out string) ([]FileDiff, error) {
	var ret []FileDiff
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		if line[0] != ':' {
			return nil, fmt.Errorf("diff-tree line not starting with ':': %q", line)
		}
		meta, name, found := strings.Cut(line[1:], "\t")
		if !found {
			return nil, fmt.Errorf("diff-tree line without path: %q", line)
		}
		fields := strings.Fields(meta)
		if len(fields) != 5 {
			return nil, fmt.Errorf("diff-tree line with %d fields, expected 5: %q", len(fields), line)
		}
		ret = append(ret, FileDiff{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return ret, nil
}

// ReadBlob returns the contents of the blob with the given id. The [NullID] reads as empty.
func (r *Repo) ReadBlob(id string) (string, error) {
	if id == NullID {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.in, "%s\n", id); err != nil {
		return "", fmt.Errorf("writing to git cat-file: %w", err)
	}
	header, err := r.out.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading from git cat-file: %w", err)
	}
	fields := strings.Fields(header)
	if len(fields) != 3 {
		return "", fmt.Errorf("reading blob %s: unexpected header %q", id, header)
	}
	if fields[0] != id {
		return "", fmt.Errorf("ids don't match %s vs %s", fields[0], id)
	}
	n, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return "", fmt.Errorf("reading blob %s: %w", id, err)
	}
	buf := make([]byte, n+1) // contents are followed by a newline
	if _, err := io.ReadFull(r.out, buf); err != nil {
		return "", fmt.Errorf("reading blob %s: %w", id, err)
	}
	return string(buf[:n]), nil
}

func git(ctx context.Context, args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %w\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
