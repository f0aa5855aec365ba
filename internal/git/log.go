package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Log walks revRange (any git revision range, e.g. "HEAD" or
// "main..feature", or "--all" for every branch) in topological order,
// limited to at most limit commits, and returns them annotated with
// boundary status. It shells out to the real git binary rather than using
// go-git's own Log, which does not produce correct topological order
// across branches — adding --boundary so the walk's frontier commits come
// back flagged rather than silently cut off.
//
// Boundary commits are recognized the way tig's own conformance tooling
// does, by a leading '-': the format starts with %m, which git prints as
// '-' for a boundary commit and as '>' (or '<') for every other commit.
func (r *Repository) Log(revRange string, limit int) ([]*Commit, error) {
	refMap := r.buildRefMap()

	format := "%m%H%x00%P%x00%an%x00%ae%x00%at%x00%s"
	args := []string{
		"-C", r.path,
		"log", "--topo-order", "--boundary",
		fmt.Sprintf("--format=%s", format),
		fmt.Sprintf("-%d", limit),
		revRange,
	}

	cmd := exec.Command("git", args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	commits := make([]*Commit, 0, len(lines))

	for _, line := range lines {
		if line == "" {
			continue
		}

		boundary := strings.HasPrefix(line, "-")
		line = line[1:]

		parts := strings.SplitN(line, "\x00", 6)
		if len(parts) < 6 {
			continue
		}

		hash := parts[0]
		parentStr := parts[1]
		author := parts[2]
		email := parts[3]
		tsStr := parts[4]
		subject := parts[5]

		var parents []string
		if parentStr != "" {
			parents = strings.Split(parentStr, " ")
		}

		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			ts = 0
		}

		refs := refMap[hash]
		shortHash := hash
		if len(hash) >= 7 {
			shortHash = hash[:7]
		}

		commits = append(commits, &Commit{
			Hash:      hash,
			ShortHash: shortHash,
			Author:    author,
			Email:     email,
			Date:      time.Unix(ts, 0),
			Message:   subject,
			Subject:   subject,
			Parents:   parents,
			Refs:      refs,
			Boundary:  boundary,
		})
	}

	return commits, nil
}
