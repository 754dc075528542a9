// Package gitfiles lists the files tracked by the git index.
package gitfiles

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// runGit is injectable in tests.
var runGit = func(ctx context.Context, dir string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(ee.Stderr)))
		}
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return out, nil
}

// ListTracked returns the repository-relative paths of every file known to
// the git index under dir, sorted lexicographically.
func ListTracked(ctx context.Context, dir string) ([]string, error) {
	out, err := runGit(ctx, dir, "ls-files")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	sort.Strings(paths)
	return paths, nil
}
