package gitfiles

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestListTracked(t *testing.T) {
	testCases := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:     "unsorted output gets sorted",
			output:   "b.txt\na.txt\nsub/c.txt\n",
			expected: []string{"a.txt", "b.txt", "sub/c.txt"},
		},
		{
			name:     "blank lines and CRLF are dropped",
			output:   "a.txt\r\n\nb.txt\n\n",
			expected: []string{"a.txt", "b.txt"},
		},
		{
			name:     "empty repository",
			output:   "",
			expected: nil,
		},
	}

	orig := runGit
	defer func() { runGit = orig }()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			runGit = func(ctx context.Context, dir string, args ...string) ([]byte, error) {
				return []byte(tc.output), nil
			}
			actual, err := ListTracked(context.Background(), ".")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(actual, tc.expected) {
				t.Errorf("expected: %v, got: %v", tc.expected, actual)
			}
		})
	}
}

func TestListTrackedGitFailure(t *testing.T) {
	orig := runGit
	defer func() { runGit = orig }()

	gitErr := errors.New("git ls-files: exit status 128: not a git repository")
	runGit = func(ctx context.Context, dir string, args ...string) ([]byte, error) {
		return nil, gitErr
	}

	paths, err := ListTracked(context.Background(), ".")
	if err == nil {
		t.Fatal("expected an error when git fails")
	}
	if paths != nil {
		t.Errorf("expected no paths on failure, got %v", paths)
	}
}
