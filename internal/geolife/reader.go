package geolife

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// HeaderLines is the fixed preamble every .plt trajectory file carries
// before its first data line.
const HeaderLines = 6

// SourceReader yields the raw inputs of one ingestion run: the user ids,
// each user's trajectory files and, when present, the user's label source.
type SourceReader interface {
	// Users returns all user ids of the dataset in stable order.
	Users() ([]string, error)

	// TrajectoryFiles returns the user's trajectory file names in stable
	// order. The list may be empty.
	TrajectoryFiles(userID string) ([]string, error)

	// ReadTrajectory returns every raw line of one trajectory file,
	// header included.
	ReadTrajectory(userID, name string) ([]string, error)

	// OpenLabels opens the user's label source, or returns (nil, nil)
	// when the user has none.
	OpenLabels(userID string) (io.ReadCloser, error)
}

// DirReader reads a Geolife-style dataset from the local filesystem:
// one folder per user, trajectory files under <user>/Trajectory, and an
// optional <user>/labels.txt.
type DirReader struct {
	root string
}

// NewDirReader creates a reader rooted at the dataset's Data directory
func NewDirReader(root string) *DirReader {
	return &DirReader{root: root}
}

// Users returns the sorted list of user folder names
func (r *DirReader) Users() ([]string, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", r.root, err)
	}

	var users []string
	for _, entry := range entries {
		if entry.IsDir() {
			users = append(users, entry.Name())
		}
	}
	sort.Strings(users)
	return users, nil
}

// TrajectoryFiles returns the sorted .plt file names of one user
func (r *DirReader) TrajectoryFiles(userID string) ([]string, error) {
	dir := filepath.Join(r.root, userID, "Trajectory")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read trajectory directory for user %s: %w", userID, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".plt") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadTrajectory returns all raw lines of one trajectory file
func (r *DirReader) ReadTrajectory(userID, name string) ([]string, error) {
	path := filepath.Join(r.root, userID, "Trajectory", name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trajectory file %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trajectory file %s: %w", path, err)
	}
	return lines, nil
}

// OpenLabels opens <user>/labels.txt, or returns (nil, nil) when absent
func (r *DirReader) OpenLabels(userID string) (io.ReadCloser, error) {
	path := filepath.Join(r.root, userID, "labels.txt")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open labels for user %s: %w", userID, err)
	}
	return f, nil
}
