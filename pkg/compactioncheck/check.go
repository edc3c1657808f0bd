// Package compactioncheck scans LevelDB LOG files under the node's data
// directory for compaction error markers and prints the eleveldb repair
// commands for the affected partitions.
package compactioncheck

import (
	"bufio"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mohnkhan/check-riak/pkg/check"
)

// Marker is the line fragment LevelDB writes when background compaction
// of a partition fails.
const Marker = "Compaction error"

// logNames are the LevelDB log file names worth scanning.
var logNames = map[string]bool{
	"LOG":     true,
	"LOG.old": true,
}

// PartitionError records compaction failures in one partition directory.
type PartitionError struct {
	Dir    string // partition directory, relative to the data dir
	Errors int    // marker occurrences across its LOG files
}

// Check scans a LevelDB data directory for compaction errors.
type Check struct {
	DataDir string // LevelDB data directory (one subdirectory per partition)
	RiakCmd string // control script path, used in the remediation hint
	FS      fs.FS  // injected for testing (default: os.DirFS(DataDir))
}

// Scan walks the data directory and returns per-partition error counts
// plus the number of LOG files visited.
func Scan(fsys fs.FS) ([]PartitionError, int, error) {
	byDir := map[string]int{}
	var dirs []string
	scanned := 0

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !logNames[d.Name()] {
			return nil
		}
		scanned++

		count, err := countMarkers(fsys, p)
		if err != nil {
			return err
		}
		if count == 0 {
			return nil
		}
		dir := path.Dir(p)
		if _, seen := byDir[dir]; !seen {
			dirs = append(dirs, dir)
		}
		byDir[dir] += count
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	var partitions []PartitionError
	for _, dir := range dirs {
		partitions = append(partitions, PartitionError{Dir: dir, Errors: byDir[dir]})
	}
	return partitions, scanned, nil
}

func countMarkers(fsys fs.FS, p string) (int, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return 0, err
	}
	defer func() { _ = f.Close() }()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), Marker) {
			count++
		}
	}
	return count, scanner.Err()
}

// Run executes the compaction error check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "compaction: " + c.DataDir,
	}

	fsys := c.FS
	if fsys == nil {
		if _, err := os.Stat(c.DataDir); err != nil {
			return result.Unknownf("data directory not readable: %v", err)
		}
		fsys = os.DirFS(c.DataDir)
	}

	partitions, scanned, err := Scan(fsys)
	if err != nil {
		return result.Unknownf("scan failed: %v", err)
	}

	result.AddDetailf("log files scanned: %d", scanned)

	if len(partitions) == 0 {
		result.Status = check.StatusOK
		return result
	}

	total := 0
	for _, p := range partitions {
		total += p.Errors
		result.AddDetailf("%s: %d error(s)", filepath.Join(c.DataDir, p.Dir), p.Errors)
	}

	riakCmd := c.RiakCmd
	if riakCmd == "" {
		riakCmd = "riak"
	}
	result.AddDetailf("to repair, stop the node and run each from `%s attach`:", riakCmd)
	for _, p := range partitions {
		result.AddDetailf(`  eleveldb:repair("%s", []).`, filepath.Join(c.DataDir, p.Dir))
	}

	return result.Criticalf("compaction errors in %d partition(s) (%d total)", len(partitions), total)
}
