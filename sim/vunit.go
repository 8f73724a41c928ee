package sim

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/config"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

// MappingFile lists every VUnit test with its output folder, relative to the test output directory.
const MappingFile = "test_name_to_path_mapping.txt"

const stateFilePattern = "*surf.ron"

// VUnit returns the runner invocation with the default output and viewer arguments in front of
// `args`. Later arguments win, so `args` can override the defaults.
func VUnit(cfg config.Config, args []string) tool.Command {
	defaults := []string{
		cfg.VUnitRunner,
		"-o", cfg.VUnitOutput,
		"--viewer", "surfer",
		"--viewer-fmt", "ghw",
	}
	return tool.Command{Name: cfg.Tools.Python, Args: append(defaults, args...)}
}

// TestOutputDir is the directory holding per-test VUnit output.
func TestOutputDir(cfg config.Config) string {
	return filepath.Join(cfg.VUnitOutput, "test_output")
}

// Test is a VUnit test and the folder its output was written to.
type Test struct {
	Name   string
	Folder string
}

// ReadMapping parses the space-delimited mapping file: the folder followed by the test name.
func ReadMapping(path string) ([]Test, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open VUnit test mapping")
	}
	defer file.Close()

	tests := []Test{}
	index := map[string]int{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimRight(scanner.Text(), "\r"), " ")
		if len(fields) < 2 || fields[0] == "" {
			continue
		}
		test := Test{Name: strings.Join(fields[1:], " "), Folder: fields[0]}
		// Later lines replace earlier ones for the same test.
		if i, ok := index[test.Name]; ok {
			tests[i] = test
			continue
		}
		index[test.Name] = len(tests)
		tests = append(tests, test)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read VUnit test mapping")
	}
	return tests, nil
}

// MatchTests returns the tests whose names match the shell-style `pattern`.
func MatchTests(tests []Test, pattern string) ([]Test, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid test pattern '%s'", pattern)
	}
	matches := []Test{}
	for _, test := range tests {
		if g.Match(test.Name) {
			matches = append(matches, test)
		}
	}
	return matches, nil
}

// TestbenchDir returns the testbench directory of a test named `<library>.<testbench>_tb.<test>`.
func TestbenchDir(cfg config.Config, testName string) (string, error) {
	parts := strings.Split(testName, ".")
	if len(parts) < 2 {
		return "", errors.Errorf("test name '%s' does not name a testbench", testName)
	}
	return filepath.Join(cfg.TestbenchDir, strings.TrimSuffix(parts[1], "_tb")), nil
}

// StateFiles lists the Surfer state files stored in the testbench directory of `testName`.
func StateFiles(cfg config.Config, testName string) ([]string, error) {
	dir, err := TestbenchDir(cfg, testName)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read '%s'", dir)
	}

	g := glob.MustCompile(stateFilePattern)
	files := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && g.Match(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// WaveFile is the waveform GHDL wrote for `test`.
func WaveFile(cfg config.Config, test Test) string {
	return filepath.Join(TestOutputDir(cfg), test.Folder, "ghdl", "wave.vcd")
}

// Surfer opens `wave` in Surfer, restoring `state` when it is not empty.
func Surfer(cfg config.Config, wave, state string) tool.Command {
	args := []string{}
	if state != "" {
		args = append(args, "-s", state)
	}
	return tool.Command{Name: cfg.Tools.Surfer, Args: append(args, wave)}
}
