package sim

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/config"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

var vhdlFile = glob.MustCompile("**.vhd", '/')

// SourceFiles returns every VHDL file below `dir`, sorted.
func SourceFiles(dir string) ([]string, error) {
	files := []string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && vhdlFile.Match(filepath.ToSlash(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list VHDL files in '%s'", dir)
	}
	sort.Strings(files)
	return files, nil
}

// TestbenchName returns the entity name of a testbench file.
func TestbenchName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// GHDL assembles a simulation of a single testbench with GHDL. All paths are relative to the
// workspace root, which is also the working directory of every command except the final run.
type GHDL struct {
	Config    config.Config
	Root      string
	Sources   []string
	Testbench string
	StopTime  string
}

func (g GHDL) flags(workdir string) []string {
	return []string{"--std=" + g.Config.GHDLStd, "--work=work", "--workdir=" + workdir}
}

func (g GHDL) simDir() string {
	return filepath.Join(g.Root, g.Config.SimulationDir)
}

// Commands returns the import, make and run steps in order.
func (g GHDL) Commands() []tool.Command {
	ghdl := g.Config.Tools.GHDL
	name := TestbenchName(g.Testbench)
	simDir := g.simDir()

	cmds := []tool.Command{}
	for _, file := range append(append([]string{}, g.Sources...), g.Testbench) {
		cmds = append(cmds, tool.Command{
			Name: ghdl,
			Args: append(append([]string{"-i"}, g.flags(simDir)...), file),
			Dir:  g.Root,
		})
	}
	cmds = append(cmds, tool.Command{
		Name: ghdl,
		Args: append(append([]string{"-m"}, g.flags(simDir)...), "-o", filepath.Join(simDir, name), name),
		Dir:  g.Root,
	})

	stopTime := g.StopTime
	if stopTime == "" {
		stopTime = g.Config.StopTime
	}
	cmds = append(cmds, tool.Command{
		Name: ghdl,
		Args: append(append([]string{"-r"}, g.flags(".")...), name, "--vcd="+name+".vcd", "--stop-time="+stopTime),
		Dir:  simDir,
	})
	return cmds
}
