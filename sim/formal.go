package sim

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/config"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
)

// Sby returns the SymbiYosys invocation for the `<dir>/<name>.sby` job of a component
// directory. An empty task runs every task.
func Sby(cfg config.Config, dir, task string) tool.Command {
	dir = filepath.ToSlash(filepath.Clean(dir))
	args := []string{
		"--prefix", path.Join(filepath.ToSlash(cfg.SimulationDir), "sby"),
		"-f", path.Join(dir, path.Base(dir)+".sby"),
	}
	if task != "" {
		args = append(args, task)
	}
	return tool.Command{Name: cfg.Tools.Sby, Args: args}
}

// Synthesis turns a VHDL entity into a schematic SVG.
type Synthesis struct {
	Config config.Config
	Source string
	Output string
}

// Entity is the name of the synthesized top-level entity.
func (s Synthesis) Entity() string {
	return TestbenchName(s.Source)
}

// Netlist is the Yosys JSON netlist written next to the output SVG.
func (s Synthesis) Netlist() string {
	return filepath.Join(filepath.Dir(s.Output), s.Entity()+".json")
}

// Commands returns the Yosys and netlistsvg steps. The white background is added afterwards.
func (s Synthesis) Commands() []tool.Command {
	entity := s.Entity()
	netlist := filepath.ToSlash(s.Netlist())
	yosys := tool.Command{
		Name: s.Config.Tools.Yosys,
		Args: []string{
			"-p", strings.Join([]string{
				"ghdl", "--std=" + s.Config.GHDLStd, "-fsynopsys", "--work=work",
				filepath.ToSlash(s.Source), "--work=work", "-e", entity,
			}, " "),
			"-p", "hierarchy -top " + entity,
			"-p", "proc",
			"-p", "write_json " + netlist,
			"-p", "stat",
		},
	}

	netlistsvg := tool.Command{
		Name: s.Config.Tools.Netlistsvg,
		Args: []string{netlist, "-o", filepath.ToSlash(s.Output)},
	}
	if s.Config.Tools.NetlistsvgSkin != "" {
		netlistsvg.Args = append(netlistsvg.Args, "--skin", s.Config.Tools.NetlistsvgSkin)
	}
	return []tool.Command{yosys, netlistsvg}
}
