package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/component"
	"github.com/JakubFranek/Nexys-A7-Lab/config"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/report"
	"github.com/JakubFranek/Nexys-A7-Lab/tool"
	"github.com/JakubFranek/Nexys-A7-Lab/workspace"
)

// project is the workspace a command runs in together with its configuration.
type project struct {
	ws  workspace.Workspace
	cfg config.Config
}

func openProject() project {
	ws, err := workspace.Current()
	if err != nil {
		log.Fatal("Failed to find the workspace: %s.\n", err)
	}
	cfg, err := config.Load(ws.Root(), configFile)
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	return project{ws: ws, cfg: *cfg}
}

// dir returns the directory named by the optional first argument, or the source directory.
func (p project) dir(args []string) string {
	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatal("Failed to resolve '%s': %s.\n", args[0], err)
		}
		return abs
	}
	return p.ws.Path(p.cfg.SourceDir)
}

// rel returns `path` relative to the workspace root when it lies inside it.
func (p project) rel(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(p.ws.Root(), abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}

// folders walks `root`, starting with `root` itself when it holds sources. A missing root is the
// only fatal condition of a documentation pass.
func (p project) folders(root string) []component.Folder {
	folders, err := component.Walk(root)
	if err != nil {
		log.Fatal("%s.\n", err)
	}
	if self := component.New(root); self.HasSources() {
		folders = append([]component.Folder{self}, folders...)
	}
	log.Debug("Found %d folders below '%s'.\n", len(folders), root)
	return folders
}

// checkClean warns about uncommited changes below `dir`, or refuses to continue when `require`
// is set, since the passes rewrite and delete files.
func (p project) checkClean(dir string, require bool) {
	dirty, err := p.ws.DirtyFiles(dir)
	if err != nil {
		log.Warning("Failed to check for uncommited changes: %s.\n", err)
		return
	}
	if len(dirty) == 0 {
		return
	}
	if require {
		log.Fatal("'%s' has %d files with uncommited changes.\n", dir, len(dirty))
	}
	log.Warning("'%s' has %d files with uncommited changes.\n", dir, len(dirty))
	log.IndentationLevel = 1
	for _, file := range dirty {
		log.Debug("%s\n", file)
	}
	log.IndentationLevel = 0
}

// finish prints the summary, writes the summary file and exits non-zero if any folder failed.
func (p project) finish(summary *component.Summary) {
	log.IndentationLevel = 0
	log.Log("\n%s\n", report.Render(summary))

	if p.cfg.SummaryFile != "" {
		path := p.ws.Path(p.cfg.SummaryFile)
		if filepath.IsAbs(p.cfg.SummaryFile) {
			path = p.cfg.SummaryFile
		}
		if err := report.WriteYAML(path, summary); err != nil {
			log.Error("%s.\n", err)
		} else {
			log.Debug("Wrote summary to '%s'.\n", path)
		}
	}

	if log.ErrorOccured() || !summary.OK() {
		log.Error("Errors found while processing the components.\n")
		os.Exit(1)
	}
	log.Success("Done.\n")
}

// relay exits with the status of a failed external tool.
func relay(err error) {
	if err == nil {
		return
	}
	log.Error("%s.\n", err)
	os.Exit(tool.ExitCode(err))
}
