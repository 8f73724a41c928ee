package config

import (
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// FileName is the name of the configuration file, looked up without extension by viper.
const FileName = "labtool"

// EnvPrefix prefixes every environment variable overriding a configuration key.
const EnvPrefix = "LABTOOL"

//go:embed schema.cue
var schemaFS embed.FS

// Tools holds the executables of the external HDL tools.
type Tools struct {
	GHDL           string `mapstructure:"ghdl" yaml:"ghdl" json:"ghdl"`
	Sby            string `mapstructure:"sby" yaml:"sby" json:"sby"`
	Yosys          string `mapstructure:"yosys" yaml:"yosys" json:"yosys"`
	Netlistsvg     string `mapstructure:"netlistsvg" yaml:"netlistsvg" json:"netlistsvg"`
	NetlistsvgSkin string `mapstructure:"netlistsvg_skin" yaml:"netlistsvg_skin" json:"netlistsvg_skin"`
	Surfer         string `mapstructure:"surfer" yaml:"surfer" json:"surfer"`
	Python         string `mapstructure:"python" yaml:"python" json:"python"`
}

type Config struct {
	SourceDir     string `mapstructure:"source_dir" yaml:"source_dir" json:"source_dir"`
	TestbenchDir  string `mapstructure:"testbench_dir" yaml:"testbench_dir" json:"testbench_dir"`
	SimulationDir string `mapstructure:"simulation_dir" yaml:"simulation_dir" json:"simulation_dir"`
	GHDLStd       string `mapstructure:"ghdl_std" yaml:"ghdl_std" json:"ghdl_std"`
	StopTime      string `mapstructure:"stop_time" yaml:"stop_time" json:"stop_time"`
	VUnitRunner   string `mapstructure:"vunit_runner" yaml:"vunit_runner" json:"vunit_runner"`
	VUnitOutput   string `mapstructure:"vunit_output" yaml:"vunit_output" json:"vunit_output"`
	// SummaryFile receives a YAML summary of every documentation pass. Empty disables it.
	SummaryFile string `mapstructure:"summary_file" yaml:"summary_file" json:"summary_file"`
	Tools       Tools  `mapstructure:"tools" yaml:"tools" json:"tools"`
}

var defaults = map[string]interface{}{
	"source_dir":            "source",
	"testbench_dir":         "testbench",
	"simulation_dir":        "simulation",
	"ghdl_std":              "08",
	"stop_time":             "1ms",
	"vunit_runner":          "run.py",
	"vunit_output":          "simulation/vunit_out",
	"summary_file":          "",
	"tools.ghdl":            "ghdl",
	"tools.sby":             "sby",
	"tools.yosys":           "yosys",
	"tools.netlistsvg":      "netlistsvg",
	"tools.netlistsvg_skin": "scripts/netlistsvg_skins/default.svg",
	"tools.surfer":          "surfer",
	"tools.python":          "python3",
}

// Dir returns the user configuration directory of labtool.
func Dir() (string, error) {
	if dir, ok := os.LookupEnv(EnvPrefix + "_CONFIG_DIR"); ok {
		return dir, nil
	}
	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return filepath.Join(xdgConfigHome, "labtool"), nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "unable to locate the configuration directory")
	}
	return filepath.Join(home, ".config", "labtool"), nil
}

// Load reads the configuration for the project at `root`. An explicit `file` takes precedence
// over the lookup in `root` and the user configuration directory. Environment variables
// (after loading `root/.env`) override file values.
func Load(root, file string) (*Config, error) {
	envFile := filepath.Join(root, ".env")
	if err := godotenv.Load(envFile); err == nil {
		log.Debug("Loaded environment from '%s'.\n", envFile)
	}

	v := viper.New()
	for _, key := range util.OrderedKeys(defaults) {
		v.SetDefault(key, defaults[key])
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(root)
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || file != "" {
			return nil, errors.Wrap(err, "failed to read configuration file")
		}
		log.Debug("No configuration file found. Using defaults.\n")
	} else {
		log.Debug("Loaded configuration from '%s'.\n", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode configuration")
	}
	if err := cfg.expand(); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	log.Debug("Running with configuration: %+v\n", cfg)
	return &cfg, nil
}

func (c *Config) expand() error {
	for _, path := range []*string{
		&c.Tools.GHDL, &c.Tools.Sby, &c.Tools.Yosys, &c.Tools.Netlistsvg,
		&c.Tools.NetlistsvgSkin, &c.Tools.Surfer, &c.Tools.Python,
	} {
		expanded, err := homedir.Expand(*path)
		if err != nil {
			return errors.Wrapf(err, "failed to expand '%s'", *path)
		}
		*path = expanded
	}
	return nil
}

// Validate checks the configuration against the embedded CUE schema.
func Validate(cfg *Config) error {
	ctx := cuecontext.New()
	schemaBytes, err := schemaFS.ReadFile("schema.cue")
	if err != nil {
		return errors.Wrap(err, "failed to load configuration schema")
	}
	schema := ctx.CompileBytes(schemaBytes)
	if schema.Err() != nil {
		return errors.Wrap(schema.Err(), "failed to compile configuration schema")
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode configuration")
	}
	value := ctx.CompileBytes(data)
	if value.Err() != nil {
		return errors.Wrap(value.Err(), "failed to compile configuration")
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}
