package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vertti/patchshebangs/pkg/config"
	"github.com/vertti/patchshebangs/pkg/output"
	"github.com/vertti/patchshebangs/pkg/searchpath"
	"github.com/vertti/patchshebangs/pkg/shebang"
	"github.com/vertti/patchshebangs/pkg/walker"
)

var (
	useHostPath  bool
	useBuildPath bool
	forceUpdate  bool
	verbose      bool
	configFile   string
)

func init() {
	rootCmd.Flags().BoolVar(&useHostPath, "host", false, "resolve interpreters against the host search path variable")
	rootCmd.Flags().BoolVar(&useBuildPath, "build", false, "resolve interpreters against the build search path variable (the default)")
	rootCmd.Flags().BoolVar(&forceUpdate, "update", false, "rewrite shebangs already pointing into the canonical store")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log per-file decisions to stderr")
	rootCmd.Flags().StringVar(&configFile, "config", "", "path to config file (default: ./patchshebangs.*)")
}

func runPatch(_ *cobra.Command, roots []string) error {
	if err := requireAtMostOne(
		flagSet{name: "--host", isSet: useHostPath},
		flagSet{name: "--build", isSet: useBuildPath},
	); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "patchshebangs"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	pathVar := cfg.PathVar
	if useHostPath {
		pathVar = cfg.HostPathVar
	}

	rw := newRewriter(pathVar, cfg, &searchpath.RealEnvGetter{}, logger)

	output.PrintHeader(roots)

	for _, root := range roots {
		err := walker.Walk(root, func(path string, _ fs.FileInfo) error {
			patch, err := rw.Process(path)
			if err != nil {
				return err
			}
			if patch == nil {
				logger.Debug("unchanged", "path", path)
				return nil
			}
			output.PrintPatched(path, patch.Old, patch.New)
			return nil
		})
		if err != nil {
			return fmt.Errorf("patching %s: %w", root, err)
		}
	}

	return nil
}

// newRewriter assembles the rewriter from the search path variable named
// by pathVar. An unset variable yields an empty search path, so any
// shebang that needs resolving will fail loudly rather than silently.
func newRewriter(pathVar string, cfg *config.Config, env searchpath.EnvGetter, logger *log.Logger) *shebang.Rewriter {
	value, ok := env.LookupEnv(pathVar)
	if !ok {
		logger.Debug("search path variable is not set", "var", pathVar)
	}

	return &shebang.Rewriter{
		Resolver: &searchpath.Resolver{
			Path: searchpath.Parse(value),
			FS:   &searchpath.RealFileStater{},
		},
		Update: forceUpdate,
		Skip:   shebang.PrefixSkip(cfg.StorePrefix),
		FS:     &shebang.RealFileSystem{},
	}
}
