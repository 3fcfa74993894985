package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/styles"
)

type rootFlags struct {
	verbose   bool
	style     string
	themesDir string
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "Glint renders styled widget layouts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runGallery(flags, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.style, "style", "", "Style to render with (default: remembered or dark)")
	cmd.PersistentFlags().StringVar(&flags.themesDir, "themes", "", "Directory of extra theme files to load")

	cmd.AddCommand(newGalleryCmd(flags, log))
	cmd.AddCommand(newThemesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newRegistry builds the style registry, loading extra themes when a
// directory was given.
func newRegistry(flags *rootFlags) (*styles.Registry, error) {
	reg := styles.NewRegistry()
	if flags.themesDir != "" {
		if _, err := reg.LoadDir(flags.themesDir); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// defaultStore opens the user-level settings store.
func defaultStore(name string, log *logger.Logger) *config.Store {
	dir, err := os.UserConfigDir()
	if err != nil {
		return config.New(name, "", nil, log)
	}
	return config.New(name, filepath.Join(dir, "glint", "config.json"), nil, log)
}
