package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/yuuki/foldergen/internal/config"
	"github.com/yuuki/foldergen/internal/identity"
	"github.com/yuuki/foldergen/internal/logging"
	"github.com/yuuki/foldergen/internal/workspace"
)

// Version is set at build time via ldflags
var Version = "0.1.0"

// NewRootCommand builds the foldergen command on top of fsys and id
func NewRootCommand(fsys afero.Fs, id identity.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "foldergen",
		Short:   "Create a folder with local address details and a message file",
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return usageError(cmd, err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, fsys, id)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetFlagErrorFunc(usageError)
	config.SetupFlags(cmd.Flags())

	return cmd
}

// usageError logs errors raised before the command runs
func usageError(cmd *cobra.Command, err error) error {
	logging.SetupWithWriter(logging.DefaultLevel, cmd.ErrOrStderr())
	log.Error().Err(err).Msg("Invalid command line")
	return err
}

func run(cmd *cobra.Command, fsys afero.Fs, id identity.Provider) error {
	flags := cmd.Flags()
	logging.SetupWithWriter(logging.DefaultLevel, cmd.ErrOrStderr())

	// Handle create-config flag
	if createConfig, _ := flags.GetBool("create-config"); createConfig {
		output, _ := flags.GetString("config-output")
		if err := config.WriteDefault(fsys, output); err != nil {
			log.Error().Err(err).Str("path", output).Msg("Failed to create default configuration")
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created default configuration at %s\n", output)
		return nil
	}

	cfg, err := config.Load(fsys, flags)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	logging.SetupWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	baseDir := cfg.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			err = &workspace.FilesystemError{Op: workspace.OpGetwd, Path: ".", Err: err}
			log.Error().Err(err).Msg("Failed to resolve current directory")
			return err
		}
		baseDir = wd
	}
	log.Debug().Str("base_dir", baseDir).Str("folder", cfg.FolderName).Msg("Generating folder")

	res, err := workspace.New(fsys, id).Generate(baseDir, cfg.FolderName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create folder and files")
		return err
	}
	log.Debug().Str("dir", res.Dir).Msg("Generation complete")

	fmt.Fprintln(cmd.OutOrStdout(), workspace.SuccessMessage)
	return nil
}
