package cli

import (
	"github.com/joho/godotenv"
	"github.com/mgpai22/srttool/internal/config"
	"github.com/mgpai22/srttool/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        *config.Config
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "srttool",
	Short: "Readjust the timing of SRT subtitle files",
	Long: `srttool reads SubRip (.srt) subtitle files, shifts every block by a
fixed offset and writes them back out as one renumbered subtitle track.

Defaults can be kept in a TOML config file and overridden through
SRTTOOL_* environment variables or a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = logging.NewLogger(verbose || cfg.Verbose)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default: $XDG_CONFIG_HOME/srttool/config.toml)")
}
