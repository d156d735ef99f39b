package root

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "riddb",
	Short: "In-memory record store with instrumented search tree indexes",
	Long:  `riddb keeps student records in an append-only heap indexed by id and by last name, and reports how many key comparisons every lookup costs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return readConfig(viper.GetViper(), configFile)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func AddCommand(cmds ...*cobra.Command) {
	rootCmd.AddCommand(cmds...)
}

// readConfig load the yaml, json or toml file at path over the defaults and flags
func readConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "unable to read configuration file %s", path)
	}
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "f", "", "Path of the configuration file in yaml, json and toml format (optional)")
	flags.String("id-index", "bst", "Type of the id index (bst/btree)")
	flags.String("name-index", "bst", "Type of the last name index (bst/btree/art)")
	flags.Int("btree-degree", 32, "Degree of btree indexes")
	flags.String("duplicates", "supersede", "What an insert with a taken id does (supersede/reject)")
	flags.Int("lua-pool", 4, "Number of pooled lua states, 0 disables eval")
	flags.String("log-level", "warn", "Log level (debug/info/warn/error)")
	flags.Bool("log-dev", false, "Use the human friendly development logger")

	setDefaults(viper.GetViper())
	_ = viper.BindPFlag(keyIdIndex, flags.Lookup("id-index"))
	_ = viper.BindPFlag(keyNameIndex, flags.Lookup("name-index"))
	_ = viper.BindPFlag(keyBTreeDegree, flags.Lookup("btree-degree"))
	_ = viper.BindPFlag(keyDuplicatePolicy, flags.Lookup("duplicates"))
	_ = viper.BindPFlag(keyLuaPoolSize, flags.Lookup("lua-pool"))
	_ = viper.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = viper.BindPFlag(keyLogDev, flags.Lookup("log-dev"))
}
