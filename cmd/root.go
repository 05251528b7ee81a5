/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/aiziyuer/ipify-cli/ipify"
	"github.com/aiziyuer/ipify-cli/util"
	"github.com/gogf/gf/util/gconv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/net/http/httpproxy"
)

const defaultIpVersion = "4"

// NewRootCmd builds the ipify-cli command. modOptions are applied after the
// defaults, which lets callers point the lookup at other endpoints.
func NewRootCmd(modOptions ...ipify.ModOption) *cobra.Command {

	var cfgFile string
	var ipVersion ipify.IpVersion
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "ipify-cli",
		Short:         "print your public ip address",
		Long:          `Ask api.ipify.org (or api6.ipify.org) which address the request came from and print it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

			if err := initConfig(v, cfgFile); err != nil {
				return err
			}

			if err := util.SetupLogs(v.GetString("log-file"), v.GetBool("debug")); err != nil {
				return err
			}

			if v.ConfigFileUsed() != "" {
				zap.S().Debugf("using config file: %s", v.ConfigFileUsed())
			}

			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {

			var err error
			ipVersion, err = ipify.ParseIpVersion(gconv.String(v.Get("version")))

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {

			logIgnoredProxy()

			debug := v.GetBool("debug")
			httpClient := ipify.NewHTTPClient(v.GetBool("insecure"))

			client := ipify.NewClient(append([]ipify.ModOption{
				ipify.WithTransport(ipify.NewRestyTransport(util.NewRestyClient(httpClient, debug))),
				ipify.WithLogger(zap.S()),
			}, modOptions...)...)

			ip, err := client.IP(ipVersion)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ip)

			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.ipify-cli/config.toml)",
	)
	rootCmd.PersistentFlags().Bool("debug", false,
		"print debug logs to stderr",
	)
	rootCmd.PersistentFlags().String("log-file", "",
		"also write logs to this file, rotated by size",
	)
	rootCmd.Flags().StringP("version", "v", defaultIpVersion,
		"specify ip version (4 or 6)",
	)
	rootCmd.Flags().Bool("insecure", false,
		"allow insecure server connections when using SSL",
	)

	_ = v.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = v.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
	_ = v.BindPFlag("version", rootCmd.Flags().Lookup("version"))
	_ = v.BindPFlag("insecure", rootCmd.Flags().Lookup("insecure"))

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() {

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		exitWithError(rootCmd.ErrOrStderr(), err)
	}
}

func exitWithError(w io.Writer, err error) {
	printError(w, err)
	os.Exit(1)
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "closed with error: %s\n", err)
}

func initConfig(v *viper.Viper, cfgFile string) error {

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			// no home, no default config
			return nil
		}

		v.AddConfigPath(path.Join(home, ".ipify-cli"))
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("ipify")
	v.AutomaticEnv() // read in environment variables that match

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}

	return nil
}

// logIgnoredProxy only reports proxy variables; requests never go through them.
func logIgnoredProxy() {
	proxyConfig := httpproxy.FromEnvironment()
	if proxyConfig.HTTPSProxy != "" {
		zap.S().Debugf("https_proxy(%s) is ignored.", proxyConfig.HTTPSProxy)
	}
	if proxyConfig.HTTPProxy != "" {
		zap.S().Debugf("http_proxy(%s) is ignored.", proxyConfig.HTTPProxy)
	}
}
