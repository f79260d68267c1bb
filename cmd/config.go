package cmd

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables read by the CLI, e.g. CART_LEDGER_FILE.
	EnvPrefix = "CART"

	defaultLedgerFile = "tmp/cart.txt"

	keyLedgerFile = "ledger-file"
	keyVerbose    = "verbose"
)

// config returns the settings from the environment and the optional .cart.yaml
// of the working directory. Command line flags take precedence over it.
var config = sync.OnceValue(func() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLedgerFile, defaultLedgerFile)
	v.SetDefault(keyVerbose, false)

	v.SetConfigName(".cart")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(stderr, "warning, ignoring configuration file: %v\n", err)
		}
	}
	return v
})
