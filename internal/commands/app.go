package commands

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrewkroh/go-redfish-gen/internal/config"
	"github.com/andrewkroh/go-redfish-gen/internal/generator"
)

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	log    logr.Logger
	client *http.Client
}

type appKey struct{}

// loadApp returns a PersistentPreRunE that loads configuration, creates the
// logger and stores both in the command's context.
func loadApp(v *viper.Viper) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		if verbose, _ := flags.GetBool("verbose"); verbose {
			v.Set("log_level", "debug")
		}
		file, _ := flags.GetString("config")

		cfg, err := config.Load(v, file)
		if err != nil {
			return err
		}
		log, err := config.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		a := &app{
			cfg:    cfg,
			log:    log,
			client: &http.Client{Timeout: cfg.HTTPTimeout},
		}
		ctx := logr.NewContext(cmd.Context(), log)
		cmd.SetContext(context.WithValue(ctx, appKey{}, a))
		return nil
	}
}

// appFromCommand returns the app stored by loadApp.
func appFromCommand(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey{}).(*app)
	if !ok || a == nil {
		return nil, errors.New("configuration not loaded")
	}
	return a, nil
}

func (a *app) newLoader() generator.Loader {
	return generator.NewSchemaLoader(a.log, a.client)
}

// baseConfig returns a generator config carrying the configured settings.
func (a *app) baseConfig() generator.Config {
	var gc generator.Config
	a.cfg.Apply(&gc)
	return gc
}
