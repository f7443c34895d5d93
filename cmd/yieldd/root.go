package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"yieldd/internal/config"
	"yieldd/internal/manager"
	"yieldd/internal/registry"
	"yieldd/internal/schema"
)

// options holds every runtime setting after flags, env and config file are
// merged. Flags win over the config file, which wins over env defaults.
type options struct {
	ConfigPath   string
	Addr         string
	Revision     string
	ArtifactDir  string
	ArtifactPath string
	MetadataPath string
	LogLevel     string
	LogFormat    string
	CORSOrigins  string
	MaxBodyBytes int64
	Swagger      bool
}

func defaultOptions() *options {
	o := &options{
		Addr:         ":8080",
		Revision:     "A",
		LogLevel:     "info",
		LogFormat:    "json",
		MaxBodyBytes: 1 << 20,
		Swagger:      true,
	}
	if v := os.Getenv("YIELDD_ADDR"); v != "" {
		o.Addr = v
	}
	if v := os.Getenv("YIELDD_REVISION"); v != "" {
		o.Revision = v
	}
	return o
}

// buildRootCmd constructs the yieldd command tree bound to opts.
func buildRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "yieldd",
		Short:         "Serve the Sri Lanka crop yield predictor",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.mergeConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.ConfigPath, "config", "", "Path to a YAML, JSON or TOML config file")
	pf.StringVar(&opts.Revision, "revision", opts.Revision, "Feature schema revision: A (full), B (basic) or C (basic-meta) (defaults YIELDD_REVISION or A)")
	pf.StringVar(&opts.ArtifactDir, "artifact-dir", "", "Directory holding the model artifact (defaults to the executable's directory)")
	pf.StringVar(&opts.ArtifactPath, "artifact", "", "Explicit artifact path, overrides --artifact-dir lookup")
	pf.StringVar(&opts.MetadataPath, "metadata", "", "Explicit metadata side-car path (revision C)")
	pf.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "Log level: debug|info|warn|error")
	pf.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "Log format: json|console")

	f := root.Flags()
	f.StringVar(&opts.Addr, "addr", opts.Addr, "HTTP listen address, e.g. :8080 (defaults YIELDD_ADDR)")
	f.StringVar(&opts.CORSOrigins, "cors-origins", "", "Comma-separated allowed CORS origins; empty disables CORS")
	f.Int64Var(&opts.MaxBodyBytes, "max-body-bytes", opts.MaxBodyBytes, "Maximum request body size in bytes")
	f.BoolVar(&opts.Swagger, "swagger", opts.Swagger, "Serve the Swagger UI under /swagger/")

	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Report whether the configured artifact files are present and readable",
		Example: "  yieldd check --revision C --artifact-dir ./models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	root.AddCommand(checkCmd)
	return root
}

// mergeConfig applies the config file to every option whose flag was not
// set explicitly.
func (o *options) mergeConfig(cmd *cobra.Command) error {
	if o.ConfigPath == "" {
		return nil
	}
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", o.ConfigPath, err)
	}
	unset := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f == nil || !f.Changed
	}
	setStr := func(name, v string, dst *string) {
		if v != "" && unset(name) {
			*dst = v
		}
	}
	setStr("addr", cfg.Addr, &o.Addr)
	setStr("revision", cfg.Revision, &o.Revision)
	setStr("artifact-dir", cfg.ArtifactDir, &o.ArtifactDir)
	setStr("artifact", cfg.ArtifactPath, &o.ArtifactPath)
	setStr("metadata", cfg.MetadataPath, &o.MetadataPath)
	setStr("log-level", cfg.LogLevel, &o.LogLevel)
	setStr("log-format", cfg.LogFormat, &o.LogFormat)
	if len(cfg.CORSOrigins) > 0 && unset("cors-origins") {
		o.CORSOrigins = strings.Join(cfg.CORSOrigins, ",")
	}
	if cfg.MaxBodyBytes > 0 && unset("max-body-bytes") {
		o.MaxBodyBytes = cfg.MaxBodyBytes
	}
	if cfg.Swagger != nil && unset("swagger") {
		o.Swagger = *cfg.Swagger
	}
	return nil
}

// newManager resolves the artifact files for the configured revision.
// Explicit paths override the canonical names in the artifact directory.
func (o *options) newManager() (*manager.Manager, schema.Revision, error) {
	rev, err := schema.ParseRevision(o.Revision)
	if err != nil {
		return nil, "", err
	}
	set, err := registry.LoadDir(o.ArtifactDir, rev)
	if err != nil {
		return nil, "", fmt.Errorf("resolve artifact dir: %w", err)
	}
	if o.ArtifactPath != "" {
		set.ModelPath = o.ArtifactPath
	}
	if o.MetadataPath != "" {
		set.MetadataPath = o.MetadataPath
	}
	return manager.New(rev, set.ModelPath, set.MetadataPath), rev, nil
}

func runCheck(cmd *cobra.Command, opts *options) error {
	mgr, _, err := opts.newManager()
	if err != nil {
		return err
	}
	checks := mgr.Preflight()
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(checks); err != nil {
		return err
	}
	for _, c := range checks {
		if !c.OK {
			return fmt.Errorf("preflight check %s failed: %s", c.Name, c.Error)
		}
	}
	return nil
}

// splitCSV splits a comma-separated list, trimming blanks.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
