// Command schemaval validates JSON documents against JSON Schema files,
// checks schema documents for authoring errors, infers types at pointer
// locations, and reads or writes pointer-addressed values.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	schema "github.com/goliatone/go-schema"
	"github.com/goliatone/go-schema/internal/config"
	"github.com/goliatone/go-schema/internal/logging"
	"github.com/goliatone/go-schema/internal/logging/gologger"
	"github.com/goliatone/go-schema/pkg/interfaces"
)

var (
	flagSchema  string
	flagData    string
	flagPath    string
	flagValue   string
	flagConfig  string
	flagCollect bool
	flagLevel   string
	flagFormat  string
)

func main() {
	root := &cobra.Command{
		Use:           "schemaval",
		Short:         "Validate and manipulate JSON documents with JSON Schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "TOML configuration file")
	root.PersistentFlags().StringVar(&flagLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal)")
	root.PersistentFlags().StringVar(&flagFormat, "log-format", "", "log format (json, console, pretty)")

	root.AddCommand(validateCmd(), checkCmd(), inferCmd(), getCmd(), setCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a JSON document against a schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, logger, err := buildEngine()
			if err != nil {
				return err
			}
			root, err := loadSchema(flagSchema)
			if err != nil {
				return err
			}
			doc, err := loadDocument(flagData)
			if err != nil {
				return err
			}

			if flagCollect {
				violations := eng.Collect(root, doc)
				if len(violations) == 0 {
					fmt.Println("valid")
					return nil
				}
				out, err := json.MarshalIndent(violations, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				os.Exit(1)
			}

			if err := eng.Validate(root, doc); err != nil {
				logger.Debug("document rejected", "schema", flagSchema, "data", flagData)
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			fmt.Println("valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSchema, "schema", "", "schema file (JSON or YAML)")
	cmd.Flags().StringVar(&flagData, "data", "", "JSON document to validate")
	cmd.Flags().BoolVar(&flagCollect, "collect", false, "report every violation keyed by pointer")
	cmd.MarkFlagRequired("schema")
	cmd.MarkFlagRequired("data")
	return cmd
}

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a schema document for authoring errors and unsupported keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine()
			if err != nil {
				return err
			}
			raw, err := readSchemaBytes(flagSchema)
			if err != nil {
				return err
			}
			if err := eng.CheckDocument(raw); err != nil {
				return err
			}
			doc, err := schema.DecodeValue(raw)
			if err != nil {
				return err
			}
			if err := eng.CheckKeywords(doc); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSchema, "schema", "", "schema file (JSON or YAML)")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func inferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Infer the concrete type at a pointer location",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine()
			if err != nil {
				return err
			}
			root, err := loadSchema(flagSchema)
			if err != nil {
				return err
			}
			doc := schema.Null()
			if flagData != "" {
				if doc, err = loadDocument(flagData); err != nil {
					return err
				}
			}
			t, node, err := eng.ImplyType(root, doc, flagPath)
			if err != nil {
				return err
			}
			fmt.Println(t.String())
			if node != nil {
				fmt.Println(schema.SchemaToValue(node).String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSchema, "schema", "", "schema file (JSON or YAML)")
	cmd.Flags().StringVar(&flagData, "data", "", "JSON document used as tie-breaker")
	cmd.Flags().StringVar(&flagPath, "path", "#", "pointer such as #/user/tags/0")
	cmd.MarkFlagRequired("schema")
	return cmd
}

func getCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Read the value at a pointer location",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine()
			if err != nil {
				return err
			}
			root, err := loadSchema(flagSchema)
			if err != nil {
				return err
			}
			doc, err := loadDocument(flagData)
			if err != nil {
				return err
			}
			v, ok := eng.Get(root, flagPath, doc)
			if !ok {
				fmt.Println("null")
				return nil
			}
			fmt.Println(v.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSchema, "schema", "", "schema file (JSON or YAML)")
	cmd.Flags().StringVar(&flagData, "data", "", "JSON document to read")
	cmd.Flags().StringVar(&flagPath, "path", "#", "pointer such as #/user/tags/0")
	cmd.MarkFlagRequired("schema")
	cmd.MarkFlagRequired("data")
	return cmd
}

func setCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Write a value at a pointer location and print the new document",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, _, err := buildEngine()
			if err != nil {
				return err
			}
			root, err := loadSchema(flagSchema)
			if err != nil {
				return err
			}
			doc, err := loadDocument(flagData)
			if err != nil {
				return err
			}
			newVal, err := schema.DecodeValueString(flagValue)
			if err != nil {
				return err
			}
			updated, err := eng.Set(root, flagPath, newVal, doc)
			if err != nil {
				return err
			}
			fmt.Println(updated.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSchema, "schema", "", "schema file (JSON or YAML)")
	cmd.Flags().StringVar(&flagData, "data", "", "JSON document to rewrite")
	cmd.Flags().StringVar(&flagPath, "path", "", "pointer such as #/user/tags/0")
	cmd.Flags().StringVar(&flagValue, "value", "", "JSON value to write")
	cmd.MarkFlagRequired("schema")
	cmd.MarkFlagRequired("data")
	cmd.MarkFlagRequired("path")
	cmd.MarkFlagRequired("value")
	return cmd
}

func buildEngine() (*schema.Engine, interfaces.Logger, error) {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}
	if flagLevel != "" {
		cfg.Logging.Level = flagLevel
	}
	if flagFormat != "" {
		cfg.Logging.Format = flagFormat
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, nil, err
	}

	eng, err := schema.New(schema.WithConfig(cfg), schema.WithLogger(provider))
	if err != nil {
		return nil, nil, err
	}
	return eng, logging.CLILogger(provider), nil
}

// loadSchema reads and decodes a schema file. YAML files are converted to
// JSON before decoding so object key order follows the file.
func loadSchema(path string) (*schema.Schema, error) {
	raw, err := readSchemaBytes(path)
	if err != nil {
		return nil, err
	}
	return schema.DecodeSchema(raw)
}

func readSchemaBytes(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("schemaval: parsing YAML schema %s: %w", path, err)
		}
		return json.Marshal(doc)
	default:
		return raw, nil
	}
}

func loadDocument(path string) (schema.Value, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return schema.Null(), err
	}
	return schema.DecodeValue(raw)
}
