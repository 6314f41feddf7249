package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/goliatone/go-compare/pkg/loader"
	"github.com/goliatone/go-compare/pkg/model"
	"github.com/goliatone/go-compare/pkg/orchestrator"
	"github.com/goliatone/go-compare/pkg/render"
	"github.com/goliatone/go-compare/pkg/renderers/tui"
)

func newRenderCommand(global *globalOptions) *cobra.Command {
	var (
		renderers string
		output    string
	)
	cmd := &cobra.Command{
		Use:   "render [CONTENT]",
		Short: "Render a comparison (vanilla HTML by default)",
		Long: "Render a comparison from a JSON or YAML content file. Pass - to read JSON from stdin.\n" +
			"Several renderers may be listed; with --output each result is written to OUTPUT.<renderer>.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := global.request(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			names := splitList(renderers)
			gen, err := global.orchestrator()
			if err != nil {
				return err
			}

			var errs error
			for _, name := range names {
				req.Renderer = name
				out, err := gen.Generate(cmd.Context(), req)
				if err != nil {
					errs = multierr.Append(errs, fmt.Errorf("render %s: %w", name, err))
					continue
				}
				errs = multierr.Append(errs, writeOutput(cmd.OutOrStdout(), output, name, len(names) > 1, out))
			}
			return errs
		},
	}
	cmd.Flags().StringVar(&renderers, "renderer", "vanilla", "Comma separated renderer names")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	return cmd
}

func newBrowseCommand(global *globalOptions) *cobra.Command {
	var pageSize int
	cmd := &cobra.Command{
		Use:   "browse [CONTENT]",
		Short: "Step through the specification panels interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := global.request(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			registry := render.NewRegistry()
			if err := registry.Register(tui.New(tui.WithPageSize(pageSize))); err != nil {
				return err
			}
			gen, err := global.orchestrator(
				orchestrator.WithRegistry(registry),
				orchestrator.WithDefaultRenderer("tui"),
			)
			if err != nil {
				return err
			}
			out, err := gen.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Number of panels shown per page")
	return cmd
}

func newSpecsCommand(global *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specs [CONTENT]",
		Short: "Print the normalised specification rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := global.request(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			gen, err := global.orchestrator()
			if err != nil {
				return err
			}
			result, err := gen.Resolve(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			active, _ := result.Tabs.Active()
			fmt.Fprintf(out, "%s (shape: %s)\n", result.Model.Title, shapeName(string(result.Model.SpecShape)))
			for _, spec := range result.Model.Specs {
				marker := " "
				if spec.ID == active {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\t%s\t%s\t%s\n", marker, spec.ID, spec.Label, spec.LeftValue, spec.RightValue)
			}
			return nil
		},
	}
	return cmd
}

func (g *globalOptions) orchestrator(extra ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	logger := g.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	builderOptions := []model.BuilderOption{model.WithLogger(logger)}
	if g.defaultTitle != "" {
		builderOptions = append(builderOptions, model.WithDefaultTitle(g.defaultTitle))
	}
	options := []orchestrator.Option{
		orchestrator.WithLogger(logger),
		orchestrator.WithModelBuilder(model.NewBuilder(builderOptions...)),
	}
	if len(g.themeFiles) > 0 {
		manifests, err := loadThemeManifests(g.themeFiles)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithThemeManifests(g.themeName, g.themeVariant, manifests...))
	}
	return orchestrator.New(append(options, extra...)...), nil
}

func (g *globalOptions) request(stdin io.Reader, args []string) (orchestrator.Request, error) {
	req := orchestrator.Request{
		FragmentPath: g.fragmentPath,
		ActiveTab:    g.activeTab,
	}
	if len(args) == 0 {
		return req, nil
	}
	if args[0] != "-" {
		req.Path = args[0]
		return req, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return req, fmt.Errorf("read stdin: %w", err)
	}
	source, err := loader.Decode(data, loader.FormatJSON)
	if err != nil {
		return req, err
	}
	req.Source = source
	return req, nil
}

func writeOutput(stdout io.Writer, output, renderer string, suffix bool, data []byte) error {
	if output == "" {
		_, err := stdout.Write(data)
		return err
	}
	path := output
	if suffix {
		path = output + "." + renderer
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}

func shapeName(shape string) string {
	if shape == "" {
		return "none"
	}
	return shape
}
