package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-layoutmock/pkg/catalog"
	"github.com/goliatone/go-layoutmock/pkg/editor"
	"github.com/goliatone/go-layoutmock/pkg/layout"
	"github.com/goliatone/go-layoutmock/pkg/render"
	htmlrenderer "github.com/goliatone/go-layoutmock/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-layoutmock/pkg/renderers/text"
	"github.com/goliatone/go-layoutmock/pkg/scaffold"
	"github.com/goliatone/go-layoutmock/pkg/session"
)

var (
	renderMode   string
	renderFormat string
	outputPath   string
	themeName    string
	brandColor   string

	scaffoldComponent string
	sectionTitle      string
)

// loadSession builds a session from --input when given, falling back to the
// --template catalog entry (or the default layout).
func loadSession() (*session.Session, error) {
	options := []session.Option{session.WithLogger(logger)}

	if inputPath != "" {
		raw, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		doc, err := layout.DecodeJSON(raw)
		if err != nil {
			return nil, err
		}
		return session.New(doc, options...)
	}
	return session.Open(templateName, options...)
}

func newRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()
	page, err := htmlrenderer.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(page)
	registry.MustRegister(textrenderer.New())
	return registry, nil
}

func writeOutput(data []byte) error {
	if outputPath == "" || outputPath == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Interactively rearrange a layout",
	Long: `Open a layout in the interactive editor. Each menu action maps to one
mutation: add or remove sections and fields, hide or show fields, move and
swap fields, or update values and labels. Use 'export' afterwards to save
the result.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		ed, err := editor.New(sess)
		if err != nil {
			return err
		}
		if err := ed.Run(cmd.Context()); err != nil {
			return err
		}

		raw, err := sess.Export()
		if err != nil {
			return err
		}
		return writeOutput(raw)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a layout as HTML or text",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		mode, err := render.ParseMode(renderMode)
		if err != nil {
			return err
		}

		registry, err := newRegistry()
		if err != nil {
			return err
		}
		renderer, err := registry.Get(renderFormat)
		if err != nil {
			return err
		}

		options := render.RenderOptions{Mode: mode}
		if cfg := themeConfig(); cfg != nil {
			options.Theme = cfg
		}

		out, err := renderer.Render(cmd.Context(), sess.Document(), options)
		if err != nil {
			return err
		}
		return writeOutput(out)
	},
}

func themeConfig() *theme.RendererConfig {
	if themeName == "" && brandColor == "" {
		return nil
	}
	cfg := &theme.RendererConfig{Theme: themeName}
	if brandColor != "" {
		cfg.CSSVars = map[string]string{"--layoutmock-brand": brandColor}
	}
	return cfg
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the layout's serialized JSON form",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		raw, err := sess.Export()
		if err != nil {
			return err
		}
		return writeOutput(raw)
	},
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in layout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := catalog.Names()
		for _, name := range names {
			marker := ""
			if name == catalog.DefaultName {
				marker = " (default)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
		}
		return nil
	},
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold <openapi-file>",
	Short: "Build a starter layout from an OpenAPI component schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		var options []scaffold.Option
		if sectionTitle != "" {
			options = append(options, scaffold.WithSectionTitle(sectionTitle))
		}
		doc, err := scaffold.FromData(cmd.Context(), raw, scaffoldComponent, options...)
		if err != nil {
			return err
		}

		out, err := doc.EncodeJSON()
		if err != nil {
			return err
		}
		return writeOutput(out)
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Check field values against their declared types",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		issues := sess.Lint()
		if len(issues) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no issues found")
			return nil
		}

		var b strings.Builder
		for _, issue := range issues {
			fmt.Fprintf(&b, "%s\n", issue.String())
		}
		fmt.Fprint(cmd.OutOrStdout(), b.String())
		return fmt.Errorf("%d issue(s) found", len(issues))
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderMode, "mode", "m", "design", "Rendering mode: design or preview")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "html", "Output format: html or text")
	renderCmd.Flags().StringVar(&themeName, "theme", "", "Theme name stamped on the page")
	renderCmd.Flags().StringVar(&brandColor, "brand", "", "Brand color override (CSS value)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file, '-' for stdout")

	editCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Where to write the edited layout JSON")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file, '-' for stdout")

	scaffoldCmd.Flags().StringVarP(&scaffoldComponent, "component", "c", "", "Component schema to scaffold from (required)")
	scaffoldCmd.Flags().StringVar(&sectionTitle, "section-title", "", "Title for the main section")
	scaffoldCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "Output file, '-' for stdout")
	_ = scaffoldCmd.MarkFlagRequired("component")
}
