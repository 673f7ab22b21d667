package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-epiform/internal/config"
	"github.com/goliatone/go-epiform/pkg/catalog"
	"github.com/goliatone/go-epiform/pkg/company"
	"github.com/goliatone/go-epiform/pkg/form"
	"github.com/goliatone/go-epiform/pkg/generate"
	"github.com/goliatone/go-epiform/pkg/model"
	"github.com/goliatone/go-epiform/pkg/printsink"
	"github.com/goliatone/go-epiform/pkg/render"
	"github.com/goliatone/go-epiform/pkg/renderers/document"
	"github.com/goliatone/go-epiform/pkg/renderers/table"
	"github.com/goliatone/go-epiform/pkg/tui"
)

// assignments collects repeated -set path=value flags.
type assignments []string

func (a *assignments) String() string {
	return strings.Join(*a, ",")
}

func (a *assignments) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected path=value, got %q", value)
	}
	*a = append(*a, value)
	return nil
}

func main() {
	envFile := flag.String("env", ".env", "env file with EPIFORM_* settings")
	output := flag.String("output", "", "write the document to this file instead of opening a browser (- for stdout)")
	browser := flag.String("browser", "", "browser command; {file}, {width} and {height} are expanded")
	companyFile := flag.String("company", "", "company profile (JSON or YAML)")
	catalogFile := flag.String("catalog", "", "equipment catalog (JSON or YAML)")
	locale := flag.String("locale", "", "locale for printed dates")
	themeFile := flag.String("theme", "", "go-theme manifest (JSON or YAML) for print styles")
	themeVariant := flag.String("theme-variant", "", "variant of the theme manifest")
	batch := flag.Bool("batch", false, "generate once from -set values without prompting")
	var sets assignments
	flag.Var(&sets, "set", "form value as path=value, e.g. colaborador=Ana or rows.0.descricao=LUVA (repeatable)")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	override(&cfg.Output, *output)
	override(&cfg.Browser, *browser)
	override(&cfg.CompanyFile, *companyFile)
	override(&cfg.CatalogFile, *catalogFile)
	override(&cfg.Locale, *locale)
	override(&cfg.ThemeFile, *themeFile)
	override(&cfg.ThemeVariant, *themeVariant)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	logger := config.InitLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	renderOptions, f, err := setup(cfg)
	if err != nil {
		log.Fatalf("Failed to set up form: %v", err)
	}
	for _, assignment := range sets {
		path, value, _ := strings.Cut(assignment, "=")
		if err := f.Set(strings.TrimSpace(path), value); err != nil {
			log.Fatalf("Invalid -set %q: %v", assignment, err)
		}
	}

	doc, err := document.New()
	if err != nil {
		log.Fatalf("Failed to load document template: %v", err)
	}

	if cfg.Output == "-" {
		if err := writeDocument(ctx, os.Stdout, doc, f.Snapshot(), renderOptions); err != nil {
			log.Fatalf("Failed to write document: %v", err)
		}
		return
	}

	generatorOptions := []generate.Option{
		generate.WithRenderOptions(renderOptions),
		generate.WithViewport(printsink.Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height}),
		generate.WithLogger(logger),
	}

	if *batch {
		gen, err := generate.New(opener(cfg), doc, append(generatorOptions, generate.WithNotifier(stderrNotifier()))...)
		if err != nil {
			log.Fatalf("Failed to create generator: %v", err)
		}
		if err := gen.Generate(ctx, f.Snapshot()); err != nil {
			log.Fatalf("Failed to generate document: %v", err)
		}
		if cfg.Output != "" {
			fmt.Printf("Document written to %s\n", cfg.Output)
		}
		return
	}

	session := tui.New(f,
		tui.WithTableRenderer(table.New()),
		tui.WithRenderOptions(renderOptions),
		tui.WithLogger(logger),
	)
	gen, err := generate.New(opener(cfg), doc, append(generatorOptions, generate.WithNotifier(session))...)
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}
	if err := session.Run(ctx, gen); err != nil {
		if errors.Is(err, tui.ErrAborted) || errors.Is(err, context.Canceled) {
			return
		}
		logger.Error("session ended", "error", err)
		os.Exit(1)
	}
}

// setup resolves the company profile, the theme and the catalog and builds
// the form.
func setup(cfg *config.Config) (render.RenderOptions, *form.Form, error) {
	options := render.RenderOptions{Locale: cfg.Locale}
	if cfg.ThemeFile != "" {
		manifest, err := render.LoadTheme(cfg.ThemeFile, cfg.ThemeVariant)
		if err != nil {
			return options, nil, err
		}
		options.Theme = manifest
		options.ThemeVariant = cfg.ThemeVariant
	}
	if cfg.CompanyFile != "" {
		profile, err := company.Load(cfg.CompanyFile)
		if err != nil {
			return options, nil, err
		}
		options.Company = profile
	}

	var formOptions []form.Option
	if cfg.CatalogFile != "" {
		c, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return options, nil, err
		}
		formOptions = append(formOptions, form.WithCatalog(c))
	}
	return options, form.New(formOptions...), nil
}

// writeDocument renders the page straight to w, bypassing the print sink.
func writeDocument(ctx context.Context, w io.Writer, renderer render.Renderer, snapshot model.Snapshot, options render.RenderOptions) error {
	markup, err := renderer.Render(ctx, snapshot, options)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err := w.Write(markup); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func opener(cfg *config.Config) printsink.Opener {
	if cfg.Output != "" {
		return printsink.NewFileOpener(cfg.Output)
	}
	return printsink.NewBrowserOpener(printsink.WithCommand(cfg.Browser))
}

func stderrNotifier() generate.Notifier {
	return generate.NotifierFunc(func(_ context.Context, message string) error {
		_, err := fmt.Fprintln(os.Stderr, message)
		return err
	})
}

func override(target *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*target = value
	}
}
