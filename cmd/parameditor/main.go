package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor"
	"github.com/goliatone/go-parameditor/internal/demo"
	"github.com/goliatone/go-parameditor/internal/logging"
	"github.com/goliatone/go-parameditor/pkg/document"
	"github.com/goliatone/go-parameditor/pkg/editor"
	"github.com/goliatone/go-parameditor/pkg/openapi"
	"github.com/goliatone/go-parameditor/pkg/renderers/tui"
)

func main() {
	source := flag.String("source", "", "document path (JSON or YAML); embedded demo when empty")
	openapiPath := flag.String("openapi", "", "OpenAPI document path")
	schemaName := flag.String("schema", "", "component schema to read from -openapi")
	rendererName := flag.String("renderer", "vanilla", "renderer to use (vanilla|tui|terminal)")
	output := flag.String("output", "", "output file (stdout if empty)")
	standalone := flag.Bool("standalone", false, "wrap HTML output in a full page")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	doc, err := loadDocument(ctx, *source, *openapiPath, *schemaName)
	if err != nil {
		logger.Fatal("failed to load document", zap.Error(err))
	}
	logger.Debug("document loaded",
		zap.String("source", doc.Source),
		zap.Int("param_count", len(doc.Params)))

	ed := doc.Editor(editor.WithLogger(logger))
	out, err := parameditor.Render(ctx, ed, *rendererName, parameditor.RenderOptions{
		Title:       demo.Title,
		ActionLabel: demo.ActionLabel,
		Standalone:  *standalone,
	},
		parameditor.WithLogger(logger),
		parameditor.WithTUIOptions(tui.WithNotice(demo.Notice)),
	)
	if err != nil {
		logger.Fatal("failed to render", zap.String("renderer", *rendererName), zap.Error(err))
	}

	model, err := json.Marshal(ed.Snapshot())
	if err != nil {
		logger.Fatal("failed to encode model", zap.Error(err))
	}
	logger.Info("model", zap.ByteString("data", model))

	if *output != "" {
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			logger.Fatal("failed to write output", zap.String("path", *output), zap.Error(err))
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", *output)
		return
	}
	fmt.Println(string(out))
}

func loadDocument(ctx context.Context, source, openapiPath, schemaName string) (document.Document, error) {
	source = strings.TrimSpace(source)
	openapiPath = strings.TrimSpace(openapiPath)

	switch {
	case source != "" && openapiPath != "":
		return document.Document{}, errors.New("use either -source or -openapi, not both")
	case openapiPath != "":
		if strings.TrimSpace(schemaName) == "" {
			return document.Document{}, errors.New("-schema is required with -openapi")
		}
		return openapi.LoadFile(ctx, openapiPath, schemaName)
	case source != "":
		return document.LoadFile(source)
	default:
		return demo.Document()
	}
}
