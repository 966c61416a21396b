package main

import (
	"encoding/json"
	"flag"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"go.uber.org/zap"

	"github.com/goliatone/go-parameditor/internal/demo"
	"github.com/goliatone/go-parameditor/internal/gui"
	"github.com/goliatone/go-parameditor/internal/logging"
	"github.com/goliatone/go-parameditor/pkg/document"
	"github.com/goliatone/go-parameditor/pkg/editor"
	"github.com/goliatone/go-parameditor/pkg/model"
)

func main() {
	source := flag.String("source", "", "document path (JSON or YAML); embedded demo when empty")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	doc, err := loadDocument(*source)
	if err != nil {
		logger.Fatal("failed to load document", zap.Error(err))
	}

	a := app.NewWithID("com.goliatone.parameditor")
	w := a.NewWindow(demo.Title)
	w.Resize(fyne.NewSize(480, 320))

	form, err := gui.NewForm(doc.Editor(editor.WithLogger(logger)),
		gui.WithTitle(demo.Title),
		gui.WithActionLabel(demo.ActionLabel),
		gui.WithLogger(logger),
		gui.WithOnModel(func(m model.Model) {
			data, err := json.Marshal(m)
			if err != nil {
				logger.Error("failed to encode model", zap.Error(err))
				return
			}
			logger.Info("model", zap.ByteString("data", data))
			dialog.ShowInformation(demo.ActionLabel, demo.Notice, w)
		}),
	)
	if err != nil {
		logger.Fatal("failed to build form", zap.Error(err))
	}

	w.SetContent(form.Object())
	w.ShowAndRun()
}

func loadDocument(source string) (document.Document, error) {
	if source == "" {
		return demo.Document()
	}
	return document.LoadFile(source)
}
