package document_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-parameditor/pkg/model"
	"github.com/goliatone/go-parameditor/pkg/testsupport"
)

func TestLoadFile_KeepsNamesAsWritten(t *testing.T) {
	doc := testsupport.LoadDocument(t, filepath.Join("testdata", "padded.yaml"))

	wantParams := []model.Param{
		{ID: 1, Name: "  Purpose  ", Type: model.ParamTypeString},
		{ID: 2, Name: "Width<Height", Type: model.ParamTypeString},
	}
	if diff := testsupport.CompareGolden(wantParams, doc.Params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}

	golden := filepath.Join("testdata", "padded_model.json")
	testsupport.WriteGolden(t, golden, doc.Model)
	if diff := testsupport.CompareGolden(testsupport.MustLoadModel(t, golden), doc.Model); diff != "" {
		t.Fatalf("model mismatch (-want +got):\n%s", diff)
	}
}
