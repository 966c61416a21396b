package model

import (
	"encoding/json"
	"testing"
)

func TestModelClone_DetachesSlices(t *testing.T) {
	src := Model{
		ParamValues: []ParamValue{{ParamID: 1, Value: "casual"}},
		Colors:      []Color{{ID: 9, Name: "red"}},
	}

	clone := src.Clone()
	clone.ParamValues[0].Value = "formal"
	clone.Colors[0].Name = "blue"

	if src.ParamValues[0].Value != "casual" {
		t.Fatalf("clone shares value storage with source")
	}
	if src.Colors[0].Name != "red" {
		t.Fatalf("clone shares color storage with source")
	}
}

func TestModelClone_EmptyListsSerializeAsArrays(t *testing.T) {
	out, err := json.Marshal(Model{}.Clone())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(out), `{"paramValues":[],"colors":[]}`; got != want {
		t.Fatalf("unexpected json\nwant: %s\n got: %s", want, got)
	}
}

func TestParamValidate(t *testing.T) {
	cases := []struct {
		name    string
		param   Param
		wantErr bool
	}{
		{name: "string", param: Param{ID: 1, Name: "Purpose", Type: ParamTypeString}},
		{name: "empty name", param: Param{ID: 1, Type: ParamTypeString}, wantErr: true},
		{name: "blank name", param: Param{ID: 1, Name: " \t", Type: ParamTypeString}, wantErr: true},
		{name: "padded name", param: Param{ID: 1, Name: "  Purpose  ", Type: ParamTypeString}},
		{name: "unknown type", param: Param{ID: 1, Name: "Length", Type: "integer"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.param.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
