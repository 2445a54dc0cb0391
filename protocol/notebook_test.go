//go:build proposed

package protocol

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebook_WireForms(t *testing.T) {
	t.Run("bare type string", func(t *testing.T) {
		var got Notebook
		require.NoError(t, json.Unmarshal([]byte(`"jupyter-notebook"`), &got))
		require.NotNil(t, got.Type)
		assert.Equal(t, "jupyter-notebook", *got.Type)

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Equal(t, `"jupyter-notebook"`, string(data))
	})

	t.Run("document filter", func(t *testing.T) {
		var got Notebook
		require.NoError(t, json.Unmarshal([]byte(`{"scheme":"untitled","pattern":"**/*.ipynb"}`), &got))
		require.NotNil(t, got.Filter)
		assert.Equal(t, "untitled", *got.Filter.Scheme)
		assert.Nil(t, got.Filter.NotebookType)
	})

	t.Run("rejects other shapes", func(t *testing.T) {
		var got Notebook
		assert.Error(t, json.Unmarshal([]byte(`42`), &got))
	})
}

func TestDidOpenNotebookDocumentParams_Decode(t *testing.T) {
	wire := `{
		"notebookDocument": {
			"uri": "file:///analysis.ipynb",
			"notebookType": "jupyter-notebook",
			"version": 1,
			"cells": [
				{"kind": 2, "document": "file:///analysis.ipynb#cell1",
				 "executionSummary": {"executionOrder": 3, "success": true}}
			]
		},
		"cellTextDocuments": [
			{"uri": "file:///analysis.ipynb#cell1", "languageId": "python",
			 "version": 1, "text": "print(1)\n"}
		]
	}`

	var p DidOpenNotebookDocumentParams
	require.NoError(t, Decode([]byte(wire), &p))

	assert.Equal(t, "jupyter-notebook", p.NotebookDocument.NotebookType)
	require.Len(t, p.NotebookDocument.Cells, 1)
	assert.Equal(t, CellCode, p.NotebookDocument.Cells[0].Kind)
	require.NotNil(t, p.NotebookDocument.Cells[0].ExecutionSummary)
	assert.Equal(t, uint32(3), p.NotebookDocument.Cells[0].ExecutionSummary.ExecutionOrder)
}

func TestNotebookCellKind_Closed(t *testing.T) {
	wire := `{"kind":7,"document":"file:///n.ipynb#cell1"}`

	var cell NotebookCell
	err := Decode([]byte(wire), &cell)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized enumeration value")
}

func TestDidChangeNotebookDocumentParams_RoundTrip(t *testing.T) {
	original := DidChangeNotebookDocumentParams{
		NotebookDocument: VersionedNotebookDocumentIdentifier{
			Version: 8,
			URI:     DocumentURI("file:///analysis.ipynb"),
		},
		Change: NotebookDocumentChangeEvent{
			Cells: &NotebookDocumentCellChange{
				Structure: &NotebookDocumentCellChangeStructure{
					Array: NotebookCellArrayChange{
						Start:       1,
						DeleteCount: 0,
						Cells: []NotebookCell{
							{Kind: CellMarkup, Document: DocumentURI("file:///analysis.ipynb#cell2")},
						},
					},
				},
			},
		},
	}

	data, err := Encode(original)
	require.NoError(t, err)

	var decoded DidChangeNotebookDocumentParams
	require.NoError(t, Decode(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestNotebookRegistryEntries(t *testing.T) {
	for _, m := range []string{
		MethodDidOpenNotebookDocument,
		MethodDidChangeNotebookDocument,
		MethodDidSaveNotebookDocument,
		MethodDidCloseNotebookDocument,
		MethodSemanticHighlighting,
	} {
		_, ok := NotificationType(m)
		assert.True(t, ok, "notification %s missing from registry", m)
	}
}
