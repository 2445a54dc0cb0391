package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every method constant must resolve through the shape tables, so the
// catalog and the constants cannot drift apart.
func TestRegistryCoversMethodCatalog(t *testing.T) {
	requests := []string{
		MethodInitialize,
		MethodShutdown,
		MethodShowMessageRequest,
		MethodShowDocument,
		MethodRegisterCapability,
		MethodUnregisterCapability,
		MethodWorkspaceFolders,
		MethodWorkspaceConfiguration,
		MethodWorkspaceSymbol,
		MethodWorkspaceExecuteCommand,
		MethodWorkspaceApplyEdit,
		MethodWillSaveWaitUntil,
		MethodCompletion,
		MethodCompletionItemResolve,
		MethodHover,
		MethodSignatureHelp,
		MethodDefinition,
		MethodTypeDefinition,
		MethodImplementation,
		MethodReferences,
		MethodDocumentHighlight,
		MethodDocumentSymbol,
		MethodCodeAction,
		MethodCodeLens,
		MethodCodeLensResolve,
		MethodDocumentLink,
		MethodDocumentLinkResolve,
		MethodDocumentFormatting,
		MethodDocumentRangeFormatting,
		MethodDocumentOnTypeFormatting,
		MethodRename,
		MethodPrepareRename,
		MethodLinkedEditingRange,
	}
	for _, m := range requests {
		_, _, ok := RequestTypes(m)
		assert.True(t, ok, "request %s missing from registry", m)
	}

	notifications := []string{
		MethodCancelRequest,
		MethodProgress,
		MethodSetTrace,
		MethodLogTrace,
		MethodInitialized,
		MethodExit,
		MethodShowMessage,
		MethodLogMessage,
		MethodTelemetryEvent,
		MethodDidOpenTextDocument,
		MethodDidChangeTextDocument,
		MethodWillSaveTextDocument,
		MethodDidSaveTextDocument,
		MethodDidCloseTextDocument,
		MethodPublishDiagnostics,
		MethodDidChangeConfiguration,
		MethodDidChangeWatchedFiles,
		MethodDidChangeWorkspaceFolders,
	}
	for _, m := range notifications {
		_, ok := NotificationType(m)
		assert.True(t, ok, "notification %s missing from registry", m)
	}

	assert.GreaterOrEqual(t, len(RequestMethods()), len(requests))
	assert.GreaterOrEqual(t, len(NotificationMethods()), len(notifications))
}

func TestRequestTypes(t *testing.T) {
	params, result, ok := RequestTypes(MethodCompletion)
	require.True(t, ok)
	assert.Equal(t, "CompletionParams", params.Name())
	assert.Equal(t, "CompletionResponse", result.Name())

	params, result, ok = RequestTypes(MethodShutdown)
	require.True(t, ok)
	assert.Nil(t, params)
	assert.Nil(t, result)

	_, _, ok = RequestTypes("textDocument/unknown")
	assert.False(t, ok)
}

func TestDecodeParams(t *testing.T) {
	t.Run("notification params", func(t *testing.T) {
		wire := `{"textDocument":{"uri":"file:///main.go","languageId":"go","version":1,"text":"package main\n"}}`

		v, err := DecodeParams(MethodDidOpenTextDocument, []byte(wire))
		require.NoError(t, err)

		params, isOpen := v.(DidOpenTextDocumentParams)
		require.True(t, isOpen, "decoded %T", v)
		assert.Equal(t, "go", params.TextDocument.LanguageID)
	})

	t.Run("request params", func(t *testing.T) {
		wire := `{"textDocument":{"uri":"file:///main.go"},"position":{"line":0,"character":5}}`

		v, err := DecodeParams(MethodHover, []byte(wire))
		require.NoError(t, err)

		params, isHover := v.(HoverParams)
		require.True(t, isHover, "decoded %T", v)
		assert.Equal(t, uint32(5), params.Position.Character)
	})

	t.Run("payload-free method", func(t *testing.T) {
		v, err := DecodeParams(MethodExit, nil)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := DecodeParams("workspace/unknown", []byte(`{}`))
		require.Error(t, err)

		var re *ResponseError
		require.True(t, errors.As(err, &re))
		assert.Equal(t, CodeMethodNotFound, re.Code)
	})

	t.Run("malformed params", func(t *testing.T) {
		_, err := DecodeParams(MethodDidOpenTextDocument, []byte(`{"textDocument":{}}`))
		assert.Error(t, err)
	})
}
