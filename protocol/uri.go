package protocol

import "go.lsp.dev/uri"

// DocumentURI is the URI of a text document, normally of the file scheme.
type DocumentURI = uri.URI

// URI is a tagging type for string properties that are actually URIs.
//
// @since 3.16.0
type URI = uri.URI
