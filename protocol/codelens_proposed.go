//go:build proposed

package protocol

// CodeLensWorkspaceClientCapabilities describes workspace-level code lens
// support.
type CodeLensWorkspaceClientCapabilities struct {
	// The client supports a refresh request sent from the server. Useful
	// when the server detects a change that requires recalculating all
	// code lenses.
	RefreshSupport *bool `json:"refreshSupport,omitempty"`
}

// MethodCodeLensRefresh asks the client to refresh all code lenses.
const MethodCodeLensRefresh = "workspace/codeLens/refresh"

func init() {
	requestShapes[MethodCodeLensRefresh] = methodShape{nil, nil}
}
