package protocol

import (
	"github.com/segmentio/encoding/json"

	"github.com/lspkit/lsp-go/schema"
)

// WorkspaceFolder is a directory the client has opened as part of the
// workspace.
type WorkspaceFolder struct {
	// The associated URI for this workspace folder.
	URI DocumentURI `json:"uri"`

	// The name of the workspace folder. Defaults to the URI's basename.
	Name string `json:"name"`
}

// ChangeNotifications is the workspaceFolders.changeNotifications server
// capability. It is either a boolean or a registration identifier used to
// unregister the notification later.
type ChangeNotifications struct {
	Bool *bool
	ID   *string
}

// NewChangeNotificationsBool returns the boolean form of the capability.
func NewChangeNotificationsBool(v bool) *ChangeNotifications {
	return &ChangeNotifications{Bool: &v}
}

// NewChangeNotificationsID returns the registration-id form of the
// capability.
func NewChangeNotificationsID(id string) *ChangeNotifications {
	return &ChangeNotifications{ID: &id}
}

// MarshalJSON implements json.Marshaler.
func (c ChangeNotifications) MarshalJSON() ([]byte, error) {
	if c.ID != nil {
		return json.Marshal(*c.ID)
	}
	if c.Bool != nil {
		return json.Marshal(*c.Bool)
	}
	return json.Marshal(false)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ChangeNotifications) UnmarshalJSON(data []byte) error {
	*c = ChangeNotifications{}
	if sniff(data) == '"' {
		c.ID = new(string)
		return json.Unmarshal(data, c.ID)
	}
	c.Bool = new(bool)
	if err := json.Unmarshal(data, c.Bool); err != nil {
		return &schema.Mismatch{Message: "expected boolean or string"}
	}
	return nil
}

// DidChangeWorkspaceFoldersParams is the payload of the
// workspace/didChangeWorkspaceFolders notification.
type DidChangeWorkspaceFoldersParams struct {
	// The actual workspace folder change event.
	Event WorkspaceFoldersChangeEvent `json:"event"`
}

// WorkspaceFoldersChangeEvent describes folders added to and removed from
// the workspace.
type WorkspaceFoldersChangeEvent struct {
	// The array of added workspace folders.
	Added []WorkspaceFolder `json:"added"`

	// The array of removed workspace folders.
	Removed []WorkspaceFolder `json:"removed"`
}

// DidChangeConfigurationParams is the payload of the
// workspace/didChangeConfiguration notification.
type DidChangeConfigurationParams struct {
	// The actual changed settings.
	Settings any `json:"settings"`
}

// DidChangeConfigurationClientCapabilities describes client support for the
// workspace/didChangeConfiguration notification.
type DidChangeConfigurationClientCapabilities struct {
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

// ConfigurationItem names a configuration section, optionally scoped to a
// resource.
type ConfigurationItem struct {
	// The scope to get the configuration section for.
	ScopeURI *DocumentURI `json:"scopeUri,omitempty"`

	// The configuration section asked for.
	Section *string `json:"section,omitempty"`
}

// ConfigurationParams is the payload of the workspace/configuration request,
// sent from the server to fetch settings from the client.
type ConfigurationParams struct {
	Items []ConfigurationItem `json:"items"`
}

// FileChangeType is the type of a file system change event.
type FileChangeType int32

const (
	// FileCreated means the file got created.
	FileCreated FileChangeType = 1

	// FileChanged means the file got changed.
	FileChanged FileChangeType = 2

	// FileDeleted means the file got deleted.
	FileDeleted FileChangeType = 3
)

// EnumValues implements schema.Enumerated.
func (FileChangeType) EnumValues() []any {
	return []any{FileCreated, FileChanged, FileDeleted}
}

// FileEvent describes a single file change reported by the client.
type FileEvent struct {
	// The file's URI.
	URI DocumentURI `json:"uri"`

	// The change type.
	Type FileChangeType `json:"type"`
}

// DidChangeWatchedFilesParams is the payload of the
// workspace/didChangeWatchedFiles notification.
type DidChangeWatchedFilesParams struct {
	// The actual file events.
	Changes []FileEvent `json:"changes"`
}

// DidChangeWatchedFilesClientCapabilities describes client support for the
// workspace/didChangeWatchedFiles notification.
type DidChangeWatchedFilesClientCapabilities struct {
	// Did-change-watched-files notification supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

// WatchKind is a bit mask selecting which file events a watcher is
// interested in.
type WatchKind uint8

const (
	// WatchCreate makes the watcher report create events.
	WatchCreate WatchKind = 1 << iota

	// WatchChange makes the watcher report change events.
	WatchChange

	// WatchDelete makes the watcher report delete events.
	WatchDelete
)

// FileSystemWatcher registers interest in file events matching a glob
// pattern.
type FileSystemWatcher struct {
	// The glob pattern to watch. Patterns support `**`, `*`, `?`, `[...]`
	// ranges and `{...}` group conditions.
	GlobPattern string `json:"globPattern"`

	// The kind of events to watch for. Defaults to
	// WatchCreate | WatchChange | WatchDelete when omitted.
	Kind *WatchKind `json:"kind,omitempty"`
}

// DidChangeWatchedFilesRegistrationOptions describes the watchers to
// register for workspace/didChangeWatchedFiles.
type DidChangeWatchedFilesRegistrationOptions struct {
	// The watchers to register.
	Watchers []FileSystemWatcher `json:"watchers"`
}

// ExecuteCommandClientCapabilities describes client support for the
// workspace/executeCommand request.
type ExecuteCommandClientCapabilities struct {
	// Execute-command supports dynamic registration.
	DynamicRegistration *bool `json:"dynamicRegistration,omitempty"`
}

// ExecuteCommandOptions is the executeCommandProvider server capability.
type ExecuteCommandOptions struct {
	WorkDoneProgressOptions

	// The commands to be executed on the server.
	Commands []string `json:"commands"`
}

// ExecuteCommandParams is the payload of the workspace/executeCommand
// request.
type ExecuteCommandParams struct {
	WorkDoneProgressParams

	// The identifier of the actual command handler.
	Command string `json:"command"`

	// Arguments that the command should be invoked with.
	Arguments []any `json:"arguments,omitempty"`
}

// ExecuteCommandRegistrationOptions describes dynamic registration of
// execute-command support.
type ExecuteCommandRegistrationOptions struct {
	// The commands to be executed on the server.
	Commands []string `json:"commands"`
}

// ApplyWorkspaceEditParams is the payload of the workspace/applyEdit
// request, sent from the server to modify a resource on the client side.
type ApplyWorkspaceEditParams struct {
	// An optional label of the workspace edit. Clients typically display it
	// in the user interface, for example on an undo stack.
	Label *string `json:"label,omitempty"`

	// The edits to apply.
	Edit WorkspaceEdit `json:"edit"`
}

// ApplyWorkspaceEditResponse is the answer to a workspace/applyEdit
// request.
type ApplyWorkspaceEditResponse struct {
	// Indicates whether the edit was applied or not.
	Applied bool `json:"applied"`

	// An optional textual description for why the edit was not applied.
	//
	// @since 3.16.0
	FailureReason *string `json:"failureReason,omitempty"`
}
