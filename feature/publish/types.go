package publish

// ActionType represents the type of storage mutation.
type ActionType string

const (
	// ActionUpload puts a local file to its object key.
	ActionUpload ActionType = "upload"
	// ActionDelete removes a remote object with no local file.
	ActionDelete ActionType = "delete"
)

// Action represents a planned storage mutation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the object key.
	Key string `json:"key"`

	// Path is the site-relative local file for uploads.
	Path string `json:"path,omitempty"`

	// Size is the local file size for uploads.
	Size int64 `json:"size,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// Plan contains the actions that bring the bucket in line with the local site.
// Asset uploads come first, then deletes, and the gallery upload last, so the
// published gallery never points at objects that are not there yet.
type Plan struct {
	Bucket  string   `json:"bucket"`
	Actions []Action `json:"actions"`
	Summary Summary  `json:"summary"`
}

// Summary provides aggregate counts for a plan.
type Summary struct {
	LocalFiles    int `json:"local_files"`
	RemoteObjects int `json:"remote_objects"`
	Uploads       int `json:"uploads"`
	Deletes       int `json:"deletes"`
	Unchanged     int `json:"unchanged"`
}

// Options controls planning and execution.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Prune plans deletion of remote asset objects with no local file.
	Prune bool
}
