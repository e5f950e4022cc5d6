package licenses

import (
	"fmt"
	"path"
	"strings"
)

const (
	actionFileStringConstant          = "file"
	actionTextStringConstant          = "text"
	actionIgnoreStringConstant        = "ignore"
	unsupportedActionTemplateConstant = "unsupported action %q (expected file, text, or ignore)"
)

// Action selects how a submodule contributes to the attribution notice.
type Action string

// Supported actions.
const (
	ActionFile   Action = Action(actionFileStringConstant)
	ActionText   Action = Action(actionTextStringConstant)
	ActionIgnore Action = Action(actionIgnoreStringConstant)
)

// MarshalText implements encoding.TextMarshaler.
func (action Action) MarshalText() ([]byte, error) {
	return []byte(action), nil
}

// UnmarshalText implements encoding.TextUnmarshaler and rejects unknown actions.
func (action *Action) UnmarshalText(text []byte) error {
	switch candidate := Action(strings.TrimSpace(string(text))); candidate {
	case ActionFile, ActionText, ActionIgnore:
		*action = candidate
		return nil
	default:
		return fmt.Errorf(unsupportedActionTemplateConstant, string(text))
	}
}

// Entry records the expected license state of one submodule.
type Entry struct {
	Path        string `json:"path"`
	Name        string `json:"name,omitempty"`
	LicenseFile string `json:"licenseFile,omitempty"`
	Hash        string `json:"hash,omitempty"`
	LicenseText string `json:"licenseText,omitempty"`
	Action      Action `json:"action"`
}

// DisplayName returns Name, or the final segment of Path when Name is empty.
func (entry Entry) DisplayName() string {
	if len(strings.TrimSpace(entry.Name)) > 0 {
		return entry.Name
	}
	return path.Base(entry.Path)
}

// hasLicenseInfo reports whether both the license file name and its fingerprint are recorded.
func (entry Entry) hasLicenseInfo() bool {
	return len(entry.LicenseFile) > 0 && len(entry.Hash) > 0
}

// RecordSet is the ordered list of entries stored in a lock file.
type RecordSet []Entry

// Lookup returns the first entry whose path equals submodulePath.
func (recordSet RecordSet) Lookup(submodulePath string) (Entry, bool) {
	for _, entry := range recordSet {
		if entry.Path == submodulePath {
			return entry, true
		}
	}
	return Entry{}, false
}
