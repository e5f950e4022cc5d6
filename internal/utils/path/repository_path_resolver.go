package pathutils

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	defaultRepositoryPathConstant               = "."
	repositoryPathAbsoluteErrorTemplateConstant = "unable to resolve repository path %s: %w"
)

// ErrRepositoryPathEmpty indicates no usable repository path was supplied.
var ErrRepositoryPathEmpty = errors.New("repository path is empty")

// RepositoryPathResolver turns user supplied repository paths into clean absolute paths.
type RepositoryPathResolver struct {
	homeExpander *HomeExpander
	absolutePath func(string) (string, error)
}

// NewRepositoryPathResolver constructs a resolver expanding the current user's home directory.
func NewRepositoryPathResolver() *RepositoryPathResolver {
	return NewRepositoryPathResolverWithExpander(nil)
}

// NewRepositoryPathResolverWithExpander constructs a resolver using the provided expander.
func NewRepositoryPathResolverWithExpander(homeExpander *HomeExpander) *RepositoryPathResolver {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &RepositoryPathResolver{homeExpander: homeExpander, absolutePath: filepath.Abs}
}

// Resolve returns the first non-blank candidate as a clean absolute path, falling back to the
// working directory when every candidate is blank.
func (resolver *RepositoryPathResolver) Resolve(candidatePaths ...string) (string, error) {
	if resolver == nil {
		resolver = NewRepositoryPathResolver()
	}

	selectedPath := defaultRepositoryPathConstant
	for _, candidatePath := range candidatePaths {
		trimmedCandidate := strings.TrimSpace(candidatePath)
		if len(trimmedCandidate) > 0 {
			selectedPath = trimmedCandidate
			break
		}
	}

	expandedPath := resolver.homeExpander.Expand(selectedPath)
	if len(expandedPath) == 0 {
		return "", ErrRepositoryPathEmpty
	}

	absolutePath, absoluteError := resolver.absolutePath(expandedPath)
	if absoluteError != nil {
		return "", fmt.Errorf(repositoryPathAbsoluteErrorTemplateConstant, selectedPath, absoluteError)
	}
	return filepath.Clean(absolutePath), nil
}
