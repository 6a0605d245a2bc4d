package models

import "time"

// CollectionInfo describes one collection folder under the collection path.
type CollectionInfo struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	ItemCount int    `json:"itemCount"`
}

// BranchInfo represents a git branch with its latest commit timestamp
type BranchInfo struct {
	Name           string    `json:"name"`
	LastCommitDate time.Time `json:"lastCommitDate"`
}

// RepoInfo reports git metadata for a collection folder that is a repository.
type RepoInfo struct {
	IsRepository  bool         `json:"isRepository"`
	CurrentBranch string       `json:"currentBranch,omitempty"`
	Branches      []BranchInfo `json:"branches,omitempty"`
}
