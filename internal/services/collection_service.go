package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/yargevad/filepathx"

	"curio/internal/models"
	"curio/internal/utils"
)

type CollectionService interface {
	List(ctx context.Context) ([]models.CollectionInfo, error)
	Create(ctx context.Context, name string) (*models.CollectionInfo, error)
	OpenInFileManager(ctx context.Context, path string) error
	RepoInfo(ctx context.Context, path string) (*models.RepoInfo, error)
}

type collectionService struct {
	settings AppSettingsService
	shell    Shell
}

func NewCollectionService(settings AppSettingsService, shell Shell) CollectionService {
	return &collectionService{settings: settings, shell: shell}
}

// List returns the collection folders under the configured collection path.
// A fresh profile whose default folder does not exist yet lists as empty.
func (s *collectionService) List(ctx context.Context) ([]models.CollectionInfo, error) {
	root, err := s.collectionRoot(ctx)
	if err != nil {
		return nil, err
	}
	if !utils.DirectoryExists(root) {
		return []models.CollectionInfo{}, nil
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read collection folder: %w", err)
	}

	collections := []models.CollectionInfo{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		collections = append(collections, models.CollectionInfo{
			Name:      entry.Name(),
			Path:      path,
			ItemCount: countItems(path),
		})
	}

	sort.Slice(collections, func(i, j int) bool { return collections[i].Name < collections[j].Name })
	return collections, nil
}

// countItems counts files anywhere below path. Glob errors count as zero;
// a collection the user can still open should never fail the whole listing.
func countItems(path string) int {
	matches, err := filepathx.Glob(filepath.Join(path, "**", "*"))
	if err != nil {
		return 0
	}
	count := 0
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			count++
		}
	}
	return count
}

// Create makes a new collection folder under the collection path.
func (s *collectionService) Create(ctx context.Context, name string) (*models.CollectionInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: collection name is required", ErrValidation)
	}
	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) {
		return nil, fmt.Errorf("%w: collection name must not contain path separators", ErrValidation)
	}

	root, err := s.collectionRoot(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create collection folder: %w", err)
	}

	path := filepath.Join(root, name)
	if err := os.Mkdir(path, 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: collection %q already exists", ErrValidation, name)
		}
		return nil, fmt.Errorf("create collection: %w", err)
	}

	return &models.CollectionInfo{Name: name, Path: path}, nil
}

// OpenInFileManager shows the folder in the host file manager. With an empty
// path it opens the collection root itself.
func (s *collectionService) OpenInFileManager(ctx context.Context, path string) error {
	if path == "" {
		root, err := s.collectionRoot(ctx)
		if err != nil {
			return err
		}
		path = root
	}
	return s.shell.OpenPath(path)
}

// RepoInfo reports git metadata when the collection folder is a repository.
func (s *collectionService) RepoInfo(ctx context.Context, path string) (*models.RepoInfo, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path is required", ErrValidation)
	}

	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return &models.RepoInfo{IsRepository: false}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}

	info := &models.RepoInfo{IsRepository: true}

	// A repository with no commits has no HEAD yet; that is still a repo.
	if head, err := repo.Head(); err == nil {
		info.CurrentBranch = head.Name().Short()
	}

	branches, err := listBranches(repo)
	if err != nil {
		return nil, err
	}
	info.Branches = branches
	return info, nil
}

// listBranches returns all local branches and their last commit date.
func listBranches(repo *git.Repository) ([]models.BranchInfo, error) {
	iter, err := repo.Branches()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var branches []models.BranchInfo
	if err := iter.ForEach(func(ref *plumbing.Reference) error {
		commit, cErr := repo.CommitObject(ref.Hash())
		if cErr != nil {
			return cErr
		}
		branches = append(branches, models.BranchInfo{
			Name:           ref.Name().Short(),
			LastCommitDate: commit.Author.When,
		})
		return nil
	}); err != nil {
		return nil, err
	}

	// Keep alphabetical order by branch name; frontend can sort by recency
	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

func (s *collectionService) collectionRoot(ctx context.Context) (string, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return "", err
	}
	return settings.CollectionPath, nil
}
