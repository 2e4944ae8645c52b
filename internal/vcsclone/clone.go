package vcsclone

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/rs/zerolog/log"
)

// Clone clones the repository at url into dir and returns the HEAD
// commit's timestamp. An empty url short-circuits to (zero, false) without
// starting a network operation. Any clone failure removes dir and returns
// (zero, false).
func Clone(ctx context.Context, url, dir string) (time.Time, bool) {
	if url == "" {
		return time.Time{}, false
	}

	log.Debug().Str("url", url).Str("dir", dir).Msg("vcsclone: clone")

	if parent := filepath.Dir(dir); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			log.Error().Err(err).Str("dir", dir).Msg("vcsclone: create parent dir")
			return time.Time{}, false
		}
	}

	repo, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:   url,
		Auth:  auth(),
		Depth: 1,
	})
	if err != nil {
		log.Error().Err(err).Str("url", url).Str("dir", dir).Msg("vcsclone: clone failed")
		_ = os.RemoveAll(dir)
		return time.Time{}, false
	}

	t, ok := commitTime(repo)
	if !ok {
		_ = os.RemoveAll(dir)
		return time.Time{}, false
	}
	return t, true
}

func commitTime(repo *git.Repository) (time.Time, bool) {
	head, err := repo.Head()
	if err != nil {
		log.Error().Err(err).Msg("vcsclone: resolve HEAD")
		return time.Now().UTC(), true
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		log.Error().Err(err).Msg("vcsclone: load HEAD commit")
		return time.Time{}, false
	}
	return commit.Committer.When.UTC(), true
}
