package adapters

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"maven-depman/internal/ports"
	"maven-depman/internal/shared"
	"maven-depman/internal/types"
)

// RepoFileAdapter serves POMs from a local directory in standard Maven
// repository layout: <dir>/<group path>/<artifact>/<version>/<artifact>-<version>.pom.
type RepoFileAdapter struct {
	Dir string

	mu    sync.Mutex
	cache map[string]pomFileCacheEntry
}

type pomFileCacheEntry struct {
	modTime  time.Time
	document types.PomDocument
}

func NewRepoFileAdapter(dir string) *RepoFileAdapter {
	return &RepoFileAdapter{Dir: dir, cache: map[string]pomFileCacheEntry{}}
}

func (a *RepoFileAdapter) FetchPom(ctx context.Context, coordinates types.Coordinates) (types.PomDocument, error) {
	path := filepath.Join(
		a.Dir,
		filepath.FromSlash(shared.GroupPath(coordinates.GroupID)),
		coordinates.ArtifactID,
		coordinates.Version,
		shared.PomFileName(coordinates.ArtifactID, coordinates.Version),
	)

	info, err := os.Stat(path)
	if err != nil {
		return types.PomDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("bom not found in repository: " + coordinates.String()).
			WithCause(err)
	}
	a.mu.Lock()
	if entry, ok := a.cache[path]; ok && entry.modTime.Equal(info.ModTime()) {
		a.mu.Unlock()
		return entry.document, nil
	}
	a.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return types.PomDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read pom file").
			WithCause(err)
	}
	doc, err := ParsePomDocument(data)
	if err != nil {
		return types.PomDocument{}, err
	}
	log.Ctx(ctx).Debug().Str("pom", path).Msg("loaded pom from file repository")

	a.mu.Lock()
	a.cache[path] = pomFileCacheEntry{modTime: info.ModTime(), document: doc}
	a.mu.Unlock()
	return doc, nil
}

var _ ports.PomRepositoryPort = (*RepoFileAdapter)(nil)
