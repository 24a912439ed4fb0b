package i18n

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"path"
	"strings"
)

// TranslationAdapter loads translation catalogs keyed by language code.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from an in-memory map. Useful for tests.
type MapAdapter struct {
	Translations map[string]map[string]any
}

func (a *MapAdapter) Load(context.Context) (map[string]map[string]any, error) {
	if a.Translations == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Translations, nil
}

// EmbeddedFsAdapter loads catalogs from YAML files compiled into the binary
// with go:embed. Every file in dir with a supported extension is parsed and
// its per-language sections merged into one catalog set.
type EmbeddedFsAdapter struct {
	parser Parser
	fs     embed.FS
	dir    string
}

func NewEmbeddedFsAdapter(parser Parser, fsys embed.FS, dir string) *EmbeddedFsAdapter {
	return &EmbeddedFsAdapter{parser: parser, fs: fsys, dir: dir}
}

func (a *EmbeddedFsAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	entries, err := a.fs.ReadDir(a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := a.loadFile(ctx, path.Join(a.dir, entry.Name()), all); err != nil {
			return nil, err
		}
	}

	return all, nil
}

func (a *EmbeddedFsAdapter) loadFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingTranslationsCancelled, err)
	}

	content, err := fs.ReadFile(a.fs, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadEmbeddedFile, err)
	}

	parsed, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseEmbeddedFile, err)
	}

	for lang, catalog := range parsed {
		lang = strings.ToLower(lang)
		if existing, ok := all[lang]; ok {
			mergeMaps(existing, catalog)
			continue
		}
		all[lang] = catalog
	}
	return nil
}

// mergeMaps merges src into dst recursively; scalar conflicts favor src so
// later files override earlier ones.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeMaps(dstMap, srcMap)
			continue
		}
		dst[k] = v
	}
}
