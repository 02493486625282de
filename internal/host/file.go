package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"fapicker/internal/config"
)

const (
	// InstallationFile holds the app's installation parameters
	InstallationFile = "installation.toml"
	// EntryFile holds the field values of the entry being edited
	EntryFile = "entry.toml"
)

type installationDoc struct {
	Parameters *config.StoredParameters `toml:"parameters"`
}

type entryDoc struct {
	Fields map[string]string `toml:"fields"`
}

// FileStore keeps the installation and the entry as TOML files in one
// directory. Other processes may edit the entry file while it is watched.
type FileStore struct {
	dir string
	log zerolog.Logger
}

var _ Watcher = (*FileStore)(nil)

// NewFileStore creates the state directory if needed
func NewFileStore(dir string, log zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &FileStore{
		dir: dir,
		log: log.With().Str("component", "filestore").Logger(),
	}, nil
}

// Dir returns the state directory
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) LoadEntry() (map[string]string, error) {
	var doc entryDoc
	found, err := s.read(EntryFile, &doc)
	if err != nil || !found {
		return make(map[string]string), err
	}
	if doc.Fields == nil {
		doc.Fields = make(map[string]string)
	}
	return doc.Fields, nil
}

func (s *FileStore) SaveEntry(fields map[string]string) error {
	return s.write(EntryFile, entryDoc{Fields: fields})
}

func (s *FileStore) LoadParameters() (*config.StoredParameters, error) {
	var doc installationDoc
	found, err := s.read(InstallationFile, &doc)
	if err != nil || !found {
		return nil, err
	}
	if doc.Parameters == nil {
		return &config.StoredParameters{}, nil
	}
	return doc.Parameters, nil
}

func (s *FileStore) SaveParameters(params *config.StoredParameters) error {
	if params == nil {
		params = &config.StoredParameters{}
	}
	return s.write(InstallationFile, installationDoc{Parameters: params})
}

// Watch reports edits to the entry file until ctx is done
func (s *FileStore) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// watch the directory, since writers replace the file rather than edit it
	if err := w.Add(s.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.dir, err)
	}
	s.log.Debug().Str("dir", s.dir).Msg("watching entry")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != EntryFile {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn().Err(err).Msg("watcher error")
		}
	}
}

func (s *FileStore) read(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return true, nil
}

// write replaces the file in one rename so watchers never see half a document
func (s *FileStore) write(name string, v any) error {
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
