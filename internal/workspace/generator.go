package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/yuuki/foldergen/internal/identity"
)

// Generator creates the workspace folder and writes its two files.
// All paths are passed explicitly; the process working directory is never changed.
type Generator struct {
	fs          afero.Fs
	identity    identity.Provider
	accessCheck func(dir string) error
	resolve     func(dir string) (string, error)
}

// Option configures a Generator
type Option func(*Generator)

// WithAccessCheck replaces the traversal check run when entering the folder
func WithAccessCheck(check func(dir string) error) Option {
	return func(g *Generator) {
		g.accessCheck = check
	}
}

// WithPathResolver replaces how the entered folder is turned into the
// reported current directory
func WithPathResolver(resolve func(dir string) (string, error)) Option {
	return func(g *Generator) {
		g.resolve = resolve
	}
}

// Result describes what Generate produced
type Result struct {
	Dir         string
	ReportPath  string
	MessagePath string
	Report      Report
}

// New creates a generator on top of fsys. On the OS filesystem the folder is
// checked with access(2) and reported in its canonical form, the way getcwd
// would return it after a chdir.
func New(fsys afero.Fs, id identity.Provider, opts ...Option) *Generator {
	g := &Generator{
		fs:       fsys,
		identity: id,
		resolve:  cleanPath,
	}
	if _, ok := fsys.(*afero.OsFs); ok {
		g.accessCheck = checkTraversal
		g.resolve = canonicalPath
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs every step once and stops at the first failure.
// Files written before a failure are left in place.
func (g *Generator) Generate(baseDir, folderName string) (*Result, error) {
	if folderName == "" {
		folderName = DefaultFolderName
	}
	target := filepath.Join(baseDir, folderName)

	if err := g.ensureDir(target); err != nil {
		return nil, err
	}

	dir, err := g.enter(target)
	if err != nil {
		return nil, err
	}

	username, err := g.identity.CurrentUserName()
	if err != nil {
		return nil, err
	}

	report := Report{
		Username:  username,
		Directory: dir,
		IPAddress: PlaceholderIP,
	}

	res := &Result{
		Dir:         dir,
		ReportPath:  filepath.Join(target, ReportFileName),
		MessagePath: filepath.Join(target, MessageFileName),
		Report:      report,
	}

	if err := g.writeFile(res.ReportPath, report.Render()); err != nil {
		return nil, err
	}
	log.Info().Str("path", res.ReportPath).Msg("Wrote address details")

	if err := g.writeFile(res.MessagePath, MessageText); err != nil {
		return nil, err
	}
	log.Info().Str("path", res.MessagePath).Msg("Wrote message file")

	return res, nil
}

// ensureDir creates dir unless it already exists as a directory
func (g *Generator) ensureDir(dir string) error {
	info, err := g.fs.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return &FilesystemError{Op: OpMkdir, Path: dir, Err: ErrNotDir}
		}
		log.Debug().Str("path", dir).Msg("Directory already exists")
		return nil
	case errors.Is(err, fs.ErrNotExist):
	default:
		return &FilesystemError{Op: OpMkdir, Path: dir, Err: err}
	}

	if err := g.fs.MkdirAll(dir, 0755); err != nil {
		return &FilesystemError{Op: OpMkdir, Path: dir, Err: err}
	}
	log.Debug().Str("path", dir).Msg("Created directory")
	return nil
}

// enter verifies dir is still a usable directory and returns the path that
// is reported as the current directory
func (g *Generator) enter(dir string) (string, error) {
	info, err := g.fs.Stat(dir)
	if err != nil {
		return "", &FilesystemError{Op: OpEnter, Path: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &FilesystemError{Op: OpEnter, Path: dir, Err: ErrNotDir}
	}

	if g.accessCheck != nil {
		if err := g.accessCheck(dir); err != nil {
			return "", &FilesystemError{Op: OpEnter, Path: dir, Err: err}
		}
	}

	resolved, err := g.resolve(dir)
	if err != nil {
		return "", &FilesystemError{Op: OpEnter, Path: dir, Err: err}
	}
	log.Debug().Str("path", resolved).Msg("Entered directory")
	return resolved, nil
}

// writeFile creates or truncates path and writes content
func (g *Generator) writeFile(path, content string) (err error) {
	f, err := g.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &FilesystemError{Op: OpWrite, Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FilesystemError{Op: OpWrite, Path: path, Err: cerr}
		}
	}()

	if _, werr := f.WriteString(content); werr != nil {
		return &FilesystemError{Op: OpWrite, Path: path, Err: werr}
	}
	return nil
}

func cleanPath(dir string) (string, error) {
	return filepath.Clean(dir), nil
}

func canonicalPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}
	return resolved, nil
}
