package testutil

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// MemoryFS implements types.FS with in-memory storage and per-path
// error injection. Paths are slash-separated and normalized to be
// absolute, so tests can use plain "/src/game/settings.ini" style paths
// regardless of host OS.
type MemoryFS struct {
	files      map[string]*fileNode
	errorPaths map[string]error
}

// fileNode represents a file, directory or symlink in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	linkDest string
}

// NewMemoryFS creates a new in-memory filesystem with an empty root.
func NewMemoryFS() *MemoryFS {
	return &MemoryFS{
		files: map[string]*fileNode{
			"/": {name: "/", mode: 0755 | os.ModeDir, modTime: time.Now(), isDir: true},
		},
		errorPaths: make(map[string]error),
	}
}

// InjectError makes every subsequent access to path fail with err.
// This is how tests simulate a locked or unreadable file.
func (m *MemoryFS) InjectError(p string, err error) {
	m.errorPaths[normalize(p)] = err
}

// ClearError removes a previously injected error.
func (m *MemoryFS) ClearError(p string) {
	delete(m.errorPaths, normalize(p))
}

func normalize(p string) string {
	p = path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	return p
}

func (m *MemoryFS) checkErr(p string) error {
	if err, ok := m.errorPaths[p]; ok {
		return err
	}
	return nil
}

func (m *MemoryFS) getNode(p string) (*fileNode, error) {
	p = normalize(p)
	if err := m.checkErr(p); err != nil {
		return nil, err
	}
	node, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return node, nil
}

func (m *MemoryFS) Stat(name string) (fs.FileInfo, error) {
	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if node.linkDest != "" {
		return m.Stat(node.linkDest)
	}
	return nodeInfo{node}, nil
}

func (m *MemoryFS) Lstat(name string) (fs.FileInfo, error) {
	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	return nodeInfo{node}, nil
}

func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	node, err := m.getNode(name)
	if err != nil {
		return nil, err
	}
	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	out := make([]byte, len(node.content))
	copy(out, node.content)
	return out, nil
}

func (m *MemoryFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	p := normalize(name)
	if err := m.checkErr(p); err != nil {
		return err
	}
	parent, ok := m.files[path.Dir(p)]
	if !ok || !parent.isDir {
		return &fs.PathError{Op: "write", Path: name, Err: fs.ErrNotExist}
	}
	content := make([]byte, len(data))
	copy(content, data)
	m.files[p] = &fileNode{
		name:    path.Base(p),
		mode:    perm,
		modTime: time.Now(),
		content: content,
	}
	return nil
}

func (m *MemoryFS) Open(name string) (io.ReadCloser, error) {
	data, err := m.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryFS) Create(name string) (io.WriteCloser, error) {
	p := normalize(name)
	if err := m.checkErr(p); err != nil {
		return nil, err
	}
	if parent, ok := m.files[path.Dir(p)]; !ok || !parent.isDir {
		return nil, &fs.PathError{Op: "create", Path: name, Err: fs.ErrNotExist}
	}
	return &memWriter{fs: m, path: p}, nil
}

// memWriter buffers writes and commits the file on Close.
type memWriter struct {
	fs   *MemoryFS
	path string
	buf  bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	return w.fs.WriteFile(w.path, w.buf.Bytes(), 0644)
}

func (m *MemoryFS) MkdirAll(p string, perm fs.FileMode) error {
	p = normalize(p)
	if err := m.checkErr(p); err != nil {
		return err
	}
	cur := "/"
	for _, part := range strings.Split(strings.Trim(p, "/"), "/") {
		if part == "" {
			continue
		}
		cur = path.Join(cur, part)
		if node, ok := m.files[cur]; ok {
			if !node.isDir {
				return &fs.PathError{Op: "mkdir", Path: cur, Err: fs.ErrExist}
			}
			continue
		}
		m.files[cur] = &fileNode{
			name:    path.Base(cur),
			mode:    perm | os.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		}
	}
	return nil
}

func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	p := normalize(name)
	node, err := m.getNode(p)
	if err != nil {
		return nil, err
	}
	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
	}
	var entries []fs.DirEntry
	for childPath, child := range m.files {
		if childPath != p && path.Dir(childPath) == p {
			entries = append(entries, fs.FileInfoToDirEntry(nodeInfo{child}))
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemoryFS) Remove(name string) error {
	p := normalize(name)
	if err := m.checkErr(p); err != nil {
		return err
	}
	node, ok := m.files[p]
	if !ok {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if node.isDir {
		for childPath := range m.files {
			if childPath != p && path.Dir(childPath) == p {
				return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrInvalid}
			}
		}
	}
	delete(m.files, p)
	return nil
}

func (m *MemoryFS) RemoveAll(p string) error {
	p = normalize(p)
	if err := m.checkErr(p); err != nil {
		return err
	}
	// Deleting below an injected-error path fails too, which lets
	// tests simulate a directory held open by another process.
	for childPath := range m.errorPaths {
		if strings.HasPrefix(childPath, p+"/") {
			return m.errorPaths[childPath]
		}
	}
	if p == "/" {
		return &fs.PathError{Op: "removeall", Path: p, Err: fs.ErrInvalid}
	}
	for childPath := range m.files {
		if childPath == p || strings.HasPrefix(childPath, p+"/") {
			delete(m.files, childPath)
		}
	}
	return nil
}

func (m *MemoryFS) Rename(oldpath, newpath string) error {
	op, np := normalize(oldpath), normalize(newpath)
	if err := m.checkErr(op); err != nil {
		return err
	}
	if err := m.checkErr(np); err != nil {
		return err
	}
	node, ok := m.files[op]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	delete(m.files, op)
	node.name = path.Base(np)
	m.files[np] = node
	return nil
}

func (m *MemoryFS) Symlink(oldname, newname string) error {
	p := normalize(newname)
	if err := m.checkErr(p); err != nil {
		return err
	}
	if _, ok := m.files[p]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	m.files[p] = &fileNode{
		name:     path.Base(p),
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		linkDest: normalize(oldname),
	}
	return nil
}

func (m *MemoryFS) Readlink(name string) (string, error) {
	node, err := m.getNode(name)
	if err != nil {
		return "", err
	}
	if node.linkDest == "" {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: fs.ErrInvalid}
	}
	return node.linkDest, nil
}

// nodeInfo adapts a fileNode to fs.FileInfo
type nodeInfo struct {
	node *fileNode
}

func (i nodeInfo) Name() string       { return i.node.name }
func (i nodeInfo) Size() int64        { return int64(len(i.node.content)) }
func (i nodeInfo) Mode() fs.FileMode  { return i.node.mode }
func (i nodeInfo) ModTime() time.Time { return i.node.modTime }
func (i nodeInfo) IsDir() bool        { return i.node.isDir }
func (i nodeInfo) Sys() interface{}   { return nil }
