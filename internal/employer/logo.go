package employer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNoFile   = errors.New("no file uploaded")
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("file too large")
)

var (
	logoExts  = []string{".jpeg", ".jpg", ".png", ".gif", ".svg", ".webp"}
	logoMIMEs = []string{"image/jpeg", "image/png", "image/gif", "image/svg+xml", "image/webp"}
)

// LogoStore writes uploaded logos to Dir; they are served under URLPrefix.
type LogoStore struct {
	Dir       string
	URLPrefix string
	MaxBytes  int64
	Now       func() time.Time
}

// Save checks the extension and the sniffed content type, then writes the
// file as logo-<userID>-<unix millis><ext> and returns its public URL.
func (l *LogoStore) Save(userID, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(logoExts, ext) {
		return "", ErrNotImage
	}

	buf, err := io.ReadAll(io.LimitReader(r, l.MaxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read logo: %w", err)
	}
	if len(buf) == 0 {
		return "", ErrNoFile
	}
	if int64(len(buf)) > l.MaxBytes {
		return "", ErrTooLarge
	}

	mt := mimetype.Detect(buf)
	if !slices.ContainsFunc(logoMIMEs, mt.Is) {
		return "", ErrNotImage
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("logo-%s-%d%s", userID, l.now().UnixMilli(), ext)
	if err := writeFile(filepath.Join(l.Dir, name), buf); err != nil {
		return "", fmt.Errorf("write logo: %w", err)
	}
	return strings.TrimSuffix(l.URLPrefix, "/") + "/" + name, nil
}

// Remove deletes the file behind a URL returned by Save. A missing file is
// not an error.
func (l *LogoStore) Remove(url string) error {
	name := path.Base(strings.TrimPrefix(url, strings.TrimSuffix(l.URLPrefix, "/")+"/"))
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(l.Dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *LogoStore) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// writeFile goes through a temp file so a reader never sees a partial logo.
func writeFile(dst string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".logo-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, bytes.NewReader(b)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}
