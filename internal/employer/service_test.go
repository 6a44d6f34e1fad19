package employer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jobpilot/internal/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

func newTestService(t *testing.T) (*Service, *auth.User) {
	t.Helper()
	users := auth.NewMemoryUserStore()
	u := &auth.User{ID: uuid.NewString(), FullName: "Grace", Username: "grace", Email: "grace@navy.mil"}
	require.NoError(t, users.Create(context.Background(), u))

	svc := &Service{
		Users: users,
		Logos: &LogoStore{
			Dir:       t.TempDir(),
			URLPrefix: "/uploads",
			MaxBytes:  1024,
			Now:       func() time.Time { return time.UnixMilli(1700000000000) },
		},
	}
	return svc, u
}

func TestUpdateProfileSetsComplete(t *testing.T) {
	svc, u := newTestService(t)
	ctx := context.Background()

	got, err := svc.UpdateProfile(ctx, u.ID, ProfileInput{
		CompanyInfo: &auth.CompanyInfo{CompanyName: "Cobol Inc", TeamSize: "10-50"},
	})
	require.NoError(t, err)
	assert.True(t, got.ProfileComplete)
	assert.Equal(t, "Cobol Inc", got.CompanyInfo.CompanyName)

	got, err = svc.UpdateProfile(ctx, u.ID, ProfileInput{
		ContactInfo: &auth.ContactInfo{ContactNumber: "555-0100"},
	})
	require.NoError(t, err)
	assert.True(t, got.ProfileComplete, "profileComplete never reverts")
	assert.Equal(t, "Cobol Inc", got.CompanyInfo.CompanyName, "absent block is kept")
	assert.Equal(t, "555-0100", got.ContactInfo.ContactNumber)

	stored, err := svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, got.ContactInfo, stored.ContactInfo)
	assert.True(t, stored.ProfileComplete)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.UpdateProfile(context.Background(), uuid.NewString(), ProfileInput{})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestUploadLogo(t *testing.T) {
	svc, u := newTestService(t)

	got, err := svc.UploadLogo(context.Background(), u.ID, "Brand.PNG", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	want := "/uploads/logo-" + u.ID + "-1700000000000.png"
	assert.Equal(t, want, got.LogoURL)

	b, err := os.ReadFile(filepath.Join(svc.Logos.Dir, strings.TrimPrefix(want, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, b)

	stored, err := svc.Profile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, want, stored.LogoURL)
}

func TestUploadLogoSVG(t *testing.T) {
	svc, u := newTestService(t)
	svg := `<svg xmlns="http://www.w3.org/2000/svg" width="1" height="1"></svg>`

	got, err := svc.UploadLogo(context.Background(), u.ID, "logo.svg", strings.NewReader(svg))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got.LogoURL, ".svg"))
}

func TestUploadLogoRejects(t *testing.T) {
	svc, u := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		filename string
		body     []byte
		err      error
	}{
		{"bad extension", "logo.exe", pngBytes, ErrNotImage},
		{"text disguised as png", "logo.png", []byte("just some text, really"), ErrNotImage},
		{"empty", "logo.png", nil, ErrNoFile},
		{"too large", "logo.png", append(append([]byte{}, pngBytes...), make([]byte, 2048)...), ErrTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UploadLogo(ctx, u.ID, tc.filename, bytes.NewReader(tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	entries, err := os.ReadDir(svc.Logos.Dir)
	if err == nil {
		assert.Empty(t, entries, "rejected uploads leave nothing behind")
	}

	stored, err := svc.Profile(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.LogoURL)
}

type failingSave struct {
	auth.UserStore
}

func (failingSave) Save(context.Context, *auth.User) error { return errors.New("db down") }

func TestUploadLogoRemovesFileWhenSaveFails(t *testing.T) {
	svc, u := newTestService(t)
	svc.Users = failingSave{svc.Users}

	_, err := svc.UploadLogo(context.Background(), u.ID, "brand.png", bytes.NewReader(pngBytes))
	require.Error(t, err)

	entries, err := os.ReadDir(svc.Logos.Dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLogoStoreRemove(t *testing.T) {
	svc, u := newTestService(t)

	url, err := svc.Logos.Save(u.ID, "brand.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	require.NoError(t, svc.Logos.Remove(url))
	require.NoError(t, svc.Logos.Remove(url), "already gone")

	_, err = os.Stat(filepath.Join(svc.Logos.Dir, strings.TrimPrefix(url, "/uploads/")))
	assert.True(t, os.IsNotExist(err))
}
