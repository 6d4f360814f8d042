package avatar

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luiisca/cal.com/internal/database"
	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

// Smallest payload http.DetectContentType reports as image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func setupService(t *testing.T) (*Service, *repository.UserRepository, int64) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	users := repository.NewUserRepository(db)
	user := &domain.User{Email: "pro@example.com", Username: "pro"}
	require.NoError(t, users.Create(context.Background(), user))

	svc := NewService(repository.NewAvatarRepository(db), users, t.TempDir(), "")
	return svc, users, user.ID
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("avatar", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["avatar"][0]
}

func TestUpload_SmallPNG(t *testing.T) {
	svc, users, userID := setupService(t)

	// Shorter than the 512 byte sniff window; the short read must not be
	// mistaken for an unsupported type.
	a, err := svc.Upload(context.Background(), userID, fileHeader(t, "me.png", pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "image/png", a.MimeType)
	assert.True(t, strings.HasPrefix(a.URL, StaticURLBase+"/"))
	assert.True(t, strings.HasSuffix(a.URL, ".png"))

	_, err = os.Stat(a.Path)
	assert.NoError(t, err)

	user, err := users.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, a.URL, user.AvatarURL)
}

func TestUpload_RejectsNonImage(t *testing.T) {
	svc, _, userID := setupService(t)

	_, err := svc.Upload(context.Background(), userID,
		fileHeader(t, "notes.txt", []byte("plain text, not an image")))
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestUpload_RejectsEmptyFile(t *testing.T) {
	svc, _, userID := setupService(t)

	_, err := svc.Upload(context.Background(), userID, fileHeader(t, "empty.png", nil))
	assert.ErrorIs(t, err, ErrEmptyFile)
}
