package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luiisca/cal.com/internal/domain"
	"github.com/luiisca/cal.com/internal/repository"
)

const (
	MaxAvatarSize  = 5 * 1024 * 1024 // 5 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Service stores avatar images on local disk: save file -> record in DB ->
// point the user's profile at the new URL.
type Service struct {
	avatars    AvatarRepository
	users      UserRepository
	baseDir    string
	staticBase string
}

func NewService(avatars AvatarRepository, users UserRepository, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{avatars: avatars, users: users, baseDir: baseDir, staticBase: staticBase}
}

func (s *Service) Upload(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*domain.Avatar, error) {
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxAvatarSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from the first 512 bytes. A file shorter than the
	// sniff window is fine; any other read failure is not a type problem.
	buf := make([]byte, 512)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]

	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	now := time.Now()
	relDir := fmt.Sprintf("%d/%02d/%02d", now.Year(), now.Month(), now.Day())
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.NewString() + ext
	absPath := filepath.Join(absDir, name)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	a := &domain.Avatar{
		UserID:    userID,
		Path:      absPath,
		URL:       s.staticBase + "/" + relDir + "/" + name,
		MimeType:  mimeType,
		SizeBytes: fileHeader.Size,
		CreatedAt: now,
	}
	if err := s.avatars.Create(ctx, a); err != nil {
		os.Remove(absPath)
		return nil, err
	}

	if _, err := s.users.UpdateProfile(ctx, userID, repository.ProfileUpdate{AvatarURL: &a.URL}); err != nil {
		return nil, err
	}

	return a, nil
}
