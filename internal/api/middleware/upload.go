package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riskprofiler/internal/util"
)

const (
	uploaderKey   = "uploader"
	stagedFileKey = "staged_file"
)

// Upload errors
var (
	ErrUploadNotInitialized = errors.New("upload middleware not initialized")
	ErrFileMissing          = errors.New("no file uploaded")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUnsupportedFileType  = errors.New("only image uploads are supported")
)

// StagedFile is an uploaded file written to the upload directory
type StagedFile struct {
	Field        string
	OriginalName string
	Path         string
	MimeType     string
	Size         int64
}

// Read returns the staged file contents
func (f *StagedFile) Read() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// Uploader stages multipart image uploads on disk for the lifetime of a request
type Uploader struct {
	dir      string
	maxBytes int64
	logger   *util.Logger
}

// NewUploader creates an uploader writing into dir
func NewUploader(dir string, maxBytes int64) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &Uploader{dir: dir, maxBytes: maxBytes, logger: util.NewLogger("Uploader")}, nil
}

// Upload makes the uploader available to handlers via UploaderFrom
func Upload(uploader *Uploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(uploaderKey, uploader)
		c.Next()
	}
}

// UploaderFrom returns the uploader installed by Upload
func UploaderFrom(c *gin.Context) (*Uploader, bool) {
	v, ok := c.Get(uploaderKey)
	if !ok {
		return nil, false
	}
	uploader, ok := v.(*Uploader)
	return uploader, ok && uploader != nil
}

// StagedFileFrom returns the file staged by Uploader.Single
func StagedFileFrom(c *gin.Context) (*StagedFile, bool) {
	v, ok := c.Get(stagedFileKey)
	if !ok {
		return nil, false
	}
	file, ok := v.(*StagedFile)
	return file, ok
}

// Single stages the image in the given multipart field and then runs next.
// The staged file is removed when next returns. Upload failures are attached
// to the context for ErrorHandler and next is not called.
func (u *Uploader) Single(field string, next gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		staged, err := u.stage(c, field)
		if err != nil {
			_ = c.Error(err)
			return
		}
		defer func() {
			if err := os.Remove(staged.Path); err != nil && !os.IsNotExist(err) {
				u.logger.Warn("Failed to remove staged upload", err)
			}
		}()

		c.Set(stagedFileKey, staged)
		next(c)
	}
}

func (u *Uploader) stage(c *gin.Context, field string) (*StagedFile, error) {
	// Leave headroom for multipart framing around the file itself
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, u.maxBytes+1<<20)

	header, err := c.FormFile(field)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, NewAPIError(http.StatusRequestEntityTooLarge, ErrFileTooLarge)
		}
		return nil, NewAPIError(http.StatusBadRequest, fmt.Errorf("%w: field %q", ErrFileMissing, field))
	}
	if header.Size > u.maxBytes {
		return nil, NewAPIError(http.StatusRequestEntityTooLarge, ErrFileTooLarge)
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, u.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, NewAPIError(http.StatusRequestEntityTooLarge, ErrFileTooLarge)
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, NewAPIError(http.StatusBadRequest, fmt.Errorf("%w: got %s", ErrUnsupportedFileType, mtype.String()))
	}

	path := filepath.Join(u.dir, uuid.New().String()+mtype.Extension())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to stage upload: %w", err)
	}

	return &StagedFile{
		Field:        field,
		OriginalName: header.Filename,
		Path:         path,
		MimeType:     mtype.String(),
		Size:         int64(len(data)),
	}, nil
}
