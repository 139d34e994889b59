package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/picturelab/internal/picture"
)

var (
	// ErrDecode is returned when an image file is missing or cannot be decoded.
	ErrDecode = errors.New("decode error")

	// ErrIO is returned when a picture cannot be written.
	ErrIO = errors.New("io error")
)

// DefaultJPEGQuality is used when saving JPEG files.
const DefaultJPEGQuality = 95

// FileStore loads and saves pictures on the local filesystem.
//
// Decoded rasters are cached by path so that repeated loads of the same file
// usually skip disk I/O. Concurrent first loads of one path may each decode
// the file; the last decode wins the cache slot. Because pictures are mutable, every Load returns a fresh
// copy of the cached raster; callers can transform it freely without
// affecting later loads.
//
// FileStore is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached rasters remain in memory until Evict, Clear or a Save to the same
// path. For long-running processes handling many images, consider periodic
// cleanup to prevent unbounded memory growth.
//
// # Example Usage
//
//	store := imaging.NewFileStore()
//	p, err := store.Load("/path/to/beach.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p.ZeroBlue()
//	err = store.Save(p, "/path/to/beach-noblue.png")
type FileStore struct {
	mu     sync.RWMutex
	images map[string]image.Image

	// JPEGQuality is the quality used for .jpg/.jpeg output (1-100).
	JPEGQuality int

	// Debug enables per-call log lines.
	Debug bool
}

// NewFileStore creates a store with an empty cache.
func NewFileStore() *FileStore {
	return &FileStore{
		images:      make(map[string]image.Image),
		JPEGQuality: DefaultJPEGQuality,
	}
}

// Load returns a picture decoded from path.
//
// Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP. JPEG EXIF
// orientation is applied so that the picture appears upright.
//
// # Errors
//
// Missing, unreadable and malformed files all yield an error wrapping
// ErrDecode.
func (s *FileStore) Load(path string) (*picture.Picture, error) {
	img, err := s.raster(path)
	if err != nil {
		return nil, err
	}
	p := picture.FromImage(img)
	p.SetName(filepath.Base(path))
	return p, nil
}

func (s *FileStore) raster(path string) (image.Image, error) {
	s.mu.RLock()
	if img, ok := s.images[path]; ok {
		s.mu.RUnlock()
		return img, nil
	}
	s.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image: %w", ErrDecode, err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image %s: %w", ErrDecode, path, err)
	}
	if s.Debug {
		log.Printf("Loaded %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	}

	s.mu.Lock()
	s.images[path] = img
	s.mu.Unlock()

	return img, nil
}

// Save encodes p to path. The format follows the file extension: .png,
// .jpg/.jpeg (at JPEGQuality) or .bmp.
//
// Any cached raster for path is evicted.
func (s *FileStore) Save(p *picture.Picture, path string) error {
	encoder, err := s.encoderFor(path)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, p.Image(), encoder); err != nil {
		return fmt.Errorf("%w: failed to save %s: %w", ErrIO, path, err)
	}
	s.Evict(path)
	if s.Debug {
		log.Printf("Saved %s (%dx%d)", path, p.Width(), p.Height())
	}
	return nil
}

func (s *FileStore) encoderFor(path string) (imgio.Encoder, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		quality := s.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = DefaultJPEGQuality
		}
		return imgio.JPEGEncoder(quality), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported output format %q", ErrIO, filepath.Ext(path))
	}
}

// Clear removes all rasters from the cache.
func (s *FileStore) Clear() {
	s.mu.Lock()
	s.images = make(map[string]image.Image)
	s.mu.Unlock()
}

// Evict removes the raster cached for path, if any.
func (s *FileStore) Evict(path string) {
	s.mu.Lock()
	delete(s.images, path)
	s.mu.Unlock()
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format from the file extension: "png",
	// "jpeg", "gif", "bmp", "tiff", "webp" or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Info loads path (through the cache) and describes it.
func (s *FileStore) Info(path string) (*ImageInfo, error) {
	img, err := s.raster(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %w", ErrDecode, err)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        formatOf(path),
		FileSizeBytes: stat.Size(),
	}, nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}
