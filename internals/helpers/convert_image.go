package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxImageWidth  = 1600
	webpQuality    = 80
	uploadsEnvKey  = "UPLOADS_DIR"
	defaultUploads = "uploads"
)

// ConvertToWebP decodes an uploaded image (jpeg/png), downscales it to at
// most maxImageWidth wide (keep aspect) and re-encodes as lossy WebP.
func ConvertToWebP(fileHeader *multipart.FileHeader) ([]byte, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode webp: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveWebP writes webp bytes under UPLOADS_DIR/<folder>/ and returns the
// relative path used as the public URL.
func SaveWebP(folder string, data []byte, originalFilename string) (string, error) {
	root := os.Getenv(uploadsEnvKey)
	if root == "" {
		root = defaultUploads
	}
	name := GenerateUniqueFilename(folder, originalFilename)
	name = name[:len(name)-len(filepath.Ext(name))] + ".webp"

	full := filepath.Join(root, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads dir: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write webp file: %w", err)
	}
	return "/" + filepath.ToSlash(full), nil
}

// DeleteUpload removes a previously saved upload by its public path.
// Missing files are not an error.
func DeleteUpload(publicPath string) error {
	p := filepath.Clean("." + publicPath)
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ✅ unique, safe filename
func sanitizeFilename(filename string) string {
	// drop anything that is not letter, digit, dot, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	safeFilename := sanitizeFilename(originalFilename)
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, safeFilename)
}
