package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxImageBytes = 5 * 1024 * 1024
	maxImageWidth = 1600
)

// LocalStorage menyimpan file upload di disk server dan mengembalikan
// URL relatif yang stabil (disajikan lewat app.Static("/uploads", ...)).
type LocalStorage struct {
	BaseDir string
	BaseURL string
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{BaseDir: "./uploads", BaseURL: "/uploads"}
}

// SaveImage mengkonversi gambar upload (jpg/png/webp) ke webp quality 85,
// resize kalau lebih lebar dari 1600px, lalu simpan dengan nama unik.
func (s *LocalStorage) SaveImage(folder string, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxImageBytes {
		return "", fmt.Errorf("ukuran gambar maksimal 5MB")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	var data []byte
	switch ext {
	case ".jpg", ".jpeg", ".png":
		img, derr := imaging.Decode(src, imaging.AutoOrientation(true))
		if derr != nil {
			return "", fmt.Errorf("file gambar tidak valid: %w", derr)
		}
		if img.Bounds().Dx() > maxImageWidth {
			img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
		}
		buf := new(bytes.Buffer)
		if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
			return "", fmt.Errorf("gagal konversi ke webp: %w", err)
		}
		data = buf.Bytes()
	case ".webp":
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(src); err != nil {
			return "", fmt.Errorf("gagal membaca file upload: %w", err)
		}
		data = buf.Bytes()
	default:
		return "", fmt.Errorf("format gambar tidak didukung (hanya jpg, png, webp)")
	}

	filename := s.uniqueFilename(fileHeader.Filename, ".webp")
	dir := filepath.Join(s.BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return s.BaseURL + "/" + folder + "/" + filename, nil
}

// SaveFile menyimpan file non-gambar (mis. PDF arsip) apa adanya.
func (s *LocalStorage) SaveFile(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("gagal membaca file upload: %w", err)
	}

	filename := s.uniqueFilename(fileHeader.Filename, filepath.Ext(fileHeader.Filename))
	dir := filepath.Join(s.BaseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}

	return s.BaseURL + "/" + folder + "/" + filename, nil
}

// Delete menghapus file berdasarkan URL relatif yang dihasilkan Save*.
func (s *LocalStorage) Delete(fileURL string) error {
	rel := strings.TrimPrefix(fileURL, s.BaseURL+"/")
	if rel == fileURL || strings.Contains(rel, "..") {
		return fmt.Errorf("url file tidak valid")
	}
	return os.Remove(filepath.Join(s.BaseDir, rel))
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func (s *LocalStorage) uniqueFilename(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	safe := unsafeChars.ReplaceAllString(base, "_")
	if safe == "" {
		safe = "file"
	}
	return fmt.Sprintf("%s-%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), safe, ext)
}
