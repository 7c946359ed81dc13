// file: internals/helpers/oss/oss_client.go
package oss

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"mime"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

// Klien penyimpanan berkas lampiran (bukti fisik, nota, foto kegiatan).
// Metadata lampiran ada di tabel lampiran; objek binernya di bucket OSS.

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
}

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

func NewOSSServiceFromEnv(prefix string) (*OSSService, error) {
	endpoint := getEnv(prefix + "OSS_ENDPOINT")
	ak := getEnv(prefix + "OSS_ACCESS_KEY_ID")
	sk := getEnv(prefix + "OSS_ACCESS_KEY_SECRET")
	bucketName := getEnv(prefix + "OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("OSS env belum lengkap (endpoint/ak/sk/bucket)")
	}

	client, err := oss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}
	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
	}, nil
}

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func safePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var out []rune
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			out = append(out, r)
		}
	}
	return string(out)
}

// PublicURL membentuk URL publik objek (virtual-hosted style).
func (s *OSSService) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

// ExtractKeyFromPublicURL mengambil object key dari URL publik.
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(publicURL))
	if err != nil {
		return "", fmt.Errorf("url lampiran tidak valid: %w", err)
	}
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("url lampiran tanpa object key")
	}
	return key, nil
}

// UploadFromFormFile mengunggah berkas lampiran apa adanya ke
// lampiran/<tahun>/<jenis-induk>/ dan mengembalikan (publicURL, contentType).
func (s *OSSService) UploadFromFormFile(ctx context.Context, tahun int, jenisInduk string, fh *multipart.FileHeader) (string, string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("buka berkas: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	ct := mime.TypeByExtension(ext)
	if ct == "" {
		ct = "application/octet-stream"
	}

	key := fmt.Sprintf("lampiran/%d/%s/%d-%s-%s",
		tahun, safePart(jenisInduk), time.Now().Unix(), randHex(4), safePart(fh.Filename))

	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(ct),
		oss.ContentDisposition("inline"),
	}
	if err := s.Bucket.PutObject(key, f, opts...); err != nil {
		return "", "", fmt.Errorf("PutObject: %w", err)
	}
	return s.PublicURL(key), ct, nil
}

func (s *OSSService) DeleteObject(ctx context.Context, key string) error {
	return s.Bucket.DeleteObject(key, oss.WithContext(ctx))
}

// DeleteByPublicURL menghapus objek berdasar URL publiknya.
func (s *OSSService) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	key, err := ExtractKeyFromPublicURL(publicURL)
	if err != nil {
		return err
	}
	return s.DeleteObject(ctx, key)
}

// DeleteByPublicURLENV: jalur praktis untuk kaskade — buat klien dari env,
// hapus satu objek, dengan timeout sendiri. Kegagalan di sini dianggap
// advisory oleh pemanggil (log lalu lanjut).
func DeleteByPublicURLENV(publicURL string, timeout time.Duration) error {
	svc, err := NewOSSServiceFromEnv("")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svc.DeleteByPublicURL(ctx, publicURL)
}
