package service

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"time"

	infraMinio "playtube-go/internal/infra/minio"
)

// uploadLocalFile 打开本地文件上传到媒体 bucket，返回公开访问 URL
func uploadLocalFile(objectName, path, contentType string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := infraMinio.UploadFile(ctx, infraMinio.PublicBucket, objectName, file, info.Size(), contentType); err != nil {
		return "", err
	}

	return infraMinio.PublicURL(infraMinio.PublicBucket, objectName), nil
}

func imageContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func videoContentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "video/mp4"
}
