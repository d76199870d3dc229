package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const reportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// MinIOClient - хранилище артефактов отчётов
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient создает клиент для MinIO
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Создаем bucket если не существует
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadReport загружает отчёт, перезаписывая одноимённый объект
func (m *MinIOClient) UploadReport(name string, data []byte) error {
	ctx := context.Background()

	reader := bytes.NewReader(data)
	_, err := m.client.PutObject(ctx, m.bucketName, name, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: reportContentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload report: %w", err)
	}

	logrus.Infof("Report %s uploaded successfully", name)
	return nil
}

// DownloadReport скачивает отчёт целиком
func (m *MinIOClient) DownloadReport(name string) ([]byte, error) {
	ctx := context.Background()

	object, err := m.client.GetObject(ctx, m.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}

	return data, nil
}

// ReportExists проверяет существует ли отчёт
func (m *MinIOClient) ReportExists(name string) (bool, error) {
	ctx := context.Background()

	_, err := m.client.StatObject(ctx, m.bucketName, name, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check report: %w", err)
	}

	return true, nil
}

// DeleteReport удаляет отчёт
func (m *MinIOClient) DeleteReport(name string) error {
	ctx := context.Background()

	err := m.client.RemoveObject(ctx, m.bucketName, name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	logrus.Infof("Report %s deleted successfully", name)
	return nil
}

// GetReportURL возвращает временный URL для доступа к отчёту (1 час)
func (m *MinIOClient) GetReportURL(name string) (string, error) {
	ctx := context.Background()

	url, err := m.client.PresignedGetObject(ctx, m.bucketName, name, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}
