// internal/service/image_store_s3.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"image_of_the_day/internal/config"
	"image_of_the_day/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store は AWS S3 にヒント画像を保存する実装です
type S3Store struct {
	client *s3.Client
	cfg    *config.S3Config
}

// NewS3Store は設定に応じて認証方法を切り替えてS3クライアントを生成します
func NewS3Store(cfg *config.Config) ImageStore {
	// AWS SDKに渡す設定オプションのスライスを準備
	var awsCfgOpts []func(*awsconfig.LoadOptions) error

	awsCfgOpts = append(awsCfgOpts, awsconfig.WithRegion(cfg.S3.Region))

	// 設定ファイルに基づき、認証方法を決定
	switch cfg.S3.AuthType {
	case "static_credentials":
		slog.Info("Configuring S3 with static credentials.")
		if cfg.S3.AccessKeyID == "" || cfg.S3.SecretAccessKey == "" {
			slog.Error("S3 auth_type is 'static_credentials' but access_key_id or secret_access_key is missing in config.")
			// 起動時にpanicさせることで、設定ミスに即座に気づけるようにする
			panic("missing static credentials for S3")
		}
		creds := credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"", // Session Token (通常は不要)
		)
		awsCfgOpts = append(awsCfgOpts, awsconfig.WithCredentialsProvider(creds))

	case "iam_role":
		// ECS Task Role / EC2 Instance Profile 等。SDKが自動で認証情報を探す。
		slog.Info("Configuring S3 with IAM Role credentials.")

	default:
		slog.Warn("Unknown S3 auth_type specified, defaulting to IAM Role.", "type", cfg.S3.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsCfgOpts...)
	if err != nil {
		slog.Error("Failed to load AWS config for S3", "error", err)
		panic(err)
	}

	return &S3Store{
		client: s3.NewFromConfig(awsCfg),
		cfg:    &cfg.S3,
	}
}

// Put は画像オブジェクトをS3バケットにアップロードします
func (s *S3Store) Put(ctx context.Context, key string, data []byte, contentType string) error {
	logger := middleware.GetLogger(ctx)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	_, err := s.client.PutObject(ctx, input)
	if err != nil {
		logger.Error("Failed to put object to S3", "error", err, "key", key)
		return err
	}

	logger.Info("Image uploaded to S3", "key", key, "bytes", len(data))
	return nil
}

// PublicURL はバケットの公開URLを組み立てます
func (s *S3Store) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.cfg.Bucket, key)
}
