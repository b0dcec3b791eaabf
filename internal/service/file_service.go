package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"ai-hrchat-be/internal/dto"
	"ai-hrchat-be/internal/pkg/logger"
	"ai-hrchat-be/internal/repository/contract"
	"ai-hrchat-be/internal/websocket"
	"ai-hrchat-be/pkg/events"
	"ai-hrchat-be/pkg/extractor"
	"ai-hrchat-be/pkg/nats"
)

// IFileService ingests uploaded documents into a session.
type IFileService interface {
	ExtractText(ctx context.Context, sessionID string, files []*multipart.FileHeader) (*dto.ExtractTextResponse, error)
	ListFiles(ctx context.Context, sessionID string) (*dto.ListFilesResponse, error)
	FilePath(sessionID, filename string) string
}

type fileService struct {
	sessionRepo contract.ISessionRepository
	contextSvc  IContextService
	extractor   extractor.TextExtractor
	hub         *websocket.Hub
	publisher   *nats.Publisher
	uploadDir   string
	logger      logger.ILogger
}

func NewFileService(
	sessionRepo contract.ISessionRepository,
	contextSvc IContextService,
	textExtractor extractor.TextExtractor,
	hub *websocket.Hub,
	publisher *nats.Publisher,
	uploadDir string,
	log logger.ILogger,
) IFileService {
	return &fileService{
		sessionRepo: sessionRepo,
		contextSvc:  contextSvc,
		extractor:   textExtractor,
		hub:         hub,
		publisher:   publisher,
		uploadDir:   uploadDir,
		logger:      log,
	}
}

// ExtractText saves the uploaded files, extracts their text, replaces the
// session's stored documents and rebuilds the vector index.
func (s *fileService) ExtractText(ctx context.Context, sessionID string, files []*multipart.FileHeader) (*dto.ExtractTextResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no files provided")
	}

	for _, file := range files {
		if file.Filename == "" {
			return nil, fmt.Errorf("no filename provided for one or more files")
		}
		if !s.extractor.Supports(file.Filename) {
			return nil, fmt.Errorf("unsupported file format: %s. Supported formats: %v",
				filepath.Ext(file.Filename), extractor.AllowedExtensions)
		}
		if file.Size == 0 {
			return nil, fmt.Errorf("empty file: %s", file.Filename)
		}
	}

	sessionDir := filepath.Join(s.uploadDir, sessionID)
	if err := os.MkdirAll(sessionDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	extracted := make(map[string]string, len(files))
	filenames := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(sessionDir, filepath.Base(file.Filename))
		if err := saveMultipartFile(file, path); err != nil {
			return nil, fmt.Errorf("failed to save %s: %w", file.Filename, err)
		}

		text, err := s.extractor.Extract(path)
		if err != nil {
			// An unreadable file keeps its slot with empty text so the
			// rest of the batch still indexes.
			s.logger.Warn("FileService", "Text extraction failed", map[string]interface{}{
				"session_id": sessionID,
				"filename":   file.Filename,
				"error":      err.Error(),
			})
			text = ""
		}
		extracted[file.Filename] = text
		filenames = append(filenames, file.Filename)
		s.logger.Info("FileService", "Processed uploaded file", map[string]interface{}{
			"session_id": sessionID,
			"filename":   file.Filename,
			"characters": len(text),
		})
	}

	// Each upload replaces the session's document set.
	session.ExtractedText = extracted
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	chunks, err := s.contextSvc.IndexDocuments(ctx, session)
	if err != nil {
		return nil, err
	}

	for _, filename := range filenames {
		s.hub.Send(sessionID, websocket.MessageTypeFilesIndexed, map[string]interface{}{
			"filename":  filename,
			"path":      fmt.Sprintf("%s/%s/%s", s.uploadDir, sessionID, filename),
			"timestamp": time.Now().Unix(),
		})
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewFilesIndexed(sessionID, filenames, chunks)); err != nil {
			s.logger.Warn("FileService", "Failed to publish files indexed event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ExtractTextResponse{
		SessionID:     sessionID,
		ExtractedText: extracted,
	}, nil
}

func (s *fileService) ListFiles(ctx context.Context, sessionID string) (*dto.ListFilesResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	res := &dto.ListFilesResponse{Files: make([]dto.FileInfoResponse, 0, len(session.ExtractedText))}
	for filename := range session.ExtractedText {
		res.Files = append(res.Files, dto.FileInfoResponse{
			Filename: filename,
			Path:     fmt.Sprintf("%s/%s/%s", s.uploadDir, sessionID, filename),
		})
	}
	return res, nil
}

func (s *fileService) FilePath(sessionID, filename string) string {
	return filepath.Join(s.uploadDir, sessionID, filepath.Base(filename))
}

func saveMultipartFile(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
