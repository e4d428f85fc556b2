// Package ingest turns user-supplied files and typed prompts into
// source materials for quiz generation.
package ingest

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cogniquest/cogniquest/internal/quiz"
)

// MaxFileBytes caps what a single upload may weigh. Large PDFs and
// images beyond this are rejected rather than silently truncated.
const MaxFileBytes = 20 << 20

var imageMIMEs = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// FromPrompt wraps a typed study prompt as a single text material.
// Empty or whitespace-only prompts are rejected.
func FromPrompt(prompt string) (quiz.SourceMaterial, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return quiz.SourceMaterial{}, fmt.Errorf("prompt is empty")
	}
	return quiz.SourceMaterial{
		Kind:     quiz.MaterialText,
		FileName: "prompt",
		Content:  trimmed,
	}, nil
}

// FromFiles reads each path into a source material. Images become
// base64 attachments; everything else must be valid UTF-8 text.
func FromFiles(paths []string) ([]quiz.SourceMaterial, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files selected")
	}

	materials := make([]quiz.SourceMaterial, 0, len(paths))
	for _, path := range paths {
		m, err := FromFile(path)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	return materials, nil
}

// FromFile reads a single path into a source material.
func FromFile(path string) (quiz.SourceMaterial, error) {
	info, err := os.Stat(path)
	if err != nil {
		return quiz.SourceMaterial{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return quiz.SourceMaterial{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxFileBytes {
		return quiz.SourceMaterial{}, fmt.Errorf("%s is too large (%d bytes, max %d)", path, info.Size(), MaxFileBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return quiz.SourceMaterial{}, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(path))

	if mimeType, ok := imageMIMEs[ext]; ok {
		return quiz.SourceMaterial{
			Kind:     quiz.MaterialImage,
			FileName: name,
			Data:     base64.StdEncoding.EncodeToString(data),
			MIME:     mimeType,
		}, nil
	}

	if !utf8.Valid(data) {
		return quiz.SourceMaterial{}, fmt.Errorf("%s is not a text or supported image file", path)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return quiz.SourceMaterial{}, fmt.Errorf("%s is empty", path)
	}

	return quiz.SourceMaterial{
		Kind:     quiz.MaterialText,
		FileName: name,
		Content:  content,
	}, nil
}
