// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexander Avdonin

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/avdonin/minifeed/internal/config"
	"github.com/avdonin/minifeed/internal/logger"
	"github.com/avdonin/minifeed/models"
)

// profileImageStorage persists uploaded profile images on the local file
// system. Images live under a configured directory that the external static
// file server exposes at a public prefix; the database only holds the
// resulting server-relative path.
type profileImageStorage struct {
	dir          string
	publicPrefix string
	logger       *logger.Logger
}

// NewProfileImageStorage constructs a [ProfileImageStorage] writing into
// cfg.ProfileImageDir. The directory is created on first use.
func NewProfileImageStorage(cfg config.Files, logger *logger.Logger) ProfileImageStorage {
	logger.Debug().Str("dir", cfg.ProfileImageDir).Msg("creating profile image storage")
	return &profileImageStorage{
		dir:          cfg.ProfileImageDir,
		publicPrefix: cfg.PublicPrefix,
		logger:       logger,
	}
}

// SaveProfileImage writes src to "<dir>/<username>.<ext>" where ext is taken
// from the sanitized original filename. A previous image with the same
// derived name is overwritten, so each user holds at most one image per
// extension.
func (s *profileImageStorage) SaveProfileImage(ctx context.Context, username, originalFilename string, src io.Reader) (models.ProfileImage, error) {
	log := logger.FromContext(ctx)

	sanitized := sanitizeFilename(originalFilename)
	if sanitized == "" {
		return models.ProfileImage{}, fmt.Errorf("%w: empty filename after sanitization", ErrSavingProfileImage)
	}

	storedName := username + "." + fileExtension(sanitized)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		log.Err(err).Str("func", "*profileImageStorage.SaveProfileImage").Msg("error creating image directory")
		return models.ProfileImage{}, fmt.Errorf("%w: %w", ErrSavingProfileImage, err)
	}

	dst, err := os.Create(filepath.Join(s.dir, storedName))
	if err != nil {
		log.Err(err).Str("func", "*profileImageStorage.SaveProfileImage").Msg("error creating image file")
		return models.ProfileImage{}, fmt.Errorf("%w: %w", ErrSavingProfileImage, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		log.Err(err).Str("func", "*profileImageStorage.SaveProfileImage").Msg("error writing image file")
		return models.ProfileImage{}, fmt.Errorf("%w: %w", ErrSavingProfileImage, err)
	}

	return models.ProfileImage{
		FileName: sanitized,
		RealPath: path.Join(s.publicPrefix, storedName),
	}, nil
}

// sanitizeFilename strips directory components and every character outside
// [A-Za-z0-9._-], then trims leading dots so the result can never escape the
// image directory or hide as a dotfile.
func sanitizeFilename(name string) string {
	// Handle both separators; clients on Windows send backslashes.
	name = name[strings.LastIndexByte(name, '/')+1:]
	name = name[strings.LastIndexByte(name, '\\')+1:]

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}

	return strings.TrimLeft(b.String(), ".")
}

// fileExtension returns the segment after the last dot, or the whole name
// when there is none, matching how the upload path is derived upstream.
func fileExtension(name string) string {
	if idx := strings.LastIndexByte(name, '.'); idx >= 0 && idx+1 < len(name) {
		return strings.ToLower(name[idx+1:])
	}
	return strings.ToLower(name)
}
