// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/project-request/models"
)

// ListAudiences returns the audience choices for the request form.
func (s *Store) ListAudiences(ctx context.Context) ([]models.Option, error) {
	return s.listOptions(ctx, "audience")
}

// ListTaskTypes returns the task type choices for the request form.
func (s *Store) ListTaskTypes(ctx context.Context) ([]models.Option, error) {
	return s.listOptions(ctx, "task_type")
}

// listOptions reads id/title pairs from a reference table.
// The row titled "Other" is exposed under the sentinel identifier.
func (s *Store) listOptions(ctx context.Context, table string) ([]models.Option, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM "+table+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.ID, &opt.Title); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		if strings.EqualFold(opt.Title, models.OtherOption) {
			opt.ID = models.OtherOption
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return options, nil
}
