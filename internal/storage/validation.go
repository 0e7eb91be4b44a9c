package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/groupwatch/groupwatch/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context is required")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateEventRecord(record *model.EventRecord) error {
	if record == nil {
		return fmt.Errorf("event record is required")
	}
	if record.ActionType == "" {
		return fmt.Errorf("event record action type cannot be empty")
	}
	if !record.ActionType.IsValid() {
		return fmt.Errorf("event record action type %q is not recognized", record.ActionType)
	}
	if record.RawText == "" {
		return fmt.Errorf("event record raw text cannot be empty")
	}
	return nil
}
