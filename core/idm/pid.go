package idm

import (
	"strings"

	"theme-sync/core/models"
	"theme-sync/core/utils"
)

// ParsePID splits a PID of the form "<entity>-<id>-<version>-<tag>".
// Parsing is positional. Numeric parts keep their leading digits ("12abc" is
// 12); missing or non-numeric parts become nil rather than failing. Only an
// empty PID is an error.
func ParsePID(pid string) (models.ClassificationID, error) {
	if pid == "" {
		return models.ClassificationID{}, ErrParse
	}

	parts := strings.Split(pid, "-")
	id := models.ClassificationID{
		FullPID:    pid,
		EntityName: parts[0],
	}
	if len(parts) > 1 {
		id.ID = parseIntPart(parts[1])
	}
	if len(parts) > 2 {
		id.Version = parseIntPart(parts[2])
	}
	if len(parts) > 3 && parts[3] != "" {
		tag := parts[3]
		id.Tag = &tag
	}
	return id, nil
}

func parseIntPart(s string) *int {
	n, ok := utils.ParseLeadingInt(s)
	if !ok {
		return nil
	}
	return &n
}
