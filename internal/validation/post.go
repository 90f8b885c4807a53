package validation

import (
	"fmt"
	"strings"
)

// ValidatePostTitle checks that a post title is present and within limits.
func ValidatePostTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("title is required")
	}
	if len([]rune(trimmed)) > 100 {
		return fmt.Errorf("title must not exceed 100 characters")
	}
	return nil
}

// ValidateCommentContent checks that comment content is present and within limits.
func ValidateCommentContent(content string) error {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return fmt.Errorf("content is required")
	}
	if len([]rune(content)) > 500 {
		return fmt.Errorf("content must not exceed 500 characters")
	}
	return nil
}
