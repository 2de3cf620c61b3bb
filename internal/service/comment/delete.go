package comment

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteComment removes a comment unconditionally by ID. Admin-only;
// deleting an absent comment is a no-op success.
func (s *Service) DeleteComment(ctx context.Context, commentID int64) error {
	deleted, err := s.comments.DeleteByID(ctx, commentID)
	if err != nil {
		return fmt.Errorf("comment.DeleteComment: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "comment deleted", slog.Int64("comment_id", commentID))
	}

	return nil
}
